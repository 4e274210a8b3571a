package platform

import "fmt"

// Error is a native result code reported by the low-latency audio layer.
// The numeric values mirror the native error space (a small negative
// range below ErrorBase).
type Error int32

const errorBase Error = -900

const (
	ErrorDisconnected    Error = errorBase + 1
	ErrorIllegalArgument Error = errorBase + 2
	ErrorInternal        Error = errorBase + 4
	ErrorInvalidState    Error = errorBase + 5
	ErrorInvalidHandle   Error = errorBase + 8
	ErrorUnimplemented   Error = errorBase + 10
	ErrorUnavailable     Error = errorBase + 11
	ErrorNoFreeHandles   Error = errorBase + 12
	ErrorNoMemory        Error = errorBase + 13
	ErrorNull            Error = errorBase + 14
	ErrorTimeout         Error = errorBase + 15
	ErrorWouldBlock      Error = errorBase + 16
	ErrorInvalidFormat   Error = errorBase + 17
	ErrorOutOfRange      Error = errorBase + 18
	ErrorNoService       Error = errorBase + 19
	ErrorInvalidRate     Error = errorBase + 20
)

// Errors lists every defined native error code, in value order.
var Errors = []Error{
	ErrorDisconnected,
	ErrorIllegalArgument,
	ErrorInternal,
	ErrorInvalidState,
	ErrorInvalidHandle,
	ErrorUnimplemented,
	ErrorUnavailable,
	ErrorNoFreeHandles,
	ErrorNoMemory,
	ErrorNull,
	ErrorTimeout,
	ErrorWouldBlock,
	ErrorInvalidFormat,
	ErrorOutOfRange,
	ErrorNoService,
	ErrorInvalidRate,
}

// Description returns the human-readable description of the code. Unknown
// codes still get a stable description so the mapping into the generic
// taxonomy stays total.
func (e Error) Description() string {
	switch e {
	case ErrorDisconnected:
		return "the audio device was disconnected"
	case ErrorIllegalArgument:
		return "an illegal argument was passed to the native layer"
	case ErrorInternal:
		return "an internal native error occurred"
	case ErrorInvalidState:
		return "the native stream is in an invalid state"
	case ErrorInvalidHandle:
		return "the native stream handle is invalid"
	case ErrorUnimplemented:
		return "the operation is not implemented by the native layer"
	case ErrorUnavailable:
		return "the audio device is unavailable"
	case ErrorNoFreeHandles:
		return "the native layer has no free stream handles"
	case ErrorNoMemory:
		return "the native layer could not allocate memory"
	case ErrorNull:
		return "the native layer dereferenced a null pointer"
	case ErrorTimeout:
		return "the native operation timed out"
	case ErrorWouldBlock:
		return "the native operation would block"
	case ErrorInvalidFormat:
		return "the requested sample format is invalid"
	case ErrorOutOfRange:
		return "a native parameter was out of range"
	case ErrorNoService:
		return "the native audio service is not running"
	case ErrorInvalidRate:
		return "the requested sample rate is invalid"
	}
	return fmt.Sprintf("unknown native audio error %d", int32(e))
}

func (e Error) Error() string {
	return e.Description()
}
