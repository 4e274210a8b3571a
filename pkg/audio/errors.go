package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceNotAvailable reports that the device backing a stream is no
	// longer available, either because it was disconnected or because the
	// platform refuses to hand it out.
	ErrDeviceNotAvailable = errors.New("the requested device is no longer available")

	// ErrStreamConfigNotSupported reports that the native layer rejected
	// the requested sample rate or format.
	ErrStreamConfigNotSupported = errors.New("the requested stream configuration is not supported by the device")

	// ErrInvalidArgument reports that the native layer rejected a
	// parameter as illegal.
	ErrInvalidArgument = errors.New("invalid argument passed to the native stream")

	// ErrStreamIDOverflow reports that the platform has no free native
	// stream handles left.
	ErrStreamIDOverflow = errors.New("native stream handles exhausted")

	// ErrStreamTypeNotSupported reports that a device exposes no
	// configuration ranges at all for the requested direction.
	ErrStreamTypeNotSupported = errors.New("the requested stream type is not supported by the device")
)

// BackendError is an opaque native failure that has no dedicated bucket in
// the error taxonomy. It carries the native error's description.
type BackendError struct {
	Description string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("a backend-specific error has occurred: %s", e.Description)
}
