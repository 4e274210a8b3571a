// Package platform specifies the native audio surface consumed by the
// backend: the low-latency stream builder and stream control API, the
// managed device-information service, and the native constants and error
// codes shared by both.
//
// Everything here is an interface so the backend can be exercised against
// the real native implementation and against scripted fakes alike.
package platform

// Direction selects whether a stream captures or plays back audio.
type Direction int

const (
	DirectionInput Direction = iota
	DirectionOutput
)

func (d Direction) String() string {
	if d == DirectionInput {
		return "input"
	}
	return "output"
}

// Format identifies a native stream sample format.
type Format int32

const (
	FormatUnspecified Format = iota
	FormatI16
	FormatF32
)

// Timestamp is a native hardware timestamp: the frame position the stream
// clock had reached at TimeNanos on the monotonic clock.
type Timestamp struct {
	FramePosition int64
	TimeNanos     int64
}

// CallbackResult is returned by a data callback to the native layer.
type CallbackResult int

const (
	// CallbackContinue keeps the stream running.
	CallbackContinue CallbackResult = iota
	// CallbackStop asks the native layer to stop invoking the callback.
	CallbackStop
)

// StreamInfo is the part of a native stream that is safe to query from
// inside a data callback.
type StreamInfo interface {
	// Format returns the sample format the native layer actually
	// negotiated, which may differ from the requested one.
	Format() Format

	// TimestampMonotonic returns the current hardware timestamp against
	// the monotonic clock, or an error when the platform cannot supply
	// one.
	TimestampMonotonic() (Timestamp, error)
}

// DataCallback is invoked by the native audio thread for every buffer. The
// data slice is only valid for the duration of the call.
type DataCallback func(stream StreamInfo, data []byte, numFrames int) CallbackResult

// ErrorCallback is invoked by the native layer on a stream-level fault.
type ErrorCallback func(stream StreamInfo, err Error)

// StreamBuilder accumulates native stream parameters and opens the stream.
// Setters return the builder to allow chaining.
type StreamBuilder interface {
	SetDirection(Direction) StreamBuilder
	SetFormat(Format) StreamBuilder
	SetChannelCount(count int32) StreamBuilder
	SetDeviceID(id int32) StreamBuilder
	SetSampleRate(rate int32) StreamBuilder
	SetBufferCapacityInFrames(frames int32) StreamBuilder
	SetCallbacks(data DataCallback, errCb ErrorCallback) StreamBuilder

	// Open builds the native stream. Failures carry a native Error.
	Open() (Stream, error)
}

// Stream is an open native stream. Control operations are not assumed to
// be safe for concurrent use; the owner must serialize them.
type Stream interface {
	StreamInfo

	RequestStart() error
	RequestPause() error

	// Close stops and releases the native stream.
	Close() error
}

// Platform bundles the native primitives the backend consumes.
type Platform interface {
	// NewStreamBuilder returns a fresh builder for a native stream.
	NewStreamBuilder() (StreamBuilder, error)

	// MinBufferSize returns the minimum buffer size in frames the
	// platform requires for the exact combination of sample rate,
	// channel mask and PCM encoding, for the given direction. A
	// non-positive return means the combination could not be resolved.
	MinBufferSize(sampleRate int32, channelMask ChannelMask, encoding Encoding, output bool) int32
}
