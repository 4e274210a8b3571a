package audio

import "time"

// StreamInstant is a point on a stream's monotonic timeline, measured from
// an unspecified origin (typically the stream creation instant or the
// platform's own monotonic clock).
type StreamInstant struct {
	Secs  int64
	Nanos uint32
}

// StreamInstantFromDuration converts an elapsed duration into a
// StreamInstant.
func StreamInstantFromDuration(d time.Duration) StreamInstant {
	return StreamInstant{
		Secs:  int64(d / time.Second),
		Nanos: uint32(d % time.Second),
	}
}

// InputStreamTimestamp carries the two timestamps delivered with every
// capture callback: when the callback fired relative to stream creation,
// and when the first frame of the buffer was captured by the hardware.
type InputStreamTimestamp struct {
	Callback StreamInstant
	Capture  StreamInstant
}

// OutputStreamTimestamp carries the two timestamps delivered with every
// playback callback: when the callback fired relative to stream creation,
// and when the first frame of the buffer will reach the hardware.
type OutputStreamTimestamp struct {
	Callback StreamInstant
	Playback StreamInstant
}

// InputCallbackInfo is handed to the data callback of an input stream.
type InputCallbackInfo struct {
	Timestamp InputStreamTimestamp
}

// OutputCallbackInfo is handed to the data callback of an output stream.
type OutputCallbackInfo struct {
	Timestamp OutputStreamTimestamp
}
