package aaudio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

// InputDataCallback receives every captured buffer. The data view is only
// valid for the duration of the call. It runs on the native real-time
// audio thread and must not block.
type InputDataCallback func(data audio.Data, info audio.InputCallbackInfo)

// OutputDataCallback fills every playback buffer. The data view is only
// valid for the duration of the call. It runs on the native real-time
// audio thread and must not block.
type OutputDataCallback func(data audio.Data, info audio.OutputCallbackInfo)

// ErrorCallback receives stream-level faults discovered after the stream
// has started. A device loss reported here means the stream is gone;
// external stop by the owner is the only termination path.
type ErrorCallback func(err error)

// Stream owns an open native stream exclusively. Play and Pause are
// serialized against each other; the native object itself is not assumed
// thread-safe for control operations.
type Stream struct {
	logger *slog.Logger

	mu        sync.Mutex
	native    platform.Stream
	closeOnce sync.Once
}

func newStream(native platform.Stream, dir platform.Direction) *Stream {
	logger := slog.Default().With(
		"aaudio stream uuid", uuid.New(),
		"direction", dir.String(),
	)
	return &Stream{logger: logger, native: native}
}

// Play requests the native stream to start. Failure is immediate and
// synchronous; no timeout is applied.
func (s *Stream) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.native.RequestStart(); err != nil {
		return controlError(err)
	}
	return nil
}

// Pause requests the native stream to pause.
func (s *Stream) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.native.RequestPause(); err != nil {
		return controlError(err)
	}
	return nil
}

// Close stops and releases the native stream. It is safe to call more
// than once.
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		err = s.native.Close()
		s.logger.Debug("native stream closed")
	})
	return err
}

// BuildInputStream opens a capture stream for this device. The data and
// error callbacks are invoked from the native audio thread; see the
// callback type docs for their constraints.
func (d *Device) BuildInputStream(cfg audio.Config, format audio.SampleFormat, dataCb InputDataCallback, errCb ErrorCallback) (*Stream, error) {
	b, err := builderForDevice(d.p, d.info, cfg, format, platform.DirectionInput)
	if err != nil {
		return nil, err
	}

	// The creation instant is captured exactly once; every
	// callback-relative timestamp is derived from it.
	creation := time.Now()
	native, err := b.SetCallbacks(
		func(stream platform.StreamInfo, data []byte, _ int) platform.CallbackResult {
			sf := sampleFormatFromNative(stream.Format())
			dataCb(audio.NewData(data, sf), inputCallbackInfo(stream, creation))
			return platform.CallbackContinue
		},
		func(_ platform.StreamInfo, code platform.Error) {
			errCb(streamError(code))
		},
	).Open()
	if err != nil {
		return nil, buildStreamError(err)
	}
	return newStream(native, platform.DirectionInput), nil
}

// BuildOutputStream opens a playback stream for this device. The data and
// error callbacks are invoked from the native audio thread; see the
// callback type docs for their constraints.
func (d *Device) BuildOutputStream(cfg audio.Config, format audio.SampleFormat, dataCb OutputDataCallback, errCb ErrorCallback) (*Stream, error) {
	b, err := builderForDevice(d.p, d.info, cfg, format, platform.DirectionOutput)
	if err != nil {
		return nil, err
	}

	creation := time.Now()
	native, err := b.SetCallbacks(
		func(stream platform.StreamInfo, data []byte, _ int) platform.CallbackResult {
			sf := sampleFormatFromNative(stream.Format())
			dataCb(audio.NewData(data, sf), outputCallbackInfo(stream, creation))
			return platform.CallbackContinue
		},
		func(_ platform.StreamInfo, code platform.Error) {
			errCb(streamError(code))
		},
	).Open()
	if err != nil {
		return nil, buildStreamError(err)
	}
	return newStream(native, platform.DirectionOutput), nil
}

// nativeTimestamp reads the stream's monotonic hardware timestamp, falling
// back to the zero timestamp when the platform cannot supply one.
func nativeTimestamp(stream platform.StreamInfo) platform.Timestamp {
	ts, err := stream.TimestampMonotonic()
	if err != nil {
		return platform.Timestamp{}
	}
	return ts
}

func inputCallbackInfo(stream platform.StreamInfo, creation time.Time) audio.InputCallbackInfo {
	ts := nativeTimestamp(stream)
	return audio.InputCallbackInfo{
		Timestamp: audio.InputStreamTimestamp{
			Callback: audio.StreamInstantFromDuration(time.Since(creation)),
			Capture:  audio.StreamInstantFromDuration(time.Duration(ts.TimeNanos)),
		},
	}
}

func outputCallbackInfo(stream platform.StreamInfo, creation time.Time) audio.OutputCallbackInfo {
	ts := nativeTimestamp(stream)
	return audio.OutputCallbackInfo{
		Timestamp: audio.OutputStreamTimestamp{
			Callback: audio.StreamInstantFromDuration(time.Since(creation)),
			Playback: audio.StreamInstantFromDuration(time.Duration(ts.TimeNanos)),
		},
	}
}
