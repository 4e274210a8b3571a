// Package audiotest provides scriptable fakes for the native platform
// surface, shared by the package tests across the module.
package audiotest

import (
	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/internal/runtimebridge"
)

// MinBufferCall records one invocation of the minimum-buffer-size query.
type MinBufferCall struct {
	SampleRate int32
	Mask       platform.ChannelMask
	Encoding   platform.Encoding
	Output     bool
}

// Platform is a scriptable platform.Platform.
type Platform struct {
	// MinBufferSizeFunc scripts the buffer-size query. When nil every
	// combination reports a minimum of 256 frames.
	MinBufferSizeFunc func(call MinBufferCall) int32

	// MinBufferCalls records every query in order.
	MinBufferCalls []MinBufferCall

	// Builder is handed out by NewStreamBuilder. When nil a fresh
	// StreamBuilder is created per call.
	Builder *StreamBuilder

	// NewBuilderErr fails NewStreamBuilder when set.
	NewBuilderErr error
}

func (p *Platform) MinBufferSize(sampleRate int32, mask platform.ChannelMask, encoding platform.Encoding, output bool) int32 {
	call := MinBufferCall{SampleRate: sampleRate, Mask: mask, Encoding: encoding, Output: output}
	p.MinBufferCalls = append(p.MinBufferCalls, call)
	if p.MinBufferSizeFunc == nil {
		return 256
	}
	return p.MinBufferSizeFunc(call)
}

func (p *Platform) NewStreamBuilder() (platform.StreamBuilder, error) {
	if p.NewBuilderErr != nil {
		return nil, p.NewBuilderErr
	}
	if p.Builder == nil {
		p.Builder = &StreamBuilder{}
	}
	return p.Builder, nil
}

// StreamBuilder records every native builder call so tests can assert on
// the exact parameters the adapter produced.
type StreamBuilder struct {
	Direction    platform.Direction
	DirectionSet bool

	Format    platform.Format
	FormatSet bool

	ChannelCount    int32
	ChannelCountSet bool

	DeviceID    int32
	DeviceIDSet bool

	SampleRate    int32
	SampleRateSet bool

	BufferCapacity    int32
	BufferCapacitySet bool

	DataCb platform.DataCallback
	ErrCb  platform.ErrorCallback

	// OpenErr fails Open when set. Stream, when non-nil, is the stream
	// returned by a successful Open; otherwise a fresh Stream is built.
	OpenErr error
	Stream  *Stream
}

func (b *StreamBuilder) SetDirection(d platform.Direction) platform.StreamBuilder {
	b.Direction, b.DirectionSet = d, true
	return b
}

func (b *StreamBuilder) SetFormat(f platform.Format) platform.StreamBuilder {
	b.Format, b.FormatSet = f, true
	return b
}

func (b *StreamBuilder) SetChannelCount(count int32) platform.StreamBuilder {
	b.ChannelCount, b.ChannelCountSet = count, true
	return b
}

func (b *StreamBuilder) SetDeviceID(id int32) platform.StreamBuilder {
	b.DeviceID, b.DeviceIDSet = id, true
	return b
}

func (b *StreamBuilder) SetSampleRate(rate int32) platform.StreamBuilder {
	b.SampleRate, b.SampleRateSet = rate, true
	return b
}

func (b *StreamBuilder) SetBufferCapacityInFrames(frames int32) platform.StreamBuilder {
	b.BufferCapacity, b.BufferCapacitySet = frames, true
	return b
}

func (b *StreamBuilder) SetCallbacks(data platform.DataCallback, errCb platform.ErrorCallback) platform.StreamBuilder {
	b.DataCb, b.ErrCb = data, errCb
	return b
}

func (b *StreamBuilder) Open() (platform.Stream, error) {
	if b.OpenErr != nil {
		return nil, b.OpenErr
	}
	if b.Stream == nil {
		b.Stream = &Stream{NegotiatedFormat: b.Format}
	}
	b.Stream.DataCb = b.DataCb
	b.Stream.ErrCb = b.ErrCb
	return b.Stream, nil
}

// Stream is a scriptable native stream. Tests drive the callback bridge by
// calling InvokeData and InvokeError the way the native audio thread
// would.
type Stream struct {
	NegotiatedFormat platform.Format

	Timestamp    platform.Timestamp
	TimestampErr error

	StartErr error
	PauseErr error

	StartCalls int
	PauseCalls int
	CloseCalls int

	DataCb platform.DataCallback
	ErrCb  platform.ErrorCallback
}

func (s *Stream) Format() platform.Format { return s.NegotiatedFormat }

func (s *Stream) TimestampMonotonic() (platform.Timestamp, error) {
	if s.TimestampErr != nil {
		return platform.Timestamp{}, s.TimestampErr
	}
	return s.Timestamp, nil
}

func (s *Stream) RequestStart() error {
	s.StartCalls++
	return s.StartErr
}

func (s *Stream) RequestPause() error {
	s.PauseCalls++
	return s.PauseErr
}

func (s *Stream) Close() error {
	s.CloseCalls++
	return nil
}

// InvokeData simulates one native per-buffer callback invocation.
func (s *Stream) InvokeData(buf []byte, numFrames int) platform.CallbackResult {
	return s.DataCb(s, buf, numFrames)
}

// InvokeError simulates a native stream-level fault.
func (s *Stream) InvokeError(err platform.Error) {
	s.ErrCb(s, err)
}

// InfoService is a scriptable managed device-information service.
type InfoService struct {
	Records []platform.DeviceRecord

	// Err fails every query when set; use platform.ErrUnsupported to
	// exercise the degraded single-device path.
	Err error

	// Calls records the direction mask of every query.
	Calls []platform.DeviceDirection
}

func (s *InfoService) Devices(sess runtimebridge.Session, dir platform.DeviceDirection) ([]platform.DeviceRecord, error) {
	s.Calls = append(s.Calls, dir)
	if sess == nil || !sess.Valid() {
		panic("audiotest: device query without a live runtime attachment")
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]platform.DeviceRecord, 0, len(s.Records))
	for _, rec := range s.Records {
		matchesInput := dir&platform.DeviceDirectionInput != 0 && rec.IsSource
		matchesOutput := dir&platform.DeviceDirectionOutput != 0 && rec.IsSink
		if matchesInput || matchesOutput {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Runtime is a scriptable managed runtime that counts attachments and
// releases so tests can verify the scoped-acquisition contract.
type Runtime struct {
	AttachErr error

	Attaches int
	Releases int
}

type session struct {
	released bool
}

func (s *session) Valid() bool { return !s.released }

func (r *Runtime) Attach() (runtimebridge.Session, func(), error) {
	if r.AttachErr != nil {
		return nil, nil, r.AttachErr
	}
	r.Attaches++
	sess := &session{}
	return sess, func() {
		sess.released = true
		r.Releases++
	}, nil
}
