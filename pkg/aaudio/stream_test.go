package aaudio

import (
	"errors"
	"testing"

	"github.com/tonearm/aaudio/internal/audiotest"
	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

func buildTestInputStream(t *testing.T, p *audiotest.Platform, dataCb InputDataCallback, errCb ErrorCallback) *Stream {
	t.Helper()
	d := &Device{p: p}
	cfg := audio.Config{Channels: 1, SampleRate: 48000}
	s, err := d.BuildInputStream(cfg, audio.SampleFormatI16, dataCb, errCb)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInputStreamDeliversTypedData(t *testing.T) {
	p := &audiotest.Platform{}
	var got []int16
	s := buildTestInputStream(t, p, func(data audio.Data, _ audio.InputCallbackInfo) {
		got = append(got[:0], data.Int16()...)
	}, func(error) { t.Error("unexpected error callback") })
	defer s.Close()

	buf := make([]byte, 6)
	staged := audio.NewData(buf, audio.SampleFormatI16).Int16()
	staged[0], staged[1], staged[2] = 100, -1, 7

	res := p.Builder.Stream.InvokeData(buf, 3)

	if res != platform.CallbackContinue {
		t.Error("the bridge must always request continuation")
	}
	want := []int16{100, -1, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestStreamFormatFollowsNegotiation(t *testing.T) {
	// The stream is requested as i16 but the native layer negotiates f32;
	// delivered buffers must be viewed with the negotiated format.
	p := &audiotest.Platform{
		Builder: &audiotest.StreamBuilder{
			Stream: &audiotest.Stream{NegotiatedFormat: platform.FormatF32},
		},
	}
	var gotFormat audio.SampleFormat
	s := buildTestInputStream(t, p, func(data audio.Data, _ audio.InputCallbackInfo) {
		gotFormat = data.SampleFormat()
	}, func(error) {})
	defer s.Close()

	p.Builder.Stream.InvokeData(make([]byte, 8), 2)

	if gotFormat != audio.SampleFormatF32 {
		t.Errorf("expected the negotiated f32 view, got %s", gotFormat)
	}
}

func TestInputTimestampFallsBackToZero(t *testing.T) {
	p := &audiotest.Platform{
		Builder: &audiotest.StreamBuilder{
			Stream: &audiotest.Stream{
				NegotiatedFormat: platform.FormatI16,
				TimestampErr:     platform.ErrorUnimplemented,
			},
		},
	}
	var info audio.InputCallbackInfo
	s := buildTestInputStream(t, p, func(_ audio.Data, i audio.InputCallbackInfo) {
		info = i
	}, func(error) {})
	defer s.Close()

	p.Builder.Stream.InvokeData(make([]byte, 4), 2)

	if info.Timestamp.Capture != (audio.StreamInstant{}) {
		t.Errorf("expected the zero capture instant, got %+v", info.Timestamp.Capture)
	}
}

func TestInputTimestampUsesHardwareClock(t *testing.T) {
	p := &audiotest.Platform{
		Builder: &audiotest.StreamBuilder{
			Stream: &audiotest.Stream{
				NegotiatedFormat: platform.FormatI16,
				Timestamp:        platform.Timestamp{FramePosition: 480, TimeNanos: 2_500_000_000},
			},
		},
	}
	var info audio.InputCallbackInfo
	s := buildTestInputStream(t, p, func(_ audio.Data, i audio.InputCallbackInfo) {
		info = i
	}, func(error) {})
	defer s.Close()

	p.Builder.Stream.InvokeData(make([]byte, 4), 2)

	want := audio.StreamInstant{Secs: 2, Nanos: 500_000_000}
	if info.Timestamp.Capture != want {
		t.Errorf("expected capture instant %+v, got %+v", want, info.Timestamp.Capture)
	}
}

func TestOutputStreamCallbackInfo(t *testing.T) {
	p := &audiotest.Platform{}
	d := &Device{p: p}
	cfg := audio.Config{Channels: 2, SampleRate: 48000}

	var calls int
	s, err := d.BuildOutputStream(cfg, audio.SampleFormatF32, func(data audio.Data, info audio.OutputCallbackInfo) {
		calls++
		if data.SampleFormat() != audio.SampleFormatF32 {
			t.Errorf("expected f32 data, got %s", data.SampleFormat())
		}
		if data.Len() != 4 {
			t.Errorf("expected 4 samples, got %d", data.Len())
		}
	}, func(error) {})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	p.Builder.Stream.InvokeData(make([]byte, 16), 2)

	if calls != 1 {
		t.Fatalf("expected one data callback, got %d", calls)
	}
}

func TestStreamErrorCallbackMapping(t *testing.T) {
	tests := []struct {
		name string
		code platform.Error
		want func(error) bool
	}{
		{"disconnected", platform.ErrorDisconnected, func(err error) bool {
			return errors.Is(err, audio.ErrDeviceNotAvailable)
		}},
		{"unavailable", platform.ErrorUnavailable, func(err error) bool {
			return errors.Is(err, audio.ErrDeviceNotAvailable)
		}},
		{"internal", platform.ErrorInternal, func(err error) bool {
			var be *audio.BackendError
			return errors.As(err, &be)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &audiotest.Platform{}
			var got error
			s := buildTestInputStream(t, p, func(audio.Data, audio.InputCallbackInfo) {}, func(err error) {
				got = err
			})
			defer s.Close()

			p.Builder.Stream.InvokeError(tt.code)

			if got == nil || !tt.want(got) {
				t.Errorf("unexpected mapped error %v", got)
			}
		})
	}
}

func TestStreamPlayPause(t *testing.T) {
	p := &audiotest.Platform{}
	s := buildTestInputStream(t, p, func(audio.Data, audio.InputCallbackInfo) {}, func(error) {})
	defer s.Close()

	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}

	native := p.Builder.Stream
	if native.StartCalls != 1 || native.PauseCalls != 1 {
		t.Errorf("expected one start and one pause, got %d/%d", native.StartCalls, native.PauseCalls)
	}
}

func TestStreamControlErrorsMapped(t *testing.T) {
	p := &audiotest.Platform{
		Builder: &audiotest.StreamBuilder{
			Stream: &audiotest.Stream{
				NegotiatedFormat: platform.FormatI16,
				StartErr:         platform.ErrorDisconnected,
				PauseErr:         platform.ErrorInvalidState,
			},
		},
	}
	s := buildTestInputStream(t, p, func(audio.Data, audio.InputCallbackInfo) {}, func(error) {})
	defer s.Close()

	if err := s.Play(); !errors.Is(err, audio.ErrDeviceNotAvailable) {
		t.Errorf("expected ErrDeviceNotAvailable from start, got %v", err)
	}
	var be *audio.BackendError
	if err := s.Pause(); !errors.As(err, &be) {
		t.Errorf("expected a backend error from pause, got %v", err)
	}
}

func TestStreamCloseIdempotent(t *testing.T) {
	p := &audiotest.Platform{}
	s := buildTestInputStream(t, p, func(audio.Data, audio.InputCallbackInfo) {}, func(error) {})

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if got := p.Builder.Stream.CloseCalls; got != 1 {
		t.Errorf("expected the native stream closed once, got %d", got)
	}
}

func TestBuildStreamOpenFailureMapped(t *testing.T) {
	p := &audiotest.Platform{
		Builder: &audiotest.StreamBuilder{OpenErr: platform.ErrorInvalidRate},
	}
	d := &Device{p: p}
	cfg := audio.Config{Channels: 1, SampleRate: 48000}

	_, err := d.BuildInputStream(cfg, audio.SampleFormatI16, func(audio.Data, audio.InputCallbackInfo) {}, func(error) {})

	if !errors.Is(err, audio.ErrStreamConfigNotSupported) {
		t.Fatalf("expected ErrStreamConfigNotSupported, got %v", err)
	}
}
