package audio

import (
	"math"
	"testing"
	"time"
)

func rangeWith(channels uint16, minRate, maxRate SampleRate, format SampleFormat) ConfigRange {
	return ConfigRange{
		Channels:      channels,
		MinSampleRate: minRate,
		MaxSampleRate: maxRate,
		BufferSize:    BufferSizeRange{Known: true, Min: 256, Max: math.MaxInt32},
		Format:        format,
	}
}

func TestCompareDefaultHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		better   ConfigRange
		worse    ConfigRange
		expected int
	}{
		{
			"stereo beats mono",
			rangeWith(2, 44100, 44100, SampleFormatI16),
			rangeWith(1, 44100, 44100, SampleFormatI16),
			1,
		},
		{
			"stereo beats five channels",
			rangeWith(2, 44100, 44100, SampleFormatI16),
			rangeWith(5, 44100, 44100, SampleFormatI16),
			1,
		},
		{
			"f32 beats i16 at equal layout",
			rangeWith(2, 44100, 44100, SampleFormatF32),
			rangeWith(2, 44100, 44100, SampleFormatI16),
			1,
		},
		{
			"i16 beats u16 at equal layout",
			rangeWith(2, 44100, 44100, SampleFormatI16),
			rangeWith(2, 44100, 44100, SampleFormatU16),
			1,
		},
		{
			"mono beats three channels",
			rangeWith(1, 44100, 44100, SampleFormatI16),
			rangeWith(3, 44100, 44100, SampleFormatI16),
			1,
		},
		{
			"more channels beats fewer past stereo and mono",
			rangeWith(6, 44100, 44100, SampleFormatI16),
			rangeWith(4, 44100, 44100, SampleFormatI16),
			1,
		},
		{
			"range containing nominal rate beats higher range without it",
			rangeWith(2, 8000, 48000, SampleFormatI16),
			rangeWith(2, 48000, 96000, SampleFormatI16),
			1,
		},
		{
			"higher max rate wins when both contain nominal",
			rangeWith(2, 8000, 96000, SampleFormatI16),
			rangeWith(2, 8000, 48000, SampleFormatI16),
			1,
		},
		{
			"identical ranges tie",
			rangeWith(2, 44100, 44100, SampleFormatF32),
			rangeWith(2, 44100, 44100, SampleFormatF32),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.better.CompareDefaultHeuristics(tt.worse); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
			if tt.expected != 0 {
				if got := tt.worse.CompareDefaultHeuristics(tt.better); got != -tt.expected {
					t.Errorf("expected reversed comparison %d, got %d", -tt.expected, got)
				}
			}
		})
	}
}

func TestWithMaxSampleRate(t *testing.T) {
	r := rangeWith(2, 8000, 96000, SampleFormatF32)
	cfg := r.WithMaxSampleRate()

	if cfg.SampleRate != 96000 {
		t.Errorf("expected sample rate 96000, got %d", cfg.SampleRate)
	}
	if cfg.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", cfg.Channels)
	}
	if cfg.Format != SampleFormatF32 {
		t.Errorf("expected f32 format, got %s", cfg.Format)
	}
	if cfg.BufferSize != r.BufferSize {
		t.Errorf("expected buffer size range preserved, got %+v", cfg.BufferSize)
	}
}

func TestSupportedConfigToConfig(t *testing.T) {
	cfg := SupportedConfig{
		Channels:   2,
		SampleRate: 48000,
		Format:     SampleFormatI16,
	}.Config()

	if cfg.BufferSize.Policy != BufferSizeDefault {
		t.Errorf("expected default buffer size policy, got %d", cfg.BufferSize.Policy)
	}
	if cfg.Channels != 2 || cfg.SampleRate != 48000 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestStreamInstantFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected StreamInstant
	}{
		{"zero", 0, StreamInstant{}},
		{"sub second", 250 * time.Millisecond, StreamInstant{Secs: 0, Nanos: 250_000_000}},
		{"whole seconds", 3 * time.Second, StreamInstant{Secs: 3, Nanos: 0}},
		{"mixed", 2*time.Second + 5*time.Nanosecond, StreamInstant{Secs: 2, Nanos: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StreamInstantFromDuration(tt.duration); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
