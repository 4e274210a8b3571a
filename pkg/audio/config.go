package audio

import "cmp"

// SampleRate is a stream sample rate in frames per second.
type SampleRate uint32

// NominalSampleRate is the rate favoured by the default config heuristics
// when a range can supply it.
const NominalSampleRate SampleRate = 44100

// BufferSizePolicy selects how the native buffer capacity is chosen when
// opening a stream.
type BufferSizePolicy int

const (
	// BufferSizeDefault leaves the buffer capacity to the platform.
	BufferSizeDefault BufferSizePolicy = iota
	// BufferSizeFixed requests an explicit capacity in frames.
	BufferSizeFixed
)

// BufferSize is the buffer capacity requested for a stream. Frames is only
// meaningful when Policy is BufferSizeFixed.
type BufferSize struct {
	Policy BufferSizePolicy
	Frames uint32
}

// FixedBufferSize returns a BufferSize requesting an explicit capacity.
func FixedBufferSize(frames uint32) BufferSize {
	return BufferSize{Policy: BufferSizeFixed, Frames: frames}
}

// BufferSizeRange is the range of supported buffer capacities in frames for
// one probed configuration. Known is false when the platform could not
// report a minimum for the combination.
type BufferSizeRange struct {
	Known bool
	Min   uint32
	Max   uint32
}

// Config is a fully resolved stream configuration, ready to be handed to a
// backend for stream construction.
type Config struct {
	Channels   uint16
	SampleRate SampleRate
	BufferSize BufferSize
}

// ConfigRange describes a set of stream configurations supported by a
// device for one direction, expressed as bounds rather than fixed values.
type ConfigRange struct {
	Channels      uint16
	MinSampleRate SampleRate
	MaxSampleRate SampleRate
	BufferSize    BufferSizeRange
	Format        SampleFormat
}

// SupportedConfig is a concrete configuration resolved from a ConfigRange.
type SupportedConfig struct {
	Channels   uint16
	SampleRate SampleRate
	BufferSize BufferSizeRange
	Format     SampleFormat
}

// Config converts the supported configuration into a Config with the
// platform-default buffer size.
func (c SupportedConfig) Config() Config {
	return Config{
		Channels:   c.Channels,
		SampleRate: c.SampleRate,
		BufferSize: BufferSize{Policy: BufferSizeDefault},
	}
}

// WithMaxSampleRate resolves the range to a concrete configuration at its
// maximum sample rate. Channel count, buffer size and format are kept.
func (r ConfigRange) WithMaxSampleRate() SupportedConfig {
	return SupportedConfig{
		Channels:   r.Channels,
		SampleRate: r.MaxSampleRate,
		BufferSize: r.BufferSize,
		Format:     r.Format,
	}
}

func (r ConfigRange) containsRate(rate SampleRate) bool {
	return r.MinSampleRate <= rate && rate <= r.MaxSampleRate
}

// CompareDefaultHeuristics orders two ranges by their desirability as a
// default configuration. It returns a negative value when r is the worse
// candidate, positive when it is the better one, and 0 when the heuristics
// cannot separate them.
//
// The order favours, in turn: stereo layouts, f32 then i16 samples, mono
// layouts, higher channel counts, ranges containing the nominal 44100 Hz
// rate, and finally higher maximum sample rates.
func (r ConfigRange) CompareDefaultHeuristics(o ConfigRange) int {
	if c := cmpBool(r.Channels == 2, o.Channels == 2); c != 0 {
		return c
	}
	if c := cmpBool(r.Format == SampleFormatF32, o.Format == SampleFormatF32); c != 0 {
		return c
	}
	if c := cmpBool(r.Format == SampleFormatI16, o.Format == SampleFormatI16); c != 0 {
		return c
	}
	if c := cmpBool(r.Channels == 1, o.Channels == 1); c != 0 {
		return c
	}
	if c := cmp.Compare(r.Channels, o.Channels); c != 0 {
		return c
	}
	if c := cmpBool(r.containsRate(NominalSampleRate), o.containsRate(NominalSampleRate)); c != 0 {
		return c
	}
	return cmp.Compare(r.MaxSampleRate, o.MaxSampleRate)
}

func cmpBool(a, b bool) int {
	switch {
	case a && !b:
		return 1
	case !a && b:
		return -1
	}
	return 0
}
