// Package convert adapts interleaved float32 sample buffers between a
// stream's negotiated configuration and the configuration a consumer wants
// delivered: mono/stereo fan-out and fold-down plus sample-rate
// conversion.
//
// The native layer may negotiate a different layout or rate than the
// caller asked for, so a Chain built from the negotiated and desired
// properties sits naturally between a stream's data callback and whatever
// consumes the samples.
package convert

import (
	"github.com/oov/audio/resampler"
)

const (
	// To avoid reallocating for every buffer, reuse a scratch buffer with
	// "enough size". 48000Hz stereo audio at a 120ms latency is 11520
	// samples, so 2**14 = 16384 covers anything reasonable.
	scratchSize = 16384

	resampleQuality = 10
)

// Properties describes the sample layout on one side of a conversion.
type Properties struct {
	SampleRate  int
	NumChannels int
}

type stageFunc func(buf []float32) []float32

// Chain converts interleaved float32 buffers from a source layout to a
// sink layout. A Chain carries per-stage scratch buffers and resampler
// state, so it must not be shared between goroutines.
type Chain struct {
	source Properties
	sink   Properties
	stages []stageFunc
}

// New builds the conversion chain between two layouts. Only mono and
// stereo layouts are supported; a chain between identical layouts is valid
// and passes buffers through untouched.
func New(source, sink Properties) *Chain {
	stages := make([]stageFunc, 0, 2)
	if source.NumChannels == 1 && sink.NumChannels == 2 {
		stages = append(stages, monoToStereo())
	}
	if source.NumChannels == 2 && sink.NumChannels == 1 {
		stages = append(stages, stereoToMono())
	}
	if source.SampleRate != sink.SampleRate {
		stages = append(stages, newResampleStage(source, sink))
	}
	return &Chain{source: source, sink: sink, stages: stages}
}

// Source returns the layout of the data entering the chain.
func (c *Chain) Source() Properties { return c.source }

// Sink returns the layout of the data leaving the chain.
func (c *Chain) Sink() Properties { return c.sink }

// Process converts one interleaved buffer. The returned slice aliases
// internal scratch storage and is only valid until the next call.
func (c *Chain) Process(buf []float32) []float32 {
	for _, stage := range c.stages {
		buf = stage(buf)
	}
	return buf
}

func monoToStereo() stageFunc {
	buf := make([]float32, scratchSize)
	return func(src []float32) []float32 {
		for i, v := range src {
			buf[2*i] = v
			buf[2*i+1] = v
		}
		return buf[:2*len(src)]
	}
}

func stereoToMono() stageFunc {
	buf := make([]float32, scratchSize)
	return func(src []float32) []float32 {
		if len(src)%2 == 1 {
			src = src[:len(src)-1]
		}
		for i := 0; i < len(src)/2; i++ {
			buf[i] = (src[2*i] + src[2*i+1]) / 2
		}
		return buf[:len(src)/2]
	}
}

func newResampleStage(source, sink Properties) stageFunc {
	if sink.NumChannels == 1 {
		r := resampler.New(1, source.SampleRate, sink.SampleRate, resampleQuality)
		buf := make([]float32, scratchSize)
		return func(src []float32) []float32 {
			_, written := r.ProcessFloat32(0, src, buf)
			return buf[:written]
		}
	}

	r := resampler.New(2, source.SampleRate, sink.SampleRate, resampleQuality)
	leftSrc := make([]float32, scratchSize/2)
	rightSrc := make([]float32, scratchSize/2)
	leftSink := make([]float32, scratchSize/2)
	rightSink := make([]float32, scratchSize/2)
	buf := make([]float32, scratchSize)
	return func(src []float32) []float32 {
		if len(src)%2 == 1 {
			src = src[:len(src)-1]
		}
		n := len(src) / 2

		// The resampler works on planar data, src is interleaved.
		for i := 0; i < n; i++ {
			leftSrc[i] = src[2*i]
			rightSrc[i] = src[2*i+1]
		}

		_, written := r.ProcessFloat32(0, leftSrc[:n], leftSink)
		r.ProcessFloat32(1, rightSrc[:n], rightSink)

		for i := 0; i < written; i++ {
			buf[2*i] = leftSink[i]
			buf[2*i+1] = rightSink[i]
		}
		return buf[:2*written]
	}
}
