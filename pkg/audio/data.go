package audio

import (
	"fmt"
	"unsafe"
)

// Data is a transient view over a raw native sample buffer. It is only
// valid for the duration of the callback it was handed to; callers that
// need to keep samples must copy them out.
//
// The typed accessors reinterpret the underlying bytes in place, so no
// allocation happens on the real-time path.
type Data struct {
	raw     []byte
	format  SampleFormat
	samples int
}

// NewData wraps a raw buffer in a Data view. The sample count is derived
// from the byte length and the sample size of the format; trailing bytes
// that do not make up a whole sample are ignored.
func NewData(raw []byte, format SampleFormat) Data {
	return Data{
		raw:     raw,
		format:  format,
		samples: len(raw) / format.SampleSize(),
	}
}

// Len returns the number of samples in the buffer.
func (d Data) Len() int { return d.samples }

// SampleFormat returns the format of the samples in the buffer.
func (d Data) SampleFormat() SampleFormat { return d.format }

// Bytes returns the raw backing bytes of the buffer.
func (d Data) Bytes() []byte { return d.raw }

// Int16 returns the buffer as signed 16 bit samples. It panics when the
// buffer holds another format.
func (d Data) Int16() []int16 {
	if d.format != SampleFormatI16 {
		panic(fmt.Sprintf("audio: Int16 called on %s buffer", d.format))
	}
	if d.samples == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&d.raw[0])), d.samples)
}

// Float32 returns the buffer as 32 bit float samples. It panics when the
// buffer holds another format.
func (d Data) Float32() []float32 {
	if d.format != SampleFormatF32 {
		panic(fmt.Sprintf("audio: Float32 called on %s buffer", d.format))
	}
	if d.samples == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.raw[0])), d.samples)
}
