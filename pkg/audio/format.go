package audio

import "fmt"

// SampleFormat describes the in-memory representation of a single sample.
type SampleFormat int

const (
	// SampleFormatI16 is a signed 16 bit integer sample.
	SampleFormatI16 SampleFormat = iota
	// SampleFormatU16 is an unsigned 16 bit integer sample.
	SampleFormatU16
	// SampleFormatF32 is a 32 bit float sample in the range [-1.0, 1.0].
	SampleFormatF32
)

// SampleSize returns the size in bytes of a single sample of this format.
func (f SampleFormat) SampleSize() int {
	switch f {
	case SampleFormatI16, SampleFormatU16:
		return 2
	case SampleFormatF32:
		return 4
	}
	panic(fmt.Sprintf("audio: unknown sample format %d", int(f)))
}

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatI16:
		return "i16"
	case SampleFormatU16:
		return "u16"
	case SampleFormatF32:
		return "f32"
	}
	return fmt.Sprintf("SampleFormat(%d)", int(f))
}
