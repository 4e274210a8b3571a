package platform

// Encoding is a managed-layer PCM encoding code, as reported in device
// records and consumed by the minimum-buffer-size query.
type Encoding int32

const (
	EncodingPCM16Bit Encoding = 2
	EncodingPCMFloat Encoding = 4
)

// FormatFromEncoding maps a managed-layer encoding code onto a native
// stream format. Encodings outside the two supported PCM formats report
// ok == false and are dropped by callers.
func FormatFromEncoding(encoding Encoding) (Format, bool) {
	switch encoding {
	case EncodingPCM16Bit:
		return FormatI16, true
	case EncodingPCMFloat:
		return FormatF32, true
	}
	return FormatUnspecified, false
}

// EncodingFromFormat is the reverse mapping, used when probing buffer
// sizes for a native format.
func EncodingFromFormat(format Format) (Encoding, bool) {
	switch format {
	case FormatI16:
		return EncodingPCM16Bit, true
	case FormatF32:
		return EncodingPCMFloat, true
	}
	return 0, false
}

// ChannelMask is a managed-layer output channel position bitmask.
type ChannelMask int32

// Output channel position bits.
const (
	ChannelOutFrontLeft    ChannelMask = 0x4
	ChannelOutFrontRight   ChannelMask = 0x8
	ChannelOutFrontCenter  ChannelMask = 0x10
	ChannelOutLowFrequency ChannelMask = 0x20
	ChannelOutBackLeft     ChannelMask = 0x40
	ChannelOutBackRight    ChannelMask = 0x80
	ChannelOutBackCenter   ChannelMask = 0x400
	ChannelOutSideLeft     ChannelMask = 0x800
	ChannelOutSideRight    ChannelMask = 0x1000
)

// Named output layouts.
const (
	ChannelOutMono   = ChannelOutFrontLeft
	ChannelOutStereo = ChannelOutFrontLeft | ChannelOutFrontRight
	ChannelOutQuad   = ChannelOutStereo | ChannelOutBackLeft | ChannelOutBackRight
	ChannelOut5Point1 = ChannelOutQuad |
		ChannelOutFrontCenter | ChannelOutLowFrequency
	ChannelOut7Point1Surround = ChannelOut5Point1 |
		ChannelOutSideLeft | ChannelOutSideRight
)
