package aaudio

import (
	"math"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

// channelMasks maps a channel count onto the managed-layer output mask for
// that layout. Index is count-1; counts beyond the table are not
// representable and are rejected before the native layer.
var channelMasks = [8]platform.ChannelMask{
	platform.ChannelOutMono,
	platform.ChannelOutStereo,
	platform.ChannelOutStereo | platform.ChannelOutFrontCenter,
	platform.ChannelOutQuad,
	platform.ChannelOutQuad | platform.ChannelOutFrontCenter,
	platform.ChannelOut5Point1,
	platform.ChannelOut5Point1 | platform.ChannelOutBackCenter,
	platform.ChannelOut7Point1Surround,
}

// sampleRates is the universal candidate set used when a device does not
// report its supported rates.
var sampleRates = [13]int32{
	5512, 8000, 11025, 16000, 22050, 32000, 44100, 48000, 64000, 88200, 96000, 176400, 192000,
}

var universalChannelCounts = [8]int32{1, 2, 3, 4, 5, 6, 7, 8}

var universalFormats = [2]platform.Format{platform.FormatI16, platform.FormatF32}

func sampleFormatFromNative(f platform.Format) audio.SampleFormat {
	switch f {
	case platform.FormatI16:
		return audio.SampleFormatI16
	case platform.FormatF32:
		return audio.SampleFormatF32
	}
	panic("aaudio: sample format must be specified here")
}

// bufferSizeRangeForParams asks the platform for the minimum buffer size of
// one exact triple. A positive answer bounds the range at
// [minimum, MaxInt32]; anything else means the combination could not be
// resolved and the range is unknown.
func bufferSizeRangeForParams(p platform.Platform, output bool, sampleRate int32, mask platform.ChannelMask, encoding platform.Encoding) audio.BufferSizeRange {
	minSize := p.MinBufferSize(sampleRate, mask, encoding, output)
	if minSize > 0 {
		return audio.BufferSizeRange{Known: true, Min: uint32(minSize), Max: math.MaxInt32}
	}
	return audio.BufferSizeRange{}
}

// supportedConfigs computes every configuration range a device supports in
// one direction. A device with unknown capabilities is probed across the
// universal candidate grid; a device with known capabilities is probed
// across what it reports, substituting universal candidates for any axis it
// leaves empty.
//
// Each candidate triple costs one platform round trip, so the worst case is
// the full 13x8x2 grid. Failed lookups never abort the probe: in the
// fallback path the triple is dropped, in the device path it is emitted
// with an unknown buffer-size range.
func supportedConfigs(p platform.Platform, output bool, caps platform.Capabilities) []audio.ConfigRange {
	if !caps.Known {
		return fallbackConfigs(p, output)
	}
	return deviceConfigs(p, output, caps)
}

// fallbackConfigs brute-forces the universal parameter grid with the
// minimum-buffer-size query.
func fallbackConfigs(p platform.Platform, output bool) []audio.ConfigRange {
	out := make([]audio.ConfigRange, 0, len(sampleRates)*len(channelMasks)*len(universalFormats))
	for _, format := range universalFormats {
		encoding, _ := platform.EncodingFromFormat(format)
		for maskIdx, mask := range channelMasks {
			channelCount := uint16(maskIdx + 1)
			for _, rate := range sampleRates {
				bufSize := bufferSizeRangeForParams(p, output, rate, mask, encoding)
				if !bufSize.Known {
					continue
				}
				out = append(out, audio.ConfigRange{
					Channels:      channelCount,
					MinSampleRate: audio.SampleRate(rate),
					MaxSampleRate: audio.SampleRate(rate),
					BufferSize:    bufSize,
					Format:        sampleFormatFromNative(format),
				})
			}
		}
	}
	return out
}

// deviceConfigs probes the capability axes a device reports. Channel
// counts outside the mask table are skipped per triple, a reported rate of
// 0 widens to the full [0, MaxInt32] range, and the emitted channel count
// is clamped to stereo since hardware descriptors may claim more channels
// than the generic layer should advertise.
func deviceConfigs(p platform.Platform, output bool, caps platform.Capabilities) []audio.ConfigRange {
	rates := caps.SampleRates
	if len(rates) == 0 {
		rates = sampleRates[:]
	}
	channelCounts := caps.ChannelCounts
	if len(channelCounts) == 0 {
		channelCounts = universalChannelCounts[:]
	}
	formats := caps.Formats
	if len(formats) == 0 {
		formats = universalFormats[:]
	}

	out := make([]audio.ConfigRange, 0, len(rates)*len(channelCounts)*len(formats))
	for _, rate := range rates {
		for _, channelCount := range channelCounts {
			if channelCount < 1 || int(channelCount) > len(channelMasks) {
				continue
			}
			mask := channelMasks[channelCount-1]
			for _, format := range formats {
				encoding, ok := platform.EncodingFromFormat(format)
				if !ok {
					continue
				}
				minRate, maxRate := audio.SampleRate(rate), audio.SampleRate(rate)
				if rate == 0 {
					minRate, maxRate = 0, audio.SampleRate(math.MaxInt32)
				}
				out = append(out, audio.ConfigRange{
					Channels:      uint16(min(channelCount, 2)),
					MinSampleRate: minRate,
					MaxSampleRate: maxRate,
					BufferSize:    bufferSizeRangeForParams(p, output, rate, mask, encoding),
					Format:        sampleFormatFromNative(format),
				})
			}
		}
	}
	return out
}
