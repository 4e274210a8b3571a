package aaudio

import (
	"fmt"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

// builderForDevice translates a generic stream configuration into native
// builder parameters. Unsupported sample formats and out-of-range channel
// counts fail here, before any native call is made.
func builderForDevice(p platform.Platform, info *platform.DeviceInfo, cfg audio.Config, format audio.SampleFormat, dir platform.Direction) (platform.StreamBuilder, error) {
	var nativeFormat platform.Format
	switch format {
	case audio.SampleFormatI16:
		nativeFormat = platform.FormatI16
	case audio.SampleFormatF32:
		nativeFormat = platform.FormatF32
	default:
		return nil, &audio.BackendError{
			Description: fmt.Sprintf("%s sample format is not supported by this backend", format),
		}
	}

	if cfg.Channels < 1 || int(cfg.Channels) > len(channelMasks) {
		return nil, fmt.Errorf("channel count %d outside [1, %d]: %w",
			cfg.Channels, len(channelMasks), audio.ErrInvalidArgument)
	}

	b, err := p.NewStreamBuilder()
	if err != nil {
		return nil, buildStreamError(err)
	}

	b = b.SetDirection(dir).
		SetFormat(nativeFormat).
		SetChannelCount(int32(cfg.Channels))
	if info != nil {
		b = b.SetDeviceID(info.ID)
	}
	b = b.SetSampleRate(int32(cfg.SampleRate))
	if cfg.BufferSize.Policy == audio.BufferSizeFixed {
		b = b.SetBufferCapacityInFrames(int32(cfg.BufferSize.Frames))
	}
	return b, nil
}
