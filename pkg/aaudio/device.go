package aaudio

import (
	"slices"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/pkg/audio"
)

// Device is one entry of the device directory. A nil info marks the
// synthetic default device used when the managed device-information
// service is unavailable; its capabilities are unknown and probed through
// the universal candidate grid.
type Device struct {
	p    platform.Platform
	info *platform.DeviceInfo
}

// Name returns the device product name, or "default" for the synthetic
// default device.
func (d *Device) Name() string {
	if d.info == nil {
		return "default"
	}
	return d.info.ProductName
}

// Info returns the interpreted device record, or nil for the synthetic
// default device.
func (d *Device) Info() *platform.DeviceInfo {
	return d.info
}

func (d *Device) capabilities() platform.Capabilities {
	if d.info == nil {
		return platform.Capabilities{}
	}
	return d.info.Capabilities()
}

// SupportedInputConfigs probes the capture configuration ranges this
// device supports. The call is synchronous and may block on one platform
// round trip per candidate triple.
func (d *Device) SupportedInputConfigs() []audio.ConfigRange {
	return supportedConfigs(d.p, false, d.capabilities())
}

// SupportedOutputConfigs probes the playback configuration ranges this
// device supports.
func (d *Device) SupportedOutputConfigs() []audio.ConfigRange {
	return supportedConfigs(d.p, true, d.capabilities())
}

// DefaultInputConfig resolves a concrete default capture configuration.
// It fails with audio.ErrStreamTypeNotSupported when the device exposes no
// capture configuration ranges at all.
func (d *Device) DefaultInputConfig() (audio.SupportedConfig, error) {
	return defaultConfig(d.SupportedInputConfigs())
}

// DefaultOutputConfig resolves a concrete default playback configuration.
// It fails with audio.ErrStreamTypeNotSupported when the device exposes no
// playback configuration ranges at all.
func (d *Device) DefaultOutputConfig() (audio.SupportedConfig, error) {
	return defaultConfig(d.SupportedOutputConfigs())
}

// defaultConfig ranks the ranges with the default heuristics and resolves
// the winner at its maximum sample rate.
func defaultConfig(ranges []audio.ConfigRange) (audio.SupportedConfig, error) {
	if len(ranges) == 0 {
		return audio.SupportedConfig{}, audio.ErrStreamTypeNotSupported
	}
	best := slices.MaxFunc(ranges, func(a, b audio.ConfigRange) int {
		return a.CompareDefaultHeuristics(b)
	})
	return best.WithMaxSampleRate(), nil
}
