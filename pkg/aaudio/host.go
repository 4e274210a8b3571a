package aaudio

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/internal/runtimebridge"
)

// Host is the device directory. It enumerates devices through the managed
// device-information service, attaching the calling thread to the managed
// runtime for the duration of each query.
//
// On platform versions that do not expose the service, enumeration
// degrades to a single synthetic device with unknown capabilities; it
// never fails the caller.
type Host struct {
	logger *slog.Logger

	p   platform.Platform
	svc platform.InfoService
	rt  runtimebridge.Runtime
}

// NewHost creates a host over the given native platform, device-info
// service and managed runtime.
func NewHost(p platform.Platform, svc platform.InfoService, rt runtimebridge.Runtime) *Host {
	logger := slog.Default().With(
		"aaudio host uuid", uuid.New(),
	)
	return &Host{
		logger: logger,
		p:      p,
		svc:    svc,
		rt:     rt,
	}
}

// requestDevices runs one managed device-info query under a scoped runtime
// attachment and interprets the raw records.
func (h *Host) requestDevices(dir platform.DeviceDirection) ([]platform.DeviceInfo, error) {
	return runtimebridge.WithAttached(h.rt, func(sess runtimebridge.Session) ([]platform.DeviceInfo, error) {
		recs, err := h.svc.Devices(sess, dir)
		if err != nil {
			return nil, err
		}
		infos := make([]platform.DeviceInfo, 0, len(recs))
		for _, rec := range recs {
			info, err := platform.DeviceInfoFromRecord(rec)
			if err != nil {
				return nil, err
			}
			infos = append(infos, info)
		}
		return infos, nil
	})
}

// Devices lists every device the managed service reports for either
// direction. When the query cannot be served the list degrades to the
// single synthetic default device.
func (h *Host) Devices() []*Device {
	infos, err := h.requestDevices(platform.DeviceDirectionAll)
	if err != nil {
		h.logger.Debug("device enumeration unavailable, using synthetic default device", "err", err)
		return []*Device{{p: h.p}}
	}
	devices := make([]*Device, len(infos))
	for i := range infos {
		devices[i] = &Device{p: h.p, info: &infos[i]}
	}
	return devices
}

// DefaultInputDevice returns the first capture device the managed service
// reports, or the synthetic default device when enumeration is
// unavailable. It returns nil when the service works but lists no capture
// devices.
func (h *Host) DefaultInputDevice() *Device {
	return h.defaultDevice(platform.DeviceDirectionInput)
}

// DefaultOutputDevice returns the first playback device the managed
// service reports, or the synthetic default device when enumeration is
// unavailable. It returns nil when the service works but lists no playback
// devices.
func (h *Host) DefaultOutputDevice() *Device {
	return h.defaultDevice(platform.DeviceDirectionOutput)
}

func (h *Host) defaultDevice(dir platform.DeviceDirection) *Device {
	infos, err := h.requestDevices(dir)
	if err != nil {
		h.logger.Debug("device enumeration unavailable, using synthetic default device", "err", err)
		return &Device{p: h.p}
	}
	if len(infos) == 0 {
		return nil
	}
	return &Device{p: h.p, info: &infos[0]}
}
