//go:build !cgo || nonative

// This backend is only used in cgo-less and nonative builds. Every device
// query reports platform.ErrUnsupported, so the directory degrades to its
// single synthetic default device, and stream construction fails with the
// native unavailable code.
package miniaudio

import (
	"log/slog"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/internal/runtimebridge"
)

type Backend struct{}

func New(logger *slog.Logger) (*Backend, error) {
	return &Backend{}, nil
}

func (b *Backend) Close() error { return nil }

func (b *Backend) Attach() (runtimebridge.Session, func(), error) {
	return processSession{}, func() {}, nil
}

type processSession struct{}

func (processSession) Valid() bool { return true }

func (b *Backend) MinBufferSize(sampleRate int32, mask platform.ChannelMask, encoding platform.Encoding, output bool) int32 {
	return -1
}

func (b *Backend) Devices(sess runtimebridge.Session, dir platform.DeviceDirection) ([]platform.DeviceRecord, error) {
	return nil, platform.ErrUnsupported
}

func (b *Backend) NewStreamBuilder() (platform.StreamBuilder, error) {
	return nil, platform.ErrorUnavailable
}
