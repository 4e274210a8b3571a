//go:build cgo && !nonative

// Package miniaudio implements the native platform surface over the
// miniaudio library. It exists so the backend can be exercised on desktop
// systems: device enumeration, stream construction and the real-time data
// callback all run against real hardware.
//
// miniaudio does not expose per-device capability grids or hardware
// timestamps, so device records carry empty capability arrays (sending the
// prober through the universal candidate grid) and timestamp queries
// report unimplemented (sending the callback bridge through its zero
// fallback).
package miniaudio

import (
	"fmt"
	"log/slog"
	"math/bits"
	"sync/atomic"

	"github.com/gen2brain/malgo"

	"github.com/tonearm/aaudio/internal/platform"
	"github.com/tonearm/aaudio/internal/runtimebridge"
)

// Backend is a miniaudio-backed implementation of platform.Platform,
// platform.InfoService and runtimebridge.Runtime.
type Backend struct {
	logger *slog.Logger
	ctx    *malgo.AllocatedContext

	// nextID assigns directory-stable integer ids to enumerated devices;
	// deviceIDs maps them back to the native identifiers for binding.
	nextID    int32
	deviceIDs map[int32]malgo.DeviceID
	idsByKey  map[string]int32
}

// New initializes the miniaudio context.
func New(logger *slog.Logger) (*Backend, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize miniaudio context: %w", err)
	}
	return &Backend{
		logger:    logger,
		ctx:       ctx,
		nextID:    1,
		deviceIDs: make(map[int32]malgo.DeviceID),
		idsByKey:  make(map[string]int32),
	}, nil
}

// Close releases the miniaudio context.
func (b *Backend) Close() error {
	if err := b.ctx.Uninit(); err != nil {
		return err
	}
	b.ctx.Free()
	return nil
}

// Attach implements runtimebridge.Runtime. Desktop builds have no managed
// runtime to attach to, so the session is a no-op standing in for the
// process-wide runtime.
func (b *Backend) Attach() (runtimebridge.Session, func(), error) {
	return processSession{}, func() {}, nil
}

type processSession struct{}

func (processSession) Valid() bool { return true }

// MinBufferSize implements the minimum-buffer-size query. miniaudio has no
// native equivalent, so the minimum is derived from a 10ms period at the
// requested rate for combinations the library can service, and a
// non-positive value is reported for the rest.
func (b *Backend) MinBufferSize(sampleRate int32, mask platform.ChannelMask, encoding platform.Encoding, output bool) int32 {
	if _, ok := platform.FormatFromEncoding(encoding); !ok {
		return -1
	}
	if sampleRate <= 0 {
		return -1
	}
	channels := bits.OnesCount32(uint32(mask))
	if channels < 1 || channels > 8 {
		return -1
	}
	frames := sampleRate / 100
	if frames < 1 {
		frames = 1
	}
	return frames
}

func (b *Backend) intern(id malgo.DeviceID) int32 {
	key := string(id[:])
	if assigned, ok := b.idsByKey[key]; ok {
		return assigned
	}
	assigned := b.nextID
	b.nextID++
	b.idsByKey[key] = assigned
	b.deviceIDs[assigned] = id
	return assigned
}

// Devices implements platform.InfoService over miniaudio enumeration.
func (b *Backend) Devices(sess runtimebridge.Session, dir platform.DeviceDirection) ([]platform.DeviceRecord, error) {
	if sess == nil || !sess.Valid() {
		return nil, fmt.Errorf("device query without a live runtime attachment")
	}

	var recs []platform.DeviceRecord
	if dir&platform.DeviceDirectionInput != 0 {
		captures, err := b.listDevices(malgo.Capture, false)
		if err != nil {
			return nil, err
		}
		recs = append(recs, captures...)
	}
	if dir&platform.DeviceDirectionOutput != 0 {
		playbacks, err := b.listDevices(malgo.Playback, true)
		if err != nil {
			return nil, err
		}
		recs = append(recs, playbacks...)
	}
	return recs, nil
}

func (b *Backend) listDevices(typ malgo.DeviceType, sink bool) ([]platform.DeviceRecord, error) {
	devices, err := b.ctx.Devices(typ)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate miniaudio devices: %w", err)
	}

	recs := make([]platform.DeviceRecord, 0, len(devices))
	seen := make(map[int32]struct{}, len(devices))
	for _, dev := range devices {
		full, err := b.ctx.DeviceInfo(typ, dev.ID, malgo.Shared)
		if err != nil {
			b.logger.Warn("unable to get device info", "err", err)
			continue
		}

		// Avoid duplicate device ids.
		id := b.intern(full.ID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		typeCode := int32(platform.DeviceTypeBuiltinSpeaker)
		if !sink {
			typeCode = int32(platform.DeviceTypeBuiltinMic)
		}
		recs = append(recs, platform.DeviceRecord{
			ID:          id,
			ProductName: full.Name(),
			TypeCode:    typeCode,
			IsSource:    !sink,
			IsSink:      sink,
			// Capability arrays stay empty: miniaudio does not expose
			// per-device rate/channel/format grids, so the prober falls
			// back to its universal candidates.
		})
	}
	return recs, nil
}

// NewStreamBuilder implements platform.Platform.
func (b *Backend) NewStreamBuilder() (platform.StreamBuilder, error) {
	return &streamBuilder{backend: b}, nil
}

type streamBuilder struct {
	backend *Backend

	dir          platform.Direction
	format       platform.Format
	channels     int32
	deviceID     int32
	deviceIDSet  bool
	sampleRate   int32
	bufferFrames int32

	dataCb platform.DataCallback
	errCb  platform.ErrorCallback
}

func (sb *streamBuilder) SetDirection(d platform.Direction) platform.StreamBuilder {
	sb.dir = d
	return sb
}

func (sb *streamBuilder) SetFormat(f platform.Format) platform.StreamBuilder {
	sb.format = f
	return sb
}

func (sb *streamBuilder) SetChannelCount(count int32) platform.StreamBuilder {
	sb.channels = count
	return sb
}

func (sb *streamBuilder) SetDeviceID(id int32) platform.StreamBuilder {
	sb.deviceID, sb.deviceIDSet = id, true
	return sb
}

func (sb *streamBuilder) SetSampleRate(rate int32) platform.StreamBuilder {
	sb.sampleRate = rate
	return sb
}

func (sb *streamBuilder) SetBufferCapacityInFrames(frames int32) platform.StreamBuilder {
	sb.bufferFrames = frames
	return sb
}

func (sb *streamBuilder) SetCallbacks(data platform.DataCallback, errCb platform.ErrorCallback) platform.StreamBuilder {
	sb.dataCb, sb.errCb = data, errCb
	return sb
}

func (sb *streamBuilder) Open() (platform.Stream, error) {
	var malgoFormat malgo.FormatType
	switch sb.format {
	case platform.FormatI16:
		malgoFormat = malgo.FormatS16
	case platform.FormatF32:
		malgoFormat = malgo.FormatF32
	default:
		return nil, platform.ErrorInvalidFormat
	}

	output := sb.dir == platform.DirectionOutput
	deviceType := malgo.Capture
	if output {
		deviceType = malgo.Playback
	}

	deviceConfig := malgo.DefaultDeviceConfig(deviceType)
	deviceConfig.SampleRate = uint32(sb.sampleRate)
	if sb.bufferFrames > 0 {
		deviceConfig.PeriodSizeInFrames = uint32(sb.bufferFrames)
	}
	deviceConfig.Alsa.NoMMap = 1

	sub := &deviceConfig.Capture
	if output {
		sub = &deviceConfig.Playback
	}
	sub.Format = malgoFormat
	sub.Channels = uint32(sb.channels)
	if sb.deviceIDSet {
		if nativeID, ok := sb.backend.deviceIDs[sb.deviceID]; ok {
			sub.DeviceID = nativeID.Pointer()
		}
	}

	st := &stream{format: sb.format}
	callbacks := malgo.DeviceCallbacks{
		Data: func(out, in []byte, frameCount uint32) {
			buf := in
			if output {
				buf = out
			}
			// The bridge always continues; stream teardown only ever
			// comes from the owner, so the result is dropped here.
			sb.dataCb(st, buf, int(frameCount))
		},
		Stop: func() {
			// miniaudio fires Stop for owner-requested pauses too; only a
			// stop the owner did not ask for is a device fault.
			if sb.errCb != nil && !st.stopping.Load() {
				sb.errCb(st, platform.ErrorDisconnected)
			}
		},
	}

	dev, err := malgo.InitDevice(sb.backend.ctx.Context, deviceConfig, callbacks)
	if err != nil {
		return nil, fmt.Errorf("failed to open miniaudio stream: %w", err)
	}
	st.dev = dev
	return st, nil
}

type stream struct {
	dev      *malgo.Device
	format   platform.Format
	stopping atomic.Bool
}

func (s *stream) Format() platform.Format { return s.format }

// TimestampMonotonic always fails: miniaudio exposes no hardware
// timestamps, so callers fall back to the zero timestamp.
func (s *stream) TimestampMonotonic() (platform.Timestamp, error) {
	return platform.Timestamp{}, platform.ErrorUnimplemented
}

func (s *stream) RequestStart() error {
	s.stopping.Store(false)
	return s.dev.Start()
}

func (s *stream) RequestPause() error {
	s.stopping.Store(true)
	return s.dev.Stop()
}

func (s *stream) Close() error {
	s.stopping.Store(true)
	s.dev.Uninit()
	return nil
}
