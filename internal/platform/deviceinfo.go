package platform

import (
	"errors"
	"fmt"

	"github.com/tonearm/aaudio/internal/runtimebridge"
)

// ErrUnsupported reports that the managed device-information service is
// not available on this platform version. Enumeration degrades to a single
// unknown device rather than failing.
var ErrUnsupported = errors.New("device info queries are unsupported on this platform version")

// DeviceDirection is the direction bitmask used when querying the managed
// device-information service.
type DeviceDirection int32

const (
	DeviceDirectionInput  DeviceDirection = 1 << 0
	DeviceDirectionOutput DeviceDirection = 1 << 1
	DeviceDirectionAll                    = DeviceDirectionInput | DeviceDirectionOutput
)

// DeviceDirectionFromFlags derives the direction from a record's
// source/sink flags. ok is false when a record claims neither.
func DeviceDirectionFromFlags(isSource, isSink bool) (DeviceDirection, bool) {
	switch {
	case isSource && isSink:
		return DeviceDirectionAll, true
	case isSource:
		return DeviceDirectionInput, true
	case isSink:
		return DeviceDirectionOutput, true
	}
	return 0, false
}

// DeviceType is the managed-layer device type code.
type DeviceType int32

const (
	DeviceTypeUnknown         DeviceType = 0
	DeviceTypeBuiltinEarpiece DeviceType = 1
	DeviceTypeBuiltinSpeaker  DeviceType = 2
	DeviceTypeWiredHeadset    DeviceType = 3
	DeviceTypeWiredHeadphones DeviceType = 4
	DeviceTypeLineAnalog      DeviceType = 5
	DeviceTypeLineDigital     DeviceType = 6
	DeviceTypeBluetoothSCO    DeviceType = 7
	DeviceTypeBluetoothA2DP   DeviceType = 8
	DeviceTypeHDMI            DeviceType = 9
	DeviceTypeHDMIARC         DeviceType = 10
	DeviceTypeUSBDevice       DeviceType = 11
	DeviceTypeUSBAccessory    DeviceType = 12
	DeviceTypeDock            DeviceType = 13
	DeviceTypeFM              DeviceType = 14
	DeviceTypeBuiltinMic      DeviceType = 15
	DeviceTypeFMTuner         DeviceType = 16
	DeviceTypeTVTuner         DeviceType = 17
	DeviceTypeTelephony       DeviceType = 18
	DeviceTypeAuxLine         DeviceType = 19
	DeviceTypeIP              DeviceType = 20
	DeviceTypeBus             DeviceType = 21
	DeviceTypeUSBHeadset      DeviceType = 22
	DeviceTypeHearingAid      DeviceType = 23
)

// DeviceRecord is the raw record returned by the managed
// device-information service, before any interpretation.
type DeviceRecord struct {
	ID            int32
	Address       string
	ProductName   string
	TypeCode      int32
	IsSource      bool
	IsSink        bool
	ChannelCounts []int32
	SampleRates   []int32
	Encodings     []int32
}

// InfoService is the managed device-information service. Queries require a
// live runtime attachment and may block for its duration.
type InfoService interface {
	// Devices returns the raw records for every device matching the
	// direction mask. It returns ErrUnsupported when the platform version
	// does not expose the service.
	Devices(sess runtimebridge.Session, dir DeviceDirection) ([]DeviceRecord, error)
}

// DeviceInfo is an interpreted device record.
type DeviceInfo struct {
	ID          int32
	Type        DeviceType
	Direction   DeviceDirection
	Address     string
	ProductName string

	// Self-reported capability axes. An empty axis means the device
	// reports nothing for it.
	ChannelCounts []int32
	SampleRates   []int32
	Formats       []Format
}

// Capabilities is the probing input derived from a device. The zero value
// is the Unknown variant and makes the prober fall back to the universal
// candidate grid.
type Capabilities struct {
	Known bool

	SampleRates   []int32
	ChannelCounts []int32
	Formats       []Format
}

// Capabilities returns the Known capability variant for this device. Axes
// the device does not report stay empty and are substituted with universal
// candidates by the prober.
func (d *DeviceInfo) Capabilities() Capabilities {
	return Capabilities{
		Known:         true,
		SampleRates:   d.SampleRates,
		ChannelCounts: d.ChannelCounts,
		Formats:       d.Formats,
	}
}

// DeviceInfoFromRecord interprets a raw record. Encoding codes outside the
// supported PCM formats are dropped; a record claiming to be neither
// source nor sink is rejected.
func DeviceInfoFromRecord(rec DeviceRecord) (DeviceInfo, error) {
	dir, ok := DeviceDirectionFromFlags(rec.IsSource, rec.IsSink)
	if !ok {
		return DeviceInfo{}, fmt.Errorf("device %d (%q): invalid device direction", rec.ID, rec.ProductName)
	}

	formats := make([]Format, 0, len(rec.Encodings))
	for _, enc := range rec.Encodings {
		if f, ok := FormatFromEncoding(Encoding(enc)); ok {
			formats = append(formats, f)
		}
	}

	return DeviceInfo{
		ID:            rec.ID,
		Type:          DeviceType(rec.TypeCode),
		Direction:     dir,
		Address:       rec.Address,
		ProductName:   rec.ProductName,
		ChannelCounts: rec.ChannelCounts,
		SampleRates:   rec.SampleRates,
		Formats:       formats,
	}, nil
}
