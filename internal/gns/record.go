// Package gns decodes a map's GNS directory file: the sequence of 20-byte
// records naming each mesh and texture resource, its on-disc location and
// the map state it belongs to.
package gns

import (
	"fmt"

	"fft-map-extractor/internal/span"
)

const (
	// RecordSize is the on-disk size of one directory record.
	RecordSize = 20
	// MaxRecords bounds a single GNS file.
	MaxRecords = 40
)

// Time is the time-of-day half of a map state.
type Time uint8

const (
	TimeDay   Time = 0x0
	TimeNight Time = 0x1
)

func (t Time) String() string {
	switch t {
	case TimeDay:
		return "Day"
	case TimeNight:
		return "Night"
	default:
		return "Unknown"
	}
}

// Weather is the weather half of a map state.
type Weather uint8

const (
	WeatherNone       Weather = 0x0
	WeatherNoneAlt    Weather = 0x1
	WeatherNormal     Weather = 0x2
	WeatherStrong     Weather = 0x3
	WeatherVeryStrong Weather = 0x4
)

func (w Weather) String() string {
	switch w {
	case WeatherNone:
		return "None"
	case WeatherNoneAlt:
		return "NoneAlt"
	case WeatherNormal:
		return "Normal"
	case WeatherStrong:
		return "Strong"
	case WeatherVeryStrong:
		return "VeryStrong"
	default:
		return "Unknown"
	}
}

// State selects which variant of a map's meshes and textures is active.
type State struct {
	Time    Time
	Weather Weather
	Layout  int32
}

// DefaultState is the state the primary mesh and base texture carry.
var DefaultState = State{Time: TimeDay, Weather: WeatherNone, Layout: 0}

// IsDefault reports whether s equals DefaultState.
func (s State) IsDefault() bool { return s == DefaultState }

func (s State) String() string {
	return fmt.Sprintf("%s/%s/layout %d", s.Time, s.Weather, s.Layout)
}

// RecordType tags what resource a directory record points at.
type RecordType uint16

const (
	RecordNone         RecordType = 0x0000
	RecordTexture      RecordType = 0x1701
	RecordMeshPrimary  RecordType = 0x2E01
	RecordMeshOverride RecordType = 0x2F01
	RecordMeshAlt      RecordType = 0x3001
	RecordEnd          RecordType = 0x3101
)

func (r RecordType) String() string {
	switch r {
	case RecordTexture:
		return "Texture"
	case RecordMeshPrimary:
		return "Primary"
	case RecordMeshOverride:
		return "Override"
	case RecordMeshAlt:
		return "Alt"
	case RecordEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Record is one decoded 20-byte GNS directory entry. The fields of
// unknown purpose and the raw bytes are preserved verbatim.
type Record struct {
	Type   RecordType
	State  State
	Sector uint32
	Length uint32

	// Unknown fields at byte offsets 0-1, 6-7, 10-11, 16-17, 18-19.
	AA uint16
	EE uint16
	GG uint16
	II uint16
	JJ uint16

	Raw [RecordSize]byte
}

// UnpackTimeWeather splits the packed state byte: bit 7 is the time,
// bits 4-6 the weather.
func UnpackTimeWeather(b uint8) (Time, Weather) {
	return Time((b >> 7) & 0x1), Weather((b >> 4) & 0x7)
}

// DecodeRecord reads one record from the cursor.
func DecodeRecord(s *span.Span) (Record, error) {
	start := s.Offset()

	aa, err := s.U16()
	if err != nil {
		return Record{}, fmt.Errorf("gns: record at %d: %w", start, err)
	}
	layout, _ := s.U8()
	timeWeather, _ := s.U8()
	typ, _ := s.U16()
	ee, _ := s.U16()
	sector, _ := s.U16()
	gg, _ := s.U16()
	length, _ := s.U32()
	ii, _ := s.U16()
	jj, err := s.U16()
	if err != nil {
		return Record{}, fmt.Errorf("gns: record at %d: %w", start, err)
	}

	time, weather := UnpackTimeWeather(timeWeather)

	rec := Record{
		Type:   RecordType(typ),
		Sector: uint32(sector),
		Length: length,
		State: State{
			Time:    time,
			Weather: weather,
			Layout:  int32(layout),
		},
		AA: aa,
		EE: ee,
		GG: gg,
		II: ii,
		JJ: jj,
	}

	// Keep the raw bytes for diagnostic round-tripping.
	raw := s.Offset() - RecordSize
	_ = s.Seek(raw)
	b, _ := s.Bytes(RecordSize)
	copy(rec.Raw[:], b)

	return rec, nil
}

// DecodeRecords reads records until the end sentinel, the record limit,
// or the end of the buffer, whichever comes first. Records after the
// sentinel are not parsed.
func DecodeRecords(data []byte) ([]Record, error) {
	s := span.New(data)
	records := make([]Record, 0, MaxRecords)

	for len(records) < MaxRecords && s.Remaining() >= RecordSize {
		rec, err := DecodeRecord(s)
		if err != nil {
			return nil, err
		}
		if rec.Type == RecordEnd {
			break
		}
		records = append(records, rec)
	}

	return records, nil
}
