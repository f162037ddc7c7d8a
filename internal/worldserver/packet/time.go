package packet

import (
	"errors"
	"fmt"
	"time"
)

// Packed times carry the year as an 8-bit offset from 2000.
const (
	PackedTimeMinYear = 2000
	PackedTimeMaxYear = PackedTimeMinYear + 0xFF
)

// ErrTimeOutOfRange is recorded when a time's year cannot be packed.
var ErrTimeOutOfRange = errors.New("time outside packed year range")

// CheckPackedTime verifies that t (taken in UTC) fits the packed year range.
// The zero time is always valid.
func CheckPackedTime(t time.Time) error {
	if t.IsZero() {
		return nil
	}
	if y := t.UTC().Year(); y < PackedTimeMinYear || y > PackedTimeMaxYear {
		return fmt.Errorf("%w: year %d not in %d..%d", ErrTimeOutOfRange, y, PackedTimeMinYear, PackedTimeMaxYear)
	}
	return nil
}

// PackTime encodes t in UTC with minute resolution:
//
//	(year-2000)<<24 | month0<<20 | day0<<14 | weekday<<11 | hour<<6 | minute
//
// The zero time packs to 0. Years outside the packed range wrap; use
// CheckPackedTime or Writer.WritePackedTime to catch them.
func PackTime(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	t = t.UTC()
	return uint32(t.Year()-PackedTimeMinYear)<<24 |
		uint32(t.Month()-1)<<20 |
		uint32(t.Day()-1)<<14 |
		uint32(t.Weekday())<<11 |
		uint32(t.Hour())<<6 |
		uint32(t.Minute())
}

// UnpackTime decodes a packed time into loc. 0 decodes to the zero time.
func UnpackTime(v uint32, loc *time.Location) time.Time {
	if v == 0 {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}
	year := int(v>>24&0xFF) + PackedTimeMinYear
	month := time.Month(v>>20&0x0F) + 1
	day := int(v>>14&0x3F) + 1
	hour := int(v >> 6 & 0x1F)
	minute := int(v & 0x3F)
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).In(loc)
}
