package packet

import (
	"errors"
	"fmt"
)

// ErrStringTooLong is returned when a string or list does not fit its bit-width length prefix.
var ErrStringTooLong = errors.New("length exceeds bit field")

// ErrEnumOverflow is recorded when an enum value does not fit its bit field.
var ErrEnumOverflow = errors.New("enum value exceeds bit field")

// CheckLen verifies that n fits into a bits-wide length prefix.
func CheckLen(field string, n, bits int) error {
	if n >= 1<<bits {
		return fmt.Errorf("%s: %w (len=%d, bits=%d)", field, ErrStringTooLong, n, bits)
	}
	return nil
}
