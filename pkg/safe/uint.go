// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int narrows an unsigned 64-bit value to int, failing when it does not fit on this platform.
func Int(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}

// Int64 narrows an unsigned 64-bit value to int64.
func Int64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T ~int | ~int64 | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
