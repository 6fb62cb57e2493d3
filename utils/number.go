package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ToInt64 converts loosely typed scalars to an int64. The second return value is false
// when v is nil or cannot be represented as an integer; it never panics.
func ToInt64(v any) (ret int64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ret, ok = 0, false
		}
	}()

	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseInt(n)
	case json.Number:
		if i, ok := parseInt(string(n)); ok {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case uint:
		return uintToInt64(uint64(n))
	case uint64:
		return uintToInt64(n)
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, false
	}

	return i, true
}

// Int64Ptr is ToInt64 with absence expressed as nil.
func Int64Ptr(v any) *int64 {
	if i, ok := ToInt64(v); ok {
		return &i
	}
	return nil
}

func parseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	// 2^63 is exactly representable, MaxInt64 is not
	if f >= math.Exp2(63) || f < -math.Exp2(63) {
		return 0, false
	}

	return int64(f), true
}

func uintToInt64(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}
