package utils

import (
	"fmt"
	"time"

	"github.com/relvacode/iso8601"
)

func ParseISOTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func ParseTime(s string, layout string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// FormatSecondsSimple formats a length in seconds as h:mm:ss. It takes seconds rather
// than a time.Duration, which overflows past roughly 292 years.
func FormatSecondsSimple(totalSeconds int64) string {
	seconds, totalMinutes := totalSeconds%60, totalSeconds/60
	minutes, hours := totalMinutes%60, totalMinutes/60

	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

func Ptr[T any](v T) *T {
	return &v
}

func ToString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// StringPtr returns nil unless v holds a string.
func StringPtr(v any) *string {
	if s, ok := ToString(v); ok {
		return &s
	}
	return nil
}
