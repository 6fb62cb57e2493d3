package youtube

import (
	"math"
	"regexp"
	"strconv"
)

// Only days, hours, minutes and seconds, in that order. No years, months, weeks or fractions.
var durationRegex = regexp.MustCompile(`^P(?:([0-9]+)D)?(?:T(?:([0-9]+)H)?(?:([0-9]+)M)?(?:([0-9]+)S)?)?$`)

var durationUnitSeconds = []int64{86400, 3600, 60, 1}

// ParseDurationSeconds converts a contentDetails.duration value such as "PT1H2M3S" or
// "P1DT1H" to seconds. "PT" and "P" are valid and yield 0.
func ParseDurationSeconds(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	match := durationRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, false
	}

	var total int64
	for i, unit := range durationUnitSeconds {
		part := match[i+1]
		if part == "" {
			continue
		}

		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, false
		}

		if n > (math.MaxInt64-total)/unit {
			return 0, false
		}
		total += n * unit
	}

	return total, true
}
