package extract

import (
	"math"
	"strconv"
	"strings"

	"shiftlog/internal/timeutil"
)

// parseDurationValue resolves a captured duration token to whole minutes.
// Decimal values are hours, fractions are fractions of an hour; a plain
// integer takes the unit of the pattern that matched it. The unit is
// never inferred from the magnitude of the value.
func parseDurationValue(value string, p durationPattern) int {
	if strings.Contains(value, ".") {
		hours, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return int(math.Round(hours * 60))
	}
	if strings.Contains(value, "/") {
		parts := strings.SplitN(value, "/", 2)
		num, err1 := strconv.Atoi(parts[0])
		den, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || den == 0 {
			return 0
		}
		return int(math.Round(float64(num) / float64(den) * 60))
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	if p.unit == unitHours {
		return n * 60
	}
	return n
}

// parseExistingBreak interprets a previously stored break value (HH:MM,
// fraction, hour suffix or bare minutes) so edits survive re-extraction.
func parseExistingBreak(value string) int {
	switch {
	case strings.Contains(value, ":"):
		return timeutil.ParseTimeToMinutes(value)
	case strings.Contains(value, "/"):
		parts := strings.SplitN(value, "/", 2)
		num, err1 := strconv.Atoi(parts[0])
		den, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || den == 0 {
			return 0
		}
		return int(math.Round(float64(num) / float64(den) * 60))
	case strings.Contains(value, "hr") || strings.Contains(value, "h"):
		numeric := strings.TrimSpace(strings.TrimRight(value, "hrsHRS "))
		hours, err := strconv.ParseFloat(numeric, 64)
		if err != nil {
			return 0
		}
		return int(math.Round(hours * 60))
	default:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return n
	}
}
