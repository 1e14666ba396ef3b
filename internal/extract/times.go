package extract

import "shiftlog/internal/timeutil"

// timeRange is the outcome of time extraction. RangeText is set only when
// an explicit "HH:MM - HH:MM" range was found.
type timeRange struct {
	Start     string
	End       string
	RangeText string
}

// extractTimesFromText finds a time range, or failing that collects bare
// HH:MM occurrences: the first two become start and end, a single one
// becomes start only. Occurrences beyond the second are ignored.
func extractTimesFromText(text string) timeRange {
	if loc := timeRangePattern.FindStringSubmatchIndex(text); loc != nil {
		return timeRange{
			Start:     timeutil.NormalizeTime(text[loc[2]:loc[3]] + ":" + text[loc[4]:loc[5]]),
			End:       timeutil.NormalizeTime(text[loc[6]:loc[7]] + ":" + text[loc[8]:loc[9]]),
			RangeText: text[loc[0]:loc[1]],
		}
	}

	var times []string
	for _, loc := range timePattern.FindAllStringSubmatchIndex(text, -1) {
		times = append(times, timeutil.NormalizeTime(text[loc[2]:loc[3]]+":"+text[loc[4]:loc[5]]))
	}

	switch {
	case len(times) >= 2:
		return timeRange{Start: times[0], End: times[1]}
	case len(times) == 1:
		return timeRange{Start: times[0]}
	default:
		return timeRange{}
	}
}
