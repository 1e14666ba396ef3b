package extract

import (
	"regexp"
	"strings"

	"shiftlog/internal/model"
)

// dateMatch is a located date substring with its byte offset and the
// trailing dot already stripped from the value.
type dateMatch struct {
	Date  string
	Index int
}

// dateStrategy attempts to locate a date in text. Strategies are tried in
// a fixed priority order; the first one that matches wins outright.
type dateStrategy func(text string) (dateMatch, bool)

// The cascade biases toward dates used as labels ("Datum: 12.11") or
// followed by a time, which are far more reliable than a bare digit group
// somewhere in the message. The blind whole-message scan comes last.
var dateStrategies = []dateStrategy{
	submatchStrategy(datePatternDashSlash),  // date followed by - or /
	submatchStrategy(datePatternWithTime),   // date followed by a time
	submatchStrategy(datePatternAfterColon), // date after a colon
	submatchStrategy(datePatternStart),      // date at message start
	submatchStrategy(datePatternStartWS),    // date after leading whitespace
	submatchStrategy(datePatternGeneral),    // date anywhere after ws or colon
}

// submatchStrategy wraps a pattern whose capture group 1 is the date.
func submatchStrategy(re *regexp.Regexp) dateStrategy {
	return func(text string) (dateMatch, bool) {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			return dateMatch{}, false
		}
		return dateMatch{
			Date:  strings.TrimSuffix(text[loc[2]:loc[3]], "."),
			Index: loc[2],
		}, true
	}
}

// findDateMatch runs the strategy cascade and returns the single most
// plausible date, if any.
func findDateMatch(text string) (dateMatch, bool) {
	for _, strategy := range dateStrategies {
		if m, ok := strategy(text); ok {
			return m, true
		}
	}
	return dateMatch{}, false
}

// AllDateSpans scans the whole text for every date-looking token. Spans
// closer than three bytes to an earlier one are treated as duplicates.
func AllDateSpans(text string) []model.DateSpan {
	var spans []model.DateSpan
	for _, loc := range datePatternAll.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		duplicate := false
		for _, s := range spans {
			if abs(s.Index-start) < 3 {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		spans = append(spans, model.DateSpan{
			Date:      strings.TrimSuffix(text[start:end], "."),
			Index:     start,
			FullMatch: text[start:end],
		})
	}
	return spans
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
