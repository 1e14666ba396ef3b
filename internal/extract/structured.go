package extract

import (
	"strconv"
	"strings"

	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// commonRegieMinutes are the bare structured regie values read as minutes.
// Workers type "reg 30" meaning half an hour but "reg 2" meaning two
// hours; anything outside this set without an hr suffix is taken as hours.
var commonRegieMinutes = map[int]bool{10: true, 15: true, 30: true, 45: true, 90: true}

// matchStructured applies the strict layout grammar. On a match it builds
// the complete entry itself and the fuzzy cascade is skipped entirely.
// The recorded span runs from the match start up to, but excluding, the
// free-text description, with a trailing comma trimmed. Per-field
// original-text spans stay empty: the composite span is highlighted as
// one block.
func matchStructured(message string) (model.WorkEntry, bool) {
	loc := structuredPattern.FindStringSubmatchIndex(message)
	if loc == nil {
		return model.WorkEntry{}, false
	}

	group := func(n int) string {
		if loc[2*n] < 0 {
			return ""
		}
		return message[loc[2*n]:loc[2*n+1]]
	}

	entry := model.WorkEntry{DateMatchIndex: -1}
	entry.WorkDate = timeutil.FormatDateToDDMMYYYY(strings.TrimSuffix(group(1), "."))
	entry.StartTime = timeutil.NormalizeTime(group(2))
	entry.EndTime = timeutil.NormalizeTime(group(3))

	if breakValue := group(4); breakValue != "" {
		minutes, _ := strconv.Atoi(breakValue)
		entry.BreakTime = timeutil.MinutesToHHMM(minutes)
	}
	if regieValue := group(5); regieValue != "" {
		entry.RegieTime = timeutil.MinutesToHHMM(structuredRegieMinutes(regieValue, group(6)))
	}

	entry.NettoTime = timeutil.CalculateNettoTime(entry.StartTime, entry.EndTime, entry.BreakTime)

	matchStart := loc[0]
	fullText := message[loc[0]:loc[1]]
	if description := group(7); description != "" {
		// The description is located in the original message rather than
		// in the match text, then everything before it becomes the span.
		if descStart := strings.Index(message[matchStart:], description); descStart > 0 {
			fullText = strings.TrimRight(message[matchStart:matchStart+descStart], " \t\n")
			fullText = strings.TrimRight(strings.TrimSuffix(fullText, ","), " \t\n")
		}
	}

	entry.StructuredFormatMatch = &model.StructuredMatch{
		FullText: fullText,
		Index:    matchStart,
	}
	return entry, true
}

// structuredRegieMinutes disambiguates the structured regie value, whose
// unit workers rarely write out. H:MM is literal; an hr/hrs suffix makes
// the digits hours; bare digits are minutes only for the common minute
// quanta, otherwise hours.
func structuredRegieMinutes(value, digits string) int {
	if strings.Contains(value, ":") {
		return timeutil.ParseTimeToMinutes(value)
	}
	if digits != "" {
		n, _ := strconv.Atoi(digits)
		switch {
		case structuredHourSuffix.MatchString(value):
			return n * 60
		case commonRegieMinutes[n]:
			return n
		default:
			return n * 60
		}
	}
	n, _ := strconv.Atoi(value)
	return n
}
