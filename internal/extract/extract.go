package extract

import (
	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// ExtractWorkInfo extracts at most one work entry from a message body.
// The structured grammar is tried first and wins outright; otherwise the
// fallback cascade locates a date, narrows extraction to the text from
// that date onward, and fills only fields that are still empty. A message
// with no usable data yields an all-empty entry, which is valid output.
func ExtractWorkInfo(message string) model.WorkEntry {
	if entry, ok := matchStructured(message); ok {
		return entry
	}

	entry := model.WorkEntry{DateMatchIndex: -1}

	dateInfo, found := findDateMatch(message)
	if found {
		window := message[dateInfo.Index:]

		// Dates past the primary one hint at a multi-day message; they
		// are kept for warning highlights.
		firstDateEnd := dateInfo.Index + len(dateInfo.Date)
		for _, span := range AllDateSpans(message[firstDateEnd:]) {
			if span.Date == dateInfo.Date {
				continue
			}
			span.Index += firstDateEnd
			entry.AdditionalDates = append(entry.AdditionalDates, span)
		}

		entry.WorkDate = timeutil.FormatDateToDDMMYYYY(dateInfo.Date)
		if m := datePatternAtPos.FindString(window); m != "" {
			entry.DateOriginalText = m
			entry.DateMatchIndex = dateInfo.Index
		}

		times := extractTimesFromText(window)
		if times.Start != "" {
			entry.StartTime = times.Start
		}
		if times.End != "" {
			entry.EndTime = times.End
		}
		entry.TimeRangeOriginalText = times.RangeText

		extractTimeDetails(window, &entry)
		return entry
	}

	// No date anywhere: last resort, scan the whole message for times.
	times := extractTimesFromText(message)
	entry.StartTime = times.Start
	entry.EndTime = times.End
	entry.TimeRangeOriginalText = times.RangeText
	extractTimeDetails(message, &entry)
	return entry
}

// extractTimeDetails fills break, regie and netto from text. It does
// nothing unless at least one of start and end time is known; a lone
// break or regie value without any shift time is noise.
func extractTimeDetails(text string, entry *model.WorkEntry) {
	if entry.StartTime == "" && entry.EndTime == "" {
		return
	}

	if breakToken := extractBreak(text, entry.BreakTime); breakToken.Minutes > 0 {
		entry.BreakTime = timeutil.MinutesToHHMM(breakToken.Minutes)
		if breakToken.OriginalText != "" {
			entry.BreakOriginalText = breakToken.OriginalText
		}
	}

	if regieTime, originalText := combineRegieTokens(extractRegieTokens(text)); regieTime != "" {
		entry.RegieTime = regieTime
		entry.RegieOriginalText = originalText
	}

	if entry.StartTime != "" && entry.EndTime != "" {
		entry.NettoTime = timeutil.CalculateNettoTime(entry.StartTime, entry.EndTime, entry.BreakTime)
	}
}

// MergeWorkInfo copies fields from source into target, filling only
// fields target does not have yet. Continuation lines in line-by-line
// parsing re-extract the grown message and merge through this; earlier
// values always win.
func MergeWorkInfo(target, source *model.WorkEntry) {
	if source.WorkDate != "" && target.WorkDate == "" {
		target.WorkDate = source.WorkDate
	}
	if source.StartTime != "" && target.StartTime == "" {
		target.StartTime = source.StartTime
	}
	if source.EndTime != "" && target.EndTime == "" {
		target.EndTime = source.EndTime
	}
	if source.TimeRangeOriginalText != "" && target.TimeRangeOriginalText == "" {
		target.TimeRangeOriginalText = source.TimeRangeOriginalText
	}
	if source.BreakTime != "" && target.BreakTime == "" {
		target.BreakTime = source.BreakTime
		target.BreakOriginalText = source.BreakOriginalText
	}
	if source.NettoTime != "" && target.NettoTime == "" {
		target.NettoTime = source.NettoTime
	}
	if source.RegieTime != "" && target.RegieTime == "" {
		target.RegieTime = source.RegieTime
		target.RegieOriginalText = source.RegieOriginalText
	}
}

// RegieTypeKeywordSpans returns spans of regie-type task keywords (for
// example "cutting trees" or "material transport") found in text.
func RegieTypeKeywordSpans(text string) []TextSpan {
	var spans []TextSpan
	for _, loc := range regieTypeKeywords.FindAllStringIndex(text, -1) {
		spans = append(spans, TextSpan{
			Start: loc[0],
			End:   loc[1],
			Text:  text[loc[0]:loc[1]],
		})
	}
	return spans
}
