// Package highlight recomputes the matched spans of an extracted entry
// against the original message text and renders non-overlapping
// annotations. The message itself is never altered: stripping the
// inserted markers reproduces the input byte for byte.
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"shiftlog/internal/extract"
	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// Markers wrapped around highlighted spans. Warning spans flag probable
// omissions or conflicts rather than confirmed extractions.
const (
	MarkerOpen         = "<highlight>"
	MarkerClose        = "</highlight>"
	WarningMarkerOpen  = "<highlight-warning>"
	WarningMarkerClose = "</highlight-warning>"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Ranges computes the highlight spans for entries extracted from message.
// Overlaps are already resolved; the result is safe to apply in one pass.
func Ranges(message string, entries []model.WorkEntry) []model.HighlightRange {
	hasData := false
	for i := range entries {
		if entries[i].HasData() {
			hasData = true
			break
		}
	}
	if !hasData {
		return nil
	}

	var ranges []model.HighlightRange

	hasStructured := false
	for i := range entries {
		if entries[i].StructuredFormatMatch != nil {
			hasStructured = true
			break
		}
	}

	// Secondary dates across the whole message signal likely multi-day
	// contamination. Skipped for structured matches, whose composite
	// span already covers the only date that matters.
	if !hasStructured {
		ranges = append(ranges, secondaryDateWarnings(message, entries)...)
	}

	for i := range entries {
		entry := &entries[i]
		if sf := entry.StructuredFormatMatch; sf != nil {
			ranges = append(ranges, model.HighlightRange{
				Start:        sf.Index,
				End:          sf.Index + len(sf.FullText),
				Text:         sf.FullText,
				IsStructured: true,
			})
		} else {
			ranges = append(ranges, fieldRanges(message, entry)...)
		}

		// Regie keywords with no extracted regie value are flagged even
		// for structured matches: the worker likely forgot the number.
		if strings.TrimSpace(entry.RegieTime) == "" {
			ranges = append(ranges, missedRegieWarnings(message, ranges)...)
		}
	}

	return resolveOverlaps(ranges)
}

// Apply inserts markers around the given ranges, working from the highest
// offset down so earlier insertions never shift pending spans.
func Apply(message string, ranges []model.HighlightRange) string {
	ordered := make([]model.HighlightRange, len(ranges))
	copy(ordered, ranges)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	highlighted := message
	for _, r := range ordered {
		openTag, closeTag := MarkerOpen, MarkerClose
		if r.Warning {
			openTag, closeTag = WarningMarkerOpen, WarningMarkerClose
		}
		highlighted = highlighted[:r.Start] + openTag + highlighted[r.Start:r.End] + closeTag + highlighted[r.End:]
	}
	return highlighted
}

// Message is the convenience form: compute ranges and apply markers.
func Message(message string, entries []model.WorkEntry) string {
	ranges := Ranges(message, entries)
	if len(ranges) == 0 {
		return message
	}
	return Apply(message, ranges)
}

// secondaryDateWarnings flags every date-looking token after the one that
// matches the extracted work date.
func secondaryDateWarnings(message string, entries []model.WorkEntry) []model.HighlightRange {
	dateSpans := extract.AllDateSpans(message)
	if len(dateSpans) <= 1 {
		return nil
	}

	primaryIndex := 0
	if len(entries) > 0 && entries[0].WorkDate != "" {
		for i, span := range dateSpans {
			if normalizedEqual(span.Date, entries[0].WorkDate) {
				primaryIndex = i
				break
			}
		}
	}

	var warnings []model.HighlightRange
	for _, span := range dateSpans[primaryIndex+1:] {
		warnings = append(warnings, model.HighlightRange{
			Start:   span.Index,
			End:     span.Index + len(span.FullMatch),
			Text:    span.FullMatch,
			Warning: true,
		})
	}
	return warnings
}

// normalizedEqual compares a raw scanned date token against a canonical
// dd.mm.yyyy work date.
func normalizedEqual(raw, workDate string) bool {
	return raw == workDate || timeutil.FormatDateToDDMMYYYY(raw) == workDate
}

// fieldRanges adds the per-field spans for a fallback-path entry, using
// the verbatim original text captured during extraction when available
// and re-searching for the canonical value otherwise.
func fieldRanges(message string, entry *model.WorkEntry) []model.HighlightRange {
	var ranges []model.HighlightRange

	// Date: the exact captured span is preferred; re-searching for the
	// normalized value may hit the wrong occurrence.
	if entry.DateOriginalText != "" && entry.DateMatchIndex >= 0 {
		ranges = append(ranges, model.HighlightRange{
			Start: entry.DateMatchIndex,
			End:   entry.DateMatchIndex + len(entry.DateOriginalText),
			Text:  entry.DateOriginalText,
		})
	} else if strings.TrimSpace(entry.WorkDate) != "" {
		ranges = append(ranges, findAll(message, `\b`+regexp.QuoteMeta(entry.WorkDate)+`\b`, false)...)
	}

	// Time range, or individual times when no literal range was seen.
	if strings.TrimSpace(entry.TimeRangeOriginalText) != "" {
		ranges = append(ranges, findAll(message, flexiblePattern(entry.TimeRangeOriginalText), false)...)
	} else {
		if strings.TrimSpace(entry.StartTime) != "" {
			ranges = append(ranges, findAll(message, regexp.QuoteMeta(entry.StartTime), false)...)
		}
		if strings.TrimSpace(entry.EndTime) != "" {
			ranges = append(ranges, findAll(message, regexp.QuoteMeta(entry.EndTime), false)...)
		}
	}

	if strings.TrimSpace(entry.BreakTime) != "" {
		// The verbatim span is preferred; without one (an edited value,
		// say) the canonical HH:MM is searched for instead. No leading
		// word boundary: the duration may follow punctuation.
		needle := entry.BreakOriginalText
		if strings.TrimSpace(needle) == "" {
			needle = entry.BreakTime
		}
		ranges = append(ranges, findAll(message, flexiblePattern(needle)+`\b`, true)...)
	}

	if strings.TrimSpace(entry.RegieTime) != "" {
		spans := entry.RegieSpans()
		if len(spans) == 0 {
			spans = []string{entry.RegieTime}
		}
		for _, span := range spans {
			ranges = append(ranges, findAll(message, `\b`+flexiblePattern(span)+`\b`, true)...)
		}
	}

	for _, span := range entry.AdditionalDates {
		ranges = append(ranges, model.HighlightRange{
			Start:   span.Index,
			End:     span.Index + len(span.FullMatch),
			Text:    span.FullMatch,
			Warning: true,
		})
	}

	return ranges
}

// missedRegieWarnings flags regie-type keywords that no other span covers
// when no regie value was extracted at all.
func missedRegieWarnings(message string, existing []model.HighlightRange) []model.HighlightRange {
	var warnings []model.HighlightRange
	for _, kw := range extract.RegieTypeKeywordSpans(message) {
		covered := false
		for _, r := range existing {
			if kw.Start >= r.Start && kw.Start < r.End {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		warnings = append(warnings, model.HighlightRange{
			Start:   kw.Start,
			End:     kw.End,
			Text:    kw.Text,
			Warning: true,
		})
	}
	return warnings
}

// resolveOverlaps keeps structured spans first, then normal spans, then
// warnings, dropping any later span that overlaps a kept one. A
// structured span is dropped only when fully contained in an already-kept
// structured span.
func resolveOverlaps(ranges []model.HighlightRange) []model.HighlightRange {
	ordered := make([]model.HighlightRange, len(ranges))
	copy(ordered, ranges)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsStructured != b.IsStructured {
			return a.IsStructured
		}
		if a.Warning != b.Warning {
			return b.Warning
		}
		return a.Start < b.Start
	})

	var kept []model.HighlightRange
	for _, r := range ordered {
		drop := false
		for _, k := range kept {
			if r.IsStructured {
				if k.IsStructured && r.Start >= k.Start && r.End <= k.End {
					drop = true
					break
				}
				continue
			}
			if r.Start < k.End && r.End > k.Start {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, r)
		}
	}
	return kept
}

// findAll collects the spans of pattern in message, case-insensitively.
func findAll(message, pattern string, firstOnly bool) []model.HighlightRange {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return nil
	}
	var ranges []model.HighlightRange
	for _, loc := range re.FindAllStringIndex(message, -1) {
		ranges = append(ranges, model.HighlightRange{
			Start: loc[0],
			End:   loc[1],
			Text:  message[loc[0]:loc[1]],
		})
		if firstOnly {
			break
		}
	}
	return ranges
}

// flexiblePattern escapes a literal span and relaxes its whitespace so
// "45'  lunch" still matches "45' lunch".
func flexiblePattern(literal string) string {
	return whitespaceRun.ReplaceAllString(regexp.QuoteMeta(literal), `\s+`)
}
