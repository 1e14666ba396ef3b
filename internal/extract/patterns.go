// Package extract locates work-shift data (date, time range, break, regie)
// inside semi-structured chat message text. A strict structured grammar is
// tried first; when it is absent, an ordered cascade of fuzzy matchers
// takes over. All matchers record verbatim source spans so the highlighter
// can point back at the exact text they consumed.
package extract

import "regexp"

// unit is the interpretation of a plain integer duration value. Decimal
// and fraction values carry their own unit (hours) regardless.
type unit int

const (
	unitMinutes unit = iota
	unitHours
)

// durationPattern couples a duration regexp with the unit its plain
// integer captures denote. The unit is fixed per pattern, never guessed
// from the magnitude of the value.
type durationPattern struct {
	re   *regexp.Regexp
	unit unit
}

// breakDurationPatterns in priority order: decimal hours, fraction,
// apostrophe minutes, hour suffix, then the min/minute/minuten suffixes.
var breakDurationPatterns = []durationPattern{
	{regexp.MustCompile(`(?i)\b(\d+\.\d+)\s*(?:hr|hrs|h)\b`), unitHours},
	{regexp.MustCompile(`(?i)\b(\d+/\d+)\s*(?:hr|hrs|h)?\b`), unitHours},
	{regexp.MustCompile(`\b(\d+)\s*'`), unitMinutes},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:hr|hrs|h)\b`), unitHours},
	{regexp.MustCompile(`(?i)\b(\d+)\s*min\b`), unitMinutes},
	{regexp.MustCompile(`(?i)\b(\d+)\s*minute`), unitMinutes},
	{regexp.MustCompile(`(?i)\b(\d+)\s*minuten`), unitMinutes},
}

// regieDurationPatterns in priority order: fraction, decimal hours, hour
// suffix, minutes.
var regieDurationPatterns = []durationPattern{
	{regexp.MustCompile(`(?i)\b(\d+/\d+)\s*(?:hr|hrs|h)?`), unitHours},
	{regexp.MustCompile(`(?i)\b(\d+\.\d+)\s*(?:hr|hrs|h)\b`), unitHours},
	{regexp.MustCompile(`(?i)\b(\d+)\s*(?:hr|hrs|h)\b`), unitHours},
	{regexp.MustCompile(`(?i)\b(\d+)\s*min\b`), unitMinutes},
}

var (
	breakContextKeywords = regexp.MustCompile(`(?i)\b(break|lunch|pause|tea|rest|lunch\s*[+&]\s*tea)\b`)
	regieKeyword         = regexp.MustCompile(`(?i)\bregie\b`)

	// regieTypeKeywords covers task names that usually accompany regie
	// work. It is scanned by the highlighter when no regie value was
	// extracted, to flag probable omissions.
	regieTypeKeywords = regexp.MustCompile(`(?i)\b(regie|material\s+transport|cutting\s+trees?|cutting\s+bushes|cutting\s+branches|fallen\s+trees?|cut\s+trees?|cut\s+bushes|cut\s+branches|moving\s+branches?|chainsaw\s+cutting|wood\s+clearing|clearing\s+wood|wood|clearing|bushes|branches)\b`)

	timeRangePattern = regexp.MustCompile(`(\d{1,2})\s*:\s*(\d{2})\s*-\s*(\d{1,2})\s*:\s*(\d{2})`)
	timePattern      = regexp.MustCompile(`\b(\d{1,2})\s*:\s*(\d{2})\b`)
)

// dateToken matches dd.mm with optional year and optional trailing dot.
// Single digit day and month are allowed.
const dateToken = `\d{1,2}\.\d{1,2}(?:\.\d{2,4})?\.?`

// Go's regexp has no lookahead, so the boundary after a date is consumed
// as a non-capturing (?:\D|$) group. Callers take the span of capture
// group 1, never of the whole match.
var (
	datePatternDashSlash  = regexp.MustCompile(`:\s*(` + dateToken + `)\s*[-/]`)
	datePatternWithTime   = regexp.MustCompile(`:\s*(` + dateToken + `)\s+\d{1,2}\s*:\s*\d{2}`)
	datePatternAfterColon = regexp.MustCompile(`:\s*(` + dateToken + `)(?:\D|$)`)
	datePatternStart      = regexp.MustCompile(`^(` + dateToken + `)(?:\D|$)`)
	datePatternStartWS    = regexp.MustCompile(`^\s+(` + dateToken + `)(?:\D|$)`)
	datePatternGeneral    = regexp.MustCompile(`(?m)(?:^|\s|:)(` + dateToken + `)(?:\D|$)`)
	datePatternAll        = regexp.MustCompile(`(` + dateToken + `)(?:\D|$)`)
	datePatternAtPos      = regexp.MustCompile(`^` + dateToken)
)

// structuredPattern is the canonical comma-separated layout:
//
//	18.11., 8:00, 16:00, break: 30, regie: 90, description
//
// Commas may be replaced by whitespace (including newlines), break and
// regie clauses are optional and the regie keyword is matched loosely as
// "reg" plus anything non-numeric, which also covers typos.
// Capture groups: 1 date, 2 start, 3 end, 4 break minutes, 5 regie value,
// 6 regie digits when not in H:MM form, 7 free-text description.
var structuredPattern = regexp.MustCompile(`(?i)(\d{1,2}\.\d{1,2}\.)\s*(?:,|\s+)\s*(\d{1,2}:\d{2})\s*(?:,|\s+)\s*(\d{1,2}:\d{2})(?:\s*(?:,|\s+)\s*break\s*:?\s*(\d+))?(?:\s*(?:,|\s+)\s*reg[^\d]*((?:\d{1,2}:\d{2})|(\d+)(?:\s*(?:hr|hrs))?))?(?:\s*(?:,|\s+)\s*([\s\S]+))?`)

// structuredHourSuffix detects an explicit hr/hrs marker in a structured
// regie value.
var structuredHourSuffix = regexp.MustCompile(`(?i)\b(?:hr|hrs)\b`)
