package model

import "strings"

// WorkEntry is the result of one extraction attempt on a message body.
// At most one WorkEntry is produced per message; fields the extractors
// could not fill stay empty, which is valid output.
type WorkEntry struct {
	// WorkDate is the reported working date in canonical dd.mm.yyyy form,
	// or empty if no date was located.
	WorkDate string `json:"work_date"`

	StartTime string `json:"start_time"` // HH:MM or empty
	EndTime   string `json:"end_time"`   // HH:MM or empty

	// TimeRangeOriginalText is the verbatim "HH:MM - HH:MM" span as it
	// appeared in the message, kept for highlighting.
	TimeRangeOriginalText string `json:"time_range_original_text,omitempty"`

	BreakTime         string `json:"break_time"` // HH:MM or empty
	BreakOriginalText string `json:"break_original_text,omitempty"`

	// NettoTime is derived: (end - start) - break, never entered directly
	// and never reduced by regie time.
	NettoTime string `json:"netto_time"`

	// RegieTime may be the sum of several regie mentions. When it is,
	// RegieOriginalText joins the verbatim spans with "|".
	RegieTime         string `json:"regie_time"`
	RegieOriginalText string `json:"regie_original_text,omitempty"`

	// DateOriginalText/DateMatchIndex pin the primary date span in the
	// original message for exact highlighting. DateMatchIndex is -1 when
	// no date span was located.
	DateOriginalText string `json:"date_original_text,omitempty"`
	DateMatchIndex   int    `json:"date_match_index"`

	// AdditionalDates are date-looking spans found after the primary date.
	// More than zero of them usually means a multi-day message.
	AdditionalDates []DateSpan `json:"additional_dates,omitempty"`

	// StructuredFormatMatch is set when the strict comma grammar matched.
	// Its single span supersedes all per-field original-text spans.
	StructuredFormatMatch *StructuredMatch `json:"structured_format_match,omitempty"`
}

// HasData reports whether any field was extracted at all.
func (e *WorkEntry) HasData() bool {
	return e.WorkDate != "" || e.StartTime != "" || e.EndTime != "" ||
		e.BreakTime != "" || e.RegieTime != ""
}

// RegieSpans splits the pipe-joined regie original text into the
// individual verbatim spans.
func (e *WorkEntry) RegieSpans() []string {
	if e.RegieOriginalText == "" {
		return nil
	}
	return strings.Split(e.RegieOriginalText, "|")
}

// StructuredMatch records the span of a structured-format grammar match.
// FullText excludes the free-text description tail.
type StructuredMatch struct {
	FullText string `json:"full_text"`
	Index    int    `json:"index"`
}

// DateSpan is a date-looking token with its location in the message.
type DateSpan struct {
	Date      string `json:"date"`
	Index     int    `json:"index"`
	FullMatch string `json:"full_match"`
}

// DurationToken is a parsed duration with its verbatim source span.
// Minutes is always whole minutes; fractional hours are rounded only when
// formatted as HH:MM.
type DurationToken struct {
	Minutes      int
	OriginalText string
}

// MessageRecord is one accepted chat message with its extraction result.
// Date, Time, Sender and Message are immutable after segmentation; the
// embedded WorkEntry may be reconciled when continuation lines extend the
// body in line-by-line parsing.
type MessageRecord struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // RFC 3339, from the message header
	Date      string `json:"date"`      // header date as written, dd.mm.yy[yy]
	Time      string `json:"time"`      // header time, HH:MM
	Sender    string `json:"sender"`
	Message   string `json:"message"`

	WorkEntry
}

// HighlightRange is a character range of the original message scheduled
// for visual emphasis. Offsets are byte positions into the unmodified
// message; End is exclusive. Computed fresh per render, never persisted.
type HighlightRange struct {
	Start        int
	End          int
	Text         string
	Warning      bool
	IsStructured bool
}
