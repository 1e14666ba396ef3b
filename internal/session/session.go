// Package session holds the result of parsing one chat export and the
// operations over it: filtering, per-worker summaries, statistics and
// interactive edits. All state lives on the Session value; nothing is
// package-global.
package session

import (
	"fmt"
	"sort"

	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// Session owns the parsed messages of one export.
type Session struct {
	Records []model.MessageRecord
}

// New wraps parsed records in a session.
func New(records []model.MessageRecord) *Session {
	return &Session{Records: records}
}

// Filter returns the records within the date range (inclusive, empty
// bound means open) posted by the given worker (empty means all). Bounds
// are accepted in dd.mm.yyyy or YYYY-MM-DD notation. Records without a
// body work date never pass a date filter.
func (s *Session) Filter(fromDate, toDate, worker string) []model.MessageRecord {
	fromDate = comparableBound(fromDate)
	toDate = comparableBound(toDate)

	var out []model.MessageRecord
	for _, r := range s.Records {
		if fromDate != "" || toDate != "" {
			comparable := timeutil.ComparableDate(r.WorkDate)
			if comparable == "" {
				continue
			}
			if fromDate != "" && comparable < fromDate {
				continue
			}
			if toDate != "" && comparable > toDate {
				continue
			}
		}
		if worker != "" && r.Sender != worker {
			continue
		}
		out = append(out, r)
	}
	return out
}

// comparableBound converts a filter bound to the comparable YYYY-MM-DD
// form. Unrecognized input is kept as written and compared lexically.
func comparableBound(bound string) string {
	if bound == "" {
		return ""
	}
	if comparable := timeutil.ComparableDate(bound); comparable != "" {
		return comparable
	}
	return bound
}

// EarliestDate returns the smallest body work date as YYYY-MM-DD, or ""
// when no record carries one.
func (s *Session) EarliestDate() string {
	earliest := ""
	for _, r := range s.Records {
		comparable := timeutil.ComparableDate(r.WorkDate)
		if comparable == "" {
			continue
		}
		if earliest == "" || comparable < earliest {
			earliest = comparable
		}
	}
	return earliest
}

// Workers returns the distinct sender names, sorted.
func (s *Session) Workers() []string {
	seen := map[string]bool{}
	var workers []string
	for _, r := range s.Records {
		if r.Sender == "" || seen[r.Sender] {
			continue
		}
		seen[r.Sender] = true
		workers = append(workers, r.Sender)
	}
	sort.Strings(workers)
	return workers
}

// DuplicateDates returns the IDs of records that repeat an earlier
// record's workDate+worker combination, in record order. Duplicates are
// surfaced, not dropped: the reviewer decides which row is right.
func (s *Session) DuplicateDates() map[string]bool {
	seen := map[string]bool{}
	duplicates := map[string]bool{}
	for _, r := range s.Records {
		if r.WorkDate == "" {
			continue
		}
		key := r.WorkDate + "_" + r.Sender
		if seen[key] {
			duplicates[r.ID] = true
			continue
		}
		seen[key] = true
	}
	return duplicates
}

// ApplyEdit validates and applies an interactive field edit to the record
// with the given ID, recomputing netto when start, end or break changed.
// Invalid values are rejected with an error and the record is left
// untouched; values are never silently coerced.
func (s *Session) ApplyEdit(recordID, field, value string) error {
	idx := -1
	for i := range s.Records {
		if s.Records[i].ID == recordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no record with id %s", recordID)
	}
	r := &s.Records[idx]

	switch field {
	case "workDate":
		if !timeutil.ValidateDateFormat(value) {
			return fmt.Errorf("invalid date format %q, expected dd.mm.yyyy", value)
		}
		r.WorkDate = value
		return nil
	case "startTime", "endTime", "breakTime", "regieTime":
		if !timeutil.ValidateTimeFormat(value) {
			return fmt.Errorf("invalid time format %q, expected HH:MM", value)
		}
	default:
		return fmt.Errorf("field %q is not editable", field)
	}

	start, end, brk := r.StartTime, r.EndTime, r.BreakTime
	switch field {
	case "startTime":
		start = value
	case "endTime":
		end = value
	case "breakTime":
		brk = value
	case "regieTime":
		if !timeutil.ValidateRegieVsNetto(value, r.NettoTime) {
			return fmt.Errorf("regie time %s exceeds netto time %s", value, r.NettoTime)
		}
		r.RegieTime = value
		return nil
	}

	// The break must leave a positive working span.
	if start != "" && end != "" && brk != "" {
		total := timeutil.ParseTimeToMinutes(end) - timeutil.ParseTimeToMinutes(start)
		if total < 0 {
			total += 24 * 60
		}
		if breakMinutes := timeutil.ParseTimeToMinutes(brk); breakMinutes >= total && total > 0 {
			return fmt.Errorf("break %s must be shorter than the work duration %s",
				brk, timeutil.MinutesToHHMM(total))
		}
	}

	r.StartTime, r.EndTime, r.BreakTime = start, end, brk
	r.NettoTime = timeutil.CalculateNettoTime(start, end, brk)
	return nil
}
