package session

import (
	"sort"

	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// WorkerSummary aggregates one worker's reported time. Regie stays a
// separate total and is never folded into netto.
type WorkerSummary struct {
	Worker       string
	WorkingDays  int
	NettoMinutes int
	RegieMinutes int
}

// NettoHHMM formats the netto total as HH:MM.
func (w WorkerSummary) NettoHHMM() string { return timeutil.MinutesToHHMM(w.NettoMinutes) }

// RegieHHMM formats the regie total as HH:MM.
func (w WorkerSummary) RegieHHMM() string { return timeutil.MinutesToHHMM(w.RegieMinutes) }

// Summarize aggregates records per worker: unique body work dates count
// as working days, netto and regie minutes are summed. Records without
// both a start and an end time are skipped, matching the "needs
// attention" rows of the review table.
func Summarize(records []model.MessageRecord) []WorkerSummary {
	type accumulator struct {
		days  map[string]bool
		netto int
		regie int
	}
	byWorker := map[string]*accumulator{}

	for _, r := range records {
		if r.Sender == "" || r.StartTime == "" || r.EndTime == "" {
			continue
		}
		acc := byWorker[r.Sender]
		if acc == nil {
			acc = &accumulator{days: map[string]bool{}}
			byWorker[r.Sender] = acc
		}
		if r.WorkDate != "" {
			acc.days[r.WorkDate] = true
		}
		acc.netto += timeutil.ParseTimeToMinutes(r.NettoTime)
		acc.regie += timeutil.ParseTimeToMinutes(r.RegieTime)
	}

	summaries := make([]WorkerSummary, 0, len(byWorker))
	for worker, acc := range byWorker {
		summaries = append(summaries, WorkerSummary{
			Worker:       worker,
			WorkingDays:  len(acc.days),
			NettoMinutes: acc.netto,
			RegieMinutes: acc.regie,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Worker < summaries[j].Worker })
	return summaries
}

// Stats describes an export at a glance.
type Stats struct {
	TotalMessages  int
	Senders        map[string]int
	FirstDate      string // YYYY-MM-DD, from message header timestamps
	LastDate       string
	MessagesPerDay map[string]int
}

// Analyze computes message statistics over the header timestamps.
func Analyze(records []model.MessageRecord) Stats {
	stats := Stats{
		Senders:        map[string]int{},
		MessagesPerDay: map[string]int{},
	}
	stats.TotalMessages = len(records)

	for _, r := range records {
		sender := r.Sender
		if sender == "" {
			sender = "Unknown"
		}
		stats.Senders[sender]++

		if len(r.Timestamp) < 10 {
			continue
		}
		day := r.Timestamp[:10]
		stats.MessagesPerDay[day]++
		if stats.FirstDate == "" || day < stats.FirstDate {
			stats.FirstDate = day
		}
		if day > stats.LastDate {
			stats.LastDate = day
		}
	}
	return stats
}
