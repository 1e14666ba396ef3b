// Package chat segments a WhatsApp-style text export into discrete
// message records and runs work-info extraction on each accepted message.
// Status notifications and deleted messages are filtered out before
// extraction; a malformed message is dropped with a log line instead of
// aborting the rest of the export.
package chat

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shiftlog/internal/extract"
	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

var (
	// headerScanPattern finds every line that starts like a message
	// header, regardless of what follows the dash.
	headerScanPattern = regexp.MustCompile(`(?m)^(\d{2}\.\d{2}\.\d{2,4}),\s*(\d{2}:\d{2})\s*-\s*`)

	// headerFullPattern parses a complete message block:
	// "dd.mm.yy, hh:mm - Name: Message". Status lines have no colon
	// after the dash and never reach this pattern.
	headerFullPattern = regexp.MustCompile(`(?s)^(\d{2}\.\d{2}\.\d{2,4}),\s*(\d{2}:\d{2})\s*-\s*([^:\n]+):\s*(.*)`)

	// lineMessagePattern is the single-line variant used by the
	// line-by-line fallback parser.
	lineMessagePattern = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{2,4}),\s*(\d{2}:\d{2})\s*-\s*([^:]+):\s*(.+)$`)

	lineHeaderPrefix = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2,4},`)

	// deletedMessagePattern matches the exact German WhatsApp texts for
	// messages removed by their sender.
	deletedMessagePattern = regexp.MustCompile(`(?i)^\s*(du\s+hast\s+diese\s+nachricht\s+gelöscht\.|diese\s+nachricht\s+wurde\s+gelöscht\.)\s*$`)
)

// ErrNoMessages is returned when an export contains no parseable chat
// messages at all.
var ErrNoMessages = errors.New("no messages found in export")

type header struct {
	index   int
	dateStr string
	timeStr string
}

// ParseExport splits content into messages and extracts a work entry per
// message. The block parser handles well-formed exports; when it finds
// nothing, a line-by-line pass with continuation-line merging takes over.
func ParseExport(content string, log *zap.SugaredLogger) ([]model.MessageRecord, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var allHeaders []header
	for _, loc := range headerScanPattern.FindAllStringSubmatchIndex(content, -1) {
		allHeaders = append(allHeaders, header{
			index:   loc[0],
			dateStr: content[loc[2]:loc[3]],
			timeStr: content[loc[4]:loc[5]],
		})
	}
	log.Debugf("found %d potential message headers", len(allHeaders))

	var (
		regular        []header
		statusIndices  = map[int]bool{}
		statusSkipped  int
		deletedSkipped int
	)
	for i, h := range allHeaders {
		nextIndex := len(content)
		if i < len(allHeaders)-1 {
			nextIndex = allHeaders[i+1].index
		}
		peek := content[h.index:min(h.index+500, nextIndex)]

		dashIndex := strings.Index(peek, " - ")
		if dashIndex < 0 {
			continue
		}
		afterDash := peek[dashIndex+3:]
		firstLine := afterDash
		if nl := strings.IndexByte(afterDash, '\n'); nl > 0 {
			firstLine = afterDash[:nl]
		} else if len(firstLine) > 200 {
			firstLine = firstLine[:200]
		}

		// A colon after the sender name separates real messages from
		// status notifications.
		colonIndex := strings.IndexByte(firstLine, ':')
		if colonIndex <= 0 {
			statusSkipped++
			statusIndices[h.index] = true
			continue
		}
		if deletedMessagePattern.MatchString(strings.TrimSpace(firstLine[colonIndex+1:])) {
			deletedSkipped++
			statusIndices[h.index] = true
			continue
		}
		regular = append(regular, h)
	}
	log.Debugf("filtered: %d valid messages (%d status, %d deleted skipped)",
		len(regular), statusSkipped, deletedSkipped)

	var messages []model.MessageRecord
	for i, h := range regular {
		// A block ends at the next header of any kind, so status lines
		// inside a gap never leak into the preceding message body.
		nextIndex := len(content)
		if i < len(regular)-1 {
			nextIndex = regular[i+1].index
		}
		for statusIdx := range statusIndices {
			if statusIdx > h.index && statusIdx < nextIndex {
				nextIndex = statusIdx
			}
		}

		block := content[h.index:nextIndex]
		m := headerFullPattern.FindStringSubmatch(block)
		if m == nil {
			log.Warnf("could not parse header at offset %d", h.index)
			continue
		}

		record, err := processMessage(m[4], m[1], m[2], m[3])
		if err != nil {
			log.Warnf("dropping message at offset %d: %v", h.index, err)
			continue
		}
		messages = append(messages, *record)
	}

	if len(messages) == 0 {
		log.Debug("block parser found no messages, trying line-by-line parsing")
		messages = parseLineByLine(content, log, &deletedSkipped)
	}

	log.Infof("parsed %d messages (%d status, %d deleted filtered out)",
		len(messages), statusSkipped, deletedSkipped)

	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	return messages, nil
}

// parseLineByLine is the fallback for exports whose messages the block
// parser could not segment. Continuation lines are appended to the
// current message and the grown body is re-extracted, merging new fields
// into the record without overwriting earlier ones.
func parseLineByLine(content string, log *zap.SugaredLogger, deletedSkipped *int) []model.MessageRecord {
	var messages []model.MessageRecord
	var current *model.MessageRecord

	flush := func() {
		if current == nil {
			return
		}
		// Final pass over the complete body to catch fields that only
		// appeared in continuation lines.
		final := safeExtract(current.Message)
		extract.MergeWorkInfo(&current.WorkEntry, &final)
		messages = append(messages, *current)
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if m := lineMessagePattern.FindStringSubmatch(line); m != nil {
			afterDash := line[strings.Index(line, " - ")+3:]
			if !strings.Contains(afterDash, ":") {
				continue // status line
			}
			if deletedMessagePattern.MatchString(strings.TrimSpace(m[4])) {
				*deletedSkipped++
				flush()
				continue
			}

			flush()
			record, err := processMessage(m[4], m[1], m[2], m[3])
			if err != nil {
				log.Warnf("dropping message: %v", err)
				continue
			}
			current = record
			continue
		}

		trimmed := strings.TrimSpace(line)
		if current != nil && trimmed != "" && !lineHeaderPrefix.MatchString(line) {
			current.Message += "\n" + trimmed
			grown := safeExtract(current.Message)
			extract.MergeWorkInfo(&current.WorkEntry, &grown)
		}
	}
	flush()

	log.Debugf("line-by-line parsing found %d messages", len(messages))
	return messages
}

// processMessage validates the header, extracts work info from the body
// and assembles the record.
func processMessage(message, dateStr, timeStr, sender string) (*model.MessageRecord, error) {
	timestamp, err := parseHeaderTimestamp(dateStr, timeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid header date %q %q: %w", dateStr, timeStr, err)
	}

	body := strings.TrimSpace(message)
	workInfo := safeExtract(body)

	// The fuzzy path falls back to the header date when the body names
	// none. Structured matches always carry their own date.
	workDate := workInfo.WorkDate
	if workDate == "" && workInfo.StructuredFormatMatch == nil {
		workDate = timeutil.FormatDateToDDMMYYYY(dateStr)
	}
	workInfo.WorkDate = workDate

	return &model.MessageRecord{
		ID:        uuid.NewString(),
		Timestamp: timestamp.Format(time.RFC3339),
		Date:      dateStr,
		Time:      timeStr,
		Sender:    strings.TrimSpace(sender),
		Message:   body,
		WorkEntry: workInfo,
	}, nil
}

// safeExtract shields the pipeline from a panic on one pathological
// message; the message then yields an empty entry instead of taking the
// whole export down.
func safeExtract(message string) (entry model.WorkEntry) {
	defer func() {
		if r := recover(); r != nil {
			entry = model.WorkEntry{DateMatchIndex: -1}
		}
	}()
	return extract.ExtractWorkInfo(message)
}

// parseHeaderTimestamp builds a timestamp from the header date and time,
// expanding two-digit years.
func parseHeaderTimestamp(dateStr, timeStr string) (time.Time, error) {
	parts := strings.Split(dateStr, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed date %q", dateStr)
	}
	year := parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	return time.Parse("02.01.2006 15:04", fmt.Sprintf("%s.%s.%s %s", parts[0], parts[1], year, timeStr))
}
