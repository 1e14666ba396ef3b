// Package timeutil holds the shared time and date primitives used by both
// the batch extraction pipeline and interactive edits. Every netto
// recalculation in the program goes through CalculateNettoTime.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	fullDatePattern  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	shortDatePattern = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.?$`)
	yy2DatePattern   = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2}$`)
	yy4DatePattern   = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timePattern      = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// MinutesToHHMM formats a minute count as zero-padded HH:MM.
func MinutesToHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeTime zero-pads an H:MM or HH:MM string to HH:MM. Strings
// without a colon are returned unchanged.
func NormalizeTime(timeStr string) string {
	if !strings.Contains(timeStr, ":") {
		return timeStr
	}
	parts := strings.SplitN(timeStr, ":", 2)
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	mins, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return timeStr
	}
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// ParseTimeToMinutes converts an HH:MM string to minutes since midnight.
// Malformed input yields 0.
func ParseTimeToMinutes(timeStr string) int {
	if !strings.Contains(timeStr, ":") {
		return 0
	}
	parts := strings.SplitN(timeStr, ":", 2)
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	mins, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0
	}
	return hours*60 + mins
}

// CalculateNettoTime computes (end - start) - break as HH:MM. Overnight
// shifts wrap by 24h. A zero-length span or a non-positive result yields
// the empty string. Regie time is never subtracted here.
func CalculateNettoTime(startTime, endTime, breakTime string) string {
	startMinutes := ParseTimeToMinutes(startTime)
	endMinutes := ParseTimeToMinutes(endTime)
	if startMinutes == 0 || endMinutes == 0 {
		return ""
	}

	totalMinutes := endMinutes - startMinutes
	if totalMinutes < 0 {
		totalMinutes += 24 * 60
	} else if totalMinutes == 0 {
		return ""
	}

	nettoMinutes := totalMinutes - ParseTimeToMinutes(breakTime)
	if nettoMinutes <= 0 {
		return ""
	}
	return MinutesToHHMM(nettoMinutes)
}

// FormatDateToDDMMYYYY normalizes the supported date notations to the
// canonical dd.mm.yyyy form. Dates without a year get the current year.
// Unrecognized input is returned unchanged.
func FormatDateToDDMMYYYY(dateStr string) string {
	return formatDate(dateStr, time.Now().Year())
}

func formatDate(dateStr string, currentYear int) string {
	if dateStr == "" {
		return ""
	}

	if fullDatePattern.MatchString(dateStr) {
		return dateStr
	}

	// d.m or d.m. without a year: pad and append the current year.
	if shortDatePattern.MatchString(dateStr) {
		parts := strings.Split(strings.TrimSuffix(dateStr, "."), ".")
		return fmt.Sprintf("%s.%s.%d", pad2(parts[0]), pad2(parts[1]), currentYear)
	}

	// d.m.yy: expand the two-digit year.
	if yy2DatePattern.MatchString(dateStr) {
		parts := strings.Split(dateStr, ".")
		return fmt.Sprintf("%s.%s.20%s", pad2(parts[0]), pad2(parts[1]), parts[2])
	}

	// d.m.yyyy: pad day and month.
	if yy4DatePattern.MatchString(dateStr) {
		parts := strings.Split(dateStr, ".")
		return fmt.Sprintf("%s.%s.%s", pad2(parts[0]), pad2(parts[1]), parts[2])
	}

	// yyyy-mm-dd, as produced by date inputs and metadata.
	if isoDatePattern.MatchString(dateStr) {
		parts := strings.SplitN(dateStr[:10], "-", 3)
		return fmt.Sprintf("%s.%s.%s", parts[2], parts[1], parts[0])
	}

	return dateStr
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// ComparableDate converts a dd.mm[.yy[yy]] date to YYYY-MM-DD so dates can
// be compared lexically. It returns the empty string for anything else.
func ComparableDate(dateStr string) string {
	normalized := FormatDateToDDMMYYYY(dateStr)
	if !fullDatePattern.MatchString(normalized) {
		if isoDatePattern.MatchString(dateStr) {
			return dateStr[:10]
		}
		return ""
	}
	parts := strings.Split(normalized, ".")
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
}

// ValidateDateFormat reports whether a string is empty or a strict
// dd.mm.yyyy date.
func ValidateDateFormat(dateStr string) bool {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return true
	}
	return fullDatePattern.MatchString(trimmed)
}

// ValidateTimeFormat reports whether a string is empty or a strict HH:MM
// time with valid hour and minute ranges.
func ValidateTimeFormat(timeStr string) bool {
	trimmed := strings.TrimSpace(timeStr)
	if trimmed == "" {
		return true
	}
	if !timePattern.MatchString(trimmed) {
		return false
	}
	parts := strings.SplitN(trimmed, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	mins, _ := strconv.Atoi(parts[1])
	return hours >= 0 && hours <= 23 && mins >= 0 && mins <= 59
}

// ValidateRegieVsNetto reports whether the regie time does not exceed the
// netto time. Empty or unparseable values pass; they are rejected by the
// format validators instead.
func ValidateRegieVsNetto(regieTime, nettoTime string) bool {
	if regieTime == "" || nettoTime == "" {
		return true
	}
	regieMinutes := ParseTimeToMinutes(regieTime)
	nettoMinutes := ParseTimeToMinutes(nettoTime)
	if regieMinutes == 0 || nettoMinutes == 0 {
		return true
	}
	return regieMinutes <= nettoMinutes
}
