package timeutil_test

import (
	"fmt"
	"testing"
	"time"

	"shiftlog/internal/timeutil"
)

func TestMinutesToHHMM(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{90, "01:30"},
		{510, "08:30"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		got := timeutil.MinutesToHHMM(tt.minutes)
		if got != tt.want {
			t.Errorf("MinutesToHHMM(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8:00", "08:00"},
		{"08:00", "08:00"},
		{"8:5", "08:05"},
		{"16:30", "16:30"},
		{"800", "800"},
		{"", ""},
		{"ab:cd", "ab:cd"},
	}
	for _, tt := range tests {
		got := timeutil.NormalizeTime(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:30", 30},
		{"08:00", 480},
		{"8:15", 495},
		{"23:59", 1439},
		{"", 0},
		{"noon", 0},
		{"a:b", 0},
	}
	for _, tt := range tests {
		got := timeutil.ParseTimeToMinutes(tt.in)
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCalculateNettoTime(t *testing.T) {
	tests := []struct {
		start, end, brk string
		want            string
	}{
		{"08:00", "17:00", "00:30", "08:30"},
		{"08:00", "16:00", "", "08:00"},
		{"07:30", "16:45", "01:00", "08:15"},
		// Overnight shifts wrap by 24h.
		{"22:00", "02:00", "00:00", "04:00"},
		{"23:00", "07:00", "00:30", "07:30"},
		// Zero-length span.
		{"09:00", "09:00", "00:00", ""},
		// Break swallows the whole span.
		{"08:00", "08:30", "00:30", ""},
		{"08:00", "08:30", "01:00", ""},
		// Missing or midnight boundaries never produce a value.
		{"", "17:00", "00:30", ""},
		{"08:00", "", "00:30", ""},
		{"00:00", "08:00", "", ""},
	}
	for _, tt := range tests {
		got := timeutil.CalculateNettoTime(tt.start, tt.end, tt.brk)
		if got != tt.want {
			t.Errorf("CalculateNettoTime(%q, %q, %q) = %q, want %q",
				tt.start, tt.end, tt.brk, got, tt.want)
		}
	}
}

func TestFormatDateToDDMMYYYY(t *testing.T) {
	year := time.Now().Year()
	tests := []struct {
		in   string
		want string
	}{
		{"18.11.2024", "18.11.2024"},
		{"18.11", fmt.Sprintf("18.11.%d", year)},
		{"18.11.", fmt.Sprintf("18.11.%d", year)},
		{"5.3", fmt.Sprintf("05.03.%d", year)},
		{"5.3.24", "05.03.2024"},
		{"5.3.2024", "05.03.2024"},
		{"2024-11-18", "18.11.2024"},
		{"", ""},
		{"yesterday", "yesterday"},
	}
	for _, tt := range tests {
		got := timeutil.FormatDateToDDMMYYYY(tt.in)
		if got != tt.want {
			t.Errorf("FormatDateToDDMMYYYY(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComparableDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"18.11.2024", "2024-11-18"},
		{"5.3.24", "2024-03-05"},
		{"2024-11-18", "2024-11-18"},
		{"", ""},
		{"soon", ""},
	}
	for _, tt := range tests {
		got := timeutil.ComparableDate(tt.in)
		if got != tt.want {
			t.Errorf("ComparableDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateDateFormat(t *testing.T) {
	valid := []string{"", "  ", "18.11.2024", "01.01.2020"}
	for _, in := range valid {
		if !timeutil.ValidateDateFormat(in) {
			t.Errorf("ValidateDateFormat(%q) = false, want true", in)
		}
	}
	invalid := []string{"18.11", "18.11.24", "2024-11-18", "18/11/2024"}
	for _, in := range invalid {
		if timeutil.ValidateDateFormat(in) {
			t.Errorf("ValidateDateFormat(%q) = true, want false", in)
		}
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"", "00:00", "08:30", "23:59"}
	for _, in := range valid {
		if !timeutil.ValidateTimeFormat(in) {
			t.Errorf("ValidateTimeFormat(%q) = false, want true", in)
		}
	}
	invalid := []string{"8:30", "24:00", "12:60", "0830", "ab:cd"}
	for _, in := range invalid {
		if timeutil.ValidateTimeFormat(in) {
			t.Errorf("ValidateTimeFormat(%q) = true, want false", in)
		}
	}
}

func TestValidateRegieVsNetto(t *testing.T) {
	tests := []struct {
		regie, netto string
		want         bool
	}{
		{"", "", true},
		{"01:00", "", true},
		{"", "08:00", true},
		{"01:00", "08:00", true},
		{"08:00", "08:00", true},
		{"09:00", "08:00", false},
	}
	for _, tt := range tests {
		got := timeutil.ValidateRegieVsNetto(tt.regie, tt.netto)
		if got != tt.want {
			t.Errorf("ValidateRegieVsNetto(%q, %q) = %v, want %v",
				tt.regie, tt.netto, got, tt.want)
		}
	}
}
