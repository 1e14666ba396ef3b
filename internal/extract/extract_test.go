package extract_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlog/internal/extract"
)

func currentYearDate(ddmm string) string {
	return fmt.Sprintf("%s.%d", ddmm, time.Now().Year())
}

func TestExtractStructuredMessage(t *testing.T) {
	message := "18.11., 8:00, 16:00, break: 30, regie: 90, cutting trees"
	entry := extract.ExtractWorkInfo(message)

	require.NotNil(t, entry.StructuredFormatMatch)
	assert.Equal(t, currentYearDate("18.11"), entry.WorkDate)
	assert.Equal(t, "08:00", entry.StartTime)
	assert.Equal(t, "16:00", entry.EndTime)
	assert.Equal(t, "00:30", entry.BreakTime)
	assert.Equal(t, "01:30", entry.RegieTime)
	assert.Equal(t, "07:30", entry.NettoTime)

	// The recorded span stops before the free-text description.
	assert.Equal(t, "18.11., 8:00, 16:00, break: 30, regie: 90",
		entry.StructuredFormatMatch.FullText)
	assert.Equal(t, 0, entry.StructuredFormatMatch.Index)

	// Structured matches never carry per-field spans.
	assert.Empty(t, entry.TimeRangeOriginalText)
	assert.Empty(t, entry.BreakOriginalText)
	assert.Empty(t, entry.RegieOriginalText)
}

func TestExtractStructuredWhitespaceSeparators(t *testing.T) {
	entry := extract.ExtractWorkInfo("18.11. 8:00 16:00 break 30")

	require.NotNil(t, entry.StructuredFormatMatch)
	assert.Equal(t, "08:00", entry.StartTime)
	assert.Equal(t, "16:00", entry.EndTime)
	assert.Equal(t, "00:30", entry.BreakTime)
	assert.Equal(t, "07:30", entry.NettoTime)
	assert.Empty(t, entry.RegieTime)
}

func TestStructuredRegieUnits(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		// Common minute quanta read as minutes, everything else as hours.
		{"18.11., 8:00, 16:00, regie: 30", "00:30"},
		{"18.11., 8:00, 16:00, regie: 90", "01:30"},
		{"18.11., 8:00, 16:00, regie: 2", "02:00"},
		{"18.11., 8:00, 16:00, regie: 2 hr", "02:00"},
		{"18.11., 8:00, 16:00, regie: 0:45", "00:45"},
	}
	for _, tt := range tests {
		entry := extract.ExtractWorkInfo(tt.message)
		require.NotNil(t, entry.StructuredFormatMatch, "message %q", tt.message)
		assert.Equal(t, tt.want, entry.RegieTime, "message %q", tt.message)
	}
}

func TestExtractDateCascade(t *testing.T) {
	message := "Ref: 12.11 08:00-16:00"
	entry := extract.ExtractWorkInfo(message)

	require.Nil(t, entry.StructuredFormatMatch)
	assert.Equal(t, currentYearDate("12.11"), entry.WorkDate)
	assert.Equal(t, "12.11", entry.DateOriginalText)
	assert.Equal(t, strings.Index(message, "12.11"), entry.DateMatchIndex)
	assert.Equal(t, "08:00", entry.StartTime)
	assert.Equal(t, "16:00", entry.EndTime)
	assert.Equal(t, "08:00-16:00", entry.TimeRangeOriginalText)
	assert.Equal(t, "08:00", entry.NettoTime)
}

func TestExtractBareTimesWithoutDate(t *testing.T) {
	entry := extract.ExtractWorkInfo("Worked 08:00 to 16:00, 45 min driving time")

	assert.Empty(t, entry.WorkDate)
	assert.Equal(t, -1, entry.DateMatchIndex)
	assert.Equal(t, "08:00", entry.StartTime)
	assert.Equal(t, "16:00", entry.EndTime)
	assert.Empty(t, entry.TimeRangeOriginalText)
	// "45 min" has no break context keyword and no preceding time range,
	// so it is not a break.
	assert.Empty(t, entry.BreakTime)
	assert.Equal(t, "08:00", entry.NettoTime)
}

func TestExtractBreakWithKeyword(t *testing.T) {
	entry := extract.ExtractWorkInfo("Worked 08:00 to 16:30 with 30 min break")

	assert.Equal(t, "00:30", entry.BreakTime)
	assert.Equal(t, "30 min break", entry.BreakOriginalText)
	assert.Equal(t, "08:00", entry.NettoTime)
}

func TestExtractBreakAfterTimeRange(t *testing.T) {
	// A duration directly after the time range counts as the break even
	// without a keyword.
	entry := extract.ExtractWorkInfo("12.11: 08:00-17:00 30 min")

	assert.Equal(t, currentYearDate("12.11"), entry.WorkDate)
	assert.Equal(t, "00:30", entry.BreakTime)
	assert.Equal(t, "30 min", entry.BreakOriginalText)
	assert.Equal(t, "08:30", entry.NettoTime)
}

func TestExtractRegieNotSubtractedFromNetto(t *testing.T) {
	entry := extract.ExtractWorkInfo("12.11: 08:00-17:00 work done, 2 hr regie wood clearing")

	assert.Equal(t, "02:00", entry.RegieTime)
	assert.Equal(t, "2 hr", entry.RegieOriginalText)
	assert.Empty(t, entry.BreakTime)
	assert.Equal(t, "09:00", entry.NettoTime)
}

func TestExtractMultipleRegieTokensSummed(t *testing.T) {
	entry := extract.ExtractWorkInfo("08:00 16:00 then 30 min regie and 1 hr regie later")

	assert.Equal(t, "01:30", entry.RegieTime)
	// Spans are joined with "|" and split again for highlighting.
	assert.ElementsMatch(t, []string{"1 hr", "30 min"}, entry.RegieSpans())
}

func TestExtractRegieOverlapCountedOnce(t *testing.T) {
	// "1/2 hr" must not also be counted as "2 hr" by the hour pattern.
	entry := extract.ExtractWorkInfo("08:00 16:00, 1/2 hr regie")

	assert.Equal(t, "00:30", entry.RegieTime)
	assert.Equal(t, "1/2 hr", entry.RegieOriginalText)
}

func TestExtractAdditionalDates(t *testing.T) {
	message := "12.11. 08:00-16:00 and also 13.11. 07:00-15:00"
	entry := extract.ExtractWorkInfo(message)

	require.Nil(t, entry.StructuredFormatMatch)
	assert.Equal(t, currentYearDate("12.11"), entry.WorkDate)

	require.Len(t, entry.AdditionalDates, 1)
	assert.Equal(t, "13.11", entry.AdditionalDates[0].Date)
	assert.Equal(t, "13.11.", entry.AdditionalDates[0].FullMatch)
	assert.Equal(t, strings.Index(message, "13.11."), entry.AdditionalDates[0].Index)
}

func TestExtractNoData(t *testing.T) {
	entry := extract.ExtractWorkInfo("See you tomorrow!")

	assert.False(t, entry.HasData())
	assert.Equal(t, -1, entry.DateMatchIndex)
}

func TestMergeWorkInfoFillsOnlyEmptyFields(t *testing.T) {
	target := extract.ExtractWorkInfo("12.11: 08:00-16:00")
	source := extract.ExtractWorkInfo("13.11: 07:00-17:00 with 30 min break")

	extract.MergeWorkInfo(&target, &source)

	// Existing values survive the merge.
	assert.Equal(t, currentYearDate("12.11"), target.WorkDate)
	assert.Equal(t, "08:00", target.StartTime)
	assert.Equal(t, "16:00", target.EndTime)
	// Only the break was missing and gets filled.
	assert.Equal(t, "00:30", target.BreakTime)
	assert.Equal(t, "30 min break", target.BreakOriginalText)
}

func TestRegieTypeKeywordSpans(t *testing.T) {
	spans := extract.RegieTypeKeywordSpans("did some wood clearing and material transport")

	require.NotEmpty(t, spans)
	texts := make([]string, len(spans))
	for i, s := range spans {
		texts[i] = s.Text
	}
	assert.Contains(t, texts, "wood clearing")
	assert.Contains(t, texts, "material transport")
}
