package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlog/internal/chat"
)

func TestParseExportBlocks(t *testing.T) {
	content := "18.11.24, 17:32 - Milan: 18.11., 8:00, 16:00, break: 30\n" +
		"18.11.24, 17:40 - Petra: 12.11: 08:00-16:00\n" +
		"with 30 min break\n" +
		"18.11.24, 18:00 - Messages and calls are end-to-end encrypted.\n" +
		"19.11.24, 09:00 - Petra: Diese Nachricht wurde gelöscht.\n"

	records, err := chat.ParseExport(content, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Milan", first.Sender)
	assert.Equal(t, "18.11.24", first.Date)
	assert.Equal(t, "17:32", first.Time)
	assert.Equal(t, "2024-11-18T17:32:00Z", first.Timestamp)
	require.NotNil(t, first.StructuredFormatMatch)
	assert.Equal(t, "08:00", first.StartTime)
	assert.Equal(t, "16:00", first.EndTime)
	assert.Equal(t, "00:30", first.BreakTime)
	assert.NotEmpty(t, first.ID)

	// The second message spans two lines; the continuation line belongs
	// to its body and contributes the break.
	second := records[1]
	assert.Equal(t, "Petra", second.Sender)
	assert.Equal(t, "12.11: 08:00-16:00\nwith 30 min break", second.Message)
	assert.Equal(t, "08:00", second.StartTime)
	assert.Equal(t, "16:00", second.EndTime)
	assert.Equal(t, "00:30", second.BreakTime)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestParseExportStatusLineDoesNotLeakIntoBody(t *testing.T) {
	content := "18.11.24, 17:32 - Milan: 08:00-16:00\n" +
		"18.11.24, 17:35 - Milan changed the group description\n" +
		"18.11.24, 17:40 - Petra: hello\n"

	records, err := chat.ParseExport(content, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "08:00-16:00", records[0].Message)
	assert.Equal(t, "hello", records[1].Message)
}

func TestParseExportHeaderDateFallback(t *testing.T) {
	content := "17.11.24, 08:05 - Milan: 08:00-16:00\n"

	records, err := chat.ParseExport(content, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The body names no date, so the header date fills in.
	assert.Equal(t, "17.11.2024", records[0].WorkDate)
	assert.Equal(t, "08:00", records[0].NettoTime)
}

func TestParseExportBodyDateWinsOverHeader(t *testing.T) {
	content := "18.11.24, 17:32 - Milan: 12.11: 08:00-16:00\n"

	records, err := chat.ParseExport(content, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].WorkDate, "12.11.")
}

func TestParseExportLineByLineFallback(t *testing.T) {
	// The missing space after the dash defeats the block parser; the
	// line-by-line pass with continuation merging takes over.
	content := "17.11.24, 08:05 -Milan: 08:00-16:00 and\n" +
		"more info 30 min break\n"

	records, err := chat.ParseExport(content, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "Milan", record.Sender)
	assert.Equal(t, "08:00-16:00 and\nmore info 30 min break", record.Message)
	assert.Equal(t, "08:00", record.StartTime)
	assert.Equal(t, "16:00", record.EndTime)
	// The break only appears in the continuation line and is merged in.
	assert.Equal(t, "00:30", record.BreakTime)
}

func TestParseExportInvalidHeaderDate(t *testing.T) {
	content := "99.99.24, 10:00 - Milan: 08:00-16:00\n"

	_, err := chat.ParseExport(content, nil)
	assert.ErrorIs(t, err, chat.ErrNoMessages)
}

func TestParseExportNoMessages(t *testing.T) {
	_, err := chat.ParseExport("just some notes\nnothing resembling a chat\n", nil)
	assert.ErrorIs(t, err, chat.ErrNoMessages)

	_, err = chat.ParseExport("18.11.24, 18:00 - Messages and calls are end-to-end encrypted.\n", nil)
	assert.ErrorIs(t, err, chat.ErrNoMessages)
}
