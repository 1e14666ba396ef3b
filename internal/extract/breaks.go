package extract

import (
	"strings"

	"shiftlog/internal/model"
)

// breakContextWindow bounds how far after a duration token a break
// keyword may appear; it is wide enough to catch "lunch + tea".
const breakContextWindow = 20

// extractBreak finds the break duration in text. A duration token is only
// accepted as a break when a break-context keyword follows it within the
// lookahead window, or when a time range immediately precedes it (a
// duration right after "08:00-17:00" is the break even without a
// keyword). The first accepted match across all patterns wins. When
// nothing is found, a previously known break value is re-parsed so edits
// are not lost on re-extraction.
func extractBreak(text, existingBreak string) model.DurationToken {
	for _, p := range breakDurationPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			matchStart, matchEnd := loc[0], loc[1]
			value := text[loc[2]:loc[3]]

			windowEnd := min(len(text), matchEnd+breakContextWindow)
			window := text[matchEnd:windowEnd]

			if kw := breakContextKeywords.FindStringIndex(window); kw != nil {
				// Keep the duration plus the context keyword so the
				// highlighter can mark the whole phrase.
				full := text[matchStart:matchEnd] + window[:kw[1]]
				return model.DurationToken{
					Minutes:      parseDurationValue(value, p),
					OriginalText: strings.TrimSpace(full),
				}
			}

			windowStart := max(0, matchStart-breakContextWindow)
			if timeRangePattern.MatchString(text[windowStart:matchStart]) {
				return model.DurationToken{
					Minutes:      parseDurationValue(value, p),
					OriginalText: text[matchStart:matchEnd],
				}
			}
		}
	}

	if existingBreak != "" {
		return model.DurationToken{
			Minutes:      parseExistingBreak(existingBreak),
			OriginalText: existingBreak,
		}
	}
	return model.DurationToken{}
}
