package extract

import (
	"strings"

	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// regieKeywordWindow bounds how far after a duration token the "regie"
// keyword may appear.
const regieKeywordWindow = 15

// extractRegieTokens collects every duration token followed by the regie
// keyword. Non-overlap is enforced jointly across all patterns through a
// shared allocator, so a span matched by a higher-priority pattern is
// never counted again by a lower-priority one.
func extractRegieTokens(text string) []model.DurationToken {
	var tokens []model.DurationToken
	var claimed Allocator

	for _, p := range regieDurationPatterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			matchStart, matchEnd := loc[0], loc[1]
			if claimed.Overlaps(matchStart, matchEnd) {
				continue
			}

			windowEnd := min(len(text), matchEnd+regieKeywordWindow)
			if !regieKeyword.MatchString(text[matchEnd:windowEnd]) {
				continue
			}

			tokens = append(tokens, model.DurationToken{
				Minutes:      parseDurationValue(text[loc[2]:loc[3]], p),
				OriginalText: text[matchStart:matchEnd],
			})
			claimed.TryClaim(matchStart, matchEnd)
		}
	}
	return tokens
}

// combineRegieTokens folds regie tokens into a single HH:MM value. A
// single token is used directly; several are summed, with their verbatim
// spans joined by "|" so each can be highlighted individually later.
func combineRegieTokens(tokens []model.DurationToken) (regieTime, originalText string) {
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return timeutil.MinutesToHHMM(tokens[0].Minutes), tokens[0].OriginalText
	default:
		total := 0
		spans := make([]string, len(tokens))
		for i, t := range tokens {
			total += t.Minutes
			spans[i] = t.OriginalText
		}
		return timeutil.MinutesToHHMM(total), strings.Join(spans, "|")
	}
}
