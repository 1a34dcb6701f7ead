// Package extract pulls canonical question identifiers out of free-text
// question fields.
//
// Question text in duplicate-detection exports embeds the identifier inline,
// e.g. "... Question ID: 64a7f3b2c9d1e0f4a5b6c7d8 ...". The identifier is a
// 24-character hexadecimal string. Identifiers are only ever extracted, never
// synthesized or normalized.
package extract

import "regexp"

// questionIDPattern matches a "Question ID" tag followed by optional
// separators and a 24-character hexadecimal run. The whole pattern is
// case-insensitive to tolerate inconsistent tagging in source exports.
var questionIDPattern = regexp.MustCompile(`(?i)Question ID[:\s]*([a-f0-9]{24})`)

// QuestionID returns the 24-character identifier embedded in text, or the
// empty string when text is empty or contains no identifier. Only the first
// match is used when multiple occur.
func QuestionID(text string) string {
	if text == "" {
		return ""
	}
	m := questionIDPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
