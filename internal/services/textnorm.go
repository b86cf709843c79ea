package services

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reNewlines   = regexp.MustCompile(`\n+`)
	reURL        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize flattens raw extracted text into a single clean ASCII line:
// line endings are unified, URLs stripped, non-ASCII dropped and all
// whitespace runs collapsed to single spaces. Idempotent, so it is safe
// to run on already-normalized input.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = reNewlines.ReplaceAllString(text, "\n")
	text = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, text)
	text = reURL.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
