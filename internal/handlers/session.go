package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionKeyKeywords = "keywords"
	sessionKeyEdited   = "keywords_edited"
)

// Keywords are stored comma-joined; entries can never contain commas
// because user input is split on them.
func sessionKeywords(sess *session.Session) ([]string, bool) {
	raw, ok := sess.Get(sessionKeyKeywords).(string)
	if !ok || raw == "" {
		return nil, false
	}
	return strings.Split(raw, ","), true
}

func sessionKeywordsEdited(sess *session.Session) bool {
	edited, _ := sess.Get(sessionKeyEdited).(bool)
	return edited
}

func setSessionKeywords(sess *session.Session, keywords []string, edited bool) error {
	sess.Set(sessionKeyKeywords, strings.Join(keywords, ","))
	sess.Set(sessionKeyEdited, edited)
	return sess.Save()
}

// splitKeywords flattens comma-separated entries, trims whitespace and
// drops empties.
func splitKeywords(entries []string) []string {
	var out []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
