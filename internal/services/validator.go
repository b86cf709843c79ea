package services

import (
	"regexp"
	"strings"
)

// Heuristic thresholds for deciding whether extracted text looks like
// a resume. Each check contributes one point; AcceptThreshold of the
// four must pass.
const (
	MaxResumeScore  = 4
	AcceptThreshold = 3
	minWordCount    = 100
)

var (
	reEmail = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	rePhone = regexp.MustCompile(`\+?\d[\d\s-]{8,11}\d`)
)

var sectionKeywords = []string{
	"experience",
	"education",
	"skills",
	"summary",
	"projects",
	"certifications",
}

// Score applies the four independent resume heuristics and returns the
// number that passed (0-4). Empty input scores zero.
func Score(text string) int {
	score := 0
	if reEmail.MatchString(text) {
		score++
	}
	if rePhone.MatchString(text) {
		score++
	}
	lower := strings.ToLower(text)
	found := 0
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	if found >= 2 {
		score++
	}
	if len(strings.Fields(text)) > minWordCount {
		score++
	}
	return score
}

// Validate reports whether the text looks like a resume.
func Validate(text string) bool {
	return Score(text) >= AcceptThreshold
}
