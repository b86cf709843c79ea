package services

import (
	"fmt"
	"sort"
	"strings"
)

const DefaultTopKeywords = 30

// KeywordExtractor derives candidate search keywords from resume text.
type KeywordExtractor interface {
	Extract(text string, topN int) ([]string, error)
}

type keywordExtractor struct {
	annotator Annotator
}

func NewKeywordExtractor(annotator Annotator) KeywordExtractor {
	return &keywordExtractor{annotator: annotator}
}

// Penn Treebank tags covering common and proper nouns.
var nounTags = map[string]bool{
	"NN":   true,
	"NNS":  true,
	"NNP":  true,
	"NNPS": true,
}

// Extract lowercases the text, keeps noun lemmas that are alphabetic
// and not stop-words, and returns the topN most frequent. Ties are
// broken by first occurrence in the token stream, which keeps the
// ordering deterministic for a given annotator.
func (e *keywordExtractor) Extract(text string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	tokens, err := e.annotator.Tag(strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if !nounTags[tok.Tag] || tok.StopWord || !tok.Alpha {
			continue
		}
		if _, seen := counts[tok.Lemma]; !seen {
			firstSeen[tok.Lemma] = i
		}
		counts[tok.Lemma]++
	}

	lemmas := make([]string, 0, len(counts))
	for lemma := range counts {
		lemmas = append(lemmas, lemma)
	}
	sort.Slice(lemmas, func(a, b int) bool {
		if counts[lemmas[a]] != counts[lemmas[b]] {
			return counts[lemmas[a]] > counts[lemmas[b]]
		}
		return firstSeen[lemmas[a]] < firstSeen[lemmas[b]]
	})

	if len(lemmas) > topN {
		lemmas = lemmas[:topN]
	}
	return lemmas, nil
}
