package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/v2"
)

// Token is one annotated word from the linguistic pipeline.
type Token struct {
	Lemma    string
	Tag      string // Penn Treebank part-of-speech tag
	StopWord bool
	Alpha    bool
}

// Annotator tokenizes text and annotates each token with its lemma,
// part-of-speech tag, stop-word flag and alphabetic flag.
type Annotator interface {
	Tag(text string) ([]Token, error)
}

type proseAnnotator struct {
	lemmatizer *golem.Lemmatizer
}

// NewProseAnnotator builds the production annotator on top of the prose
// tagger and the golem English lemma dictionary. Loading the dictionary
// is the only fallible step; a failure here means the service cannot
// run at all.
func NewProseAnnotator() (Annotator, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemma dictionary: %w", err)
	}
	return &proseAnnotator{lemmatizer: lemmatizer}, nil
}

func (a *proseAnnotator) Tag(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{
			Lemma:    a.lemmatizer.Lemma(tok.Text),
			Tag:      tok.Tag,
			StopWord: isStopWord(tok.Text),
			Alpha:    isAlpha(tok.Text),
		})
	}

	return tokens, nil
}

// isStopWord treats a word as a stop-word when the stopwords filter
// strips it entirely.
func isStopWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
