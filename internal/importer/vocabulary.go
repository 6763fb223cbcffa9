package importer

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Keyword is a classifier cue. Phrases that describe step sequencing carry
// weight 2 in the default vocabulary.
type Keyword struct {
	Term   string `yaml:"term" json:"term"`
	Weight int    `yaml:"weight" json:"weight"`
}

// Validate implements validation.Validatable.
func (k Keyword) Validate() error {
	return validation.ValidateStruct(&k,
		validation.Field(&k.Term, validation.Required),
		validation.Field(&k.Weight, validation.Min(0)),
	)
}

// Vocabulary is the classifier policy: one keyword table per non-default label.
type Vocabulary struct {
	Guide      []Keyword `yaml:"guide" json:"guide"`
	ToolReview []Keyword `yaml:"tool_review" json:"tool_review"`
}

// Validate implements validation.Validatable.
func (v Vocabulary) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Guide, validation.Required),
		validation.Field(&v.ToolReview, validation.Required),
	)
}

// DefaultVocabulary returns a fresh copy of the built-in keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Guide: []Keyword{
			{Term: "how to", Weight: 1},
			{Term: "step by step", Weight: 2},
			{Term: "step-by-step", Weight: 2},
			{Term: "step 1", Weight: 2},
			{Term: "first step", Weight: 2},
			{Term: "next step", Weight: 2},
			{Term: "final step", Weight: 2},
			{Term: "tutorial", Weight: 1},
			{Term: "guide", Weight: 1},
			{Term: "walkthrough", Weight: 1},
			{Term: "getting started", Weight: 1},
			{Term: "set up", Weight: 1},
			{Term: "setup", Weight: 1},
			{Term: "install", Weight: 1},
			{Term: "configure", Weight: 1},
			{Term: "instructions", Weight: 1},
			{Term: "beginner", Weight: 1},
		},
		ToolReview: []Keyword{
			{Term: "review", Weight: 1},
			{Term: "pricing", Weight: 1},
			{Term: "pros and cons", Weight: 1},
			{Term: "vs", Weight: 1},
			{Term: "versus", Weight: 1},
			{Term: "comparison", Weight: 1},
			{Term: "compared to", Weight: 1},
			{Term: "alternative", Weight: 1},
			{Term: "features", Weight: 1},
			{Term: "rating", Weight: 1},
			{Term: "verdict", Weight: 1},
			{Term: "free plan", Weight: 1},
			{Term: "subscription", Weight: 1},
			{Term: "worth it", Weight: 1},
		},
	}
}

// LoadVocabulary reads a YAML vocabulary file:
//
//	guide:
//	  - term: how to
//	    weight: 1
//	tool_review:
//	  - term: pricing
//	    weight: 1
func LoadVocabulary(path string) (Vocabulary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	var v Vocabulary
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, fmt.Errorf("invalid vocabulary %s: %w", path, err)
	}
	return v.normalized(), nil
}

// normalized lowercases terms and defaults missing weights to 1.
func (v Vocabulary) normalized() Vocabulary {
	return Vocabulary{
		Guide:      normalizeKeywords(v.Guide),
		ToolReview: normalizeKeywords(v.ToolReview),
	}
}

func normalizeKeywords(in []Keyword) []Keyword {
	out := make([]Keyword, 0, len(in))
	for _, k := range in {
		term := strings.ToLower(strings.TrimSpace(k.Term))
		if term == "" {
			continue
		}
		w := k.Weight
		if w <= 0 {
			w = 1
		}
		out = append(out, Keyword{Term: term, Weight: w})
	}
	return out
}
