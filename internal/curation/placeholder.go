// Package curation classifies and replaces auto-generated placeholder
// questions with curated templates. Ongoing classification uses the
// curation_status column on questions; the text heuristics here exist to
// backfill that column for rows created before it was added.
package curation

import (
	"strings"

	"github.com/neetabhyas/content-pipeline/internal/model"
)

// placeholderPatterns are the generic phrasings emitted by the old
// question generator. Matching is case-sensitive substring matching, so
// an authored question containing one of these would be misclassified;
// that risk is confined to the one-time backfill.
var placeholderPatterns = []string{
	"Which of the following statements is correct",
	"In which scenario would this principle",
	"What is the primary characteristic",
}

// IsPlaceholderText reports whether question text matches a known
// placeholder phrasing.
func IsPlaceholderText(text string) bool {
	for _, pattern := range placeholderPatterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

// FilterPlaceholders returns the questions whose text matches a
// placeholder phrasing, preserving the input order. An empty result is
// not an error; the topic simply has nothing to backfill.
func FilterPlaceholders(questions []model.Question) []model.Question {
	var placeholders []model.Question
	for _, q := range questions {
		if IsPlaceholderText(q.QuestionText) {
			placeholders = append(placeholders, q)
		}
	}
	return placeholders
}
