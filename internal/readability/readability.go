// Package readability computes deterministic text metrics for article HTML.
package readability

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"InkSight/internal/domain"
)

// Readers average about 200 words per minute.
const wordsPerMinute = 200

var (
	tagExpr      = regexp.MustCompile(`<[^>]*>`)
	spaceExpr    = regexp.MustCompile(`\s+`)
	sentenceExpr = regexp.MustCompile(`[.!?]+`)
)

// Analyze derives readability metrics from post HTML. The markup is stripped
// before counting; punctuation stays attached to its word. Input whose
// stripped text is empty (including whitespace-only input) is rejected.
func Analyze(html string) (domain.ReadabilityMetrics, error) {
	text := tagExpr.ReplaceAllString(html, " ")
	text = spaceExpr.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if text == "" {
		return domain.ReadabilityMetrics{}, fmt.Errorf("analyze readability: %w", domain.ErrInvalidInput)
	}

	words := strings.Fields(text)
	wordCount := len(words)

	sentenceCount := 0
	for _, fragment := range sentenceExpr.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentenceCount++
		}
	}
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	runeTotal := 0
	for _, word := range words {
		runeTotal += utf8.RuneCountInString(word)
	}

	avgSentence := float64(wordCount) / float64(sentenceCount)
	avgWord := float64(runeTotal) / float64(wordCount)

	score := int(math.Round(100 - 1.5*avgSentence - 10*avgWord))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.ReadabilityMetrics{
		WordCount:          wordCount,
		SentenceCount:      sentenceCount,
		ReadingTimeMinutes: (wordCount + wordsPerMinute - 1) / wordsPerMinute,
		ReadabilityScore:   score,
		ReadabilityLevel:   LevelFor(score),
		AvgSentenceLength:  math.Round(avgSentence*10) / 10,
	}, nil
}

// LevelFor buckets a readability score; both boundaries belong to the
// higher band.
func LevelFor(score int) domain.ReadabilityLevel {
	switch {
	case score >= 70:
		return domain.LevelEasy
	case score >= 50:
		return domain.LevelMedium
	default:
		return domain.LevelAdvanced
	}
}
