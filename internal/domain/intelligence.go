package domain

import "time"

// OutlineEntry is one heading lifted from article HTML.
type OutlineEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ReadabilityLevel buckets the readability score for display.
type ReadabilityLevel string

const (
	LevelEasy     ReadabilityLevel = "Easy"
	LevelMedium   ReadabilityLevel = "Medium"
	LevelAdvanced ReadabilityLevel = "Advanced"
)

// ReadabilityMetrics is the deterministic text profile of a post body.
type ReadabilityMetrics struct {
	WordCount          int              `json:"wordCount"`
	SentenceCount      int              `json:"sentenceCount"`
	ReadingTimeMinutes int              `json:"readingTime"`
	ReadabilityScore   int              `json:"readabilityScore"`
	ReadabilityLevel   ReadabilityLevel `json:"readabilityLevel"`
	AvgSentenceLength  float64          `json:"avgSentenceLength"`
}

// SeoMetadata is the generated search/social metadata for a post.
type SeoMetadata struct {
	MetaDescription   string   `json:"metaDescription"`
	Keywords          []string `json:"keywords"`
	SocialPreviewText string   `json:"socialPreviewText"`
	SuggestedSlug     string   `json:"suggestedSlug"`
}

// ViralPotential grades how shareable the generator judges a post to be.
type ViralPotential string

const (
	ViralLow    ViralPotential = "Low"
	ViralMedium ViralPotential = "Medium"
	ViralHigh   ViralPotential = "High"
)

// ContentInsights carries qualitative performance feedback for a post.
type ContentInsights struct {
	OverallScore    int            `json:"overallScore"`
	Strengths       []string       `json:"strengths"`
	Improvements    []string       `json:"improvements"`
	EngagementTips  []string       `json:"engagementTips"`
	SeoSuggestions  []string       `json:"seoSuggestions"`
	ViralPotential  ViralPotential `json:"viralPotential"`
	BestPublishTime string         `json:"bestPublishTime"`
}

// SeoRecord is the single persisted intelligence record for a post.
// Every field besides the key and timestamps is optional: independent
// operations patch their own slice of the record without touching the rest.
type SeoRecord struct {
	PostID            string         `json:"postId"`
	MetaDescription   *string        `json:"metaDescription,omitempty"`
	Keywords          []string       `json:"keywords,omitempty"`
	SocialPreviewText *string        `json:"socialPreviewText,omitempty"`
	SuggestedSlug     *string        `json:"suggestedSlug,omitempty"`
	WordCount         *int           `json:"wordCount,omitempty"`
	SentenceCount     *int           `json:"sentenceCount,omitempty"`
	ReadingTime       *int           `json:"readingTime,omitempty"`
	ReadabilityScore  *int           `json:"readabilityScore,omitempty"`
	ReadabilityLevel  *string        `json:"readabilityLevel,omitempty"`
	AvgSentenceLength *float64       `json:"avgSentenceLength,omitempty"`
	GeneratedTitles   []string       `json:"generatedTitles,omitempty"`
	Outline           []OutlineEntry `json:"tableOfContents,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// SeoPatch names the record fields one upsert wants to overwrite.
// Nil pointers and nil slices are left alone.
type SeoPatch struct {
	MetaDescription   *string
	Keywords          []string
	SocialPreviewText *string
	SuggestedSlug     *string
	WordCount         *int
	SentenceCount     *int
	ReadingTime       *int
	ReadabilityScore  *int
	ReadabilityLevel  *string
	AvgSentenceLength *float64
	GeneratedTitles   []string
	Outline           []OutlineEntry
}

// ReadabilityPatch converts analyzer output into an upsert patch.
func ReadabilityPatch(m ReadabilityMetrics) SeoPatch {
	level := string(m.ReadabilityLevel)
	return SeoPatch{
		WordCount:         &m.WordCount,
		SentenceCount:     &m.SentenceCount,
		ReadingTime:       &m.ReadingTimeMinutes,
		ReadabilityScore:  &m.ReadabilityScore,
		ReadabilityLevel:  &level,
		AvgSentenceLength: &m.AvgSentenceLength,
	}
}

// SeoMetadataPatch converts generated SEO metadata into an upsert patch.
func SeoMetadataPatch(m SeoMetadata) SeoPatch {
	return SeoPatch{
		MetaDescription:   &m.MetaDescription,
		Keywords:          m.Keywords,
		SocialPreviewText: &m.SocialPreviewText,
		SuggestedSlug:     &m.SuggestedSlug,
	}
}
