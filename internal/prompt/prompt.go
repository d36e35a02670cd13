// Package prompt composes the natural-language instructions sent to the
// text generator. Builders validate their required inputs and embed caller
// data verbatim; long content is cut to a fixed-size excerpt first.
package prompt

import (
	"fmt"
	"strings"

	"InkSight/internal/domain"
)

// Improvement modes accepted by Improve. Anything else falls back to
// ModeEnhance.
const (
	ModeExpand   = "expand"
	ModeSimplify = "simplify"
	ModeEnhance  = "enhance"
)

// Excerpt limits per operation; prompts stay bounded no matter how long the
// post body grows.
const (
	seoExcerptLimit      = 3000
	titlesExcerptLimit   = 1000
	insightsExcerptLimit = 2000
)

const draftTemplate = `Write a comprehensive blog post with the title: "%s"

%s%sRequirements:
- Write engaging, informative content that matches the title
- Use proper HTML formatting with headers (h2, h3), paragraphs, lists, and emphasis
- Include 3-5 main sections with clear subheadings
- Write in a conversational yet professional tone
- Make it approximately 800-1200 words
- Include practical insights, examples, or actionable advice where relevant
- Use <h2> for main sections and <h3> for subsections
- Use <p> tags for paragraphs
- Use <ul> and <li> for bullet points when appropriate
- Use <strong> and <em> for emphasis
- Ensure the content is original and valuable to readers

Do not include the title in the content as it will be added separately.
Start directly with the introduction paragraph.`

const expandTemplate = `Take this blog content and expand it with more details, examples, and insights:

%s

Requirements:
- Keep the existing structure and main points
- Add more depth and detail to each section
- Include practical examples and insights
- Maintain the original tone and style
- Return the improved content in the same HTML format`

const simplifyTemplate = `Take this blog content and make it more concise and easier to read:

%s

Requirements:
- Keep all main points but make them clearer
- Remove unnecessary complexity
- Use simpler language where possible
- Maintain the HTML formatting
- Keep the essential information`

const enhanceTemplate = `Improve this blog content by making it more engaging and well-structured:

%s

Requirements:
- Improve the flow and readability
- Add engaging transitions between sections
- Enhance with better examples or explanations
- Maintain the original HTML structure
- Keep the same length approximately
- Make it more compelling to read`

const seoTemplate = `Analyze this blog post and generate SEO metadata:

Title: "%s"
Content: %s

Generate the following in JSON format (return ONLY valid JSON, no markdown):
{
  "metaDescription": "A compelling 150-160 character meta description for search engines",
  "keywords": ["array", "of", "5-8", "relevant", "seo", "keywords"],
  "socialPreviewText": "An engaging 200-250 character preview for social media sharing",
  "suggestedSlug": "url-friendly-slug-for-the-post"
}

Requirements:
- Meta description should be compelling and include primary keyword
- Keywords should be relevant and searchable terms
- Social preview should be engaging and shareable
- All text should be natural and not keyword-stuffed`

const titlesTemplate = `Generate 5 alternative catchy titles for this blog post:

Current Title: "%s"
%sRequirements:
- Each title should be unique and engaging
- Mix different styles: question-based, how-to, numbered lists, intriguing statements
- Keep titles under 60 characters for SEO
- Make them click-worthy but not clickbait
- Return ONLY a JSON array of strings, no markdown

Example format: ["Title 1", "Title 2", "Title 3", "Title 4", "Title 5"]`

const insightsTemplate = `Analyze this blog post and provide performance insights:

Title: "%s"
Content: %s
%sProvide actionable insights in JSON format (return ONLY valid JSON, no markdown):
{
  "overallScore": 85,
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "improvements": ["improvement suggestion 1", "improvement suggestion 2"],
  "engagementTips": ["tip 1", "tip 2"],
  "seoSuggestions": ["seo tip 1", "seo tip 2"],
  "viralPotential": "Medium",
  "bestPublishTime": "Tuesday 10 AM EST"
}

Requirements:
- overallScore should be 0-100 based on content quality
- Provide 2-4 items for each array
- Be specific and actionable
- viralPotential should be "Low", "Medium", or "High"`

// Draft builds the content-generation prompt for a new post.
func Draft(title, category string, tags []string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("draft prompt: title: %w", domain.ErrMissingInput)
	}

	categoryLine := ""
	if category != "" {
		categoryLine = fmt.Sprintf("Category: %s\n", category)
	}

	tagsLine := ""
	if len(tags) > 0 {
		tagsLine = fmt.Sprintf("Tags: %s\n", strings.Join(tags, ", "))
	}

	return fmt.Sprintf(draftTemplate, title, categoryLine, tagsLine), nil
}

// Improve builds the revision prompt for existing content. Unrecognized
// modes fall back to the enhance variant rather than failing.
func Improve(content, mode string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("improve prompt: content: %w", domain.ErrMissingInput)
	}

	switch mode {
	case ModeExpand:
		return fmt.Sprintf(expandTemplate, content), nil
	case ModeSimplify:
		return fmt.Sprintf(simplifyTemplate, content), nil
	default:
		return fmt.Sprintf(enhanceTemplate, content), nil
	}
}

// Seo builds the SEO-metadata prompt.
func Seo(title, content string) (string, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("seo prompt: title and content: %w", domain.ErrMissingInput)
	}

	return fmt.Sprintf(seoTemplate, title, excerpt(content, seoExcerptLimit)), nil
}

// TitleVariants builds the alternative-titles prompt; content is optional
// context.
func TitleVariants(title, content string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("titles prompt: title: %w", domain.ErrMissingInput)
	}

	preview := ""
	if content != "" {
		preview = fmt.Sprintf("Content Preview: %s\n", excerpt(content, titlesExcerptLimit))
	}

	return fmt.Sprintf(titlesTemplate, title, preview), nil
}

// Insights builds the performance-insights prompt. Positive engagement
// counts are interpolated when provided.
func Insights(title, content string, metrics *domain.EngagementMetrics) (string, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("insights prompt: title and content: %w", domain.ErrMissingInput)
	}

	var metricsBlock strings.Builder
	if metrics != nil {
		if metrics.Views > 0 {
			fmt.Fprintf(&metricsBlock, "Current Views: %d\n", metrics.Views)
		}
		if metrics.Likes > 0 {
			fmt.Fprintf(&metricsBlock, "Current Likes: %d\n", metrics.Likes)
		}
	}

	return fmt.Sprintf(insightsTemplate, title, excerpt(content, insightsExcerptLimit), metricsBlock.String()), nil
}

// excerpt is a silent deterministic prefix cut measured in runes.
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
