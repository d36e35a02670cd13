package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"InkSight/internal/decode"
	"InkSight/internal/domain"
	"InkSight/internal/ports"
	"InkSight/internal/prompt"
)

// Drafts shorter than this are treated as failed generations.
const minDraftLength = 100

// Assistant runs the five generation operations: build the prompt, make the
// single generator call, decode the response, check its shape. Each
// operation either returns its full payload or fails atomically with an
// error from the domain taxonomy.
type Assistant struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewAssistant wires the injected generation capability.
func NewAssistant(generator ports.TextGenerator, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{generator: generator, logger: logger}
}

// GenerateDraft produces HTML body content for a new post. Required inputs
// are checked before any generator call is made.
func (a *Assistant) GenerateDraft(ctx context.Context, title, category string, tags []string) (string, error) {
	p, err := prompt.Draft(title, category, tags)
	if err != nil {
		return "", err
	}

	raw, err := invoke(ctx, a.generator, p)
	if err != nil {
		return "", fmt.Errorf("generate draft: %w", err)
	}

	content, err := decode.Prose(raw, minDraftLength)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResponse) {
			return "", fmt.Errorf("generated draft below %d characters: %w", minDraftLength, domain.ErrTooShort)
		}
		return "", fmt.Errorf("generate draft: %w", err)
	}

	a.logger.Debug("draft generated", "title", title, "length", len(content))
	return content, nil
}

// ImproveDraft revises existing content. Unknown modes silently use the
// enhance variant.
func (a *Assistant) ImproveDraft(ctx context.Context, content, mode string) (string, error) {
	p, err := prompt.Improve(content, mode)
	if err != nil {
		return "", err
	}

	raw, err := invoke(ctx, a.generator, p)
	if err != nil {
		return "", fmt.Errorf("improve draft: %w", err)
	}

	improved, err := decode.Prose(raw, 0)
	if err != nil {
		return "", fmt.Errorf("improve draft: %w", err)
	}

	a.logger.Debug("draft improved", "mode", mode, "length", len(improved))
	return improved, nil
}

// GenerateSeoMetadata asks the generator for search/social metadata. The
// decoded object's internal field lengths are advisory and not enforced.
func (a *Assistant) GenerateSeoMetadata(ctx context.Context, title, content string) (domain.SeoMetadata, error) {
	p, err := prompt.Seo(title, content)
	if err != nil {
		return domain.SeoMetadata{}, err
	}

	raw, err := invoke(ctx, a.generator, p)
	if err != nil {
		return domain.SeoMetadata{}, fmt.Errorf("generate seo metadata: %w", err)
	}

	var meta domain.SeoMetadata
	if err := decode.Object(raw, &meta); err != nil {
		return domain.SeoMetadata{}, fmt.Errorf("generate seo metadata: %w", err)
	}

	a.logger.Debug("seo metadata generated", "title", title, "keywords", len(meta.Keywords))
	return meta, nil
}

// GenerateTitleVariants asks for alternative titles. Whatever length the
// generator returns is passed through; callers display what they get.
func (a *Assistant) GenerateTitleVariants(ctx context.Context, title, content string) ([]string, error) {
	p, err := prompt.TitleVariants(title, content)
	if err != nil {
		return nil, err
	}

	raw, err := invoke(ctx, a.generator, p)
	if err != nil {
		return nil, fmt.Errorf("generate title variants: %w", err)
	}

	var titles []string
	if err := decode.Array(raw, &titles); err != nil {
		return nil, fmt.Errorf("generate title variants: %w", err)
	}

	a.logger.Debug("title variants generated", "title", title, "count", len(titles))
	return titles, nil
}

// GenerateContentInsights asks for qualitative performance feedback.
// Engagement metrics are optional context.
func (a *Assistant) GenerateContentInsights(ctx context.Context, title, content string, metrics *domain.EngagementMetrics) (domain.ContentInsights, error) {
	p, err := prompt.Insights(title, content, metrics)
	if err != nil {
		return domain.ContentInsights{}, err
	}

	raw, err := invoke(ctx, a.generator, p)
	if err != nil {
		return domain.ContentInsights{}, fmt.Errorf("generate insights: %w", err)
	}

	var insights domain.ContentInsights
	if err := decode.Object(raw, &insights); err != nil {
		return domain.ContentInsights{}, fmt.Errorf("generate insights: %w", err)
	}

	a.logger.Debug("insights generated", "title", title, "score", insights.OverallScore)
	return insights, nil
}
