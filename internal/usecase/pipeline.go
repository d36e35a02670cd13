package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"InkSight/internal/domain"
	"InkSight/internal/outline"
	"InkSight/internal/ports"
	"InkSight/internal/readability"
)

// PipelineDeps wires the driven adapters into the post pipeline.
type PipelineDeps struct {
	Source    ports.PostSource
	SeoRepo   ports.SeoRepository
	Assistant *Assistant
	Logger    *slog.Logger
}

// Pipeline composes the analyzers and the assistant over stored posts and
// persists what they derive. Generation and persistence are sequenced
// explicitly; there is no transactional coupling between the two.
type Pipeline struct {
	source    ports.PostSource
	seoRepo   ports.SeoRepository
	assistant *Assistant
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:    deps.Source,
		seoRepo:   deps.SeoRepo,
		assistant: deps.Assistant,
		logger:    logger,
	}
}

// RefreshPostIntelligence recomputes the deterministic metadata for a post
// (readability metrics and heading outline) and patches them onto its
// intelligence record.
func (p *Pipeline) RefreshPostIntelligence(ctx context.Context, postID string) (domain.ReadabilityMetrics, []domain.OutlineEntry, error) {
	post, err := p.source.GetPost(ctx, postID)
	if err != nil {
		return domain.ReadabilityMetrics{}, nil, fmt.Errorf("load post %s: %w", postID, err)
	}

	metrics, err := readability.Analyze(post.BodyHTML)
	if err != nil {
		return domain.ReadabilityMetrics{}, nil, fmt.Errorf("analyze post %s: %w", postID, err)
	}

	toc := outline.Extract(post.BodyHTML)

	patch := domain.ReadabilityPatch(metrics)
	patch.Outline = toc
	if err := p.seoRepo.Upsert(ctx, postID, patch); err != nil {
		return domain.ReadabilityMetrics{}, nil, fmt.Errorf("persist metrics for post %s: %w", postID, err)
	}

	p.logger.Info("post intelligence refreshed",
		"post", postID,
		"words", metrics.WordCount,
		"headings", len(toc),
	)
	return metrics, toc, nil
}

// OptimizePost generates SEO metadata and title alternatives for a post and
// patches them onto its intelligence record.
func (p *Pipeline) OptimizePost(ctx context.Context, postID string) (domain.SeoMetadata, []string, error) {
	post, err := p.source.GetPost(ctx, postID)
	if err != nil {
		return domain.SeoMetadata{}, nil, fmt.Errorf("load post %s: %w", postID, err)
	}

	meta, err := p.assistant.GenerateSeoMetadata(ctx, post.Title, post.BodyHTML)
	if err != nil {
		return domain.SeoMetadata{}, nil, err
	}

	titles, err := p.assistant.GenerateTitleVariants(ctx, post.Title, post.BodyHTML)
	if err != nil {
		return domain.SeoMetadata{}, nil, err
	}

	patch := domain.SeoMetadataPatch(meta)
	patch.GeneratedTitles = titles
	if err := p.seoRepo.Upsert(ctx, postID, patch); err != nil {
		return domain.SeoMetadata{}, nil, fmt.Errorf("persist seo for post %s: %w", postID, err)
	}

	p.logger.Info("post optimized", "post", postID, "titles", len(titles))
	return meta, titles, nil
}

// PostInsights generates performance insights for a stored post, feeding
// its recorded engagement counts into the prompt when they are positive.
func (p *Pipeline) PostInsights(ctx context.Context, postID string) (domain.ContentInsights, error) {
	post, err := p.source.GetPost(ctx, postID)
	if err != nil {
		return domain.ContentInsights{}, fmt.Errorf("load post %s: %w", postID, err)
	}

	var metrics *domain.EngagementMetrics
	if post.Views > 0 || post.Likes > 0 {
		metrics = &domain.EngagementMetrics{Views: post.Views, Likes: post.Likes}
	}

	return p.assistant.GenerateContentInsights(ctx, post.Title, post.BodyHTML, metrics)
}
