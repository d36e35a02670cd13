package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"InkSight/internal/domain"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func longDraft() string {
	return strings.Repeat("<p>Meaningful paragraph about the topic.</p>", 5)
}

func TestGenerateDraft(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: "\n" + longDraft() + "\n"}
	assistant := NewAssistant(gen, nil)

	content, err := assistant.GenerateDraft(context.Background(), "Why Go Wins", "engineering", []string{"go"})
	if err != nil {
		t.Fatalf("GenerateDraft error: %v", err)
	}
	if content != longDraft() {
		t.Fatalf("response not trimmed/propagated: %q", content)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], `"Why Go Wins"`) {
		t.Fatalf("unexpected prompts: %+v", gen.prompts)
	}
}

func TestGenerateDraftMissingTitleSkipsGenerator(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: longDraft()}
	assistant := NewAssistant(gen, nil)

	_, err := assistant.GenerateDraft(context.Background(), "  ", "", nil)
	if !errors.Is(err, domain.ErrMissingInput) {
		t.Fatalf("want ErrMissingInput, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("generator must not be called, got %d calls", len(gen.prompts))
	}
}

func TestGenerateDraftTooShort(t *testing.T) {
	t.Parallel()

	assistant := NewAssistant(&fakeGenerator{response: "<p>stub</p>"}, nil)

	_, err := assistant.GenerateDraft(context.Background(), "Title", "", nil)
	if !errors.Is(err, domain.ErrTooShort) {
		t.Fatalf("want ErrTooShort, got %v", err)
	}
}

func TestImproveDraftUnknownModeFallsBack(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: "<p>better</p>"}
	assistant := NewAssistant(gen, nil)

	improved, err := assistant.ImproveDraft(context.Background(), "<p>original</p>", "rewrite-everything")
	if err != nil {
		t.Fatalf("ImproveDraft error: %v", err)
	}
	if improved != "<p>better</p>" {
		t.Fatalf("unexpected result: %q", improved)
	}
	if !strings.Contains(gen.prompts[0], "more engaging and well-structured") {
		t.Fatalf("unknown mode should use the enhance prompt:\n%s", gen.prompts[0])
	}
}

func TestImproveDraftMissingContent(t *testing.T) {
	t.Parallel()

	assistant := NewAssistant(&fakeGenerator{}, nil)
	if _, err := assistant.ImproveDraft(context.Background(), "", "expand"); !errors.Is(err, domain.ErrMissingInput) {
		t.Fatalf("want ErrMissingInput, got %v", err)
	}
}

func TestGenerateSeoMetadata(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: "Sure thing!\n```json\n" +
		`{"metaDescription":"desc","keywords":["go","blogging"],"socialPreviewText":"preview","suggestedSlug":"why-go-wins"}` +
		"\n```"}
	assistant := NewAssistant(gen, nil)

	meta, err := assistant.GenerateSeoMetadata(context.Background(), "Why Go Wins", "<p>body</p>")
	if err != nil {
		t.Fatalf("GenerateSeoMetadata error: %v", err)
	}
	if meta.SuggestedSlug != "why-go-wins" || len(meta.Keywords) != 2 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestGenerateSeoMetadataMalformed(t *testing.T) {
	t.Parallel()

	assistant := NewAssistant(&fakeGenerator{response: "I could not produce JSON, sorry."}, nil)

	_, err := assistant.GenerateSeoMetadata(context.Background(), "T", "body")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("want ErrMalformedResponse, got %v", err)
	}
}

func TestGenerateTitleVariants(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: `["One","Two","Three","Four","Five"]`}
	assistant := NewAssistant(gen, nil)

	titles, err := assistant.GenerateTitleVariants(context.Background(), "Original", "")
	if err != nil {
		t.Fatalf("GenerateTitleVariants error: %v", err)
	}
	if len(titles) != 5 || titles[4] != "Five" {
		t.Fatalf("unexpected titles: %+v", titles)
	}
}

func TestGenerateContentInsights(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: `{"overallScore":85,"strengths":["clear"],"improvements":["longer intro"],` +
		`"engagementTips":["ask questions"],"seoSuggestions":["add keywords"],"viralPotential":"High","bestPublishTime":"Tuesday 10 AM EST"}`}
	assistant := NewAssistant(gen, nil)

	insights, err := assistant.GenerateContentInsights(context.Background(), "T", "body",
		&domain.EngagementMetrics{Views: 250, Likes: 12})
	if err != nil {
		t.Fatalf("GenerateContentInsights error: %v", err)
	}
	if insights.OverallScore != 85 || insights.ViralPotential != domain.ViralHigh {
		t.Fatalf("unexpected insights: %+v", insights)
	}
	if !strings.Contains(gen.prompts[0], "Current Views: 250") || !strings.Contains(gen.prompts[0], "Current Likes: 12") {
		t.Fatalf("metrics not interpolated:\n%s", gen.prompts[0])
	}
}

func TestGeneratorErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"quota exhausted", errors.New("429: quota exceeded for model"), domain.ErrGeneratorUnavailable},
		{"rate limit", errors.New("request rate limit reached"), domain.ErrGeneratorUnavailable},
		{"bad credentials", errors.New("API key not valid"), domain.ErrGeneratorUnavailable},
		{"anything else", errors.New("connection reset by peer"), domain.ErrGeneratorFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assistant := NewAssistant(&fakeGenerator{err: tt.err}, nil)
			_, err := assistant.ImproveDraft(context.Background(), "<p>x</p>", "enhance")
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNilGeneratorIsUnavailable(t *testing.T) {
	t.Parallel()

	assistant := NewAssistant(nil, nil)
	_, err := assistant.GenerateTitleVariants(context.Background(), "T", "")
	if !errors.Is(err, domain.ErrGeneratorUnavailable) {
		t.Fatalf("want ErrGeneratorUnavailable, got %v", err)
	}
}
