package usecase

import (
	"context"
	"fmt"
	"strings"

	"InkSight/internal/domain"
	"InkSight/internal/ports"
)

// invoke performs the single outbound generation call. No retry, no internal
// timeout; callers bound the call through ctx. Failures are classified by
// the collaborator's message: quota exhaustion and missing credentials mean
// the service is unavailable, everything else is a plain generation failure.
func invoke(ctx context.Context, gen ports.TextGenerator, promptText string) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("no text generator configured: %w", domain.ErrGeneratorUnavailable)
	}

	raw, err := gen.Generate(ctx, promptText)
	if err != nil {
		return "", classifyGeneratorErr(err)
	}

	return raw, nil
}

func classifyGeneratorErr(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key"):
		return fmt.Errorf("generator misconfigured: %v: %w", err, domain.ErrGeneratorUnavailable)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "limit"):
		return fmt.Errorf("generator rate-limited: %v: %w", err, domain.ErrGeneratorUnavailable)
	default:
		return fmt.Errorf("%v: %w", err, domain.ErrGeneratorFailed)
	}
}
