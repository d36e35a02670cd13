// Package decode extracts structured payloads from raw generator output.
// Generators wrap JSON in prose or markdown code fences often enough that
// decoding locates the outermost bracket span instead of parsing the whole
// response. A span that does not parse is a hard failure; there is no
// partial recovery.
package decode

import (
	"encoding/json"
	"fmt"
	"strings"

	"InkSight/internal/domain"
)

// Object finds the first '{' through the last '}' in raw and unmarshals
// that span into v.
func Object(raw string, v any) error {
	span, ok := bracketSpan(raw, '{', '}')
	if !ok {
		return fmt.Errorf("no JSON object in response: %w", domain.ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("parse JSON object: %v: %w", err, domain.ErrMalformedResponse)
	}

	return nil
}

// Array finds the first '[' through the last ']' in raw and unmarshals
// that span into v.
func Array(raw string, v any) error {
	span, ok := bracketSpan(raw, '[', ']')
	if !ok {
		return fmt.Errorf("no JSON array in response: %w", domain.ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("parse JSON array: %v: %w", err, domain.ErrMalformedResponse)
	}

	return nil
}

// Prose trims the response and enforces a minimum viable length; pass 0 to
// accept any non-checked output.
func Prose(raw string, min int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < min {
		return "", fmt.Errorf("response shorter than %d characters: %w", min, domain.ErrEmptyResponse)
	}
	return trimmed, nil
}

func bracketSpan(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
