package domain

import "errors"

// Failure taxonomy shared by the analyzers, prompt builders, decoder and
// orchestrator. Callers match with errors.Is; the orchestrator never lets
// anything outside this set escape.
var (
	// ErrMissingInput marks a required field the caller left empty.
	// Raised before any generator call is attempted.
	ErrMissingInput = errors.New("required input is missing")

	// ErrInvalidInput marks analyzer input with no analyzable text.
	ErrInvalidInput = errors.New("input has no analyzable text")

	// ErrTooShort marks generated prose below the minimum viable length.
	ErrTooShort = errors.New("generated content is too short")

	// ErrEmptyResponse marks a generator response with no usable text.
	ErrEmptyResponse = errors.New("generator returned an empty response")

	// ErrMalformedResponse marks a response with no decodable payload.
	ErrMalformedResponse = errors.New("generator response could not be decoded")

	// ErrGeneratorUnavailable marks quota exhaustion or misconfiguration
	// of the text-generation service; retrying immediately will not help.
	ErrGeneratorUnavailable = errors.New("generation service is unavailable")

	// ErrGeneratorFailed marks any other generation failure.
	ErrGeneratorFailed = errors.New("generation failed")
)

// UserMessage maps a taxonomy error to the message shown to end users.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return "Required information is missing. Fill in the field and retry."
	case errors.Is(err, ErrInvalidInput):
		return "The content has no readable text to analyze."
	case errors.Is(err, ErrGeneratorUnavailable):
		return "AI service is temporarily unavailable. Please try again later."
	case errors.Is(err, ErrTooShort), errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrMalformedResponse):
		return "The AI did not return a usable result. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
