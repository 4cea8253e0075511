package domain

import "errors"

var (
	ErrInvalidPrompt      = errors.New("invalid prompt")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrMalformedReference = errors.New("malformed media reference")
	ErrEmptyCatalog       = errors.New("empty catalog")
)
