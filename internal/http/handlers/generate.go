package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"horrorgen/internal/catalog"
	"horrorgen/internal/domain"
	"horrorgen/internal/middleware"
	"horrorgen/internal/providers/media"
)

const (
	invalidPromptMessage    = "Invalid prompt provided"
	generationFailedMessage = "Failed to generate horror video"

	maxGenerateBodyBytes = 1 << 20
)

type generateRequest struct {
	Prompt json.RawMessage `json:"prompt"`
}

// Generate handles POST /api/generate. Each request ends in exactly one of
// three outcomes: rejected (400), failed (500) or completed (200).
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rid := middleware.RequestIDFromContext(r.Context())

	prompt, err := decodePrompt(w, r)
	if err != nil {
		a.Metrics.observe(outcomeRejected, start)
		a.Logger.Debug().Err(err).Str("request_id", rid).Msg("generate: rejected")
		a.error(w, http.StatusBadRequest, invalidPromptMessage)
		return
	}

	resp, err := a.generate(r.Context(), prompt)
	if err != nil {
		a.Metrics.observe(outcomeFailed, start)
		a.Logger.Error().Err(err).Str("request_id", rid).Msg("generate: failed")
		a.error(w, http.StatusInternalServerError, generationFailedMessage)
		return
	}

	a.Metrics.observe(outcomeCompleted, start)
	a.Logger.Debug().Str("request_id", rid).Int("story_bytes", len(resp.Story)).Msg("generate: completed")
	a.json(w, http.StatusOK, resp)
}

// generate runs story selection then audio and video encoding. A panic in any
// step is converted into an error so the caller still answers once.
func (a *App) generate(ctx context.Context, prompt string) (resp *domain.GenerationResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = fmt.Errorf("%w: panic: %v", domain.ErrGenerationFailed, rec)
		}
	}()

	story, err := a.Stories.ProduceStory(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: produce story: %w", domain.ErrGenerationFailed, err)
	}
	audioURL, err := media.EncodeAudio(ctx, a.Media, story)
	if err != nil {
		return nil, fmt.Errorf("%w: encode audio: %w", domain.ErrGenerationFailed, err)
	}
	videoURL, err := media.EncodeVideo(ctx, a.Media, story)
	if err != nil {
		return nil, fmt.Errorf("%w: encode video: %w", domain.ErrGenerationFailed, err)
	}

	return &domain.GenerationResponse{
		Story:        story,
		AudioURL:     audioURL,
		VideoURL:     videoURL,
		SoundEffects: a.Catalog.SoundEffects(catalog.ResponseSoundEffects),
	}, nil
}

// decodePrompt accepts only a JSON object whose prompt field is a non-empty
// string.
func decodePrompt(w http.ResponseWriter, r *http.Request) (string, error) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGenerateBodyBytes)).Decode(&req); err != nil {
		return "", fmt.Errorf("%w: decode body: %v", domain.ErrInvalidPrompt, err)
	}
	raw := bytes.TrimSpace(req.Prompt)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("%w: prompt is required", domain.ErrInvalidPrompt)
	}
	var prompt string
	if err := json.Unmarshal(raw, &prompt); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return "", fmt.Errorf("%w: prompt must be a string, got %s", domain.ErrInvalidPrompt, typeErr.Value)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPrompt, err)
	}
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is empty", domain.ErrInvalidPrompt)
	}
	return prompt, nil
}
