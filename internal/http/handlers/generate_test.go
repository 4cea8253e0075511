package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"horrorgen/internal/catalog"
	"horrorgen/internal/domain"
	"horrorgen/internal/infra"
	"horrorgen/internal/providers/media"
	"horrorgen/internal/providers/story"
)

type stubProducer struct {
	story string
	err   error
	panic bool
}

func (s *stubProducer) ProduceStory(ctx context.Context, prompt string) (string, error) {
	if s.panic {
		panic("ghost in the machine")
	}
	return s.story, s.err
}

type failingEncoder struct {
	media.Encoder
	failKind media.Kind
}

func (f *failingEncoder) Encode(ctx context.Context, kind media.Kind, text string) (string, error) {
	if kind == f.failKind {
		return "", errors.New("encoder exploded")
	}
	return f.Encoder.Encode(ctx, kind, text)
}

func newTestApp(t *testing.T, stories story.Producer, enc media.Encoder) *App {
	t.Helper()
	cat := catalog.Default()
	if stories == nil {
		stories = story.NewCatalogProducer(cat)
	}
	if enc == nil {
		enc = media.NewDataURLEncoder()
	}
	cfg := &infra.Config{AppEnv: "test", PageTitle: "AI Horror Story Video Generator"}
	app, err := NewApp(cfg, zerolog.Nop(), cat, stories, enc, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func postGenerate(app *App, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	app.Generate(rr, req)
	return rr
}

func TestGenerateSuccess(t *testing.T) {
	app := newTestApp(t, nil, nil)

	rr := postGenerate(app, `{"prompt":"a haunted house"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	var resp domain.GenerationResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	known := false
	for _, s := range app.Catalog.Stories() {
		if s == resp.Story {
			known = true
		}
	}
	if !known {
		t.Fatalf("story is not a catalog entry: %.60q", resp.Story)
	}

	for name, ref := range map[string]string{"audioUrl": resp.AudioURL, "videoUrl": resp.VideoURL} {
		decoded, err := app.Media.Decode(ref)
		if err != nil {
			t.Fatalf("%s does not decode: %v", name, err)
		}
		if decoded.Text != resp.Story {
			t.Fatalf("%s decodes to a different text", name)
		}
	}
	if !strings.HasPrefix(resp.AudioURL, "data:audio/mp3;base64,") {
		t.Fatalf("audioUrl prefix mismatch: %.40s", resp.AudioURL)
	}
	if !strings.HasPrefix(resp.VideoURL, "data:video/mp4;base64,") {
		t.Fatalf("videoUrl prefix mismatch: %.40s", resp.VideoURL)
	}

	wantFx := []string{"creaking door", "thunder crash", "distant scream"}
	if !reflect.DeepEqual(resp.SoundEffects, wantFx) {
		t.Fatalf("soundEffects = %v, want %v", resp.SoundEffects, wantFx)
	}
	if got := testutil.ToFloat64(app.Metrics.generations.WithLabelValues(outcomeCompleted)); got != 1 {
		t.Fatalf("completed counter = %v, want 1", got)
	}
}

func TestGenerateSoundEffectsIgnoreStory(t *testing.T) {
	wantFx := []string{"creaking door", "thunder crash", "distant scream"}
	for _, text := range []string{"short", "", "幽霊"} {
		app := newTestApp(t, &stubProducer{story: text}, nil)
		rr := postGenerate(app, `{"prompt":"anything"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		var resp domain.GenerationResponse
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !reflect.DeepEqual(resp.SoundEffects, wantFx) {
			t.Fatalf("soundEffects = %v, want %v", resp.SoundEffects, wantFx)
		}
		if resp.Story != text {
			t.Fatalf("story = %q, want %q", resp.Story, text)
		}
	}
}

func TestGenerateRejectsInvalidPrompt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing prompt", body: `{}`},
		{name: "null prompt", body: `{"prompt":null}`},
		{name: "empty prompt", body: `{"prompt":""}`},
		{name: "number prompt", body: `{"prompt":42}`},
		{name: "object prompt", body: `{"prompt":{"text":"boo"}}`},
		{name: "array body", body: `["a haunted house"]`},
		{name: "malformed json", body: `{"prompt":`},
		{name: "empty body", body: ``},
		{name: "null body", body: `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, nil, nil)
			rr := postGenerate(app, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body=%s", rr.Code, rr.Body.String())
			}
			var resp domain.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != invalidPromptMessage {
				t.Fatalf("error = %q, want %q", resp.Error, invalidPromptMessage)
			}
			if got := testutil.ToFloat64(app.Metrics.generations.WithLabelValues(outcomeRejected)); got != 1 {
				t.Fatalf("rejected counter = %v, want 1", got)
			}
		})
	}
}

func TestGenerateAcceptsWhitespacePrompt(t *testing.T) {
	rr := postGenerate(newTestApp(t, nil, nil), `{"prompt":"   "}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestGenerateRejectsOversizedBody(t *testing.T) {
	body := `{"prompt":"` + strings.Repeat("a", maxGenerateBodyBytes) + `"}`
	rr := postGenerate(newTestApp(t, nil, nil), body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name     string
		producer story.Producer
		failKind media.Kind
	}{
		{name: "story producer error", producer: &stubProducer{err: errors.New("backend down")}},
		{name: "story producer panic", producer: &stubProducer{panic: true}},
		{name: "audio encoder error", failKind: media.KindAudio},
		{name: "video encoder error", failKind: media.KindVideo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var enc media.Encoder
			if tc.failKind != "" {
				enc = &failingEncoder{Encoder: media.NewDataURLEncoder(), failKind: tc.failKind}
			}
			app := newTestApp(t, tc.producer, enc)

			rr := postGenerate(app, `{"prompt":"a haunted house"}`)
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500; body=%s", rr.Code, rr.Body.String())
			}
			var body map[string]any
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(body) != 1 || body["error"] != generationFailedMessage {
				t.Fatalf("body = %v, want only the error field", body)
			}
			if got := testutil.ToFloat64(app.Metrics.generations.WithLabelValues(outcomeFailed)); got != 1 {
				t.Fatalf("failed counter = %v, want 1", got)
			}
		})
	}
}

func TestGenerateWrapsFailureCause(t *testing.T) {
	app := newTestApp(t, &stubProducer{err: errors.New("backend down")}, nil)
	_, err := app.generate(context.Background(), "x")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestDecodePromptWrapsInvalidPrompt(t *testing.T) {
	for _, body := range []string{`{}`, `{"prompt":7}`, `{"prompt":""}`, `nope`} {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
		_, err := decodePrompt(httptest.NewRecorder(), req)
		if !errors.Is(err, domain.ErrInvalidPrompt) {
			t.Fatalf("body %s: err = %v, want ErrInvalidPrompt", body, err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"墓地の幽霊","extra":true}`))
	prompt, err := decodePrompt(httptest.NewRecorder(), req)
	if err != nil || prompt != "墓地の幽霊" {
		t.Fatalf("decodePrompt = %q, %v", prompt, err)
	}
}
