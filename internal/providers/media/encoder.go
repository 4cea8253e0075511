package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"horrorgen/internal/domain"
)

// Kind is the MIME type advertised by a media reference.
type Kind string

const (
	KindAudio Kind = "audio/mp3"
	KindVideo Kind = "video/mp4"
)

const (
	dataScheme   = "data:"
	base64Marker = ";base64"
)

// Reference is a decoded media reference.
type Reference struct {
	Kind Kind
	Text string
}

// Encoder turns narration text into a self-contained media reference and
// back. The stub implementation embeds the text itself; a real synthesizer
// can replace it without changing the response shape.
type Encoder interface {
	Encode(ctx context.Context, kind Kind, text string) (string, error)
	Decode(ref string) (*Reference, error)
}

// DataURLEncoder stores the text as base64 inside a data URL tagged with the
// media kind, e.g. "data:audio/mp3;base64,SGVsbG8=".
type DataURLEncoder struct{}

func NewDataURLEncoder() *DataURLEncoder {
	return &DataURLEncoder{}
}

func (e *DataURLEncoder) Encode(ctx context.Context, kind Kind, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if kind == "" {
		return "", fmt.Errorf("media: kind is required")
	}
	return dataScheme + string(kind) + base64Marker + "," + base64.StdEncoding.EncodeToString([]byte(text)), nil
}

func (e *DataURLEncoder) Decode(ref string) (*Reference, error) {
	if !strings.HasPrefix(ref, dataScheme) {
		return nil, fmt.Errorf("%w: missing %q scheme", domain.ErrMalformedReference, dataScheme)
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(ref, dataScheme), ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload separator", domain.ErrMalformedReference)
	}
	mime, found := strings.CutSuffix(header, base64Marker)
	if !found || mime == "" {
		return nil, fmt.Errorf("%w: expected <mime>%s header, got %q", domain.ErrMalformedReference, base64Marker, header)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedReference, err)
	}
	return &Reference{Kind: Kind(mime), Text: string(raw)}, nil
}

// EncodeAudio wraps text as an audio reference.
func EncodeAudio(ctx context.Context, enc Encoder, text string) (string, error) {
	return enc.Encode(ctx, KindAudio, text)
}

// EncodeVideo wraps text as a video reference.
func EncodeVideo(ctx context.Context, enc Encoder, text string) (string, error) {
	return enc.Encode(ctx, KindVideo, text)
}

var _ Encoder = (*DataURLEncoder)(nil)
