package domain

// GenerationRequest is the payload accepted by the generate endpoint.
type GenerationRequest struct {
	Prompt string `json:"prompt"`
}

// GenerationResponse carries every artifact produced for a prompt. The fields
// are filled together; a failed generation never yields a partial value.
type GenerationResponse struct {
	Story        string   `json:"story"`
	AudioURL     string   `json:"audioUrl"`
	VideoURL     string   `json:"videoUrl"`
	SoundEffects []string `json:"soundEffects"`
}

// ErrorResponse is the body written for rejected and failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
