package types

// VoiceRequest is the body of POST /api/voice-intent. Message is a pointer
// so a missing field can be told apart from an empty one; Context carries
// prior turns from the frontend and is accepted but unused.
type VoiceRequest struct {
	Message *string  `json:"message"`
	Context []string `json:"context,omitempty"`
}

type VoiceResponse struct {
	Reply       string   `json:"reply"`
	Intent      string   `json:"intent"`
	Suggestions []string `json:"suggestions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
