package gemini

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse means the reply did not carry candidates[0].content.parts[0].text.
var ErrMalformedResponse = errors.New("unexpected Gemini response")

// APIError is returned for any non-200 reply; Body holds the raw response text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Gemini API error: status %d: %s", e.StatusCode, e.Body)
}

type Sampling struct {
	Temperature float64
	TopP        float64
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
