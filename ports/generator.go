package ports

import "context"

// GenerateRequest is one call to the generative-language API.
type GenerateRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string
}

// TextGenerator produces free text from a prompt. Implementations talk to the
// external generative-language endpoint; tests substitute a mock.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)
}
