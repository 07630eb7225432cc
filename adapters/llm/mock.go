package llm

import (
	"context"

	"parmatma/ports"
)

// MockGenerator is a canned TextGenerator for testing
type MockGenerator struct {
	Response string // Set this for testing
	Error    error  // Set this to simulate errors
	Requests []ports.GenerateRequest
}

func (m *MockGenerator) GenerateText(ctx context.Context, req ports.GenerateRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "Stay hydrated, sleep well, and take a short walk every day.", nil
}
