package llm

import (
	"context"
)

type MockClient struct {
	Response string
	Err      error

	// Responses, when set, are returned one per call.
	Responses []string
	calls     int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		r := m.Responses[m.calls%len(m.Responses)]
		m.calls++
		return r, nil
	}
	return m.Response, nil
}
