package insight

import "context"

// MockProvider stands in when no API key is configured. Responses are fixed
// so the UI flows stay demonstrable offline.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	if wantJSON {
		return `{"decision_style":"Thoughtful","budget_sensitivity":"Medium","style_preference":"Classic","suggested_approach":"Offer a fabric consultation before quoting."}`, nil
	}
	return "Mock insight: configure GEMINI_API_KEY for live analysis.", nil
}
