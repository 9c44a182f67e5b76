package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

// stubProvider records the last prompt and replays a canned reply.
type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
	wantJSON   bool
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	p.lastPrompt = prompt
	p.wantJSON = wantJSON
	return p.reply, p.err
}

const validAnalysis = `{
	"decision_style": "Quick",
	"budget_sensitivity": "Low",
	"style_preference": "Classic",
	"suggested_approach": "Lead with the premium fabrics."
}`

func testInquiry() models.Inquiry {
	return models.Inquiry{
		ID:         "i1",
		ClientName: "Thomas Shelby",
		Source:     models.SourceWalkIn,
		Message:    "Looking for a grey tweed 3-piece suit. Urgent.",
	}
}

func TestAnalyzeInquiry(t *testing.T) {
	stub := &stubProvider{reply: validAnalysis}
	g := NewGateway(stub, time.Second)

	result := g.AnalyzeInquiry(context.Background(), testInquiry(), nil)

	require.True(t, result.Available)
	assert.Equal(t, models.InsightInquiryAnalysis, result.Kind)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, "Quick", result.Analysis.DecisionStyle)
	assert.Equal(t, "Lead with the premium fabrics.", result.Analysis.SuggestedApproach)

	assert.True(t, stub.wantJSON)
	assert.Contains(t, stub.lastPrompt, "Thomas Shelby")
	assert.Contains(t, stub.lastPrompt, "New client.")
}

func TestAnalyzeInquiryWithHistory(t *testing.T) {
	stub := &stubProvider{reply: validAnalysis}
	g := NewGateway(stub, time.Second)

	history := &models.Client{TotalOrders: 3, Notes: "Prefers double vents."}
	result := g.AnalyzeInquiry(context.Background(), testInquiry(), history)

	require.True(t, result.Available)
	assert.Contains(t, stub.lastPrompt, "Returning client with 3 past orders")
	assert.Contains(t, stub.lastPrompt, "Prefers double vents.")
}

func TestAnalyzeInquiryStripsMarkdownFence(t *testing.T) {
	stub := &stubProvider{reply: "```json\n" + validAnalysis + "\n```"}
	g := NewGateway(stub, time.Second)

	result := g.AnalyzeInquiry(context.Background(), testInquiry(), nil)
	require.True(t, result.Available)
	assert.Equal(t, "Quick", result.Analysis.DecisionStyle)
}

func TestAnalyzeInquiryUnavailableOnBadOutput(t *testing.T) {
	cases := []struct {
		name string
		stub *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("boom")}},
		{"not json", &stubProvider{reply: "I think this client is decisive."}},
		{"missing keys", &stubProvider{reply: `{"decision_style": "Quick"}`}},
		{"empty object", &stubProvider{reply: `{}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGateway(tc.stub, time.Second)
			result := g.AnalyzeInquiry(context.Background(), testInquiry(), nil)

			assert.False(t, result.Available)
			assert.Nil(t, result.Analysis)
		})
	}
}

func TestSuggestJobAdjustments(t *testing.T) {
	stub := &stubProvider{reply: "- Use a fine needle for the silk\n- Baste the lapels first"}
	g := NewGateway(stub, time.Second)

	order := models.Order{
		ID:          "o3",
		GarmentType: "Evening Gown",
		Fabric:      "Silk Satin",
		Measurements: map[string]float64{
			"bust": 36,
		},
		Notes: "Intricate lace details.",
	}
	result := g.SuggestJobAdjustments(context.Background(), order)

	require.True(t, result.Available)
	assert.Equal(t, models.InsightJobAdjustment, result.Kind)
	assert.Contains(t, result.Text, "fine needle")

	assert.False(t, stub.wantJSON, "job suggestions are free text")
	assert.Contains(t, stub.lastPrompt, "Evening Gown")
	assert.Contains(t, stub.lastPrompt, "Silk Satin")
}

func TestBusinessReport(t *testing.T) {
	stub := &stubProvider{reply: "Focus on the fitting backlog this week."}
	g := NewGateway(stub, time.Second)

	counters := models.DashboardCounters{ActiveOrders: 4, ReadyOrders: 1, NewInquiries: 2}
	result := g.BusinessReport(context.Background(), counters, "Grey Tweed")

	require.True(t, result.Available)
	assert.Equal(t, models.InsightBusinessReport, result.Kind)
	assert.Contains(t, stub.lastPrompt, "Active Orders: 4")
	assert.Contains(t, stub.lastPrompt, "Grey Tweed")
}

func TestBusinessReportDefaultsTopFabric(t *testing.T) {
	stub := &stubProvider{reply: "Summary."}
	g := NewGateway(stub, time.Second)

	g.BusinessReport(context.Background(), models.DashboardCounters{}, "")
	assert.Contains(t, stub.lastPrompt, "Top Fabric: Wool")
}

func TestBusinessReportUnavailableOnError(t *testing.T) {
	g := NewGateway(&stubProvider{err: errors.New("down")}, time.Second)

	result := g.BusinessReport(context.Background(), models.DashboardCounters{}, "")
	assert.False(t, result.Available)
	assert.Empty(t, result.Text)
}

func TestDecodeAnalysis(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"bare json", validAnalysis, true},
		{"json fence", "```json\n" + validAnalysis + "\n```", true},
		{"plain fence", "```\n" + validAnalysis + "\n```", true},
		{"surrounding whitespace", "\n\n  " + validAnalysis + "  \n", true},
		{"prose", "Definitely a Quick decision maker.", false},
		{"partial keys", `{"decision_style":"Quick","budget_sensitivity":"Low"}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analysis, err := decodeAnalysis(tc.raw)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, "Quick", analysis.DecisionStyle)
			} else {
				assert.ErrorIs(t, err, ErrUnavailable)
			}
		})
	}
}

func TestGenerateAppliesTimeout(t *testing.T) {
	deadlineSeen := false
	g := NewGateway(providerFunc(func(ctx context.Context, prompt string, wantJSON bool) (string, error) {
		_, deadlineSeen = ctx.Deadline()
		return "ok", nil
	}), 50*time.Millisecond)

	g.SuggestJobAdjustments(context.Background(), models.Order{ID: "o1"})
	assert.True(t, deadlineSeen, "provider must receive a bounded context")
}

type providerFunc func(ctx context.Context, prompt string, wantJSON bool) (string, error)

func (f providerFunc) Generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	return f(ctx, prompt, wantJSON)
}

func TestMockProviderSatisfiesAnalysisShape(t *testing.T) {
	raw, err := NewMockProvider().Generate(context.Background(), "ignored", true)
	require.NoError(t, err)

	analysis, err := decodeAnalysis(raw)
	require.NoError(t, err)
	assert.False(t, strings.EqualFold(analysis.SuggestedApproach, ""))
}
