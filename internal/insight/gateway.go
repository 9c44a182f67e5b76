package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
)

// Gateway turns domain snapshots into prompts and model output into typed
// results. It holds no reference to the store; callers pass copies in.
type Gateway struct {
	provider Provider
	timeout  time.Duration
}

func NewGateway(provider Provider, timeout time.Duration) *Gateway {
	return &Gateway{provider: provider, timeout: timeout}
}

func (g *Gateway) generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.provider.Generate(ctx, prompt, wantJSON)
}

// AnalyzeInquiry asks the model for a structured read on an inquiry. history
// may be nil for unknown clients. Results are cached per inquiry.
func (g *Gateway) AnalyzeInquiry(ctx context.Context, inquiry models.Inquiry, history *models.Client) models.InsightResult {
	result := models.InsightResult{Kind: models.InsightInquiryAnalysis}

	if raw, ok := cache.GetInsight(ctx, string(result.Kind), inquiry.ID); ok {
		if analysis, err := decodeAnalysis(raw); err == nil {
			result.Available = true
			result.Analysis = analysis
			result.Cached = true
			return result
		}
	}

	historyLine := "New client."
	if history != nil {
		historyLine = fmt.Sprintf("Returning client with %d past orders. Notes: %s", history.TotalOrders, history.Notes)
	}

	prompt := fmt.Sprintf(`Act as an expert tailor and sales psychologist. Analyze this inquiry and client history.

Client: %s
Message: %q
Source: %s
History: %s

Provide a JSON response with the following keys:
- decision_style (Quick / Thoughtful / Indecisive)
- budget_sensitivity (High / Medium / Low)
- style_preference (Classic / Trendy / Experimental)
- suggested_approach (A 1-sentence sales tip)

Return ONLY valid JSON.`, inquiry.ClientName, inquiry.Message, inquiry.Source, historyLine)

	raw, err := g.generate(ctx, prompt, true)
	if err != nil {
		log.Printf("[Insight] inquiry analysis failed: %v", err)
		return result
	}

	analysis, err := decodeAnalysis(raw)
	if err != nil {
		log.Printf("[Insight] inquiry analysis unusable: %v", err)
		return result
	}

	cache.PutInsight(ctx, string(result.Kind), inquiry.ID, raw)
	result.Available = true
	result.Analysis = analysis
	return result
}

// SuggestJobAdjustments asks the model for technical suggestions on a job
// card. Free text; cached per order.
func (g *Gateway) SuggestJobAdjustments(ctx context.Context, order models.Order) models.InsightResult {
	result := models.InsightResult{Kind: models.InsightJobAdjustment}

	if text, ok := cache.GetInsight(ctx, string(result.Kind), order.ID); ok {
		result.Available = true
		result.Text = text
		result.Cached = true
		return result
	}

	measurements, _ := json.Marshal(order.Measurements)
	prompt := fmt.Sprintf(`Act as a master tailor. Review this job card for potential risks or suggestions.

Garment: %s
Fabric: %s
Measurements: %s
Notes: %s

Provide 3 brief, bulleted technical suggestions for the tailor regarding fit, needle type, or construction.
Format as a simple markdown list.`, order.GarmentType, order.Fabric, measurements, order.Notes)

	text, err := g.generate(ctx, prompt, false)
	if err != nil {
		log.Printf("[Insight] job adjustment suggestion failed: %v", err)
		return result
	}

	cache.PutInsight(ctx, string(result.Kind), order.ID, text)
	result.Available = true
	result.Text = text
	return result
}

// BusinessReport asks the model for an executive summary over current
// business counters. Not cached: the counters move constantly.
func (g *Gateway) BusinessReport(ctx context.Context, counters models.DashboardCounters, topFabric string) models.InsightResult {
	result := models.InsightResult{Kind: models.InsightBusinessReport}

	if topFabric == "" {
		topFabric = "Wool"
	}

	prompt := fmt.Sprintf(`Analyze these business metrics for a bespoke tailoring shop.

Active Orders: %d
Ready for Collection: %d
Top Fabric: %s
Pending Inquiries: %d

Give a 50-word executive summary for the business owner on what to focus on this week (e.g., ordering stock, following up on leads, or production bottlenecks).`,
		counters.ActiveOrders, counters.ReadyOrders, topFabric, counters.NewInquiries)

	text, err := g.generate(ctx, prompt, false)
	if err != nil {
		log.Printf("[Insight] business report failed: %v", err)
		return result
	}

	result.Available = true
	result.Text = text
	return result
}

// decodeAnalysis validates the model's JSON against the required four-key
// shape. Anything else is unavailable.
func decodeAnalysis(raw string) (*models.InquiryAnalysis, error) {
	// Models occasionally wrap JSON in a markdown fence despite instructions.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "```"))

	var analysis models.InquiryAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if analysis.DecisionStyle == "" || analysis.BudgetSensitivity == "" ||
		analysis.StylePreference == "" || analysis.SuggestedApproach == "" {
		return nil, fmt.Errorf("%w: response missing required keys", ErrUnavailable)
	}
	return &analysis, nil
}
