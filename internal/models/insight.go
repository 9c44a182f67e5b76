package models

// InsightKind selects which prompt the gateway builds.
type InsightKind string

const (
	InsightInquiryAnalysis InsightKind = "inquiry_analysis"
	InsightJobAdjustment   InsightKind = "job_adjustment"
	InsightBusinessReport  InsightKind = "business_report"
)

// InquiryAnalysis is the structured result for inquiry_analysis requests.
// All four fields must be present in the model's JSON or the result is
// treated as unavailable.
type InquiryAnalysis struct {
	DecisionStyle     string `json:"decision_style"`
	BudgetSensitivity string `json:"budget_sensitivity"`
	StylePreference   string `json:"style_preference"`
	SuggestedApproach string `json:"suggested_approach"`
}

// InsightResult is what handlers return for every insight request. Available
// is false when the external call failed or returned an unusable shape; the
// caller renders the view either way.
type InsightResult struct {
	Kind      InsightKind      `json:"kind"`
	Available bool             `json:"available"`
	Text      string           `json:"text,omitempty"`
	Analysis  *InquiryAnalysis `json:"analysis,omitempty"`
	Cached    bool             `json:"cached,omitempty"`
}
