package entities

// AnalysisResult represents the structured verdict the LLM produces for an
// uploaded pitch. It is the seed for every downstream simulation.
type AnalysisResult struct {
	Score       int          `json:"score"` // 0-100
	CompanyName string       `json:"company_name"`
	Summary     string       `json:"summary"`
	Pros        []string     `json:"pros"`
	Cons        []string     `json:"cons"`
	Metrics     PitchMetrics `json:"metrics"`
}

// PitchMetrics holds the individual 0-100 sub-scores of an analysis.
type PitchMetrics struct {
	MarketSize  int `json:"market_size"`
	Scalability int `json:"scalability"`
	Innovation  int `json:"innovation"`
}

// ClampScore forces a model-produced score into the 0-100 range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
