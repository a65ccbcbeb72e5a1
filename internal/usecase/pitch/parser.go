package pitch

import (
	"fmt"

	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// Parser handles parsing and validation of analysis responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseAnalysis parses the JSON response from the model into AnalysisResult
func (p *Parser) ParseAnalysis(jsonString string) (*entities.AnalysisResult, error) {
	var result entities.AnalysisResult
	if err := gemini.DecodeJSON(jsonString, &result); err != nil {
		return nil, err
	}

	if err := p.ValidateAnalysisResult(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ValidateAnalysisResult validates required fields and normalizes the rest.
// Pros and cons can be empty for thin pitches; they just must not be nil.
func (p *Parser) ValidateAnalysisResult(result *entities.AnalysisResult) error {
	if result == nil {
		return fmt.Errorf("analysis result is nil")
	}

	if result.CompanyName == "" {
		return fmt.Errorf("missing company_name in response")
	}
	if result.Summary == "" {
		return fmt.Errorf("missing summary in response")
	}

	if result.Pros == nil {
		result.Pros = make([]string, 0)
	}
	if result.Cons == nil {
		result.Cons = make([]string, 0)
	}

	result.Score = entities.ClampScore(result.Score)
	result.Metrics.MarketSize = entities.ClampScore(result.Metrics.MarketSize)
	result.Metrics.Scalability = entities.ClampScore(result.Metrics.Scalability)
	result.Metrics.Innovation = entities.ClampScore(result.Metrics.Innovation)

	return nil
}
