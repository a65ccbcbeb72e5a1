package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	"github.com/venturedesk/pitch-simulator/pkg/config"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

// Generator is the slice of the Gemini client this service needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.Request) (string, error)
}

// fallbackInvestorReply keeps the negotiation chat moving when the model call
// fails mid-session.
const fallbackInvestorReply = "Interesting. Before we go further, walk me through your numbers once more — I want to be sure we are aligned on the fundamentals."

// Service defines the simulation invokers driven by a prior analysis.
//
// Every method follows the never-block-the-demo policy: failures are logged
// and replaced by the documented default. The only error any method returns
// is the missing-API-key configuration error, which is detected before the
// network is touched.
type Service interface {
	GenerateClaims(ctx context.Context, analysis *entities.AnalysisResult) ([]entities.DueDiligenceClaim, error)
	DebateCommittee(ctx context.Context, analysis *entities.AnalysisResult) ([]entities.CommitteeMessage, error)
	NextBoardScenario(ctx context.Context, analysis *entities.AnalysisResult, round int) (entities.BoardScenario, error)
	NegotiationReply(ctx context.Context, analysis *entities.AnalysisResult, history []entities.NegotiationMessage, userMessage string) (entities.NegotiationMessage, error)
	CheckProgress(ctx context.Context, history []entities.NegotiationMessage) (entities.NegotiationProgress, error)
	DraftTermSheet(ctx context.Context, analysis *entities.AnalysisResult, history []entities.NegotiationMessage) (entities.TermSheet, error)
}

type simService struct {
	generator  Generator
	logger     *zap.Logger
	boardDelay time.Duration
}

// NewService constructs the simulation service.
func NewService(generator Generator, cfg *config.SimulationConfig, logger *zap.Logger) Service {
	var boardDelay time.Duration
	if cfg != nil {
		boardDelay = cfg.BoardDelay
	}
	return &simService{
		generator:  generator,
		logger:     logger,
		boardDelay: boardDelay,
	}
}

// generate runs one model call and applies the swallow policy: the returned
// error is non-nil only for the configuration case; every other failure
// comes back as ok=false.
func (s *simService) generate(ctx context.Context, op string, req gemini.Request) (raw string, ok bool, err error) {
	raw, callErr := s.generator.GenerateContent(ctx, req)
	if callErr == nil {
		return raw, true, nil
	}
	if errors.Is(callErr, gemini.ErrMissingAPIKey) {
		return "", false, callErr
	}
	if s.logger != nil {
		s.logger.Warn("simulation call failed, serving default",
			zap.String("operation", op),
			zap.Error(callErr),
		)
	}
	return "", false, nil
}

// GenerateClaims extracts due diligence claims from the analysis. Default: empty slice.
func (s *simService) GenerateClaims(ctx context.Context, analysis *entities.AnalysisResult) ([]entities.DueDiligenceClaim, error) {
	claims := make([]entities.DueDiligenceClaim, 0)

	raw, ok, err := s.generate(ctx, "diligence_claims", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildClaimsPrompt(analysis))},
		ResponseSchema: claimsSchema(),
		Temperature:    0.5,
		MaxTokens:      2048,
	})
	if err != nil || !ok {
		return claims, err
	}

	var payload struct {
		Claims []struct {
			ID              string `json:"id"`
			Claim           string `json:"claim"`
			Category        string `json:"category"`
			Status          string `json:"status"`
			ProbingQuestion string `json:"probing_question"`
		} `json:"claims"`
	}
	if decodeErr := gemini.DecodeJSON(raw, &payload); decodeErr != nil {
		s.logParseFailure("diligence_claims", decodeErr)
		return claims, nil
	}

	for _, c := range payload.Claims {
		if c.Claim == "" {
			continue
		}
		status := c.Status
		if status == "" {
			status = entities.ClaimStatusUnverified
		}
		claims = append(claims, entities.DueDiligenceClaim{
			ID:              orNewID(c.ID),
			Claim:           c.Claim,
			Category:        entities.NormalizeClaimCategory(c.Category),
			Status:          status,
			ProbingQuestion: c.ProbingQuestion,
		})
	}
	return claims, nil
}

// DebateCommittee simulates the three-persona committee discussion. Default: empty slice.
func (s *simService) DebateCommittee(ctx context.Context, analysis *entities.AnalysisResult) ([]entities.CommitteeMessage, error) {
	messages := make([]entities.CommitteeMessage, 0)

	raw, ok, err := s.generate(ctx, "committee_debate", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildCommitteePrompt(analysis))},
		ResponseSchema: committeeSchema(),
		Temperature:    0.8,
		MaxTokens:      2048,
	})
	if err != nil || !ok {
		return messages, err
	}

	var payload struct {
		Messages []struct {
			ID    string `json:"id"`
			Agent string `json:"agent"`
			Text  string `json:"text"`
		} `json:"messages"`
	}
	if decodeErr := gemini.DecodeJSON(raw, &payload); decodeErr != nil {
		s.logParseFailure("committee_debate", decodeErr)
		return messages, nil
	}

	for _, m := range payload.Messages {
		if m.Text == "" {
			continue
		}
		messages = append(messages, entities.CommitteeMessage{
			ID:    orNewID(m.ID),
			Agent: entities.NormalizeCommitteeAgent(m.Agent),
			Text:  m.Text,
		})
	}
	return messages, nil
}

// NextBoardScenario produces the next board crisis. A fixed delay runs before
// the call to pace the perceived "thinking" of the board. Default: the
// fallback scenario.
func (s *simService) NextBoardScenario(ctx context.Context, analysis *entities.AnalysisResult, round int) (entities.BoardScenario, error) {
	if s.boardDelay > 0 {
		timer := time.NewTimer(s.boardDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return entities.FallbackBoardScenario(), nil
		case <-timer.C:
		}
	}

	raw, ok, err := s.generate(ctx, "board_scenario", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildBoardPrompt(analysis, round))},
		ResponseSchema: boardSchema(),
		Temperature:    0.9,
		MaxTokens:      2048,
	})
	if err != nil {
		return entities.FallbackBoardScenario(), err
	}
	if !ok {
		return entities.FallbackBoardScenario(), nil
	}

	var scenario entities.BoardScenario
	if decodeErr := gemini.DecodeJSON(raw, &scenario); decodeErr != nil {
		s.logParseFailure("board_scenario", decodeErr)
		return entities.FallbackBoardScenario(), nil
	}
	if scenario.Title == "" || len(scenario.Choices) == 0 {
		s.logParseFailure("board_scenario", gemini.ErrMalformedResponse)
		return entities.FallbackBoardScenario(), nil
	}

	scenario.ID = orNewID(scenario.ID)
	for i := range scenario.Choices {
		scenario.Choices[i].ID = orNewID(scenario.Choices[i].ID)
	}
	return scenario, nil
}

// NegotiationReply answers one founder message in the investor's voice.
// Default: a canned reply that keeps the conversation open.
func (s *simService) NegotiationReply(ctx context.Context, analysis *entities.AnalysisResult, history []entities.NegotiationMessage, userMessage string) (entities.NegotiationMessage, error) {
	fallback := entities.NegotiationMessage{
		ID:   uuid.NewString(),
		Role: entities.NegotiationRoleInvestor,
		Text: fallbackInvestorReply,
	}

	raw, ok, err := s.generate(ctx, "negotiation_reply", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildNegotiationPrompt(analysis, history, userMessage))},
		ResponseSchema: replySchema(),
		Temperature:    0.7,
		MaxTokens:      1024,
	})
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}

	var payload struct {
		Text string `json:"text"`
	}
	if decodeErr := gemini.DecodeJSON(raw, &payload); decodeErr != nil || payload.Text == "" {
		s.logParseFailure("negotiation_reply", decodeErr)
		return fallback, nil
	}

	return entities.NegotiationMessage{
		ID:   uuid.NewString(),
		Role: entities.NegotiationRoleInvestor,
		Text: payload.Text,
	}, nil
}

// CheckProgress judges whether a negotiation has stalled. Sessions shorter
// than MinNegotiationTurns never reach the model and always report
// {false,false}. Default on failure: the zero verdict.
func (s *simService) CheckProgress(ctx context.Context, history []entities.NegotiationMessage) (entities.NegotiationProgress, error) {
	var progress entities.NegotiationProgress
	if len(history) < entities.MinNegotiationTurns {
		return progress, nil
	}

	raw, ok, err := s.generate(ctx, "negotiation_progress", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildProgressPrompt(history))},
		ResponseSchema: progressSchema(),
		Temperature:    0.2,
		MaxTokens:      256,
	})
	if err != nil || !ok {
		return progress, err
	}

	if decodeErr := gemini.DecodeJSON(raw, &progress); decodeErr != nil {
		s.logParseFailure("negotiation_progress", decodeErr)
		return entities.NegotiationProgress{}, nil
	}
	return progress, nil
}

// DraftTermSheet turns a finished negotiation into a structured offer.
// Default: the error-tagged fallback sheet.
func (s *simService) DraftTermSheet(ctx context.Context, analysis *entities.AnalysisResult, history []entities.NegotiationMessage) (entities.TermSheet, error) {
	raw, ok, err := s.generate(ctx, "term_sheet", gemini.Request{
		Parts:          []gemini.Part{gemini.TextPart(buildTermSheetPrompt(analysis, history))},
		ResponseSchema: termSheetSchema(),
		Temperature:    0.4,
		MaxTokens:      2048,
	})
	if err != nil {
		return entities.FallbackTermSheet(), err
	}
	if !ok {
		return entities.FallbackTermSheet(), nil
	}

	var sheet entities.TermSheet
	if decodeErr := gemini.DecodeJSON(raw, &sheet); decodeErr != nil {
		s.logParseFailure("term_sheet", decodeErr)
		return entities.FallbackTermSheet(), nil
	}
	if sheet.InvestmentAmount <= 0 || sheet.Valuation <= 0 {
		s.logParseFailure("term_sheet", gemini.ErrMalformedResponse)
		return entities.FallbackTermSheet(), nil
	}

	if sheet.Milestones == nil {
		sheet.Milestones = make([]string, 0)
	}
	if sheet.NextSteps == nil {
		sheet.NextSteps = make([]string, 0)
	}
	return sheet, nil
}

func (s *simService) logParseFailure(op string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("simulation response unusable, serving default",
		zap.String("operation", op),
		zap.Error(err),
	)
}

// orNewID keeps a model-provided id or mints a fresh one.
func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
