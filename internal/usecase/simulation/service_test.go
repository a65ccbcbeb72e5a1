package simulation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
	"github.com/venturedesk/pitch-simulator/pkg/config"
	"github.com/venturedesk/pitch-simulator/pkg/gemini"
)

type fakeGenerator struct {
	calls int
	text  string
	err   error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req gemini.Request) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestService(gen *fakeGenerator) Service {
	return NewService(gen, &config.SimulationConfig{BoardDelay: 0}, nil)
}

func sampleAnalysis() *entities.AnalysisResult {
	return &entities.AnalysisResult{
		Score:       70,
		CompanyName: "Acme",
		Summary:     "s",
		Pros:        []string{"a"},
		Cons:        []string{"b"},
	}
}

func TestGenerateClaims_NormalizesRecords(t *testing.T) {
	gen := &fakeGenerator{text: `{"claims":[
		{"claim":"TAM is $10B","category":"Market","probing_question":"Source?"},
		{"claim":"CTO shipped 3 exits","category":"Nonsense","status":"verified","probing_question":"References?"},
		{"claim":"","category":"Team","probing_question":"skip me"}
	]}`}
	svc := newTestService(gen)

	claims, err := svc.GenerateClaims(context.Background(), sampleAnalysis())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(claims) != 2 {
		t.Fatalf("expected 2 claims (empty one dropped), got %d", len(claims))
	}
	if claims[0].ID == "" {
		t.Fatalf("missing id must be minted")
	}
	if claims[0].Status != entities.ClaimStatusUnverified {
		t.Fatalf("empty status must default to unverified, got %q", claims[0].Status)
	}
	if claims[1].Category != entities.ClaimCategoryMarket {
		t.Fatalf("unknown category must map to Market, got %q", claims[1].Category)
	}
	if claims[1].Status != "verified" {
		t.Fatalf("model status must be kept, got %q", claims[1].Status)
	}
}

func TestGenerateClaims_FailureYieldsEmpty(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("network down")}
	svc := newTestService(gen)

	claims, err := svc.GenerateClaims(context.Background(), sampleAnalysis())
	if err != nil {
		t.Fatalf("failures must be swallowed, got %v", err)
	}
	if claims == nil || len(claims) != 0 {
		t.Fatalf("expected empty slice default, got %#v", claims)
	}
}

func TestGenerateClaims_MissingKeySurfaces(t *testing.T) {
	gen := &fakeGenerator{err: gemini.ErrMissingAPIKey}
	svc := newTestService(gen)

	_, err := svc.GenerateClaims(context.Background(), sampleAnalysis())
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("configuration errors must surface, got %v", err)
	}
}

func TestDebateCommittee_UnusableResponseYieldsEmpty(t *testing.T) {
	gen := &fakeGenerator{text: "I'd rather write prose"}
	svc := newTestService(gen)

	messages, err := svc.DebateCommittee(context.Background(), sampleAnalysis())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty default, got %d messages", len(messages))
	}
}

func TestDebateCommittee_NormalizesAgents(t *testing.T) {
	gen := &fakeGenerator{text: `{"messages":[
		{"agent":"tech","text":"The pipeline won't scale."},
		{"agent":"marketing","text":"The story sells itself."}
	]}`}
	svc := newTestService(gen)

	messages, err := svc.DebateCommittee(context.Background(), sampleAnalysis())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Agent != entities.CommitteeAgentTech {
		t.Fatalf("known agent must be kept, got %q", messages[0].Agent)
	}
	if messages[1].Agent != entities.CommitteeAgentVision {
		t.Fatalf("unknown agent must map to vision, got %q", messages[1].Agent)
	}
}

func TestNextBoardScenario_FallbackOnFailure(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("boom")}
	svc := newTestService(gen)

	scenario, err := svc.NextBoardScenario(context.Background(), sampleAnalysis(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fallback := entities.FallbackBoardScenario()
	if scenario.ID != fallback.ID {
		t.Fatalf("expected fallback scenario, got %+v", scenario)
	}
	if len(scenario.Choices) == 0 {
		t.Fatalf("fallback scenario must offer choices")
	}
}

func TestNextBoardScenario_RejectsIncompleteScenario(t *testing.T) {
	gen := &fakeGenerator{text: `{"title":"","description":"d","time_jump":"1 year later","choices":[]}`}
	svc := newTestService(gen)

	scenario, err := svc.NextBoardScenario(context.Background(), sampleAnalysis(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenario.ID != entities.FallbackBoardScenario().ID {
		t.Fatalf("incomplete scenario must fall back, got %+v", scenario)
	}
}

func TestNextBoardScenario_MintsChoiceIDs(t *testing.T) {
	gen := &fakeGenerator{text: `{"title":"Crisis","description":"d","time_jump":"18 months later","choices":[{"label":"A","consequence":"c"}]}`}
	svc := newTestService(gen)

	scenario, err := svc.NextBoardScenario(context.Background(), sampleAnalysis(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenario.ID == "" || scenario.Choices[0].ID == "" {
		t.Fatalf("ids must be minted: %+v", scenario)
	}
}

func TestNegotiationReply_FallbackKeepsInvestorTalking(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("timeout")}
	svc := newTestService(gen)

	reply, err := svc.NegotiationReply(context.Background(), sampleAnalysis(), nil, "double the valuation or I walk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Role != entities.NegotiationRoleInvestor {
		t.Fatalf("fallback reply must come from the investor, got %q", reply.Role)
	}
	if reply.Text == "" {
		t.Fatalf("fallback reply must not be empty")
	}
}

func TestCheckProgress_ShortSessionSkipsModel(t *testing.T) {
	gen := &fakeGenerator{text: `{"should_cancel":true,"show_warning":true}`}
	svc := newTestService(gen)

	history := make([]entities.NegotiationMessage, entities.MinNegotiationTurns-1)
	progress, err := svc.CheckProgress(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.ShouldCancel || progress.ShowWarning {
		t.Fatalf("short sessions must report the zero verdict, got %+v", progress)
	}
	if gen.calls != 0 {
		t.Fatalf("short sessions must not reach the model")
	}
}

func TestCheckProgress_LongSessionUsesModel(t *testing.T) {
	gen := &fakeGenerator{text: `{"should_cancel":false,"show_warning":true}`}
	svc := newTestService(gen)

	history := make([]entities.NegotiationMessage, entities.MinNegotiationTurns)
	progress, err := svc.CheckProgress(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one model call, got %d", gen.calls)
	}
	if !progress.ShowWarning || progress.ShouldCancel {
		t.Fatalf("unexpected verdict %+v", progress)
	}
}

func TestCheckProgress_FailureYieldsZeroVerdict(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("boom")}
	svc := newTestService(gen)

	history := make([]entities.NegotiationMessage, entities.MinNegotiationTurns)
	progress, err := svc.CheckProgress(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.ShouldCancel || progress.ShowWarning {
		t.Fatalf("failures must yield the zero verdict, got %+v", progress)
	}
}

func TestDraftTermSheet_FallbackIsErrorTagged(t *testing.T) {
	gen := &fakeGenerator{text: `{"investment_amount":0,"valuation":0}`}
	svc := newTestService(gen)

	sheet, err := svc.DraftTermSheet(context.Background(), sampleAnalysis(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Notes == "" {
		t.Fatalf("fallback sheet must carry an explanatory note")
	}
	if sheet.InvestmentAmount != 0 {
		t.Fatalf("fallback sheet must not invent amounts")
	}
}

func TestDraftTermSheet_ParsesOffer(t *testing.T) {
	gen := &fakeGenerator{text: `{
		"investment_amount": 2000000,
		"valuation": 10000000,
		"equity_percentage": 20,
		"use_of_funds": {"product":40,"hiring":30,"marketing":20,"operations":10},
		"terms": {"board_seat":"one observer seat","liquidation_preference":"1x non-participating","pro_rata_rights":"yes","vesting_schedule":"4y/1y cliff"},
		"milestones": ["ship v2"],
		"next_steps": null,
		"notes": "standard seed terms"
	}`}
	svc := newTestService(gen)

	sheet, err := svc.DraftTermSheet(context.Background(), sampleAnalysis(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.InvestmentAmount != 2000000 || sheet.EquityPercentage != 20 {
		t.Fatalf("unexpected sheet %+v", sheet)
	}
	if sheet.NextSteps == nil {
		t.Fatalf("nil next_steps must be normalized")
	}
}
