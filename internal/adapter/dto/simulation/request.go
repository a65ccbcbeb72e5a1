package simulation

import (
	"github.com/venturedesk/pitch-simulator/internal/domain/entities"
)

// AnalysisRequest drives the simulations that only need the prior analysis
// (due diligence, committee debate).
type AnalysisRequest struct {
	Analysis *entities.AnalysisResult `json:"analysis" validate:"required"`
}

// BoardRequest requests the next board crisis scenario.
type BoardRequest struct {
	Analysis *entities.AnalysisResult `json:"analysis" validate:"required"`
	Round    int                      `json:"round" validate:"omitempty,min=1,max=20"`
}

// ReplyRequest asks the investor agent to answer one founder message.
type ReplyRequest struct {
	Analysis *entities.AnalysisResult      `json:"analysis" validate:"required"`
	Messages []entities.NegotiationMessage `json:"messages"`
	Message  string                        `json:"message" validate:"required,max=4000"`
}

// ProgressRequest asks whether the negotiation has stalled. An empty history
// is valid and always yields the zero verdict.
type ProgressRequest struct {
	Messages []entities.NegotiationMessage `json:"messages"`
}

// TermSheetRequest asks for the structured offer closing the negotiation.
type TermSheetRequest struct {
	Analysis *entities.AnalysisResult      `json:"analysis" validate:"required"`
	Messages []entities.NegotiationMessage `json:"messages"`
}
