package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/venturedesk/pitch-simulator/errors"
	dto "github.com/venturedesk/pitch-simulator/internal/adapter/dto/simulation"
	simuse "github.com/venturedesk/pitch-simulator/internal/usecase/simulation"
	pkgvalidator "github.com/venturedesk/pitch-simulator/pkg/validator"
)

// SimulationController handles the analysis-driven simulation endpoints
type SimulationController struct {
	svc    simuse.Service
	logger *zap.Logger
}

// NewSimulationController creates a new simulation controller
func NewSimulationController(svc simuse.Service, logger *zap.Logger) *SimulationController {
	return &SimulationController{svc: svc, logger: logger}
}

// bind decodes and validates a JSON body into req.
func (sc *SimulationController) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(pkgvalidator.Describe(err))
	}
	return nil
}

// Diligence generates due diligence claims from a prior analysis
// @Summary      Generate due diligence claims
// @Tags         Simulations
// @Accept       json
// @Produce      json
// @Param        request  body      object{analysis=object}  true  "Prior analysis"
// @Success      200      {object}  map[string]interface{}   "Claims (possibly empty)"
// @Router       /simulations/diligence [post]
func (sc *SimulationController) Diligence(c echo.Context) error {
	var req dto.AnalysisRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	claims, err := sc.svc.GenerateClaims(c.Request().Context(), req.Analysis)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, map[string]interface{}{"claims": claims})
}

// Committee simulates the investment committee debate
// @Summary      Simulate committee debate
// @Tags         Simulations
// @Accept       json
// @Produce      json
// @Param        request  body      object{analysis=object}  true  "Prior analysis"
// @Success      200      {object}  map[string]interface{}   "Debate messages (possibly empty)"
// @Router       /simulations/committee [post]
func (sc *SimulationController) Committee(c echo.Context) error {
	var req dto.AnalysisRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	messages, err := sc.svc.DebateCommittee(c.Request().Context(), req.Analysis)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, map[string]interface{}{"messages": messages})
}

// Board produces the next board crisis scenario
// @Summary      Next board crisis scenario
// @Tags         Simulations
// @Accept       json
// @Produce      json
// @Param        request  body      object{analysis=object,round=int}  true  "Prior analysis and crisis round"
// @Success      200      {object}  map[string]interface{}             "Board scenario (fallback on failure)"
// @Router       /simulations/board [post]
func (sc *SimulationController) Board(c echo.Context) error {
	var req dto.BoardRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	scenario, err := sc.svc.NextBoardScenario(c.Request().Context(), req.Analysis, req.Round)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, scenario)
}

// NegotiationReply answers one founder message in the investor's voice
// @Summary      Negotiation chat reply
// @Tags         Negotiation
// @Accept       json
// @Produce      json
// @Param        request  body      object{analysis=object,messages=[]object,message=string}  true  "Analysis, history, and the founder's message"
// @Success      200      {object}  map[string]interface{}  "Investor reply"
// @Router       /negotiation/reply [post]
func (sc *SimulationController) NegotiationReply(c echo.Context) error {
	var req dto.ReplyRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	reply, err := sc.svc.NegotiationReply(c.Request().Context(), req.Analysis, req.Messages, req.Message)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, reply)
}

// NegotiationProgress judges whether the negotiation has stalled
// @Summary      Check negotiation progress
// @Tags         Negotiation
// @Accept       json
// @Produce      json
// @Param        request  body      object{messages=[]object}  true  "Negotiation history"
// @Success      200      {object}  map[string]interface{}     "Progress verdict"
// @Router       /negotiation/progress [post]
func (sc *SimulationController) NegotiationProgress(c echo.Context) error {
	var req dto.ProgressRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	progress, err := sc.svc.CheckProgress(c.Request().Context(), req.Messages)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, progress)
}

// TermSheet drafts the structured offer closing the negotiation
// @Summary      Draft term sheet
// @Tags         Negotiation
// @Accept       json
// @Produce      json
// @Param        request  body      object{analysis=object,messages=[]object}  true  "Analysis and negotiation history"
// @Success      200      {object}  map[string]interface{}  "Term sheet (error-tagged fallback on failure)"
// @Router       /negotiation/termsheet [post]
func (sc *SimulationController) TermSheet(c echo.Context) error {
	var req dto.TermSheetRequest
	if err := sc.bind(c, &req); err != nil {
		return HandleError(sc.logger, c, err)
	}

	sheet, err := sc.svc.DraftTermSheet(c.Request().Context(), req.Analysis, req.Messages)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrAIServiceUnavailable(err))
	}
	return HandleSuccess(sc.logger, c, sheet)
}
