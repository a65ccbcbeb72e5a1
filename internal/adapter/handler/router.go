package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/venturedesk/pitch-simulator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	pitchCtrl     *PitchController
	simulationCtl *SimulationController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, pitchCtrl *PitchController, simulationCtl *SimulationController) *Router {
	return &Router{
		cfg:           cfg,
		pitchCtrl:     pitchCtrl,
		simulationCtl: simulationCtl,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupPitchRoutes(v1)
	rt.setupSimulationRoutes(v1)
	rt.setupNegotiationRoutes(v1)
}

// setupPitchRoutes configures the analysis route
func (rt *Router) setupPitchRoutes(g *echo.Group) {
	pitchGroup := g.Group("/pitch")
	pitchGroup.POST("/analyze", rt.pitchCtrl.Analyze)
}

// setupSimulationRoutes configures the analysis-driven simulations
func (rt *Router) setupSimulationRoutes(g *echo.Group) {
	simGroup := g.Group("/simulations")
	simGroup.POST("/diligence", rt.simulationCtl.Diligence)
	simGroup.POST("/committee", rt.simulationCtl.Committee)
	simGroup.POST("/board", rt.simulationCtl.Board)
}

// setupNegotiationRoutes configures the negotiation flow
func (rt *Router) setupNegotiationRoutes(g *echo.Group) {
	negGroup := g.Group("/negotiation")
	negGroup.POST("/reply", rt.simulationCtl.NegotiationReply)
	negGroup.POST("/progress", rt.simulationCtl.NegotiationProgress)
	negGroup.POST("/termsheet", rt.simulationCtl.TermSheet)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
