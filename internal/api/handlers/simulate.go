package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"baseload-study/internal/api/models"
	"baseload-study/internal/simulation"
)

// SimulateHandler runs single-configuration dispatch simulations.
type SimulateHandler struct {
	logger *zap.Logger
}

// NewSimulateHandler creates a simulate handler.
func NewSimulateHandler(logger *zap.Logger) *SimulateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulateHandler{logger: logger}
}

// Simulate handles POST /api/v1/simulate.
func (h *SimulateHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	perKW, source, err := resolveTrace(req.PVPerKW, req.Site, req.Year, req.Derate)
	if err != nil {
		writeError(c, err)
		return
	}

	cfg := dispatchConfig(req.Config)
	records, err := simulation.Simulate(perKW, cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Source:  source,
		Summary: simulation.Summarize(records, cfg),
	}
	if req.IncludeTrace {
		resp.Trace = records
	}

	h.logger.Info("simulation completed",
		zap.String("source", source),
		zap.Float64("pv_gw", cfg.PVCapacityGW),
		zap.Float64("battery_gwh", cfg.BatteryCapacityGWh),
		zap.Float64("capacity_factor", resp.Summary.CapacityFactor),
	)
	c.JSON(http.StatusOK, resp)
}

// dispatchConfig fills request defaults into an engine configuration.
func dispatchConfig(p models.DispatchPayload) simulation.DispatchConfig {
	cfg := simulation.DispatchConfig{
		PVCapacityGW:        p.PVCapacityGW,
		BatteryCapacityGWh:  p.BatteryCapacityGWh,
		LoadGW:              p.LoadGW,
		RoundTripEfficiency: p.RoundTripEfficiency,
		InitialSOCFraction:  simulation.DefaultInitialSOCFraction,
	}
	if cfg.RoundTripEfficiency == 0 {
		cfg.RoundTripEfficiency = simulation.DefaultRoundTripEfficiency
	}
	if p.InitialSOCFraction != nil {
		cfg.InitialSOCFraction = *p.InitialSOCFraction
	}
	return cfg
}
