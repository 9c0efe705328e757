package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"baseload-study/internal/api/models"
	"baseload-study/internal/simulation"
)

// SweepHandler runs full capacity cross-products.
type SweepHandler struct {
	logger *zap.Logger
}

// NewSweepHandler creates a sweep handler.
func NewSweepHandler(logger *zap.Logger) *SweepHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepHandler{logger: logger}
}

// Sweep handles POST /api/v1/sweep.
func (h *SweepHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
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

	cfg := simulation.SweepConfig{
		PVCapacitiesGW:       req.PVCapacitiesGW,
		BatteryCapacitiesGWh: req.BatteryCapacitiesGWh,
		LoadGW:               req.LoadGW,
		RoundTripEfficiency:  req.RoundTripEfficiency,
		InitialSOCFraction:   simulation.DefaultInitialSOCFraction,
		Workers:              req.Workers,
	}
	if cfg.RoundTripEfficiency == 0 {
		cfg.RoundTripEfficiency = simulation.DefaultRoundTripEfficiency
	}
	if req.InitialSOCFraction != nil {
		cfg.InitialSOCFraction = *req.InitialSOCFraction
	}

	result, err := simulation.Sweep(perKW, cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("sweep completed",
		zap.String("run_id", result.RunID),
		zap.String("source", source),
		zap.Int("configurations", len(result.Results)),
	)
	c.JSON(http.StatusOK, models.SweepResponse{
		RunID:     result.RunID,
		Status:    "completed",
		Source:    source,
		Summaries: result.Summaries(),
	})
}
