package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"baseload-study/internal/api/models"
	"baseload-study/internal/sites"
)

// defaultSeed matches the CLI's default pool shuffle.
const defaultSeed int64 = 42

// SitesHandler serves site-selection requests.
type SitesHandler struct {
	logger *zap.Logger
}

// NewSitesHandler creates a sites handler.
func NewSitesHandler(logger *zap.Logger) *SitesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SitesHandler{logger: logger}
}

// SelectSites handles POST /api/v1/sites/select.
func (h *SitesHandler) SelectSites(c *gin.Context) {
	var req models.SelectSitesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	seed := defaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	selected, err := sites.Generate(req.Count, seed)
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("sites selected",
		zap.Int("count", req.Count),
		zap.Int64("seed", seed),
	)
	c.JSON(http.StatusOK, models.SitesResponse{
		Count: len(selected),
		Seed:  seed,
		Sites: selected,
	})
}
