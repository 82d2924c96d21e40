package deprivation

import (
	"github.com/gin-gonic/gin"

	"eqia_dashboard_backend/platform/httpkit"
)

// Handler exposes the station deprivation endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetStationDeprivation handles GET /api/v1/stations/:station/deprivation
func (h *Handler) GetStationDeprivation(c *gin.Context) {
	summary, err := h.svc.StationSummary(c.Param("station"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, summary)
}
