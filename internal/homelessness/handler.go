package homelessness

import (
	"github.com/gin-gonic/gin"

	"eqia_dashboard_backend/platform/httpkit"
)

// Handler exposes the station homelessness endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetStationHomelessness handles GET /api/v1/stations/:station/homelessness
func (h *Handler) GetStationHomelessness(c *gin.Context) {
	overview, err := h.svc.StationOverview(c.Param("station"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, overview)
}
