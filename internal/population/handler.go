package population

import (
	"github.com/gin-gonic/gin"

	"eqia_dashboard_backend/platform/httpkit"
)

// Handler exposes the borough population projections endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetBoroughProjection handles GET /api/v1/population/:borough
func (h *Handler) GetBoroughProjection(c *gin.Context) {
	projection, err := h.svc.BoroughProjection(c.Param("borough"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, projection)
}
