package crime

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eqia_dashboard_backend/platform/httpkit"
)

// Handler exposes the borough crime endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type summaryQuery struct {
	Top int `form:"top" binding:"omitempty,min=1,max=50"`
}

// GetBoroughCrime handles GET /api/v1/crime/:borough?top=N
func (h *Handler) GetBoroughCrime(c *gin.Context) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'top' must be between 1 and 50", nil)
		return
	}
	if q.Top == 0 {
		q.Top = 10
	}

	summary, err := h.svc.BoroughSummary(c.Param("borough"), q.Top)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, summary)
}
