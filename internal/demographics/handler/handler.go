// Package handler exposes the demographic comparison endpoints.
package handler

import (
	"github.com/gin-gonic/gin"

	"eqia_dashboard_backend/internal/demographics/census"
	"eqia_dashboard_backend/internal/demographics/service"
	"eqia_dashboard_backend/platform/httpkit"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListStations handles GET /api/v1/stations
func (h *Handler) ListStations(c *gin.Context) {
	httpkit.OK(c, gin.H{"stations": h.svc.Stations()})
}

// GetComparativeTable handles
// GET /api/v1/stations/:station/demographics/:dimension
func (h *Handler) GetComparativeTable(c *gin.Context) {
	station := c.Param("station")
	dim := census.Dimension(c.Param("dimension"))

	table, err := h.svc.BuildTable(c.Request.Context(), station, dim)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, table)
}
