package demographics

import (
	"eqia_dashboard_backend/internal/demographics/handler"
	"eqia_dashboard_backend/internal/demographics/service"
	apphttp "eqia_dashboard_backend/internal/http"
	"eqia_dashboard_backend/internal/nomis"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/logger"
)

// Module wires the station demographic comparison HTTP routes.
type Module struct {
	handler *handler.Handler
}

func NewModule(reg *registry.Registry, fetcher nomis.Fetcher, log *logger.Logger) *Module {
	svc := service.New(reg, fetcher, log)
	h := handler.NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "demographics"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/stations", m.handler.ListStations)
	ctx.V1.GET("/stations/:station/demographics/:dimension", m.handler.GetComparativeTable)
}

var _ apphttp.Module = (*Module)(nil)
