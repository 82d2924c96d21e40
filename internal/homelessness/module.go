package homelessness

import (
	apphttp "eqia_dashboard_backend/internal/http"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/logger"
)

// Module wires the station homelessness HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule loads the CHAIN CSV from dataDir. When it cannot be loaded, the
// module still registers and serves an unavailable state.
func NewModule(dataDir string, reg *registry.Registry, log *logger.Logger) *Module {
	store, err := NewStore(dataDir)
	if err != nil {
		log.DataSourceError("homelessness", err)
		store = nil
	}
	svc := NewService(reg, store, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "homelessness"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/stations/:station/homelessness", m.handler.GetStationHomelessness)
}

var _ apphttp.Module = (*Module)(nil)
