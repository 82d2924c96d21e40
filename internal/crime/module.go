package crime

import (
	apphttp "eqia_dashboard_backend/internal/http"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/logger"
)

// Module wires the borough crime HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule loads the offence CSV from dataDir. When it cannot be loaded,
// the module still registers and serves an unavailable state.
func NewModule(dataDir string, reg *registry.Registry, log *logger.Logger) *Module {
	store, err := NewStore(dataDir)
	if err != nil {
		log.DataSourceError("crime", err)
		store = nil
	}
	svc := NewService(reg, store, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "crime"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/crime/:borough", m.handler.GetBoroughCrime)
}

var _ apphttp.Module = (*Module)(nil)
