package deprivation

import (
	apphttp "eqia_dashboard_backend/internal/http"
	"eqia_dashboard_backend/internal/registry"
	"eqia_dashboard_backend/platform/logger"
)

// Module wires the station deprivation HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule loads the reference CSVs from dataDir. When they cannot be
// loaded, the module still registers and serves an unavailable state so the
// rest of the API keeps working.
func NewModule(dataDir string, reg *registry.Registry, log *logger.Logger) *Module {
	store, err := NewStore(dataDir)
	if err != nil {
		log.DataSourceError("deprivation", err)
		store = nil
	}
	svc := NewService(reg, store, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "deprivation"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/stations/:station/deprivation", m.handler.GetStationDeprivation)
}

var _ apphttp.Module = (*Module)(nil)
