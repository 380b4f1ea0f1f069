package handler

import (
	"github.com/sunjoo-dev/movein-registry/internal/handler/http"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/service"
)

// Handlers groups the transport handlers of the application. The service
// speaks plain HTTP only, so there is a single member; the indirection keeps
// the wiring in cmd/server uniform should another transport appear.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
