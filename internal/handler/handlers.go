// Package handler assembles the transport-level handlers of the server.
package handler

import (
	"github.com/MKhiriev/hd-notes/internal/config"
	"github.com/MKhiriev/hd-notes/internal/handler/http"
	"github.com/MKhiriev/hd-notes/internal/logger"
	"github.com/MKhiriev/hd-notes/internal/service"
)

// Handlers groups every transport handler the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers enabled by cfg. At least one transport
// address must be configured.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
