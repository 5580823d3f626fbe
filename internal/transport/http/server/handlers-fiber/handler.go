// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"pr-cycle-metrics/internal/usecase"

	"go.uber.org/zap"
)

// Handler exposes the metrics engine over HTTP using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}
