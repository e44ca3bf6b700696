package http

import (
	"honorly/internal/cases"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc cases.UseCase
}

// New creates a new HTTP handler for the cases domain.
func New(l log.Logger, uc cases.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
