package http

import (
	"honorly/internal/invitation"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc invitation.UseCase
}

// New creates a new HTTP handler for the invitation domain.
func New(l log.Logger, uc invitation.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
