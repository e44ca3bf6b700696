package http

import (
	"honorly/internal/profile"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates a new HTTP handler for the profile domain.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
