package http

import (
	"honorly/internal/onboarding"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc onboarding.UseCase
}

// New creates a new HTTP handler for the onboarding domain.
func New(l log.Logger, uc onboarding.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
