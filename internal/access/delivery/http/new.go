package http

import (
	"honorly/internal/access"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc access.UseCase
}

func New(l log.Logger, uc access.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
