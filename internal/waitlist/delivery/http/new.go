package http

import (
	"honorly/internal/waitlist"
	"honorly/pkg/log"
)

type handler struct {
	l  log.Logger
	uc waitlist.UseCase
}

func New(l log.Logger, uc waitlist.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
