package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"honorly/internal/access"
	"honorly/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	passcodes   []string
	maxAttempts int

	mu       sync.Mutex
	attempts *expirable.LRU[string, int]
}

var _ access.UseCase = (*implUseCase)(nil)

// New builds the gate. Failed attempts are counted per client and forgotten
// after cfg.AttemptTTL.
func New(l log.Logger, cfg access.Config) *implUseCase {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.AttemptTTL <= 0 {
		cfg.AttemptTTL = time.Hour
	}
	if cfg.Size <= 0 {
		cfg.Size = 10000
	}
	codes := make([]string, 0, len(cfg.Passcodes))
	for _, p := range cfg.Passcodes {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, p)
		}
	}
	return &implUseCase{
		l:           l,
		passcodes:   codes,
		maxAttempts: cfg.MaxAttempts,
		attempts:    expirable.NewLRU[string, int](cfg.Size, nil, cfg.AttemptTTL),
	}
}
