package usecase

import (
	"context"

	"honorly/internal/question"
)

// Questions returns the ordered catalog of one path.
func (uc *implUseCase) Questions(ctx context.Context, path question.Path) ([]question.Question, error) {
	qs, err := uc.catalog.ByPath(path)
	if err != nil {
		return nil, err
	}
	return qs, nil
}
