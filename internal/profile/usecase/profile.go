package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"honorly/internal/model"
	"honorly/internal/profile"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get: %v", err)
		return model.Profile{}, err
	}
	if p.UserID == "" {
		return model.Profile{UserID: sc.UserID, Email: sc.Email}, nil
	}
	return p, nil
}

func validName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= profile.MaxNameLength
}

func validPhone(s string) bool {
	if len(s) > profile.MaxPhoneLength {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("+-() .", r):
		default:
			return false
		}
	}
	return digits >= 7
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (model.Profile, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	phone := strings.TrimSpace(input.Phone)
	if !validName(first) || !validName(last) {
		return model.Profile{}, profile.ErrInvalidName
	}
	if phone != "" && !validPhone(phone) {
		return model.Profile{}, profile.ErrInvalidPhone
	}

	now := uc.now()
	p, err := uc.repo.UpsertProfile(ctx, model.Profile{
		UserID:    sc.UserID,
		Email:     sc.Email,
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return model.Profile{}, err
	}
	return p, nil
}
