package usecase

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"honorly/internal/waitlist"
	"honorly/pkg/email"
)

func (uc *implUseCase) Join(ctx context.Context, input waitlist.JoinInput) (waitlist.JoinOutput, error) {
	addr := strings.ToLower(strings.TrimSpace(input.Email))
	if parsed, err := mail.ParseAddress(addr); err != nil || parsed.Address != addr {
		return waitlist.JoinOutput{}, waitlist.ErrInvalidEmail
	}
	name := strings.TrimSpace(input.Name)
	source := strings.TrimSpace(input.Source)
	if utf8.RuneCountInString(name) > waitlist.MaxNameLength || utf8.RuneCountInString(source) > waitlist.MaxSourceLength {
		return waitlist.JoinOutput{}, waitlist.ErrInvalidInput
	}

	entry, created, err := uc.repo.Insert(ctx, waitlist.Entry{
		ID:        uc.newID(),
		Email:     addr,
		Name:      name,
		Source:    source,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Join Insert: %v", err)
		return waitlist.JoinOutput{}, err
	}
	out := waitlist.JoinOutput{Entry: entry, AlreadyJoined: !created}
	if !created {
		return out, nil
	}

	if _, err := uc.sender.Send(ctx, email.Message{
		Template:  email.TemplateWaitlistConfirmation,
		To:        addr,
		Variables: map[string]string{"Name": name},
	}); err != nil {
		uc.l.Warnf(ctx, "uc.Join confirmation email: %v", err)
		out.EmailFailed = true
	}
	return out, nil
}
