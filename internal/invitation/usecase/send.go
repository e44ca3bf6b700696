package usecase

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"honorly/internal/invitation"
	"honorly/internal/model"
	"honorly/pkg/email"
)

// normalizeEmail lowercases a bare address and rejects display-name forms.
func normalizeEmail(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", false
	}
	return s, true
}

func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input invitation.SendInput) (invitation.SendOutput, error) {
	to, ok := normalizeEmail(input.Email)
	if !ok {
		return invitation.SendOutput{}, invitation.ErrInvalidEmail
	}
	firstName := strings.TrimSpace(input.FirstName)
	message := strings.TrimSpace(input.Message)
	if utf8.RuneCountInString(firstName) > invitation.MaxNameLength || utf8.RuneCountInString(message) > invitation.MaxMessageLength {
		return invitation.SendOutput{}, invitation.ErrInvalidInput
	}

	access, err := uc.cases.Authorize(ctx, sc, input.CaseID, true)
	if err != nil {
		return invitation.SendOutput{}, err
	}
	if strings.EqualFold(to, sc.Email) {
		return invitation.SendOutput{}, invitation.ErrSelfInvite
	}

	now := uc.now()
	pending, err := uc.repo.HasPending(ctx, input.CaseID, to, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Send HasPending: %v", err)
		return invitation.SendOutput{}, err
	}
	if pending {
		return invitation.SendOutput{}, invitation.ErrAlreadyInvited
	}

	inv := model.Invitation{
		ID:              uc.newID(),
		CaseID:          input.CaseID,
		Email:           to,
		FirstName:       firstName,
		Message:         message,
		Token:           uc.newToken(),
		Status:          model.InvitationPending,
		InvitedByUserID: sc.UserID,
		CreatedAt:       now,
		ExpiresAt:       now.Add(invitation.TTL),
	}
	if err := uc.repo.CreateInvitation(ctx, inv); err != nil {
		uc.l.Errorf(ctx, "uc.Send CreateInvitation: %v", err)
		return invitation.SendOutput{}, err
	}

	out := invitation.SendOutput{Invitation: inv}
	lovedOne := access.LovedOne.FullName()
	if lovedOne == "" {
		lovedOne = "your loved one"
	}
	_, err = uc.sender.Send(ctx, email.Message{
		Template: email.TemplateInvitation,
		To:       to,
		Variables: map[string]string{
			"FirstName":    firstName,
			"InviterName":  sc.Email,
			"LovedOneName": lovedOne,
			"Message":      message,
			"AcceptURL":    strings.TrimRight(uc.appURL, "/") + "/invite/" + inv.Token,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Send invitation email %s: %v", inv.ID, err)
		out.EmailFailed = true
	}
	return out, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, caseID string) ([]model.Invitation, error) {
	if _, err := uc.cases.Authorize(ctx, sc, caseID, false); err != nil {
		return nil, err
	}
	invs, err := uc.repo.ListInvitations(ctx, caseID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return nil, err
	}
	return invs, nil
}
