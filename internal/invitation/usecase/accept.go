package usecase

import (
	"context"
	"strings"

	"honorly/internal/invitation"
	repo "honorly/internal/invitation/repository"
	"honorly/internal/model"
)

func (uc *implUseCase) Accept(ctx context.Context, sc model.Scope, token string) (invitation.AcceptOutput, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return invitation.AcceptOutput{}, invitation.ErrInvitationNotFound
	}

	inv, err := uc.repo.GetByToken(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Accept GetByToken: %v", err)
		return invitation.AcceptOutput{}, err
	}
	if inv.ID == "" {
		uc.l.Warnf(ctx, "security: user %s presented an unknown invitation token", sc.UserID)
		return invitation.AcceptOutput{}, invitation.ErrInvitationNotFound
	}

	out := invitation.AcceptOutput{CaseID: inv.CaseID, Role: model.RoleSupport}
	if inv.Status == model.InvitationAccepted {
		if inv.AcceptedByUserID != sc.UserID {
			return invitation.AcceptOutput{}, invitation.ErrInvitationUsed
		}
		// Repeat accepts re-ensure the membership. AddMember is a no-op
		// for existing members.
		if err := uc.cases.AddMember(ctx, inv.CaseID, sc.UserID, model.RoleSupport); err != nil {
			return invitation.AcceptOutput{}, err
		}
		return out, nil
	}
	if inv.Expired(uc.now()) {
		return invitation.AcceptOutput{}, invitation.ErrInvitationExpired
	}
	if !strings.EqualFold(inv.Email, sc.Email) {
		uc.l.Warnf(ctx, "security: user %s tried to accept invitation %s addressed to another email", sc.UserID, inv.ID)
		return invitation.AcceptOutput{}, invitation.ErrEmailMismatch
	}

	// Claim the invitation before granting access so a lost race never
	// leaves a membership behind.
	claim := repo.MarkAcceptedOptions{ID: inv.ID, UserID: sc.UserID, At: uc.now()}
	ok, err := uc.repo.MarkAccepted(ctx, claim)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Accept MarkAccepted: %v", err)
		return invitation.AcceptOutput{}, err
	}
	if !ok {
		uc.l.Infof(ctx, "uc.Accept: invitation %s already claimed", inv.ID)
		return invitation.AcceptOutput{}, invitation.ErrInvitationUsed
	}

	if err := uc.cases.AddMember(ctx, inv.CaseID, sc.UserID, model.RoleSupport); err != nil {
		if rerr := uc.repo.ReleaseAccepted(ctx, claim); rerr != nil {
			uc.l.Errorf(ctx, "uc.Accept ReleaseAccepted %s: %v", inv.ID, rerr)
		}
		return invitation.AcceptOutput{}, err
	}
	return out, nil
}
