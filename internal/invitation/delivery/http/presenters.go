package http

import (
	"time"

	"honorly/internal/invitation"
	"honorly/internal/model"
)

type sendReq struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"firstName" binding:"max=100"`
	Message   string `json:"message" binding:"max=1000"`
}

func (r sendReq) toInput(caseID string) invitation.SendInput {
	return invitation.SendInput{CaseID: caseID, Email: r.Email, FirstName: r.FirstName, Message: r.Message}
}

// invitationResp never carries the token; it only travels by email.
type invitationResp struct {
	ID         string     `json:"id"`
	CaseID     string     `json:"caseId"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName,omitempty"`
	Status     string     `json:"status"`
	Expired    bool       `json:"expired"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

func newInvitationResp(inv model.Invitation, now time.Time) invitationResp {
	return invitationResp{
		ID:         inv.ID,
		CaseID:     inv.CaseID,
		Email:      inv.Email,
		FirstName:  inv.FirstName,
		Status:     string(inv.Status),
		Expired:    inv.Status == model.InvitationPending && inv.Expired(now),
		CreatedAt:  inv.CreatedAt,
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
	}
}

type sendResp struct {
	Invitation invitationResp `json:"invitation"`
}

type listResp struct {
	Invitations []invitationResp `json:"invitations"`
}

type acceptResp struct {
	CaseID string `json:"caseId"`
	Role   string `json:"role"`
}
