package http

import (
	"time"

	"honorly/internal/model"
	"honorly/internal/profile"
)

type updateReq struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"max=30"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone}
}

type deleteReq struct {
	Confirm string `json:"confirm"`
}

type profileResp struct {
	UserID    string     `json:"userId"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func newProfileResp(p model.Profile) profileResp {
	resp := profileResp{
		UserID:    p.UserID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

type deleteResp struct {
	Deleted      bool `json:"deleted"`
	CasesDeleted int  `json:"casesDeleted"`
}

func deleteInput(r deleteReq) profile.DeleteAccountInput {
	return profile.DeleteAccountInput{Confirm: r.Confirm}
}
