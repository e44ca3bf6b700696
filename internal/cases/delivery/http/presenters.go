package http

import (
	"time"

	"honorly/internal/cases"
	"honorly/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Type     string `json:"type" binding:"required,oneof=LOSS PREPLAN"`
	LovedOne struct {
		FirstName string `json:"firstName" binding:"max=100"`
		LastName  string `json:"lastName"  binding:"max=100"`
	} `json:"lovedOne"`
}

func (r createReq) toInput() cases.CreateInput {
	return cases.CreateInput{
		Type:              model.CaseType(r.Type),
		LovedOneFirstName: r.LovedOne.FirstName,
		LovedOneLastName:  r.LovedOne.LastName,
	}
}

// --- Response DTOs ---

type lovedOneResp struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	PhotoRef  string `json:"photoRef,omitempty"`
}

type caseResp struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Path      string       `json:"path"`
	Role      string       `json:"role"`
	IsOwner   bool         `json:"isOwner"`
	LovedOne  lovedOneResp `json:"lovedOne"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func newCaseResp(d cases.CaseDetail) caseResp {
	return caseResp{
		ID:      d.Case.ID,
		Type:    string(d.Case.Type),
		Path:    d.Case.Path,
		Role:    string(d.Role),
		IsOwner: d.Role == model.RoleAdmin,
		LovedOne: lovedOneResp{
			ID:        d.LovedOne.ID,
			FirstName: d.LovedOne.FirstName,
			LastName:  d.LovedOne.LastName,
			FullName:  d.LovedOne.FullName(),
			PhotoRef:  d.LovedOne.PhotoRef,
		},
		CreatedAt: d.Case.CreatedAt,
		UpdatedAt: d.Case.UpdatedAt,
	}
}

type detailResp struct {
	Case caseResp `json:"case"`
}

type listResp struct {
	Cases []caseResp `json:"cases"`
}

func newListResp(out cases.ListOutput) listResp {
	items := make([]caseResp, len(out.Cases))
	for i, d := range out.Cases {
		items[i] = newCaseResp(d)
	}
	return listResp{Cases: items}
}
