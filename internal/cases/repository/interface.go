package repository

import (
	"context"

	"honorly/internal/model"
)

// Repository is the composed interface for the cases data store.
type Repository interface {
	CaseRepository
	MemberRepository
}

// CaseRepository covers cases and their loved one.
type CaseRepository interface {
	CreateCase(ctx context.Context, opt CreateCaseOptions) error
	GetCase(ctx context.Context, id string) (model.Case, error)
	GetLovedOne(ctx context.Context, caseID string) (model.LovedOne, error)
	UpdateLovedOne(ctx context.Context, opt UpdateLovedOneOptions) error
	ListCasesForUser(ctx context.Context, userID string) ([]CaseRow, error)
	DeleteCasesByOwner(ctx context.Context, ownerUserID string) (DeletedCases, error)
}

// MemberRepository covers case membership.
type MemberRepository interface {
	GetMember(ctx context.Context, caseID, userID string) (model.Member, error)
	AddMember(ctx context.Context, m model.Member) error
	DeleteMembershipsByUser(ctx context.Context, userID string) error
}
