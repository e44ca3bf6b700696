package repository

import "honorly/internal/model"

// CreateCaseOptions inserts a case, its loved one and the owner membership
// together.
type CreateCaseOptions struct {
	Case     model.Case
	LovedOne model.LovedOne
	Owner    model.Member
}

// UpdateLovedOneOptions updates only the non-nil fields.
type UpdateLovedOneOptions struct {
	CaseID    string
	FirstName *string
	LastName  *string
	PhotoRef  *string
}

// CaseRow is a case joined with its loved one and the reader's role.
type CaseRow struct {
	Case     model.Case
	LovedOne model.LovedOne
	Role     model.MemberRole
}

// DeletedCases reports what DeleteCasesByOwner removed.
type DeletedCases struct {
	Count     int
	PhotoRefs []string
}
