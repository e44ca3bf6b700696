package cases

import (
	"honorly/internal/model"
	"honorly/internal/question"
)

// PathFor maps a case type to its onboarding path.
func PathFor(t model.CaseType) (question.Path, bool) {
	switch t {
	case model.CaseTypeLoss:
		return question.PathRecentLoss, true
	case model.CaseTypePreplan:
		return question.PathPlanningAhead, true
	}
	return "", false
}

type CreateInput struct {
	Type              model.CaseType
	LovedOneFirstName string
	LovedOneLastName  string
}

// CaseDetail is a case as seen by one user.
type CaseDetail struct {
	Case     model.Case
	LovedOne model.LovedOne
	Role     model.MemberRole
}

type ListOutput struct {
	Cases []CaseDetail
}

// Access is the result of an authorization check.
type Access struct {
	Case     model.Case
	LovedOne model.LovedOne
	Role     model.MemberRole
}

// IsOwner reports whether the caller administers the case.
func (a Access) IsOwner() bool { return a.Role == model.RoleAdmin }

type UpdateLovedOneInput struct {
	CaseID    string
	FirstName *string
	LastName  *string
	PhotoRef  *string
}

type PurgeOutput struct {
	CasesDeleted int
	PhotoRefs    []string
}
