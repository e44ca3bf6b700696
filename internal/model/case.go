package model

import "time"

// CaseType distinguishes a recent loss from planning ahead.
type CaseType string

const (
	CaseTypeLoss    CaseType = "LOSS"
	CaseTypePreplan CaseType = "PREPLAN"
)

// MemberRole is the privilege level of a user on a case.
type MemberRole string

const (
	RoleAdmin   MemberRole = "admin"
	RoleSupport MemberRole = "support"
)

// Case is a tracked engagement owned by the user who created it.
type Case struct {
	ID          string
	Type        CaseType
	Path        string
	OwnerUserID string
	LovedOneID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LovedOne is the person the case is about.
type LovedOne struct {
	ID        string
	CaseID    string
	FirstName string
	LastName  string
	PhotoRef  string
}

// FullName joins the non-empty name parts.
func (l LovedOne) FullName() string {
	switch {
	case l.FirstName != "" && l.LastName != "":
		return l.FirstName + " " + l.LastName
	case l.FirstName != "":
		return l.FirstName
	default:
		return l.LastName
	}
}

// Member links a user to a case with a role.
type Member struct {
	CaseID    string
	UserID    string
	Role      MemberRole
	CreatedAt time.Time
}
