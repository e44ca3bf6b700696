package question

import "slices"

// Type is the answer shape a question expects.
type Type string

const (
	TypeLocation      Type = "location"
	TypeSingleSelect  Type = "single_select"
	TypeMultiSelect   Type = "multi_select"
	TypeDate          Type = "date"
	TypeDateOrUnknown Type = "date_or_unknown"
	TypeNameInput     Type = "name_input"
	TypePhotoUpload   Type = "photo_upload"
)

func (t Type) valid() bool {
	switch t {
	case TypeLocation, TypeSingleSelect, TypeMultiSelect, TypeDate, TypeDateOrUnknown, TypeNameInput, TypePhotoUpload:
		return true
	}
	return false
}

// Path names an intake sequence.
type Path string

const (
	PathRecentLoss    Path = "recent-loss"
	PathPlanningAhead Path = "planning-ahead"
)

// Well-known question ids read outside the wizard.
const (
	IDLovedOneName = "loved_one_name"
	IDLocation     = "location"
	IDPhoto        = "loved_one_photo"
)

// Question is one wizard step. Questions are immutable once loaded.
type Question struct {
	ID       string     `yaml:"id" json:"id"`
	Label    string     `yaml:"label" json:"label"`
	Help     string     `yaml:"help,omitempty" json:"help,omitempty"`
	Type     Type       `yaml:"type" json:"type"`
	Options  []string   `yaml:"options,omitempty" json:"options,omitempty"`
	Required bool       `yaml:"required" json:"required"`
	ShowIf   *Condition `yaml:"show_if,omitempty" json:"showIf,omitempty"`
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	if q.ShowIf != nil {
		cond := q.ShowIf.clone()
		q.ShowIf = &cond
	}
	return q
}

func (q Question) hasOption(v string) bool {
	for _, o := range q.Options {
		if o == v {
			return true
		}
	}
	return false
}
