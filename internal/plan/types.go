package plan

import (
	"honorly/internal/model"
	"honorly/internal/question"
)

// DefaultName stands in for the loved one when no name was given.
const DefaultName = "Loved One"

// Template is a rule pairing a task with conditions on the onboarding
// answers. A template without conditions always applies.
type Template struct {
	Title       string               `yaml:"title"`
	Category    model.Category       `yaml:"category"`
	Description string               `yaml:"description"`
	When        []question.Condition `yaml:"when"`
}

// Draft is a task derived from answers, before it is persisted.
type Draft struct {
	Title       string
	Category    model.Category
	Description string
}
