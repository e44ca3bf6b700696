package question

import (
	"fmt"
	"slices"
)

// Condition is a predicate over one earlier answer. Exactly one operator
// field must be set. A condition on an unanswered question is false, except
// `answered: false`.
type Condition struct {
	Question  string   `yaml:"question" json:"question"`
	Equals    string   `yaml:"equals,omitempty" json:"equals,omitempty"`
	NotEquals string   `yaml:"not_equals,omitempty" json:"notEquals,omitempty"`
	OneOf     []string `yaml:"one_of,omitempty" json:"oneOf,omitempty"`
	Includes  string   `yaml:"includes,omitempty" json:"includes,omitempty"`
	Answered  *bool    `yaml:"answered,omitempty" json:"answered,omitempty"`
	KnownDate *bool    `yaml:"known_date,omitempty" json:"knownDate,omitempty"`
}

func (c Condition) clone() Condition {
	c.OneOf = slices.Clone(c.OneOf)
	if c.Answered != nil {
		v := *c.Answered
		c.Answered = &v
	}
	if c.KnownDate != nil {
		v := *c.KnownDate
		c.KnownDate = &v
	}
	return c
}

type operator int

const (
	opNone operator = iota
	opEquals
	opNotEquals
	opOneOf
	opIncludes
	opAnswered
	opKnownDate
)

func (c Condition) operator() (operator, int) {
	op, n := opNone, 0
	if c.Equals != "" {
		op, n = opEquals, n+1
	}
	if c.NotEquals != "" {
		op, n = opNotEquals, n+1
	}
	if len(c.OneOf) > 0 {
		op, n = opOneOf, n+1
	}
	if c.Includes != "" {
		op, n = opIncludes, n+1
	}
	if c.Answered != nil {
		op, n = opAnswered, n+1
	}
	if c.KnownDate != nil {
		op, n = opKnownDate, n+1
	}
	return op, n
}

// Validate checks the condition is well formed for the target question.
func (c Condition) Validate(target Question) error {
	if c.Question != target.ID {
		return fmt.Errorf("condition targets %q, got question %q", c.Question, target.ID)
	}
	op, n := c.operator()
	if n != 1 {
		return fmt.Errorf("condition on %q must set exactly one operator", c.Question)
	}

	switch op {
	case opEquals, opNotEquals, opOneOf:
		if target.Type != TypeSingleSelect {
			return fmt.Errorf("condition on %q: equality needs a single_select question", c.Question)
		}
		for _, v := range append([]string{c.Equals, c.NotEquals}, c.OneOf...) {
			if v != "" && !target.hasOption(v) {
				return fmt.Errorf("condition on %q: %q is not an option", c.Question, v)
			}
		}
	case opIncludes:
		if target.Type != TypeMultiSelect {
			return fmt.Errorf("condition on %q: includes needs a multi_select question", c.Question)
		}
		if !target.hasOption(c.Includes) {
			return fmt.Errorf("condition on %q: %q is not an option", c.Question, c.Includes)
		}
	case opKnownDate:
		if target.Type != TypeDate && target.Type != TypeDateOrUnknown {
			return fmt.Errorf("condition on %q: known_date needs a date question", c.Question)
		}
	}
	return nil
}

// Eval evaluates the condition against answers.
func (c Condition) Eval(answers AnswerSet) bool {
	op, _ := c.operator()
	a, answered := answers.Get(c.Question)

	if op == opAnswered {
		return answered == *c.Answered
	}
	if !answered {
		return false
	}

	switch v := a.(type) {
	case ChoiceAnswer:
		switch op {
		case opEquals:
			return v.Value == c.Equals
		case opNotEquals:
			return v.Value != c.NotEquals
		case opOneOf:
			for _, o := range c.OneOf {
				if v.Value == o {
					return true
				}
			}
		}
		return false
	case ChoicesAnswer:
		if op == opIncludes {
			for _, s := range v.Values {
				if s == c.Includes {
					return true
				}
			}
		}
		return false
	case DateAnswer:
		return op == opKnownDate && *c.KnownDate
	case DateOrUnknownAnswer:
		return op == opKnownDate && *c.KnownDate == !v.Unknown
	case LocationAnswer, NameAnswer, FileAnswer:
		return false
	}
	return false
}

// AllHold reports whether every condition holds. An empty list holds.
func AllHold(conds []Condition, answers AnswerSet) bool {
	for _, c := range conds {
		if !c.Eval(answers) {
			return false
		}
	}
	return true
}
