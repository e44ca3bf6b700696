package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of date answers.
const DateLayout = "2006-01-02"

// Answer is the value given to one question. Each question type has exactly
// one concrete Answer type.
type Answer interface {
	Type() Type
	Empty() bool
	wire() any
}

// ChoiceAnswer answers a single_select question.
type ChoiceAnswer struct{ Value string }

// ChoicesAnswer answers a multi_select question.
type ChoicesAnswer struct{ Values []string }

// LocationAnswer answers a location question.
type LocationAnswer struct {
	State  string
	County string
}

// NameAnswer answers a name_input question.
type NameAnswer struct {
	FirstName string
	LastName  string
}

// DateAnswer answers a date question.
type DateAnswer struct{ Date time.Time }

// DateOrUnknownAnswer answers a date_or_unknown question.
type DateOrUnknownAnswer struct {
	Date    time.Time
	Unknown bool
}

// FileAnswer answers a photo_upload question with an opaque storage reference.
type FileAnswer struct{ Ref string }

func (ChoiceAnswer) Type() Type        { return TypeSingleSelect }
func (ChoicesAnswer) Type() Type       { return TypeMultiSelect }
func (LocationAnswer) Type() Type      { return TypeLocation }
func (NameAnswer) Type() Type          { return TypeNameInput }
func (DateAnswer) Type() Type          { return TypeDate }
func (DateOrUnknownAnswer) Type() Type { return TypeDateOrUnknown }
func (FileAnswer) Type() Type          { return TypePhotoUpload }

func (a ChoiceAnswer) Empty() bool   { return a.Value == "" }
func (a ChoicesAnswer) Empty() bool  { return len(a.Values) == 0 }
func (a LocationAnswer) Empty() bool { return a.State == "" }
func (a NameAnswer) Empty() bool     { return a.FirstName == "" && a.LastName == "" }
func (a DateAnswer) Empty() bool     { return a.Date.IsZero() }
func (a DateOrUnknownAnswer) Empty() bool {
	return !a.Unknown && a.Date.IsZero()
}
func (a FileAnswer) Empty() bool { return a.Ref == "" }

// FullName joins the name parts with a single space.
func (a NameAnswer) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Place renders "County, State" or just the state.
func (a LocationAnswer) Place() string {
	if a.County == "" {
		return a.State
	}
	county := a.County
	if !strings.HasSuffix(strings.ToLower(county), "county") {
		county += " County"
	}
	return county + ", " + a.State
}

func (a ChoiceAnswer) wire() any  { return a.Value }
func (a ChoicesAnswer) wire() any { return a.Values }
func (a LocationAnswer) wire() any {
	return map[string]string{"state": a.State, "county": a.County}
}
func (a NameAnswer) wire() any {
	return map[string]string{"first_name": a.FirstName, "last_name": a.LastName}
}
func (a DateAnswer) wire() any { return a.Date.Format(DateLayout) }
func (a DateOrUnknownAnswer) wire() any {
	if a.Unknown {
		return map[string]any{"unknown": true}
	}
	return map[string]any{"date": a.Date.Format(DateLayout), "unknown": false}
}
func (a FileAnswer) wire() any { return a.Ref }

// AnswerSet maps question ids to answers for one case.
type AnswerSet map[string]Answer

// Get returns the non-empty answer to id.
func (s AnswerSet) Get(id string) (Answer, bool) {
	a, ok := s[id]
	if !ok || a == nil || a.Empty() {
		return nil, false
	}
	return a, true
}

// Name returns the loved one's name answer.
func (s AnswerSet) Name() (NameAnswer, bool) {
	a, ok := s.Get(IDLovedOneName)
	if !ok {
		return NameAnswer{}, false
	}
	n, ok := a.(NameAnswer)
	return n, ok
}

// Location returns the location answer.
func (s AnswerSet) Location() (LocationAnswer, bool) {
	a, ok := s.Get(IDLocation)
	if !ok {
		return LocationAnswer{}, false
	}
	l, ok := a.(LocationAnswer)
	return l, ok
}

// Merge returns a new set with other's entries layered over s.
func (s AnswerSet) Merge(other AnswerSet) AnswerSet {
	out := make(AnswerSet, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// MarshalJSON writes every answer in its wire shape.
func (s AnswerSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s))
	for id, a := range s {
		if a == nil {
			continue
		}
		out[id] = a.wire()
	}
	return json.Marshal(out)
}

// DecodeAnswerSet reads a stored or submitted answer object, typing each
// entry with the question of the same id. Ids not in questions are dropped.
func DecodeAnswerSet(questions []Question, data []byte) (AnswerSet, error) {
	set := AnswerSet{}
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return set, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: answers must be an object", ErrInvalidAnswer)
	}

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for id, msg := range raw {
		q, ok := byID[id]
		if !ok {
			continue
		}
		a, err := ParseAnswer(q, msg)
		if err != nil {
			return nil, err
		}
		if a != nil {
			set[id] = a
		}
	}
	return set, nil
}

// ParseAnswer validates raw against q and returns the typed answer.
// A JSON null clears the answer and yields (nil, nil).
func ParseAnswer(q Question, raw json.RawMessage) (Answer, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidAnswer, q.ID, fmt.Sprintf(format, args...))
	}

	switch q.Type {
	case TypeSingleSelect:
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected a string")
		}
		v = strings.TrimSpace(v)
		if !q.hasOption(v) {
			return nil, invalid("%q is not an option", v)
		}
		return ChoiceAnswer{Value: v}, nil

	case TypeMultiSelect:
		var vs []string
		if err := json.Unmarshal(trimmed, &vs); err != nil {
			return nil, invalid("expected a list of strings")
		}
		seen := make(map[string]bool, len(vs))
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			v = strings.TrimSpace(v)
			if !q.hasOption(v) {
				return nil, invalid("%q is not an option", v)
			}
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		return ChoicesAnswer{Values: out}, nil

	case TypeLocation:
		var v struct {
			State  string `json:"state"`
			County string `json:"county"`
		}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected {state, county}")
		}
		v.State = strings.TrimSpace(v.State)
		v.County = strings.TrimSpace(v.County)
		if v.State == "" {
			return nil, invalid("state is required")
		}
		if len(v.State) > 100 || len(v.County) > 100 {
			return nil, invalid("location is too long")
		}
		return LocationAnswer{State: v.State, County: v.County}, nil

	case TypeNameInput:
		var v struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected {first_name, last_name}")
		}
		v.FirstName = strings.TrimSpace(v.FirstName)
		v.LastName = strings.TrimSpace(v.LastName)
		if v.FirstName == "" {
			return nil, invalid("first name is required")
		}
		if len(v.FirstName) > 100 || len(v.LastName) > 100 {
			return nil, invalid("name is too long")
		}
		return NameAnswer{FirstName: v.FirstName, LastName: v.LastName}, nil

	case TypeDate:
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected an ISO date string")
		}
		d, err := parseDate(v)
		if err != nil {
			return nil, invalid("%v", err)
		}
		return DateAnswer{Date: d}, nil

	case TypeDateOrUnknown:
		// Accepts "2024-01-31", "unknown", or {"date": "...", "unknown": bool}.
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			if strings.EqualFold(strings.TrimSpace(s), "unknown") {
				return DateOrUnknownAnswer{Unknown: true}, nil
			}
			d, err := parseDate(s)
			if err != nil {
				return nil, invalid("%v", err)
			}
			return DateOrUnknownAnswer{Date: d}, nil
		}
		var v struct {
			Date    string `json:"date"`
			Unknown bool   `json:"unknown"`
		}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected a date or {date, unknown}")
		}
		if v.Unknown {
			return DateOrUnknownAnswer{Unknown: true}, nil
		}
		d, err := parseDate(v.Date)
		if err != nil {
			return nil, invalid("%v", err)
		}
		return DateOrUnknownAnswer{Date: d}, nil

	case TypePhotoUpload:
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, invalid("expected a file reference")
		}
		v = strings.TrimSpace(v)
		if v == "" || len(v) > 512 || strings.Contains(v, "..") {
			return nil, invalid("file reference is not valid")
		}
		return FileAnswer{Ref: v}, nil
	}

	return nil, invalid("unsupported question type %q", q.Type)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, day := d.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%q is not a date (want YYYY-MM-DD)", s)
}
