package plan_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"honorly/internal/model"
	"honorly/internal/plan"
	"honorly/internal/question"
)

func newGenerator(t *testing.T) *plan.Generator {
	t.Helper()
	g, err := plan.New(question.MustLoadCatalog())
	if err != nil {
		t.Fatalf("plan.New: %v", err)
	}
	return g
}

func titles(drafts []plan.Draft) []string {
	out := make([]string, len(drafts))
	for i, d := range drafts {
		out[i] = d.Title
	}
	return out
}

func hasTitle(drafts []plan.Draft, want string) bool {
	for _, d := range drafts {
		if d.Title == want {
			return true
		}
	}
	return false
}

func TestDeriveEmptyAnswersGivesBaseSet(t *testing.T) {
	drafts := newGenerator(t).Derive(question.AnswerSet{})

	want := []string{
		"Notify close family and friends about Loved One",
		"Choose a funeral home or cremation provider",
		"Write an obituary for Loved One",
		"Plan a memorial service for Loved One",
		"Locate Loved One's will and estate documents",
		"Notify Social Security and other government agencies",
		"Secure Loved One's home, vehicles and valuables",
		"Close or memorialize Loved One's online accounts",
		"Forward or cancel Loved One's mail and subscriptions",
	}
	if diff := cmp.Diff(want, titles(drafts)); diff != "" {
		t.Errorf("base set mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveNameSubstitution(t *testing.T) {
	drafts := newGenerator(t).Derive(question.AnswerSet{
		question.IDLovedOneName: question.NameAnswer{FirstName: "Jane", LastName: "Doe"},
	})

	if !hasTitle(drafts, "Write an obituary for Jane Doe") {
		t.Errorf("expected Jane Doe in titles, got %v", titles(drafts))
	}
	for _, d := range drafts {
		if strings.Contains(d.Title, "{name}") || strings.Contains(d.Description, "{name}") {
			t.Errorf("unresolved placeholder in %+v", d)
		}
		if strings.Contains(d.Title, plan.DefaultName) {
			t.Errorf("fallback name used despite answer: %q", d.Title)
		}
	}
}

func TestDeriveDependents(t *testing.T) {
	g := newGenerator(t)
	const careTask = "Confirm care arrangements for dependents"

	yes := g.Derive(question.AnswerSet{"dependents_status": question.ChoiceAnswer{Value: "Yes"}})
	if !hasTitle(yes, careTask) {
		t.Errorf("dependents=Yes must include %q", careTask)
	}

	no := g.Derive(question.AnswerSet{"dependents_status": question.ChoiceAnswer{Value: "No"}})
	if hasTitle(no, careTask) {
		t.Errorf("dependents=No must not include %q", careTask)
	}
}

func TestDeriveCareStatus(t *testing.T) {
	g := newGenerator(t)
	const arrange = "Arrange immediate care for dependents and pets"

	tests := []struct {
		care string
		want bool
	}{
		{"No", true},
		{"Not sure", true},
		{"Yes", false},
	}
	for _, tt := range tests {
		t.Run(tt.care, func(t *testing.T) {
			drafts := g.Derive(question.AnswerSet{
				"dependents_status": question.ChoiceAnswer{Value: "Yes"},
				"care_status":       question.ChoiceAnswer{Value: tt.care},
			})
			if got := hasTitle(drafts, arrange); got != tt.want {
				t.Errorf("care=%s: has arrange task = %v, want %v", tt.care, got, tt.want)
			}
		})
	}
}

func TestDeriveLocationAndDeathDate(t *testing.T) {
	drafts := newGenerator(t).Derive(question.AnswerSet{
		question.IDLovedOneName: question.NameAnswer{FirstName: "Ana"},
		question.IDLocation:     question.LocationAnswer{State: "NY", County: "Kings"},
		"date_of_death":         question.DateOrUnknownAnswer{Unknown: true},
		"will_status":           question.ChoiceAnswer{Value: "No"},
	})

	for _, want := range []string{
		"Review probate requirements for Kings County, NY",
		"Order certified copies of Ana's death certificate",
		"Confirm the date of death with the funeral home or medical examiner",
		"Consult a probate attorney about an estate without a will",
	} {
		if !hasTitle(drafts, want) {
			t.Errorf("expected %q in %v", want, titles(drafts))
		}
	}
	if hasTitle(drafts, "Contact the executor named in Ana's will") {
		t.Error("executor task requires will_status=Yes")
	}
}

func TestDeriveDeduplicatesTitles(t *testing.T) {
	drafts := newGenerator(t).Derive(question.AnswerSet{
		"planning_priorities": question.ChoicesAnswer{Values: []string{"Will or trust", "Financial accounts"}},
	})

	seen := map[string]bool{}
	for _, d := range drafts {
		key := plan.NormalizeTitle(d.Title)
		if seen[key] {
			t.Errorf("duplicate title %q", d.Title)
		}
		seen[key] = true
	}
	if !hasTitle(drafts, "Make an inventory of Loved One's financial accounts") {
		t.Error("expected financial inventory task")
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	g := newGenerator(t)
	answers := func() question.AnswerSet {
		return question.AnswerSet{
			question.IDLovedOneName: question.NameAnswer{FirstName: "Jane", LastName: "Doe"},
			"dependents_status":     question.ChoiceAnswer{Value: "Yes"},
			"care_status":           question.ChoiceAnswer{Value: "No"},
			"will_status":           question.ChoiceAnswer{Value: "Yes"},
			"planning_priorities":   question.ChoicesAnswer{Values: []string{"Digital accounts and passwords"}},
		}
	}

	first := g.Derive(answers())
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, g.Derive(answers())); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestDeriveCategoriesAreClosed(t *testing.T) {
	g := newGenerator(t)
	sets := []question.AnswerSet{
		{},
		{"dependents_status": question.ChoiceAnswer{Value: "Yes"}, "care_status": question.ChoiceAnswer{Value: "No"}},
		{"planning_priorities": question.ChoicesAnswer{Values: []string{
			"Funeral and memorial wishes", "Will or trust", "Advance healthcare directive",
			"Financial accounts", "Digital accounts and passwords",
		}}},
	}
	for i, s := range sets {
		for _, d := range g.Derive(s) {
			if !d.Category.Valid() {
				t.Errorf("set %d: category %q outside the closed set", i, d.Category)
			}
		}
	}
}

func TestParseRejectsBadTemplates(t *testing.T) {
	catalog := question.MustLoadCatalog()
	base := `
  - {title: a, category: Urgent Needs}
  - {title: b, category: Memorial Planning}
  - {title: c, category: "Legal & Financial"}
  - {title: d, category: Home/Property & Accounts}
`
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown category", "templates:" + base + "  - {title: e, category: Errands}\n"},
		{"unknown question", "templates:" + base + "  - {title: e, category: Other, when: [{question: nope, answered: true}]}\n"},
		{"bad option", "templates:" + base + "  - {title: e, category: Other, when: [{question: will_status, equals: Maybe}]}\n"},
		{"missing base category", "templates:\n  - {title: a, category: Urgent Needs}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := plan.Parse([]byte(tt.yaml), catalog); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRecords(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	newID := func() string { n++; return fmt.Sprintf("t%d", n) }

	recs := plan.Records([]plan.Draft{
		{Title: "Write an obituary for Jane", Category: model.CategoryMemorial},
	}, "case-1", "lo-1", "user-1", now, newID)

	want := []model.Task{{
		ID:              "t1",
		CaseID:          "case-1",
		LovedOneID:      "lo-1",
		Title:           "Write an obituary for Jane",
		Category:        model.CategoryMemorial,
		Status:          model.TaskStatusPending,
		CreatedByUserID: "user-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}
