package plan

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"honorly/internal/model"
	"honorly/internal/question"
)

//go:embed templates.yaml
var templatesYAML []byte

// Generator turns onboarding answers into task drafts.
type Generator struct {
	templates []Template
}

// New loads the embedded templates and checks every condition against the
// question catalog.
func New(catalog *question.Catalog) (*Generator, error) {
	return Parse(templatesYAML, catalog)
}

// Parse builds a Generator from YAML templates.
func Parse(data []byte, catalog *question.Catalog) (*Generator, error) {
	var f struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("plan templates: %w", err)
	}

	hasBase := map[model.Category]bool{}
	for i, t := range f.Templates {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("plan templates[%d]: title is required", i)
		}
		if !t.Category.Valid() {
			return nil, fmt.Errorf("plan templates[%d] %q: unknown category %q", i, t.Title, t.Category)
		}
		for _, c := range t.When {
			q, ok := catalog.Lookup(c.Question)
			if !ok {
				return nil, fmt.Errorf("plan templates[%d] %q: unknown question %q", i, t.Title, c.Question)
			}
			if err := c.Validate(q); err != nil {
				return nil, fmt.Errorf("plan templates[%d] %q: %w", i, t.Title, err)
			}
		}
		if len(t.When) == 0 {
			hasBase[t.Category] = true
		}
	}

	for _, c := range model.Categories {
		if c != model.CategoryOther && !hasBase[c] {
			return nil, fmt.Errorf("plan templates: no unconditional template for %q", c)
		}
	}

	return &Generator{templates: f.Templates}, nil
}

// Derive evaluates every template against answers in template order and
// returns the matching drafts with placeholders filled in. Titles are
// deduplicated case-insensitively, keeping the first occurrence. Derive is
// pure: the same answers always give the same drafts.
func (g *Generator) Derive(answers question.AnswerSet) []Draft {
	vars := placeholders(answers)
	seen := make(map[string]bool, len(g.templates))
	drafts := make([]Draft, 0, len(g.templates))

	for _, t := range g.templates {
		if !question.AllHold(t.When, answers) {
			continue
		}
		title := vars.Replace(t.Title)
		key := NormalizeTitle(title)
		if seen[key] {
			continue
		}
		seen[key] = true
		drafts = append(drafts, Draft{
			Title:       title,
			Category:    t.Category,
			Description: vars.Replace(t.Description),
		})
	}
	return drafts
}

// Records shapes drafts into pending, non-custom task records.
func Records(drafts []Draft, caseID, lovedOneID, userID string, now time.Time, newID func() string) []model.Task {
	out := make([]model.Task, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, model.Task{
			ID:              newID(),
			CaseID:          caseID,
			LovedOneID:      lovedOneID,
			Title:           d.Title,
			Category:        d.Category,
			Description:     d.Description,
			Status:          model.TaskStatusPending,
			IsCustom:        false,
			CreatedByUserID: userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return out
}

// NormalizeTitle is the dedup key of a task title.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

func placeholders(answers question.AnswerSet) *strings.Replacer {
	name := DefaultName
	if n, ok := answers.Name(); ok && n.FullName() != "" {
		name = n.FullName()
	}
	place := "your state"
	if l, ok := answers.Location(); ok {
		place = l.Place()
	}
	return strings.NewReplacer("{name}", name, "{place}", place)
}
