package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, cmdArgs ...string) (string, error) {
	t.Helper()
	cmd := planCmd()
	if cmdArgs[0] == "questions" {
		cmd = questionsCmd()
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(cmdArgs[1:])
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanPreview(t *testing.T) {
	answers := filepath.Join(t.TempDir(), "answers.json")
	body := `{
		"loved_one_name": {"first_name": "Rosa", "last_name": "Diaz"},
		"location": {"state": "NY", "county": "Kings"},
		"will_status": "Yes"
	}`
	if err := os.WriteFile(answers, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "plan", "preview", "--path", "recent-loss", "--answers", answers)
	if err != nil {
		t.Fatalf("preview: %v\n%s", err, out)
	}
	for _, want := range []string{
		"CATEGORY",
		"Contact the executor named in Rosa Diaz's will",
		"tasks, completion",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "estate without a will") {
		t.Errorf("will_status=Yes should not produce the no-will task:\n%s", out)
	}
}

func TestPlanPreviewRequiresAnswers(t *testing.T) {
	if _, err := run(t, "plan", "preview", "--path", "recent-loss"); err == nil {
		t.Fatal("expected error without --answers")
	}
}

func TestQuestions(t *testing.T) {
	out, err := run(t, "questions", "--path", "planning-ahead")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if !strings.Contains(out, "id: planning_priorities") {
		t.Errorf("output missing planning_priorities:\n%s", out)
	}

	if _, err := run(t, "questions", "--path", "nowhere"); err == nil {
		t.Fatal("expected error for unknown path")
	}
}
