package question

// Visible filters questions down to those whose show_if holds.
func Visible(questions []Question, answers AnswerSet) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ShowIf == nil || q.ShowIf.Eval(answers) {
			out = append(out, q)
		}
	}
	return out
}

// CompletionPct is answered visible questions over visible questions, as a
// whole percentage rounded down so 100 means every visible question has an
// answer.
func CompletionPct(questions []Question, answers AnswerSet) int {
	visible := Visible(questions, answers)
	if len(visible) == 0 {
		return 100
	}
	answered := 0
	for _, q := range visible {
		if _, ok := answers.Get(q.ID); ok {
			answered++
		}
	}
	return answered * 100 / len(visible)
}

// Missing lists the required visible questions that have no answer.
func Missing(questions []Question, answers AnswerSet) []string {
	var out []string
	for _, q := range Visible(questions, answers) {
		if !q.Required {
			continue
		}
		if _, ok := answers.Get(q.ID); !ok {
			out = append(out, q.ID)
		}
	}
	return out
}
