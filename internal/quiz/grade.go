package quiz

// Result is a graded submission.
type Result struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
	Passed  bool    `json:"passed"`
}

// Grade scores answers, keyed by question ID, against q. Unanswered and
// unknown questions count as wrong. A quiz without questions never passes.
func Grade(q Quiz, answers map[string]string) Result {
	r := Result{Total: len(q.Questions)}
	for _, qu := range q.Questions {
		if answers[qu.ID] == qu.CorrectOptionID {
			r.Correct++
		}
	}
	if r.Total == 0 {
		return r
	}
	r.Percent = float64(r.Correct) / float64(r.Total) * 100
	r.Passed = r.Percent >= q.PassPercent
	return r
}
