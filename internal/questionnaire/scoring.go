package questionnaire

// SubmittedAnswer is one answer as sent by a respondent.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"`
}

// Score computes the total score for a set of submitted answers against
// a questionnaire definition. It is pure: no side effects, deterministic
// for the same inputs.
//
// Rules:
//   - Answers referencing unknown question ids contribute 0 and are not
//     an error.
//   - If a question id appears more than once, only the first occurrence
//     counts.
//   - MULTIPLE_CHOICE: the answer text must exactly equal an option's
//     text (case-sensitive, no trimming); if that option is correct, the
//     question's PointsCorrect is added.
//   - OPEN_TEXT contributes 0 unconditionally.
func Score(answers []SubmittedAnswer, q *Questionnaire) int {
	total := 0
	seen := make(map[string]bool, len(answers))
	for _, ans := range answers {
		if seen[ans.QuestionID] {
			continue
		}
		seen[ans.QuestionID] = true

		var question *Question
		for i := range q.Questions {
			if q.Questions[i].ID == ans.QuestionID {
				question = &q.Questions[i]
				break
			}
		}
		if question == nil || question.Type != TypeMultipleChoice {
			continue
		}
		for _, opt := range question.Options {
			if opt.Text == ans.AnswerText {
				if opt.IsCorrect {
					total += question.PointsCorrect
				}
				break
			}
		}
	}
	return total
}
