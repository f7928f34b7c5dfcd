package questionnaire

import "testing"

// scoredFixture builds a scored questionnaire with one multiple-choice
// question (option "A" correct, worth 5 points; "B" incorrect) and one
// open-text question.
func scoredFixture() *Questionnaire {
	return &Questionnaire{
		ID:     "QN1",
		Scored: true,
		Questions: []Question{
			{
				ID:            "Q1",
				Type:          TypeMultipleChoice,
				Title:         "Pick one",
				PointsCorrect: 5,
				Order:         0,
				Options: []QuestionOption{
					{ID: "O1", QuestionID: "Q1", Text: "A", IsCorrect: true},
					{ID: "O2", QuestionID: "Q1", Text: "B", IsCorrect: false},
				},
			},
			{ID: "Q2", Type: TypeOpenText, Title: "Say anything", Order: 1},
		},
	}
}

func TestScore(t *testing.T) {
	q := scoredFixture()
	cases := []struct {
		name    string
		answers []SubmittedAnswer
		want    int
	}{
		{"correct choice plus open text", []SubmittedAnswer{
			{QuestionID: "Q1", AnswerText: "A"},
			{QuestionID: "Q2", AnswerText: "anything"},
		}, 5},
		{"wrong choice", []SubmittedAnswer{{QuestionID: "Q1", AnswerText: "B"}}, 0},
		{"open text only", []SubmittedAnswer{{QuestionID: "Q2", AnswerText: "essay"}}, 0},
		{"unknown question id", []SubmittedAnswer{{QuestionID: "NOPE", AnswerText: "A"}}, 0},
		{"case sensitive match", []SubmittedAnswer{{QuestionID: "Q1", AnswerText: "a"}}, 0},
		{"no trimming", []SubmittedAnswer{{QuestionID: "Q1", AnswerText: " A"}}, 0},
		{"no answers", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Score(c.answers, q); got != c.want {
				t.Fatalf("Score()=%d, want %d", got, c.want)
			}
		})
	}
}

func TestScoreDuplicateAnswersFirstWins(t *testing.T) {
	q := scoredFixture()

	got := Score([]SubmittedAnswer{
		{QuestionID: "Q1", AnswerText: "B"},
		{QuestionID: "Q1", AnswerText: "A"},
	}, q)
	if got != 0 {
		t.Fatalf("first occurrence should win: got %d, want 0", got)
	}

	got = Score([]SubmittedAnswer{
		{QuestionID: "Q1", AnswerText: "A"},
		{QuestionID: "Q1", AnswerText: "A"},
	}, q)
	if got != 5 {
		t.Fatalf("duplicate correct answers must not double count: got %d, want 5", got)
	}
}

func TestScoreAbsentPointsCountAsZero(t *testing.T) {
	q := &Questionnaire{
		Scored: true,
		Questions: []Question{
			{
				ID:   "Q1",
				Type: TypeMultipleChoice,
				Options: []QuestionOption{
					{ID: "O1", Text: "yes", IsCorrect: true},
					{ID: "O2", Text: "no"},
				},
			},
		},
	}
	if got := Score([]SubmittedAnswer{{QuestionID: "Q1", AnswerText: "yes"}}, q); got != 0 {
		t.Fatalf("Score()=%d, want 0 when pointsCorrect is absent", got)
	}
}

func TestScoreBoundedByMaximum(t *testing.T) {
	q := scoredFixture()
	q.Questions = append(q.Questions, Question{
		ID:            "Q3",
		Type:          TypeMultipleChoice,
		PointsCorrect: 3,
		Order:         2,
		Options: []QuestionOption{
			{ID: "O3", QuestionID: "Q3", Text: "X", IsCorrect: true},
			{ID: "O4", QuestionID: "Q3", Text: "Y"},
		},
	})
	got := Score([]SubmittedAnswer{
		{QuestionID: "Q1", AnswerText: "A"},
		{QuestionID: "Q3", AnswerText: "X"},
		{QuestionID: "Q2", AnswerText: "free text"},
	}, q)
	if got != 8 {
		t.Fatalf("Score()=%d, want 8", got)
	}
	if got < 0 || got > 8 {
		t.Fatalf("score %d outside [0, 8]", got)
	}
}
