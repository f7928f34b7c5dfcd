package questionnaire

import "time"

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TypeOpenText       QuestionType = "OPEN_TEXT"
)

type QuestionOption struct {
	ID         string `json:"id"`
	QuestionID string `json:"questionId"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"isCorrect"`
}

type Question struct {
	ID              string           `json:"id"`
	QuestionnaireID string           `json:"questionnaireId"`
	Type            QuestionType     `json:"type"`
	Title           string           `json:"title"`
	PointsCorrect   int              `json:"pointsCorrect,omitempty"` // MULTIPLE_CHOICE only; 0 when absent
	Order           int              `json:"order"`
	Options         []QuestionOption `json:"options,omitempty"`
}

type Questionnaire struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	CreatorEmail   string     `json:"creatorEmail"`
	Scored         bool       `json:"scored"`
	ShareableToken string     `json:"shareableToken"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	Questions      []Question `json:"questions,omitempty"`
}

// Accessible reports whether the questionnaire can still be read or
// answered at the given instant. The boundary is strict: the expiry
// instant itself is still accessible.
func (q *Questionnaire) Accessible(now time.Time) bool {
	return !now.After(q.ExpiresAt)
}

type Response struct {
	ID              string           `json:"id"`
	QuestionnaireID string           `json:"questionnaireId"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	SubmitterName   string           `json:"submitterName,omitempty"`
	SubmitterEmail  string           `json:"submitterEmail,omitempty"`
	TotalScore      *int             `json:"totalScore"` // nil until scored; stays nil for unscored questionnaires
	Answers         []ResponseAnswer `json:"answers,omitempty"`
}

type ResponseAnswer struct {
	ID         string `json:"id"`
	ResponseID string `json:"responseId"`
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"`
}
