package questionnaire

// Public projections of a questionnaire for respondent-facing reads.
// They carry no answer-key material: no option correctness, no points,
// no creator email. Computed on demand, never persisted.

type PublicQuestionOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type PublicQuestion struct {
	ID      string                 `json:"id"`
	Type    QuestionType           `json:"type"`
	Title   string                 `json:"title"`
	Order   int                    `json:"order"`
	Options []PublicQuestionOption `json:"options,omitempty"`
}

type PublicQuestionnaire struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Scored      bool             `json:"scored"`
	Questions   []PublicQuestion `json:"questions"`
}

// Redact builds the public projection of q. It does not mutate its input
// and preserves question and option order exactly as stored.
func Redact(q *Questionnaire) *PublicQuestionnaire {
	pub := &PublicQuestionnaire{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Scored:      q.Scored,
		Questions:   make([]PublicQuestion, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		pq := PublicQuestion{
			ID:    question.ID,
			Type:  question.Type,
			Title: question.Title,
			Order: question.Order,
		}
		for _, opt := range question.Options {
			pq.Options = append(pq.Options, PublicQuestionOption{ID: opt.ID, Text: opt.Text})
		}
		pub.Questions = append(pub.Questions, pq)
	}
	return pub
}
