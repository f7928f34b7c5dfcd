package questionnaire

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	QuestionnaireToken string
	SubmitterName      string
	SubmitterEmail     string
	Answers            []SubmittedAnswer
}

// ResponseService records respondent submissions. The whole write — the
// response row, its answers, and the score for scored questionnaires —
// happens in one transaction.
type ResponseService struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewResponseService(store Store) *ResponseService {
	return &ResponseService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit resolves the questionnaire by token (same check order as
// Service.Get), then atomically records the response and its answers and,
// iff the questionnaire is scored, computes and persists the total score
// before commit. Any failure inside the transaction rolls everything
// back: no orphan response row, no partial answer set.
func (s *ResponseService) Submit(ctx context.Context, req SubmitRequest) (*Response, error) {
	q, err := findAccessible(ctx, s.store, req.QuestionnaireToken, s.now())
	if err != nil {
		if IsDomainError(err) {
			return nil, err
		}
		return nil, &SubmissionError{Cause: err}
	}

	resp := &Response{
		ID:              s.newID(),
		QuestionnaireID: q.ID,
		SubmittedAt:     s.now(),
		SubmitterName:   req.SubmitterName,
		SubmitterEmail:  req.SubmitterEmail,
	}
	answers := make([]ResponseAnswer, 0, len(req.Answers))
	for _, ans := range req.Answers {
		answers = append(answers, ResponseAnswer{
			ID:         s.newID(),
			ResponseID: resp.ID,
			QuestionID: ans.QuestionID,
			AnswerText: ans.AnswerText,
		})
	}

	err = s.store.RunTransaction(ctx, func(tx ResponseTx) error {
		if err := tx.CreateResponse(ctx, resp); err != nil {
			return err
		}
		if err := tx.CreateResponseAnswers(ctx, answers); err != nil {
			return err
		}
		if q.Scored {
			total := Score(req.Answers, q)
			if err := tx.UpdateResponseScore(ctx, resp.ID, total); err != nil {
				return err
			}
			resp.TotalScore = &total
		}
		return nil
	})
	if err != nil {
		return nil, &SubmissionError{Cause: err}
	}
	resp.Answers = answers
	return resp, nil
}
