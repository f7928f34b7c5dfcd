package questionnaire

import (
	"context"
	"errors"
)

// stubStore is an in-memory Store for service tests. RunTransaction
// stages writes and applies them only when fn succeeds, mirroring the
// rollback behavior of the SQL store.
type stubStore struct {
	byToken map[string]*Questionnaire

	createErr  error
	findErr    error
	answersErr error

	responses []*Response
	answers   []ResponseAnswer
}

func newStubStore() *stubStore {
	return &stubStore{byToken: map[string]*Questionnaire{}}
}

func (s *stubStore) CreateQuestionnaire(ctx context.Context, q *Questionnaire) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.byToken[q.ShareableToken]; exists {
		return errors.New("duplicate shareable token")
	}
	s.byToken[q.ShareableToken] = q
	return nil
}

func (s *stubStore) FindByToken(ctx context.Context, token string) (*Questionnaire, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	q, ok := s.byToken[token]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

func (s *stubStore) RunTransaction(ctx context.Context, fn func(tx ResponseTx) error) error {
	tx := &stubTx{store: s}
	if err := fn(tx); err != nil {
		return err
	}
	s.responses = append(s.responses, tx.responses...)
	s.answers = append(s.answers, tx.answers...)
	return nil
}

type stubTx struct {
	store     *stubStore
	responses []*Response
	answers   []ResponseAnswer
}

func (t *stubTx) CreateResponse(ctx context.Context, r *Response) error {
	cp := *r
	t.responses = append(t.responses, &cp)
	return nil
}

func (t *stubTx) CreateResponseAnswers(ctx context.Context, answers []ResponseAnswer) error {
	if t.store.answersErr != nil {
		return t.store.answersErr
	}
	t.answers = append(t.answers, answers...)
	return nil
}

func (t *stubTx) UpdateResponseScore(ctx context.Context, responseID string, totalScore int) error {
	for _, r := range t.responses {
		if r.ID == responseID {
			v := totalScore
			r.TotalScore = &v
			return nil
		}
	}
	return errors.New("response not staged")
}
