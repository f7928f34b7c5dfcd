package questionnaire

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccessWindow is how long a questionnaire stays publicly accessible
// after creation. Fixed policy; the expiry timestamp is set once at
// creation and never changes.
const AccessWindow = 24 * time.Hour

type CreateOptionInput struct {
	Text      string
	IsCorrect bool
}

type CreateQuestionInput struct {
	Type          QuestionType
	Title         string
	PointsCorrect int
	Order         int
	Options       []CreateOptionInput
}

type CreateRequest struct {
	Title        string
	Description  string
	CreatorEmail string
	Scored       bool
	Questions    []CreateQuestionInput
}

// Service handles questionnaire creation and token-gated retrieval.
type Service struct {
	store    Store
	now      func() time.Time
	newID    func() string
	newToken func() (string, error)
}

func NewService(store Store) *Service {
	return &Service{
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		newToken: NewToken,
	}
}

// Create persists a new questionnaire with its full question/option tree
// atomically, assigning the shareable token and the 24-hour expiry. The
// returned record is the creator's own copy and keeps the answer keys.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Questionnaire, error) {
	token, err := s.newToken()
	if err != nil {
		return nil, &CreationError{Cause: err}
	}
	now := s.now()
	q := &Questionnaire{
		ID:             s.newID(),
		Title:          req.Title,
		Description:    req.Description,
		CreatorEmail:   req.CreatorEmail,
		Scored:         req.Scored,
		ShareableToken: token,
		CreatedAt:      now,
		ExpiresAt:      now.Add(AccessWindow),
	}
	for _, qi := range req.Questions {
		question := Question{
			ID:              s.newID(),
			QuestionnaireID: q.ID,
			Type:            qi.Type,
			Title:           qi.Title,
			PointsCorrect:   qi.PointsCorrect,
			Order:           qi.Order,
		}
		for _, oi := range qi.Options {
			question.Options = append(question.Options, QuestionOption{
				ID:         s.newID(),
				QuestionID: question.ID,
				Text:       oi.Text,
				IsCorrect:  oi.IsCorrect,
			})
		}
		q.Questions = append(q.Questions, question)
	}
	if err := s.store.CreateQuestionnaire(ctx, q); err != nil {
		return nil, &CreationError{Cause: err}
	}
	return q, nil
}

// Get returns the redacted public projection for the questionnaire with
// the given shareable token. Check order is fixed: validation, then
// existence, then expiry.
func (s *Service) Get(ctx context.Context, token string) (*PublicQuestionnaire, error) {
	q, err := findAccessible(ctx, s.store, token, s.now())
	if err != nil {
		return nil, err
	}
	return Redact(q), nil
}

// findAccessible resolves a shareable token to a questionnaire that is
// still within its access window. Shared by the retrieval and submission
// paths so both enforce the same validation -> existence -> expiry order.
func findAccessible(ctx context.Context, store Store, token string, now time.Time) (*Questionnaire, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}
	q, err := store.FindByToken(ctx, token)
	if err != nil {
		if IsDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("find questionnaire: %w", err)
	}
	if !q.Accessible(now) {
		return nil, ErrExpired
	}
	return q, nil
}
