package questionnaire

import "context"

// Store is the persistence contract the services depend on.
type Store interface {
	// CreateQuestionnaire inserts q with its full question/option tree in
	// one atomic operation: either the whole tree exists afterwards or
	// none of it does.
	CreateQuestionnaire(ctx context.Context, q *Questionnaire) error

	// FindByToken loads the questionnaire with the given shareable token,
	// including its questions and options. Returns ErrNotFound when no
	// questionnaire has that token.
	FindByToken(ctx context.Context, token string) (*Questionnaire, error)

	// RunTransaction executes fn inside a single transaction. Any error
	// returned by fn rolls the transaction back in full.
	RunTransaction(ctx context.Context, fn func(tx ResponseTx) error) error
}

// ResponseTx is the transactional scope used by the submission path.
type ResponseTx interface {
	CreateResponse(ctx context.Context, r *Response) error
	CreateResponseAnswers(ctx context.Context, answers []ResponseAnswer) error
	UpdateResponseScore(ctx context.Context, responseID string, totalScore int) error
}
