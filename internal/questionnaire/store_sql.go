package questionnaire

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLStore implements Store on database/sql. Works against both the pgx
// stdlib driver and modernc sqlite ($N placeholders are valid on both).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreateQuestionnaire(ctx context.Context, q *Questionnaire) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO questionnaires (id,title,description,creator_email,scored,shareable_token,created_at,expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		q.ID, q.Title, q.Description, q.CreatorEmail, q.Scored, q.ShareableToken, q.CreatedAt.Unix(), q.ExpiresAt.Unix())
	if err != nil {
		return err
	}
	for _, question := range q.Questions {
		_, err = tx.ExecContext(ctx, `INSERT INTO questions (id,questionnaire_id,type,title,points_correct,ord)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			question.ID, q.ID, string(question.Type), question.Title, question.PointsCorrect, question.Order)
		if err != nil {
			return err
		}
		for _, opt := range question.Options {
			_, err = tx.ExecContext(ctx, `INSERT INTO question_options (id,question_id,text,is_correct)
				VALUES ($1,$2,$3,$4)`,
				opt.ID, question.ID, opt.Text, opt.IsCorrect)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (s *SQLStore) FindByToken(ctx context.Context, token string) (*Questionnaire, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,description,creator_email,scored,shareable_token,created_at,expires_at
		FROM questionnaires WHERE shareable_token=$1`, token)
	var q Questionnaire
	var createdAt, expiresAt int64
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &q.CreatorEmail, &q.Scored, &q.ShareableToken, &createdAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	q.CreatedAt = time.Unix(createdAt, 0).UTC()
	q.ExpiresAt = time.Unix(expiresAt, 0).UTC()

	rows, err := s.db.QueryContext(ctx, `SELECT id,questionnaire_id,type,title,points_correct,ord
		FROM questions WHERE questionnaire_id=$1 ORDER BY ord, id`, q.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	index := map[string]int{}
	for rows.Next() {
		var question Question
		var typ string
		if err := rows.Scan(&question.ID, &question.QuestionnaireID, &typ, &question.Title, &question.PointsCorrect, &question.Order); err != nil {
			return nil, err
		}
		question.Type = QuestionType(typ)
		index[question.ID] = len(q.Questions)
		q.Questions = append(q.Questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	optRows, err := s.db.QueryContext(ctx, `SELECT o.id,o.question_id,o.text,o.is_correct
		FROM question_options o
		JOIN questions qs ON qs.id = o.question_id
		WHERE qs.questionnaire_id=$1 ORDER BY o.id`, q.ID)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()
	for optRows.Next() {
		var opt QuestionOption
		if err := optRows.Scan(&opt.ID, &opt.QuestionID, &opt.Text, &opt.IsCorrect); err != nil {
			return nil, err
		}
		if i, ok := index[opt.QuestionID]; ok {
			q.Questions[i].Options = append(q.Questions[i].Options, opt)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) RunTransaction(ctx context.Context, fn func(tx ResponseTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&sqlResponseTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

type sqlResponseTx struct {
	tx *sql.Tx
}

func (t *sqlResponseTx) CreateResponse(ctx context.Context, r *Response) error {
	_, err := t.tx.ExecContext(ctx, `INSERT INTO responses (id,questionnaire_id,submitted_at,submitter_name,submitter_email,total_score)
		VALUES ($1,$2,$3,$4,$5,NULL)`,
		r.ID, r.QuestionnaireID, r.SubmittedAt.Unix(), r.SubmitterName, r.SubmitterEmail)
	return err
}

func (t *sqlResponseTx) CreateResponseAnswers(ctx context.Context, answers []ResponseAnswer) error {
	for _, a := range answers {
		_, err := t.tx.ExecContext(ctx, `INSERT INTO response_answers (id,response_id,question_id,answer_text)
			VALUES ($1,$2,$3,$4)`,
			a.ID, a.ResponseID, a.QuestionID, a.AnswerText)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *sqlResponseTx) UpdateResponseScore(ctx context.Context, responseID string, totalScore int) error {
	_, err := t.tx.ExecContext(ctx, `UPDATE responses SET total_score=$1 WHERE id=$2`, totalScore, responseID)
	return err
}
