package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geass0621/QuizCraft/internal/questionnaire"
)

// QuestionnaireService is the slice of the questionnaire service the
// handlers need.
type QuestionnaireService interface {
	Create(ctx context.Context, req questionnaire.CreateRequest) (*questionnaire.Questionnaire, error)
	Get(ctx context.Context, token string) (*questionnaire.PublicQuestionnaire, error)
}

func CreateQuestionnaireHandler(svc QuestionnaireService, frontendURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createQuestionnairePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", "invalid JSON body")
			return
		}
		if problems := payload.validate(); len(problems) > 0 {
			writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", strings.Join(problems, "; "))
			return
		}

		q, err := svc.Create(r.Context(), payload.toRequest())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create questionnaire", "QUESTIONNAIRE_CREATION_ERROR", err.Error())
			return
		}

		writeSuccess(w, http.StatusCreated, "Questionnaire created successfully", map[string]interface{}{
			"id":             q.ID,
			"shareableToken": q.ShareableToken,
			"questionCount":  len(q.Questions),
			"description":    q.Description,
			"expiresAt":      q.ExpiresAt,
			"shareableUrl":   frontendURL + "/quiz/" + q.ShareableToken,
		})
	}
}

func GetQuestionnaireHandler(svc QuestionnaireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "shareableToken")

		pub, err := svc.Get(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, questionnaire.ErrTokenRequired):
				writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", err.Error())
			case errors.Is(err, questionnaire.ErrNotFound):
				writeError(w, http.StatusNotFound, "Questionnaire not found", "QUESTIONNAIRE_NOT_FOUND", err.Error())
			case errors.Is(err, questionnaire.ErrExpired):
				writeError(w, http.StatusGone, "Questionnaire has expired", "QUESTIONNAIRE_EXPIRED", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Failed to retrieve questionnaire", "QUESTIONNAIRE_RETRIEVAL_ERROR", err.Error())
			}
			return
		}
		writeSuccess(w, http.StatusOK, "Questionnaire retrieved successfully", pub)
	}
}
