package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/geass0621/QuizCraft/internal/questionnaire"
)

// ResponseSubmitter is the slice of the response service the handler needs.
type ResponseSubmitter interface {
	Submit(ctx context.Context, req questionnaire.SubmitRequest) (*questionnaire.Response, error)
}

func SubmitResponseHandler(svc ResponseSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload submitResponsePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", "invalid JSON body")
			return
		}
		if problems := payload.validate(); len(problems) > 0 {
			writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", strings.Join(problems, "; "))
			return
		}

		req := questionnaire.SubmitRequest{
			QuestionnaireToken: payload.QuestionnaireToken,
			SubmitterName:      payload.SubmitterName,
			SubmitterEmail:     payload.SubmitterEmail,
		}
		for _, a := range payload.Answers {
			req.Answers = append(req.Answers, questionnaire.SubmittedAnswer{QuestionID: a.QuestionID, AnswerText: a.AnswerText})
		}

		resp, err := svc.Submit(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, questionnaire.ErrTokenRequired):
				writeError(w, http.StatusBadRequest, "Validation error", "VALIDATION_ERROR", err.Error())
			case errors.Is(err, questionnaire.ErrNotFound):
				writeError(w, http.StatusNotFound, "Questionnaire not found", "QUESTIONNAIRE_NOT_FOUND", err.Error())
			case errors.Is(err, questionnaire.ErrExpired):
				writeError(w, http.StatusGone, "Questionnaire has expired", "QUESTIONNAIRE_EXPIRED", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Failed to submit response", "RESPONSE_SUBMISSION_ERROR", err.Error())
			}
			return
		}

		writeSuccess(w, http.StatusCreated, "Response submitted successfully", map[string]interface{}{
			"id":              resp.ID,
			"questionnaireId": resp.QuestionnaireID,
			"submittedAt":     resp.SubmittedAt,
			"totalScore":      resp.TotalScore,
			"submitterName":   resp.SubmitterName,
			"submitterEmail":  resp.SubmitterEmail,
		})
	}
}
