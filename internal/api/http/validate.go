package http

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/geass0621/QuizCraft/internal/questionnaire"
)

type createOptionPayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type createQuestionPayload struct {
	Type          string                `json:"type"`
	Title         string                `json:"title"`
	PointsCorrect *int                  `json:"pointsCorrect"`
	Order         *int                  `json:"order"`
	Options       []createOptionPayload `json:"options"`
}

type createQuestionnairePayload struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	CreatorEmail string                  `json:"creatorEmail"`
	Scored       bool                    `json:"scored"`
	Questions    []createQuestionPayload `json:"questions"`
}

func (p createQuestionnairePayload) validate() []string {
	var problems []string
	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title is required")
	}
	if p.CreatorEmail == "" {
		problems = append(problems, "creatorEmail is required")
	} else if _, err := mail.ParseAddress(p.CreatorEmail); err != nil {
		problems = append(problems, "creatorEmail must be a valid email address")
	}
	if len(p.Questions) == 0 {
		problems = append(problems, "at least one question is required")
	}
	for i, q := range p.Questions {
		problems = append(problems, q.validate(i)...)
	}
	return problems
}

func (p createQuestionPayload) validate(i int) []string {
	var problems []string
	prefix := "questions[" + strconv.Itoa(i) + "]: "
	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, prefix+"title is required")
	}
	switch questionnaire.QuestionType(p.Type) {
	case questionnaire.TypeMultipleChoice:
		if len(p.Options) < 2 {
			problems = append(problems, prefix+"multiple choice questions need at least 2 options")
		}
		for j, opt := range p.Options {
			if strings.TrimSpace(opt.Text) == "" {
				problems = append(problems, prefix+"options["+strconv.Itoa(j)+"]: text is required")
			}
		}
	case questionnaire.TypeOpenText:
		if len(p.Options) > 0 {
			problems = append(problems, prefix+"open text questions must not have options")
		}
	default:
		problems = append(problems, prefix+"type must be MULTIPLE_CHOICE or OPEN_TEXT")
	}
	if p.PointsCorrect != nil && *p.PointsCorrect < 0 {
		problems = append(problems, prefix+"pointsCorrect must be a non-negative integer")
	}
	if p.Order == nil || *p.Order < 0 {
		problems = append(problems, prefix+"order must be a non-negative integer")
	}
	return problems
}

func (p createQuestionnairePayload) toRequest() questionnaire.CreateRequest {
	req := questionnaire.CreateRequest{
		Title:        p.Title,
		Description:  p.Description,
		CreatorEmail: p.CreatorEmail,
		Scored:       p.Scored,
	}
	for _, q := range p.Questions {
		in := questionnaire.CreateQuestionInput{
			Type:  questionnaire.QuestionType(q.Type),
			Title: q.Title,
		}
		if q.PointsCorrect != nil {
			in.PointsCorrect = *q.PointsCorrect
		}
		if q.Order != nil {
			in.Order = *q.Order
		}
		for _, opt := range q.Options {
			in.Options = append(in.Options, questionnaire.CreateOptionInput{Text: opt.Text, IsCorrect: opt.IsCorrect})
		}
		req.Questions = append(req.Questions, in)
	}
	return req
}

type submitAnswerPayload struct {
	QuestionID string `json:"questionId"`
	AnswerText string `json:"answerText"`
}

type submitResponsePayload struct {
	QuestionnaireToken string                `json:"questionnaireToken"`
	SubmitterName      string                `json:"submitterName"`
	SubmitterEmail     string                `json:"submitterEmail"`
	Answers            []submitAnswerPayload `json:"answers"`
}

func (p submitResponsePayload) validate() []string {
	var problems []string
	if p.QuestionnaireToken == "" {
		problems = append(problems, "questionnaireToken is required")
	}
	if len(p.Answers) == 0 {
		problems = append(problems, "at least one answer is required")
	}
	for i, a := range p.Answers {
		if a.QuestionID == "" {
			problems = append(problems, "answers["+strconv.Itoa(i)+"]: questionId is required")
		}
		if a.AnswerText == "" {
			problems = append(problems, "answers["+strconv.Itoa(i)+"]: answerText is required")
		}
	}
	if len(p.SubmitterName) > 100 {
		problems = append(problems, "submitterName must be at most 100 characters")
	}
	if p.SubmitterEmail != "" {
		if _, err := mail.ParseAddress(p.SubmitterEmail); err != nil {
			problems = append(problems, "submitterEmail must be a valid email address")
		}
	}
	return problems
}

