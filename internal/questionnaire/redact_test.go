package questionnaire

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func internalFixture() *Questionnaire {
	q := scoredFixture()
	q.Title = "Capitals quiz"
	q.Description = "Ten minutes tops"
	q.CreatorEmail = "creator@example.com"
	q.ShareableToken = "tok"
	q.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	q.ExpiresAt = q.CreatedAt.Add(AccessWindow)
	return q
}

func TestRedactDropsAnswerKeyFields(t *testing.T) {
	pub := Redact(internalFixture())

	buf, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, leaked := range []string{"isCorrect", "pointsCorrect", "creatorEmail", "shareableToken"} {
		if bytes.Contains(buf, []byte(leaked)) {
			t.Fatalf("public projection leaks %q: %s", leaked, buf)
		}
	}
}

func TestRedactPreservesOrderAndContent(t *testing.T) {
	q := internalFixture()
	pub := Redact(q)

	if pub.ID != q.ID || pub.Title != q.Title || pub.Description != q.Description || pub.Scored != q.Scored {
		t.Fatalf("public header fields differ from source")
	}
	if len(pub.Questions) != len(q.Questions) {
		t.Fatalf("question count = %d, want %d", len(pub.Questions), len(q.Questions))
	}
	for i, question := range q.Questions {
		got := pub.Questions[i]
		if got.ID != question.ID || got.Type != question.Type || got.Title != question.Title || got.Order != question.Order {
			t.Fatalf("question %d mismatch: %+v vs %+v", i, got, question)
		}
		if len(got.Options) != len(question.Options) {
			t.Fatalf("question %d option count = %d, want %d", i, len(got.Options), len(question.Options))
		}
		for j, opt := range question.Options {
			if got.Options[j].ID != opt.ID || got.Options[j].Text != opt.Text {
				t.Fatalf("question %d option %d mismatch", i, j)
			}
		}
	}
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	q := internalFixture()
	before := *q
	beforeQuestions := make([]Question, len(q.Questions))
	copy(beforeQuestions, q.Questions)

	_ = Redact(q)

	if !reflect.DeepEqual(before, *q) {
		t.Fatalf("Redact mutated the questionnaire header")
	}
	if !reflect.DeepEqual(beforeQuestions, q.Questions) {
		t.Fatalf("Redact mutated questions or options")
	}
	if !q.Questions[0].Options[0].IsCorrect {
		t.Fatalf("Redact cleared the answer key on the source")
	}
}

func TestRedactIdempotent(t *testing.T) {
	q := internalFixture()
	first := Redact(q)
	second := Redact(q)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated redaction produced different projections")
	}
}
