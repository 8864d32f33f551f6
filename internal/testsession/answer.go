package testsession

import (
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/models"
)

var (
	ErrNoActiveSession     = errors.New("no active test session")
	ErrBusy                = errors.New("test session is busy")
	ErrWrongQuestionType   = errors.New("question does not accept this answer form")
	ErrOptionOutOfRange    = errors.New("option index out of range")
	ErrEmptyAnswer         = errors.New("empty answer")
	ErrUnansweredQuestions = errors.New("not every question has an answer")
	ErrUnknownQuestion     = errors.New("unknown question")
)

func validationError(msg string, cause error) error {
	return app.New(app.KindValidation, app.WithMessage(msg), app.WithCause(cause))
}

// buildAnswer turns the draft for q into an Answer.
func buildAnswer(q models.Question, d Draft) (models.Answer, error) {
	answer := models.Answer{QuestionID: q.ID}

	switch q.Type {
	case models.MultipleChoice, models.SingleChoice:
		if len(d.SelectedOptions) == 0 {
			return models.Answer{}, validationError(app.MsgSelectAnOption, ErrEmptyAnswer)
		}
		for _, idx := range d.SelectedOptions {
			if !q.HasOption(idx) {
				return models.Answer{}, validationError(app.MsgOptionOutOfRange, ErrOptionOutOfRange)
			}
		}
		answer.SelectedOptions = slices.Clone(d.SelectedOptions)
	case models.TextQuestion:
		if strings.TrimSpace(d.TextAnswer) == "" {
			return models.Answer{}, validationError(app.MsgEnterAnAnswer, ErrEmptyAnswer)
		}
		text := d.TextAnswer
		answer.TextAnswer = &text
	case models.CodeQuestion:
		if strings.TrimSpace(d.CodeAnswer) == "" {
			return models.Answer{}, validationError(app.MsgEnterCode, ErrEmptyAnswer)
		}
		code := d.CodeAnswer
		answer.CodeAnswer = &code
	default:
		return models.Answer{}, validationError(app.MsgWrongAnswerType, ErrWrongQuestionType)
	}

	return answer, nil
}

// classify decides correctness locally. ok is false for free-form types,
// which only the server can grade.
func classify(q models.Question, a models.Answer) (correct, ok bool) {
	switch q.Type {
	case models.MultipleChoice, models.SingleChoice:
		return models.SameOptions(a.SelectedOptions, q.CorrectOptions), true
	case models.TextQuestion, models.CodeQuestion:
		return false, false
	default:
		return false, false
	}
}

// toggle adds idx to a sorted selection or removes it when present.
func toggle(selected []int, idx int) []int {
	if i, found := slices.BinarySearch(selected, idx); found {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	out := append(slices.Clone(selected), idx)
	slices.Sort(out)
	return out
}

func clamp(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}
