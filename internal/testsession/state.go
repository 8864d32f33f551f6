package testsession

import (
	"fmt"

	"github.com/MKhiriev/go-test-prep/models"
)

// Status is the coarse state of the machine.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusInProgress
	StatusSubmitting
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusIdle:       "IDLE",
	StatusLoading:    "LOADING",
	StatusInProgress: "IN_PROGRESS",
	StatusSubmitting: "SUBMITTING",
	StatusCompleted:  "COMPLETED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Draft is the unsubmitted input for the current question. It is dropped
// when the user leaves the question.
type Draft struct {
	SelectedOptions []int
	TextAnswer      string
	CodeAnswer      string
}

// IsEmpty reports whether nothing was entered.
func (d Draft) IsEmpty() bool {
	return len(d.SelectedOptions) == 0 && d.TextAnswer == "" && d.CodeAnswer == ""
}

// Reveal is what the user sees after an answer was accepted.
type Reveal struct {
	Explanation string
	Feedback    string
}

// UIState is an immutable snapshot of the machine. Maps and slices, including
// the questions and answers of Session, are copies owned by the receiver.
// String pointers are shared and must not be written through.
type UIState struct {
	Status       Status
	Session      *models.TestSession
	CurrentIndex int
	Draft        Draft

	// Correctness holds the verdict per question id. A missing entry for an
	// answered question means the server has not graded it yet.
	Correctness map[int64]bool
	Revealed    map[int64]Reveal

	Result       *models.TestResult
	ErrorMessage *string
}

// CurrentQuestion returns the question at CurrentIndex.
func (s UIState) CurrentQuestion() (models.Question, bool) {
	if s.Session == nil || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Session.Questions) {
		return models.Question{}, false
	}
	return s.Session.Questions[s.CurrentIndex], true
}

// IsAnswered reports whether an answer for questionID was recorded.
func (s UIState) IsAnswered(questionID int64) bool {
	if s.Session == nil {
		return false
	}
	_, ok := s.Session.Answers[questionID]
	return ok
}

// AnsweredCount returns the number of recorded answers.
func (s UIState) AnsweredCount() int {
	if s.Session == nil {
		return 0
	}
	return len(s.Session.Answers)
}

// QuestionCount returns the number of questions of the loaded session.
func (s UIState) QuestionCount() int {
	if s.Session == nil {
		return 0
	}
	return len(s.Session.Questions)
}
