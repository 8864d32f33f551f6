// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// QuestionType defines how a question is answered and therefore which field
// of [Answer] carries the user's response.
type QuestionType int

const (
	// MultipleChoice allows any subset of Options to be selected.
	MultipleChoice QuestionType = iota + 1

	// SingleChoice allows exactly one of Options to be selected.
	SingleChoice

	// TextQuestion is answered with free-form text.
	TextQuestion

	// CodeQuestion is answered with a code snippet.
	CodeQuestion
)

var questionTypeNames = map[QuestionType]string{
	MultipleChoice: "MULTIPLE_CHOICE",
	SingleChoice:   "SINGLE_CHOICE",
	TextQuestion:   "TEXT",
	CodeQuestion:   "CODE",
}

// String returns the wire name of the question type (e.g. "SINGLE_CHOICE").
func (t QuestionType) String() string {
	if name, ok := questionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("QuestionType(%d)", int(t))
}

// IsChoice reports whether answers to this question type are option indices.
func (t QuestionType) IsChoice() bool {
	return t == MultipleChoice || t == SingleChoice
}

// ParseQuestionType converts a wire name back to a [QuestionType].
func ParseQuestionType(name string) (QuestionType, error) {
	for t, n := range questionTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown question type %q", name)
}

// MarshalJSON encodes the type by its wire name.
func (t QuestionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the type from its wire name.
func (t *QuestionType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}

	parsed, err := ParseQuestionType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Question is a single item of a test session.
type Question struct {
	// ID is the server-side identifier of the question.
	ID int64 `json:"id"`

	// Text is the question wording shown to the user.
	Text string `json:"text"`

	// Type selects the answer form.
	Type QuestionType `json:"type"`

	// Options lists the selectable answers. Empty unless Type is a choice type.
	Options []string `json:"options,omitempty"`

	// CorrectOptions holds the indices into Options that form the correct
	// answer. Empty unless Type is a choice type.
	CorrectOptions []int `json:"correct_options,omitempty"`

	// SampleCode is an optional snippet shown together with the question.
	SampleCode *string `json:"sample_code,omitempty"`

	// Points is the weight of the question in the final score.
	Points int `json:"points"`

	// Explanation is revealed after the answer has been submitted.
	Explanation string `json:"explanation"`
}

// HasOption reports whether index addresses one of the question options.
func (q Question) HasOption(index int) bool {
	return index >= 0 && index < len(q.Options)
}
