// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Answer is the user's response to one question. Exactly one of the three
// answer forms is meaningful, selected by the question type:
// SelectedOptions for choice questions, TextAnswer for TEXT and CodeAnswer
// for CODE.
type Answer struct {
	QuestionID      int64   `json:"question_id"`
	SelectedOptions []int   `json:"selected_options,omitempty"`
	TextAnswer      *string `json:"text_answer,omitempty"`
	CodeAnswer      *string `json:"code_answer,omitempty"`
}

// AnswerFeedback is the server reply to a saved answer. IsCorrect is nil
// while a free-form answer waits for review.
type AnswerFeedback struct {
	QuestionID int64  `json:"question_id"`
	IsCorrect  *bool  `json:"is_correct,omitempty"`
	Feedback   string `json:"feedback,omitempty"`
}

// SameOptions reports whether a and b contain the same option indices,
// ignoring order and duplicates.
func SameOptions(a, b []int) bool {
	return slices.Equal(normalizeOptions(a), normalizeOptions(b))
}

func normalizeOptions(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
