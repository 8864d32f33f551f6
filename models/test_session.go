// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Test is a catalogue entry the user can start a session for.
type Test struct {
	TestID        int64  `json:"test_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
	DurationMins  int    `json:"duration_mins"`
}

// TestSession is one in-progress attempt at a [Test]. SessionID is an opaque
// server-issued identifier. The order of Questions is fixed once loaded and
// Answers only grows or is replaced per question id.
type TestSession struct {
	SessionID string           `json:"session_id"`
	TestID    int64            `json:"test_id"`
	Questions []Question       `json:"questions"`
	StartedAt time.Time        `json:"started_at"`
	Answers   map[int64]Answer `json:"answers,omitempty"`
}

// TotalPoints sums the points of all questions.
func (s TestSession) TotalPoints() int {
	total := 0
	for _, q := range s.Questions {
		total += q.Points
	}
	return total
}

// Unanswered returns the ids of questions without a recorded answer, in
// question order.
func (s TestSession) Unanswered() []int64 {
	var ids []int64
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; !ok {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// UncompletedSession is the locally persisted progress of a session that was
// left before completion.
type UncompletedSession struct {
	SessionID         string    `json:"session_id"`
	TestID            int64     `json:"test_id"`
	QuestionIndex     int       `json:"question_index"`
	ElapsedTimeMillis int64     `json:"elapsed_time_millis"`
	SavedAt           time.Time `json:"saved_at"`
}
