// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testsession drives one user through a test session: loading the
// questions, collecting draft answers, submitting them one by one and
// finalizing the session with the server.
//
// [Machine] is the single holder of the session state. Every mutation goes
// through its mutex and every change is published as a [UIState] value, so
// the terminal UI only ever reads immutable snapshots.
package testsession

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/workers"
	"github.com/MKhiriev/go-test-prep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/testsession_mock.go -package=mock

// Repository is the tests data source the machine depends on.
type Repository interface {
	StartTestSession(ctx context.Context, testID int64) (models.TestSession, error)
	GetTestSession(ctx context.Context, sessionID string) (models.TestSession, error)
	SaveAnswer(ctx context.Context, sessionID string, answer models.Answer) (models.AnswerFeedback, error)
	CompleteTestSession(ctx context.Context, sessionID string) (models.TestResult, error)
	SaveSessionProgress(ctx context.Context, progress models.UncompletedSession) error
	GetUncompletedSessions(ctx context.Context) ([]models.UncompletedSession, error)
	RemoveUncompletedSession(ctx context.Context, sessionID string) error
}

// ErrorMapper turns a failure into the message shown to the user.
type ErrorMapper interface {
	Map(ctx context.Context, err error) string
}

// Publisher receives the completion event.
type Publisher interface {
	Publish(ctx context.Context, e event.Event)
}

// Submitter runs fire-and-forget progress saves.
type Submitter interface {
	Submit(ctx context.Context, name string, task workers.Task) error
}
