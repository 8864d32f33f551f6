// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-layer error taxonomy and the
// user-facing message catalogue shared by the state machine, services and
// the terminal UI.
//
// All Msg* constants are human-readable strings shown to the user. Raw
// causes are logged and never shown.
package app

const (
	// MsgNoConnection is shown for transport failures and timeouts.
	MsgNoConnection = "No network connection or server is unavailable"

	// MsgSessionExpired is shown when the server rejects the access token.
	MsgSessionExpired = "Session expired, please sign in again"

	// MsgAccessDenied is shown when the server forbids the operation.
	MsgAccessDenied = "You do not have access to this resource"

	// MsgNotFound is shown when the requested test, session or article is
	// gone on the server.
	MsgNotFound = "The requested item was not found"

	// MsgConflict is shown when the server rejects a change because the
	// resource already exists or changed meanwhile.
	MsgConflict = "This item already exists or was changed, please refresh"

	// MsgBadRequest is shown when the server rejects the request payload.
	MsgBadRequest = "The server rejected the request, please check your input"

	// MsgSomethingWentWrong is the fallback for every other failure.
	MsgSomethingWentWrong = "Something went wrong, please try again"

	// MsgSelectAnOption is the validation message for an empty choice answer.
	MsgSelectAnOption = "Select at least one option"

	// MsgEnterAnAnswer is the validation message for an empty text answer.
	MsgEnterAnAnswer = "Enter an answer"

	// MsgEnterCode is the validation message for an empty code answer.
	MsgEnterCode = "Enter your code"

	// MsgOptionOutOfRange is the validation message for a selection that does
	// not address an option of the current question.
	MsgOptionOutOfRange = "Selected option does not exist"

	// MsgWrongAnswerType is the validation message for an answer form that
	// does not match the current question type.
	MsgWrongAnswerType = "This question does not accept that kind of answer"

	// MsgAnswerAllQuestions is the validation message for completing a session
	// with unanswered questions.
	MsgAnswerAllQuestions = "Answer all questions before finishing the test"

	// MsgNoActiveSession is the validation message for operations that need a
	// loaded session.
	MsgNoActiveSession = "No test session is in progress"

	// MsgInvalidCredentials is shown when login fails with bad credentials.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgAccountExists is shown when registration hits an existing account.
	MsgAccountExists = "An account with this email or username already exists"

	// MsgAvatarNotSaved is shown when the downloaded avatar cannot be stored.
	MsgAvatarNotSaved = "Could not save the profile picture"
)
