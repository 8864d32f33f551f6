package tui

import (
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the router to Page. A non-nil Payload is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// signedOutNotice is shown on the menu when the login flow starts after a
// logout or an expired session.
type signedOutNotice string

// LogoutResult ends the main loop and sends the user back to the login flow.
type LogoutResult struct{}

// openSessionMsg asks the runner to resume SessionID or, when it is empty,
// to start a new session of TestID.
type openSessionMsg struct {
	SessionID string
	TestID    int64
	Title     string
}

// showResultMsg carries the graded session to the result page.
type showResultMsg struct {
	Title   string
	Result  models.TestResult
	Session models.TestSession
}

type homeLoadedMsg struct {
	tests       []models.Test
	uncompleted []models.UncompletedSession
	err         error
}

type sessionDiscardedMsg struct {
	sessionID string
	err       error
}

// machineDoneMsg reports the end of a blocking state-machine operation.
type machineDoneMsg struct {
	op  string
	err error
}

type elapsedTickMsg struct{}

type articlesLoadedMsg struct {
	articles []models.Article
	err      error
}

// articleUpdatedMsg reports a like toggle (like is true) or a view mark.
type articleUpdatedMsg struct {
	articleID int64
	like      bool
	err       error
}

type leaderboardLoadedMsg struct {
	entries []models.LeaderboardEntry
	err     error
}

type profileLoadedMsg struct {
	info  models.UserInfo
	prefs models.UserPreferences
	err   error
}

type preferencesSavedMsg struct {
	prefs models.UserPreferences
	err   error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

// usernameChangedMsg and themeChangedMsg carry session updates into a
// running program.
type usernameChangedMsg struct{ username string }

type themeChangedMsg struct{ dark bool }
