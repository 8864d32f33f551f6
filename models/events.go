package models

const (
	EventNameTestSessionCompleted = "test_session.completed"
	EventNameLoggedOut            = "session.logged_out"
)

// EventTestSessionCompleted is published once the server has graded a
// session.
type EventTestSessionCompleted struct {
	SessionID string
	Result    TestResult
}

func (EventTestSessionCompleted) Name() string { return EventNameTestSessionCompleted }

// EventLoggedOut is published after the local session has been cleared.
type EventLoggedOut struct {
	UserID int64
}

func (EventLoggedOut) Name() string { return EventNameLoggedOut }
