package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/mock"
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildPickerItems(t *testing.T) {
	tests := []models.Test{
		{TestID: 1, Title: "Go basics", QuestionCount: 10},
		{TestID: 2, Title: "Concurrency", QuestionCount: 8},
	}
	uncompleted := []models.UncompletedSession{
		{SessionID: "s-2", TestID: 2, QuestionIndex: 3},
		{SessionID: "s-9", TestID: 9},
	}

	items := buildPickerItems(tests, uncompleted)
	require.Len(t, items, 4)

	assert.Equal(t, "s-2", items[0].resume.SessionID)
	assert.Equal(t, "Concurrency", items[0].title())
	assert.Equal(t, "Test #9", items[1].title())
	assert.Nil(t, items[2].resume)
	assert.Equal(t, "Go basics", items[2].title())
	assert.Equal(t, "Concurrency", items[3].title())
}

func newTestHome(t *testing.T) (*HomeModel, *mock.MockClientTestsService, *mock.MockClientAuthService) {
	ctrl := gomock.NewController(t)
	tests := mock.NewMockClientTestsService(ctrl)
	auth := mock.NewMockClientAuthService(ctrl)
	return NewHomeModel(context.Background(), tests, auth, testErrs), tests, auth
}

func TestHomeModel_LoadAndOpen(t *testing.T) {
	home, tests, _ := newTestHome(t)

	tests.EXPECT().GetTests(gomock.Any()).Return([]models.Test{{TestID: 1, Title: "Go basics"}}, nil)
	tests.EXPECT().GetUncompletedSessions(gomock.Any()).Return([]models.UncompletedSession{{SessionID: "s-1", TestID: 1, QuestionIndex: 1}}, nil)

	home.loading = true
	home.Update(home.cmdLoad()())
	assert.False(t, home.loading)
	require.Len(t, home.items, 2)
	assert.Contains(t, home.View(), "continue: question 2")

	// resume the saved session
	_, cmd := home.Update(keyType(tea.KeyEnter))
	nav := cmd().(NavigateTo)
	assert.Equal(t, "runner", nav.Page)
	assert.Equal(t, openSessionMsg{SessionID: "s-1", TestID: 1, Title: "Go basics"}, nav.Payload)

	// start a new one
	home.Update(keyType(tea.KeyDown))
	_, cmd = home.Update(keyType(tea.KeyEnter))
	nav = cmd().(NavigateTo)
	assert.Equal(t, openSessionMsg{TestID: 1, Title: "Go basics"}, nav.Payload)
}

func TestHomeModel_LoadOffline(t *testing.T) {
	home, tests, _ := newTestHome(t)

	offline := app.New(app.KindNetwork, app.WithCause(adapter.ErrUnavailable))
	tests.EXPECT().GetTests(gomock.Any()).Return(nil, offline)
	tests.EXPECT().GetUncompletedSessions(gomock.Any()).Return(nil, nil).MaxTimes(1)

	home.Update(home.cmdLoad()())
	assert.Equal(t, app.MsgNoConnection, home.errMsg)
	assert.Contains(t, home.View(), app.MsgNoConnection)
}

func TestHomeModel_Discard(t *testing.T) {
	home, tests, _ := newTestHome(t)
	home.items = buildPickerItems(nil, []models.UncompletedSession{{SessionID: "s-1", TestID: 1}})

	tests.EXPECT().RemoveUncompletedSession(gomock.Any(), "s-1").Return(nil)

	_, cmd := home.Update(keyRunes("d"))
	msg := cmd().(sessionDiscardedMsg)
	assert.Equal(t, "s-1", msg.sessionID)

	_, cmd = home.Update(msg)
	assert.True(t, home.loading)
	assert.NotNil(t, cmd)
}

func TestHomeModel_Logout(t *testing.T) {
	home, _, auth := newTestHome(t)

	auth.EXPECT().Logout(gomock.Any())

	_, cmd := home.Update(keyRunes("o"))
	assert.Equal(t, LogoutResult{}, cmd())
}

func TestHomeModel_PageShortcuts(t *testing.T) {
	tests := map[string]string{"a": "articles", "b": "leaderboard", "p": "profile"}
	for k, page := range tests {
		home, _, _ := newTestHome(t)
		_, cmd := home.Update(keyRunes(k))
		assert.Equal(t, NavigateTo{Page: page}, cmd(), k)
	}
}
