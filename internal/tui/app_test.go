package tui

import (
	"testing"

	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderPage remembers the last message it received.
type recorderPage struct {
	name string
	last tea.Msg
}

func (p *recorderPage) Init() tea.Cmd { return nil }

func (p *recorderPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.last = msg
	return p, nil
}

func (p *recorderPage) View() string { return p.name }

func newTestRoot() (RootModel, *recorderPage, *recorderPage) {
	first := &recorderPage{name: "first"}
	second := &recorderPage{name: "second"}
	root := NewRootModel(map[string]tea.Model{"first": first, "second": second}, "first", models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))
	return root, first, second
}

func TestRootModel_NavigateTo(t *testing.T) {
	root, _, second := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: "second", Payload: openSessionMsg{SessionID: "s-1"}})
	r := updated.(RootModel)
	assert.Contains(t, r.View(), "second")

	// the payload reaches the new page
	msgs := collect(cmd)
	payload := findMsg[openSessionMsg](t, msgs)
	r.Update(payload)
	assert.Equal(t, openSessionMsg{SessionID: "s-1"}, second.last)
}

func TestRootModel_NavigateToUnknownPage(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "first")
}

func TestRootModel_LoginResult(t *testing.T) {
	root, first, _ := newTestRoot()

	updated, cmd := root.Update(LoginResult{Err: assertErr})
	require.NotNil(t, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, LoginResult{Err: assertErr}, first.last)

	updated, cmd = root.Update(LoginResult{UserID: 42})
	require.NotNil(t, cmd)
	assert.Equal(t, int64(42), updated.(RootModel).resultID)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_LogoutAndQuit(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, cmd := root.Update(LogoutResult{})
	assert.True(t, updated.(RootModel).loggedOut)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	updated, _ = root.Update(keyType(tea.KeyCtrlC))
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	menu := NewMenuModel()
	root := NewRootModel(map[string]tea.Model{"menu": menu}, "menu", models.NewAppBuildInfo("1.0.0", "", "abc123"))

	updated, _ := root.Update(keyRunes("v"))
	view := updated.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Date: N/A")

	updated, _ = updated.Update(keyType(tea.KeyEsc))
	assert.Contains(t, updated.View(), "Sign in")
}

func TestRootModel_WindowSizeReachesEveryPage(t *testing.T) {
	root, first, second := newTestRoot()

	size := tea.WindowSizeMsg{Width: 120, Height: 40}
	root.Update(size)

	assert.Equal(t, size, first.last)
	assert.Equal(t, size, second.last)
}

func TestRootModel_NavigateToCurrentPage(t *testing.T) {
	root, _, _ := newTestRoot()

	_, cmd := root.Update(NavigateTo{Page: "first"})
	assert.Nil(t, cmd)
}

func TestRootModel_ShowsSignedInUser(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, cmd := root.Update(usernameChangedMsg{username: "alice"})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "signed in as alice")
	assert.Contains(t, updated.View(), "first")
}
