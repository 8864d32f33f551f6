package tui

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSender) sent() []tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tea.Msg(nil), s.msgs...)
}

func TestForward_DeliversCurrentAndLaterValues(t *testing.T) {
	name := "alice"
	cell := state.NewCell(&name)
	to := &recordingSender{}
	stop := make(chan struct{})
	done := make(chan struct{})

	f := forward(cell.Subscribe, func(v *string) tea.Msg {
		return usernameChangedMsg{username: valueOrEmpty(v)}
	})
	go func() {
		f(to, stop)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(to.sent()) == 1 }, time.Second, 5*time.Millisecond)

	cell.Set(nil)
	require.Eventually(t, func() bool { return len(to.sent()) == 2 }, time.Second, 5*time.Millisecond)

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}

	assert.Equal(t, []tea.Msg{
		usernameChangedMsg{username: "alice"},
		usernameChangedMsg{username: ""},
	}, to.sent())
}

func TestForward_StopsWhenSubscriptionCloses(t *testing.T) {
	cell := state.NewCell(false)
	done := make(chan struct{})

	go func() {
		forward(cell.Subscribe, func(dark bool) tea.Msg { return themeChangedMsg{dark: dark} })(&recordingSender{}, make(chan struct{}))
		close(done)
	}()

	cell.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("feed did not stop")
	}
}
