// Package tui is the terminal front end: a login flow and a main loop, each
// a bubbletea program routed by [RootModel].
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/service"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type TUI struct {
	services  *service.ClientServices
	machine   *testsession.Machine
	session   session.Session
	errs      errorMapper
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions is overridden in tests to run without a terminal.
	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, machine *testsession.Machine, sess session.Session, errs errorMapper,
	buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		machine:        machine,
		session:        sess,
		errs:           errs,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow runs the menu, login and registration pages until the user signs
// in. notice, when not empty, is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (userID int64, err error) {
	t.applyTheme(ctx)

	menu := NewMenuModel()
	if notice != "" {
		menu.status = notice
	}
	pages := map[string]tea.Model{
		"menu":     menu,
		"login":    NewLoginModel(ctx, t.services.AuthService, t.errs),
		"register": NewRegisterModel(ctx, t.services.AuthService, t.errs),
	}

	result, err := t.run(NewRootModel(pages, "menu", t.buildInfo))
	if err != nil {
		return 0, err
	}
	if result.quitByUser {
		return 0, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.resultID).Msg("signed in")
	return result.resultID, nil
}

// MainLoop runs the signed-in pages. It reports logout when the user signed
// out and ErrUserQuit when the program was closed.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	t.applyTheme(ctx)

	currentUser := func() int64 { return userID }
	pages := map[string]tea.Model{
		"home":        NewHomeModel(ctx, t.services.TestsService, t.services.AuthService, t.errs),
		"runner":      NewRunnerModel(ctx, t.machine),
		"result":      NewResultModel(),
		"articles":    NewArticlesModel(ctx, t.services.ArticlesService, t.errs),
		"leaderboard": NewLeaderboardModel(ctx, t.services.LeaderboardService, currentUser, t.errs),
		"profile":     NewProfileModel(ctx, t.services.ProfileService, t.session, t.errs),
	}

	result, err := t.run(NewRootModel(pages, "home", t.buildInfo),
		forward(t.session.ObserveUsername, func(name *string) tea.Msg {
			return usernameChangedMsg{username: valueOrEmpty(name)}
		}),
		forward(t.session.ObserveTheme, func(dark bool) tea.Msg {
			return themeChangedMsg{dark: dark}
		}),
	)

	// an interrupted session keeps its place for the next start
	if st := t.machine.State(); st.Status == testsession.StatusInProgress {
		t.machine.Pause(ctx)
	}

	if err != nil {
		return false, err
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.loggedOut, nil
}

// run drives root until it quits. Each feed runs alongside the program and
// stops when the program has finished.
func (t *TUI) run(root RootModel, feeds ...feed) (RootModel, error) {
	program := tea.NewProgram(root, t.programOptions...)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for _, f := range feeds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(program, stop)
		}()
	}

	finalModel, err := program.Run()
	close(stop)
	wg.Wait()

	if err != nil {
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}

// sender is the part of *tea.Program a feed needs.
type sender interface {
	Send(msg tea.Msg)
}

// feed pushes messages into a running program until stop is closed.
type feed func(to sender, stop <-chan struct{})

// forward turns a session subscription into a feed.
func forward[T any](subscribe func() (<-chan T, func()), toMsg func(T) tea.Msg) feed {
	return func(to sender, stop <-chan struct{}) {
		updates, cancel := subscribe()
		defer cancel()

		for {
			select {
			case <-stop:
				return
			case v, ok := <-updates:
				if !ok {
					return
				}
				to.Send(toMsg(v))
			}
		}
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (t *TUI) applyTheme(ctx context.Context) {
	lipgloss.SetHasDarkBackground(t.session.IsDarkTheme(ctx))
}
