package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/session"
	"punchcard/internal/store"
)

var errEmptyEmail = errors.New("email is required")

// loginModel is the sign-in gate. It records a session flag, nothing more:
// any email is accepted, matching the stub check the punch view relies on.
type loginModel struct {
	store  *store.Store
	width  int
	height int

	form *huh.Form

	// Form value as pointer (survives value copies)
	email *string
}

func newLoginModel(s *store.Store) loginModel {
	email := ""
	m := loginModel{
		store: s,
		email: &email,
	}
	m.form = m.newForm()
	return m
}

func (l loginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return errEmptyEmail
					}
					return nil
				}).
				Value(l.email),
		).Title("Sign in"),
	).WithShowHelp(true).WithShowErrors(true)
}

func (l *loginModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

// reset rebuilds the form so a logout lands on a fresh sign-in view.
func (l loginModel) reset() loginModel {
	*l.email = ""
	l.form = l.newForm()
	return l
}

func (l loginModel) Init() tea.Cmd {
	return l.form.Init()
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		email := strings.TrimSpace(*l.email)
		return l, func() tea.Msg {
			if err := session.Login(l.store, email); err != nil {
				return statusMsg{text: "Sign in failed: " + err.Error(), isError: true}
			}
			return loggedInMsg{email: email}
		}
	}

	return l, cmd
}

func (l loginModel) view() string {
	w := l.width - 4
	if w < 20 {
		w = 20
	}

	title := titleStyle.Render("punchcard")
	hint := mutedStyle.Render("Sign in to record your punches")

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, hint, "", l.form.View()),
	)
}
