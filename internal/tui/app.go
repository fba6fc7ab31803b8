package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/export"
	"punchcard/internal/geo"
	"punchcard/internal/punch"
	"punchcard/internal/session"
	"punchcard/internal/store"
)

// App is the root Bubble Tea model. It owns the session gate: the punch and
// summary views are only reachable while the store carries the logged-in
// flag, and logging out drops straight back to the sign-in view.
type App struct {
	store  *store.Store
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	login   loginModel
	punch   punchModel
	summary summaryModel

	help   help.Model
	status string
	email  string
}

func NewApp(s *store.Store, provider geo.Provider) App {
	h := help.New()
	h.ShowAll = false

	view := viewLogin
	if session.LoggedIn(s) {
		view = viewPunch
	}

	return App{
		store:      s,
		activeView: view,
		login:      newLoginModel(s),
		punch:      newPunchModel(s, provider),
		summary:    newSummaryModel(),
		help:       h,
		email:      session.Email(s),
	}
}

func (a App) Init() tea.Cmd {
	if a.activeView == viewLogin {
		return a.login.Init()
	}
	return a.punch.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, contentHeight)
		a.punch.setSize(a.width, contentHeight)
		a.summary.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// The sign-in form captures everything except a hard quit.
		if a.activeView == viewLogin {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.login, cmd = a.login.update(msg)
			return a, cmd
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Logout):
			return a.logout()
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewPunch
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewSummary
			a.summary.setState(a.punch.state)
			return a, nil
		case key.Matches(msg, keys.Tab):
			if a.activeView == viewPunch {
				a.activeView = viewSummary
				a.summary.setState(a.punch.state)
			} else {
				a.activeView = viewPunch
			}
			return a, nil
		}

	case loggedInMsg:
		a.email = msg.email
		a.activeView = viewPunch
		a.status = "Signed in as " + msg.email
		return a, a.punch.Init()

	case loggedOutMsg:
		a.activeView = viewLogin
		a.login = a.login.reset()
		a.email = ""
		a.status = ""
		return a, a.login.Init()

	case punchToggledMsg:
		v := punch.StatusView(msg.state)
		if msg.dir == punch.PunchedIn {
			a.status = "Punched in at " + v.TimeText
		} else {
			a.status = "Punched out at " + v.TimeText
		}
		if a.activeView == viewSummary {
			a.summary.setState(msg.state)
		}
		return a, nil

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewLogin:
		a.login, cmd = a.login.update(msg)
	default:
		// Data and location messages always land on the punch model, which
		// owns the state, regardless of the visible tab.
		a.punch, cmd = a.punch.update(msg)
	}
	return a, cmd
}

func (a App) logout() (tea.Model, tea.Cmd) {
	return a, func() tea.Msg {
		if err := session.Logout(a.store); err != nil {
			return statusMsg{text: "Logout failed: " + err.Error(), isError: true}
		}
		return loggedOutMsg{}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.activeView == viewLogin {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewSummary:
		content = a.summary.view()
	default:
		content = a.punch.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range tabNames {
		if viewState(i+1) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("punchcard")
	user := ""
	if a.email != "" {
		user = mutedStyle.Render(" " + a.email)
	}

	left := title + user
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Clocked-in indicator in footer
	punchInfo := ""
	if a.punch.state.ClockedIn {
		punchInfo = successStyle.Render(" ● IN")
	}

	left := footerStyle.Render(helpView)
	right := punchInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	sessions := a.punch.state.Sessions
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("punchcard-export-%s.csv", dateStr))
			if err := export.ToCSV(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("punchcard-export-%s.json", dateStr))
			if err := export.ToJSON(sessions, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
