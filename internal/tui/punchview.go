package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"punchcard/internal/geo"
	"punchcard/internal/punch"
	"punchcard/internal/store"
)

// punchModel is the main view: punch status, today's activity table, and the
// one-shot location readout.
type punchModel struct {
	store    *store.Store
	provider geo.Provider
	width    int
	height   int

	state punch.State

	geoDone bool
	geoPos  geo.Position
	geoErr  error
}

func newPunchModel(s *store.Store, provider geo.Provider) punchModel {
	return punchModel{
		store:    s,
		provider: provider,
	}
}

func (p *punchModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

// Init loads the persisted record and fires the single location lookup.
func (p punchModel) Init() tea.Cmd {
	return tea.Batch(p.loadData(), p.lookupLocation())
}

func (p punchModel) loadData() tea.Cmd {
	return func() tea.Msg {
		st, err := punch.Load(p.store)
		return punchDataMsg{state: st, err: err}
	}
}

// lookupLocation is fire-and-forget: exactly one request, one result message.
func (p punchModel) lookupLocation() tea.Cmd {
	return func() tea.Msg {
		pos, err := p.provider.Lookup(context.Background())
		return geoResultMsg{pos: pos, err: err}
	}
}

func (p punchModel) update(msg tea.Msg) (punchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case punchDataMsg:
		if msg.err != nil {
			p.state = punch.State{}
			return p, func() tea.Msg {
				return statusMsg{text: "Stored punch record is unreadable; starting fresh: " + msg.err.Error(), isError: true}
			}
		}
		p.state = msg.state
		return p, nil

	case geoResultMsg:
		p.geoDone = true
		p.geoPos = msg.pos
		p.geoErr = msg.err
		return p, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Punch) {
			return p.toggle()
		}
	}
	return p, nil
}

// toggle runs the punch state machine once, persists the result, and
// re-renders. now is sampled exactly once.
func (p punchModel) toggle() (punchModel, tea.Cmd) {
	st, dir, err := punch.Toggle(p.state, time.Now())
	p.state = st

	if saveErr := punch.Save(p.store, st); saveErr != nil {
		return p, func() tea.Msg {
			return statusMsg{text: "Save failed: " + saveErr.Error(), isError: true}
		}
	}
	if errors.Is(err, punch.ErrNoOpenSession) {
		return p, func() tea.Msg {
			return statusMsg{text: "Punched out, but no open session was found to close", isError: true}
		}
	}

	return p, func() tea.Msg { return punchToggledMsg{dir: dir, state: st} }
}

func (p punchModel) view() string {
	if p.width < 20 {
		return "Terminal too small"
	}

	contentWidth := p.width - 4

	statusPanel := p.renderStatusPanel(contentWidth)
	tablePanel := p.renderActivityPanel(contentWidth)
	locationPanel := p.renderLocationPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, statusPanel, tablePanel, locationPanel)
}

func (p punchModel) renderStatusPanel(w int) string {
	v := punch.StatusView(p.state)

	var indicator string
	if v.Active {
		indicator = indicatorInStyle.Width(w - 6).Render("● " + v.Indicator)
	} else {
		indicator = indicatorOutStyle.Width(w - 6).Render("■ " + v.Indicator)
	}

	headline := titleStyle.Render(v.Headline)
	timeText := highlightStyle.Render(v.TimeText)
	caption := mutedStyle.Render(v.Caption)
	button := mutedStyle.Render(fmt.Sprintf("Press space to %s", strings.ToLower(v.ButtonLabel)))

	content := lipgloss.JoinVertical(lipgloss.Center,
		indicator,
		headline,
		timeText,
		caption,
		button,
	)
	if v.Active {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func (p punchModel) renderActivityPanel(w int) string {
	title := titleStyle.Render("Today's Activity")

	rows := punch.TableRows(p.state.Sessions)
	if len(rows) == 0 {
		placeholder := mutedStyle.Width(w - 6).Align(lipgloss.Center).Render(punch.EmptyTableText)
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", placeholder),
		)
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %-10s %-12s %s", "Time", "Type", "Duration")))
	lines = append(lines, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 36))))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %-10s %-12s %s", r.Time, r.Label, r.Duration))
	}

	return panelStyle.Width(w).Render(strings.Join(lines, "\n"))
}

func (p punchModel) renderLocationPanel(w int) string {
	title := titleStyle.Render("Location")

	var lines []string
	lines = append(lines, title)

	switch {
	case !p.geoDone:
		lines = append(lines, mutedStyle.Render("Locating..."))

	case errors.Is(p.geoErr, geo.ErrDisabled):
		lines = append(lines, errorStyle.Render("Geolocation is not supported in this environment."))
		lines = append(lines, mutedStyle.Render("Location lookups are disabled."))

	case p.geoErr != nil:
		lines = append(lines, errorStyle.Render("Error getting location: "+p.geoErr.Error()))
		lines = append(lines, mutedStyle.Render("Please enable location services for accurate tracking."))

	default:
		lines = append(lines, fmt.Sprintf("Latitude:  %s", highlightStyle.Render(fmt.Sprintf("%.6f", p.geoPos.Lat))))
		lines = append(lines, fmt.Sprintf("Longitude: %s", highlightStyle.Render(fmt.Sprintf("%.6f", p.geoPos.Lon))))
		lines = append(lines, fmt.Sprintf("Accuracy:  %s", highlightStyle.Render(fmt.Sprintf("%g meters", p.geoPos.AccuracyM))))
		lines = append(lines, successStyle.Render("Location verified as on campus"))
	}

	return panelStyle.Width(w).Render(strings.Join(lines, "\n"))
}
