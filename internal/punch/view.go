package punch

import (
	"fmt"
	"math"
	"time"
)

// View models. These are pure data-to-text projections of State; the TUI
// layer decides placement and color.

const (
	clockLayout      = "03:04:05 PM"
	clockShortLayout = "03:04 PM"

	placeholderTime    = "--:-- --"
	placeholderCaption = "No punch recorded today"

	// EmptyTableText is rendered as the single row of an empty activity table.
	EmptyTableText = "No punches recorded today"
)

// Status is everything the status panel shows.
type Status struct {
	Indicator   string // "IN" or "OUT"
	Active      bool   // true iff clocked in; drives the highlighted style
	Headline    string
	ButtonLabel string
	TimeText    string
	Caption     string
}

// StatusView projects the current state into the status panel contents. The
// caption's in/out word follows the current clocked-in flag, not the
// direction of the punch that set LastPunch.
func StatusView(st State) Status {
	v := Status{
		Indicator:   "OUT",
		Headline:    "Currently: Not Clocked In",
		ButtonLabel: "Punch In",
	}
	if st.ClockedIn {
		v.Indicator = "IN"
		v.Active = true
		v.Headline = "Currently: Clocked In"
		v.ButtonLabel = "Punch Out"
	}

	if st.LastPunch == nil {
		v.TimeText = placeholderTime
		v.Caption = placeholderCaption
		return v
	}

	v.TimeText = st.LastPunch.Local().Format(clockLayout)
	dir := "out"
	if st.ClockedIn {
		dir = "in"
	}
	v.Caption = fmt.Sprintf("Last punch %s at %s", dir, v.TimeText)
	return v
}

// Row is one line of the activity table.
type Row struct {
	Time     string
	Label    string
	Duration string
}

// TableRows projects sessions into table rows, oldest first. Only the start
// time is shown, whether or not the session is closed.
func TableRows(sessions []Session) []Row {
	rows := make([]Row, 0, len(sessions))
	for _, s := range sessions {
		label := "Punch Out"
		if s.Kind == KindIn {
			label = "Punch In"
		}

		var dur string
		switch {
		case s.Hours != nil:
			dur = FormatHours(*s.Hours)
		case s.Open():
			dur = "In progress..."
		default:
			dur = "--"
		}

		rows = append(rows, Row{
			Time:     s.Start.Local().Format(clockShortLayout),
			Label:    label,
			Duration: dur,
		})
	}
	return rows
}

// FormatHours renders fractional hours as "8h 30m": whole hours, then the
// remainder rounded to the nearest minute.
func FormatHours(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatClock renders a wall-clock time the way the status panel does.
func FormatClock(t time.Time) string {
	return t.Local().Format(clockLayout)
}
