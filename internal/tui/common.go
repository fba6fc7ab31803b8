package tui

import (
	"punchcard/internal/geo"
	"punchcard/internal/punch"
)

// viewState represents the currently active view.
type viewState int

const (
	viewLogin viewState = iota
	viewPunch
	viewSummary
)

// tabNames covers the views reachable once signed in.
var tabNames = []string{"Punch", "Summary"}

// --- Messages ---

type punchDataMsg struct {
	state punch.State
	err   error
}

type punchToggledMsg struct {
	dir   punch.Direction
	state punch.State
}

type geoResultMsg struct {
	pos geo.Position
	err error
}

type loggedInMsg struct {
	email string
}

type loggedOutMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}
