package punch

import (
	"testing"
	"time"
)

// ============================================================
// Status view
// ============================================================

func TestStatusViewClockedOut(t *testing.T) {
	v := StatusView(State{})
	if v.Indicator != "OUT" {
		t.Fatalf("indicator = %q, want OUT", v.Indicator)
	}
	if v.Active {
		t.Fatal("clocked-out status should not be active")
	}
	if v.Headline != "Currently: Not Clocked In" {
		t.Fatalf("headline = %q", v.Headline)
	}
	if v.ButtonLabel != "Punch In" {
		t.Fatalf("button = %q", v.ButtonLabel)
	}
	if v.TimeText != "--:-- --" {
		t.Fatalf("time = %q, want placeholder", v.TimeText)
	}
	if v.Caption != "No punch recorded today" {
		t.Fatalf("caption = %q", v.Caption)
	}
}

func TestStatusViewClockedIn(t *testing.T) {
	last := time.Date(2025, 3, 10, 14, 30, 5, 0, time.Local)
	v := StatusView(State{ClockedIn: true, LastPunch: &last})

	if v.Indicator != "IN" {
		t.Fatalf("indicator = %q, want IN", v.Indicator)
	}
	if !v.Active {
		t.Fatal("clocked-in status should be active")
	}
	if v.Headline != "Currently: Clocked In" {
		t.Fatalf("headline = %q", v.Headline)
	}
	if v.ButtonLabel != "Punch Out" {
		t.Fatalf("button = %q", v.ButtonLabel)
	}
	if v.TimeText != "02:30:05 PM" {
		t.Fatalf("time = %q, want 02:30:05 PM", v.TimeText)
	}
	if v.Caption != "Last punch in at 02:30:05 PM" {
		t.Fatalf("caption = %q", v.Caption)
	}
}

func TestStatusViewLastPunchOut(t *testing.T) {
	last := time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local)
	v := StatusView(State{ClockedIn: false, LastPunch: &last})
	if v.Caption != "Last punch out at 05:00:00 PM" {
		t.Fatalf("caption = %q", v.Caption)
	}
}

// The in/out word in the caption follows the current flag, not the direction
// of the punch that set LastPunch.
func TestStatusCaptionFollowsCurrentFlag(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Hour)
	hours := 1.0
	last := end

	st := State{
		ClockedIn: true, // externally manipulated: last session is closed
		LastPunch: &last,
		Sessions:  []Session{{Kind: KindIn, Start: start, End: &end, Hours: &hours}},
	}
	v := StatusView(st)
	if v.Caption != "Last punch in at 10:00:00 AM" {
		t.Fatalf("caption = %q, want the 'in' wording", v.Caption)
	}
}

// ============================================================
// Activity table
// ============================================================

func TestTableRowsEmpty(t *testing.T) {
	rows := TableRows(nil)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestTableRowsCountMatchesSessions(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	sessions := []Session{
		{Kind: KindIn, Start: start},
		{Kind: KindIn, Start: start.Add(time.Hour)},
		{Kind: KindIn, Start: start.Add(2 * time.Hour)},
	}
	rows := TableRows(sessions)
	if len(rows) != len(sessions) {
		t.Fatalf("rows = %d, want %d", len(rows), len(sessions))
	}
}

func TestTableRowOpenSession(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	rows := TableRows([]Session{{Kind: KindIn, Start: start}})

	r := rows[0]
	if r.Time != "09:00 AM" {
		t.Fatalf("time = %q, want 09:00 AM", r.Time)
	}
	if r.Label != "Punch In" {
		t.Fatalf("label = %q, want Punch In", r.Label)
	}
	if r.Duration != "In progress..." {
		t.Fatalf("duration = %q, want In progress...", r.Duration)
	}
}

func TestTableRowClosedSession(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	end := start.Add(8*time.Hour + 30*time.Minute)
	hours := 8.5
	rows := TableRows([]Session{{Kind: KindIn, Start: start, End: &end, Hours: &hours}})

	if rows[0].Duration != "8h 30m" {
		t.Fatalf("duration = %q, want 8h 30m", rows[0].Duration)
	}
	// Only the start time is shown, closed or not.
	if rows[0].Time != "09:00 AM" {
		t.Fatalf("time = %q, want 09:00 AM", rows[0].Time)
	}
}

func TestTableRowClosedWithoutHours(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Hour)
	// Closed but no recorded duration: malformed stored data passed through.
	rows := TableRows([]Session{{Kind: KindIn, Start: start, End: &end}})
	if rows[0].Duration != "--" {
		t.Fatalf("duration = %q, want --", rows[0].Duration)
	}
}

func TestTableRowForeignKind(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	rows := TableRows([]Session{{Kind: "out", Start: start}})
	if rows[0].Label != "Punch Out" {
		t.Fatalf("label = %q, want Punch Out", rows[0].Label)
	}
}

// ============================================================
// Formatters
// ============================================================

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{8.5, "8h 30m"},
		{1.25, "1h 15m"},
		{2.0, "2h 0m"},
		{0.1, "0h 6m"},
		{10.75, "10h 45m"},
	}
	for _, tt := range tests {
		got := FormatHours(tt.hours)
		if got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	ts := time.Date(2025, 3, 10, 0, 5, 9, 0, time.Local)
	if got := FormatClock(ts); got != "12:05:09 AM" {
		t.Fatalf("FormatClock = %q, want 12:05:09 AM", got)
	}
}

func TestDurationMatchesToggleArithmetic(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t1 := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	st, _, _ := Toggle(State{}, t0)
	st, _, _ = Toggle(st, t1)

	want := t1.Sub(t0).Hours()
	if got := *st.Sessions[0].Hours; got != want {
		t.Fatalf("hours = %v, want %v", got, want)
	}
	if FormatHours(want) != "8h 30m" {
		t.Fatalf("formatted = %q, want 8h 30m", FormatHours(want))
	}
}
