// Package punch holds the punch-clock state machine: one record of today's
// work sessions, toggled between clocked-in and clocked-out, persisted to a
// key-value store after every change.
package punch

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StateKey is the store key the serialized record lives under.
const StateKey = "punchData"

// KindIn marks a session that was created by punching in. Every session this
// code records starts as an "in" entry; punching out closes that same entry
// instead of appending a new one.
const KindIn = "in"

// ErrNoOpenSession is reported when a punch-out finds no open "in" session to
// close. The clocked-in flag is still cleared, which restores the invariant
// that the flag matches the last session, but no duration can be recorded.
var ErrNoOpenSession = errors.New("punch out without an open session")

// KV is the slice of the store this package needs. It is an interface so
// tests can run against a fake.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Session is one contiguous in-to-out work interval. End and Hours are nil
// while the session is open; both are set exactly once, together, when the
// session is closed.
type Session struct {
	Kind  string
	Start time.Time
	End   *time.Time
	Hours *float64
}

// Open reports whether the session has not been punched out yet.
func (s Session) Open() bool {
	return s.End == nil
}

func (s *Session) close(now time.Time) {
	end := now
	hours := now.Sub(s.Start).Hours()
	s.End = &end
	s.Hours = &hours
}

// State is the whole persisted punch record.
type State struct {
	ClockedIn bool
	LastPunch *time.Time
	Sessions  []Session
}

// Direction says which way a toggle went.
type Direction int

const (
	PunchedIn Direction = iota
	PunchedOut
)

// Toggle flips the punch state at time now and returns the updated state.
// Clocked out -> in appends a new open session. Clocked in -> out closes the
// last session if it is an open "in" entry; if it is not, the flags still
// flip and ErrNoOpenSession is returned so the caller can surface it. now is
// sampled once by the caller and used for every field set here.
func Toggle(st State, now time.Time) (State, Direction, error) {
	st.Sessions = append([]Session(nil), st.Sessions...)

	var dir Direction
	var err error
	if st.ClockedIn {
		dir = PunchedOut
		if n := len(st.Sessions); n > 0 && st.Sessions[n-1].Kind == KindIn && st.Sessions[n-1].Open() {
			st.Sessions[n-1].close(now)
		} else {
			err = ErrNoOpenSession
		}
	} else {
		dir = PunchedIn
		st.Sessions = append(st.Sessions, Session{Kind: KindIn, Start: now})
	}

	st.ClockedIn = !st.ClockedIn
	t := now
	st.LastPunch = &t
	return st, dir, err
}

// Wire format. Field names match the record the web version of this app
// keeps in browser local storage, so an exported blob is interchangeable.
type stateJSON struct {
	IsClockedIn   bool        `json:"isClockedIn"`
	LastPunchTime *time.Time  `json:"lastPunchTime"`
	TodayPunches  []entryJSON `json:"todayPunches"`
}

type entryJSON struct {
	Type     string     `json:"type"`
	InTime   time.Time  `json:"inTime"`
	OutTime  *time.Time `json:"outTime"`
	Duration *float64   `json:"duration"`
}

// Load reads the persisted record, or returns the default state when nothing
// has been stored yet. A present-but-malformed value is an error; there is no
// partial recovery.
func Load(kv KV) (State, error) {
	raw, ok, err := kv.Get(StateKey)
	if err != nil {
		return State{}, fmt.Errorf("load punch state: %w", err)
	}
	if !ok {
		return State{}, nil
	}

	var sj stateJSON
	if err := json.Unmarshal([]byte(raw), &sj); err != nil {
		return State{}, fmt.Errorf("decode punch state: %w", err)
	}

	st := State{
		ClockedIn: sj.IsClockedIn,
		LastPunch: sj.LastPunchTime,
	}
	for _, e := range sj.TodayPunches {
		st.Sessions = append(st.Sessions, Session{
			Kind:  e.Type,
			Start: e.InTime,
			End:   e.OutTime,
			Hours: e.Duration,
		})
	}
	return st, nil
}

// Save serializes the state and writes it back, fully overwriting the
// previous value.
func Save(kv KV, st State) error {
	sj := stateJSON{
		IsClockedIn:   st.ClockedIn,
		LastPunchTime: st.LastPunch,
		TodayPunches:  []entryJSON{},
	}
	for _, s := range st.Sessions {
		sj.TodayPunches = append(sj.TodayPunches, entryJSON{
			Type:     s.Kind,
			InTime:   s.Start,
			OutTime:  s.End,
			Duration: s.Hours,
		})
	}

	data, err := json.Marshal(sj)
	if err != nil {
		return fmt.Errorf("encode punch state: %w", err)
	}
	if err := kv.Set(StateKey, string(data)); err != nil {
		return fmt.Errorf("save punch state: %w", err)
	}
	return nil
}

// TodayTotalHours sums the recorded duration of all closed sessions.
func TodayTotalHours(st State) float64 {
	var total float64
	for _, s := range st.Sessions {
		if s.Hours != nil {
			total += *s.Hours
		}
	}
	return total
}
