// Package reminder keeps the in-memory medication reminder list.
// Reminders are deliberately not persisted; like the original page
// state they vanish when the process exits.
package reminder

import "time"

// Reminder is a daily medication reminder. Time is the display string
// in HH:MM form; the app never parses it.
type Reminder struct {
	ID   int64
	Name string
	Time string
}

// Store holds reminders in insertion order.
type Store struct {
	reminders []Reminder
	now       func() time.Time
}

// NewStore returns an empty reminder list.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// SetClock overrides the ID clock for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Add appends a reminder and returns it. Either field empty is a
// no-op, reported via the bool rather than an error. The ID is the
// creation instant in unix milliseconds, bumped past the previous ID
// when two adds land in the same millisecond.
func (s *Store) Add(name, at string) (Reminder, bool) {
	if name == "" || at == "" {
		return Reminder{}, false
	}

	id := s.now().UnixMilli()
	if n := len(s.reminders); n > 0 && s.reminders[n-1].ID >= id {
		id = s.reminders[n-1].ID + 1
	}

	r := Reminder{ID: id, Name: name, Time: at}
	s.reminders = append(s.reminders, r)
	return r, true
}

// Remove filters out the reminder with the given ID. An unknown ID is
// a silent no-op.
func (s *Store) Remove(id int64) {
	kept := s.reminders[:0]
	for _, r := range s.reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reminders = kept
}

// All returns a copy of the reminders in insertion order.
func (s *Store) All() []Reminder {
	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}
