package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/sant0-9/aide/internal/slot"
)

// DefaultMaxLog caps the conversation log; oldest entries are evicted first
const DefaultMaxLog = 30

// Entry is one line of the conversation log
type Entry struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// State is the per-conversation unit of accumulated slots and history.
// It must only ever be mutated by one caller at a time.
type State struct {
	ID     string
	Slots  slot.Map
	MaxLog int

	log []Entry
}

// New creates an empty session. An empty id gets a generated one.
func New(id string) *State {
	if id == "" {
		id = uuid.NewString()
	}
	return &State{
		ID:     id,
		Slots:  make(slot.Map),
		MaxLog: DefaultMaxLog,
	}
}

// MergeSlots folds freshly extracted values into the session slots. Non-nil
// values overwrite, nil values never clear.
func (s *State) MergeSlots(found slot.Map) {
	s.Slots.Merge(found)
}

// Append adds a log entry, evicting the oldest when over MaxLog
func (s *State) Append(role, text string) {
	s.log = append(s.log, Entry{Role: role, Text: text, Time: time.Now()})
	max := s.MaxLog
	if max <= 0 {
		max = DefaultMaxLog
	}
	if len(s.log) > max {
		s.log = s.log[len(s.log)-max:]
	}
}

// Log returns the conversation log, oldest first
func (s *State) Log() []Entry {
	return s.log
}

// Reset clears slots and log. This is the only way state is ever emptied.
func (s *State) Reset() {
	s.Slots = make(slot.Map)
	s.log = nil
}
