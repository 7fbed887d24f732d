package session

import (
	"github.com/sant0-9/aide/internal/slot"
)

// Snapshot is the JSON-ready form of a session: typed slot values plus the
// conversation log
type Snapshot struct {
	Slots map[string]SlotRecord `json:"slots"`
	Log   []Entry               `json:"log"`
}

// SlotRecord encodes one slot.Value with an explicit kind tag so the union
// round-trips through JSON
type SlotRecord struct {
	Kind   string         `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Date   *slot.DateSpec `json:"date,omitempty"`
	Budget *slot.Budget   `json:"budget,omitempty"`
	List   []string       `json:"list"`
}

// Snapshot captures the session for persistence
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Slots: make(map[string]SlotRecord, len(s.Slots)),
		Log:   append([]Entry(nil), s.log...),
	}
	for key, val := range s.Slots {
		switch v := val.(type) {
		case slot.Text:
			snap.Slots[key] = SlotRecord{Kind: "text", Text: string(v)}
		case slot.DateSpec:
			d := v
			snap.Slots[key] = SlotRecord{Kind: "date", Date: &d}
		case slot.Budget:
			b := v
			snap.Slots[key] = SlotRecord{Kind: "budget", Budget: &b}
		case slot.List:
			list := append([]string(nil), v...)
			if list == nil {
				list = []string{}
			}
			snap.Slots[key] = SlotRecord{Kind: "list", List: list}
		}
	}
	return snap
}

// Restore replaces the session contents with a stored snapshot
func (s *State) Restore(snap *Snapshot) {
	s.Slots = make(slot.Map, len(snap.Slots))
	for key, rec := range snap.Slots {
		switch rec.Kind {
		case "text":
			s.Slots[key] = slot.Text(rec.Text)
		case "date":
			if rec.Date != nil {
				s.Slots[key] = *rec.Date
			}
		case "budget":
			if rec.Budget != nil {
				s.Slots[key] = *rec.Budget
			}
		case "list":
			s.Slots[key] = slot.List(rec.List)
		}
	}
	s.log = append([]Entry(nil), snap.Log...)
}
