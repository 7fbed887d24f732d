package session

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sant0-9/aide/internal/slot"
)

func TestNew(t *testing.T) {
	st := New("fixed")
	if st.ID != "fixed" {
		t.Errorf("ID = %q, want fixed", st.ID)
	}
	if st.MaxLog != DefaultMaxLog {
		t.Errorf("MaxLog = %d, want %d", st.MaxLog, DefaultMaxLog)
	}

	generated := New("")
	if generated.ID == "" {
		t.Error("empty id was not generated")
	}
}

func TestAppendEvictsOldest(t *testing.T) {
	st := New("t")
	st.MaxLog = 5

	for i := 0; i < 8; i++ {
		st.Append("user", fmt.Sprintf("message %d", i))
	}

	log := st.Log()
	if len(log) != 5 {
		t.Fatalf("log length = %d, want 5", len(log))
	}
	if log[0].Text != "message 3" {
		t.Errorf("oldest entry = %q, want message 3", log[0].Text)
	}
	if log[4].Text != "message 7" {
		t.Errorf("newest entry = %q, want message 7", log[4].Text)
	}
}

func TestReset(t *testing.T) {
	st := New("t")
	st.MergeSlots(slot.Map{"destination": slot.Text("Paris")})
	st.Append("user", "hello")

	st.Reset()

	if len(st.Slots) != 0 {
		t.Errorf("slots not cleared: %v", st.Slots)
	}
	if len(st.Log()) != 0 {
		t.Errorf("log not cleared: %v", st.Log())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	amount := 3000.0
	st := New("t")
	st.MergeSlots(slot.Map{
		"destination": slot.Text("Tokyo"),
		"dates":       slot.DateSpec{Years: []int{2026}, Months: []string{"december"}},
		"budget":      slot.Budget{Amount: &amount, Currency: "USD"},
		"interests":   slot.List{"food", "cultural"},
		"equipment":   slot.List{},
	})
	st.Append("user", "trip to Tokyo")
	st.Append("assistant", "here you go")

	// Through JSON, as the stores do it
	data, err := json.Marshal(st.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := New("t")
	restored.Restore(&snap)

	checks := []struct {
		key  string
		want string
	}{
		{"destination", "Tokyo"},
		{"dates", "december 2026"},
		{"budget", "approximately USD 3000"},
		{"interests", "food, cultural"},
	}
	for _, c := range checks {
		if got := restored.Slots.FormatOr(c.key, "<missing>"); got != c.want {
			t.Errorf("slot %s = %q, want %q", c.key, got, c.want)
		}
	}

	// Empty list survives as present-but-empty
	eq, ok := restored.Slots["equipment"]
	if !ok || eq == nil {
		t.Fatal("empty equipment list lost in round trip")
	}
	if eq.(slot.List) == nil {
		t.Error("empty equipment list came back nil-backed")
	}
	if len(eq.(slot.List)) != 0 {
		t.Errorf("equipment = %v, want empty", eq)
	}

	if len(restored.Log()) != 2 {
		t.Fatalf("log length = %d, want 2", len(restored.Log()))
	}
	if restored.Log()[0].Role != "user" || restored.Log()[1].Role != "assistant" {
		t.Errorf("log roles wrong: %+v", restored.Log())
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	// Missing key is not an error
	snap, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if snap != nil {
		t.Fatalf("Get missing = %v, want nil", snap)
	}

	st := New("k")
	st.MergeSlots(slot.Map{"destination": slot.Text("Lima")})
	if err := store.Set("k", st.Snapshot()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	snap, err = store.Get("k")
	if err != nil || snap == nil {
		t.Fatalf("Get: snap=%v err=%v", snap, err)
	}
	if snap.Slots["destination"].Text != "Lima" {
		t.Errorf("stored destination = %+v", snap.Slots["destination"])
	}

	if err := store.Clear("k"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	snap, _ = store.Get("k")
	if snap != nil {
		t.Error("Clear left the snapshot behind")
	}
}
