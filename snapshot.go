package textstate

// Snapshot is the serializable representation of a state's persisted
// fields. The cached layout is never persisted; a restored state is
// dirty and reshapes on its first recalculation.
//
// Snapshots marshal with encoding/json. The metadata type M must be
// JSON-serializable for round-tripping.
type Snapshot[M any] struct {
	Text      string    `json:"text"`
	Style     Style     `json:"style"`
	Scroll    Point     `json:"scroll"`
	Selection Selection `json:"selection"`
	Metadata  M         `json:"metadata"`
}

// Snapshot captures the state's persisted fields.
func (s *State[M]) Snapshot() Snapshot[M] {
	return Snapshot[M]{
		Text:      s.text,
		Style:     s.style,
		Scroll:    s.scroll,
		Selection: s.sel,
		Metadata:  s.Metadata,
	}
}

// Restore replaces the state's persisted fields from a snapshot and
// marks the layout dirty. The selection is clamped to the restored
// text; the scroll offset is re-clamped on the next recalculation.
func (s *State[M]) Restore(snap Snapshot[M]) {
	s.text = snap.Text
	s.style = snap.Style
	s.scroll = snap.Scroll
	s.sel = snap.Selection.clampTo(snap.Text)
	s.Metadata = snap.Metadata
	s.buffer = nil
	s.markDirty()
}

// RestoreState registers a state under id from a snapshot, replacing
// any existing one. The new state is dirty until recalculated.
func (m *Manager[M]) RestoreState(id ID, snap Snapshot[M]) *State[M] {
	st := m.CreateOrReplace(id, "", snap.Metadata)
	st.Restore(snap)
	return st
}
