package extraction

import "sync"

// Slot is the shared "current CV text" value that overlapping
// extractions race on. The policy is supersede, not queue: starting a
// new extraction invalidates any still-running one, so the most recently
// started extraction is the one whose result lands.
type Slot struct {
	mu   sync.Mutex
	gen  uint64
	text string
}

// NewSlot returns an empty Slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Extraction is a single in-flight extraction's claim on the slot.
type Extraction struct {
	slot *Slot
	gen  uint64
}

// Begin claims the slot for a new extraction, superseding any extraction
// begun earlier that has not published yet.
func (s *Slot) Begin() *Extraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return &Extraction{slot: s, gen: s.gen}
}

// Publish stores text into the slot if this extraction is still the
// latest one begun. It reports whether the text was stored; a false
// return means a newer extraction superseded this one and the result
// was dropped.
func (e *Extraction) Publish(text string) bool {
	e.slot.mu.Lock()
	defer e.slot.mu.Unlock()
	if e.gen != e.slot.gen {
		return false
	}
	e.slot.text = text
	return true
}

// Text returns the current slot contents.
func (s *Slot) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
