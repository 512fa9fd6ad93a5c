// Package memory implements the bounded long-term exemplar store with
// decay and diversity-preserving admission.
//
// The store keeps at most a fixed number of frame snapshots. Every cycle
// each entry fades a little; once the store is full a new frame is only
// admitted when it is more informative (more distant from the store's
// population on average) than the store's least distinctive member. The
// policy optimizes for representational spread, not recency or frequency —
// the opposite of LRU/LFU.
package memory

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/histogram"
)

// Entry is one stored exemplar frame.
type Entry struct {
	// ID is the unique identifier assigned at admission.
	ID snowflake.ID

	// Frame is the stored snapshot. It decays in place every cycle,
	// independently of admission decisions.
	Frame *frame.Frame

	// AddedAt is when the entry was admitted.
	AddedAt time.Time
}

// Store is the capacity-bounded long-term memory.
//
// It is exclusively owned by the processing loop; no internal locking.
// Length never exceeds the configured capacity.
//
// Example usage:
//
//	node, _ := snowflake.NewNode(1)
//	store := memory.NewStore(100, 0.99, node)
//	event := store.Update(f)
//	log.Println(event)
type Store struct {
	// capacity is the maximum number of entries (MAX_MEMORY).
	capacity int

	// decay is the per-cycle fade factor for stored entries (DECAY_FACTOR).
	decay float64

	// entries holds the stored exemplars. Insertion order carries no
	// meaning once the store is full; entries are addressed by index only
	// for replacement.
	entries []*Entry

	// node generates entry and event IDs.
	node *snowflake.Node
}

// NewStore creates an empty store.
//
// Parameters:
//   - capacity: maximum entry count, must be > 0
//   - decay: per-cycle fade factor in (0,1]
//   - node: snowflake node for entry/event IDs
func NewStore(capacity int, decay float64, node *snowflake.Node) *Store {
	return &Store{
		capacity: capacity,
		decay:    decay,
		node:     node,
	}
}

// Len returns the current number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Capacity returns the maximum number of entries.
func (s *Store) Capacity() int {
	return s.capacity
}

// Entries returns the stored entries in index order.
//
// The returned slice is a copy, but the entries themselves are the live
// ones: their frames continue to decay on subsequent cycles.
func (s *Store) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Frames returns the stored frames in index order, for scoring and recall.
func (s *Store) Frames() []*frame.Frame {
	out := make([]*frame.Frame, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Frame
	}
	return out
}

// Update runs one admission cycle for the given frame.
//
// The state machine, in order:
//  1. Decay every existing entry by the configured factor. This happens
//     unconditionally, before any admission decision, and composes
//     multiplicatively over an entry's residency.
//  2. Below capacity: append a full-strength snapshot of the frame
//     (undecayed this cycle).
//  3. At capacity: score the candidate's novelty (mean signature distance
//     to every entry) against the importance of the store's most
//     redundant entry. Strictly higher novelty replaces that entry,
//     otherwise the store is unchanged beyond step 1.
//
// The frame is snapshotted on admission; the caller may reuse its buffer.
// The returned AdmissionEvent is the only externally visible signal of the
// decision besides the store's own state.
func (s *Store) Update(f *frame.Frame) AdmissionEvent {
	for _, e := range s.entries {
		e.Frame.ScaleInPlace(s.decay)
	}

	if len(s.entries) < s.capacity {
		entry := &Entry{
			ID:      s.node.Generate(),
			Frame:   f.Clone(),
			AddedAt: time.Now(),
		}
		s.entries = append(s.entries, entry)
		return AdmissionEvent{
			ID:       s.node.Generate(),
			Outcome:  OutcomeAdded,
			Index:    len(s.entries) - 1,
			EntryID:  entry.ID,
			StoreLen: len(s.entries),
			Time:     entry.AddedAt,
		}
	}

	sigs := s.signatures()
	candidate := histogram.Compute(f)

	var noveltySum float64
	for _, sig := range sigs {
		noveltySum += histogram.Distance(candidate, sig)
	}
	novelty := noveltySum / float64(len(sigs))

	importance := importanceScores(sigs)
	minIndex := 0
	for i, imp := range importance {
		if imp < importance[minIndex] {
			minIndex = i
		}
	}
	minImportance := importance[minIndex]

	now := time.Now()
	if novelty > minImportance {
		entry := &Entry{
			ID:      s.node.Generate(),
			Frame:   f.Clone(),
			AddedAt: now,
		}
		s.entries[minIndex] = entry
		return AdmissionEvent{
			ID:         s.node.Generate(),
			Outcome:    OutcomeReplaced,
			Index:      minIndex,
			EntryID:    entry.ID,
			Novelty:    novelty,
			Importance: minImportance,
			StoreLen:   len(s.entries),
			Time:       now,
		}
	}

	return AdmissionEvent{
		ID:         s.node.Generate(),
		Outcome:    OutcomeRejected,
		Index:      -1,
		Novelty:    novelty,
		Importance: minImportance,
		StoreLen:   len(s.entries),
		Time:       now,
	}
}

// signatures computes the current signature of every stored entry.
//
// Signatures reflect the entries' decayed state: they are never cached
// across cycles.
func (s *Store) signatures() []histogram.Signature {
	sigs := make([]histogram.Signature, len(s.entries))
	for i, e := range s.entries {
		sigs[i] = histogram.Compute(e.Frame)
	}
	return sigs
}
