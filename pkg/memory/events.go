package memory

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Outcome is the result of one admission cycle.
type Outcome string

const (
	// OutcomeAdded means the store was below capacity and the frame was
	// appended at full strength.
	OutcomeAdded Outcome = "added"

	// OutcomeReplaced means the frame evicted the store's least
	// distinctive entry.
	OutcomeReplaced Outcome = "replaced"

	// OutcomeRejected means the frame was not informative enough to
	// displace any entry; the store is unchanged beyond its decay.
	OutcomeRejected Outcome = "rejected"
)

// AdmissionEvent records the outcome of one Store.Update call, including
// the numeric scores that drove the decision.
//
// Events are returned to the caller and forwarded to any configured
// observer; the store itself performs no I/O.
type AdmissionEvent struct {
	// ID is the unique event identifier.
	ID snowflake.ID `json:"id"`

	// Outcome is the admission decision.
	Outcome Outcome `json:"outcome"`

	// Index is the affected store slot: the append position for added,
	// the evicted slot for replaced, -1 for rejected.
	Index int `json:"index"`

	// EntryID identifies the admitted entry (zero for rejected).
	EntryID snowflake.ID `json:"entry_id,omitempty"`

	// Novelty is the candidate's mean signature distance to the stored
	// population. Only computed at capacity; zero for added.
	Novelty float64 `json:"novelty"`

	// Importance is the score of the store's least distinctive entry at
	// decision time. Only computed at capacity; zero for added.
	Importance float64 `json:"importance"`

	// StoreLen is the store length after the decision.
	StoreLen int `json:"store_len"`

	// Time is when the decision was made.
	Time time.Time `json:"time"`
}

// String renders the event in the pipeline's human-readable admission log
// format.
func (e AdmissionEvent) String() string {
	switch e.Outcome {
	case OutcomeAdded:
		return fmt.Sprintf("memory added, total memories: %d", e.StoreLen)
	case OutcomeReplaced:
		return fmt.Sprintf("replaced memory at index %d: new novelty %.2f > old importance %.2f",
			e.Index, e.Novelty, e.Importance)
	default:
		return fmt.Sprintf("new state novelty (%.2f) did not exceed minimum stored importance (%.2f), no replacement",
			e.Novelty, e.Importance)
	}
}
