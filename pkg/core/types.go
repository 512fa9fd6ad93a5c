package core

import (
	"context"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/memory"
)

// CycleResult carries everything one processed frame exposes to the
// display/telemetry side.
type CycleResult struct {
	// Cycle is the 1-based frame counter.
	Cycle uint64 `json:"cycle"`

	// Input is the raw frame that was processed.
	Input *frame.Frame `json:"-"`

	// Space is the learning space after this cycle's update.
	Space *frame.Frame `json:"-"`

	// Recall is the composite recollection, nil when nothing was
	// recalled. Check Recalled rather than the pointer.
	Recall *frame.Frame `json:"-"`

	// Recalled reports whether any stored memory qualified for recall.
	Recalled bool `json:"recalled"`

	// Reward is the curiosity reward: exactly 0 at or below the
	// prediction threshold, novelty*CuriosityFactor above it.
	Reward float64 `json:"reward"`

	// Novelty is the raw novelty behind the reward.
	Novelty float64 `json:"novelty"`

	// Admission records the memory store's decision for this frame.
	Admission memory.AdmissionEvent `json:"admission"`

	// Err carries a processing error on streaming delivery, nil otherwise.
	Err error `json:"-"`
}

// RecallOrZero returns the recall composite, or an all-zero frame of the
// input's dimensions when nothing was recalled. This mirrors the display
// placeholder behaviour of the reference loop.
func (r *CycleResult) RecallOrZero() *frame.Frame {
	if r.Recalled {
		return r.Recall
	}
	return frame.New(r.Input.Width, r.Input.Height)
}

// Source produces fixed-size single-channel frames at some rate.
//
// Next blocks until a frame is available, the context is cancelled, or
// the stream ends. End-of-stream is reported as ErrSourceExhausted.
type Source interface {
	Next(ctx context.Context) (*frame.Frame, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*frame.Frame, error)

// Next calls the wrapped function.
func (f SourceFunc) Next(ctx context.Context) (*frame.Frame, error) {
	return f(ctx)
}

// Sink consumes per-cycle results on the display/telemetry side.
type Sink interface {
	Consume(result *CycleResult) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(result *CycleResult) error

// Consume calls the wrapped function.
func (f SinkFunc) Consume(result *CycleResult) error {
	return f(result)
}

// Observer receives memory-store admission events as they are decided.
//
// Observers run synchronously inside the cycle; they should be fast and
// must not call back into the pipeline.
type Observer interface {
	OnAdmission(event memory.AdmissionEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event memory.AdmissionEvent)

// OnAdmission calls the wrapped function.
func (f ObserverFunc) OnAdmission(event memory.AdmissionEvent) {
	f(event)
}
