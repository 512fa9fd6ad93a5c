package core

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/curiosity"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/memory"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/recall"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/space"
)

// Pipeline owns the adaptive visual memory state and processes one frame
// at a time.
//
// Each Step runs the full cycle in order: learning-space update, curiosity
// reward, recall, memory-store admission. The pipeline is single-threaded
// by construction: it exclusively owns the learning space and the memory
// store, so each cycle observes a consistent snapshot and mutations are
// complete before the next cycle reads them. It must not be shared across
// goroutines without external ordering.
//
// Example usage:
//
//	cfg := core.DefaultConfig()
//	pipeline, err := core.NewPipeline(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := pipeline.Step(ctx, f)
type Pipeline struct {
	// config is the fixed tuning for this pipeline.
	config *Config

	// space is the learning space, mutated every cycle.
	space *frame.Frame

	// updater applies the learning-space update.
	updater *space.Updater

	// store is the bounded long-term memory.
	store *memory.Store

	// recaller builds composite recollections.
	recaller *recall.Engine

	// estimator computes novelty and curiosity reward.
	estimator *curiosity.Estimator

	// observer receives admission events (nil when none registered).
	observer Observer

	// cycle counts processed frames.
	cycle uint64
}

// NewPipeline creates a pipeline from the configuration.
//
// The learning space starts all-zero and the memory store empty. The
// configuration is validated first; a snowflake node (default node 1) is
// created for entry and event IDs.
//
// Parameters:
//   - cfg: Pipeline tuning (see Config)
//   - opts: Optional parameters (WithObserver, WithSnowflakeNode)
//
// Returns a new Pipeline instance, or an error if the configuration is
// invalid or the ID node cannot be created.
func NewPipeline(cfg *Config, opts ...PipelineOption) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := applyPipelineOptions(opts)
	node := options.node
	if node == nil {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			return nil, NewPipelineError("NewPipeline", err)
		}
	}

	return &Pipeline{
		config:    cfg,
		space:     frame.New(cfg.Width, cfg.Height),
		updater:   space.NewUpdater(cfg.DecayLearning, cfg.BaseBlend, cfg.NovelBlend, cfg.DiffThreshold, cfg.ClampOutput),
		store:     memory.NewStore(cfg.MaxMemory, cfg.DecayFactor, node),
		recaller:  recall.NewEngine(cfg.SimilarityThreshold, cfg.SimilarityScale),
		estimator: curiosity.NewEstimator(cfg.PredictionThreshold, cfg.CuriosityFactor),
		observer:  options.observer,
	}, nil
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() *Config {
	return p.config
}

// Space returns the current learning space. The returned frame is the
// live state; callers must not mutate it.
func (p *Pipeline) Space() *frame.Frame {
	return p.space
}

// MemoryLen returns the current number of stored memories.
func (p *Pipeline) MemoryLen() int {
	return p.store.Len()
}

// Memories returns the current store entries, for telemetry.
func (p *Pipeline) Memories() []*memory.Entry {
	return p.store.Entries()
}

// Step processes one frame end-to-end and returns the cycle's outputs.
//
// The order matches the reference loop: learning-space update, curiosity
// reward against the pre-update store, recall against the pre-update
// store, then the store's admission cycle. A frame whose dimensions do
// not match the configured space is rejected with ErrDimensionMismatch
// before any state mutates.
//
// Step never fails for well-formed, matching-dimension input; the only
// error classes are the boundary preconditions above and context
// cancellation.
func (p *Pipeline) Step(ctx context.Context, f *frame.Frame) (*CycleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewPipelineError("Step", err)
	}
	if f == nil || len(f.Pix) != f.Width*f.Height {
		return nil, NewPipelineError("Step", ErrInvalidFrame)
	}
	if f.Width != p.config.Width || f.Height != p.config.Height {
		return nil, NewPipelineError("Step", ErrDimensionMismatch)
	}

	p.cycle++
	p.space = p.updater.Update(p.space, f)

	memories := p.store.Frames()
	reward, novelty := p.estimator.Reward(f, memories)
	composite, recalled := p.recaller.Recall(f, memories)

	event := p.store.Update(f)
	if p.observer != nil {
		p.observer.OnAdmission(event)
	}

	return &CycleResult{
		Cycle:     p.cycle,
		Input:     f,
		Space:     p.space,
		Recall:    composite,
		Recalled:  recalled,
		Reward:    reward,
		Novelty:   novelty,
		Admission: event,
	}, nil
}

// Run drives the frame loop: it pulls frames from the source and forwards
// each cycle's result to the sink until the source is exhausted or the
// context is cancelled.
//
// Source exhaustion ends the loop normally (nil error); any other source,
// step, or sink error is returned wrapped. A nil sink discards results.
func (p *Pipeline) Run(ctx context.Context, source Source, sink Sink) error {
	for {
		f, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrSourceExhausted) {
				return nil
			}
			return NewPipelineError("Run", err)
		}

		result, err := p.Step(ctx, f)
		if err != nil {
			return err
		}

		if sink != nil {
			if err := sink.Consume(result); err != nil {
				return NewPipelineError("Run", err)
			}
		}
	}
}
