package core

import (
	"context"
	"errors"
)

// RunStream drives the frame loop and delivers each cycle's result on a
// channel instead of a sink.
//
// Processing stays strictly sequential inside a single goroutine, so every
// cycle still observes a consistent snapshot of the learning space and the
// memory store. The channel is closed when the source is exhausted, the
// context is cancelled, or an error occurs; a terminal error is delivered
// as a final result with Err set.
//
// Example:
//
//	results := pipeline.RunStream(ctx, source)
//	for result := range results {
//	    if result.Err != nil {
//	        log.Fatal(result.Err)
//	    }
//	    display(result)
//	}
func (p *Pipeline) RunStream(ctx context.Context, source Source) <-chan *CycleResult {
	results := make(chan *CycleResult, 1)

	go func() {
		defer close(results)

		for {
			f, err := source.Next(ctx)
			if err != nil {
				if errors.Is(err, ErrSourceExhausted) {
					return
				}
				select {
				case results <- &CycleResult{Err: NewPipelineError("RunStream", err)}:
				case <-ctx.Done():
				}
				return
			}

			result, err := p.Step(ctx, f)
			if err != nil {
				select {
				case results <- &CycleResult{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
