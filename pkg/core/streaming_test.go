package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/core"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
)

// countingSource produces n uniform frames then reports exhaustion.
type countingSource struct {
	n        int
	produced int
	value    float64
}

func (s *countingSource) Next(ctx context.Context) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.produced >= s.n {
		return nil, core.ErrSourceExhausted
	}
	s.produced++
	return frame.Uniform(4, 4, s.value+float64(s.produced)), nil
}

func TestRunDrivesLoopToExhaustion(t *testing.T) {
	pipeline, err := core.NewPipeline(smallConfig())
	require.NoError(t, err)

	var consumed int
	err = pipeline.Run(context.Background(), &countingSource{n: 7, value: 50},
		core.SinkFunc(func(r *core.CycleResult) error {
			consumed++
			assert.Equal(t, uint64(consumed), r.Cycle)
			return nil
		}))
	require.NoError(t, err, "source exhaustion ends the loop normally")
	assert.Equal(t, 7, consumed)
}

func TestRunNilSinkDiscards(t *testing.T) {
	pipeline, err := core.NewPipeline(smallConfig())
	require.NoError(t, err)
	require.NoError(t, pipeline.Run(context.Background(), &countingSource{n: 3, value: 50}, nil))
	assert.Equal(t, 3, pipeline.MemoryLen())
}

func TestRunStreamDeliversInOrderThenCloses(t *testing.T) {
	pipeline, err := core.NewPipeline(smallConfig())
	require.NoError(t, err)

	var cycles []uint64
	for result := range pipeline.RunStream(context.Background(), &countingSource{n: 5, value: 50}) {
		require.NoError(t, result.Err)
		cycles = append(cycles, result.Cycle)
	}
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, cycles)
}

func TestRunStreamSurfacesStepError(t *testing.T) {
	pipeline, err := core.NewPipeline(smallConfig())
	require.NoError(t, err)

	// A mismatched source frame must surface as a terminal result.
	bad := core.SourceFunc(func(ctx context.Context) (*frame.Frame, error) {
		return frame.Uniform(8, 8, 10), nil
	})

	var last *core.CycleResult
	for result := range pipeline.RunStream(context.Background(), bad) {
		last = result
	}
	require.NotNil(t, last)
	assert.ErrorIs(t, last.Err, core.ErrDimensionMismatch)
}

func TestRunStreamStopsOnCancel(t *testing.T) {
	pipeline, err := core.NewPipeline(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	results := pipeline.RunStream(ctx, &countingSource{n: 1000, value: 50})

	<-results
	cancel()
	for range results {
		// Drain until the goroutine notices the cancel and closes.
	}
}
