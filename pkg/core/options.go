package core

import "github.com/bwmarrin/snowflake"

// PipelineOption is a function type for configuring pipeline construction.
//
// Options are applied using the functional options pattern, allowing
// flexible configuration without requiring all parameters.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	observer Observer
	node     *snowflake.Node
}

// WithObserver registers an observer for memory admission events.
//
// Example:
//
//	pipeline, _ := core.NewPipeline(cfg,
//	    core.WithObserver(core.ObserverFunc(func(e memory.AdmissionEvent) {
//	        log.Println(e)
//	    })),
//	)
func WithObserver(observer Observer) PipelineOption {
	return func(opts *pipelineOptions) {
		opts.observer = observer
	}
}

// WithSnowflakeNode supplies the ID generator node instead of the default
// node 1. Useful when several pipelines share a process and IDs must not
// collide.
func WithSnowflakeNode(node *snowflake.Node) PipelineOption {
	return func(opts *pipelineOptions) {
		opts.node = node
	}
}

func applyPipelineOptions(opts []PipelineOption) *pipelineOptions {
	options := &pipelineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
