package source

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/core"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
)

// PGMDir replays .pgm files from a directory in lexical order.
//
// Every file must match the expected dimensions exactly; there is no
// resizing. A mismatched file surfaces ErrDimensionMismatch, keeping the
// precondition check outside the core.
type PGMDir struct {
	width  int
	height int
	paths  []string
	next   int
}

// NewPGMDir scans dir for .pgm files and returns a source replaying them
// against the expected width and height.
//
// Returns an error if the directory cannot be read. An empty directory is
// a valid, immediately exhausted source.
func NewPGMDir(dir string, width, height int) (*PGMDir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.NewPipelineError("NewPGMDir", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pgm") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return &PGMDir{
		width:  width,
		height: height,
		paths:  paths,
	}, nil
}

// Len returns the number of frames the source will replay.
func (s *PGMDir) Len() int {
	return len(s.paths)
}

// Next decodes and returns the next file, or ErrSourceExhausted when all
// files have been replayed.
func (s *PGMDir) Next(ctx context.Context) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.paths) {
		return nil, core.ErrSourceExhausted
	}

	path := s.paths[s.next]
	s.next++

	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewPipelineError("Next", err)
	}
	defer file.Close()

	f, err := frame.ReadPGM(file)
	if err != nil {
		return nil, core.NewPipelineError("Next", err)
	}
	if f.Width != s.width || f.Height != s.height {
		return nil, core.NewPipelineError("Next", core.ErrDimensionMismatch)
	}
	return f, nil
}
