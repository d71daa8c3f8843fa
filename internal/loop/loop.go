// Package loop owns the game world and drives it frame by frame.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/input"
	"github.com/tomz197/spacerocks/internal/object"
)

// InputSource yields the input for the next frame without blocking.
type InputSource interface {
	Poll() input.Frame
}

// Renderer draws one frame.
type Renderer interface {
	Render(scene object.Scene) error
}

// Run drives the Input → Update → Draw cycle at config.TargetFPS until a quit
// event arrives or ctx is cancelled. Quitting is not an error.
func Run(ctx context.Context, w *World, src InputSource, r Renderer) error {
	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := src.Poll()
		if in.Quit {
			return nil
		}

		// ===== UPDATE PHASE =====
		Step(w, in)

		// ===== DRAW PHASE =====
		if err := r.Render(w.Scene()); err != nil {
			return fmt.Errorf("render frame %d: %w", w.Frame(), err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(config.TargetFrameTime - elapsed):
			}
		}
	}
}
