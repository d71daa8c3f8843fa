package loop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacerocks/internal/input"
	"github.com/tomz197/spacerocks/internal/object"
)

// scriptedSource replays frames and then quits.
type scriptedSource struct {
	frames []input.Frame
	polled int
}

func (s *scriptedSource) Poll() input.Frame {
	if s.polled >= len(s.frames) {
		return input.Frame{Quit: true}
	}
	f := s.frames[s.polled]
	s.polled++
	return f
}

type recordingRenderer struct {
	scenes []object.Scene
	err    error
}

func (r *recordingRenderer) Render(scene object.Scene) error {
	r.scenes = append(r.scenes, scene)
	return r.err
}

func TestRunStopsOnQuit(t *testing.T) {
	w := newTestWorld(t, 7)
	src := &scriptedSource{frames: []input.Frame{{}, {Fire: 1}, {Right: true}}}
	r := &recordingRenderer{}

	require.NoError(t, Run(context.Background(), w, src, r))

	assert.Equal(t, uint64(3), w.Frame())
	assert.Len(t, r.scenes, 3)
	assert.Len(t, r.scenes[1].Bullets, 1)
}

func TestRunStopsOnCancel(t *testing.T) {
	w := newTestWorld(t, 7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Run(ctx, w, &scriptedSource{frames: []input.Frame{{}}}, &recordingRenderer{}))
	assert.Zero(t, w.Frame())
}

func TestRunReturnsRenderError(t *testing.T) {
	w := newTestWorld(t, 7)
	boom := errors.New("boom")

	err := Run(context.Background(), w, &scriptedSource{frames: []input.Frame{{}, {}}}, &recordingRenderer{err: boom})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render frame 1")
}
