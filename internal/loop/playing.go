package loop

import (
	"github.com/tomz197/spacerocks/internal/input"
)

// Step applies one frame of input and advances the world by one frame.
func Step(w *World, in input.Frame) {
	w.HandleInput(in)
	w.Update()
}

// HandleInput applies player intent to the ship. Fire presses are handled
// before held keys, so bullets leave along the heading from the previous frame.
// Does nothing once the ship is destroyed.
func (w *World) HandleInput(in input.Frame) {
	if w.ship == nil {
		return
	}

	for i := 0; i < in.Fire; i++ {
		w.bullets = append(w.bullets, w.ship.Shoot())
	}

	if in.Right {
		w.ship.Rotate(true)
	} else if in.Left {
		w.ship.Rotate(false)
	}

	if in.Up {
		w.ship.Accelerate()
	} else if in.Down {
		w.ship.SlowDown()
	}
}

// Update advances the world by one frame: move, resolve collisions, drop
// escaped bullets, then check for a win.
func (w *World) Update() {
	w.frame++

	w.moveAll()
	w.checkShipCollisions()
	w.checkBulletCollisions()
	w.removeEscapedBullets()

	if w.ship != nil && len(w.asteroids) == 0 && w.status != StatusWon {
		w.status = StatusWon
		w.logger.Info("game won", "frame", w.frame)
	}
}

// moveAll advances every entity by its velocity.
func (w *World) moveAll() {
	for _, a := range w.asteroids {
		a.Move(w.screen)
	}
	for _, b := range w.bullets {
		b.Move(w.screen)
	}
	if w.ship != nil {
		w.ship.Move(w.screen)
	}
}

// removeEscapedBullets drops bullets that have left the screen rectangle.
func (w *World) removeEscapedBullets() {
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		if w.screen.Contains(b.Pos) {
			kept = append(kept, b)
		}
	}
	clear(w.bullets[len(kept):])
	w.bullets = kept
}
