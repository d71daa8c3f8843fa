package loop

import (
	"github.com/tomz197/spacerocks/internal/object"
)

// checkShipCollisions destroys the ship on the first asteroid that touches it.
// Later asteroids are not examined.
func (w *World) checkShipCollisions() {
	if w.ship == nil {
		return
	}
	for _, a := range w.asteroids {
		if object.Collides(a, w.ship) {
			w.logger.Info("ship destroyed", "frame", w.frame, "asteroid", a.Size)
			w.ship = nil
			w.status = StatusLost
			return
		}
	}
}

// checkBulletCollisions resolves bullet hits in two phases. The scan is
// read-only: each bullet, in order, claims the lowest-index asteroid it
// overlaps that no earlier bullet claimed. Removals and fragments are applied
// after the scan, so fragments cannot be hit in the frame they appear.
func (w *World) checkBulletCollisions() {
	if len(w.bullets) == 0 || len(w.asteroids) == 0 {
		return
	}

	w.asteroidGrid.Clear()
	for i, a := range w.asteroids {
		w.asteroidGrid.Insert(a.Pos, i)
	}

	claimed := make([]bool, len(w.asteroids))
	spent := make([]bool, len(w.bullets))
	var hits []int // claimed asteroid indices in hit order

	for bi, b := range w.bullets {
		target := -1
		w.asteroidGrid.QueryAround(b.Pos, func(ai int) bool {
			if claimed[ai] || (target >= 0 && ai > target) {
				return false
			}
			if object.Collides(w.asteroids[ai], b) {
				target = ai
			}
			return false
		})
		if target < 0 {
			continue
		}
		claimed[target] = true
		spent[bi] = true
		hits = append(hits, target)
	}

	if len(hits) == 0 {
		return
	}

	for _, ai := range hits {
		a := w.asteroids[ai]
		fragments := a.Split(w.geometry, w.rng)
		for _, f := range fragments {
			w.Spawn(f)
		}
		w.logger.Debug("asteroid split", "frame", w.frame, "size", a.Size, "fragments", len(fragments))
	}

	w.asteroids = compact(w.asteroids, claimed)
	w.bullets = compact(w.bullets, spent)
	w.FlushSpawned()
}

// compact removes items whose index is marked in drop, preserving order.
func compact[T any](items []*T, drop []bool) []*T {
	kept := items[:0]
	for i, it := range items {
		if !drop[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
