package snake

// laneClearLocked casts a ray from the head in direction dir until it leaves
// the grid. The lane is clear when no obstacle and no food lies on it, so a
// sprint never rushes into a wall or past the food.
func (g *Game) laneClearLocked(dir Direction) bool {
	if len(g.snake) == 0 {
		return false
	}
	for c := g.snake[0].Add(dir); c.InBounds(); c = c.Add(dir) {
		if g.obstacles.Has(c) || c == g.food {
			return false
		}
	}
	return true
}

// grantAccelerationLocked starts or extends a sprint. The previous expiry
// timer is replaced.
func (g *Game) grantAccelerationLocked() {
	if g.accelTimer != nil {
		g.accelTimer.Stop()
	}
	g.accelGen++
	gen := g.accelGen

	window := g.table.Acceleration().Window()
	g.accelTimer = g.clock.AfterFunc(window, func() {
		g.expireAcceleration(gen)
	})

	if !g.accelerating {
		g.accelerating = true
		g.logger.Debug("sprint", "interval", g.intervalLocked(), "window", window)
		g.notify()
	}
}

// expireAcceleration ends the sprint started by grant number gen. Expiries
// of replaced or cancelled grants do nothing.
func (g *Game) expireAcceleration(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.accelGen || !g.accelerating {
		return
	}
	g.accelerating = false
	g.accelTimer = nil
	g.notify()
}

// cancelAccelerationLocked ends any sprint and stops its expiry timer.
func (g *Game) cancelAccelerationLocked() {
	if g.accelTimer != nil {
		g.accelTimer.Stop()
		g.accelTimer = nil
	}
	g.accelGen++
	if g.accelerating {
		g.accelerating = false
		g.notify()
	}
}

// Accelerating reports whether a sprint is active.
func (g *Game) Accelerating() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accelerating
}
