package snake

// RequestDirection feeds a direction input into the single-slot queue.
//
// The first input of an Idle or Paused game starts it. Inputs to a finished
// game and malformed directions are ignored. Repeating the current heading
// with accelerate set asks for a sprint instead of queuing anything.
// Otherwise the newest valid request replaces whatever is queued, where
// validity is checked against the queued direction if there is one, else
// the last applied heading. Checking against the queue stops two quick
// turns from sneaking a reversal in between ticks.
func (g *Game) RequestDirection(dir Direction, accelerate bool) {
	if !dir.Valid() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseOver {
		return
	}

	wasRunning := g.phase == PhaseRunning
	if !wasRunning {
		g.setPhaseLocked(PhaseRunning)
		g.notify()
	}

	sameDirection := dir == g.heading
	if sameDirection && accelerate && wasRunning {
		if g.laneClearLocked(dir) {
			g.grantAccelerationLocked()
		}
		return
	}

	if !sameDirection {
		g.cancelAccelerationLocked()
	}

	ref := g.heading
	if g.hasPending {
		ref = g.pending
	}
	if isValidTurn(dir, ref) {
		g.pending = dir
		g.hasPending = true
	}
}

// dequeueLocked pops the pending direction if it is still a valid turn from
// the current heading, and records the result as the applied heading.
func (g *Game) dequeueLocked() Direction {
	next := g.heading
	if g.hasPending {
		if isValidTurn(g.pending, g.heading) {
			next = g.pending
		}
		g.pending = Direction{}
		g.hasPending = false
	}
	g.heading = next
	return next
}
