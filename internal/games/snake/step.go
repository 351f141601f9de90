package snake

// Step advances a running game by one cell and returns the events the tick
// produced. It does nothing outside the Running phase.
func (g *Game) Step() []Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stepLocked()
}

// Advance runs Step and captures the resulting snapshot under the same lock,
// so the pair is consistent. ticked is false if the game was not running.
func (g *Game) Advance() (frame Frame, ticked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ticked = g.phase == PhaseRunning
	events := g.stepLocked()
	return Frame{Snapshot: g.snapshotLocked(), Events: events}, ticked
}

func (g *Game) stepLocked() []Event {
	if g.phase != PhaseRunning || len(g.snake) == 0 {
		return nil
	}
	g.tick++

	dir := g.dequeueLocked()
	head := g.snake[0].Add(dir).Wrap()

	// A fatal tick leaves the snake as it was before the move.
	// Obstacles are checked first, then every current segment including the tail.
	if g.obstacles.Has(head) || occupies(g.snake, head) {
		g.cancelAccelerationLocked()
		g.setPhaseLocked(PhaseOver)
		g.notify()
		return []Event{{Kind: EventGameOver, Score: g.score}}
	}

	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if head != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		return nil
	}

	g.score += ScorePerFood
	events := []Event{{Kind: EventFoodEaten, Score: g.score}}

	if g.score > g.sessionBest[g.difficulty] {
		g.sessionBest[g.difficulty] = g.score
		g.isNewRecord = true
		events = append(events, Event{Kind: EventNewRecord, Score: g.score})
	}

	g.food = PlaceFood(g.rng, g.snake, g.obstacles)
	return events
}
