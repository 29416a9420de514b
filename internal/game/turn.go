package game

import "slices"

// setNextPlayer is the only way the turn advances. It records the player in
// turn history and then knocks out any chain of players left without chips.
func (g *GameState) setNextPlayer(idx int, reason TurnReason) {
	from := g.current
	g.current = idx
	g.turnHistory = append(g.turnHistory, idx)

	g.bus.Publish(TurnPassedEvent{
		From:      LetterAt(from),
		To:        LetterAt(idx),
		Reason:    reason,
		timestamp: g.clock.Now(),
	})

	g.eliminationCascade()
}

// eliminationCascade eliminates the current player while they hold no chips
// and someone else is still in the game. The turn falls back to the most
// recent surviving entry of turn history.
//
// When turn history runs dry (two players knocking each other out in turn
// can empty it) the lowest-index active player is picked. That fallback
// keeps games reproducible; it is not a rule of the game.
func (g *GameState) eliminationCascade() {
	for range g.players {
		p := g.players[g.current]
		if p.TotalChips() > 0 || p.Eliminated || g.countActive() <= 1 {
			break
		}

		p.Eliminated = true
		out := g.current
		g.turnHistory = slices.DeleteFunc(g.turnHistory, func(i int) bool { return i == out })

		fallback := len(g.turnHistory) == 0
		if fallback {
			g.current = g.firstActive()
		} else {
			g.current = g.turnHistory[len(g.turnHistory)-1]
		}

		g.logger.Info("Player eliminated", "player", p.Letter, "current", LetterAt(g.current), "fallback", fallback)
		g.bus.Publish(PlayerEliminatedEvent{
			Player:    p.Letter,
			Current:   LetterAt(g.current),
			Fallback:  fallback,
			timestamp: g.clock.Now(),
		})
	}

	if !g.over && g.IsGameOver() {
		g.over = true
		winner, _ := g.Winner()
		g.logger.Info("Game over", "winner", winner.Letter)
		g.bus.Publish(GameOverEvent{
			Winner:    winner.Letter,
			timestamp: g.clock.Now(),
		})
	}
}

func (g *GameState) firstActive() int {
	for i, p := range g.players {
		if p.IsActive() {
			return i
		}
	}
	return g.current
}
