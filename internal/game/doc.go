// Package game implements the rules engine for the chip capture game.
//
// The main type is GameState, which owns the players, the piles, turn history
// and the current phase, and exposes the operations a front end calls in
// response to player input.
//
// # Basic Usage
//
// Create a game and play a turn:
//
//	g, err := game.New(game.WithPlayers(4))
//	if err != nil {
//	    return err
//	}
//	// Player A puts an A chip on pile 1
//	if err := g.PlayChip(1, 'A'); err != nil {
//	    // rejected, nothing changed
//	}
//	// Three colours are missing from pile 1, so A chooses who goes next
//	if next, ok := g.Phase().(game.ChooseNextPlayer); ok {
//	    _ = g.ChooseNextPlayer(next.Eligible()[0])
//	}
//	if g.IsGameOver() {
//	    winner, _ := g.Winner()
//	}
//
// # Phases
//
// The game always waits on exactly one Phase:
//   - ChoosePile: PlayChip, or SelectPile followed by ChooseChip
//   - ChooseChip: ChooseChip, PlayChip on the selected pile, CancelSelection
//   - ChooseNextPlayer: ChooseNextPlayer with one of Eligible()
//   - EliminateChip: EliminateChip with a colour on the captured pile
//
// Any other call returns ErrWrongPhase and leaves the state untouched.
//
// # Events
//
// Every change is published on an EventBus (see WithEventBus) so front ends
// and transcripts can follow the game without polling. Timestamps come from
// the quartz.Clock passed with WithClock.
package game
