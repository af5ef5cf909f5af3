package game

// Phase is the turn-phase state machine position. GameOver is terminal.
type Phase string

const (
	PhaseReinforce  Phase = "Reinforce"
	PhaseAttack     Phase = "Attack"
	PhaseFortify    Phase = "Fortify"
	PhaseMoveArmies Phase = "MoveArmies"
	PhaseGameOver   Phase = "GameOver"
)

// startTurn resets per-turn state for the current player.
func (g *Game) startTurn() {
	g.ReinforcementArmies = g.CalculateReinforcements(g.CurrentTurn)
	g.InitialReinforcementArmies = g.ReinforcementArmies
	g.ConqueredTerritory = false
	g.Phase = PhaseReinforce
}

// AdvancePhase moves the state machine forward where nothing blocks it.
// In Reinforce the pool must be spent and the hand below five cards (the
// forced-trade rule); in Attack it is unconditional; in Fortify it ends
// the turn. MoveArmies and GameOver do not advance explicitly.
func (g *Game) AdvancePhase() {
	switch g.Phase {
	case PhaseReinforce:
		if g.ReinforcementArmies == 0 && len(g.Players[g.CurrentTurn].Cards) < 5 {
			g.Phase = PhaseAttack
		}
	case PhaseAttack:
		g.Phase = PhaseFortify
	case PhaseFortify:
		g.endTurn()
	}
}

// endTurn awards the conquest card, rotates to the next active player
// and begins their turn. The round counter increments when rotation
// wraps back to the first active player.
func (g *Game) endTurn() {
	if g.ConqueredTerritory && len(g.Deck) > 0 {
		card := g.Deck[len(g.Deck)-1]
		g.Deck = g.Deck[:len(g.Deck)-1]
		player := g.Players[g.CurrentTurn]
		player.Cards = append(player.Cards, card)
	}

	for i, idx := range g.ActivePlayers {
		if idx == g.CurrentTurn {
			next := (i + 1) % len(g.ActivePlayers)
			g.CurrentTurn = g.ActivePlayers[next]
			if next == 0 {
				g.Round++
			}
			break
		}
	}

	g.startTurn()
}
