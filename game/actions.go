package game

// ActionType tags one entry of the legal-action list.
type ActionType string

const (
	ActionReinforce  ActionType = "reinforce"
	ActionAttack     ActionType = "attack"
	ActionFortify    ActionType = "fortify"
	ActionTradeCards ActionType = "trade_cards"
	ActionMoveArmies ActionType = "move_armies"
	ActionEndPhase   ActionType = "end_phase"
)

// Action is one legal move for the current player in the current phase.
// Only the fields relevant to the type are set.
type Action struct {
	Type        ActionType `json:"type"`
	Territory   string     `json:"territory,omitempty"`
	From        string     `json:"from,omitempty"`
	To          string     `json:"to,omitempty"`
	MaxArmies   int        `json:"max_armies,omitempty"`
	MinArmies   int        `json:"min_armies,omitempty"`
	MaxDice     int        `json:"max_dice,omitempty"`
	CardIndices []int      `json:"card_indices,omitempty"`
}

// PossibleActions enumerates every legal action for the current player.
// An explicit end-phase pseudo-action is appended wherever progression
// does not auto-trigger.
func (g *Game) PossibleActions() []Action {
	switch g.Phase {
	case PhaseReinforce:
		actions := g.reinforceActions()
		actions = append(actions, g.tradeActions()...)
		if g.ReinforcementArmies == 0 && len(g.Players[g.CurrentTurn].Cards) < 5 {
			actions = append(actions, Action{Type: ActionEndPhase})
		}
		return actions
	case PhaseAttack:
		return g.attackActions()
	case PhaseFortify:
		return g.fortifyActions()
	case PhaseMoveArmies:
		return g.moveArmiesActions()
	default:
		return nil
	}
}

func (g *Game) reinforceActions() []Action {
	var actions []Action
	if g.ReinforcementArmies == 0 {
		return actions
	}
	player := g.Players[g.CurrentTurn]
	for _, territory := range player.SortedTerritories() {
		actions = append(actions, Action{
			Type:      ActionReinforce,
			Territory: territory,
			MaxArmies: g.ReinforcementArmies,
		})
	}
	return actions
}

// tradeActions lists every distinct 3-card index combination that forms
// a valid trade. Combinations are generated in ascending index order, so
// each order-independent set appears exactly once.
func (g *Game) tradeActions() []Action {
	player := g.Players[g.CurrentTurn]
	var actions []Action
	if len(player.Cards) < 3 {
		return actions
	}

	for i := 0; i < len(player.Cards); i++ {
		for j := i + 1; j < len(player.Cards); j++ {
			for k := j + 1; k < len(player.Cards); k++ {
				kinds := []CardKind{player.Cards[i].Kind, player.Cards[j].Kind, player.Cards[k].Kind}
				if IsValidTrade(kinds) {
					actions = append(actions, Action{
						Type:        ActionTradeCards,
						CardIndices: []int{i, j, k},
					})
				}
			}
		}
	}
	return actions
}

func (g *Game) attackActions() []Action {
	player := g.Players[g.CurrentTurn]
	var actions []Action
	for _, territory := range player.SortedTerritories() {
		maxDice := player.ArmiesAt(territory) - 1
		if maxDice > 3 {
			maxDice = 3
		}
		if maxDice <= 0 {
			continue
		}
		for _, adjacent := range g.Board.Territories[territory].Adjacent {
			if !player.Owns(adjacent) {
				actions = append(actions, Action{
					Type:    ActionAttack,
					From:    territory,
					To:      adjacent,
					MaxDice: maxDice,
				})
			}
		}
	}
	actions = append(actions, Action{Type: ActionEndPhase})
	return actions
}

// fortifyActions walks the owned subgraph from every source with spare
// armies and offers each reachable owned destination.
func (g *Game) fortifyActions() []Action {
	player := g.Players[g.CurrentTurn]
	var actions []Action
	for _, from := range player.SortedTerritories() {
		maxArmies := player.ArmiesAt(from) - 1
		if maxArmies <= 0 {
			continue
		}

		visited := make(map[string]struct{})
		stack := []string{from}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := visited[current]; seen {
				continue
			}
			visited[current] = struct{}{}

			if current != from {
				actions = append(actions, Action{
					Type:      ActionFortify,
					From:      from,
					To:        current,
					MaxArmies: maxArmies,
				})
			}
			for _, adjacent := range g.Board.Territories[current].Adjacent {
				_, seen := visited[adjacent]
				if player.Owns(adjacent) && !seen {
					stack = append(stack, adjacent)
				}
			}
		}
	}
	actions = append(actions, Action{Type: ActionEndPhase})
	return actions
}

func (g *Game) moveArmiesActions() []Action {
	if g.pending == nil {
		return nil
	}
	player := g.Players[g.CurrentTurn]
	return []Action{{
		Type:      ActionMoveArmies,
		From:      g.pending.From,
		To:        g.pending.To,
		MinArmies: g.pending.Dice,
		MaxArmies: player.ArmiesAt(g.pending.From) - 1,
	}}
}
