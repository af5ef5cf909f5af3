package game

import (
	"fmt"
	"sort"
)

// TradeCards exchanges exactly three cards from the current player's
// hand for bonus reinforcement armies. The cards move to the discard
// pile, highest index first so the remaining indices stay valid. If one
// of the traded cards names a territory the player owns, that territory
// immediately receives two extra armies; only the first such card in
// removal order counts. Returns the bonus granted.
func (g *Game) TradeCards(playerID int, cardIndices []int) (int, error) {
	if g.Phase != PhaseReinforce {
		return 0, fmt.Errorf("cards can only be traded during the reinforcement phase")
	}
	player, err := g.requireTurn(playerID)
	if err != nil {
		return 0, err
	}
	if len(cardIndices) != 3 {
		return 0, fmt.Errorf("you must trade exactly 3 cards, got indices %v", cardIndices)
	}

	seen := make(map[int]struct{}, 3)
	kinds := make([]CardKind, 0, 3)
	for _, index := range cardIndices {
		if index < 0 || index >= len(player.Cards) {
			return 0, fmt.Errorf("invalid card index %d, indices %v", index, cardIndices)
		}
		if _, dup := seen[index]; dup {
			return 0, fmt.Errorf("duplicate card index %d, indices %v", index, cardIndices)
		}
		seen[index] = struct{}{}
		kinds = append(kinds, player.Cards[index].Kind)
	}

	bonus, err := TradeInBonus(kinds)
	if err != nil {
		return 0, err
	}

	indices := append([]int(nil), cardIndices...)
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	territoryToReinforce := ""
	for _, index := range indices {
		card := player.Cards[index]
		player.Cards = append(player.Cards[:index], player.Cards[index+1:]...)
		if territoryToReinforce == "" && card.Territory != "" && player.Owns(card.Territory) {
			territoryToReinforce = card.Territory
		}
		g.DiscardPile = append(g.DiscardPile, card)
	}
	if territoryToReinforce != "" {
		player.Reinforce(territoryToReinforce, 2)
	}

	g.ReinforcementArmies += bonus
	return bonus, nil
}
