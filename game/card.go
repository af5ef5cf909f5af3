package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// CardKind is one of the three troop kinds or the wild Joker.
type CardKind string

const (
	Infantry  CardKind = "Infantry"
	Cavalry   CardKind = "Cavalry"
	Artillery CardKind = "Artillery"
	Joker     CardKind = "Joker"
)

// Card lives in exactly one of a hand, the draw deck, or the discard
// pile. Jokers carry no territory.
type Card struct {
	Territory string   `json:"territory,omitempty"`
	Kind      CardKind `json:"kind"`
}

// NewDeck builds a shuffled deck with one card of a random troop kind
// per territory plus two Jokers.
func NewDeck(board *Board, rng *rand.Rand) []Card {
	kinds := []CardKind{Infantry, Cavalry, Artillery}
	var deck []Card
	for _, name := range board.TerritoryNames() {
		deck = append(deck, Card{Territory: name, Kind: kinds[rng.Intn(len(kinds))]})
	}
	deck = append(deck, Card{Kind: Joker}, Card{Kind: Joker})

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// IsValidTrade reports whether exactly three cards form a tradable set:
// three of a kind, one of each troop kind, or any trio completed by at
// least one Joker.
func IsValidTrade(kinds []CardKind) bool {
	infantry, cavalry, artillery, jokers := countKinds(kinds)

	if infantry == 3 || cavalry == 3 || artillery == 3 {
		return true
	}
	if infantry == 1 && cavalry == 1 && artillery == 1 {
		return true
	}
	return jokers > 0 && infantry+cavalry+artillery+jokers == 3
}

// TradeInBonus returns the army bonus for a valid 3-card set, or an
// error for a set matching none of the six patterns.
func TradeInBonus(kinds []CardKind) (int, error) {
	infantry, cavalry, artillery, jokers := countKinds(kinds)

	switch {
	case infantry == 3:
		return 4, nil
	case cavalry == 3:
		return 6, nil
	case artillery == 3:
		return 8, nil
	case infantry == 1 && cavalry == 1 && artillery == 1:
		return 10, nil
	case jokers > 0:
		jokerSets := []bool{
			infantry+jokers == 3,
			cavalry+jokers == 3,
			artillery+jokers == 3,
			infantry+cavalry+jokers == 3,
			infantry+artillery+jokers == 3,
			cavalry+artillery+jokers == 3,
		}
		for _, valid := range jokerSets {
			if valid {
				return 10, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid combination of cards: %v", kinds)
}

func countKinds(kinds []CardKind) (infantry, cavalry, artillery, jokers int) {
	for _, kind := range kinds {
		switch kind {
		case Infantry:
			infantry++
		case Cavalry:
			cavalry++
		case Artillery:
			artillery++
		case Joker:
			jokers++
		}
	}
	return
}
