package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestIsValidTrade(t *testing.T) {
	cases := []struct {
		name  string
		kinds []CardKind
		valid bool
	}{
		{"three infantry", []CardKind{Infantry, Infantry, Infantry}, true},
		{"three cavalry", []CardKind{Cavalry, Cavalry, Cavalry}, true},
		{"three artillery", []CardKind{Artillery, Artillery, Artillery}, true},
		{"one of each", []CardKind{Infantry, Cavalry, Artillery}, true},
		{"pair plus joker", []CardKind{Infantry, Infantry, Joker}, true},
		{"mixed pair plus joker", []CardKind{Cavalry, Artillery, Joker}, true},
		{"two jokers", []CardKind{Infantry, Joker, Joker}, true},
		{"two infantry one cavalry", []CardKind{Infantry, Infantry, Cavalry}, false},
		{"two artillery one infantry", []CardKind{Artillery, Artillery, Infantry}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, IsValidTrade(tc.kinds))
		})
	}
}

func TestTradeInBonus(t *testing.T) {
	cases := []struct {
		name  string
		kinds []CardKind
		bonus int
	}{
		{"three infantry", []CardKind{Infantry, Infantry, Infantry}, 4},
		{"three cavalry", []CardKind{Cavalry, Cavalry, Cavalry}, 6},
		{"three artillery", []CardKind{Artillery, Artillery, Artillery}, 8},
		{"one of each", []CardKind{Infantry, Cavalry, Artillery}, 10},
		{"joker completed", []CardKind{Infantry, Infantry, Joker}, 10},
		{"double joker", []CardKind{Artillery, Joker, Joker}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bonus, err := TradeInBonus(tc.kinds)
			require.NoError(t, err)
			require.Equal(t, tc.bonus, bonus)
		})
	}

	t.Run("invalid set is rejected", func(t *testing.T) {
		_, err := TradeInBonus([]CardKind{Infantry, Infantry, Cavalry})
		require.Error(t, err, "a set matching none of the six patterns must be rejected")
	})
}

func TestNewDeck(t *testing.T) {
	board := testBoard()
	deck := NewDeck(board, rand.New(rand.NewSource(1)))

	require.Len(t, deck, len(board.Territories)+2, "one card per territory plus two jokers")

	jokers := 0
	territories := make(map[string]int)
	for _, card := range deck {
		if card.Kind == Joker {
			jokers++
			require.Empty(t, card.Territory, "jokers carry no territory")
			continue
		}
		territories[card.Territory]++
	}
	require.Equal(t, 2, jokers)
	for name := range board.Territories {
		require.Equal(t, 1, territories[name], "territory %s should appear on exactly one card", name)
	}
}
