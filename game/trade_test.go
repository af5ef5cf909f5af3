package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTradeCards(t *testing.T) {
	t.Run("bonus refills the reinforcement pool", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{
			{Kind: Artillery}, {Kind: Artillery}, {Kind: Artillery}, {Kind: Infantry},
		}

		bonus, err := g.TradeCards(0, []int{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, 8, bonus)
		require.Equal(t, 13, g.ReinforcementArmies, "opening pool of five plus the trade bonus")
		require.Len(t, g.Players[0].Cards, 1, "traded cards leave the hand")
		require.Equal(t, Infantry, g.Players[0].Cards[0].Kind)
		require.Len(t, g.DiscardPile, 3, "traded cards land on the discard pile")
	})

	t.Run("owned territory card grants two extra armies", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{
			{Territory: "Delta", Kind: Infantry},
			{Territory: "Alpha", Kind: Infantry},
			{Kind: Joker},
		}

		_, err := g.TradeCards(0, []int{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, 5, g.Players[0].ArmiesAt("Alpha"), "Alpha held three and gains two")
		require.False(t, g.Players[0].Owns("Delta"), "an unowned card territory grants nothing")
	})

	t.Run("only the first owned territory in removal order counts", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{
			{Territory: "Bravo", Kind: Cavalry},
			{Territory: "Alpha", Kind: Cavalry},
			{Kind: Joker},
		}

		_, err := g.TradeCards(0, []int{0, 1, 2})
		require.NoError(t, err)
		require.Equal(t, 5, g.Players[0].ArmiesAt("Alpha"), "highest index removed first, so Alpha matches first")
		require.Equal(t, 2, g.Players[0].ArmiesAt("Bravo"), "Bravo keeps its two armies")
	})

	t.Run("rejected outside the reinforce phase", func(t *testing.T) {
		g := testGame(1)
		g.Phase = PhaseAttack
		g.Players[0].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Infantry}}
		_, err := g.TradeCards(0, []int{0, 1, 2})
		require.Error(t, err)
	})

	t.Run("only the current player may trade", func(t *testing.T) {
		g := testGame(1)
		g.Players[1].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Infantry}}
		_, err := g.TradeCards(1, []int{0, 1, 2})
		require.Error(t, err)
	})

	t.Run("exactly three indices required", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Infantry}}
		_, err := g.TradeCards(0, []int{0, 1})
		require.Error(t, err)
	})

	t.Run("indices must be in range", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Infantry}}
		_, err := g.TradeCards(0, []int{0, 1, 3})
		require.Error(t, err)
		_, err = g.TradeCards(0, []int{-1, 1, 2})
		require.Error(t, err)
	})

	t.Run("duplicate indices are rejected", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Infantry}}
		_, err := g.TradeCards(0, []int{0, 1, 1})
		require.Error(t, err)
	})

	t.Run("invalid combination leaves the hand intact", func(t *testing.T) {
		g := testGame(1)
		g.Players[0].Cards = []Card{{Kind: Infantry}, {Kind: Infantry}, {Kind: Cavalry}}
		_, err := g.TradeCards(0, []int{0, 1, 2})
		require.Error(t, err)
		require.Len(t, g.Players[0].Cards, 3)
		require.Equal(t, 5, g.ReinforcementArmies)
	})
}
