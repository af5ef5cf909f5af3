package game

import "riskserver/conquest"

// Snapshot is the public view of the game, buildable at any time
// regardless of whether the last action succeeded.
type Snapshot struct {
	CurrentPlayer              string        `json:"current_player"`
	CurrentTurn                int           `json:"current_turn"`
	Round                      int           `json:"round"`
	TurnPhase                  Phase         `json:"turn_phase"`
	ConqueredTerritory         bool          `json:"conquered_territory"`
	ReinforcementArmies        int           `json:"reinforcement_armies"`
	InitialReinforcementArmies int           `json:"initial_reinforcement_armies"`
	DefeatedPlayers            []int         `json:"defeated_players"`
	PossibleActions            []Action      `json:"possible_actions"`
	Players                    []PlayerView  `json:"players"`
	Board                      BoardView     `json:"board"`
	ConquerProbs               []ConquerProb `json:"conquer_probs"`
}

// PlayerView is the public projection of one player ledger.
type PlayerView struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Territories []string       `json:"territories"`
	Armies      map[string]int `json:"armies"`
	Cards       []Card         `json:"cards"`
	ArmySupply  int            `json:"army_supply"`
	TotalArmies int            `json:"total_armies"`
}

// BoardView is the static board in serializable form.
type BoardView struct {
	Territories map[string]TerritoryView `json:"territories"`
	Continents  map[string]ContinentView `json:"continents"`
}

type TerritoryView struct {
	Name                string   `json:"name"`
	Continent           string   `json:"continent"`
	AdjacentTerritories []string `json:"adjacent_territories"`
}

type ContinentView struct {
	Name        string   `json:"name"`
	BonusArmies int      `json:"bonus_armies"`
	Territories []string `json:"territories"`
}

// ConquerProb is the win probability, as a rounded percentage, for one
// currently possible attack.
type ConquerProb struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Probability float64 `json:"probability"`
}

// Snapshot recomputes the derived per-player values and assembles the
// public state, including the legal-action list and the win probability
// of every possible attack.
func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerView, len(g.Players))
	for i, p := range g.Players {
		p.ArmySupply = g.CalculateReinforcements(i)
		p.RecomputeTotalArmies()

		armies := make(map[string]int, len(p.Armies))
		for territory, count := range p.Armies {
			armies[territory] = count
		}
		cards := append([]Card(nil), p.Cards...)
		players[i] = PlayerView{
			ID:          p.ID,
			Name:        p.Name,
			Territories: p.SortedTerritories(),
			Armies:      armies,
			Cards:       cards,
			ArmySupply:  p.ArmySupply,
			TotalArmies: p.TotalArmies,
		}
	}

	return Snapshot{
		CurrentPlayer:              g.Players[g.CurrentTurn].Name,
		CurrentTurn:                g.CurrentTurn,
		Round:                      g.Round,
		TurnPhase:                  g.Phase,
		ConqueredTerritory:         g.ConqueredTerritory,
		ReinforcementArmies:        g.ReinforcementArmies,
		InitialReinforcementArmies: g.InitialReinforcementArmies,
		DefeatedPlayers:            append([]int(nil), g.DefeatedPlayers...),
		PossibleActions:            g.PossibleActions(),
		Players:                    players,
		Board:                      g.boardView(),
		ConquerProbs:               g.ConquerProbabilities(),
	}
}

func (g *Game) boardView() BoardView {
	territories := make(map[string]TerritoryView, len(g.Board.Territories))
	for _, name := range g.Board.TerritoryNames() {
		t := g.Board.Territories[name]
		adjacent := append([]string(nil), t.Adjacent...)
		territories[name] = TerritoryView{
			Name:                t.Name,
			Continent:           t.Continent,
			AdjacentTerritories: adjacent,
		}
	}

	continents := make(map[string]ContinentView, len(g.Board.Continents))
	for name, c := range g.Board.Continents {
		continents[name] = ContinentView{
			Name:        c.Name,
			BonusArmies: c.BonusArmies,
			Territories: append([]string(nil), c.Territories...),
		}
	}
	return BoardView{Territories: territories, Continents: continents}
}

// ConquerProbabilities estimates the attacker win chance for every
// attack currently available on the board, for every player.
func (g *Game) ConquerProbabilities() []ConquerProb {
	var probs []ConquerProb
	for i, player := range g.Players {
		for _, territory := range player.SortedTerritories() {
			attackerArmies := player.ArmiesAt(territory)
			if attackerArmies <= 1 {
				continue
			}
			for _, adjacent := range g.Board.Territories[territory].Adjacent {
				defenderID, ok := g.ownerOf(adjacent)
				if !ok || defenderID == i {
					continue
				}
				defenderArmies := g.Players[defenderID].ArmiesAt(adjacent)
				probs = append(probs, ConquerProb{
					From:        territory,
					To:          adjacent,
					Probability: conquest.Percent(attackerArmies, defenderArmies, g.probs),
				})
			}
		}
	}
	return probs
}
