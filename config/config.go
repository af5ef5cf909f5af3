// Package config loads the declarative game setup: players with their
// starting territories and hands, the territory adjacency graph, and
// the continent catalog. Violations are reported at load time so a
// broken configuration never reaches the engine.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"riskserver/game"
)

//go:embed default_config.json
var defaultConfig []byte

type GameConfig struct {
	Players     []PlayerConfig    `json:"players"`
	Territories []TerritoryConfig `json:"territories"`
	Continents  []ContinentConfig `json:"continents"`
}

type PlayerConfig struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name"`
	Territories []PlayerTerritoryConfig `json:"territories"`
	Cards       []CardConfig            `json:"cards"`
}

type PlayerTerritoryConfig struct {
	Name   string `json:"name"`
	Armies int    `json:"armies"`
}

type CardConfig struct {
	Territory string        `json:"territory,omitempty"`
	Kind      game.CardKind `json:"kind"`
}

type TerritoryConfig struct {
	Name                string   `json:"name"`
	Continent           string   `json:"continent"`
	AdjacentTerritories []string `json:"adjacent_territories"`
}

type ContinentConfig struct {
	Name        string   `json:"name"`
	BonusArmies int      `json:"bonus_armies"`
	Territories []string `json:"territories"`
}

// Load reads a game configuration from a JSON file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the embedded classic world map (no players; it backs
// randomized setup). The embedded file is validated at build time by
// the package tests, so a parse failure here is a programming error.
func Default() *GameConfig {
	var cfg GameConfig
	if err := json.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default config is invalid: %v", err))
	}
	return &cfg
}

// Board builds and validates the board graph: adjacency targets must
// exist and be symmetric, and continent membership must resolve.
func (c *GameConfig) Board() (*game.Board, error) {
	board := game.NewBoard()

	for _, tc := range c.Continents {
		board.AddContinent(&game.Continent{
			Name:        tc.Name,
			BonusArmies: tc.BonusArmies,
			Territories: append([]string(nil), tc.Territories...),
		})
	}

	for _, tc := range c.Territories {
		territory := &game.Territory{Name: tc.Name, Continent: tc.Continent}
		for _, adjacent := range tc.AdjacentTerritories {
			territory.AddAdjacent(adjacent)
		}
		board.AddTerritory(territory)
	}

	for name, territory := range board.Territories {
		if _, ok := board.Continents[territory.Continent]; !ok {
			return nil, fmt.Errorf("territory %q references unknown continent %q", name, territory.Continent)
		}
		for _, adjacent := range territory.Adjacent {
			other, ok := board.Territory(adjacent)
			if !ok {
				return nil, fmt.Errorf("territory %q is adjacent to unknown territory %q", name, adjacent)
			}
			if !other.IsAdjacent(name) {
				return nil, fmt.Errorf("adjacency is not symmetric: %q borders %q but not vice versa", name, adjacent)
			}
		}
	}

	for _, continent := range board.Continents {
		for _, member := range continent.Territories {
			if _, ok := board.Territory(member); !ok {
				return nil, fmt.Errorf("continent %q lists unknown territory %q", continent.Name, member)
			}
		}
	}

	return board, nil
}

// BoardAndPlayers builds the full configured setup. Every territory
// must be assigned to exactly one player; duplicates or gaps are fatal
// per the setup contract.
func (c *GameConfig) BoardAndPlayers() (*game.Board, []*game.Player, error) {
	board, err := c.Board()
	if err != nil {
		return nil, nil, err
	}
	if len(c.Players) < 2 {
		return nil, nil, fmt.Errorf("at least two players are required, got %d", len(c.Players))
	}

	assigned := make(map[string]struct{})
	players := make([]*game.Player, 0, len(c.Players))
	for _, pc := range c.Players {
		player := game.NewPlayer(pc.ID, pc.Name)
		for _, pt := range pc.Territories {
			if _, ok := board.Territory(pt.Name); !ok {
				return nil, nil, fmt.Errorf("player %q owns unknown territory %q", pc.Name, pt.Name)
			}
			if _, dup := assigned[pt.Name]; dup {
				return nil, nil, fmt.Errorf("territory %q is assigned to more than one player", pt.Name)
			}
			assigned[pt.Name] = struct{}{}
			player.AddTerritory(pt.Name)
			player.SetArmies(pt.Name, pt.Armies)
		}
		for _, cc := range pc.Cards {
			player.Cards = append(player.Cards, game.Card{Territory: cc.Territory, Kind: cc.Kind})
		}
		players = append(players, player)
	}

	var unassigned []string
	for name := range board.Territories {
		if _, ok := assigned[name]; !ok {
			unassigned = append(unassigned, name)
		}
	}
	if len(unassigned) > 0 {
		sort.Strings(unassigned)
		return nil, nil, fmt.Errorf("territories not assigned to any player: %v", unassigned)
	}

	return board, players, nil
}
