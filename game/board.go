package game

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// Territory is one ownable node of the board graph. Ownership lives on
// Player, not here; the board itself is static after setup.
type Territory struct {
	Name      string
	Continent string
	Adjacent  []string
}

// IsAdjacent reports whether the named territory borders t.
func (t *Territory) IsAdjacent(name string) bool {
	for _, adj := range t.Adjacent {
		if adj == name {
			return true
		}
	}
	return false
}

// AddAdjacent records a border to the named territory. Symmetry is the
// configuration's responsibility; this only guards against duplicates.
func (t *Territory) AddAdjacent(name string) {
	if !t.IsAdjacent(name) {
		t.Adjacent = append(t.Adjacent, name)
	}
}

// Continent is a named territory grouping worth bonus armies when one
// player holds every member.
type Continent struct {
	Name        string
	BonusArmies int
	Territories []string
}

// Board maps names to territories and continents.
type Board struct {
	Territories map[string]*Territory
	Continents  map[string]*Continent
}

func NewBoard() *Board {
	return &Board{
		Territories: make(map[string]*Territory),
		Continents:  make(map[string]*Continent),
	}
}

func (b *Board) AddTerritory(t *Territory) {
	b.Territories[t.Name] = t
}

func (b *Board) AddContinent(c *Continent) {
	b.Continents[c.Name] = c
}

// Territory looks up a territory by name.
func (b *Board) Territory(name string) (*Territory, bool) {
	t, ok := b.Territories[name]
	return t, ok
}

// TerritoryNames returns all territory names in sorted order, so that
// callers never depend on map iteration order.
func (b *Board) TerritoryNames() []string {
	names := make([]string, 0, len(b.Territories))
	for name := range b.Territories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reachable reports whether to can be reached from from through
// territories the owner holds, via depth-first search. Unknown territory
// names are lookup errors, not a silent false.
func (b *Board) Reachable(owned map[string]struct{}, from, to string) (bool, error) {
	if _, ok := b.Territories[from]; !ok {
		return false, fmt.Errorf("unknown territory %q", from)
	}
	if _, ok := b.Territories[to]; !ok {
		return false, fmt.Errorf("unknown territory %q", to)
	}

	visited := make(map[string]struct{})
	stack := []string{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == to {
			return true, nil
		}
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for _, adj := range b.Territories[current].Adjacent {
			_, owns := owned[adj]
			_, seen := visited[adj]
			if owns && !seen {
				stack = append(stack, adj)
			}
		}
	}
	return false, nil
}

// ShuffleAndDistribute deals every territory to the players round-robin
// within each continent, so no player can start out holding a whole
// continent. Each dealt territory starts with one army.
func (b *Board) ShuffleAndDistribute(players []*Player, rng *rand.Rand) {
	byContinent := make(map[string][]string)
	for _, name := range b.TerritoryNames() {
		continent := b.Territories[name].Continent
		byContinent[continent] = append(byContinent[continent], name)
	}

	continents := make([]string, 0, len(byContinent))
	for name := range byContinent {
		continents = append(continents, name)
	}
	sort.Strings(continents)

	playerIndex := 0
	for _, continent := range continents {
		territories := byContinent[continent]
		rng.Shuffle(len(territories), func(i, j int) {
			territories[i], territories[j] = territories[j], territories[i]
		})
		for _, territory := range territories {
			players[playerIndex].AddTerritory(territory)
			players[playerIndex].Reinforce(territory, 1)
			playerIndex = (playerIndex + 1) % len(players)
		}
	}
}
