package game

import "sort"

// Player is the per-player ledger: owned territories, army counts per
// owned territory, and the card hand. IDs are assigned at game creation
// and never reused.
type Player struct {
	ID          int
	Name        string
	Territories map[string]struct{}
	Armies      map[string]int
	Cards       []Card

	// Derived values, recomputed when a snapshot is built.
	ArmySupply  int
	TotalArmies int
}

func NewPlayer(id int, name string) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Territories: make(map[string]struct{}),
		Armies:      make(map[string]int),
	}
}

// Owns reports whether the player holds the named territory.
func (p *Player) Owns(territory string) bool {
	_, ok := p.Territories[territory]
	return ok
}

// AddTerritory takes ownership of a territory with zero armies tracked.
func (p *Player) AddTerritory(territory string) {
	p.Territories[territory] = struct{}{}
	p.Armies[territory] = 0
}

// RemoveTerritory drops ownership along with the army entry.
func (p *Player) RemoveTerritory(territory string) {
	delete(p.Territories, territory)
	delete(p.Armies, territory)
}

// Reinforce adds armies to a territory, creating the entry if absent.
func (p *Player) Reinforce(territory string, n int) {
	p.Armies[territory] += n
}

// RemoveArmies subtracts armies, saturating at zero.
func (p *Player) RemoveArmies(territory string, n int) {
	if armies, ok := p.Armies[territory]; ok {
		if n > armies {
			n = armies
		}
		p.Armies[territory] = armies - n
	}
}

// ArmiesAt returns the army count, zero for untracked territories.
func (p *Player) ArmiesAt(territory string) int {
	return p.Armies[territory]
}

// SetArmies overwrites the army count. Used at setup.
func (p *Player) SetArmies(territory string, n int) {
	p.Armies[territory] = n
}

// Fortify moves n armies from one territory to another, skipping
// silently when from holds fewer than n. Callers pre-validate.
func (p *Player) Fortify(from, to string, n int) {
	if armies, ok := p.Armies[from]; ok && armies >= n {
		p.Armies[from] = armies - n
		p.Armies[to] += n
	}
}

// RecomputeTotalArmies refreshes the cached army total.
func (p *Player) RecomputeTotalArmies() {
	total := 0
	for _, armies := range p.Armies {
		total += armies
	}
	p.TotalArmies = total
}

// SortedTerritories returns the owned territory names in sorted order.
func (p *Player) SortedTerritories() []string {
	names := make([]string, 0, len(p.Territories))
	for name := range p.Territories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
