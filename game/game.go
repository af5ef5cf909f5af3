package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"riskserver/conquest"
)

// Game owns the authoritative match state. It is the single mutation
// entry point: every action below validates, then either mutates and
// returns nil or leaves the state untouched and returns a descriptive
// error. Callers must serialize access (see server).
type Game struct {
	Players                    []*Player
	Board                      *Board
	CurrentTurn                int
	Round                      int
	Phase                      Phase
	ReinforcementArmies        int
	InitialReinforcementArmies int
	Deck                       []Card
	DiscardPile                []Card
	ConqueredTerritory         bool
	DefeatedPlayers            []int
	ActivePlayers              []int

	pending *pendingMove
	probs   *conquest.Table
	rng     *rand.Rand
}

// pendingMove is the post-conquest army move still owed: set when an
// attack takes a territory, cleared when consumed.
type pendingMove struct {
	From string
	To   string
	Dice int
}

// New assembles a game from an already-built board and player ledgers,
// as produced by a declarative configuration. A nil table starts with a
// cold memo; a nil rng is seeded from the clock.
func New(board *Board, players []*Player, table *conquest.Table, rng *rand.Rand) *Game {
	if table == nil {
		table = conquest.NewTable()
	}
	if rng == nil {
		rng = NewRNG()
	}

	active := make([]int, len(players))
	for i := range active {
		active[i] = i
	}

	g := &Game{
		Players:       players,
		Board:         board,
		Deck:          NewDeck(board, rng),
		ActivePlayers: active,
		probs:         table,
		rng:           rng,
	}
	g.startTurn()
	return g
}

// NewRandom assembles a game with randomized setup: territories are
// dealt round-robin per continent and every player is topped up evenly
// to the initial army total for the player count.
func NewRandom(board *Board, numPlayers int, table *conquest.Table, rng *rand.Rand) *Game {
	if rng == nil {
		rng = NewRNG()
	}

	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = NewPlayer(i, fmt.Sprintf("Player %d", i+1))
	}

	board.ShuffleAndDistribute(players, rng)
	topUpArmies(players, initialArmies(numPlayers))

	return New(board, players, table, rng)
}

// initialArmies is the per-player starting total for a player count.
func initialArmies(numPlayers int) int {
	switch numPlayers {
	case 3:
		return 35
	case 4:
		return 30
	case 5:
		return 25
	default:
		return 20
	}
}

// topUpArmies spreads one army at a time over each player's territories
// until everyone reaches the initial total.
func topUpArmies(players []*Player, initial int) {
	remaining := make([]int, len(players))
	for i, p := range players {
		onBoard := 0
		for _, armies := range p.Armies {
			onBoard += armies
		}
		remaining[i] = initial - onBoard
	}

	for {
		done := true
		for i, p := range players {
			if remaining[i] <= 0 {
				continue
			}
			done = false
			for _, territory := range p.SortedTerritories() {
				if remaining[i] == 0 {
					break
				}
				p.Reinforce(territory, 1)
				remaining[i]--
			}
		}
		if done {
			return
		}
	}
}

// player resolves an ID, which doubles as the index into Players.
func (g *Game) player(id int) (*Player, error) {
	if id < 0 || id >= len(g.Players) {
		return nil, fmt.Errorf("invalid player ID %d", id)
	}
	return g.Players[id], nil
}

// requireTurn rejects actions by anyone but the current player.
func (g *Game) requireTurn(id int) (*Player, error) {
	player, err := g.player(id)
	if err != nil {
		return nil, err
	}
	if id != g.CurrentTurn {
		return nil, fmt.Errorf("it is not %s's turn", player.Name)
	}
	return player, nil
}

// ownerOf finds the player index holding a territory.
func (g *Game) ownerOf(territory string) (int, bool) {
	for i, p := range g.Players {
		if p.Owns(territory) {
			return i, true
		}
	}
	return 0, false
}

// Reinforce places armies from the turn's reinforcement pool onto an
// owned territory. Spending the pool down to zero advances the phase to
// Attack, unless a five-card hand forces a trade first.
func (g *Game) Reinforce(playerID int, territory string, numArmies int) error {
	if g.Phase != PhaseReinforce {
		return fmt.Errorf("it's not the reinforcement phase")
	}
	player, err := g.requireTurn(playerID)
	if err != nil {
		return err
	}
	if !player.Owns(territory) {
		return fmt.Errorf("territory %q does not belong to player %d", territory, playerID)
	}
	if numArmies < 1 {
		return fmt.Errorf("must place at least one army")
	}
	if numArmies > g.ReinforcementArmies {
		return fmt.Errorf("not enough reinforcement armies available")
	}

	player.Reinforce(territory, numArmies)
	g.ReinforcementArmies -= numArmies

	if g.ReinforcementArmies == 0 && len(player.Cards) < 5 {
		g.Phase = PhaseAttack
	}
	return nil
}

// Attack resolves combat between an owned territory and an adjacent
// enemy one. Each round both sides roll, rolls are paired high-to-high
// and ties favor the defender. With repeat the rounds continue until
// the territory falls or the attacker is down to one army. Conquering
// records the pending post-attack move and enters MoveArmies, or
// GameOver when the attacker now owns the whole board.
func (g *Game) Attack(attackerID int, from, to string, numDice int, repeat bool) error {
	if g.Phase != PhaseAttack {
		return fmt.Errorf("it's not the attack phase")
	}
	attacker, err := g.requireTurn(attackerID)
	if err != nil {
		return err
	}
	defenderID, ok := g.ownerOf(to)
	if !ok {
		return fmt.Errorf("no player owns territory %q", to)
	}
	if defenderID == attackerID {
		return fmt.Errorf("cannot attack your own territory %q", to)
	}
	if !attacker.Owns(from) {
		return fmt.Errorf("territory %q does not belong to the attacker", from)
	}
	fromTerritory, ok := g.Board.Territory(from)
	if !ok {
		return fmt.Errorf("unknown territory %q", from)
	}
	if !fromTerritory.IsAdjacent(to) {
		return fmt.Errorf("%q is not adjacent to %q", to, from)
	}
	if numDice < 1 {
		return fmt.Errorf("at least one die is required to attack")
	}
	if attacker.ArmiesAt(from) <= 1 {
		return fmt.Errorf("not enough armies in %q to attack", from)
	}

	defender := g.Players[defenderID]
	for {
		dice := min3(numDice, attacker.ArmiesAt(from)-1, 3)
		defenderDice := defender.ArmiesAt(to)
		if defenderDice > 2 {
			defenderDice = 2
		}
		attackerRolls := rollDice(g.rng, dice)
		defenderRolls := rollDice(g.rng, defenderDice)

		attackerLosses, defenderLosses := 0, 0
		for i := 0; i < len(attackerRolls) && i < len(defenderRolls); i++ {
			if attackerRolls[i] > defenderRolls[i] {
				defenderLosses++
			} else {
				attackerLosses++
			}
		}

		attacker.RemoveArmies(from, attackerLosses)
		defender.RemoveArmies(to, defenderLosses)

		if defender.ArmiesAt(to) == 0 {
			g.conquer(attackerID, defenderID, from, to, dice)
			return nil
		}
		if !repeat || attacker.ArmiesAt(from) <= 1 {
			return nil
		}
	}
}

// conquer transfers a territory whose defense just reached zero.
func (g *Game) conquer(attackerID, defenderID int, from, to string, dice int) {
	attacker := g.Players[attackerID]
	defender := g.Players[defenderID]

	defender.RemoveTerritory(to)
	attacker.AddTerritory(to)
	g.ConqueredTerritory = true

	if len(defender.Territories) == 0 {
		g.DefeatedPlayers = append(g.DefeatedPlayers, defenderID)
		active := g.ActivePlayers[:0]
		for _, idx := range g.ActivePlayers {
			if idx != defenderID {
				active = append(active, idx)
			}
		}
		g.ActivePlayers = active

		attacker.Cards = append(attacker.Cards, defender.Cards...)
		defender.Cards = nil
	}

	g.pending = &pendingMove{From: from, To: to, Dice: dice}
	g.Phase = PhaseMoveArmies
	if g.checkWinConditions() {
		g.Phase = PhaseGameOver
	}
}

// MoveArmiesAfterAttack consumes the pending post-conquest move. At
// least as many armies as dice rolled must move in, and the source must
// keep at least one army. Play returns to Attack, or is
// forced back to Reinforce when the hand has grown to five or more
// cards (conquest card pending or opponent hands absorbed).
func (g *Game) MoveArmiesAfterAttack(playerID int, from, to string, numArmies int) error {
	if g.Phase != PhaseMoveArmies {
		return fmt.Errorf("there is no pending army move")
	}
	player, err := g.requireTurn(playerID)
	if err != nil {
		return err
	}
	if g.pending == nil || g.pending.From != from || g.pending.To != to {
		return fmt.Errorf("no pending move from %q to %q", from, to)
	}
	if !player.Owns(from) || !player.Owns(to) {
		return fmt.Errorf("one or both territories do not belong to the player")
	}
	if numArmies < g.pending.Dice {
		return fmt.Errorf("must move at least %d armies into the conquered territory", g.pending.Dice)
	}
	if numArmies >= player.ArmiesAt(from) {
		return fmt.Errorf("cannot move all armies or more than available")
	}

	player.Fortify(from, to, numArmies)
	g.pending = nil
	g.Phase = PhaseAttack
	if len(player.Cards) >= 5 {
		g.Phase = PhaseReinforce
	}
	return nil
}

// Fortify moves armies between two owned territories connected through
// owned land, then ends the turn.
func (g *Game) Fortify(playerID int, from, to string, numArmies int) error {
	if g.Phase != PhaseFortify {
		return fmt.Errorf("it's not the fortification phase")
	}
	player, err := g.requireTurn(playerID)
	if err != nil {
		return err
	}
	if !player.Owns(from) || !player.Owns(to) {
		return fmt.Errorf("one or both territories do not belong to the player")
	}
	connected, err := g.Board.Reachable(player.Territories, from, to)
	if err != nil {
		return err
	}
	if !connected {
		return fmt.Errorf("%q and %q are not connected through owned territories", from, to)
	}
	if numArmies < 1 {
		return fmt.Errorf("must move at least one army")
	}
	if numArmies >= player.ArmiesAt(from) {
		return fmt.Errorf("cannot move all armies or more than available")
	}

	player.Fortify(from, to, numArmies)
	g.endTurn()
	return nil
}

// CalculateReinforcements is the allotment for one player: the floor of
// territory count over three (minimum three), plus the bonus of every
// continent held in full.
func (g *Game) CalculateReinforcements(playerID int) int {
	player := g.Players[playerID]
	base := len(player.Territories) / 3
	if base < 3 {
		base = 3
	}

	bonus := 0
	for _, continent := range g.Board.Continents {
		holdsAll := true
		for _, territory := range continent.Territories {
			if !player.Owns(territory) {
				holdsAll = false
				break
			}
		}
		if holdsAll {
			bonus += continent.BonusArmies
		}
	}
	return base + bonus
}

// checkWinConditions reports whether any player owns every territory.
func (g *Game) checkWinConditions() bool {
	for _, p := range g.Players {
		if len(p.Territories) == len(g.Board.Territories) {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
