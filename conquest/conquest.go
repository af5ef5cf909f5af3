// Package conquest estimates the probability that an attack eventually
// conquers a defending territory, given the army counts on both sides.
// The same estimator backs the live engine and the offline precompute
// tool; results are memoized in an explicit Table.
package conquest

import "math"

// Win returns the raw probability, in [0, 1], that the attacker
// eventually reduces the defender to 0 armies. Intermediate results are
// memoized in table.
func Win(attackers, defenders int, table *Table) float64 {
	if attackers <= 1 {
		return 0
	}
	if defenders == 0 {
		return 1
	}
	if p, ok := table.lookup(attackers, defenders); ok {
		return p
	}

	var p float64
	if attackers >= 3 && defenders >= 2 {
		// Both sides roll at least two dice: a round loses two armies
		// in total, split across three outcomes.
		pWin2 := winBoth(attackers)
		pLose2 := loseBoth(attackers)
		pSplit := 1 - pWin2 - pLose2

		p = pWin2*Win(attackers, defenders-2, table) +
			pSplit*Win(attackers-1, defenders-1, table) +
			pLose2*Win(attackers-2, defenders, table)
	} else {
		// Single-comparison round: only the top dice are matched.
		pWin1 := winSingle(attackers, defenders)

		p = pWin1*Win(attackers, defenders-1, table) +
			(1-pWin1)*Win(attackers-1, defenders, table)
	}

	table.store(attackers, defenders, p)
	return p
}

// Percent returns Win as a percentage rounded to 2 decimal places.
func Percent(attackers, defenders int, table *Table) float64 {
	return math.Round(Win(attackers, defenders, table)*10000) / 100
}

// DiceDistribution enumerates the effective best-two outcomes for n dice
// as (low, high) pairs. For one die the low slot is a constant 1 so that
// a single roll can never win the second comparison. For three dice each
// non-decreasing triple contributes its top two values.
func DiceDistribution(n int) [][2]int {
	var outcomes [][2]int
	switch n {
	case 1:
		for i := 1; i <= 6; i++ {
			outcomes = append(outcomes, [2]int{1, i})
		}
	case 2:
		for i := 1; i <= 6; i++ {
			for j := i; j <= 6; j++ {
				outcomes = append(outcomes, [2]int{i, j})
			}
		}
	case 3:
		for i := 1; i <= 6; i++ {
			for j := i; j <= 6; j++ {
				for k := j; k <= 6; k++ {
					outcomes = append(outcomes, [2]int{j, k})
				}
			}
		}
	default:
		panic("conquest: invalid number of dice")
	}
	return outcomes
}

// winBoth is the probability that the attacker wins both comparisons of
// a two-die defense. Ties go to the defender.
func winBoth(attackers int) float64 {
	attackerDist := DiceDistribution(min(attackers-1, 3))
	defenderDist := DiceDistribution(2)
	total := len(attackerDist) * len(defenderDist)
	wins := 0
	for _, a := range attackerDist {
		for _, d := range defenderDist {
			if a[0] > d[0] && a[1] > d[1] {
				wins++
			}
		}
	}
	return float64(wins) / float64(total)
}

// loseBoth is the probability that the attacker loses both comparisons
// of a two-die defense.
func loseBoth(attackers int) float64 {
	attackerDist := DiceDistribution(min(attackers-1, 3))
	defenderDist := DiceDistribution(2)
	total := len(attackerDist) * len(defenderDist)
	losses := 0
	for _, a := range attackerDist {
		for _, d := range defenderDist {
			if a[0] <= d[0] && a[1] <= d[1] {
				losses++
			}
		}
	}
	return float64(losses) / float64(total)
}

// winSingle is the probability that the attacker wins the single
// top-dice comparison.
func winSingle(attackers, defenders int) float64 {
	attackerDist := DiceDistribution(min(attackers-1, 3))
	defenderDist := DiceDistribution(min(defenders, 2))
	total := len(attackerDist) * len(defenderDist)
	wins := 0
	for _, a := range attackerDist {
		for _, d := range defenderDist {
			if a[1] > d[1] {
				wins++
			}
		}
	}
	return float64(wins) / float64(total)
}
