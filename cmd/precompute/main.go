// Command precompute bulk-computes the conquest probability table and
// persists it for the server to load at startup. Cells are independent,
// so they are fanned out over workers sharing one memo table; a cell
// computed twice before caching costs time, never correctness.
package main

import (
	"flag"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"riskserver/conquest"
)

func main() {
	var (
		maxAttack = flag.Int("max-attack", 100, "largest attacker army count to precompute")
		maxDefend = flag.Int("max-defend", 100, "largest defender army count to precompute")
		out       = flag.String("out", "conquer_probabilities.bin", "output file")
		workers   = flag.Int("workers", runtime.NumCPU(), "concurrent workers")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	start := time.Now()
	table := conquest.NewTable()

	cells := make(chan conquest.Key)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cell := range cells {
				cellStart := time.Now()
				conquest.Win(cell.Attackers, cell.Defenders, table)
				if elapsed := time.Since(cellStart); elapsed > 10*time.Second {
					log.Info().
						Int("attackers", cell.Attackers).
						Int("defenders", cell.Defenders).
						Dur("elapsed", elapsed).
						Msg("slow cell")
				}
			}
		}()
	}

	for attackers := 2; attackers <= *maxAttack; attackers++ {
		for defenders := 1; defenders <= *maxDefend; defenders++ {
			cells <- conquest.Key{Attackers: attackers, Defenders: defenders}
		}
	}
	close(cells)
	wg.Wait()

	if err := table.SaveFile(*out); err != nil {
		log.Fatal().Err(err).Msg("failed to write probability table")
	}
	log.Info().
		Str("out", *out).
		Int("cells", table.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("probability table written")
}
