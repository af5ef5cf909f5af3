package conquest

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"sync"
)

// Key identifies one memoized cell.
type Key struct {
	Attackers int
	Defenders int
}

// Table is the memo for Win. It is safe for concurrent use; the
// estimator is pure, so racing goroutines recomputing the same cell
// before it is stored waste work but cannot disagree.
type Table struct {
	mu    sync.Mutex
	probs map[Key]float64
}

func NewTable() *Table {
	return &Table{probs: make(map[Key]float64)}
}

func (t *Table) lookup(attackers, defenders int) (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.probs[Key{attackers, defenders}]
	return p, ok
}

func (t *Table) store(attackers, defenders int, p float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.probs[Key{attackers, defenders}] = p
}

// Len reports the number of memoized cells.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.probs)
}

// Save writes the table in gob encoding.
func (t *Table) Save(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := gob.NewEncoder(w).Encode(t.probs); err != nil {
		return fmt.Errorf("encode probability table: %w", err)
	}
	return nil
}

// Load reads a table previously written by Save.
func Load(r io.Reader) (*Table, error) {
	probs := make(map[Key]float64)
	if err := gob.NewDecoder(r).Decode(&probs); err != nil {
		return nil, fmt.Errorf("decode probability table: %w", err)
	}
	return &Table{probs: probs}, nil
}

// SaveFile persists the table to path.
func (t *Table) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create probability table file: %w", err)
	}
	if err := t.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile loads a table persisted by SaveFile. A missing or corrupt
// file is an error; callers are expected to fail closed rather than
// start with a cold cache.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open probability table file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
