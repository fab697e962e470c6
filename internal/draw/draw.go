// Package draw picks giveaway winners.
package draw

//go:generate mockgen -package=mocks -destination=mocks/mock_selector.go github.com/KirkDiggler/giveaway-bot/internal/draw Selector

import (
	"math/rand"
	"sync"
	"time"
)

// Selector picks winners from a participant list
type Selector interface {
	// Select returns min(count, len(candidates)) distinct entries of candidates.
	// Every subset of that size is equally likely.
	Select(candidates []string, count int) []string
}

// Drawer selects winners with a partial Fisher-Yates shuffle
type Drawer struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the drawer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new drawer
func New(cfg *Config) *Drawer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Drawer{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Select returns up to count distinct winners. When there are no more
// candidates than winners, everyone wins in input order. The input slice is
// not modified.
func (d *Drawer) Select(candidates []string, count int) []string {
	if count <= 0 || len(candidates) == 0 {
		return []string{}
	}

	pool := make([]string, len(candidates))
	copy(pool, candidates)

	if len(pool) <= count {
		return pool
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i < count; i++ {
		j := i + d.random.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count]
}
