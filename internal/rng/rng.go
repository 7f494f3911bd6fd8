package rng

import (
	"math/rand/v2"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/lootwheel/internal/rng Source

// Source provides the random draws used by prize selection
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

// Random is a seedable Source safe for concurrent use
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible draws
	Seed uint64
}

// New creates a new random source
func New(cfg *Config) *Random {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	return &Random{
		random: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Float64 returns a uniform value in [0, 1)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// IntN returns a uniform value in [0, n)
func (r *Random) IntN(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.IntN(n)
}
