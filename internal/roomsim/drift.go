package roomsim

import (
	"math/rand"
	"time"
)

// DriftSource produces the ambient perturbations applied to the
// environment at every tick.
type DriftSource interface {
	// Uniform returns a value drawn uniformly in [low;high).
	Uniform(low, high float64) float64
}

type randomDrift struct {
	rand *rand.Rand
}

// NewRandomDrift returns a DriftSource backed by a math/rand generator.
// A zero seed picks one from the current time.
func NewRandomDrift(seed int64) DriftSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomDrift{rand: rand.New(rand.NewSource(seed))}
}

func (d *randomDrift) Uniform(low, high float64) float64 {
	return low + d.rand.Float64()*(high-low)
}

type zeroDrift struct{}

func (zeroDrift) Uniform(low, high float64) float64 { return 0 }

// ZeroDrift never perturbs the environment.
var ZeroDrift DriftSource = zeroDrift{}

// ConstantDrift always returns its value, whatever the bounds.
type ConstantDrift float64

func (d ConstantDrift) Uniform(low, high float64) float64 { return float64(d) }
