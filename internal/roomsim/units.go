package roomsim

import (
	"fmt"
	"math"
)

type BoundedUnit interface {
	Value() float64
	MaxValue() float64
	MinValue() float64
}

// Clamp returns the value of u restricted to [u.MinValue();u.MaxValue()].
func Clamp(u BoundedUnit) float64 {
	return math.Min(math.Max(u.Value(), u.MinValue()), u.MaxValue())
}

// InRange reports whether u lies within its boundaries. NaN is never
// in range.
func InRange(u BoundedUnit) bool {
	v := u.Value()
	return v >= u.MinValue() && v <= u.MaxValue()
}

type Temperature float64

func (t Temperature) Value() float64    { return float64(t) }
func (t Temperature) MaxValue() float64 { return 40 }
func (t Temperature) MinValue() float64 { return 0 }
func (t Temperature) String() string    { return fmt.Sprintf("%.2f°C", float64(t)) }

type Humidity float64

func (h Humidity) Value() float64    { return float64(h) }
func (h Humidity) MaxValue() float64 { return 100 }
func (h Humidity) MinValue() float64 { return 0 }
func (h Humidity) String() string    { return fmt.Sprintf("%.2f%%", float64(h)) }
