package roomsim

// Drift amplitudes for a one second tick.
const (
	TemperatureDrift = 0.05
	HumidityDrift    = 0.1
)

type ClampFlags int

const (
	TemperatureClamped ClampFlags = 1 << iota
	HumidityClamped
)

func (f ClampFlags) Has(o ClampFlags) bool {
	return f&o != 0
}

type Environment struct {
	state EnvironmentState
	drift DriftSource
}

func NewEnvironment(initial EnvironmentState, drift DriftSource) *Environment {
	return &Environment{state: initial, drift: drift}
}

func (e *Environment) State() EnvironmentState {
	return e.state
}

func (e *Environment) Temperature() Temperature {
	return e.state.Temperature
}

func (e *Environment) Humidity() Humidity {
	return e.state.Humidity
}

// Update advances the environment by one tick. Ambient drift is applied
// first, then the actuator contributions, and each quantity is finally
// clamped to its range. The returned flags tell which quantities had to
// be clamped.
func (e *Environment) Update(heaterOutput, humidifierOutput float64) ClampFlags {
	t := e.state.Temperature + Temperature(e.drift.Uniform(-TemperatureDrift, TemperatureDrift))
	h := e.state.Humidity + Humidity(e.drift.Uniform(-HumidityDrift, HumidityDrift))

	t += Temperature(heaterOutput)
	h += Humidity(humidifierOutput)

	var flags ClampFlags
	if InRange(t) == false {
		flags |= TemperatureClamped
	}
	if InRange(h) == false {
		flags |= HumidityClamped
	}

	e.state.Temperature = Temperature(Clamp(t))
	e.state.Humidity = Humidity(Clamp(h))
	return flags
}
