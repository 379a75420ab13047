package roomsim

type EnvironmentState struct {
	Temperature Temperature
	Humidity    Humidity
}

// Target holds the setpoints of a run. It never changes once the
// simulation is started.
type Target struct {
	Temperature Temperature
	Humidity    Humidity
}
