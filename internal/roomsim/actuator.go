package roomsim

const (
	DefaultHeaterPower     = 0.1
	DefaultHumidifierPower = 0.2
)

// Actuator is a binary device contributing a fixed output per tick
// while it is on.
type Actuator struct {
	name  string
	power float64
	on    bool
}

func NewActuator(name string, power float64) *Actuator {
	return &Actuator{name: name, power: power}
}

// NewHeater returns a heater raising the temperature by power °C per tick.
func NewHeater(power float64) *Actuator {
	return NewActuator("heater", power)
}

// NewHumidifier returns a humidifier raising the humidity by power %RH
// per tick.
func NewHumidifier(power float64) *Actuator {
	return NewActuator("humidifier", power)
}

func (a *Actuator) Name() string {
	return a.name
}

func (a *Actuator) Power() float64 {
	return a.power
}

func (a *Actuator) TurnOn() {
	a.on = true
}

func (a *Actuator) TurnOff() {
	a.on = false
}

// Set turns the actuator on or off.
func (a *Actuator) Set(on bool) {
	a.on = on
}

func (a *Actuator) IsOn() bool {
	return a.on
}

func (a *Actuator) Output() float64 {
	if a.on == false {
		return 0
	}
	return a.power
}

func (a *Actuator) Label() string {
	return OnOffLabel(a.on)
}

func OnOffLabel(on bool) string {
	if on == true {
		return "On"
	}
	return "Off"
}
