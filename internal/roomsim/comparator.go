package roomsim

// Thermostat asks for heat whenever the temperature is below its
// target. There is no hysteresis band: the heater may toggle at every
// tick around the setpoint.
type Thermostat struct {
	Target Temperature
}

func (t Thermostat) ShouldHeat(current Temperature) bool {
	return current < t.Target
}

// HumidityMeter asks for humidification whenever the humidity is below
// its target, without hysteresis either.
type HumidityMeter struct {
	Target Humidity
}

func (m HumidityMeter) ShouldHumidify(current Humidity) bool {
	return current < m.Target
}
