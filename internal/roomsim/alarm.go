package roomsim

import "fmt"

type AlarmFlags int

const (
	Warning   AlarmFlags = 0x00
	Emergency AlarmFlags = 0x01
)

func (f AlarmFlags) String() string {
	if f&Emergency != 0 {
		return "emergency"
	}
	return "warning"
}

type Alarm interface {
	Flags() AlarmFlags
	Identifier() string
	Description() string
}

type AlarmString struct {
	f           AlarmFlags
	identifier  string
	description string
}

func (a AlarmString) Flags() AlarmFlags {
	return a.f
}

func (a AlarmString) Identifier() string {
	return a.identifier
}

func (a AlarmString) Description() string {
	return a.description
}

func OutOfBound[T Temperature | Humidity](min, max T) Alarm {
	identifier := ""
	name := ""
	unit := ""
	switch any(max).(type) {
	case Temperature:
		identifier = "climate.temperature.clamped"
		name = "Temperature"
		unit = "°C"
	case Humidity:
		identifier = "climate.humidity.clamped"
		name = "Humidity"
		unit = "% R.H."
	default:
		panic(fmt.Sprintf("unsupported type %T", max))
	}
	return AlarmString{
		f:          Warning,
		identifier: identifier,
		description: fmt.Sprintf("%s was clamped to its boundaries ( [%.1f ; %.1f] %s )",
			name, min, max, unit),
	}
}

var (
	TemperatureOutOfBound = OutOfBound[Temperature](0, 40)
	HumidityOutOfBound    = OutOfBound[Humidity](0, 100)
)

// ClampAlarms lists the alarms raised by an environment update.
func ClampAlarms(f ClampFlags) []Alarm {
	var res []Alarm
	if f.Has(TemperatureClamped) {
		res = append(res, TemperatureOutOfBound)
	}
	if f.Has(HumidityClamped) {
		res = append(res, HumidityOutOfBound)
	}
	return res
}
