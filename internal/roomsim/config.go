package roomsim

import (
	"fmt"
	"math"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config holds every parameter of a simulation run. Nothing is hidden in
// component constructors: the simulation is entirely defined by it.
type Config struct {
	Version            string        `yaml:"version,omitempty"`
	InitialTemperature Temperature   `yaml:"initial-temperature"`
	InitialHumidity    Humidity      `yaml:"initial-humidity"`
	TargetTemperature  Temperature   `yaml:"target-temperature"`
	TargetHumidity     Humidity      `yaml:"target-humidity"`
	TickInterval       time.Duration `yaml:"tick-interval"`
	HeaterPower        float64       `yaml:"heater-power"`
	HumidifierPower    float64       `yaml:"humidifier-power"`
	// MaxTicks stops the simulation after that many ticks. Zero means
	// the simulation runs until cancelled.
	MaxTicks int `yaml:"max-ticks,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		InitialTemperature: 20.0,
		InitialHumidity:    50.0,
		TargetTemperature:  22.0,
		TargetHumidity:     60.0,
		TickInterval:       1 * time.Second,
		HeaterPower:        DefaultHeaterPower,
		HumidifierPower:    DefaultHumidifierPower,
	}
}

// ParseConfig overrides base with the values found in content. Keys
// missing from content keep their base value.
func ParseConfig(content []byte, base Config) (*Config, error) {
	c := base
	if err := yaml.UnmarshalStrict(content, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func OpenConfig(filename string, base Config) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(buf, base)
	if err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", filename, err)
	}
	return c, nil
}

func checkUnit(name string, u BoundedUnit) error {
	if InRange(u) == false {
		return fmt.Errorf("Invalid %s %.2f: should be in [%.1f;%.1f]",
			name, u.Value(), u.MinValue(), u.MaxValue())
	}
	return nil
}

func checkPower(name string, p float64) error {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("Invalid %s %.2f: should be a finite positive value", name, p)
	}
	return nil
}

func (c Config) Check() error {
	if err := CheckConfigVersion(c.Version); err != nil {
		return err
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("Invalid tick-interval %s: should be positive", c.TickInterval)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("Invalid max-ticks %d: should be positive or zero", c.MaxTicks)
	}
	if err := checkPower("heater-power", c.HeaterPower); err != nil {
		return err
	}
	if err := checkPower("humidifier-power", c.HumidifierPower); err != nil {
		return err
	}
	units := []struct {
		name string
		u    BoundedUnit
	}{
		{"initial-temperature", c.InitialTemperature},
		{"initial-humidity", c.InitialHumidity},
		{"target-temperature", c.TargetTemperature},
		{"target-humidity", c.TargetHumidity},
	}
	for _, d := range units {
		if err := checkUnit(d.name, d.u); err != nil {
			return err
		}
	}
	return nil
}
