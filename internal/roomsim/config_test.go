package roomsim

import (
	"math"
	"os"
	"path/filepath"
	"time"

	. "gopkg.in/check.v1"
)

type ConfigSuite struct {
	tmpDir string
}

var _ = Suite(&ConfigSuite{})

func (s *ConfigSuite) SetUpTest(c *C) {
	s.tmpDir = c.MkDir()
}

func (s *ConfigSuite) TestDefault(c *C) {
	config := DefaultConfig()
	c.Check(config, DeepEquals, Config{
		InitialTemperature: 20,
		InitialHumidity:    50,
		TargetTemperature:  22,
		TargetHumidity:     60,
		TickInterval:       time.Second,
		HeaterPower:        0.1,
		HumidifierPower:    0.2,
	})
	c.Check(config.Check(), IsNil)
}

func (s *ConfigSuite) TestLoad(c *C) {
	filename := filepath.Join(s.tmpDir, "room.yml")
	content := `---
version: development
initial-temperature: 18.5
target-humidity: 70
tick-interval: 250ms
heater-power: 0.5
max-ticks: 12
`
	c.Assert(os.WriteFile(filename, []byte(content), 0644), IsNil)

	config, err := OpenConfig(filename, DefaultConfig())
	c.Assert(err, IsNil)
	c.Check(*config, DeepEquals, Config{
		Version:            "development",
		InitialTemperature: 18.5,
		InitialHumidity:    50,
		TargetTemperature:  22,
		TargetHumidity:     70,
		TickInterval:       250 * time.Millisecond,
		HeaterPower:        0.5,
		HumidifierPower:    0.2,
		MaxTicks:           12,
	})
	c.Check(config.Check(), IsNil)

	_, err = OpenConfig(filepath.Join(s.tmpDir, "does-not-exist"), DefaultConfig())
	c.Check(err, Not(IsNil))

	c.Assert(os.WriteFile(filename, []byte(`asfjjp:fdflj:dfjdskf
fsdj: sdf
`), 0644), IsNil)
	_, err = OpenConfig(filename, DefaultConfig())
	c.Check(err, ErrorMatches, "(?s)could not parse '.*room.yml': .*")
}

func (s *ConfigSuite) TestUnknownKeysAreRejected(c *C) {
	_, err := ParseConfig([]byte("target-temprature: 23\n"), DefaultConfig())
	c.Check(err, ErrorMatches, `(?s).*field target-temprature not found.*`)
}

func (s *ConfigSuite) TestErrorChecking(c *C) {
	testdata := []struct {
		Modify   func(*Config)
		Expected string
	}{
		{func(*Config) {}, ""},
		{func(c *Config) { c.TickInterval = 0 }, "Invalid tick-interval 0s: should be positive"},
		{func(c *Config) { c.TickInterval = -time.Second }, "Invalid tick-interval -1s: should be positive"},
		{func(c *Config) { c.MaxTicks = -1 }, "Invalid max-ticks -1: should be positive or zero"},
		{func(c *Config) { c.HeaterPower = -0.1 }, "Invalid heater-power -0.10: should be a finite positive value"},
		{func(c *Config) { c.HumidifierPower = math.NaN() }, "Invalid humidifier-power NaN: should be a finite positive value"},
		{func(c *Config) { c.HeaterPower = 0 }, ""},
		{func(c *Config) { c.InitialTemperature = 41 }, `Invalid initial-temperature 41.00: should be in \[0.0;40.0\]`},
		{func(c *Config) { c.InitialHumidity = -2 }, `Invalid initial-humidity -2.00: should be in \[0.0;100.0\]`},
		{func(c *Config) { c.TargetTemperature = Temperature(math.Inf(1)) }, `Invalid target-temperature \+Inf: should be in \[0.0;40.0\]`},
		{func(c *Config) { c.TargetHumidity = 100.5 }, `Invalid target-humidity 100.50: should be in \[0.0;100.0\]`},
		{func(c *Config) { c.Version = "v12.0.0" }, ""},
		{func(c *Config) { c.Version = "v1.2-3" }, "Invalid version 'v1.2-3':.*"},
	}

	for _, d := range testdata {
		config := DefaultConfig()
		d.Modify(&config)
		err := config.Check()
		if len(d.Expected) == 0 {
			c.Check(err, IsNil)
		} else {
			c.Check(err, ErrorMatches, d.Expected)
		}
	}
}

func (s *ConfigSuite) TestIncompatibleVersion(c *C) {
	saved := ROOMSIM_VERSION
	defer func() { ROOMSIM_VERSION = saved }()
	ROOMSIM_VERSION = "v0.2.1"

	config := DefaultConfig()
	config.Version = "v0.2.0"
	c.Check(config.Check(), IsNil)
	config.Version = "v0.3.0"
	c.Check(config.Check(), ErrorMatches,
		`Invalid version: file version \(v0.3.0\) is incompatible with roomsim version \(v0.2.1\)`)
}
