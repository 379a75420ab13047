package roomsim

import (
	. "gopkg.in/check.v1"
)

type AlarmSuite struct{}

var _ = Suite(&AlarmSuite{})

func (s *AlarmSuite) TestData(c *C) {
	testdata := []struct {
		Alarm               Alarm
		ExpectedIdentifier  string
		ExpectedDescription string
		ExpectedFlags       AlarmFlags
	}{
		{
			Alarm:               TemperatureOutOfBound,
			ExpectedIdentifier:  "climate.temperature.clamped",
			ExpectedDescription: "Temperature was clamped to its boundaries ( [0.0 ; 40.0] °C )",
			ExpectedFlags:       Warning,
		},
		{
			Alarm:               HumidityOutOfBound,
			ExpectedIdentifier:  "climate.humidity.clamped",
			ExpectedDescription: "Humidity was clamped to its boundaries ( [0.0 ; 100.0] % R.H. )",
			ExpectedFlags:       Warning,
		},
		{
			Alarm:               OutOfBound[Temperature](15, 30),
			ExpectedIdentifier:  "climate.temperature.clamped",
			ExpectedDescription: "Temperature was clamped to its boundaries ( [15.0 ; 30.0] °C )",
			ExpectedFlags:       Warning,
		},
	}

	for _, d := range testdata {
		c.Check(d.Alarm.Identifier(), Equals, d.ExpectedIdentifier)
		c.Check(d.Alarm.Description(), Equals, d.ExpectedDescription)
		c.Check(d.Alarm.Flags(), Equals, d.ExpectedFlags)
	}
	c.Check(Warning.String(), Equals, "warning")
	c.Check(Emergency.String(), Equals, "emergency")
}

func (s *AlarmSuite) TestClampAlarms(c *C) {
	c.Check(ClampAlarms(0), HasLen, 0)
	c.Check(ClampAlarms(TemperatureClamped), DeepEquals, []Alarm{TemperatureOutOfBound})
	c.Check(ClampAlarms(HumidityClamped), DeepEquals, []Alarm{HumidityOutOfBound})
	c.Check(ClampAlarms(TemperatureClamped|HumidityClamped), DeepEquals,
		[]Alarm{TemperatureOutOfBound, HumidityOutOfBound})
}
