package roomsim

import (
	"fmt"
	"io"
)

// TickReport is the snapshot emitted after each environment update.
type TickReport struct {
	Elapsed     int
	Temperature Temperature
	Humidity    Humidity
	Heater      bool
	Humidifier  bool
	Clamped     ClampFlags
}

func (r TickReport) String() string {
	return fmt.Sprintf("Time: %ds, Temp: %.2f°C, Humidity: %.2f%%, Heater: %s, Humidifier: %s",
		r.Elapsed, r.Temperature, r.Humidity, OnOffLabel(r.Heater), OnOffLabel(r.Humidifier))
}

const TerminationNotice = "\nSimulation ended by user."

type Reporter interface {
	Report(r TickReport) error
	// Terminated is called once when the simulation is cancelled.
	Terminated() error
}

type consoleReporter struct {
	out io.Writer
}

// NewConsoleReporter prints one status line per tick on out.
func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) Report(report TickReport) error {
	_, err := fmt.Fprintln(r.out, report)
	return err
}

func (r *consoleReporter) Terminated() error {
	_, err := fmt.Fprintln(r.out, TerminationNotice)
	return err
}
