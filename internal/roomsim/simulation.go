package roomsim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var instrumentationName = "github.com/formicidae-tracker/roomsim/internal/roomsim"

// Simulation is the control loop of a single room. It is not safe for
// concurrent use: a single goroutine owns it for its whole lifetime.
type Simulation struct {
	config Config

	environment   *Environment
	heater        *Actuator
	humidifier    *Actuator
	thermostat    Thermostat
	humidityMeter HumidityMeter
	reporter      Reporter

	elapsed int

	logger *logrus.Entry
	tracer trace.Tracer
}

func NewSimulation(c Config, drift DriftSource, reporter Reporter) (*Simulation, error) {
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Invalid config: %w", err)
	}
	if drift == nil {
		return nil, errors.New("missing drift source")
	}
	if reporter == nil {
		return nil, errors.New("missing reporter")
	}

	return &Simulation{
		config: c,
		environment: NewEnvironment(EnvironmentState{
			Temperature: c.InitialTemperature,
			Humidity:    c.InitialHumidity,
		}, drift),
		heater:        NewHeater(c.HeaterPower),
		humidifier:    NewHumidifier(c.HumidifierPower),
		thermostat:    Thermostat{Target: c.TargetTemperature},
		humidityMeter: HumidityMeter{Target: c.TargetHumidity},
		reporter:      reporter,
		logger:        NewLogger("simulation"),
		tracer:        otel.Tracer(instrumentationName),
	}, nil
}

// Simulate runs a simulation printing its status on out until ctx is
// done or the configured number of ticks is reached.
func Simulate(ctx context.Context, c Config, drift DriftSource, out io.Writer) error {
	s, err := NewSimulation(c, drift, NewConsoleReporter(out))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func (s *Simulation) Elapsed() int {
	return s.elapsed
}

func (s *Simulation) State() EnvironmentState {
	return s.environment.State()
}

func (s *Simulation) Heater() *Actuator {
	return s.heater
}

func (s *Simulation) Humidifier() *Actuator {
	return s.humidifier
}

func (s *Simulation) command(a *Actuator, on bool) {
	if a.IsOn() != on {
		s.logger.WithFields(logrus.Fields{
			"actuator": a.Name(),
			"tick":     s.elapsed,
		}).Debugf("turning %s", strings.ToLower(OnOffLabel(on)))
	}
	if on == true {
		a.TurnOn()
	} else {
		a.TurnOff()
	}
}

func endWithError(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, "roomsim error")
		span.RecordError(err)
	}
	span.End()
}

// Step runs a single tick: actuators are commanded from the current
// reading, the environment is updated and the result is reported.
func (s *Simulation) Step(ctx context.Context) (report TickReport, err error) {
	_, span := s.tracer.Start(ctx, "roomsim/Tick")
	defer func() { endWithError(span, err) }()

	s.command(s.heater, s.thermostat.ShouldHeat(s.environment.Temperature()))
	s.command(s.humidifier, s.humidityMeter.ShouldHumidify(s.environment.Humidity()))

	clamped := s.environment.Update(s.heater.Output(), s.humidifier.Output())
	for _, a := range ClampAlarms(clamped) {
		s.logger.WithFields(logrus.Fields{
			"alarm":    a.Identifier(),
			"severity": a.Flags(),
			"tick":     s.elapsed,
		}).Warn(a.Description())
	}

	state := s.environment.State()
	report = TickReport{
		Elapsed:     s.elapsed,
		Temperature: state.Temperature,
		Humidity:    state.Humidity,
		Heater:      s.heater.IsOn(),
		Humidifier:  s.humidifier.IsOn(),
		Clamped:     clamped,
	}

	span.SetAttributes(
		attribute.Int("tick", report.Elapsed),
		attribute.Float64("temperature", float64(report.Temperature)),
		attribute.Float64("humidity", float64(report.Humidity)),
		attribute.Bool("heater", report.Heater),
		attribute.Bool("humidifier", report.Humidifier),
	)

	if err = s.reporter.Report(report); err != nil {
		return report, fmt.Errorf("could not report tick %d: %w", report.Elapsed, err)
	}

	s.elapsed += 1
	return report, nil
}

func (s *Simulation) terminate() error {
	s.logger.WithField("ticks", s.elapsed).Info("simulation ended by user")
	return s.reporter.Terminated()
}

// Run steps the simulation every TickInterval. Cancelling ctx is the
// normal way to stop it: the termination notice is reported and Run
// returns nil.
func (s *Simulation) Run(ctx context.Context) error {
	s.logger.WithFields(logrus.Fields{
		"temperature":        s.environment.Temperature(),
		"humidity":           s.environment.Humidity(),
		"target-temperature": s.thermostat.Target,
		"target-humidity":    s.humidityMeter.Target,
		"tick-interval":      s.config.TickInterval,
	}).Info("starting simulation")

	ticker := time.NewTicker(s.config.TickInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return s.terminate()
		}

		if _, err := s.Step(ctx); err != nil {
			return err
		}

		if s.config.MaxTicks > 0 && s.elapsed >= s.config.MaxTicks {
			s.logger.WithField("ticks", s.elapsed).Info("tick limit reached")
			return nil
		}

		select {
		case <-ctx.Done():
			return s.terminate()
		case <-ticker.C:
		}
	}
}
