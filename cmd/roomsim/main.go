package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/formicidae-tracker/roomsim/internal/roomsim"
	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Version bool           `short:"V" long:"version" description:"Prints current version"`
	Config  flags.Filename `short:"c" long:"config" description:"YAML file overriding the built-in parameters"`
	Seed    int64          `long:"seed" description:"seed of the drift generator, time based if zero"`
	NoDrift bool           `long:"no-drift" description:"disables the random ambient drift"`
	Ticks   int            `long:"ticks" description:"stops after this number of ticks, runs until interrupted if zero"`
	Verbose []bool         `short:"v" long:"verbose" description:"increases log verbosity, can be repeated"`
	Otel    string         `long:"otel-collector" description:"address of an open-telemetry collector"`
}

func ParseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "roomsim"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments %v", rest)
	}
	return opts, nil
}

func (o *Options) Verbosity() int {
	return len(o.Verbose)
}

func (o *Options) LoadConfig() (*roomsim.Config, error) {
	c := roomsim.DefaultConfig()
	if len(o.Config) > 0 {
		loaded, err := roomsim.OpenConfig(string(o.Config), c)
		if err != nil {
			return nil, err
		}
		c = *loaded
	}
	if o.Ticks < 0 {
		return nil, fmt.Errorf("Invalid --ticks %d: should be positive or zero", o.Ticks)
	}
	if o.Ticks > 0 {
		c.MaxTicks = o.Ticks
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Invalid config: %w", err)
	}
	return &c, nil
}

func (o *Options) Drift() roomsim.DriftSource {
	if o.NoDrift == true {
		return roomsim.ZeroDrift
	}
	return roomsim.NewRandomDrift(o.Seed)
}

func logLevel(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.InfoLevel
	case verbosity == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func Execute(args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		return err
	}

	if opts.Version == true {
		fmt.Println(roomsim.ROOMSIM_VERSION)
		return nil
	}

	logrus.SetLevel(logLevel(opts.Verbosity()))
	logger := roomsim.NewLogger("roomsim")

	config, err := opts.LoadConfig()
	if err != nil {
		return err
	}
	if len(opts.Config) > 0 {
		logger.WithField("config", opts.Config).Info("loaded configuration")
	}

	if opts.Otel != "" {
		shutdown, err := setUpTelemetry(context.Background(), opts.Otel)
		if err != nil {
			return fmt.Errorf("could not set up telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.WithError(err).Warn("could not flush telemetry")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return roomsim.Simulate(ctx, *config, opts.Drift(), os.Stdout)
}

func main() {
	if err := Execute(os.Args[1:]); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			fmt.Printf("%s\n", ferr.Message)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "[roomsim] Unhandled error: %s\n", err)
		os.Exit(1)
	}
}
