// Package config loads the client's settings from the environment and flags.
package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hlin91/CS3800_threestones/threestones"
)

// Config holds client configuration.
type Config struct {
	Host           string        `env:"THREESTONES_HOST"                 envDefault:"localhost"`
	Port           int           `env:"THREESTONES_PORT"                 envDefault:"50000"`
	AcceptedOpcode uint          `env:"THREESTONES_MOVE_ACCEPTED_OPCODE"`
	Script         string        `env:"THREESTONES_SCRIPT"`
	Lang           string        `env:"THREESTONES_LANG"                 envDefault:"en"`
	Color          bool          `env:"THREESTONES_COLOR"                envDefault:"true"`
	ClearScreen    bool          `env:"THREESTONES_CLEAR"`
	DialTimeout    time.Duration `env:"THREESTONES_DIAL_TIMEOUT"         envDefault:"5s"`
	Verbose        bool          `env:"THREESTONES_VERBOSE"`
	OTelEndpoint   string        `env:"THREESTONES_OTEL_ENDPOINT"`
}

// ParseConfig loads defaults from the environment, then applies flags. A
// positional argument replaces the host.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Host, "host", cfg.Host, "server host")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	fs.UintVar(&cfg.AcceptedOpcode, "accepted-opcode", cfg.AcceptedOpcode, "only accept moves answered with this opcode (0 accepts any reply but a rejection)")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "path to a lua script that plays instead of the keyboard")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "display language (en, fr-CA)")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "draw stones in color")
	fs.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "clear the screen before each board")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "time allowed to connect")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log protocol traffic to stderr")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP collector URL for game traces (off when empty)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if host := fs.Arg(0); host != "" {
		cfg.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the client cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.AcceptedOpcode > 255 {
		return fmt.Errorf("accepted opcode %d out of range", c.AcceptedOpcode)
	}
	switch op := threestones.Opcode(c.AcceptedOpcode); op {
	case threestones.OpRequestPlay, threestones.OpQuit, threestones.OpGameStarted,
		threestones.OpMove, threestones.OpInvalidMove:
		return fmt.Errorf("accepted opcode %d is already used for %v", c.AcceptedOpcode, op)
	}
	if c.DialTimeout < 0 {
		return fmt.Errorf("dial timeout must not be negative")
	}
	return nil
}

// Addr returns the server address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Opcode returns the accepted-move opcode, zero when any reply but a
// rejection is accepted.
func (c Config) Opcode() threestones.Opcode {
	return threestones.Opcode(c.AcceptedOpcode)
}
