// client.go implements the Three Stones game client
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hlin91/CS3800_threestones/internal/config"
	"github.com/hlin91/CS3800_threestones/internal/telemetry"
	"github.com/hlin91/CS3800_threestones/threestones"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[CLIENT] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt kills the process even if the prompt is still waiting on stdin
	context.AfterFunc(ctx, stop)

	traces := telemetry.Options{Service: "threestones-client", Endpoint: cfg.OTelEndpoint}
	err = telemetry.Run(ctx, traces, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		config.Exitf("client: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	presenter, err := newPresenter(cfg)
	if err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.Default()
	}
	client := threestones.NewClient(cfg.Addr(), presenter, threestones.SessionOptions{
		AcceptedOpcode: cfg.Opcode(),
		Logger:         logger,
	})
	client.SetDialTimeout(cfg.DialTimeout)
	if err := client.Connect(ctx); err != nil {
		return err
	}
	return client.Start(ctx)
}

// newPresenter plays from the keyboard unless a script is configured
func newPresenter(cfg config.Config) (threestones.Presenter, error) {
	renderer := threestones.NewRenderer(os.Stdout, threestones.NewPrinter(cfg.Lang), threestones.RenderOptions{
		Color:       cfg.Color,
		ClearScreen: cfg.ClearScreen,
	})
	if cfg.Script == "" {
		return threestones.NewConsolePresenter(os.Stdin, renderer), nil
	}
	script, err := threestones.LoadScript(cfg.Script)
	if err != nil {
		return nil, err
	}
	return threestones.NewScriptPresenter(script, renderer), nil
}

//!--
