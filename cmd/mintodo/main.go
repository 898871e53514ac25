// Package main is the entry point for the mintodo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mintodo/internal/backend/memory"
	"mintodo/internal/cli"
	"mintodo/internal/commands"
	"mintodo/internal/config"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	log := logging.New(os.Stderr, os.Getenv("MINTODO_DEBUG") != "")
	defer func() { _ = log.Sync() }()
	ctx = logging.WithContext(ctx, log)

	factory := func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		var opts []memory.Option
		if cfg.Seed {
			opts = append(opts, memory.WithTasks(memory.Samples(time.Now())...))
		}
		return memory.New(opts...), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	if len(os.Args) > 1 {
		return dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	}

	settings := config.DefaultSettings()
	if cfg, err := config.New(""); err == nil {
		settings = cfg.Settings
	}
	session := cli.NewSession(dispatcher, settings.Prompt, settings.Welcome)
	return session.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
}
