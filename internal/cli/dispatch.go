// Package cli parses command lines and runs commands against one store.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"mintodo/internal/commands"
	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

// StoreFactory creates the store from config.
// Used to inject the backend during dispatch.
type StoreFactory func(ctx context.Context, cfg *config.Config) (service.Store, error)

// loggerSetter is implemented by stores that log their mutations. The
// dispatcher hands them the logger of the current command.
type loggerSetter interface {
	SetLogger(*zap.Logger)
}

// Dispatcher handles command-line parsing and dispatch.
// The store is created on the first command that needs it and reused by
// every later command, so an interactive session works on one list.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
	store    service.Store
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	log := logging.FromContext(ctx)
	if debug {
		log = logging.New(errOut, true)
		ctx = logging.WithContext(ctx, log)
	}
	log.Debug("dispatch",
		zap.String("command", cmd.Name()),
		zap.Strings("args", positionalArgs),
		zap.String("config", cfg.Dir))

	var store service.Store
	if cmd.NeedsStore() {
		store, err = d.ensureStore(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.ConfigError
		}
		if ls, ok := store.(loggerSetter); ok {
			ls.SetLogger(log)
		}
	}

	return cmd.Run(ctx, cfg, store, positionalArgs, out, errOut)
}

// Store returns the store created so far, or nil.
func (d *Dispatcher) Store() service.Store {
	return d.store
}

func (d *Dispatcher) ensureStore(ctx context.Context, cfg *config.Config) (service.Store, error) {
	if d.store != nil {
		return d.store, nil
	}
	if d.factory == nil {
		return nil, fmt.Errorf("no task store configured")
	}
	store, err := d.factory(ctx, cfg)
	if err != nil {
		return nil, err
	}
	d.store = store
	return store, nil
}

// flagError rewrites flag package errors into the CLI's message style.
func flagError(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		return errStr
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}

	return errStr
}
