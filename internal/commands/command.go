// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/output"
	"mintodo/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or mutates tasks.
	// Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags. It is called before
	// every run, so it also resets flag state left from a previous run.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// store is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int
}

// fail prints err and maps it to an exit code.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)

	switch {
	case errors.Is(err, service.ErrDuplicateID):
		return exitcode.StoreError
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrIndexOutOfRange),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, ErrInvalidDue),
		errors.Is(err, ErrTaskRefRequired),
		errors.Is(err, ErrInvalidTaskRef),
		errors.Is(err, ErrAmbiguousTaskRef):
		return exitcode.UserError
	default:
		return exitcode.StoreError
	}
}

// ok prints the acknowledgement unless quiet.
func ok(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func newPrinter(cfg *config.Config, out io.Writer) *output.Printer {
	return output.NewPrinter(out, cfg.Color, cfg.DateFormat)
}
