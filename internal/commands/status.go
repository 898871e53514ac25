package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

func init() {
	Register(&StatusCmd{})
}

// StatusCmd implements the status command.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return []string{"mark"} }
func (c *StatusCmd) Synopsis() string  { return "Set task status (not started, in progress, completed)" }
func (c *StatusCmd) Usage() string     { return "mintodo status <ref> <status...>" }
func (c *StatusCmd) NeedsStore() bool  { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		if len(args) == 0 {
			return fail(errOut, ErrTaskRefRequired)
		}
		fmt.Fprintln(errOut, "error: status required")
		return exitcode.UserError
	}

	status, err := service.ParseStatus(strings.Join(args[1:], " "))
	if err != nil {
		return fail(errOut, err)
	}
	return setStatus(ctx, cfg, store, args[:1], status, out, errOut)
}

// setStatus is the shared implementation for status, done and start.
func setStatus(ctx context.Context, cfg *config.Config, store service.Store, args []string, status service.Status, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	task, err := lookupTask(store, args)
	if err != nil {
		return fail(errOut, err)
	}

	if err := store.Update(task.ID, func(t *service.Task) { t.Status = status }); err != nil {
		return fail(errOut, err)
	}
	logging.FromContext(ctx).Debug("status changed",
		zap.String("id", task.ID),
		zap.Stringer("from", task.Status),
		zap.Stringer("to", status))

	return ok(cfg, out)
}
