package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/service"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"view"} }
func (c *ShowCmd) Synopsis() string  { return "Show task details" }
func (c *ShowCmd) Usage() string     { return "mintodo show <ref>" }
func (c *ShowCmd) NeedsStore() bool  { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	task, err := lookupTask(store, args)
	if err != nil {
		return fail(errOut, err)
	}

	newPrinter(cfg, out).Detail(task)
	return exitcode.Success
}
