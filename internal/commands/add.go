package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"go.uber.org/zap"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. It is the creation collaborator: the
// title is validated here, before the store sees the task.
type AddCmd struct {
	desc   string
	due    string
	status string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create", "new"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "mintodo add [--desc <text>] [--due <date>] [--status <status>] <title...>"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.desc, "d", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	created := now()
	draft := service.Draft{
		Title:       strings.Join(args, " "),
		Description: c.desc,
	}

	if c.due != "" {
		due, err := ParseDue(c.due, created)
		if err != nil {
			return fail(errOut, err)
		}
		draft.Due = due
	}

	if c.status != "" {
		status, err := service.ParseStatus(c.status)
		if err != nil {
			return fail(errOut, err)
		}
		draft.Status = status
	}

	task, err := draft.Task(created)
	if err != nil {
		return fail(errOut, err)
	}

	if err := store.Create(task); err != nil {
		return fail(errOut, err)
	}
	logging.FromContext(ctx).Debug("add", zap.String("id", task.ID))

	if cfg.Quiet {
		return exitcode.Success
	}
	newPrinter(cfg, out).Task(store.Len(), task)
	return exitcode.Success
}
