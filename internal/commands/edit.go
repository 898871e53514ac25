package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// optionalString is a string flag that remembers whether it was given.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

// EditCmd implements the edit command. Only the fields named by flags change.
type EditCmd struct {
	title  optionalString
	desc   optionalString
	due    optionalString
	status optionalString
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change task fields" }
func (c *EditCmd) Usage() string {
	return "mintodo edit [--title <text>] [--desc <text>] [--due <date>] [--status <status>] <ref>"
}
func (c *EditCmd) NeedsStore() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.desc, "desc", "")
	fs.Var(&c.desc, "d", "")
	fs.Var(&c.due, "due", "")
	fs.Var(&c.status, "status", "")
	fs.Var(&c.status, "s", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	task, err := lookupTask(store, args)
	if err != nil {
		return fail(errOut, err)
	}

	if !c.title.set && !c.desc.set && !c.due.set && !c.status.set {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	// Validate everything before touching the store.
	var title string
	if c.title.set {
		title = strings.TrimSpace(c.title.value)
		if title == "" {
			return fail(errOut, service.ErrTitleRequired)
		}
	}
	var due time.Time
	if c.due.set {
		due, err = ParseDue(c.due.value, now())
		if err != nil {
			return fail(errOut, err)
		}
	}
	var status service.Status
	if c.status.set {
		status, err = service.ParseStatus(c.status.value)
		if err != nil {
			return fail(errOut, err)
		}
	}

	err = store.Update(task.ID, func(t *service.Task) {
		if c.title.set {
			t.Title = title
		}
		if c.desc.set {
			t.Description = c.desc.value
		}
		if c.due.set {
			t.Due = due
		}
		if c.status.set {
			t.Status = status
		}
	})
	if err != nil {
		return fail(errOut, err)
	}
	logging.FromContext(ctx).Debug("edit", zap.String("id", task.ID))

	return ok(cfg, out)
}
