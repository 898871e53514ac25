package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/service"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command. The command list is built from the
// registry it was registered with.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"?"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "mintodo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  mintodo                  Start an interactive session")

	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}
	for _, cmd := range registry.All() {
		fmt.Fprintf(out, "  %s\n", cmd.Usage())
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (aliases: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "      %s\n", synopsis)
	}

	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Task references:
  3                Position in the list (1-based)
  1f0c             Task id or unique id prefix (at least 4 characters)

Due dates:
  2025-09-22, today, tomorrow, yesterday, +3d, -1d

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  MINTODO_DEBUG=1  Print debug logs for the whole run

In a session, type quit or exit to leave.
`
