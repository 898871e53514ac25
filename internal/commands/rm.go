package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"mintodo/internal/config"
	"mintodo/internal/logging"
	"mintodo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
//
// All references are resolved against the list as it was before the command.
// When every reference is an id, tasks are deleted by id; otherwise the
// resolved positions are deleted in a single batch. Nothing is deleted if
// any reference fails to resolve.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete", "del"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks" }
func (c *RmCmd) Usage() string     { return "mintodo rm <ref...>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		return fail(errOut, err)
	}

	snapshot := store.List()
	byPosition := false
	positions := make([]int, 0, len(refs))
	ids := make([]string, 0, len(refs))
	seen := make(map[int]bool, len(refs))

	for _, ref := range refs {
		task, pos, err := findTask(snapshot, ref)
		if err != nil {
			return fail(errOut, err)
		}
		positions = append(positions, pos)
		if ref.IsPosition() {
			byPosition = true
		} else if !seen[pos] {
			seen[pos] = true
			ids = append(ids, task.ID)
		}
	}

	log := logging.FromContext(ctx)
	if byPosition {
		if err := store.DeleteAt(positions...); err != nil {
			return fail(errOut, err)
		}
		log.Debug("rm by position", zap.Ints("positions", positions))
		return ok(cfg, out)
	}

	for _, id := range ids {
		if err := store.Delete(id); err != nil {
			return fail(errOut, err)
		}
	}
	log.Debug("rm by id", zap.Strings("ids", ids))
	return ok(cfg, out)
}
