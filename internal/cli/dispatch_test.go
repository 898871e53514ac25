package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mintodo/internal/cli"
	"mintodo/internal/commands"
	"mintodo/internal/config"
	"mintodo/internal/exitcode"
	"mintodo/internal/service"
	"mintodo/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testFactory creates a store factory that returns the given FakeStore and
// counts how often it was called.
func testFactory(store *testutil.FakeStore, calls *int) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		if calls != nil {
			*calls++
		}
		return store, nil
	}
}

func newDispatcher(t *testing.T, store *testutil.FakeStore) *cli.Dispatcher {
	t.Helper()
	// Keep tests away from the user's real config.yaml.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return cli.NewDispatcher(commands.DefaultRegistry, testFactory(store, nil))
}

func run(d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "unknowncmd")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unknown command: unknowncmd\n", stderr)
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "--quiet")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unknown command: --quiet\n", stderr)
}

func TestDispatcher_HelpCommand(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	stdout, stderr, code := run(d, "help")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Nil(t, d.Store(), "help must not create the store")
}

func TestDispatcher_VersionCommand(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	stdout, stderr, code := run(d, "version")

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "mintodo 0.1.0\n", stdout)
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "help", "--unknown")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unknown flag: -unknown\n", stderr)
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "add", "--due")

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: flag needs an argument: -due\n", stderr)
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	store := testutil.NewFakeStore(testutil.Task("aaaa1111", "Write README", service.InProgress, 2))
	d := newDispatcher(t, store)

	stdout, stderr, code := run(d)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Write README")
}

func TestDispatcher_StoreCreatedOnceAndReused(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store := testutil.NewFakeStore()
	calls := 0
	d := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store, &calls))

	_, _, code := run(d, "add", "--quiet", "Write README")
	require.Equal(t, exitcode.Success, code)
	_, _, code = run(d, "add", "--quiet", "Push to repo")
	require.Equal(t, exitcode.Success, code)
	stdout, _, code := run(d, "list")
	require.Equal(t, exitcode.Success, code)

	assert.Equal(t, 1, calls)
	assert.Contains(t, stdout, "   1  ◷ Write README")
	assert.Contains(t, stdout, "   2  ◷ Push to repo")
}

func TestDispatcher_FactoryError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	d := cli.NewDispatcher(commands.DefaultRegistry, func(ctx context.Context, cfg *config.Config) (service.Store, error) {
		return nil, errors.New("no store today")
	})

	_, stderr, code := run(d, "list")

	assert.Equal(t, exitcode.ConfigError, code)
	assert.Equal(t, "error: no store today\n", stderr)
}

func TestDispatcher_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("seed: [oops\n"), 0600))
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "list", "--config", dir)

	assert.Equal(t, exitcode.ConfigError, code)
	assert.Contains(t, stderr, "invalid config.yaml")
}

func TestDispatcher_ConfigDateFormat(t *testing.T) {
	dir := t.TempDir()
	body := "color: false\ndate_format: \"02.01.2006\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(body), 0600))
	store := testutil.NewFakeStore(testutil.Task("aaaa1111", "Write README", service.InProgress, 2))
	d := newDispatcher(t, store)

	stdout, _, code := run(d, "list", "--config", dir)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "   1  ⧗ Write README  [in progress]  due 22.09.2025\n", stdout)
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, stderr, code := run(d, "add", "--debug", "--quiet", "Write README")

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "dispatch")
	assert.Contains(t, stderr, "add")
}

func TestDispatcher_DebugReachesExistingStore(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeStore())

	_, _, code := run(d, "list")
	require.Equal(t, exitcode.Success, code)

	_, stderr, code := run(d, "add", "--debug", "--quiet", "Write README")
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, stderr, "task created")

	_, stderr, code = run(d, "add", "--quiet", "Push to repo")
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
}

func TestDispatcher_NilFactory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(d, "list")

	assert.Equal(t, exitcode.ConfigError, code)
	assert.Equal(t, "error: no task store configured\n", stderr)
}
