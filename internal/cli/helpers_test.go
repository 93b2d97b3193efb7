package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/roach88/ontaste/internal/ids"
	"github.com/roach88/ontaste/internal/testutil"
)

// cliEnv runs commands against one state file with deterministic ids and
// timestamps shared across invocations.
type cliEnv struct {
	t     *testing.T
	db    string
	clock *testutil.StepClock
	ids   *ids.SequenceGenerator
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	return &cliEnv{
		t:     t,
		db:    filepath.Join(t.TempDir(), "ontaste.db"),
		clock: testutil.NewStepClock(testutil.DefaultEpoch, 0),
		ids:   ids.NewSequenceGenerator("id"),
	}
}

type cliRun struct {
	stdout string
	stderr string
	err    error
}

func (e *cliEnv) run(args ...string) cliRun {
	e.t.Helper()
	opts := &RootOptions{
		DBPath:   e.db,
		LogLevel: "error",
		Clock:    e.clock,
		IDs:      e.ids,
	}
	cmd := NewRootCommandWithOptions(opts)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliRun{stdout: out.String(), stderr: errOut.String(), err: err}
}

// json runs a command with --format json.
func (e *cliEnv) json(args ...string) cliRun {
	e.t.Helper()
	return e.run(append([]string{"--format", "json"}, args...)...)
}
