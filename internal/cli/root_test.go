package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ontaste/internal/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(config.Config{Output: "text", DBPath: "ontaste.db"})
	require.NotNil(t, cmd)
	assert.Equal(t, "ontaste", cmd.Use)
	assert.Contains(t, cmd.Long, "SQLite")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	commands := [][]string{
		{"register"}, {"login"}, {"logout"}, {"whoami"}, {"menu"}, {"test"},
		{"cart", "show"}, {"cart", "add"}, {"cart", "remove"}, {"cart", "qty"},
		{"order", "place"}, {"order", "list"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlagsSeededFromConfig(t *testing.T) {
	cmd := NewRootCommand(config.Config{Output: "json", DBPath: "/tmp/state.db", MenuPath: "menu.yaml"})

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "json", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "/tmp/state.db", dbFlag.DefValue)

	menuFlag := cmd.PersistentFlags().Lookup("menu")
	require.NotNil(t, menuFlag)
	assert.Equal(t, "menu.yaml", menuFlag.DefValue)
}

func TestFormatDefaultsToText(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	env := newCLIEnv(t)
	r := env.run("--format", "yaml", "whoami")
	require.Error(t, r.err)
	assert.Equal(t, ExitCommandError, GetExitCode(r.err))
	assert.Contains(t, r.err.Error(), `invalid format "yaml"`)
}

func TestRegisterRequiresFlags(t *testing.T) {
	env := newCLIEnv(t)
	r := env.run("register", "--name", "A")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "required flag(s)")
}
