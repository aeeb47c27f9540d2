package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/pkg/core/config"
)

// execute runs the root command with args and returns stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeWithEnv(t, nil, stdin, args...)
}

func executeWithEnv(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PASCAL_CONFIG", "")
	t.Setenv("PASCAL_GENERAL_LOG_LEVEL", "off")
	t.Setenv("HOME", t.TempDir())
	for k, v := range env {
		t.Setenv(k, v)
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { cfgFile, verbose, replNoColor = "", false, false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := execute(t, "", "eval", "var netto = 100", "netto * 1.19", "1 < 2")
	require.NoError(t, err)
	assert.Equal(t, "119.00\ntrue\n", out)
}

func TestEval_StopsAtFirstError(t *testing.T) {
	out, err := execute(t, "", "eval", "1 + 1", "1 / 0", "2 + 2")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMathError))
	assert.Contains(t, err.Error(), "1 / 0")
	assert.Equal(t, "2\n", out)
}

func TestEval_RequiresArgument(t *testing.T) {
	_, err := execute(t, "", "eval")
	assert.Error(t, err)
}

func TestREPL_IsDefaultCommand(t *testing.T) {
	out, err := execute(t, "2 ^ 3\nexit()\n", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "8\n")
	assert.True(t, strings.HasSuffix(out, "bye\n"))
}

func TestREPL_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pascal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repl:\n  prompt: \"calc> \"\n  exit_command: quit\n  color: false\n"), 0o600))

	out, err := execute(t, "1 + 1\nquit\n", "repl", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "calc> 2\ncalc> bye\n", out)
}

func TestConfigFileNotFound(t *testing.T) {
	_, err := execute(t, "", "eval", "--config", "/nonexistent/pascal.toml", "1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestConfigFromEnvNotFound(t *testing.T) {
	_, err := executeWithEnv(t, map[string]string{"PASCAL_CONFIG": "/nonexistent/pascal.toml"}, "", "eval", "1")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
	assert.Equal(t, mdwerror.SeverityHigh, mdwerror.GetSeverity(err))
}

func TestNoConfigFileUsesDefaults(t *testing.T) {
	out, err := execute(t, "", "eval", "2 ^ 10")
	require.NoError(t, err)
	assert.Equal(t, "1024\n", out)
}

func TestTUIConfig_UsesREPLSection(t *testing.T) {
	cfg := config.Default()
	cfg.REPL.Prompt = "calc> "
	cfg.REPL.ExitCommand = "quit"
	cfg.Evaluator.MaxExponent = 3

	tc := tuiConfig(cfg)
	assert.Equal(t, "calc> ", tc.Prompt)
	assert.Equal(t, "quit", tc.ExitCommand)
	require.NotNil(t, tc.Session)

	_, err := tc.Session.Eval("2 ^ 4")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMathError))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pascal v"))
	assert.Contains(t, out, "OS/Arch:")
}
