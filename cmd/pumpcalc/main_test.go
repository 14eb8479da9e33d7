package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUT(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "curves")

	cfg = config.Default()
	cfg.Store.Root = root
	logger = l.NewNopLoggerWrapper()

	return root
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := fn(cmd, args)

	return buf.String(), err
}

func TestSetupConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pumpcalc.yaml")
	require.Nil(t, os.WriteFile(file, []byte("strategy: mild\n"), 0600))

	configFile = file
	defer func() { configFile = "" }()

	require.Nil(t, setup())
	assert.Equal(t, "mild", cfg.Strategy)

	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.NotNil(t, setup())
}

func TestCloseStorage(t *testing.T) {
	setupUT(t)

	assert.Nil(t, closeStorage())

	cfg.Store.Backend = config.BackendRedis
	cfg.Store.RedisDSN = "redis://127.0.0.1:6379/0"

	_, err := openStorage()
	require.Nil(t, err)
	require.NotNil(t, redisCli)

	first := redisCli

	_, err = openStorage()
	require.Nil(t, err)
	assert.NotSame(t, first, redisCli)

	assert.Nil(t, closeStorage())
	assert.Nil(t, redisCli)
	assert.Nil(t, rootCmd.PersistentPostRunE(rootCmd, nil))
}

func TestCall(t *testing.T) {
	root := setupUT(t)

	out, err := run(t, runCall, "INTERP_CLIP", "0,1,2,3", "0,1,4,9", "5")
	assert.Nil(t, err)
	assert.Equal(t, "9\n", out)

	out, err = run(t, runCall, "PIPE_DP", "-1", "50", "100", "0", "1000", "0.001")
	assert.ErrorIs(t, err, errCallFailed)
	assert.True(t, strings.HasPrefix(out, "#ERROR: "), out)

	out, err = run(t, runCall, "CURVE_AT", "p1", "1")
	assert.ErrorIs(t, err, errCallFailed)
	assert.Contains(t, out, "no curve library")

	_, statErr := os.Stat(root)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFuncs(t *testing.T) {
	setupUT(t)

	out, err := run(t, runFuncs)
	assert.Nil(t, err)
	assert.Contains(t, out, "PIPE_DP(")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 24)
}

func TestCurveCommands(t *testing.T) {
	setupUT(t)

	file := filepath.Join(t.TempDir(), "p100.csv")
	require.Nil(t, os.WriteFile(file, []byte("Q,H\n0,50\n50,37.5\n100,0\n"), 0600))

	importXCol, importYCol = "A", "B"

	out, err := run(t, runCurveImport, file)
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(out, "p100: 3 points"), out)

	out, err = run(t, runCurveList)
	assert.Nil(t, err)
	assert.Equal(t, "p100\n", out)

	out, err = run(t, runCurveShow, "p100")
	assert.Nil(t, err)
	assert.Contains(t, out, "name: p100")

	out, err = run(t, runCall, "CURVE_AT", "p100", "50")
	assert.Nil(t, err)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	assert.Nil(t, err)
	assert.InDelta(t, 37.5, v, 1e-9)

	_, err = run(t, runCurveRm, "p100")
	assert.Nil(t, err)

	_, err = run(t, runCurveShow, "p100")
	assert.NotNil(t, err)

	_, err = run(t, runCurveImport, filepath.Join(t.TempDir(), "p.json"))
	assert.NotNil(t, err)
}
