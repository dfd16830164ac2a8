package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 16.0, cfg.Optional.Start)
		assert.Equal(t, []float64{2, 3, 2}, cfg.Optional.Divisors)
		assert.Equal(t, time.Second, cfg.Timer.Delay)
		assert.Equal(t, []int{1, 2, 3}, cfg.Timer.Values)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "timer:\n  delay: 5ms\n  values: [4]\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Millisecond, cfg.Timer.Delay)
		assert.Equal(t, []int{4}, cfg.Timer.Values)
		assert.Equal(t, 1.0, cfg.Writer.Start)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("PLAYGROUND_LOG_LEVEL", "debug")
		cfg, err := LoadConfig(writeConfig(t, "log_level: warn\n"))
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestPages(t *testing.T) {
	cfgPath := writeConfig(t, "log_level: error\ntimer:\n  delay: 1ms\n")

	t.Run("optional", func(t *testing.T) {
		assert.Equal(t,
			"16 >>- divide(2) >>- divide(3) >>- divide(2) = Some(1.3333333333333333)\n",
			run(t, "optional", "--config", cfgPath))
	})

	t.Run("optional with zero divisor", func(t *testing.T) {
		path := writeConfig(t, "log_level: error\noptional:\n  divisors: [2, 0, 2]\n")
		assert.Equal(t,
			"16 >>- divide(2) >>- divide(0) >>- divide(2) = None\n",
			run(t, "optional", "--config", path))
	})

	t.Run("writer", func(t *testing.T) {
		assert.Equal(t,
			"value: 2\nlog: \"added 3 multiplied 5 subtracted 6 divided 7 \"\n",
			run(t, "writer", "--config", cfgPath))
	})

	t.Run("result", func(t *testing.T) {
		assert.Equal(t,
			"Success(5)\nFailure(20 / 0: arith: division by zero)\nSuccess(***)\n",
			run(t, "result", "--config", cfgPath))
	})

	t.Run("either", func(t *testing.T) {
		assert.Equal(t,
			"value: 3\nerror: arith: cannot divide by 0\n",
			run(t, "either", "--config", cfgPath))
	})

	t.Run("signal", func(t *testing.T) {
		assert.Equal(t, "5\n6\n9\n12\n", run(t, "signal", "--config", cfgPath))
	})

	t.Run("timer", func(t *testing.T) {
		assert.Equal(t, "6\n9\n12\n", run(t, "timer", "--config", cfgPath))
	})
}

func TestBadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"writer", "--config", writeConfig(t, "log_level: loud\n")})
	assert.Error(t, cmd.Execute())
}
