package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_DefaultLogLevel_IsWarn(t *testing.T) {
	flag := runCmd.Flags().Lookup("log")
	require.NotNil(t, flag, "log flag must be registered")
	assert.Equal(t, "warn", flag.DefValue)
}

func TestRunCmd_TraceLevelFlag_DefaultsToNone(t *testing.T) {
	flag := runCmd.Flags().Lookup("trace-level")
	require.NotNil(t, flag, "trace-level flag must be registered")
	assert.Equal(t, "none", flag.DefValue)
}

func TestCompareCmd_HasSameConfigFlagsAsRun(t *testing.T) {
	for _, name := range []string{"config", "engine", "workload-kind", "chunk-size-blocks", "cache-size-blocks"} {
		assert.NotNilf(t, runCmd.Flags().Lookup(name), "run command missing flag %q", name)
		assert.NotNilf(t, compareCmd.Flags().Lookup(name), "compare command missing flag %q", name)
	}
}

func TestRootCmd_RegistersRunAndCompareSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	assert.True(t, found["run"], "root command must register 'run'")
	assert.True(t, found["compare"], "root command must register 'compare'")
}
