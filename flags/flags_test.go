package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// TestUniqueFlags asserts that no flag names collide.
func TestUniqueFlags(t *testing.T) {
	seen := make(map[string]struct{})
	for _, flag := range Flags {
		for _, name := range flag.Names() {
			_, exists := seen[name]
			assert.False(t, exists, "duplicate flag name %s", name)
			seen[name] = struct{}{}
		}
	}
}

// TestEnvVarFormat asserts every env var carries the SUITEKIT prefix.
func TestEnvVarFormat(t *testing.T) {
	for _, flag := range Flags {
		docFlag, ok := flag.(cli.DocGenerationFlag)
		require.True(t, ok)
		for _, envVar := range docFlag.GetEnvVars() {
			assert.True(t, strings.HasPrefix(envVar, EnvVarPrefix+"_"),
				"env var %s does not start with %s_", envVar, EnvVarPrefix)
		}
	}
}

func TestCheckRequired(t *testing.T) {
	app := cli.NewApp()
	app.Flags = Flags
	app.Action = CheckRequired

	// No flags are required; a bare invocation must pass.
	require.NoError(t, app.Run([]string{"suitekit"}))
}
