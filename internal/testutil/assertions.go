package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the log output of a scripted run contains every
// given fragment, e.g. a message and its key=value attributes.
func AssertLogged(t *testing.T, result *ScriptResult, fragments ...string) {
	t.Helper()

	for _, fragment := range fragments {
		require.True(t,
			strings.Contains(result.LogOutput, fragment),
			"expected log output to contain %q", fragment,
		)
	}
}
