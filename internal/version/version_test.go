package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	assert.True(t, strings.HasPrefix(GetVersionString(), "honogen version v9.9.9 (commit "))
}

func TestGetFullVersionInfo(t *testing.T) {
	lines := strings.Split(GetFullVersionInfo(), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, GetVersionString(), lines[0])
	assert.Contains(t, lines[1], runtime.Version())
}
