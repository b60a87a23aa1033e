package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static")

	icon, err := Install(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "icon.svg"), icon)

	b, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("custom icon")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.svg"), custom, 0o600))

	icon, err := Install(dir)
	require.NoError(t, err)

	b, err := os.ReadFile(icon)
	require.NoError(t, err)
	assert.Equal(t, custom, b)
}
