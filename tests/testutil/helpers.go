// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteProfile writes a minimal connection profile pointing at the given
// endpoint and returns its path.
func WriteProfile(t *testing.T, dir string, endpoint string) string {
	t.Helper()
	content := fmt.Sprintf("api_version: migrator/v1\nendpoint: %s\npoll_interval: 1\n", endpoint)
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
