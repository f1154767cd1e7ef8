package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/kvdb"
	"github.com/stretchr/testify/require"
)

// CreateTestBackend opens a bolt backend in a temporary directory that is
// closed when the test ends.
func CreateTestBackend(t *testing.T) kvdb.Backend {
	dir := t.TempDir()
	backend, err := kvdb.GetBoltBackend(&kvdb.BoltBackendConfig{
		DBPath:            dir,
		DBFileName:        filepath.Base(dir) + ".db",
		NoFreelistSync:    true,
		AutoCompact:       false,
		AutoCompactMinAge: time.Hour,
		DBTimeout:         10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, backend.Close())
	})
	return backend
}
