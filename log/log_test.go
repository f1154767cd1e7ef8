package log_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/log"
)

func TestRootLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewRootLogger("json", "debug", &buf)
	require.NoError(t, err)
	logger.Debug("signed staking transaction", zap.String("txid", "abc"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["lvl"])
	require.Equal(t, "abc", entry["txid"])

	buf.Reset()
	logger, err = log.NewRootLogger("logfmt", "warn", &buf)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept", zap.Uint32("version", 4))
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "version=4")

	_, err = log.NewRootLogger("xml", "info", &buf)
	require.Error(t, err)
	_, err = log.NewRootLogger("json", "verbose", &buf)
	require.Error(t, err)
}

func TestRootLoggerWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "stakercli.log")
	logger, err := log.NewRootLoggerWithFile(logFile, "info")
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())
	require.FileExists(t, logFile)
}
