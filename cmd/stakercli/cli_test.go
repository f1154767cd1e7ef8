package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/babylonchain/btc-staking-manager/config"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

func runCmd(t *testing.T, home string, args ...string) error {
	return newApp().Run(append([]string{"stakercli", "--" + homeFlag, home}, args...))
}

func TestInitAndImportParams(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, runCmd(t, home, "init"))
	require.True(t, config.FileExists(config.ConfigFile(home)))
	// a second init without --force keeps the existing config
	require.Error(t, runCmd(t, home, "init"))
	require.NoError(t, runCmd(t, home, "init", "--"+forceFlag))

	paramsFile := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(paramsFile, []byte(testutil.RegistrationParamsJSON), 0600))
	require.NoError(t, runCmd(t, home, "params", "import", "--"+fileFlag, paramsFile))

	cfg, err := config.LoadConfig(home)
	require.NoError(t, err)
	registry, err := loadRegistry(cfg)
	require.NoError(t, err)
	require.Len(t, registry.All(), 5)

	p, err := registry.ByHeight(testutil.RegistrationBtcTipHeight)
	require.NoError(t, err)
	require.Equal(t, uint32(testutil.RegistrationParamsVersion), p.Version)

	require.NoError(t, runCmd(t, home, "params", "show", "--"+heightFlag, "900000"))
	require.Error(t, runCmd(t, home, "params", "show", "--"+versionFlag, "9"))
}

func TestImportInvalidParams(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, runCmd(t, home, "init"))

	paramsFile := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(paramsFile, []byte(`[]`), 0600))
	require.Error(t, runCmd(t, home, "params", "import", "--"+fileFlag, paramsFile))

	cfg, err := config.LoadConfig(home)
	require.NoError(t, err)
	s, err := openParamsStore(cfg)
	require.NoError(t, err)
	defer s.Close()
	stored, err := s.ListParams()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestOfflineCommands(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, runCmd(t, home, "pop", "context-hash", "--"+chainIDFlag, "bbn-1"))
	require.NoError(t, runCmd(t, home, "pop", "message",
		"--"+babylonAddressFlag, testutil.RegistrationBabylonAddress,
		"--"+chainIDFlag, "bbn-1",
		"--"+heightFlag, "10",
		"--"+upgradeHeightFlag, "5",
	))

	args := []string{"staking", "inclusion-proof",
		"--" + posFlag, "182",
		"--" + blockHashFlag, testutil.RegistrationInclusionProof.BlockHashHex,
	}
	for _, h := range testutil.RegistrationInclusionProof.Merkle {
		args = append(args, "--"+merkleFlag, h)
	}
	require.NoError(t, runCmd(t, home, args...))
	require.Error(t, runCmd(t, home, "staking", "inclusion-proof", "--"+posFlag, "1", "--"+blockHashFlag, "00"))
}

func TestEventLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &eventLogger{logger: zap.New(core)}

	l.OnEvent(types.EventChannelWithdraw, &types.ManagerEvent{
		Type:           types.EventTypeWithdrawStakingExpired,
		TimelockBlocks: 64000,
	})

	entries := logs.FilterMessage("signing request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, string(types.EventChannelWithdraw), fields["channel"])
	require.Equal(t, string(types.EventTypeWithdrawStakingExpired), fields["type"])
}
