package config_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/config"
)

func TestWriteAndLoadConfig(t *testing.T) {
	home := t.TempDir()

	_, err := config.LoadConfig(home)
	require.Error(t, err)

	cfg := config.DefaultConfigWithHome(home)
	cfg.BitcoinNetwork = "mainnet"
	cfg.LogFormat = "logfmt"
	cfg.BabylonConfig.ChainID = "bbn-1"
	cfg.BabylonConfig.PopUpgradeEnabled = true
	cfg.BabylonConfig.PopUpgradeHeight = 200
	cfg.BabylonConfig.PopContextVersion = 1
	require.NoError(t, config.WriteConfig(&cfg, home))

	loaded, err := config.LoadConfig(home)
	require.NoError(t, err)
	require.Equal(t, chaincfg.MainNetParams.Name, loaded.BTCNetParams.Name)
	require.Equal(t, "logfmt", loaded.LogFormat)
	require.Equal(t, "bbn-1", loaded.BabylonConfig.ChainID)
	require.Equal(t, config.DataDir(home), loaded.DatabaseConfig.DBPath)

	upgrade := loaded.BabylonConfig.PopUpgrade()
	require.NotNil(t, upgrade)
	require.Equal(t, uint64(200), upgrade.UpgradeHeight)
	require.Equal(t, uint32(1), upgrade.Version)
}

func TestValidateConfig(t *testing.T) {
	home := t.TempDir()

	cfg := config.DefaultConfigWithHome(home)
	require.Equal(t, chaincfg.SigNetParams.Name, cfg.BTCNetParams.Name)
	require.Nil(t, cfg.BabylonConfig.PopUpgrade())

	cfg.BitcoinNetwork = "litecoin"
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfigWithHome(home)
	cfg.BabylonConfig.LCDAddress = "not a url"
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfigWithHome(home)
	cfg.Metrics.Port = 70000
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfigWithHome(home)
	cfg.ParamsFile = "/does/not/exist.json"
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfigWithHome(home)
	cfg.DatabaseConfig.DBFileName = ""
	require.Error(t, cfg.Validate())
}
