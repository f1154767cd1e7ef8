package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/config"
	"github.com/babylonchain/btc-staking-manager/log"
	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/store"
	"github.com/babylonchain/btc-staking-manager/types"
)

func homePath(ctx *cli.Context) (string, error) {
	return filepath.Abs(ctx.GlobalString(homeFlag))
}

// loadConfig reads the config of the home directory and builds the logger
// it describes.
func loadConfig(ctx *cli.Context) (*config.Config, *zap.Logger, error) {
	home, err := homePath(ctx)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig(home)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := log.NewRootLogger(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize the logger: %w", err)
	}

	return cfg, logger, nil
}

func openParamsStore(cfg *config.Config) (*store.ParamsStore, error) {
	backend, err := cfg.DatabaseConfig.GetDbBackend()
	if err != nil {
		return nil, fmt.Errorf("failed to open the params database: %w", err)
	}

	s, err := store.NewParamsStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return s, nil
}

// loadRegistry prefers the params file of the config over the params
// imported into the database.
func loadRegistry(cfg *config.Config) (*params.Registry, error) {
	if cfg.ParamsFile != "" {
		all, err := params.LoadFile(cfg.ParamsFile)
		if err != nil {
			return nil, err
		}
		return params.NewRegistry(all)
	}

	s, err := openParamsStore(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Registry()
}

func readUTXOs(path string) ([]*types.UTXO, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var utxos []*types.UTXO
	if err := json.Unmarshal(bz, &utxos); err != nil {
		return nil, fmt.Errorf("invalid UTXOs file %s: %w", path, err)
	}

	return utxos, nil
}

func printRespJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Printf("%s\n", jsonBytes)
}
