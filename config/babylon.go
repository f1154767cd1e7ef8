package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/pop"
)

const (
	defaultChainID    = "chain-test"
	defaultLCDAddress = "http://localhost:1317"
	defaultTimeout    = 20 * time.Second
	defaultMaxRetries = 5
	defaultRetryDelay = 400 * time.Millisecond
)

// BBNConfig holds the Babylon side settings used by the staking manager.
type BBNConfig struct {
	ChainID    string        `long:"chain-id" description:"chain id of the Babylon chain"`
	LCDAddress string        `long:"lcd-address" description:"address of the Babylon REST (LCD) endpoint"`
	Timeout    time.Duration `long:"timeout" description:"timeout of requests to the Babylon REST endpoint"`
	MaxRetries uint          `long:"max-retries" description:"maximum number of attempts for a Babylon REST query"`
	RetryDelay time.Duration `long:"retry-delay" description:"delay between attempts of a Babylon REST query"`

	PopUpgradeEnabled bool   `long:"pop-upgrade-enabled" description:"whether proof of possession messages are prefixed with the context hash after the upgrade height"`
	PopUpgradeHeight  uint64 `long:"pop-upgrade-height" description:"Babylon height from which proof of possession messages are prefixed with the context hash"`
	PopContextVersion uint32 `long:"pop-context-version" description:"version of the proof of possession context"`
}

func DefaultBBNConfig() BBNConfig {
	return BBNConfig{
		ChainID:    defaultChainID,
		LCDAddress: defaultLCDAddress,
		Timeout:    defaultTimeout,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

func (cfg *BBNConfig) Validate() error {
	if cfg.ChainID == "" {
		return fmt.Errorf("chain id cannot be empty")
	}

	if _, err := url.ParseRequestURI(cfg.LCDAddress); err != nil {
		return fmt.Errorf("invalid LCD address %s: %w", cfg.LCDAddress, err)
	}

	if cfg.MaxRetries == 0 {
		return fmt.Errorf("max retries must be positive")
	}

	return nil
}

func (cfg *BBNConfig) FetcherConfig() params.FetcherConfig {
	return params.FetcherConfig{
		LCDAddress: cfg.LCDAddress,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}
}

// PopUpgrade returns the proof of possession upgrade settings, or nil if the
// upgrade is not enabled.
func (cfg *BBNConfig) PopUpgrade() *pop.UpgradeConfig {
	if !cfg.PopUpgradeEnabled {
		return nil
	}
	return &pop.UpgradeConfig{
		UpgradeHeight: cfg.PopUpgradeHeight,
		Version:       cfg.PopContextVersion,
	}
}
