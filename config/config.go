package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"

	"github.com/babylonchain/btc-staking-manager/metrics"
)

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "auto"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "stakercli.log"
	defaultConfigFileName = "stakercli.conf"
	defaultDataDirname    = "data"
	defaultBitcoinNetwork = "signet"
)

var (
	//   C:\Users\<username>\AppData\Local\ on Windows
	//   ~/.stakercli on Linux
	//   ~/Users/<username>/Library/Application Support/Stakercli on MacOS
	DefaultStakerDir = btcutil.AppDataDir("stakercli", false)

	defaultBTCNetParams = chaincfg.SigNetParams
)

// Config is the main config for the stakercli command
type Config struct {
	LogLevel  string `long:"loglevel" description:"Logging level for all subsystems" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	LogFormat string `long:"logformat" description:"Format of the log output" choice:"auto" choice:"console" choice:"json" choice:"logfmt"`

	BitcoinNetwork string `long:"bitcoinnetwork" description:"Bitcoin network to run on" choice:"mainnet" choice:"regtest" choice:"testnet" choice:"simnet" choice:"signet"`

	BTCNetParams chaincfg.Params

	// ParamsFile is an optional JSON file with the versioned staking params.
	// If empty, the params imported into the database are used.
	ParamsFile string `long:"paramsfile" description:"Path to a JSON file with the versioned staking params"`

	DatabaseConfig *DBConfig `group:"dbconfig" namespace:"dbconfig"`

	BabylonConfig *BBNConfig `group:"babylon" namespace:"babylon"`

	Metrics *metrics.Config `group:"metrics" namespace:"metrics"`
}

func DefaultConfigWithHome(homePath string) Config {
	bbnCfg := DefaultBBNConfig()
	cfg := Config{
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		BitcoinNetwork: defaultBitcoinNetwork,
		BTCNetParams:   defaultBTCNetParams,
		DatabaseConfig: DefaultDBConfigWithHomePath(homePath),
		BabylonConfig:  &bbnCfg,
		Metrics:        metrics.DefaultStakerConfig(),
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func DefaultConfig() Config {
	return DefaultConfigWithHome(DefaultStakerDir)
}

func ConfigFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

func DataDir(homePath string) string {
	return filepath.Join(homePath, defaultDataDirname)
}

// LoadConfig initializes and parses the config using the config file under
// the given home directory.
func LoadConfig(homePath string) (*Config, error) {
	// The home directory is required to have a configuration file with a specific name
	// under it.
	cfgFile := ConfigFile(homePath)
	if !FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	// Start from the defaults so that options missing from the file keep
	// sane values.
	cfg := DefaultConfigWithHome(homePath)
	fileParser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(fileParser).ParseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteConfig writes the given config to the config file under the home
// directory, including comments and defaults.
func WriteConfig(cfg *Config, homePath string) error {
	fileParser := flags.NewParser(cfg, flags.Default)
	return flags.NewIniParser(fileParser).WriteFile(ConfigFile(homePath), flags.IniIncludeComments|flags.IniIncludeDefaults)
}

// Validate checks the given configuration to be sane. This makes sure no
// illegal values or combination of values are set.
func (cfg *Config) Validate() error {
	switch cfg.BitcoinNetwork {
	case "mainnet":
		cfg.BTCNetParams = chaincfg.MainNetParams
	case "testnet":
		cfg.BTCNetParams = chaincfg.TestNet3Params
	case "regtest":
		cfg.BTCNetParams = chaincfg.RegressionNetParams
	case "simnet":
		cfg.BTCNetParams = chaincfg.SimNetParams
	case "signet":
		cfg.BTCNetParams = chaincfg.SigNetParams
	default:
		return fmt.Errorf("invalid network: %v", cfg.BitcoinNetwork)
	}

	if cfg.DatabaseConfig == nil {
		return fmt.Errorf("empty database config")
	}

	if err := cfg.DatabaseConfig.Validate(); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}

	if cfg.BabylonConfig == nil {
		return fmt.Errorf("empty babylon config")
	}

	if err := cfg.BabylonConfig.Validate(); err != nil {
		return fmt.Errorf("invalid babylon config: %w", err)
	}

	if cfg.Metrics == nil {
		return fmt.Errorf("empty metrics config")
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	if cfg.ParamsFile != "" && !FileExists(cfg.ParamsFile) {
		return fmt.Errorf("params file %s does not exist", cfg.ParamsFile)
	}

	// All good, return the sanitized result.
	return nil
}

func FileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}
