package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/babylonchain/btc-staking-manager/config"
)

var initCommand = cli.Command{
	Name:  "init",
	Usage: "Initialize a stakercli home directory with the default config.",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  forceFlag,
			Usage: "Override the existing configuration",
		},
	},
	Action: initHome,
}

func initHome(ctx *cli.Context) error {
	home, err := homePath(ctx)
	if err != nil {
		return err
	}

	if config.FileExists(config.ConfigFile(home)) && !ctx.Bool(forceFlag) {
		return fmt.Errorf("config already exists under provided path: %s", home)
	}

	for _, dir := range []string{home, config.LogDir(home), config.DataDir(home)} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	defaultConfig := config.DefaultConfigWithHome(home)
	if err := config.WriteConfig(&defaultConfig, home); err != nil {
		return err
	}

	fmt.Printf("Initialized stakercli home at %s\n", home)
	return nil
}
