package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/babylonchain/btc-staking-manager/config"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[stakercli] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stakercli"
	app.Usage = "Offline toolkit of the BTC staking manager."
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  homeFlag,
			Usage: "The path to the stakercli home directory",
			Value: config.DefaultStakerDir,
		},
	}

	app.Commands = append(app.Commands, initCommand, serveMetricsCommand)
	app.Commands = append(app.Commands, paramsCommands...)
	app.Commands = append(app.Commands, stakingCommands...)
	app.Commands = append(app.Commands, popCommands...)

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
