package main

import (
	"github.com/urfave/cli"

	"github.com/babylonchain/btc-staking-manager/pop"
)

var popCommands = []cli.Command{
	{
		Name:     "pop",
		Usage:    "Inspect the proof of possession messages.",
		Category: "Proof of possession",
		Subcommands: []cli.Command{
			contextHashCmd,
			popMessageCmd,
		},
	},
}

var contextHashCmd = cli.Command{
	Name:      "context-hash",
	ShortName: "ch",
	Usage:     "Print the context hash prefixed to the proof of possession message.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     chainIDFlag,
			Usage:    "The Babylon chain id",
			Required: true,
		},
		cli.UintFlag{
			Name:  versionFlag,
			Usage: "The proof of possession context version",
		},
	},
	Action: contextHash,
}

func contextHash(ctx *cli.Context) error {
	printRespJSON(map[string]string{
		"context_hash": pop.ContextHash(ctx.String(chainIDFlag), uint32(ctx.Uint(versionFlag))),
	})
	return nil
}

var popMessageCmd = cli.Command{
	Name:      "message",
	ShortName: "m",
	Usage:     "Print the message the BTC key signs for a Babylon address.",
	Description: "Without a Babylon height or an upgrade height the message is the bare address, " +
		"otherwise it is prefixed with the context hash once the height reaches the upgrade height.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     babylonAddressFlag,
			Usage:    "The bech32 Babylon address of the staker",
			Required: true,
		},
		cli.StringFlag{
			Name:  chainIDFlag,
			Usage: "The Babylon chain id",
		},
		cli.Uint64Flag{
			Name:  heightFlag,
			Usage: "The current Babylon height",
		},
		cli.Uint64Flag{
			Name:  upgradeHeightFlag,
			Usage: "The Babylon height of the proof of possession upgrade",
		},
		cli.UintFlag{
			Name:  versionFlag,
			Usage: "The proof of possession context version",
		},
	},
	Action: popMessage,
}

func popMessage(ctx *cli.Context) error {
	var height *uint64
	if ctx.IsSet(heightFlag) {
		h := ctx.Uint64(heightFlag)
		height = &h
	}

	var upgrade *pop.UpgradeConfig
	if ctx.IsSet(upgradeHeightFlag) {
		upgrade = &pop.UpgradeConfig{
			UpgradeHeight: ctx.Uint64(upgradeHeightFlag),
			Version:       uint32(ctx.Uint(versionFlag)),
		}
	}

	printRespJSON(map[string]string{
		"message": pop.BuildMessage(ctx.String(babylonAddressFlag), height, ctx.String(chainIDFlag), upgrade),
	})
	return nil
}
