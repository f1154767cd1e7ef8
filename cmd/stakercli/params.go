package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/config"
	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/types"
)

var paramsCommands = []cli.Command{
	{
		Name:      "params",
		ShortName: "p",
		Usage:     "Manage the versioned staking params.",
		Category:  "Params",
		Subcommands: []cli.Command{
			importParamsCmd,
			fetchParamsCmd,
			showParamsCmd,
			listParamsCmd,
		},
	},
}

type paramsVersionsResponse struct {
	Versions []uint32 `json:"versions"`
}

var importParamsCmd = cli.Command{
	Name:      "import",
	ShortName: "i",
	Usage:     "Import the staking params of a JSON file into the database.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     fileFlag,
			Usage:    "Path to a JSON file in the Babylon params shape",
			Required: true,
		},
	},
	Action: importParams,
}

func importParams(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	all, err := params.LoadFile(ctx.String(fileFlag))
	if err != nil {
		return err
	}

	return storeParams(cfg, logger, all)
}

var fetchParamsCmd = cli.Command{
	Name:      "fetch",
	ShortName: "f",
	Usage:     "Fetch the staking params from the configured Babylon node and store them.",
	Action:    fetchParams,
}

func fetchParams(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	fetcher := params.NewFetcher(cfg.BabylonConfig.FetcherConfig(), logger)
	all, err := fetcher.FetchParams(context.Background())
	if err != nil {
		return err
	}

	return storeParams(cfg, logger, all)
}

// storeParams validates the whole set before writing any version.
func storeParams(cfg *config.Config, logger *zap.Logger, all []*types.VersionedStakingParams) error {
	if _, err := params.NewRegistry(all); err != nil {
		return err
	}

	s, err := openParamsStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	resp := &paramsVersionsResponse{}
	for _, p := range all {
		if err := s.PutParams(p); err != nil {
			return fmt.Errorf("failed to store params version %d: %w", p.Version, err)
		}
		resp.Versions = append(resp.Versions, p.Version)
	}
	logger.Info("stored staking params", zap.Int("versions", len(resp.Versions)))

	printRespJSON(resp)
	return nil
}

var showParamsCmd = cli.Command{
	Name:      "show",
	ShortName: "s",
	Usage:     "Show the params of a version, or the params active at a BTC height.",
	Flags: []cli.Flag{
		cli.Uint64Flag{
			Name:  versionFlag,
			Usage: "The params version",
		},
		cli.Uint64Flag{
			Name:  heightFlag,
			Usage: "The BTC height, takes precedence over the version",
		},
	},
	Action: showParams,
}

func showParams(ctx *cli.Context) error {
	cfg, _, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	var p *types.VersionedStakingParams
	switch {
	case ctx.IsSet(heightFlag):
		p, err = registry.ByHeight(ctx.Uint64(heightFlag))
	case ctx.IsSet(versionFlag):
		p, err = registry.ByVersion(uint32(ctx.Uint64(versionFlag)))
	default:
		p = registry.Latest()
	}
	if err != nil {
		return err
	}

	printRespJSON(params.FromParams(p))
	return nil
}

var listParamsCmd = cli.Command{
	Name:      "list",
	ShortName: "ls",
	Usage:     "List all stored params versions.",
	Action:    listParams,
}

func listParams(ctx *cli.Context) error {
	cfg, _, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	all := registry.All()
	res := make([]*params.ParamsJSON, 0, len(all))
	for _, p := range all {
		res = append(res, params.FromParams(p))
	}

	printRespJSON(res)
	return nil
}
