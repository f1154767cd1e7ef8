package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/signal"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/metrics"
	"github.com/babylonchain/btc-staking-manager/params"
)

var serveMetricsCommand = cli.Command{
	Name:  "serve-metrics",
	Usage: "Expose the staking metrics until interrupted.",
	Description: "Serves the Prometheus metrics of the staking manager on the configured address " +
		"and periodically reports the params version active at the given height.",
	Flags: []cli.Flag{
		cli.Uint64Flag{
			Name:  heightFlag,
			Usage: "BTC height used to resolve the active params version",
		},
	},
	Action: serveMetrics,
}

func serveMetrics(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	addr, err := cfg.Metrics.Address()
	if err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	// Hook interceptor for os signals.
	shutdownInterceptor, err := signal.Intercept()
	if err != nil {
		return err
	}

	sm := metrics.NewStakingMetrics()
	server := metrics.Start(addr, logger)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Stop(stopCtx)
	}()

	height := ctx.Uint64(heightFlag)
	ticker := time.NewTicker(cfg.Metrics.UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			reportParamsVersion(registry, height, sm, logger)
		case err, ok := <-server.Err():
			if ok {
				return err
			}
			return nil
		case <-shutdownInterceptor.ShutdownChannel():
			logger.Info("Received shutdown signal")
			return nil
		}
	}
}

func reportParamsVersion(registry *params.Registry, height uint64, sm *metrics.StakingMetrics, logger *zap.Logger) {
	p := registry.Latest()
	if height != 0 {
		var err error
		if p, err = registry.ByHeight(height); err != nil {
			logger.Debug("no params active at height", zap.Uint64("height", height), zap.Error(err))
			return
		}
	}
	sm.RecordParamsVersion(p.Version)
}
