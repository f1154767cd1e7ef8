package params

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/types"
)

const paramsVersionsPath = "/babylon/btcstaking/v1/params_versions"

// FetcherConfig controls how params are fetched from a Babylon REST endpoint.
type FetcherConfig struct {
	LCDAddress string
	Timeout    time.Duration
	MaxRetries uint
	RetryDelay time.Duration
}

// Fetcher queries the versioned staking params of a Babylon node.
type Fetcher struct {
	cfg    FetcherConfig
	client *http.Client
	logger *zap.Logger
}

func NewFetcher(cfg FetcherConfig, logger *zap.Logger) *Fetcher {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 1
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// FetchParams returns all staking params versions known to the node.
func (f *Fetcher) FetchParams(ctx context.Context) ([]*types.VersionedStakingParams, error) {
	url := strings.TrimRight(f.cfg.LCDAddress, "/") + paramsVersionsPath

	var body []byte
	if err := retry.Do(func() error {
		bz, err := f.get(ctx, url)
		if err != nil {
			return err
		}
		body = bz
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(f.cfg.MaxRetries),
		retry.Delay(f.cfg.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			f.logger.Debug(
				"failed to query babylon for staking params",
				zap.String("url", url),
				zap.Uint("attempt", n+1),
				zap.Uint("max_attempts", f.cfg.MaxRetries),
				zap.Error(err),
			)
		}),
	); err != nil {
		return nil, fmt.Errorf("failed to fetch staking params from %s: %w", url, err)
	}

	return ParseJSON(body)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bz, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return bz, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bz))
	default:
		// client errors will not go away by retrying
		return nil, retry.Unrecoverable(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bz)))
	}
}
