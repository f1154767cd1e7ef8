// Package manager drives the lifecycle of a BTC delegation: registration on
// Babylon, staking, unbonding and withdrawal. Every signature is requested
// from the injected providers, the manager never holds keys.
package manager

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/metrics"
	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/pop"
	"github.com/babylonchain/btc-staking-manager/types"
)

// Manager is read-only after construction and safe for concurrent use.
type Manager struct {
	net      *chaincfg.Params
	registry *params.Registry
	btc      BtcProvider
	bbn      BabylonProvider
	logger   *zap.Logger

	newStaking StakingBuilder
	metrics    *metrics.StakingMetrics
	popUpgrade *pop.UpgradeConfig
	events     EventListener
}

func NewManager(
	net *chaincfg.Params,
	stakingParams []*types.VersionedStakingParams,
	btc BtcProvider,
	bbn BabylonProvider,
	logger *zap.Logger,
	opts ...Option,
) (*Manager, error) {
	if len(stakingParams) == 0 {
		return nil, types.ErrNoParameters
	}
	registry, err := params.NewRegistry(stakingParams)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		net:        net,
		registry:   registry,
		btc:        btc,
		bbn:        bbn,
		logger:     logger,
		newStaking: DefaultStakingBuilder,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Manager) Registry() *params.Registry {
	return m.registry
}

func (m *Manager) paramsByHeight(height uint64) (*types.VersionedStakingParams, error) {
	p, err := m.registry.ByHeight(height)
	if err != nil {
		return nil, err
	}
	if m.metrics != nil {
		m.metrics.RecordParamsVersion(p.Version)
	}
	return p, nil
}

func (m *Manager) paramsByVersion(version uint32) (*types.VersionedStakingParams, error) {
	p, err := m.registry.ByVersion(version)
	if err != nil {
		return nil, err
	}
	if m.metrics != nil {
		m.metrics.RecordParamsVersion(p.Version)
	}
	return p, nil
}

// fail logs the failed operation and returns err untouched.
func (m *Manager) fail(op string, err error) error {
	m.logger.Warn("staking manager operation failed", zap.String("op", op), zap.Error(err))
	return err
}

func (m *Manager) recordSign(step types.SigningStep, start time.Time, err error) {
	if m.metrics != nil {
		m.metrics.RecordSignRequest(step.String(), start, err)
	}
}

// signPsbt asks the BTC provider to sign the packet and returns the
// finalized transaction.
func (m *Manager) signPsbt(ctx context.Context, step types.SigningStep, packet *psbt.Packet) (*wire.MsgTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := packet.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize psbt: %w", err)
	}

	m.logger.Debug("requesting psbt signature",
		zap.String("step", step.String()),
		zap.String("txid", packet.UnsignedTx.TxHash().String()),
	)

	start := time.Now()
	signedHex, err := m.btc.SignPsbt(ctx, step, hex.EncodeToString(buf.Bytes()))
	m.recordSign(step, start, err)
	if err != nil {
		return nil, err
	}

	return extractSignedTx(signedHex)
}

func extractSignedTx(psbtHex string) (*wire.MsgTx, error) {
	bz, err := hex.DecodeString(psbtHex)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "signed psbt is not hex: %v", err)
	}
	packet, err := psbt.NewFromRawBytes(bytes.NewReader(bz), false)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "invalid signed psbt: %v", err)
	}
	if err := psbt.MaybeFinalizeAll(packet); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "cannot finalize signed psbt: %v", err)
	}
	tx, err := psbt.Extract(packet)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "cannot extract signed psbt: %v", err)
	}
	return tx, nil
}

func (m *Manager) signMessage(ctx context.Context, step types.SigningStep, message string, sigType types.MessageSigType) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.logger.Debug("requesting message signature",
		zap.String("step", step.String()),
		zap.String("sig_type", string(sigType)),
	)

	start := time.Now()
	sig, err := m.btc.SignMessage(ctx, step, message, sigType)
	m.recordSign(step, start, err)
	return sig, err
}

func (m *Manager) signBabylonTx(ctx context.Context, msg *types.EncodeObject) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	step := types.SigningStepCreateBtcDelegationMsg
	m.logger.Debug("requesting babylon signature", zap.String("step", step.String()))

	start := time.Now()
	signed, err := m.bbn.SignTransaction(ctx, step, msg)
	m.recordSign(step, start, err)
	return signed, err
}

func serializeTx(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
