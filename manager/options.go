package manager

import (
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/metrics"
	"github.com/babylonchain/btc-staking-manager/pop"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/types"
)

// StakingFactory builds the transactions of a single delegation.
type StakingFactory interface {
	StakingOutputPkScript() []byte
	CovenantKeysInScriptOrder() [][]byte

	CreateStakingTransaction(amount int64, utxos []*types.UTXO, feeRate int64) (*types.TransactionResult, error)
	ToStakingPsbt(stakingTx *wire.MsgTx, utxos []*types.UTXO) (*psbt.Packet, error)
	CreateUnbondingTransaction(stakingTx *wire.MsgTx) (*types.TransactionResult, error)
	ToUnbondingPsbt(unbondingTx, stakingTx *wire.MsgTx) (*psbt.Packet, error)
	CreateStakingOutputSlashingPsbt(stakingTx *wire.MsgTx) (*psbt.Packet, error)
	CreateUnbondingOutputSlashingPsbt(unbondingTx *wire.MsgTx) (*psbt.Packet, error)
	CreateWithdrawStakingExpiredPsbt(stakingTx *wire.MsgTx, feeRate int64) (*staking.PsbtResult, error)
	CreateWithdrawEarlyUnbondedPsbt(unbondingTx *wire.MsgTx, feeRate int64) (*staking.PsbtResult, error)
	CreateWithdrawSlashingPsbt(slashingTx *wire.MsgTx, feeRate int64) (*staking.PsbtResult, error)
}

// StakingBuilder creates the factory of a delegation under the given params.
type StakingBuilder func(
	net *chaincfg.Params,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
) (StakingFactory, error)

func DefaultStakingBuilder(
	net *chaincfg.Params,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
) (StakingFactory, error) {
	s, err := staking.NewStaking(net, stakerInfo, inputs, p)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type Option func(*Manager)

func WithStakingBuilder(builder StakingBuilder) Option {
	return func(m *Manager) {
		m.newStaking = builder
	}
}

func WithMetrics(sm *metrics.StakingMetrics) Option {
	return func(m *Manager) {
		m.metrics = sm
	}
}

// WithPopUpgrade enables the context-prefixed proof of possession message
// once Babylon reaches the upgrade height.
func WithPopUpgrade(upgrade pop.UpgradeConfig) Option {
	return func(m *Manager) {
		m.popUpgrade = &upgrade
	}
}

func WithEventListener(l EventListener) Option {
	return func(m *Manager) {
		m.events = l
	}
}
