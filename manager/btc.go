package manager

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/btcsig"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/types"
)

// CreateSignedBtcStakingTransaction signs the staking transaction built at
// registration with the params version Babylon recorded for the delegation.
func (m *Manager) CreateSignedBtcStakingTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	unsignedStakingTx *wire.MsgTx,
	utxos []*types.UTXO,
	paramsVersion uint32,
) (*wire.MsgTx, error) {
	const op = "sign-staking"

	p, err := m.paramsByVersion(paramsVersion)
	if err != nil {
		return nil, m.fail(op, err)
	}
	if len(utxos) == 0 {
		return nil, m.fail(op, types.ErrNoInputs)
	}
	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return nil, m.fail(op, err)
	}

	packet, err := s.ToStakingPsbt(unsignedStakingTx, utxos)
	if err != nil {
		return nil, m.fail(op, err)
	}
	m.emit(types.EventChannelStake, stakingEvent(types.EventTypeStaking, stakerInfo, inputs, p))
	signed, err := m.signPsbt(ctx, types.SigningStepStaking, packet)
	if err != nil {
		return nil, m.fail(op, err)
	}

	m.logger.Debug("signed staking transaction",
		zap.Uint32("version", p.Version),
		zap.String("txid", signed.TxHash().String()),
	)
	return signed, nil
}

// CreatePartialSignedBtcUnbondingTransaction returns the unbonding transaction
// carrying only the staker signature. The covenant signatures are added by
// CreateSignedBtcUnbondingTransaction.
func (m *Manager) CreatePartialSignedBtcUnbondingTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	stakingTx *wire.MsgTx,
) (*types.TransactionResult, error) {
	res, _, err := m.partialSignedUnbonding(ctx, stakerInfo, inputs, paramsVersion, stakingTx)
	if err != nil {
		return nil, m.fail("sign-unbonding", err)
	}
	return res, nil
}

func (m *Manager) partialSignedUnbonding(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	stakingTx *wire.MsgTx,
) (*types.TransactionResult, StakingFactory, error) {
	p, err := m.paramsByVersion(paramsVersion)
	if err != nil {
		return nil, nil, err
	}
	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return nil, nil, err
	}

	unbondingRes, err := s.CreateUnbondingTransaction(stakingTx)
	if err != nil {
		return nil, nil, err
	}
	packet, err := s.ToUnbondingPsbt(unbondingRes.Transaction, stakingTx)
	if err != nil {
		return nil, nil, err
	}
	ev := stakingEvent(types.EventTypeUnbonding, stakerInfo, inputs, p)
	ev.UnbondingFeeSat = p.UnbondingFeeSat
	m.emit(types.EventChannelUnbond, ev)
	signed, err := m.signPsbt(ctx, types.SigningStepUnbonding, packet)
	if err != nil {
		return nil, nil, err
	}

	m.logger.Debug("signed unbonding transaction",
		zap.Uint32("version", p.Version),
		zap.String("txid", signed.TxHash().String()),
	)

	return &types.TransactionResult{
		Transaction: signed,
		Fee:         unbondingRes.Fee,
	}, s, nil
}

// CreateSignedBtcUnbondingTransaction signs the unbonding transaction and
// completes its witness with the covenant signatures. The result must match
// the unbonding transaction Babylon knows about.
func (m *Manager) CreateSignedBtcUnbondingTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	stakingTx *wire.MsgTx,
	unsignedUnbondingTx *wire.MsgTx,
	covenantSigs []*types.CovenantSignature,
) (*types.TransactionResult, error) {
	const op = "sign-unbonding-with-covenants"

	res, s, err := m.partialSignedUnbonding(ctx, stakerInfo, inputs, paramsVersion, stakingTx)
	if err != nil {
		return nil, m.fail(op, err)
	}

	signedHash := res.Transaction.TxHash()
	expectedHash := unsignedUnbondingTx.TxHash()
	if signedHash != expectedHash {
		return nil, m.fail(op, errorsmod.Wrapf(types.ErrUnbondingTxMismatch,
			"computed %s, expected %s", signedHash, expectedHash))
	}

	p, err := m.registry.ByVersion(paramsVersion)
	if err != nil {
		return nil, m.fail(op, err)
	}
	witness, err := btcsig.CreateCovenantWitness(
		res.Transaction.TxIn[0].Witness,
		s.CovenantKeysInScriptOrder(),
		covenantSigs,
		p.CovenantQuorum,
	)
	if err != nil {
		return nil, m.fail(op, err)
	}
	res.Transaction.TxIn[0].Witness = witness

	return res, nil
}

// CreateSignedBtcWithdrawEarlyUnbondedTransaction spends the unbonding output
// once its timelock expired.
func (m *Manager) CreateSignedBtcWithdrawEarlyUnbondedTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	earlyUnbondingTx *wire.MsgTx,
	feeRate int64,
) (*types.TransactionResult, error) {
	return m.withdraw(ctx, types.SigningStepWithdrawEarlyUnbonded, stakerInfo, inputs, paramsVersion,
		func(s StakingFactory) (*staking.PsbtResult, error) {
			return s.CreateWithdrawEarlyUnbondedPsbt(earlyUnbondingTx, feeRate)
		})
}

// CreateSignedBtcWithdrawStakingExpiredTransaction spends the staking output
// once the staking timelock expired.
func (m *Manager) CreateSignedBtcWithdrawStakingExpiredTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	stakingTx *wire.MsgTx,
	feeRate int64,
) (*types.TransactionResult, error) {
	return m.withdraw(ctx, types.SigningStepWithdrawStakingExpired, stakerInfo, inputs, paramsVersion,
		func(s StakingFactory) (*staking.PsbtResult, error) {
			return s.CreateWithdrawStakingExpiredPsbt(stakingTx, feeRate)
		})
}

// CreateSignedBtcWithdrawSlashingTransaction spends the change output of a
// slashing transaction once its timelock expired.
func (m *Manager) CreateSignedBtcWithdrawSlashingTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	slashingTx *wire.MsgTx,
	feeRate int64,
) (*types.TransactionResult, error) {
	return m.withdraw(ctx, types.SigningStepWithdrawSlashing, stakerInfo, inputs, paramsVersion,
		func(s StakingFactory) (*staking.PsbtResult, error) {
			return s.CreateWithdrawSlashingPsbt(slashingTx, feeRate)
		})
}

func (m *Manager) withdraw(
	ctx context.Context,
	step types.SigningStep,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	paramsVersion uint32,
	build func(StakingFactory) (*staking.PsbtResult, error),
) (*types.TransactionResult, error) {
	op := step.String()

	p, err := m.paramsByVersion(paramsVersion)
	if err != nil {
		return nil, m.fail(op, err)
	}
	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return nil, m.fail(op, err)
	}

	res, err := build(s)
	if err != nil {
		return nil, m.fail(op, err)
	}
	m.emit(types.EventChannelWithdraw, withdrawEvent(step, stakerInfo, inputs, p))
	signed, err := m.signPsbt(ctx, step, res.Psbt)
	if err != nil {
		return nil, m.fail(op, err)
	}

	m.logger.Debug("signed withdrawal transaction",
		zap.String("step", op),
		zap.Uint32("version", p.Version),
		zap.String("txid", signed.TxHash().String()),
		zap.Int64("fee", res.Fee),
	)

	return &types.TransactionResult{
		Transaction: signed,
		Fee:         res.Fee,
	}, nil
}

// GetUnbondingTxStakerSignature returns the hex encoded staker signature of a
// staker-signed unbonding transaction.
func GetUnbondingTxStakerSignature(unbondingTx *wire.MsgTx) (string, error) {
	if len(unbondingTx.TxIn) == 0 || len(unbondingTx.TxIn[0].Witness) == 0 {
		return "", errorsmod.Wrap(types.ErrInvalidTransaction, "unbonding transaction carries no witness")
	}
	return hex.EncodeToString(unbondingTx.TxIn[0].Witness[0]), nil
}
