package manager

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/btcsig"
	"github.com/babylonchain/btc-staking-manager/merkle"
	"github.com/babylonchain/btc-staking-manager/pop"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/types"
)

const (
	delegationKindPreStake  = "pre-stake"
	delegationKindPostStake = "post-stake"
)

type PreStakeRegistrationResult struct {
	SignedBabylonTx []byte
	StakingTx       *wire.MsgTx
}

// PreStakeRegistrationBabylonTransaction builds an unsigned staking
// transaction and the signed Babylon transaction registering it before it is
// broadcast to Bitcoin.
func (m *Manager) PreStakeRegistrationBabylonTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	babylonBtcTipHeight uint64,
	utxos []*types.UTXO,
	feeRate int64,
	babylonAddress string,
) (*PreStakeRegistrationResult, error) {
	const op = "pre-stake-registration"

	if babylonBtcTipHeight == 0 {
		return nil, m.fail(op, types.ErrInvalidTipHeight)
	}
	if len(utxos) == 0 {
		return nil, m.fail(op, types.ErrNoInputs)
	}
	if !staking.IsValidBabylonAddress(babylonAddress) {
		return nil, m.fail(op, errorsmod.Wrapf(types.ErrInvalidBabylonAddress, "%q", babylonAddress))
	}

	p, err := m.paramsByHeight(babylonBtcTipHeight)
	if err != nil {
		return nil, m.fail(op, err)
	}
	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return nil, m.fail(op, err)
	}

	stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, utxos, feeRate)
	if err != nil {
		return nil, m.fail(op, err)
	}

	m.logger.Debug("created staking transaction",
		zap.Uint32("version", p.Version),
		zap.String("txid", stakingRes.Transaction.TxHash().String()),
		zap.Int64("fee", stakingRes.Fee),
	)

	msg, err := m.createBtcDelegationMsg(ctx, types.EventChannelCreate, s, stakerInfo, inputs, p, stakingRes.Transaction, babylonAddress, nil)
	if err != nil {
		return nil, m.fail(op, err)
	}

	m.emit(types.EventChannelCreate, &types.ManagerEvent{Type: types.EventTypeCreateBtcDelegationMsg})

	signed, err := m.signBabylonTx(ctx, msg)
	if err != nil {
		return nil, m.fail(op, err)
	}
	if m.metrics != nil {
		m.metrics.RecordDelegationMsg(delegationKindPreStake)
	}

	return &PreStakeRegistrationResult{
		SignedBabylonTx: signed,
		StakingTx:       stakingRes.Transaction,
	}, nil
}

// PostStakeRegistrationBabylonTransaction registers a staking transaction
// already confirmed on Bitcoin. The params are the ones active at the
// confirmation height.
func (m *Manager) PostStakeRegistrationBabylonTransaction(
	ctx context.Context,
	stakerInfo *types.StakerInfo,
	stakingTx *wire.MsgTx,
	stakingTxHeight uint64,
	inputs *types.StakingInputs,
	inclusionProof types.InclusionProof,
	babylonAddress string,
) ([]byte, error) {
	const op = "post-stake-registration"

	p, err := m.paramsByHeight(stakingTxHeight)
	if err != nil {
		return nil, m.fail(op, err)
	}
	if !staking.IsValidBabylonAddress(babylonAddress) {
		return nil, m.fail(op, errorsmod.Wrapf(types.ErrInvalidBabylonAddress, "%q", babylonAddress))
	}

	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return nil, m.fail(op, err)
	}
	idx, found := staking.FindOutputIndex(stakingTx, s.StakingOutputPkScript())
	if !found {
		return nil, m.fail(op, errorsmod.Wrapf(types.ErrStakingOutputNotFound,
			"staking tx %s under params version %d", stakingTx.TxHash(), p.Version))
	}
	// the message reports the staking and unbonding values from the inputs
	if value := stakingTx.TxOut[idx].Value; value != inputs.StakingAmountSat {
		return nil, m.fail(op, errorsmod.Wrapf(types.ErrStakingOutputNotFound,
			"staking output %s:%d holds %d sat, expected %d", stakingTx.TxHash(), idx, value, inputs.StakingAmountSat))
	}

	proof, err := merkle.BuildInclusionProof(inclusionProof)
	if err != nil {
		return nil, m.fail(op, err)
	}

	msg, err := m.createBtcDelegationMsg(ctx, types.EventChannelRegister, s, stakerInfo, inputs, p, stakingTx, babylonAddress, proof)
	if err != nil {
		return nil, m.fail(op, err)
	}

	m.emit(types.EventChannelRegister, &types.ManagerEvent{Type: types.EventTypeCreateBtcDelegationMsg})

	signed, err := m.signBabylonTx(ctx, msg)
	if err != nil {
		return nil, m.fail(op, err)
	}
	if m.metrics != nil {
		m.metrics.RecordDelegationMsg(delegationKindPostStake)
	}

	return signed, nil
}

// EstimateBtcStakingFee returns the fee of the staking transaction that
// PreStakeRegistrationBabylonTransaction would build. No signer is involved.
func (m *Manager) EstimateBtcStakingFee(
	stakerInfo *types.StakerInfo,
	babylonBtcTipHeight uint64,
	inputs *types.StakingInputs,
	utxos []*types.UTXO,
	feeRate int64,
) (int64, error) {
	const op = "estimate-staking-fee"

	if babylonBtcTipHeight == 0 {
		return 0, m.fail(op, types.ErrInvalidTipHeight)
	}
	p, err := m.paramsByHeight(babylonBtcTipHeight)
	if err != nil {
		return 0, m.fail(op, err)
	}
	s, err := m.newStaking(m.net, stakerInfo, inputs, p)
	if err != nil {
		return 0, m.fail(op, err)
	}
	res, err := s.CreateStakingTransaction(inputs.StakingAmountSat, utxos, feeRate)
	if err != nil {
		return 0, m.fail(op, err)
	}

	if m.metrics != nil {
		m.metrics.RecordEstimatedFee(res.Fee)
	}
	return res.Fee, nil
}

// CreateProofOfPossession asks the BTC signer to sign the Babylon address with
// the scheme matching the staker address type. The request is announced on
// the delegation:create channel.
func (m *Manager) CreateProofOfPossession(ctx context.Context, babylonAddress, stakerBtcAddress string) (*types.ProofOfPossessionBTC, error) {
	p, err := m.createProofOfPossession(ctx, types.EventChannelCreate, babylonAddress, stakerBtcAddress)
	if err != nil {
		return nil, m.fail("proof-of-possession", err)
	}
	return p, nil
}

func (m *Manager) createProofOfPossession(
	ctx context.Context,
	channel types.EventChannel,
	babylonAddress string,
	stakerBtcAddress string,
) (*types.ProofOfPossessionBTC, error) {
	signType, sigType := pop.SigTypeForAddress(stakerBtcAddress, m.net)

	message, err := m.popMessage(ctx, babylonAddress)
	if err != nil {
		return nil, err
	}

	m.emit(channel, &types.ManagerEvent{
		Type:          types.EventTypeProofOfPossession,
		Bech32Address: babylonAddress,
	})
	sig, err := m.signMessage(ctx, types.SigningStepProofOfPossession, message, signType)
	if err != nil {
		return nil, err
	}

	return pop.BuildProofOfPossession(sigType, stakerBtcAddress, sig)
}

// popMessage falls back to the legacy format when the upgrade is not
// configured or the Babylon provider cannot tell the chain id and height.
func (m *Manager) popMessage(ctx context.Context, babylonAddress string) (string, error) {
	if m.popUpgrade == nil {
		return babylonAddress, nil
	}
	chainInfo, ok := m.bbn.(ChainInfoProvider)
	if !ok {
		return babylonAddress, nil
	}

	chainID, err := chainInfo.GetChainID(ctx)
	if err != nil {
		return "", err
	}
	height, err := chainInfo.GetCurrentHeight(ctx)
	if err != nil {
		return "", err
	}

	return pop.BuildMessage(babylonAddress, &height, chainID, m.popUpgrade), nil
}

func (m *Manager) createBtcDelegationMsg(
	ctx context.Context,
	channel types.EventChannel,
	s StakingFactory,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
	stakingTx *wire.MsgTx,
	babylonAddress string,
	inclusionProof *types.InclusionProofMsg,
) (*types.EncodeObject, error) {
	if p.Slashing == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidParams, "slashing params are required for the delegation message")
	}

	unbondingRes, err := s.CreateUnbondingTransaction(stakingTx)
	if err != nil {
		return nil, err
	}
	slashingPsbt, err := s.CreateStakingOutputSlashingPsbt(stakingTx)
	if err != nil {
		return nil, err
	}
	unbondingSlashingPsbt, err := s.CreateUnbondingOutputSlashingPsbt(unbondingRes.Transaction)
	if err != nil {
		return nil, err
	}

	// the two slashing signatures are requested one after the other
	m.emit(channel, slashingEvent(types.EventTypeStakingSlashing, stakerInfo, inputs, p))
	signedSlashingTx, err := m.signPsbt(ctx, types.SigningStepStakingSlashing, slashingPsbt)
	if err != nil {
		return nil, err
	}
	slashingSig := btcsig.ExtractFirstSchnorrSignature(signedSlashingTx)
	if slashingSig == nil {
		return nil, types.ErrMissingSlashingSignature
	}

	m.emit(channel, slashingEvent(types.EventTypeUnbondingSlashing, stakerInfo, inputs, p))
	signedUnbondingSlashingTx, err := m.signPsbt(ctx, types.SigningStepUnbondingSlashing, unbondingSlashingPsbt)
	if err != nil {
		return nil, err
	}
	unbondingSlashingSig := btcsig.ExtractFirstSchnorrSignature(signedUnbondingSlashingTx)
	if unbondingSlashingSig == nil {
		return nil, types.ErrMissingUnbondingSlashingSignature
	}

	proofOfPossession, err := m.createProofOfPossession(ctx, channel, babylonAddress, stakerInfo.Address)
	if err != nil {
		return nil, err
	}

	btcPk, err := hex.DecodeString(stakerInfo.PublicKeyNoCoordHex)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidStakingInput, "staker public key: %v", err)
	}
	fpPks := make([][]byte, 0, len(inputs.FinalityProviderPksNoCoordHex))
	for _, fpHex := range inputs.FinalityProviderPksNoCoordHex {
		fpPk, err := hex.DecodeString(fpHex)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidStakingInput, "finality provider public key %s: %v", fpHex, err)
		}
		fpPks = append(fpPks, fpPk)
	}

	stakingTxBytes, err := serializeTx(stakingTx)
	if err != nil {
		return nil, err
	}
	unbondingTxBytes, err := serializeTx(unbondingRes.Transaction)
	if err != nil {
		return nil, err
	}
	slashingTxBytes, err := serializeTx(btcsig.ClearTxSignatures(signedSlashingTx))
	if err != nil {
		return nil, err
	}
	unbondingSlashingTxBytes, err := serializeTx(btcsig.ClearTxSignatures(signedUnbondingSlashingTx))
	if err != nil {
		return nil, err
	}

	msg := &types.MsgCreateBTCDelegation{
		StakerAddr:                    babylonAddress,
		Pop:                           proofOfPossession,
		BtcPk:                         btcPk,
		FpBtcPkList:                   fpPks,
		StakingTime:                   inputs.StakingTimelock,
		StakingValue:                  inputs.StakingAmountSat,
		StakingTx:                     stakingTxBytes,
		StakingTxInclusionProof:       inclusionProof,
		SlashingTx:                    slashingTxBytes,
		DelegatorSlashingSig:          slashingSig,
		UnbondingTime:                 p.UnbondingTime,
		UnbondingTx:                   unbondingTxBytes,
		UnbondingValue:                inputs.StakingAmountSat - p.UnbondingFeeSat,
		UnbondingSlashingTx:           unbondingSlashingTxBytes,
		DelegatorUnbondingSlashingSig: unbondingSlashingSig,
	}

	m.logger.Debug("assembled delegation message",
		zap.Uint32("version", p.Version),
		zap.String("txid", stakingTx.TxHash().String()),
		zap.Bool("with_inclusion_proof", inclusionProof != nil),
	)

	return types.NewDelegationEncodeObject(msg), nil
}
