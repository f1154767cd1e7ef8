package staking

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/types"
)

// Staking builds every transaction of a single delegation: the staking
// transaction, its unbonding and slashing transactions and the withdrawals.
// It is immutable and safe for concurrent use.
type Staking struct {
	net        *chaincfg.Params
	stakerInfo types.StakerInfo
	params     *types.VersionedStakingParams

	stakerPk      *btcec.PublicKey
	stakingTime   uint16
	unbondingTime uint16

	stakerPkScript    []byte
	covenantPksSorted [][]byte

	scripts              *StakingScripts
	stakingOutput        *TaprootOutput
	unbondingOutput      *TaprootOutput
	slashingChangeOutput *TaprootOutput
}

// NewStaking validates the delegation and precomputes its scripts.
func NewStaking(
	net *chaincfg.Params,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	params *types.VersionedStakingParams,
) (*Staking, error) {
	if stakerInfo == nil || inputs == nil || params == nil {
		return nil, types.ErrInvalidStakingInput.Wrap("staker info, staking inputs and params are required")
	}

	stakerPkScript, err := AddressPkScript(stakerInfo.Address, net)
	if err != nil {
		return nil, types.ErrInvalidStakingInput.Wrapf("invalid staker bitcoin address: %v", err)
	}

	stakerPkBytes, err := hex.DecodeString(stakerInfo.PublicKeyNoCoordHex)
	if err != nil || !IsValidNoCoordPublicKey(stakerPkBytes) {
		return nil, types.ErrInvalidStakingInput.Wrap("invalid staker public key")
	}
	stakerPk, err := types.ParseNoCoordPk(stakerInfo.PublicKeyNoCoordHex)
	if err != nil {
		return nil, types.ErrInvalidStakingInput.Wrapf("invalid staker public key: %v", err)
	}

	if len(inputs.FinalityProviderPksNoCoordHex) == 0 {
		return nil, types.ErrInvalidStakingInput.Wrap("at least one finality provider is required")
	}
	fpPks := make([]*btcec.PublicKey, 0, len(inputs.FinalityProviderPksNoCoordHex))
	for _, fpHex := range inputs.FinalityProviderPksNoCoordHex {
		fpPk, err := types.ParseNoCoordPk(fpHex)
		if err != nil {
			return nil, types.ErrInvalidStakingInput.Wrapf("invalid finality provider public key %s: %v", fpHex, err)
		}
		if fpPk.IsEqual(stakerPk) {
			return nil, types.ErrInvalidStakingInput.Wrap("finality provider key cannot be the staker key")
		}
		fpPks = append(fpPks, fpPk)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if inputs.StakingTimelock < params.MinStakingTimeBlocks || inputs.StakingTimelock > params.MaxStakingTimeBlocks {
		return nil, types.ErrInvalidStakingInput.Wrapf("staking timelock %d out of range [%d, %d]",
			inputs.StakingTimelock, params.MinStakingTimeBlocks, params.MaxStakingTimeBlocks)
	}
	stakingTime, err := ToUint16Timelock(inputs.StakingTimelock)
	if err != nil {
		return nil, types.ErrInvalidStakingInput.Wrap(err.Error())
	}
	unbondingTime, err := ToUint16Timelock(params.UnbondingTime)
	if err != nil {
		return nil, types.ErrInvalidParams.Wrap(err.Error())
	}

	covenantPks, err := params.CovenantPks()
	if err != nil {
		return nil, types.ErrInvalidParams.Wrap(err.Error())
	}
	covenantPksSorted, err := SortKeys(covenantPks)
	if err != nil {
		return nil, types.ErrInvalidParams.Wrapf("covenant committee: %v", err)
	}

	scripts, err := BuildStakingScripts(stakerPk, fpPks, covenantPks, params.CovenantQuorum, stakingTime, unbondingTime)
	if err != nil {
		return nil, types.ErrInvalidStakingInput.Wrap(err.Error())
	}

	stakingOutput, err := scripts.StakingOutput()
	if err != nil {
		return nil, err
	}
	unbondingOutput, err := scripts.UnbondingOutput()
	if err != nil {
		return nil, err
	}
	slashingChangeOutput, err := scripts.SlashingChangeOutput()
	if err != nil {
		return nil, err
	}

	return &Staking{
		net:                  net,
		stakerInfo:           *stakerInfo,
		params:               params,
		stakerPk:             stakerPk,
		stakingTime:          stakingTime,
		unbondingTime:        unbondingTime,
		stakerPkScript:       stakerPkScript,
		covenantPksSorted:    covenantPksSorted,
		scripts:              scripts,
		stakingOutput:        stakingOutput,
		unbondingOutput:      unbondingOutput,
		slashingChangeOutput: slashingChangeOutput,
	}, nil
}

func (s *Staking) Scripts() *StakingScripts {
	return s.scripts
}

func (s *Staking) StakingOutputPkScript() []byte {
	return s.stakingOutput.PkScript
}

func (s *Staking) UnbondingOutputPkScript() []byte {
	return s.unbondingOutput.PkScript
}

func (s *Staking) SlashingChangePkScript() []byte {
	return s.slashingChangeOutput.PkScript
}

// CovenantKeysInScriptOrder returns the x-only covenant keys in the order
// they appear in the unbonding and slashing scripts.
func (s *Staking) CovenantKeysInScriptOrder() [][]byte {
	keys := make([][]byte, len(s.covenantPksSorted))
	for i, k := range s.covenantPksSorted {
		keys[i] = append([]byte(nil), k...)
	}
	return keys
}

func (s *Staking) stakingOutputIndex(stakingTx *wire.MsgTx) (uint32, error) {
	idx, ok := FindOutputIndex(stakingTx, s.stakingOutput.PkScript)
	if !ok {
		return 0, types.ErrStakingOutputNotFound.Wrapf("staking tx %s", stakingTx.TxHash())
	}
	return idx, nil
}

// CreateStakingTransaction builds the unsigned staking transaction, selecting
// UTXOs to cover amount and the fee at feeRate sat/vbyte.
func (s *Staking) CreateStakingTransaction(amount int64, utxos []*types.UTXO, feeRate int64) (*types.TransactionResult, error) {
	if amount < s.params.MinStakingAmountSat || amount > s.params.MaxStakingAmountSat {
		return nil, types.ErrInvalidStakingInput.Wrapf("staking amount %d out of range [%d, %d]",
			amount, s.params.MinStakingAmountSat, s.params.MaxStakingAmountSat)
	}
	if len(utxos) == 0 {
		return nil, types.ErrNoInputs
	}
	if feeRate <= 0 {
		return nil, types.ErrInvalidFeeRate.Wrapf("fee rate %d must be positive", feeRate)
	}

	return BuildStakingTransaction(
		wire.NewTxOut(amount, s.stakingOutput.PkScript),
		utxos,
		s.stakerPkScript,
		feeRate,
		0,
	)
}

// ToStakingPsbt wraps the staking transaction into a PSBT ready for the
// staker's signer.
func (s *Staking) ToStakingPsbt(stakingTx *wire.MsgTx, utxos []*types.UTXO) (*psbt.Packet, error) {
	if _, err := s.stakingOutputIndex(stakingTx); err != nil {
		return nil, err
	}

	var tapInternalKey []byte
	if IsTaproot(s.stakerInfo.Address, s.net) {
		tapInternalKey, _ = hex.DecodeString(s.stakerInfo.PublicKeyNoCoordHex)
	}

	return BuildStakingPsbt(stakingTx, utxos, tapInternalKey)
}

func (s *Staking) CreateUnbondingTransaction(stakingTx *wire.MsgTx) (*types.TransactionResult, error) {
	idx, err := s.stakingOutputIndex(stakingTx)
	if err != nil {
		return nil, err
	}

	return BuildUnbondingTransaction(stakingTx, idx, s.unbondingOutput.PkScript, s.params.UnbondingFeeSat)
}

func (s *Staking) ToUnbondingPsbt(unbondingTx, stakingTx *wire.MsgTx) (*psbt.Packet, error) {
	idx, err := s.stakingOutputIndex(stakingTx)
	if err != nil {
		return nil, err
	}

	unbondingPath, err := s.stakingOutput.SpendInfo(s.scripts.UnbondingScript)
	if err != nil {
		return nil, err
	}

	return BuildUnbondingPsbt(unbondingTx, stakingTx, idx, unbondingPath)
}

func (s *Staking) slashingTxParams() (*SlashingTxParams, error) {
	pkScript, err := s.params.Slashing.SlashingPkScript()
	if err != nil {
		return nil, types.ErrInvalidParams.Wrap(err.Error())
	}
	return &SlashingTxParams{
		SlashingPkScript: pkScript,
		SlashingRate:     s.params.Slashing.SlashingRate,
		MinFee:           s.params.Slashing.MinSlashingTxFeeSat,
	}, nil
}

// CreateStakingOutputSlashingPsbt builds the PSBT slashing the staking output.
func (s *Staking) CreateStakingOutputSlashingPsbt(stakingTx *wire.MsgTx) (*psbt.Packet, error) {
	idx, err := s.stakingOutputIndex(stakingTx)
	if err != nil {
		return nil, err
	}

	return s.slashingPsbt(stakingTx, idx, s.stakingOutput)
}

// CreateUnbondingOutputSlashingPsbt builds the PSBT slashing the unbonding
// output.
func (s *Staking) CreateUnbondingOutputSlashingPsbt(unbondingTx *wire.MsgTx) (*psbt.Packet, error) {
	idx, ok := FindOutputIndex(unbondingTx, s.unbondingOutput.PkScript)
	if !ok {
		return nil, types.ErrInvalidTransaction.Wrapf("unbonding output not found in tx %s", unbondingTx.TxHash())
	}

	return s.slashingPsbt(unbondingTx, idx, s.unbondingOutput)
}

func (s *Staking) slashingPsbt(fundingTx *wire.MsgTx, idx uint32, output *TaprootOutput) (*psbt.Packet, error) {
	slashingPath, err := output.SpendInfo(s.scripts.SlashingScript)
	if err != nil {
		return nil, err
	}

	params, err := s.slashingTxParams()
	if err != nil {
		return nil, err
	}

	return BuildSlashingPsbt(fundingTx, idx, slashingPath, params, s.slashingChangeOutput.PkScript)
}

// CreateWithdrawStakingExpiredPsbt spends the staking output once the staking
// timelock has expired.
func (s *Staking) CreateWithdrawStakingExpiredPsbt(stakingTx *wire.MsgTx, feeRate int64) (*PsbtResult, error) {
	idx, err := s.stakingOutputIndex(stakingTx)
	if err != nil {
		return nil, err
	}

	timelockPath, err := s.stakingOutput.SpendInfo(s.scripts.TimelockScript)
	if err != nil {
		return nil, err
	}

	return BuildWithdrawalPsbt(stakingTx, idx, timelockPath, s.stakingTime, s.stakerPkScript, feeRate)
}

// CreateWithdrawEarlyUnbondedPsbt spends the unbonding output once the
// unbonding timelock has expired.
func (s *Staking) CreateWithdrawEarlyUnbondedPsbt(unbondingTx *wire.MsgTx, feeRate int64) (*PsbtResult, error) {
	idx, ok := FindOutputIndex(unbondingTx, s.unbondingOutput.PkScript)
	if !ok {
		return nil, types.ErrInvalidTransaction.Wrapf("unbonding output not found in tx %s", unbondingTx.TxHash())
	}

	timelockPath, err := s.unbondingOutput.SpendInfo(s.scripts.UnbondingTimelockScript)
	if err != nil {
		return nil, err
	}

	return BuildWithdrawalPsbt(unbondingTx, idx, timelockPath, s.unbondingTime, s.stakerPkScript, feeRate)
}

// CreateWithdrawSlashingPsbt spends the change output of a slashing
// transaction once the unbonding timelock has expired.
func (s *Staking) CreateWithdrawSlashingPsbt(slashingTx *wire.MsgTx, feeRate int64) (*PsbtResult, error) {
	idx, ok := FindOutputIndex(slashingTx, s.slashingChangeOutput.PkScript)
	if !ok {
		return nil, types.ErrInvalidTransaction.Wrapf("slashing change output not found in tx %s", slashingTx.TxHash())
	}

	timelockPath, err := s.slashingChangeOutput.SpendInfo(s.scripts.UnbondingTimelockScript)
	if err != nil {
		return nil, err
	}

	return BuildWithdrawalPsbt(slashingTx, idx, timelockPath, s.unbondingTime, s.stakerPkScript, feeRate)
}

