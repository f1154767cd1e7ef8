package staking

import (
	"bytes"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/types"
)

// PsbtResult is an unsigned PSBT together with the fee it pays.
type PsbtResult struct {
	Psbt *psbt.Packet
	Fee  int64
}

// FindOutputIndex returns the index of the first output of tx paying to
// pkScript.
func FindOutputIndex(tx *wire.MsgTx, pkScript []byte) (uint32, bool) {
	for i, out := range tx.TxOut {
		if bytes.Equal(out.PkScript, pkScript) {
			return uint32(i), true
		}
	}
	return 0, false
}

// BuildStakingTransaction builds an unsigned staking transaction spending the
// selected UTXOs into the staking output and, when above dust, a change
// output. lockHeight of 0 leaves the locktime unset.
func BuildStakingTransaction(
	stakingOutput *wire.TxOut,
	utxos []*types.UTXO,
	changePkScript []byte,
	feeRate int64,
	lockHeight uint32,
) (*types.TransactionResult, error) {
	amount := stakingOutput.Value
	if amount <= 0 {
		return nil, types.ErrInvalidStakingInput.Wrap("staking amount must be positive")
	}
	if feeRate <= 0 {
		return nil, types.ErrInvalidFeeRate.Wrapf("fee rate %d must be positive", feeRate)
	}
	if lockHeight >= LockHeightTimeCutoff {
		return nil, types.ErrInvalidStakingInput.Wrapf("invalid lock height %d", lockHeight)
	}

	selection, err := GetStakingTxInputUTXOsAndFees(utxos, amount, feeRate, []*wire.TxOut{stakingOutput})
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(TxVersion)
	var inputsSum int64
	for _, u := range selection.SelectedUTXOs {
		op, err := u.OutPoint()
		if err != nil {
			return nil, types.ErrInvalidStakingInput.Wrap(err.Error())
		}
		in := wire.NewTxIn(op, nil, nil)
		in.Sequence = NonRbfSequence
		tx.AddTxIn(in)
		inputsSum += u.Value
	}

	tx.AddTxOut(wire.NewTxOut(amount, stakingOutput.PkScript))

	change := inputsSum - (amount + selection.Fee)
	if change > DustSat {
		tx.AddTxOut(wire.NewTxOut(change, changePkScript))
	}

	tx.LockTime = lockHeight

	return &types.TransactionResult{
		Transaction: tx,
		Fee:         selection.Fee,
	}, nil
}

// BuildUnbondingTransaction spends the staking output into a single
// unbonding output, paying unbondingFee.
func BuildUnbondingTransaction(
	stakingTx *wire.MsgTx,
	stakingOutputIdx uint32,
	unbondingPkScript []byte,
	unbondingFee int64,
) (*types.TransactionResult, error) {
	if unbondingFee <= 0 {
		return nil, types.ErrInvalidParams.Wrap("unbonding fee must be positive")
	}
	if int(stakingOutputIdx) >= len(stakingTx.TxOut) {
		return nil, types.ErrStakingOutputNotFound.Wrapf("output index %d out of range", stakingOutputIdx)
	}

	stakingTxHash := stakingTx.TxHash()
	in := wire.NewTxIn(wire.NewOutPoint(&stakingTxHash, stakingOutputIdx), nil, nil)
	in.Sequence = NonRbfSequence

	value := stakingTx.TxOut[stakingOutputIdx].Value - unbondingFee
	if value < DustSat {
		return nil, types.ErrInvalidTransaction.Wrapf(
			"unbonding output value %d is less than the dust limit", value)
	}

	tx := wire.NewMsgTx(TxVersion)
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(value, unbondingPkScript))
	tx.LockTime = 0

	return &types.TransactionResult{
		Transaction: tx,
		Fee:         unbondingFee,
	}, nil
}

// SlashingTxParams are the protocol parameters of a slashing transaction.
type SlashingTxParams struct {
	SlashingPkScript []byte
	SlashingRate     sdkmath.LegacyDec
	MinFee           int64
}

// BuildSlashingPsbt spends the output at outputIdx of fundingTx through the
// slashing path. Output 0 sends the slashed share to the slashing script and
// output 1 returns the rest, minus the fee, to changePkScript. A slashed share
// paid to an OP_RETURN script is exempt from the dust check.
func BuildSlashingPsbt(
	fundingTx *wire.MsgTx,
	outputIdx uint32,
	slashingPath *SpendInfo,
	params *SlashingTxParams,
	changePkScript []byte,
) (*psbt.Packet, error) {
	if params.SlashingRate.IsNil() || !params.SlashingRate.IsPositive() || params.SlashingRate.GTE(sdkmath.LegacyOneDec()) {
		return nil, types.ErrInvalidParams.Wrap("slashing rate must be in (0, 1)")
	}
	if params.MinFee <= 0 {
		return nil, types.ErrInvalidParams.Wrap("minimum slashing fee must be positive")
	}
	if int(outputIdx) >= len(fundingTx.TxOut) {
		return nil, types.ErrStakingOutputNotFound.Wrapf("output index %d out of range", outputIdx)
	}

	fundingOut := fundingTx.TxOut[outputIdx]
	slashingAmount := sdkmath.LegacyNewDec(fundingOut.Value).Mul(params.SlashingRate).TruncateInt64()
	if slashingAmount <= DustSat && txscript.GetScriptClass(params.SlashingPkScript) != txscript.NullDataTy {
		return nil, types.ErrInvalidTransaction.Wrapf("slashing amount %d is less than the dust limit", slashingAmount)
	}

	userFunds := fundingOut.Value - slashingAmount - params.MinFee
	if userFunds <= DustSat {
		return nil, types.ErrInvalidTransaction.Wrapf("user funds %d are less than the dust limit", userFunds)
	}

	fundingTxHash := fundingTx.TxHash()
	in := wire.NewTxIn(wire.NewOutPoint(&fundingTxHash, outputIdx), nil, nil)
	in.Sequence = NonRbfSequence

	tx := wire.NewMsgTx(TxVersion)
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(slashingAmount, params.SlashingPkScript))
	tx.AddTxOut(wire.NewTxOut(userFunds, changePkScript))
	tx.LockTime = 0

	return newScriptPathPsbt(tx, fundingOut, slashingPath)
}

// BuildWithdrawalPsbt spends a timelocked output through its timelock path
// into a single output paying withdrawalPkScript.
func BuildWithdrawalPsbt(
	fundingTx *wire.MsgTx,
	outputIdx uint32,
	timelockPath *SpendInfo,
	timelock uint16,
	withdrawalPkScript []byte,
	feeRate int64,
) (*PsbtResult, error) {
	if feeRate <= 0 {
		return nil, types.ErrInvalidFeeRate.Wrapf("withdrawal fee rate %d must be positive", feeRate)
	}
	if int(outputIdx) >= len(fundingTx.TxOut) {
		return nil, types.ErrStakingOutputNotFound.Wrapf("output index %d out of range", outputIdx)
	}

	fundingOut := fundingTx.TxOut[outputIdx]
	fee := GetWithdrawTxFee(feeRate)
	value := fundingOut.Value - fee
	if value < 0 {
		return nil, types.ErrInsufficientFunds.Wrap("not enough funds to cover the fee of the withdrawal transaction")
	}
	if value < DustSat {
		return nil, types.ErrInvalidTransaction.Wrapf("withdrawal output value %d is less than the dust limit", value)
	}

	fundingTxHash := fundingTx.TxHash()
	in := wire.NewTxIn(wire.NewOutPoint(&fundingTxHash, outputIdx), nil, nil)
	in.Sequence = uint32(timelock)

	tx := wire.NewMsgTx(TxVersion)
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(value, withdrawalPkScript))
	tx.LockTime = 0

	packet, err := newScriptPathPsbt(tx, fundingOut, timelockPath)
	if err != nil {
		return nil, err
	}

	return &PsbtResult{
		Psbt: packet,
		Fee:  fee,
	}, nil
}

// newScriptPathPsbt wraps a single input transaction spending a taproot
// output through the revealed leaf of spendInfo.
func newScriptPathPsbt(tx *wire.MsgTx, prevOut *wire.TxOut, spendInfo *SpendInfo) (*psbt.Packet, error) {
	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create psbt: %w", err)
	}

	controlBlock, err := spendInfo.GetControlBlockBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize control block: %w", err)
	}

	packet.Inputs[0].WitnessUtxo = wire.NewTxOut(prevOut.Value, prevOut.PkScript)
	packet.Inputs[0].TaprootInternalKey = UnspendableKeyPathInternalPubKeyXOnly()
	packet.Inputs[0].TaprootLeafScript = []*psbt.TaprootTapLeafScript{{
		ControlBlock: controlBlock,
		Script:       spendInfo.GetPkScriptPath(),
		LeafVersion:  spendInfo.RevealedLeaf.LeafVersion,
	}}

	return packet, nil
}
