package staking

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/types"
)

// BuildStakingPsbt wraps the unsigned staking transaction into a PSBT,
// attaching to each input the data a signer needs for its script type.
// tapInternalKey is set on taproot inputs when not nil.
func BuildStakingPsbt(stakingTx *wire.MsgTx, utxos []*types.UTXO, tapInternalKey []byte) (*psbt.Packet, error) {
	packet, err := psbt.NewFromUnsignedTx(unsignedCopy(stakingTx))
	if err != nil {
		return nil, fmt.Errorf("failed to create staking psbt: %w", err)
	}

	for i, txIn := range stakingTx.TxIn {
		utxo, err := findUTXO(utxos, &txIn.PreviousOutPoint)
		if err != nil {
			return nil, err
		}
		if err := fillInput(&packet.Inputs[i], utxo, tapInternalKey); err != nil {
			return nil, err
		}
	}

	return packet, nil
}

func findUTXO(utxos []*types.UTXO, op *wire.OutPoint) (*types.UTXO, error) {
	for _, u := range utxos {
		uop, err := u.OutPoint()
		if err != nil {
			return nil, types.ErrInvalidStakingInput.Wrap(err.Error())
		}
		if *uop == *op {
			return u, nil
		}
	}
	return nil, types.ErrInvalidStakingInput.Wrapf("input UTXO not found for %s", op.String())
}

func fillInput(in *psbt.PInput, utxo *types.UTXO, tapInternalKey []byte) error {
	pkScript, err := utxo.PkScript()
	if err != nil {
		return types.ErrInvalidStakingInput.Wrapf("invalid script of utxo %s:%d: %v", utxo.Txid, utxo.Vout, err)
	}
	witnessUtxo := wire.NewTxOut(utxo.Value, pkScript)

	switch txscript.GetScriptClass(pkScript) {
	case txscript.WitnessV1TaprootTy:
		in.WitnessUtxo = witnessUtxo
		if tapInternalKey != nil {
			in.TaprootInternalKey = tapInternalKey
		}
	case txscript.WitnessV0PubKeyHashTy:
		in.WitnessUtxo = witnessUtxo
	case txscript.WitnessV0ScriptHashTy:
		witnessScript, err := decodeRequiredHex(utxo.WitnessScript, "witness script", utxo)
		if err != nil {
			return err
		}
		in.WitnessUtxo = witnessUtxo
		in.WitnessScript = witnessScript
	case txscript.PubKeyHashTy:
		prevTx, err := decodePrevTx(utxo)
		if err != nil {
			return err
		}
		in.NonWitnessUtxo = prevTx
	case txscript.ScriptHashTy:
		prevTx, err := decodePrevTx(utxo)
		if err != nil {
			return err
		}
		redeemScript, err := decodeRequiredHex(utxo.RedeemScript, "redeem script", utxo)
		if err != nil {
			return err
		}
		in.NonWitnessUtxo = prevTx
		in.RedeemScript = redeemScript
	default:
		return types.ErrUnsupportedAddress.Wrapf("unsupported script of utxo %s:%d", utxo.Txid, utxo.Vout)
	}

	return nil
}

func decodeRequiredHex(v, what string, utxo *types.UTXO) ([]byte, error) {
	if v == "" {
		return nil, types.ErrInvalidStakingInput.Wrapf("missing %s for utxo %s:%d", what, utxo.Txid, utxo.Vout)
	}
	bz, err := hex.DecodeString(v)
	if err != nil {
		return nil, types.ErrInvalidStakingInput.Wrapf("invalid %s for utxo %s:%d: %v", what, utxo.Txid, utxo.Vout, err)
	}
	return bz, nil
}

func decodePrevTx(utxo *types.UTXO) (*wire.MsgTx, error) {
	bz, err := decodeRequiredHex(utxo.RawTxHex, "raw transaction", utxo)
	if err != nil {
		return nil, err
	}
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(bz)); err != nil {
		return nil, types.ErrInvalidStakingInput.Wrapf("cannot decode raw transaction of utxo %s:%d: %v", utxo.Txid, utxo.Vout, err)
	}
	if tx.TxHash().String() != utxo.Txid {
		return nil, types.ErrInvalidStakingInput.Wrapf("raw transaction does not match utxo txid %s", utxo.Txid)
	}
	return tx, nil
}

// BuildUnbondingPsbt wraps the unbonding transaction into a PSBT spending the
// staking output through the unbonding path.
func BuildUnbondingPsbt(
	unbondingTx *wire.MsgTx,
	stakingTx *wire.MsgTx,
	stakingOutputIdx uint32,
	unbondingPath *SpendInfo,
) (*psbt.Packet, error) {
	if len(unbondingTx.TxIn) != 1 || len(unbondingTx.TxOut) != 1 {
		return nil, types.ErrInvalidTransaction.Wrap("unbonding transaction must have exactly one input and one output")
	}
	if int(stakingOutputIdx) >= len(stakingTx.TxOut) {
		return nil, types.ErrStakingOutputNotFound.Wrapf("output index %d out of range", stakingOutputIdx)
	}

	stakingTxHash := stakingTx.TxHash()
	if unbondingTx.TxIn[0].PreviousOutPoint != *wire.NewOutPoint(&stakingTxHash, stakingOutputIdx) {
		return nil, types.ErrInvalidTransaction.Wrap("unbonding transaction does not spend the staking output")
	}

	return newScriptPathPsbt(unsignedCopy(unbondingTx), stakingTx.TxOut[stakingOutputIdx], unbondingPath)
}

func unsignedCopy(tx *wire.MsgTx) *wire.MsgTx {
	cp := tx.Copy()
	for _, in := range cp.TxIn {
		in.SignatureScript = nil
		in.Witness = nil
	}
	return cp
}
