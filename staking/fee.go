package staking

import (
	"encoding/hex"
	"sort"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/types"
)

// Virtual sizes used to estimate fees, in vbytes.
const (
	P2TRInputSize          = 58
	NativeSegwitInputSize  = 68
	DefaultInputSize       = 180
	MaxNonLegacyOutputSize = 43
	TxBufferSizeOverhead   = 11
	WithdrawTxBufferSize   = 17

	// LowRateEstimationAccuracyBuffer is added to fees at or below
	// WalletRelayFeeRateThreshold sat/vbyte
	LowRateEstimationAccuracyBuffer = 30
	WalletRelayFeeRateThreshold     = 2
	opReturnOutputValueSize         = 8
	opReturnScriptLenSize           = 1
)

// InputSizeByScript estimates the size of an input spending pkScript.
func InputSizeByScript(pkScript []byte) int64 {
	switch txscript.GetScriptClass(pkScript) {
	case txscript.WitnessV0PubKeyHashTy:
		return NativeSegwitInputSize
	case txscript.WitnessV1TaprootTy:
		return P2TRInputSize
	default:
		return DefaultInputSize
	}
}

// OutputSize estimates the size of an output. OP_RETURN outputs are sized
// exactly, the rest use the largest non legacy output size.
func OutputSize(out *wire.TxOut) int64 {
	if txscript.GetScriptClass(out.PkScript) == txscript.NullDataTy {
		return int64(opReturnOutputValueSize + opReturnScriptLenSize + len(out.PkScript))
	}
	return MaxNonLegacyOutputSize
}

func rateBasedTxBufferFee(feeRate int64) int64 {
	if feeRate <= WalletRelayFeeRateThreshold {
		return LowRateEstimationAccuracyBuffer
	}
	return 0
}

func estimatedSize(inputScripts [][]byte, outputs []*wire.TxOut) int64 {
	var size int64
	for _, s := range inputScripts {
		size += InputSizeByScript(s)
	}
	for _, o := range outputs {
		size += OutputSize(o)
	}
	return size + TxBufferSizeOverhead
}

// StakingTxInputs is the result of the staking UTXO selection.
type StakingTxInputs struct {
	SelectedUTXOs []*types.UTXO
	Fee           int64
}

// GetStakingTxInputUTXOsAndFees selects UTXOs, largest first, until they
// cover the staking amount and the fee of a transaction with the given
// outputs. A change output is accounted for whenever the leftover exceeds
// the dust limit.
func GetStakingTxInputUTXOsAndFees(
	utxos []*types.UTXO,
	stakingAmount int64,
	feeRate int64,
	outputs []*wire.TxOut,
) (*StakingTxInputs, error) {
	if len(utxos) == 0 {
		return nil, types.ErrInsufficientFunds.Wrap("no UTXOs available")
	}
	if stakingAmount <= 0 {
		return nil, types.ErrInvalidStakingInput.Wrap("staking amount must be positive")
	}
	if feeRate <= 0 {
		return nil, types.ErrInvalidFeeRate.Wrapf("fee rate %d must be positive", feeRate)
	}

	sorted := make([]*types.UTXO, len(utxos))
	copy(sorted, utxos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	var (
		selected     []*types.UTXO
		inputScripts [][]byte
		accumulated  int64
		fee          int64
	)
	for _, u := range sorted {
		pkScript, err := hex.DecodeString(u.ScriptPubKey)
		if err != nil {
			return nil, types.ErrInvalidStakingInput.Wrapf("invalid script of utxo %s:%d: %v", u.Txid, u.Vout, err)
		}

		selected = append(selected, u)
		inputScripts = append(inputScripts, pkScript)
		accumulated += u.Value

		fee = estimatedSize(inputScripts, outputs)*feeRate + rateBasedTxBufferFee(feeRate)
		if accumulated-(stakingAmount+fee) > DustSat {
			fee += MaxNonLegacyOutputSize * feeRate
		}
		if accumulated >= stakingAmount+fee {
			return &StakingTxInputs{
				SelectedUTXOs: selected,
				Fee:           fee,
			}, nil
		}
	}

	return nil, types.ErrInsufficientFunds.Wrapf(
		"unable to gather enough UTXOs to cover %d sat and fees, available %d sat", stakingAmount, accumulated)
}

// GetWithdrawTxFee is the fee of a transaction spending one taproot script
// path input into a single output.
func GetWithdrawTxFee(feeRate int64) int64 {
	size := int64(P2TRInputSize + MaxNonLegacyOutputSize + TxBufferSizeOverhead + WithdrawTxBufferSize)
	return feeRate*size + rateBasedTxBufferFee(feeRate)
}
