package staking

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
)

// StakingScripts holds the tapscript leaves of the staking protocol.
type StakingScripts struct {
	// staker can spend the staking output after the staking timelock
	TimelockScript []byte
	// staker and covenant quorum can spend the staking output early
	UnbondingScript []byte
	// staker, one finality provider and covenant quorum can slash
	SlashingScript []byte
	// staker can spend the unbonding or slashing change output after the
	// unbonding timelock
	UnbondingTimelockScript []byte
}

// BuildStakingScripts builds every leaf used by staking, unbonding and
// slashing outputs of a single delegation.
func BuildStakingScripts(
	stakerKey *btcec.PublicKey,
	fpKeys []*btcec.PublicKey,
	covenantKeys []*btcec.PublicKey,
	covenantQuorum uint32,
	stakingTime uint16,
	unbondingTime uint16,
) (*StakingScripts, error) {
	if stakerKey == nil {
		return nil, fmt.Errorf("staker key is required")
	}
	if len(fpKeys) == 0 {
		return nil, fmt.Errorf("at least one finality provider key is required")
	}
	if len(covenantKeys) == 0 {
		return nil, fmt.Errorf("at least one covenant key is required")
	}

	timelockScript, err := BuildTimelockScript(stakerKey, stakingTime)
	if err != nil {
		return nil, err
	}

	unbondingTimelockScript, err := BuildTimelockScript(stakerKey, unbondingTime)
	if err != nil {
		return nil, err
	}

	covenantMultisig, err := BuildMultiSigScript(covenantKeys, covenantQuorum, false)
	if err != nil {
		return nil, fmt.Errorf("invalid covenant committee: %w", err)
	}

	fpMultisig, err := BuildMultiSigScript(fpKeys, 1, true)
	if err != nil {
		return nil, fmt.Errorf("invalid finality providers: %w", err)
	}

	stakerSig, err := buildSingleKeySigScript(stakerKey, true)
	if err != nil {
		return nil, err
	}

	return &StakingScripts{
		TimelockScript:          timelockScript,
		UnbondingScript:         aggregateScripts(stakerSig, covenantMultisig),
		SlashingScript:          aggregateScripts(stakerSig, fpMultisig, covenantMultisig),
		UnbondingTimelockScript: unbondingTimelockScript,
	}, nil
}

// BuildTimelockScript creates `<pk> OP_CHECKSIGVERIFY <t> OP_CHECKSEQUENCEVERIFY`.
func BuildTimelockScript(pk *btcec.PublicKey, lockTime uint16) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddData(schnorr.SerializePubKey(pk))
	builder.AddOp(txscript.OP_CHECKSIGVERIFY)
	builder.AddInt64(int64(lockTime))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	return builder.Script()
}

// BuildMultiSigScript creates a threshold signature script over the given
// keys. A single key degrades to a plain signature check. Otherwise the keys
// are sorted in ascending order of their x-only serialization.
func BuildMultiSigScript(keys []*btcec.PublicKey, threshold uint32, withVerify bool) ([]byte, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys provided")
	}
	if threshold == 0 || int(threshold) > len(keys) {
		return nil, fmt.Errorf("threshold %d out of range for %d keys", threshold, len(keys))
	}

	if len(keys) == 1 {
		return buildSingleKeySigScript(keys[0], withVerify)
	}

	sorted, err := SortKeys(keys)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	for i, key := range sorted {
		builder.AddData(key)
		if i == 0 {
			builder.AddOp(txscript.OP_CHECKSIG)
		} else {
			builder.AddOp(txscript.OP_CHECKSIGADD)
		}
	}
	builder.AddInt64(int64(threshold))
	if withVerify {
		builder.AddOp(txscript.OP_NUMEQUALVERIFY)
	} else {
		builder.AddOp(txscript.OP_NUMEQUAL)
	}
	return builder.Script()
}

// SortKeys returns the x-only serialization of the keys in ascending order.
// Duplicated keys are rejected.
func SortKeys(keys []*btcec.PublicKey) ([][]byte, error) {
	sorted := make([][]byte, 0, len(keys))
	for _, k := range keys {
		sorted = append(sorted, schnorr.SerializePubKey(k))
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1], sorted[i]) {
			return nil, fmt.Errorf("duplicate key %x", sorted[i])
		}
	}
	return sorted, nil
}

func buildSingleKeySigScript(pk *btcec.PublicKey, withVerify bool) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddData(schnorr.SerializePubKey(pk))
	if withVerify {
		builder.AddOp(txscript.OP_CHECKSIGVERIFY)
	} else {
		builder.AddOp(txscript.OP_CHECKSIG)
	}
	return builder.Script()
}

func aggregateScripts(scripts ...[]byte) []byte {
	var out []byte
	for _, s := range scripts {
		out = append(out, s...)
	}
	return out
}

// ToUint16Timelock converts a block count into a CSV timelock.
func ToUint16Timelock(blocks uint32) (uint16, error) {
	if blocks == 0 || blocks > math.MaxUint16 {
		return 0, fmt.Errorf("timelock %d must be in [1, %d]", blocks, math.MaxUint16)
	}
	return uint16(blocks), nil
}

// SpendInfo is what a spender needs to reveal a leaf of a taproot output.
type SpendInfo struct {
	RevealedLeaf txscript.TapLeaf
	ControlBlock txscript.ControlBlock
}

func (s *SpendInfo) GetPkScriptPath() []byte {
	return s.RevealedLeaf.Script
}

func (s *SpendInfo) GetControlBlockBytes() ([]byte, error) {
	return s.ControlBlock.ToBytes()
}

// TaprootOutput is a taproot output committing to a set of tapscript leaves
// under the unspendable internal key.
type TaprootOutput struct {
	PkScript []byte

	internalKey *btcec.PublicKey
	tree        *txscript.IndexedTapScriptTree
}

func newTaprootOutput(scripts ...[]byte) (*TaprootOutput, error) {
	if len(scripts) == 0 {
		return nil, fmt.Errorf("cannot build a taproot tree without scripts")
	}

	seen := make(map[string]struct{}, len(scripts))
	leaves := make([]txscript.TapLeaf, 0, len(scripts))
	for _, s := range scripts {
		if _, ok := seen[string(s)]; ok {
			return nil, fmt.Errorf("duplicate script in taproot tree")
		}
		seen[string(s)] = struct{}{}
		leaves = append(leaves, txscript.NewBaseTapLeaf(s))
	}

	tree := txscript.AssembleTaprootScriptTree(leaves...)
	root := tree.RootNode.TapHash()
	outputKey := txscript.ComputeTaprootOutputKey(unspendableKeyPathInternalPubKey, root[:])

	pkScript, err := txscript.PayToTaprootScript(outputKey)
	if err != nil {
		return nil, err
	}

	return &TaprootOutput{
		PkScript:    pkScript,
		internalKey: unspendableKeyPathInternalPubKey,
		tree:        tree,
	}, nil
}

// SpendInfo returns the control block proving that script is a leaf of the
// output.
func (o *TaprootOutput) SpendInfo(script []byte) (*SpendInfo, error) {
	leaf := txscript.NewBaseTapLeaf(script)
	idx, ok := o.tree.LeafProofIndex[leaf.TapHash()]
	if !ok {
		return nil, fmt.Errorf("script %x is not a leaf of the output", script)
	}
	proof := o.tree.LeafMerkleProofs[idx]

	return &SpendInfo{
		RevealedLeaf: leaf,
		ControlBlock: proof.ToControlBlock(o.internalKey),
	}, nil
}

// StakingOutput commits to the timelock, unbonding and slashing paths.
func (s *StakingScripts) StakingOutput() (*TaprootOutput, error) {
	return newTaprootOutput(s.TimelockScript, s.UnbondingScript, s.SlashingScript)
}

// UnbondingOutput commits to the unbonding timelock and slashing paths.
func (s *StakingScripts) UnbondingOutput() (*TaprootOutput, error) {
	return newTaprootOutput(s.UnbondingTimelockScript, s.SlashingScript)
}

// SlashingChangeOutput is the output returning the non slashed funds to the
// staker once the unbonding timelock expires.
func (s *StakingScripts) SlashingChangeOutput() (*TaprootOutput, error) {
	return newTaprootOutput(s.UnbondingTimelockScript)
}
