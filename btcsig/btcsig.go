package btcsig

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/wire"

	"github.com/babylonchain/btc-staking-manager/types"
)

// ExtractFirstSchnorrSignature returns the first 64-byte element of the
// witness of the first input, or nil if there is none. Only single input
// transactions are expected.
func ExtractFirstSchnorrSignature(tx *wire.MsgTx) []byte {
	if tx == nil || len(tx.TxIn) == 0 {
		return nil
	}
	for _, item := range tx.TxIn[0].Witness {
		if len(item) == schnorr.SignatureSize {
			return append([]byte(nil), item...)
		}
	}
	return nil
}

// ClearTxSignatures removes the signature script and witness of every input
// in place and returns tx.
func ClearTxSignatures(tx *wire.MsgTx) *wire.MsgTx {
	for _, in := range tx.TxIn {
		in.SignatureScript = []byte{}
		in.Witness = wire.TxWitness{}
	}
	return tx
}

// CreateCovenantWitness prepends the covenant signatures to the staker's
// witness of a covenant multisig path. covenantPks must be in the order the
// keys appear in the script. Exactly quorum signatures are used, preferring
// members in script order, and the stack holds one element per member in
// reverse script order, empty for members that do not sign.
func CreateCovenantWitness(
	originalWitness wire.TxWitness,
	covenantPks [][]byte,
	sigs []*types.CovenantSignature,
	quorum uint32,
) (wire.TxWitness, error) {
	if quorum == 0 || int(quorum) > len(covenantPks) {
		return nil, types.ErrInvalidParams.Wrapf("covenant quorum %d out of range for %d keys", quorum, len(covenantPks))
	}

	memberIdx := make(map[string]int, len(covenantPks))
	for i, pk := range covenantPks {
		memberIdx[string(pk)] = i
	}

	sigByMember := make(map[int][]byte, len(sigs))
	for _, s := range sigs {
		pk, sig, err := parseCovenantSignature(s)
		if err != nil {
			return nil, err
		}
		idx, ok := memberIdx[string(pk)]
		if !ok {
			return nil, types.ErrUnknownCovenantMember.Wrapf("public key %s", s.BtcPkHex)
		}
		if _, dup := sigByMember[idx]; dup {
			continue
		}
		sigByMember[idx] = sig
	}

	if len(sigByMember) < int(quorum) {
		return nil, types.ErrInsufficientCovenantSignatures.Wrapf("required %d, got %d", quorum, len(sigByMember))
	}

	selected := make(map[int][]byte, quorum)
	for i := 0; i < len(covenantPks) && len(selected) < int(quorum); i++ {
		if sig, ok := sigByMember[i]; ok {
			selected[i] = sig
		}
	}

	witness := make(wire.TxWitness, 0, len(covenantPks)+len(originalWitness))
	for i := len(covenantPks) - 1; i >= 0; i-- {
		if sig, ok := selected[i]; ok {
			witness = append(witness, sig)
		} else {
			witness = append(witness, []byte{})
		}
	}

	return append(witness, originalWitness...), nil
}

func parseCovenantSignature(s *types.CovenantSignature) ([]byte, []byte, error) {
	if s == nil {
		return nil, nil, types.ErrInvalidCovenantSignature.Wrap("nil signature")
	}

	pk, err := hex.DecodeString(s.BtcPkHex)
	if err != nil || len(pk) != schnorr.PubKeyBytesLen {
		return nil, nil, types.ErrInvalidCovenantSignature.Wrapf("invalid public key %s", s.BtcPkHex)
	}
	if _, err := schnorr.ParsePubKey(pk); err != nil {
		return nil, nil, types.ErrInvalidCovenantSignature.Wrapf("invalid public key %s: %v", s.BtcPkHex, err)
	}

	sig, err := hex.DecodeString(s.SigHex)
	if err != nil || len(sig) != schnorr.SignatureSize {
		return nil, nil, types.ErrInvalidCovenantSignature.Wrapf("invalid signature of %s", s.BtcPkHex)
	}
	if _, err := schnorr.ParseSignature(sig); err != nil {
		return nil, nil, types.ErrInvalidCovenantSignature.Wrapf("invalid signature of %s: %v", s.BtcPkHex, err)
	}

	return pk, sig, nil
}
