// Package merkle converts SPV inclusion proofs between the Electrum-style
// representation (big-endian hex hashes) and the byte layout used by Babylon.
package merkle

import (
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/babylonchain/btc-staking-manager/types"
)

func parseHash(hashHex string) (*chainhash.Hash, error) {
	if len(hashHex) != chainhash.MaxHashStringSize {
		return nil, errorsmod.Wrapf(types.ErrInvalidInclusionProof,
			"hash %q must be %d hex characters", hashHex, chainhash.MaxHashStringSize)
	}
	// NewHashFromStr reverses the big-endian display order
	h, err := chainhash.NewHashFromStr(hashHex)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidInclusionProof, "hash %q: %v", hashHex, err)
	}
	return h, nil
}

// EncodeProof concatenates the sibling hashes in internal byte order.
func EncodeProof(merkle []string) ([]byte, error) {
	proof := make([]byte, 0, len(merkle)*chainhash.HashSize)
	for _, hashHex := range merkle {
		h, err := parseHash(hashHex)
		if err != nil {
			return nil, err
		}
		proof = append(proof, h[:]...)
	}
	return proof, nil
}

func EncodeProofHex(merkle []string) (string, error) {
	proof, err := EncodeProof(merkle)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(proof), nil
}

// DecodeProof is the inverse of EncodeProof.
func DecodeProof(proof []byte) ([]string, error) {
	if len(proof)%chainhash.HashSize != 0 {
		return nil, errorsmod.Wrapf(types.ErrInvalidInclusionProof,
			"proof length %d is not a multiple of %d", len(proof), chainhash.HashSize)
	}
	merkle := make([]string, 0, len(proof)/chainhash.HashSize)
	for i := 0; i < len(proof); i += chainhash.HashSize {
		var h chainhash.Hash
		copy(h[:], proof[i:i+chainhash.HashSize])
		merkle = append(merkle, h.String())
	}
	return merkle, nil
}

// TransactionKey locates a transaction by its position in the block and the
// block hash in internal byte order.
func TransactionKey(pos uint32, blockHashHex string) (*types.TransactionKey, error) {
	h, err := parseHash(blockHashHex)
	if err != nil {
		return nil, err
	}
	return &types.TransactionKey{
		Index: pos,
		Hash:  h.CloneBytes(),
	}, nil
}

func BuildInclusionProof(p types.InclusionProof) (*types.InclusionProofMsg, error) {
	key, err := TransactionKey(p.Pos, p.BlockHashHex)
	if err != nil {
		return nil, err
	}
	proof, err := EncodeProof(p.Merkle)
	if err != nil {
		return nil, err
	}
	return &types.InclusionProofMsg{
		Key:   key,
		Proof: proof,
	}, nil
}
