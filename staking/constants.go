package staking

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/wire"
)

const (
	// TxVersion is required for OP_CHECKSEQUENCEVERIFY to take effect
	TxVersion = 2

	// NonRbfSequence opts the inputs out of replace-by-fee
	NonRbfSequence = wire.MaxTxInSequenceNum

	// DustSat is the smallest output value the builders will produce
	DustSat int64 = 546

	// LockHeightTimeCutoff separates block height locktimes from unix time ones
	LockHeightTimeCutoff = 500000000
)

// unspendableKeyPathKey is the NUMS point used as taproot internal key so
// that staking outputs can only be spent through their script paths.
const unspendableKeyPathKey = "0250929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0"

var unspendableKeyPathInternalPubKey = mustParseUnspendableKey()

func mustParseUnspendableKey() *btcec.PublicKey {
	bz, err := hex.DecodeString(unspendableKeyPathKey)
	if err != nil {
		panic(err)
	}
	pk, err := btcec.ParsePubKey(bz)
	if err != nil {
		panic(err)
	}
	return pk
}

// UnspendableKeyPathInternalPubKey returns the taproot internal key of every
// output built by this package.
func UnspendableKeyPathInternalPubKey() btcec.PublicKey {
	return *unspendableKeyPathInternalPubKey
}

// UnspendableKeyPathInternalPubKeyXOnly is the 32-byte serialization used in
// the PSBT taproot internal key field.
func UnspendableKeyPathInternalPubKeyXOnly() []byte {
	return schnorr.SerializePubKey(unspendableKeyPathInternalPubKey)
}
