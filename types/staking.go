package types

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// StakerInfo identifies the staker on the Bitcoin side.
type StakerInfo struct {
	// x-only public key of the staker, hex encoded
	PublicKeyNoCoordHex string `json:"publicKeyNoCoordHex"`
	// address receiving change and withdrawn funds
	Address string `json:"address"`
}

// StakingInputs describes what is staked, for how long and to whom.
type StakingInputs struct {
	FinalityProviderPksNoCoordHex []string `json:"finalityProviderPksNoCoordHex"`
	StakingAmountSat              int64    `json:"stakingAmountSat"`
	StakingTimelock               uint32   `json:"stakingTimelock"`
}

// UTXO is a spendable output of the staker.
type UTXO struct {
	Txid         string `json:"txid"`
	Vout         uint32 `json:"vout"`
	Value        int64  `json:"value"`
	ScriptPubKey string `json:"scriptPubKey"`
	// RawTxHex is the full previous transaction, required for non-segwit inputs
	RawTxHex      string `json:"rawTxHex,omitempty"`
	RedeemScript  string `json:"redeemScript,omitempty"`
	WitnessScript string `json:"witnessScript,omitempty"`
}

func (u *UTXO) OutPoint() (*wire.OutPoint, error) {
	hash, err := chainhash.NewHashFromStr(u.Txid)
	if err != nil {
		return nil, fmt.Errorf("invalid utxo txid %s: %w", u.Txid, err)
	}
	return wire.NewOutPoint(hash, u.Vout), nil
}

func (u *UTXO) PkScript() ([]byte, error) {
	return hex.DecodeString(u.ScriptPubKey)
}

// InclusionProof is an SPV proof of a transaction in a Bitcoin block, in the
// shape returned by Electrum-style blockchain.transaction.get_merkle.
type InclusionProof struct {
	// 0-based position of the transaction in the block
	Pos uint32 `json:"pos"`
	// sibling hashes as big-endian hex, deepest pairing first
	Merkle       []string `json:"merkle"`
	BlockHashHex string   `json:"blockHashHex"`
}

// CovenantSignature is a signature of a covenant committee member.
type CovenantSignature struct {
	BtcPkHex string `json:"btcPkHex"`
	SigHex   string `json:"sigHex"`
}

// TransactionResult is returned by every Bitcoin-side signing operation.
type TransactionResult struct {
	Transaction *wire.MsgTx
	Fee         int64
}
