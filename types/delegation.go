package types

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// MsgCreateBTCDelegationTypeURL routes the delegation message on Babylon.
const MsgCreateBTCDelegationTypeURL = "/babylon.btcstaking.v1.MsgCreateBTCDelegation"

// ProofOfPossessionBTC proves that the holder of a BTC key authorized a
// Babylon account.
type ProofOfPossessionBTC struct {
	BtcSigType BTCSigType
	// btc_sig is a raw ECDSA signature or an encoded BIP322Sig, depending on
	// btc_sig_type
	BtcSig []byte
}

// TransactionKey is the position of a transaction in a Bitcoin block.
type TransactionKey struct {
	Index uint32
	// hash is the block hash in little-endian byte order
	Hash []byte
}

// InclusionProofMsg is the inclusion proof in the shape Babylon expects.
type InclusionProofMsg struct {
	Key   *TransactionKey
	Proof []byte
}

// MsgCreateBTCDelegation registers a BTC delegation on Babylon.
type MsgCreateBTCDelegation struct {
	// staker_addr is the bech32 address of the staker on Babylon
	StakerAddr string
	Pop        *ProofOfPossessionBTC
	// btc_pk is the x-only public key of the staker
	BtcPk []byte
	// fp_btc_pk_list is the list of x-only public keys of the finality providers
	FpBtcPkList [][]byte
	// staking_time is the staking timelock in BTC blocks
	StakingTime  uint32
	StakingValue int64
	// staking_tx is the serialized staking transaction
	StakingTx []byte
	// staking_tx_inclusion_proof is only set once the staking tx is confirmed
	StakingTxInclusionProof *InclusionProofMsg
	// slashing_tx is the unsigned slashing tx spending the staking output
	SlashingTx           []byte
	DelegatorSlashingSig []byte
	UnbondingTime        uint32
	UnbondingTx          []byte
	// unbonding_value is the staking value minus the unbonding fee
	UnbondingValue                int64
	UnbondingSlashingTx           []byte
	DelegatorUnbondingSlashingSig []byte
}

// EncodeObject wraps a message with its type URL for the Babylon signer.
type EncodeObject struct {
	TypeURL string
	Value   *MsgCreateBTCDelegation
}

func NewDelegationEncodeObject(msg *MsgCreateBTCDelegation) *EncodeObject {
	return &EncodeObject{
		TypeURL: MsgCreateBTCDelegationTypeURL,
		Value:   msg,
	}
}

// Marshal renders the message in protobuf wire format using the field
// numbers of babylon.btcstaking.v1.
func (m *MsgCreateBTCDelegation) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.StakerAddr)
	if m.Pop != nil {
		b = appendMessage(b, 2, m.Pop.marshal())
	}
	b = appendBytes(b, 3, m.BtcPk)
	for _, pk := range m.FpBtcPkList {
		// repeated fields keep empty elements
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, pk)
	}
	b = appendVarint(b, 5, uint64(m.StakingTime))
	b = appendVarint(b, 6, uint64(m.StakingValue))
	b = appendBytes(b, 7, m.StakingTx)
	if m.StakingTxInclusionProof != nil {
		b = appendMessage(b, 8, m.StakingTxInclusionProof.marshal())
	}
	b = appendBytes(b, 9, m.SlashingTx)
	b = appendBytes(b, 10, m.DelegatorSlashingSig)
	b = appendVarint(b, 11, uint64(m.UnbondingTime))
	b = appendBytes(b, 12, m.UnbondingTx)
	b = appendVarint(b, 13, uint64(m.UnbondingValue))
	b = appendBytes(b, 14, m.UnbondingSlashingTx)
	b = appendBytes(b, 15, m.DelegatorUnbondingSlashingSig)

	return b, nil
}

func (p *ProofOfPossessionBTC) marshal() []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(p.BtcSigType))
	b = appendBytes(b, 2, p.BtcSig)
	return b
}

func (p *InclusionProofMsg) marshal() []byte {
	var b []byte
	if p.Key != nil {
		var key []byte
		key = appendVarint(key, 1, uint64(p.Key.Index))
		key = appendBytes(key, 2, p.Key.Hash)
		b = appendMessage(b, 1, key)
	}
	b = appendBytes(b, 2, p.Proof)
	return b
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}
