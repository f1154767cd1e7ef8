// Package pop builds the proof of possession binding a BTC key to a Babylon
// account.
package pop

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cometbft/cometbft/crypto/tmhash"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/types"
)

// BabylonStakingModuleAddress is the address of the btcstaking module. It is
// the same on every network.
const BabylonStakingModuleAddress = "bbn13837feaxn8t0zvwcjwhw7lhpgdcx4s36eqteah"

const stakerPopContext = "staker_pop"

// UpgradeConfig enables the context-prefixed message format from
// UpgradeHeight onwards.
type UpgradeConfig struct {
	UpgradeHeight uint64
	Version       uint32
}

// ContextHash returns the hex encoded domain separator of staker proofs of
// possession on the given chain.
func ContextHash(chainID string, version uint32) string {
	ctx := fmt.Sprintf("btcstaking/%d/%s/%s/%s", version, stakerPopContext, chainID, BabylonStakingModuleAddress)
	return hex.EncodeToString(tmhash.Sum([]byte(ctx)))
}

// BuildMessage returns the message the staker signs for the given Babylon
// address. The legacy format, the bare address, is used unless the current
// height, chain id and upgrade are all known and the upgrade is active.
func BuildMessage(address string, currentHeight *uint64, chainID string, upgrade *UpgradeConfig) string {
	if currentHeight == nil || chainID == "" || upgrade == nil {
		return address
	}
	if *currentHeight < upgrade.UpgradeHeight {
		return address
	}
	return ContextHash(chainID, upgrade.Version) + address
}

// SigTypeForAddress picks the signature scheme for the staker address. Taproot
// and native segwit addresses sign with BIP322, everything else with ECDSA.
func SigTypeForAddress(address string, net *chaincfg.Params) (types.MessageSigType, types.BTCSigType) {
	if staking.IsTaproot(address, net) || staking.IsNativeSegwit(address, net) {
		return types.MessageSigTypeBIP322Simple, types.BTCSigTypeBIP322
	}
	return types.MessageSigTypeECDSA, types.BTCSigTypeECDSA
}

// EncodeBIP322Sig encodes babylon.btcstaking.v1.BIP322Sig.
func EncodeBIP322Sig(address string, sig []byte) []byte {
	var b []byte
	if address != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, address)
	}
	if len(sig) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, sig)
	}
	return b
}

// BuildProofOfPossession wraps the base64 signature returned by the BTC
// signer. BIP322 signatures are bound to the staker address.
func BuildProofOfPossession(sigType types.BTCSigType, stakerBtcAddress string, base64Sig string) (*types.ProofOfPossessionBTC, error) {
	sig, err := base64.StdEncoding.DecodeString(base64Sig)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidSignature, "invalid base64 proof of possession signature: %v", err)
	}

	btcSig := sig
	if sigType == types.BTCSigTypeBIP322 {
		btcSig = EncodeBIP322Sig(stakerBtcAddress, sig)
	}

	return &types.ProofOfPossessionBTC{
		BtcSigType: sigType,
		BtcSig:     btcSig,
	}, nil
}
