package staking

import (
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/babylonchain/btc-staking-manager/types"
)

// BabylonAddressPrefix is the bech32 human readable part of Babylon accounts.
const BabylonAddressPrefix = "bbn"

// DecodeBtcAddress decodes the address and checks it belongs to the network.
func DecodeBtcAddress(address string, net *chaincfg.Params) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, net)
	if err != nil {
		return nil, types.ErrUnsupportedAddress.Wrapf("cannot decode %s: %v", address, err)
	}
	if !addr.IsForNet(net) {
		return nil, types.ErrUnsupportedAddress.Wrapf("%s is not an address of %s", address, net.Name)
	}
	return addr, nil
}

// AddressPkScript returns the output script paying to the address.
func AddressPkScript(address string, net *chaincfg.Params) ([]byte, error) {
	addr, err := DecodeBtcAddress(address, net)
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(addr)
}

func IsValidBtcAddress(address string, net *chaincfg.Params) bool {
	_, err := DecodeBtcAddress(address, net)
	return err == nil
}

// IsTaproot reports whether the address is a segwit v1 taproot address.
func IsTaproot(address string, net *chaincfg.Params) bool {
	addr, err := DecodeBtcAddress(address, net)
	if err != nil {
		return false
	}
	_, ok := addr.(*btcutil.AddressTaproot)
	return ok
}

// IsNativeSegwit reports whether the address is a P2WPKH address.
func IsNativeSegwit(address string, net *chaincfg.Params) bool {
	addr, err := DecodeBtcAddress(address, net)
	if err != nil {
		return false
	}
	_, ok := addr.(*btcutil.AddressWitnessPubKeyHash)
	return ok
}

// IsValidNoCoordPublicKey reports whether pk is a valid 32-byte x-only key.
func IsValidNoCoordPublicKey(pk []byte) bool {
	if len(pk) != schnorr.PubKeyBytesLen {
		return false
	}
	_, err := schnorr.ParsePubKey(pk)
	return err == nil
}

// IsValidBabylonAddress checks that the address is a bech32 Babylon account.
func IsValidBabylonAddress(address string) bool {
	hrp, data, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return false
	}
	return hrp == BabylonAddressPrefix && len(data) > 0
}
