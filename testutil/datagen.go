package testutil

import (
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/types"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)
	return newHeaderBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)
	return hex.EncodeToString(randBytes)
}

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}

func GenRandomBtcKeyPair(r *rand.Rand) (*btcec.PrivateKey, *btcec.PublicKey) {
	sk, pk := btcec.PrivKeyFromBytes(GenRandomByteArray(r, 32))
	return sk, pk
}

// GenRandomBtcKeys returns n key pairs with distinct x-only public keys.
func GenRandomBtcKeys(r *rand.Rand, n int) []*btcec.PrivateKey {
	keys := make([]*btcec.PrivateKey, 0, n)
	seen := make(map[string]struct{}, n)
	for len(keys) < n {
		sk, pk := GenRandomBtcKeyPair(r)
		xonly := string(schnorr.SerializePubKey(pk))
		if _, ok := seen[xonly]; ok {
			continue
		}
		seen[xonly] = struct{}{}
		keys = append(keys, sk)
	}
	return keys
}

func NoCoordPkHex(pk *btcec.PublicKey) string {
	return hex.EncodeToString(schnorr.SerializePubKey(pk))
}

// GenRandomParams returns valid params for the given covenant committee.
func GenRandomParams(r *rand.Rand, t *testing.T, version uint32, covenantKeys []*btcec.PrivateKey, quorum uint32) *types.VersionedStakingParams {
	covenantPks := make([]string, 0, len(covenantKeys))
	for _, sk := range covenantKeys {
		covenantPks = append(covenantPks, NoCoordPkHex(sk.PubKey()))
	}

	minStakingTime := uint32(r.Intn(1000) + 10)
	p := &types.VersionedStakingParams{
		Version:              version,
		BtcActivationHeight:  uint32(r.Intn(1000)+1) + version*1000,
		CovenantNoCoordPks:   covenantPks,
		CovenantQuorum:       quorum,
		MinStakingAmountSat:  100000,
		MaxStakingAmountSat:  int64(r.Intn(100000000) + 100000),
		MinStakingTimeBlocks: minStakingTime,
		MaxStakingTimeBlocks: minStakingTime + uint32(r.Intn(60000)),
		UnbondingTime:        uint32(r.Intn(1000) + 1),
		UnbondingFeeSat:      int64(r.Intn(10000) + 1000),
		Slashing: &types.SlashingParams{
			SlashingPkScriptHex: "6a07626162796c6f6e",
			SlashingRate:        sdkmath.LegacyNewDecWithPrec(int64(r.Intn(90)+1), 2),
			MinSlashingTxFeeSat: 1000,
		},
	}
	require.NoError(t, p.Validate())
	return p
}

// GenTaprootAddress returns the key path taproot address of pk.
func GenTaprootAddress(t *testing.T, pk *btcec.PublicKey, net *chaincfg.Params) *btcutil.AddressTaproot {
	addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(txscript.ComputeTaprootKeyNoScript(pk)), net)
	require.NoError(t, err)
	return addr
}

// GenNativeSegwitAddress returns the P2WPKH address of pk.
func GenNativeSegwitAddress(t *testing.T, pk *btcec.PublicKey, net *chaincfg.Params) *btcutil.AddressWitnessPubKeyHash {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pk.SerializeCompressed()), net)
	require.NoError(t, err)
	return addr
}

// GenRandomUTXO returns a UTXO of the given value paying to addr.
func GenRandomUTXO(r *rand.Rand, t *testing.T, addr btcutil.Address, value int64) *types.UTXO {
	pkScript, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)

	hash, err := chainhash.NewHash(GenRandomByteArray(r, chainhash.HashSize))
	require.NoError(t, err)

	return &types.UTXO{
		Txid:         hash.String(),
		Vout:         uint32(r.Intn(10)),
		Value:        value,
		ScriptPubKey: hex.EncodeToString(pkScript),
	}
}

// GenRandomTx returns a transaction with a random input and the given outputs.
func GenRandomTx(r *rand.Rand, outs ...*wire.TxOut) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	hash, _ := chainhash.NewHash(GenRandomByteArray(r, chainhash.HashSize))
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, r.Uint32()), nil, nil))
	for _, o := range outs {
		tx.AddTxOut(o)
	}
	return tx
}
