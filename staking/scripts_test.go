package staking

import (
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/testutil"
)

func genKeys(r *rand.Rand, n int) []*btcec.PublicKey {
	pks := make([]*btcec.PublicKey, 0, n)
	for _, sk := range testutil.GenRandomBtcKeys(r, n) {
		pks = append(pks, sk.PubKey())
	}
	return pks
}

func TestBuildTimelockScript(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pk := genKeys(r, 1)[0]

	script, err := BuildTimelockScript(pk, 64000)
	require.NoError(t, err)

	expected, err := txscript.NewScriptBuilder().
		AddData(schnorr.SerializePubKey(pk)).
		AddOp(txscript.OP_CHECKSIGVERIFY).
		AddInt64(64000).
		AddOp(txscript.OP_CHECKSEQUENCEVERIFY).
		Script()
	require.NoError(t, err)
	require.Equal(t, expected, script)

	// small timelocks use the numeric opcodes
	script, err = BuildTimelockScript(pk, 16)
	require.NoError(t, err)
	require.Equal(t, byte(txscript.OP_16), script[len(script)-2])
}

func TestBuildMultiSigScript(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	keys := genKeys(r, 4)

	single, err := BuildMultiSigScript(keys[:1], 1, false)
	require.NoError(t, err)
	require.Equal(t, append(append([]byte{txscript.OP_DATA_32}, schnorr.SerializePubKey(keys[0])...), txscript.OP_CHECKSIG), single)

	script, err := BuildMultiSigScript(keys, 3, true)
	require.NoError(t, err)
	require.Equal(t, byte(txscript.OP_NUMEQUALVERIFY), script[len(script)-1])
	require.Equal(t, byte(txscript.OP_3), script[len(script)-2])

	// key order does not change the script
	reversed := []*btcec.PublicKey{keys[3], keys[2], keys[1], keys[0]}
	script2, err := BuildMultiSigScript(reversed, 3, true)
	require.NoError(t, err)
	require.Equal(t, script, script2)

	_, err = BuildMultiSigScript(append(keys, keys[0]), 3, false)
	require.Error(t, err)

	_, err = BuildMultiSigScript(keys, 5, false)
	require.Error(t, err)

	_, err = BuildMultiSigScript(keys, 0, false)
	require.Error(t, err)
}

func TestTaprootOutputSpendInfo(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	keys := genKeys(r, 5)

	scripts, err := BuildStakingScripts(keys[0], keys[1:2], keys[2:], 2, 1000, 100)
	require.NoError(t, err)

	out, err := scripts.StakingOutput()
	require.NoError(t, err)
	require.True(t, txscript.IsPayToTaproot(out.PkScript))

	for _, leaf := range [][]byte{scripts.TimelockScript, scripts.UnbondingScript, scripts.SlashingScript} {
		info, err := out.SpendInfo(leaf)
		require.NoError(t, err)
		require.Equal(t, leaf, info.GetPkScriptPath())

		cb, err := info.GetControlBlockBytes()
		require.NoError(t, err)
		require.NoError(t, txscript.VerifyTaprootLeafCommitment(&info.ControlBlock, out.PkScript[2:], leaf))
		require.Equal(t, UnspendableKeyPathInternalPubKeyXOnly(), cb[1:33])
	}

	_, err = out.SpendInfo(scripts.UnbondingTimelockScript)
	require.Error(t, err)

	// equal timelocks collapse two leaves into the same script
	same, err := BuildStakingScripts(keys[0], keys[1:2], keys[2:], 2, 100, 100)
	require.NoError(t, err)
	require.Equal(t, same.TimelockScript, same.UnbondingTimelockScript)
	_, err = newTaprootOutput(same.TimelockScript, same.UnbondingTimelockScript)
	require.Error(t, err)
}

func TestToUint16Timelock(t *testing.T) {
	v, err := ToUint16Timelock(64000)
	require.NoError(t, err)
	require.Equal(t, uint16(64000), v)

	_, err = ToUint16Timelock(0)
	require.Error(t, err)
	_, err = ToUint16Timelock(65536)
	require.Error(t, err)
}
