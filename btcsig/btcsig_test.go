package btcsig_test

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/btcsig"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

func TestExtractFirstSchnorrSignature(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tx := testutil.GenRandomTx(r)
	require.Nil(t, btcsig.ExtractFirstSchnorrSignature(tx))

	sig := testutil.GenRandomByteArray(r, 64)
	tx.TxIn[0].Witness = wire.TxWitness{
		testutil.GenRandomByteArray(r, 65),
		sig,
		testutil.GenRandomByteArray(r, 64),
	}
	require.Equal(t, sig, btcsig.ExtractFirstSchnorrSignature(tx))

	require.Nil(t, btcsig.ExtractFirstSchnorrSignature(wire.NewMsgTx(2)))
}

func extractSigned(t *testing.T, psbtHex string) *wire.MsgTx {
	bz, err := hex.DecodeString(psbtHex)
	require.NoError(t, err)
	packet, err := psbt.NewFromRawBytes(bytes.NewReader(bz), false)
	require.NoError(t, err)
	require.NoError(t, psbt.MaybeFinalizeAll(packet))
	tx, err := psbt.Extract(packet)
	require.NoError(t, err)
	return tx
}

func TestSlashingSignatureFixtures(t *testing.T) {
	for _, tc := range testutil.RegistrationFixtures {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			slashingTx := extractSigned(t, tc.SignedSlashingPsbtHex)
			sig := btcsig.ExtractFirstSchnorrSignature(slashingTx)
			require.Equal(t, tc.DelegationMsg.DelegatorSlashingSig, base64.StdEncoding.EncodeToString(sig))

			var buf bytes.Buffer
			require.NoError(t, btcsig.ClearTxSignatures(slashingTx).Serialize(&buf))
			require.Equal(t, tc.DelegationMsg.SlashingTx, base64.StdEncoding.EncodeToString(buf.Bytes()))

			unbondingSlashingTx := extractSigned(t, tc.SignedUnbondingSlashingPsbtHex)
			sig = btcsig.ExtractFirstSchnorrSignature(unbondingSlashingTx)
			require.Equal(t, tc.DelegationMsg.DelegatorUnbondingSlashingSig, base64.StdEncoding.EncodeToString(sig))
		})
	}
}

func FuzzClearTxSignatures(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		tx := testutil.GenRandomTx(r, wire.NewTxOut(r.Int63n(1000000), testutil.GenRandomByteArray(r, 34)))
		for i := 0; i < r.Intn(3); i++ {
			tx.AddTxIn(wire.NewTxIn(&tx.TxIn[0].PreviousOutPoint, testutil.GenRandomByteArray(r, 20), nil))
		}
		for _, in := range tx.TxIn {
			in.Witness = wire.TxWitness{testutil.GenRandomByteArray(r, 64)}
		}
		txHash := tx.TxHash()

		cleared := btcsig.ClearTxSignatures(tx)
		require.Same(t, tx, cleared)
		for _, in := range cleared.TxIn {
			require.Empty(t, in.SignatureScript)
			require.Empty(t, in.Witness)
		}
		require.False(t, cleared.HasWitness())

		again := btcsig.ClearTxSignatures(cleared.Copy())
		require.Equal(t, cleared.TxHash(), again.TxHash())
		// txid does not commit to witnesses
		if len(tx.TxIn) == 1 {
			require.Equal(t, txHash, cleared.TxHash())
		}
	})
}

func covenantSig(t *testing.T, sk *btcec.PrivateKey, sig []byte) *types.CovenantSignature {
	return &types.CovenantSignature{
		BtcPkHex: hex.EncodeToString(schnorr.SerializePubKey(sk.PubKey())),
		SigHex:   hex.EncodeToString(sig),
	}
}

func sortedCommittee(t *testing.T, keys []*btcec.PrivateKey) [][]byte {
	pks := make([]*btcec.PublicKey, 0, len(keys))
	for _, sk := range keys {
		pks = append(pks, sk.PubKey())
	}
	sorted, err := staking.SortKeys(pks)
	require.NoError(t, err)
	return sorted
}

func FuzzCreateCovenantWitness(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		n := r.Intn(9) + 1
		quorum := uint32(r.Intn(n) + 1)
		keys := testutil.GenRandomBtcKeys(r, n)
		committee := sortedCommittee(t, keys)

		// any subset of at least quorum members signs, in random order
		signers := r.Perm(n)[:int(quorum)+r.Intn(n-int(quorum)+1)]
		sigs := make([]*types.CovenantSignature, 0, len(signers))
		sigByPk := make(map[string][]byte)
		for _, i := range signers {
			s := testutil.GenRandomByteArray(r, 64)
			// keep r and s below the field and group orders
			s[0], s[32] = 0, 0
			sigs = append(sigs, covenantSig(t, keys[i], s))
			sigByPk[string(schnorr.SerializePubKey(keys[i].PubKey()))] = s
		}
		// duplicates count once
		sigs = append(sigs, sigs[0])

		original := wire.TxWitness{testutil.GenRandomByteArray(r, 64), testutil.GenRandomByteArray(r, 40)}
		witness, err := btcsig.CreateCovenantWitness(original, committee, sigs, quorum)
		require.NoError(t, err)
		require.Len(t, witness, n+len(original))
		require.Equal(t, original, witness[n:])

		var selected int
		for i := 0; i < n; i++ {
			item := witness[n-1-i]
			expected, signed := sigByPk[string(committee[i])]
			if len(item) == 0 {
				// a signer may only be skipped once the quorum is reached
				if signed {
					require.Equal(t, int(quorum), selected)
				}
				continue
			}
			require.True(t, signed)
			require.Equal(t, expected, []byte(item))
			selected++
		}
		require.Equal(t, int(quorum), selected)

		if quorum > 1 {
			_, err = btcsig.CreateCovenantWitness(original, committee, sigs[:quorum-1], quorum)
			require.ErrorIs(t, err, types.ErrInsufficientCovenantSignatures)
		}
	})
}

func TestCreateCovenantWitnessInvalidSignatures(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	keys := testutil.GenRandomBtcKeys(r, 4)
	committee := sortedCommittee(t, keys[:3])
	valid := make([]byte, 64)
	valid[63] = 1

	_, err := btcsig.CreateCovenantWitness(nil, committee, []*types.CovenantSignature{
		covenantSig(t, keys[3], valid),
	}, 1)
	require.ErrorIs(t, err, types.ErrUnknownCovenantMember)

	_, err = btcsig.CreateCovenantWitness(nil, committee, []*types.CovenantSignature{
		covenantSig(t, keys[0], valid[:63]),
	}, 1)
	require.ErrorIs(t, err, types.ErrInvalidCovenantSignature)

	_, err = btcsig.CreateCovenantWitness(nil, committee, []*types.CovenantSignature{
		{BtcPkHex: "02" + hex.EncodeToString(committee[0]), SigHex: hex.EncodeToString(valid)},
	}, 1)
	require.ErrorIs(t, err, types.ErrInvalidCovenantSignature)

	_, err = btcsig.CreateCovenantWitness(nil, committee, []*types.CovenantSignature{
		covenantSig(t, keys[0], valid),
		covenantSig(t, keys[0], valid),
	}, 2)
	require.ErrorIs(t, err, types.ErrInsufficientCovenantSignatures)
}

// TestCovenantWitnessSpendsUnbondingPath checks the assembled witness against
// the script interpreter.
func TestCovenantWitnessSpendsUnbondingPath(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	net := &chaincfg.SigNetParams

	covenantKeys := testutil.GenRandomBtcKeys(r, 5)
	quorum := uint32(3)
	p := testutil.GenRandomParams(r, t, 0, covenantKeys, quorum)

	stakerSk, stakerPk := testutil.GenRandomBtcKeyPair(r)
	_, fpPk := testutil.GenRandomBtcKeyPair(r)
	stakerAddr := testutil.GenTaprootAddress(t, stakerPk, net)

	s, err := staking.NewStaking(net, &types.StakerInfo{
		PublicKeyNoCoordHex: testutil.NoCoordPkHex(stakerPk),
		Address:             stakerAddr.EncodeAddress(),
	}, &types.StakingInputs{
		FinalityProviderPksNoCoordHex: []string{testutil.NoCoordPkHex(fpPk)},
		StakingAmountSat:              p.MinStakingAmountSat,
		StakingTimelock:               p.MinStakingTimeBlocks,
	}, p)
	require.NoError(t, err)

	utxo := testutil.GenRandomUTXO(r, t, stakerAddr, p.MinStakingAmountSat*3)
	stakingRes, err := s.CreateStakingTransaction(p.MinStakingAmountSat, []*types.UTXO{utxo}, 5)
	require.NoError(t, err)
	unbondingRes, err := s.CreateUnbondingTransaction(stakingRes.Transaction)
	require.NoError(t, err)
	packet, err := s.ToUnbondingPsbt(unbondingRes.Transaction, stakingRes.Transaction)
	require.NoError(t, err)

	prevOut := stakingRes.Transaction.TxOut[0]
	leafScript := packet.Inputs[0].TaprootLeafScript[0]
	leaf := txscript.NewBaseTapLeaf(leafScript.Script)
	tx := unbondingRes.Transaction.Copy()
	fetcher := txscript.NewCannedPrevOutputFetcher(prevOut.PkScript, prevOut.Value)
	hashes := txscript.NewTxSigHashes(tx, fetcher)

	sign := func(sk *btcec.PrivateKey) []byte {
		sig, err := txscript.RawTxInTapscriptSignature(tx, hashes, 0, prevOut.Value, prevOut.PkScript, leaf, txscript.SigHashDefault, sk)
		require.NoError(t, err)
		return sig
	}

	stakerWitness := wire.TxWitness{sign(stakerSk), leafScript.Script, leafScript.ControlBlock}

	// every member signs, only the quorum is used
	sigs := make([]*types.CovenantSignature, 0, len(covenantKeys))
	for _, sk := range covenantKeys {
		sigs = append(sigs, covenantSig(t, sk, sign(sk)))
	}

	witness, err := btcsig.CreateCovenantWitness(stakerWitness, s.CovenantKeysInScriptOrder(), sigs, quorum)
	require.NoError(t, err)
	tx.TxIn[0].Witness = witness

	engine, err := txscript.NewEngine(prevOut.PkScript, tx, 0, txscript.StandardVerifyFlags, nil, hashes, prevOut.Value, fetcher)
	require.NoError(t, err)
	require.NoError(t, engine.Execute())
}
