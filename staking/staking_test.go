package staking_test

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

var net = &chaincfg.SigNetParams

func registrationParams(t *testing.T) *types.VersionedStakingParams {
	ps, err := params.ParseJSON([]byte(testutil.RegistrationParamsJSON))
	require.NoError(t, err)
	reg, err := params.NewRegistry(ps)
	require.NoError(t, err)
	p, err := reg.ByHeight(testutil.RegistrationBtcTipHeight)
	require.NoError(t, err)
	require.Equal(t, uint32(testutil.RegistrationParamsVersion), p.Version)
	return p
}

func serializeTx(t *testing.T, tx *wire.MsgTx) []byte {
	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	return buf.Bytes()
}

func psbtHex(t *testing.T, p *psbt.Packet) string {
	var buf bytes.Buffer
	require.NoError(t, p.Serialize(&buf))
	return hex.EncodeToString(buf.Bytes())
}

func TestRegistrationFixtures(t *testing.T) {
	p := registrationParams(t)
	inputs := testutil.RegistrationStakingInputs

	for _, fx := range testutil.RegistrationFixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, p)
			require.NoError(t, err)

			stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, testutil.RegistrationUTXOs(), testutil.RegistrationFeeRate)
			require.NoError(t, err)
			require.Equal(t, int64(testutil.RegistrationStakingFee), stakingRes.Fee)
			require.Equal(t, fx.StakingTxHex, hex.EncodeToString(serializeTx(t, stakingRes.Transaction)))

			slashingPsbt, err := s.CreateStakingOutputSlashingPsbt(stakingRes.Transaction)
			require.NoError(t, err)
			require.Equal(t, fx.SlashingPsbtHex, psbtHex(t, slashingPsbt))
			require.Equal(t, fx.DelegationMsg.SlashingTx,
				base64.StdEncoding.EncodeToString(serializeTx(t, slashingPsbt.UnsignedTx)))

			unbondingRes, err := s.CreateUnbondingTransaction(stakingRes.Transaction)
			require.NoError(t, err)
			require.Equal(t, p.UnbondingFeeSat, unbondingRes.Fee)
			require.Equal(t, fx.DelegationMsg.UnbondingValue, unbondingRes.Transaction.TxOut[0].Value)
			require.Equal(t, fx.DelegationMsg.UnbondingTx,
				base64.StdEncoding.EncodeToString(serializeTx(t, unbondingRes.Transaction)))

			unbondingSlashingPsbt, err := s.CreateUnbondingOutputSlashingPsbt(unbondingRes.Transaction)
			require.NoError(t, err)
			require.Equal(t, fx.UnbondingSlashingPsbtHex, psbtHex(t, unbondingSlashingPsbt))
			require.Equal(t, fx.DelegationMsg.UnbondingSlashingTx,
				base64.StdEncoding.EncodeToString(serializeTx(t, unbondingSlashingPsbt.UnsignedTx)))
		})
	}
}

func TestSlashingOutputs(t *testing.T) {
	p := registrationParams(t)
	inputs := testutil.RegistrationStakingInputs
	fx := testutil.RegistrationFixtures[0]

	s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, p)
	require.NoError(t, err)

	stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, testutil.RegistrationUTXOs(), testutil.RegistrationFeeRate)
	require.NoError(t, err)

	slashingPsbt, err := s.CreateStakingOutputSlashingPsbt(stakingRes.Transaction)
	require.NoError(t, err)
	outs := slashingPsbt.UnsignedTx.TxOut
	require.Len(t, outs, 2)
	require.Equal(t, int64(500), outs[0].Value)
	require.Equal(t, "6a07626162796c6f6e", hex.EncodeToString(outs[0].PkScript))
	require.Equal(t, int64(399500), outs[1].Value)
	require.Equal(t, s.SlashingChangePkScript(), outs[1].PkScript)
	require.Equal(t, uint32(wire.MaxTxInSequenceNum), slashingPsbt.UnsignedTx.TxIn[0].Sequence)

	in := slashingPsbt.Inputs[0]
	require.Equal(t, staking.UnspendableKeyPathInternalPubKeyXOnly(), in.TaprootInternalKey)
	require.Len(t, in.TaprootLeafScript, 1)
	require.Equal(t, s.Scripts().SlashingScript, in.TaprootLeafScript[0].Script)
	require.Equal(t, stakingRes.Transaction.TxOut[0].Value, in.WitnessUtxo.Value)
}

func TestSlashingDustLimit(t *testing.T) {
	p := registrationParams(t)
	inputs := testutil.RegistrationStakingInputs
	fx := testutil.RegistrationFixtures[0]

	// the same 500 sat share paid to a spendable script is dust
	spendable := *p
	slashing := *p.Slashing
	slashing.SlashingPkScriptHex = "0014" + testutil.GenRandomHexStr(rand.New(rand.NewSource(2)), 20)
	spendable.Slashing = &slashing

	s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, &spendable)
	require.NoError(t, err)
	stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, testutil.RegistrationUTXOs(), testutil.RegistrationFeeRate)
	require.NoError(t, err)

	_, err = s.CreateStakingOutputSlashingPsbt(stakingRes.Transaction)
	require.ErrorIs(t, err, types.ErrInvalidTransaction)
}

func TestUnbondingTransaction(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	stakingTx := testutil.GenRandomTx(r, wire.NewTxOut(11000, testutil.GenRandomByteArray(r, 34)))
	unbondingPkScript := testutil.GenRandomByteArray(r, 34)

	res, err := staking.BuildUnbondingTransaction(stakingTx, 0, unbondingPkScript, 500)
	require.NoError(t, err)
	require.Equal(t, int64(500), res.Fee)
	require.Len(t, res.Transaction.TxIn, 1)
	require.Len(t, res.Transaction.TxOut, 1)
	require.Equal(t, int64(10500), res.Transaction.TxOut[0].Value)
	require.Equal(t, stakingTx.TxHash(), res.Transaction.TxIn[0].PreviousOutPoint.Hash)
	require.Equal(t, int32(staking.TxVersion), res.Transaction.Version)

	// the output would be dust
	_, err = staking.BuildUnbondingTransaction(stakingTx, 0, unbondingPkScript, 11000-staking.DustSat+1)
	require.ErrorIs(t, err, types.ErrInvalidTransaction)

	_, err = staking.BuildUnbondingTransaction(stakingTx, 1, unbondingPkScript, 500)
	require.ErrorIs(t, err, types.ErrStakingOutputNotFound)
}

func TestNewStakingValidation(t *testing.T) {
	p := registrationParams(t)
	fx := testutil.RegistrationFixtures[0]

	testCases := []struct {
		name   string
		mutate func(info *types.StakerInfo, in *types.StakingInputs)
	}{
		{
			name: "address of another network",
			mutate: func(info *types.StakerInfo, _ *types.StakingInputs) {
				info.Address = "bc1plqg44wluw66vpkfccz23rdmtlepnx2m3yef57yyz66flgxdf4h8qes9kn0"
			},
		},
		{
			name: "compressed staker key",
			mutate: func(info *types.StakerInfo, _ *types.StakingInputs) {
				info.PublicKeyNoCoordHex = "02" + info.PublicKeyNoCoordHex
			},
		},
		{
			name: "no finality provider",
			mutate: func(_ *types.StakerInfo, in *types.StakingInputs) {
				in.FinalityProviderPksNoCoordHex = nil
			},
		},
		{
			name: "finality provider is the staker",
			mutate: func(info *types.StakerInfo, in *types.StakingInputs) {
				in.FinalityProviderPksNoCoordHex = []string{info.PublicKeyNoCoordHex}
			},
		},
		{
			name: "timelock below minimum",
			mutate: func(_ *types.StakerInfo, in *types.StakingInputs) {
				in.StakingTimelock = p.MinStakingTimeBlocks - 1
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			info := fx.StakerInfo
			inputs := testutil.RegistrationStakingInputs
			inputs.FinalityProviderPksNoCoordHex = append([]string(nil), inputs.FinalityProviderPksNoCoordHex...)
			tc.mutate(&info, &inputs)

			_, err := staking.NewStaking(net, &info, &inputs, p)
			require.ErrorIs(t, err, types.ErrInvalidStakingInput)
		})
	}
}

func TestCreateStakingTransactionAmountRange(t *testing.T) {
	p := registrationParams(t)
	fx := testutil.RegistrationFixtures[0]
	inputs := testutil.RegistrationStakingInputs

	s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, p)
	require.NoError(t, err)

	_, err = s.CreateStakingTransaction(p.MinStakingAmountSat-1, testutil.RegistrationUTXOs(), 4)
	require.ErrorIs(t, err, types.ErrInvalidStakingInput)

	_, err = s.CreateStakingTransaction(p.MinStakingAmountSat, nil, 4)
	require.ErrorIs(t, err, types.ErrNoInputs)

	_, err = s.CreateStakingTransaction(p.MinStakingAmountSat, testutil.RegistrationUTXOs(), 0)
	require.ErrorIs(t, err, types.ErrInvalidFeeRate)

	// the only UTXO cannot cover the stake
	_, err = s.CreateStakingTransaction(p.MaxStakingAmountSat, testutil.RegistrationUTXOs(), 4)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestToStakingPsbt(t *testing.T) {
	p := registrationParams(t)
	inputs := testutil.RegistrationStakingInputs

	for _, fx := range testutil.RegistrationFixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, p)
			require.NoError(t, err)

			utxos := testutil.RegistrationUTXOs()
			res, err := s.CreateStakingTransaction(inputs.StakingAmountSat, utxos, testutil.RegistrationFeeRate)
			require.NoError(t, err)

			packet, err := s.ToStakingPsbt(res.Transaction, utxos)
			require.NoError(t, err)
			require.Len(t, packet.Inputs, 1)
			require.Equal(t, utxos[0].Value, packet.Inputs[0].WitnessUtxo.Value)
			require.Equal(t, res.Transaction.TxHash(), packet.UnsignedTx.TxHash())

			if staking.IsTaproot(fx.StakerInfo.Address, net) {
				require.Equal(t, fx.StakerInfo.PublicKeyNoCoordHex, hex.EncodeToString(packet.Inputs[0].TaprootInternalKey))
			} else {
				require.Nil(t, packet.Inputs[0].TaprootInternalKey)
			}

			// a transaction without the staking output is rejected
			other := res.Transaction.Copy()
			other.TxOut = other.TxOut[1:]
			_, err = s.ToStakingPsbt(other, utxos)
			require.ErrorIs(t, err, types.ErrStakingOutputNotFound)

			_, err = s.ToStakingPsbt(res.Transaction, nil)
			require.ErrorIs(t, err, types.ErrInvalidStakingInput)
		})
	}
}

func TestCovenantKeysInScriptOrder(t *testing.T) {
	p := registrationParams(t)
	fx := testutil.RegistrationFixtures[0]
	inputs := testutil.RegistrationStakingInputs

	s, err := staking.NewStaking(net, &fx.StakerInfo, &inputs, p)
	require.NoError(t, err)

	keys := s.CovenantKeysInScriptOrder()
	require.Len(t, keys, len(p.CovenantNoCoordPks))
	for i := 1; i < len(keys); i++ {
		require.Equal(t, -1, bytes.Compare(keys[i-1], keys[i]))
	}
	// keys are pushed in this order in the unbonding script
	pos := -1
	for _, k := range keys {
		idx := bytes.Index(s.Scripts().UnbondingScript, k)
		require.Greater(t, idx, pos)
		pos = idx
	}
}

func spendScriptPath(t *testing.T, packet *psbt.Packet, signers ...func(tx *wire.MsgTx, hashes *txscript.TxSigHashes, leaf txscript.TapLeaf) []byte) {
	in := packet.Inputs[0]
	leafScript := in.TaprootLeafScript[0]
	leaf := txscript.NewBaseTapLeaf(leafScript.Script)

	tx := packet.UnsignedTx.Copy()
	fetcher := txscript.NewCannedPrevOutputFetcher(in.WitnessUtxo.PkScript, in.WitnessUtxo.Value)
	hashes := txscript.NewTxSigHashes(tx, fetcher)

	var witness wire.TxWitness
	for _, sign := range signers {
		witness = append(witness, sign(tx, hashes, leaf))
	}
	witness = append(witness, leafScript.Script, leafScript.ControlBlock)
	tx.TxIn[0].Witness = witness

	engine, err := txscript.NewEngine(
		in.WitnessUtxo.PkScript, tx, 0, txscript.StandardVerifyFlags, nil, hashes, in.WitnessUtxo.Value, fetcher)
	require.NoError(t, err)
	require.NoError(t, engine.Execute())
}

func FuzzWithdrawalsSpendTimelockPaths(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))

		covenantKeys := testutil.GenRandomBtcKeys(r, 5)
		p := testutil.GenRandomParams(r, t, 1, covenantKeys, 3)

		stakerSk, stakerPk := testutil.GenRandomBtcKeyPair(r)
		_, fpPk := testutil.GenRandomBtcKeyPair(r)
		stakerAddr := testutil.GenTaprootAddress(t, stakerPk, net)

		info := &types.StakerInfo{
			PublicKeyNoCoordHex: testutil.NoCoordPkHex(stakerPk),
			Address:             stakerAddr.EncodeAddress(),
		}
		inputs := &types.StakingInputs{
			FinalityProviderPksNoCoordHex: []string{testutil.NoCoordPkHex(fpPk)},
			StakingAmountSat:              p.MinStakingAmountSat + r.Int63n(p.MaxStakingAmountSat-p.MinStakingAmountSat+1),
			StakingTimelock:               p.MinStakingTimeBlocks + uint32(r.Intn(int(p.MaxStakingTimeBlocks-p.MinStakingTimeBlocks+1))),
		}
		s, err := staking.NewStaking(net, info, inputs, p)
		require.NoError(t, err)

		utxo := testutil.GenRandomUTXO(r, t, stakerAddr, inputs.StakingAmountSat*2)
		feeRate := int64(r.Intn(20) + 1)
		stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, []*types.UTXO{utxo}, feeRate)
		require.NoError(t, err)

		signStaker := func(tx *wire.MsgTx, hashes *txscript.TxSigHashes, leaf txscript.TapLeaf) []byte {
			prev := stakingRes.Transaction.TxOut[0]
			sig, err := txscript.RawTxInTapscriptSignature(tx, hashes, 0, prev.Value, prev.PkScript, leaf, txscript.SigHashDefault, stakerSk)
			require.NoError(t, err)
			return sig
		}

		withdraw, err := s.CreateWithdrawStakingExpiredPsbt(stakingRes.Transaction, feeRate)
		require.NoError(t, err)
		require.Equal(t, staking.GetWithdrawTxFee(feeRate), withdraw.Fee)
		require.Equal(t, inputs.StakingTimelock, withdraw.Psbt.UnsignedTx.TxIn[0].Sequence)
		require.Equal(t, stakingRes.Transaction.TxOut[0].Value-withdraw.Fee, withdraw.Psbt.UnsignedTx.TxOut[0].Value)
		spendScriptPath(t, withdraw.Psbt, signStaker)
	})
}

func TestWithdrawEarlyUnbondedAndSlashing(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	covenantKeys := testutil.GenRandomBtcKeys(r, 3)
	p := testutil.GenRandomParams(r, t, 1, covenantKeys, 2)

	stakerSk, stakerPk := testutil.GenRandomBtcKeyPair(r)
	_, fpPk := testutil.GenRandomBtcKeyPair(r)
	stakerAddr := testutil.GenTaprootAddress(t, stakerPk, net)

	info := &types.StakerInfo{
		PublicKeyNoCoordHex: testutil.NoCoordPkHex(stakerPk),
		Address:             stakerAddr.EncodeAddress(),
	}
	inputs := &types.StakingInputs{
		FinalityProviderPksNoCoordHex: []string{testutil.NoCoordPkHex(fpPk)},
		StakingAmountSat:              p.MaxStakingAmountSat,
		StakingTimelock:               p.MaxStakingTimeBlocks,
	}
	s, err := staking.NewStaking(net, info, inputs, p)
	require.NoError(t, err)

	utxo := testutil.GenRandomUTXO(r, t, stakerAddr, inputs.StakingAmountSat*2)
	stakingRes, err := s.CreateStakingTransaction(inputs.StakingAmountSat, []*types.UTXO{utxo}, 2)
	require.NoError(t, err)

	unbondingRes, err := s.CreateUnbondingTransaction(stakingRes.Transaction)
	require.NoError(t, err)

	signWith := func(prev *wire.TxOut) func(tx *wire.MsgTx, hashes *txscript.TxSigHashes, leaf txscript.TapLeaf) []byte {
		return func(tx *wire.MsgTx, hashes *txscript.TxSigHashes, leaf txscript.TapLeaf) []byte {
			sig, err := txscript.RawTxInTapscriptSignature(tx, hashes, 0, prev.Value, prev.PkScript, leaf, txscript.SigHashDefault, stakerSk)
			require.NoError(t, err)
			return sig
		}
	}

	withdraw, err := s.CreateWithdrawEarlyUnbondedPsbt(unbondingRes.Transaction, 2)
	require.NoError(t, err)
	// low fee rates pay the estimation buffer
	require.Equal(t, int64(2*(58+43+11+17)+30), withdraw.Fee)
	require.Equal(t, p.UnbondingTime, withdraw.Psbt.UnsignedTx.TxIn[0].Sequence)
	spendScriptPath(t, withdraw.Psbt, signWith(unbondingRes.Transaction.TxOut[0]))

	slashingPsbt, err := s.CreateStakingOutputSlashingPsbt(stakingRes.Transaction)
	require.NoError(t, err)
	slashingTx := slashingPsbt.UnsignedTx

	withdrawSlashed, err := s.CreateWithdrawSlashingPsbt(slashingTx, 3)
	require.NoError(t, err)
	require.Equal(t, slashingTx.TxHash(), withdrawSlashed.Psbt.UnsignedTx.TxIn[0].PreviousOutPoint.Hash)
	require.Equal(t, uint32(1), withdrawSlashed.Psbt.UnsignedTx.TxIn[0].PreviousOutPoint.Index)
	spendScriptPath(t, withdrawSlashed.Psbt, signWith(slashingTx.TxOut[1]))

	// the staking tx has no slashing change output
	_, err = s.CreateWithdrawSlashingPsbt(stakingRes.Transaction, 3)
	require.ErrorIs(t, err, types.ErrInvalidTransaction)

	_, err = s.CreateWithdrawStakingExpiredPsbt(stakingRes.Transaction, 0)
	require.ErrorIs(t, err, types.ErrInvalidFeeRate)
}
