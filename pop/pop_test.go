package pop_test

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/pop"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

func TestContextHash(t *testing.T) {
	h := sha256.Sum256([]byte("btcstaking/0/staker_pop/bbn-test-5/bbn13837feaxn8t0zvwcjwhw7lhpgdcx4s36eqteah"))
	require.Equal(t, hex.EncodeToString(h[:]), pop.ContextHash("bbn-test-5", 0))

	require.NotEqual(t, pop.ContextHash("bbn-test-5", 0), pop.ContextHash("bbn-test-5", 1))
	require.NotEqual(t, pop.ContextHash("bbn-test-5", 0), pop.ContextHash("bbn-1", 0))
}

func FuzzBuildMessage(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		address := testutil.RegistrationBabylonAddress
		chainID := "chain-" + testutil.GenRandomHexStr(r, 4)
		version := uint32(r.Intn(3))
		upgradeHeight := uint64(r.Int63n(1000))
		upgrade := &pop.UpgradeConfig{UpgradeHeight: upgradeHeight, Version: version}
		upgraded := pop.ContextHash(chainID, version) + address

		below := upgradeHeight - 1
		at := upgradeHeight
		above := upgradeHeight + uint64(r.Int63n(1000)) + 1

		if upgradeHeight > 0 {
			require.Equal(t, address, pop.BuildMessage(address, &below, chainID, upgrade))
		}
		require.Equal(t, upgraded, pop.BuildMessage(address, &at, chainID, upgrade))
		require.Equal(t, upgraded, pop.BuildMessage(address, &above, chainID, upgrade))

		// missing inputs fall back to the legacy format
		require.Equal(t, address, pop.BuildMessage(address, nil, chainID, upgrade))
		require.Equal(t, address, pop.BuildMessage(address, &above, "", upgrade))
		require.Equal(t, address, pop.BuildMessage(address, &above, chainID, nil))
	})
}

func TestBuildMessageUpgradeAtGenesis(t *testing.T) {
	var height uint64
	upgrade := &pop.UpgradeConfig{}
	msg := pop.BuildMessage("bbn1abc", &height, "bbn-1", upgrade)
	require.Equal(t, pop.ContextHash("bbn-1", 0)+"bbn1abc", msg)
	require.Len(t, msg, 64+len("bbn1abc"))
}

func TestProofOfPossessionFixtures(t *testing.T) {
	for _, tc := range testutil.RegistrationFixtures {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			signType, sigType := pop.SigTypeForAddress(tc.StakerInfo.Address, &chaincfg.SigNetParams)
			require.Equal(t, tc.SignType, signType)
			require.Equal(t, tc.DelegationMsg.BtcSigType, sigType)

			p, err := pop.BuildProofOfPossession(sigType, tc.StakerInfo.Address, tc.SignedBabylonAddress)
			require.NoError(t, err)
			require.Equal(t, tc.DelegationMsg.BtcSigType, p.BtcSigType)
			require.Equal(t, tc.DelegationMsg.BtcSig, base64.StdEncoding.EncodeToString(p.BtcSig))
		})
	}
}

func TestBuildProofOfPossessionInvalidSignature(t *testing.T) {
	_, err := pop.BuildProofOfPossession(types.BTCSigTypeECDSA, "", "not base64!")
	require.ErrorIs(t, err, types.ErrInvalidSignature)
}
