package store_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/store"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

// FuzzParamsStore tests params are saved, listed and deleted properly
func FuzzParamsStore(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		s, err := store.NewParamsStore(testutil.CreateTestBackend(t))
		require.NoError(t, err)

		covenantKeys := testutil.GenRandomBtcKeys(r, 3)
		num := r.Intn(5) + 1
		list := make([]*types.VersionedStakingParams, 0, num)
		for v := 0; v < num; v++ {
			list = append(list, testutil.GenRandomParams(r, t, uint32(v), covenantKeys, 2))
		}
		randIndex := r.Intn(num)

		// Initially the version shouldn't exist
		_, err = s.GetParams(list[randIndex].Version)
		require.ErrorIs(t, err, store.ErrParamsNotFound)

		// Save in reverse order, the listing is still ordered by version
		for i := num - 1; i >= 0; i-- {
			require.NoError(t, s.PutParams(list[i]))
			// Storing it again should be a no-op
			require.NoError(t, s.PutParams(list[i]))
		}

		stored, err := s.ListParams()
		require.NoError(t, err)
		require.Len(t, stored, num)
		for i, p := range stored {
			require.Equal(t, params.FromParams(list[i]), params.FromParams(p))
		}

		p, err := s.GetParams(list[randIndex].Version)
		require.NoError(t, err)
		require.Equal(t, params.FromParams(list[randIndex]), params.FromParams(p))

		registry, err := s.Registry()
		require.NoError(t, err)
		require.Equal(t, list[num-1].Version, registry.Latest().Version)

		// a stored version cannot be changed
		changed := *list[randIndex]
		changed.UnbondingFeeSat++
		require.ErrorIs(t, s.PutParams(&changed), store.ErrConflictingParams)

		require.NoError(t, s.DeleteParams(list[randIndex].Version))
		_, err = s.GetParams(list[randIndex].Version)
		require.ErrorIs(t, err, store.ErrParamsNotFound)
		require.ErrorIs(t, s.DeleteParams(list[randIndex].Version), store.ErrParamsNotFound)

		stored, err = s.ListParams()
		require.NoError(t, err)
		require.Len(t, stored, num-1)
	})
}

func TestPutInvalidParams(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s, err := store.NewParamsStore(testutil.CreateTestBackend(t))
	require.NoError(t, err)

	p := testutil.GenRandomParams(r, t, 0, testutil.GenRandomBtcKeys(r, 2), 1)
	p.CovenantQuorum = 3
	require.ErrorIs(t, s.PutParams(p), types.ErrInvalidParams)

	_, err = s.Registry()
	require.ErrorIs(t, err, types.ErrNoParameters)
}
