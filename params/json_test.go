package params_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/testutil"
	"github.com/babylonchain/btc-staking-manager/types"
)

func TestParseFixtureParams(t *testing.T) {
	all, err := params.ParseJSON([]byte(testutil.RegistrationParamsJSON))
	require.NoError(t, err)
	require.Len(t, all, 5)

	p := all[0]
	require.Equal(t, uint32(0), p.Version)
	require.Equal(t, uint32(857910), p.BtcActivationHeight)
	require.Len(t, p.CovenantNoCoordPks, 9)
	require.Equal(t, uint32(6), p.CovenantQuorum)
	require.Equal(t, int64(500000), p.MinStakingAmountSat)
	require.Equal(t, uint32(64000), p.MinStakingTimeBlocks)
	require.Equal(t, uint32(1008), p.UnbondingTime)
	require.Equal(t, int64(64000), p.UnbondingFeeSat)
	require.Equal(t, "6a07626162796c6f6e", p.Slashing.SlashingPkScriptHex)
	require.Equal(t, "0.001000000000000000", p.Slashing.SlashingRate.String())
}

// the params_versions query nests the params next to the version, renders
// integers as strings and scripts in base64
func TestParseQueryResponse(t *testing.T) {
	body := `{
  "params": [
    {
      "version": "3",
      "params": {
        "covenant_pks": ["d45c70d28f169e1f0c7f4a78e2bc73497afe585b70aa897955989068f3350aaa"],
        "covenant_quorum": 1,
        "min_staking_value_sat": "10000",
        "max_staking_value_sat": "10000000",
        "min_staking_time_blocks": 10,
        "max_staking_time_blocks": 65535,
        "slashing_pk_script": "agdiYWJ5bG9u",
        "min_slashing_tx_fee_sat": "1000",
        "slashing_rate": "0.100000000000000000",
        "unbonding_time_blocks": 101,
        "unbonding_fee_sat": "1000",
        "btc_activation_height": 100
      }
    }
  ]
}`
	all, err := params.ParseJSON([]byte(body))
	require.NoError(t, err)
	require.Len(t, all, 1)

	p := all[0]
	require.Equal(t, uint32(3), p.Version)
	require.Equal(t, uint32(100), p.BtcActivationHeight)
	require.Equal(t, int64(10000), p.MinStakingAmountSat)
	require.Equal(t, "6a07626162796c6f6e", p.Slashing.SlashingPkScriptHex)
}

func TestParseInvalidParams(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"empty", ``},
		{"empty list", `[]`},
		{"empty object", `{"params": []}`},
		{"not json", `params`},
		{"bad rate", `[{"version": 0, "covenant_pks": ["d45c70d28f169e1f0c7f4a78e2bc73497afe585b70aa897955989068f3350aaa"], "covenant_quorum": 1, "min_staking_value_sat": 1, "max_staking_value_sat": 2, "min_staking_time_blocks": 1, "max_staking_time_blocks": 2, "slashing_pk_script": "6a", "min_slashing_tx_fee_sat": 1, "slashing_rate": "one", "unbonding_time_blocks": 1, "unbonding_fee_sat": 1}]`},
		{"bad script", `[{"version": 0, "covenant_pks": ["d45c70d28f169e1f0c7f4a78e2bc73497afe585b70aa897955989068f3350aaa"], "covenant_quorum": 1, "min_staking_value_sat": 1, "max_staking_value_sat": 2, "min_staking_time_blocks": 1, "max_staking_time_blocks": 2, "slashing_pk_script": "!!", "min_slashing_tx_fee_sat": 1, "slashing_rate": "0.1", "unbonding_time_blocks": 1, "unbonding_fee_sat": 1}]`},
		{"quorum above committee", `[{"version": 0, "covenant_pks": ["d45c70d28f169e1f0c7f4a78e2bc73497afe585b70aa897955989068f3350aaa"], "covenant_quorum": 2, "min_staking_value_sat": 1, "max_staking_value_sat": 2, "min_staking_time_blocks": 1, "max_staking_time_blocks": 2, "slashing_pk_script": "6a", "min_slashing_tx_fee_sat": 1, "slashing_rate": "0.1", "unbonding_time_blocks": 1, "unbonding_fee_sat": 1}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := params.ParseJSON([]byte(tc.body))
			require.Error(t, err)
		})
	}

	_, err := params.ParseJSON(nil)
	require.ErrorIs(t, err, types.ErrNoParameters)
}

func FuzzParamsJSON(f *testing.F) {
	testutil.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		list := genParamsList(r, t, r.Intn(4)+1)

		rendered := make([]*params.ParamsJSON, 0, len(list))
		for _, p := range list {
			rendered = append(rendered, params.FromParams(p))
		}
		bz, err := json.Marshal(rendered)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), fmt.Sprintf("params-%d.json", seed))
		require.NoError(t, os.WriteFile(path, bz, 0600))
		parsed, err := params.LoadFile(path)
		require.NoError(t, err)
		require.Len(t, parsed, len(list))

		for i, p := range parsed {
			require.Equal(t, rendered[i], params.FromParams(p))
		}
	})
}
