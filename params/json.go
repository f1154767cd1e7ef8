package params

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	sdkmath "cosmossdk.io/math"

	"github.com/babylonchain/btc-staking-manager/types"
)

// jsonInt accepts both JSON numbers and decimal strings, as REST gateways
// render 64-bit integers as strings.
type jsonInt int64

func (i *jsonInt) UnmarshalJSON(bz []byte) error {
	s := string(bytes.Trim(bz, `"`))
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(bz), err)
	}
	*i = jsonInt(v)
	return nil
}

// ParamsJSON is a single set of staking params in the Babylon JSON shape.
type ParamsJSON struct {
	Version             jsonInt  `json:"version"`
	BtcActivationHeight jsonInt  `json:"btc_activation_height"`
	CovenantPks         []string `json:"covenant_pks"`
	CovenantQuorum      jsonInt  `json:"covenant_quorum"`
	MinStakingValueSat  jsonInt  `json:"min_staking_value_sat"`
	MaxStakingValueSat  jsonInt  `json:"max_staking_value_sat"`
	MinStakingTimeBlock jsonInt  `json:"min_staking_time_blocks"`
	MaxStakingTimeBlock jsonInt  `json:"max_staking_time_blocks"`
	SlashingPkScript    string   `json:"slashing_pk_script"`
	MinSlashingTxFeeSat jsonInt  `json:"min_slashing_tx_fee_sat"`
	SlashingRate        string   `json:"slashing_rate"`
	UnbondingTimeBlocks jsonInt  `json:"unbonding_time_blocks"`
	UnbondingFeeSat     jsonInt  `json:"unbonding_fee_sat"`
}

// versionedParamsJSON is an entry of the params_versions query response,
// where the version sits next to the params.
type versionedParamsJSON struct {
	Version *jsonInt    `json:"version"`
	Params  *ParamsJSON `json:"params"`
}

// ParseJSON decodes staking params from either a bare JSON array or an
// object with a "params" array.
func ParseJSON(bz []byte) ([]*types.VersionedStakingParams, error) {
	bz = bytes.TrimSpace(bz)
	if len(bz) == 0 {
		return nil, types.ErrNoParameters
	}

	var raw []json.RawMessage
	if bz[0] == '[' {
		if err := json.Unmarshal(bz, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode params list: %w", err)
		}
	} else {
		var wrapper struct {
			Params []json.RawMessage `json:"params"`
		}
		if err := json.Unmarshal(bz, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode params object: %w", err)
		}
		raw = wrapper.Params
	}

	if len(raw) == 0 {
		return nil, types.ErrNoParameters
	}

	res := make([]*types.VersionedStakingParams, 0, len(raw))
	for i, entry := range raw {
		p, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("params entry %d: %w", i, err)
		}
		res = append(res, p)
	}

	return res, nil
}

// LoadFile reads staking params from a JSON file.
func LoadFile(path string) ([]*types.VersionedStakingParams, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file %s: %w", path, err)
	}
	return ParseJSON(bz)
}

func parseEntry(entry json.RawMessage) (*types.VersionedStakingParams, error) {
	var nested versionedParamsJSON
	if err := json.Unmarshal(entry, &nested); err != nil {
		return nil, err
	}

	var pj ParamsJSON
	if nested.Params != nil {
		pj = *nested.Params
		if nested.Version != nil {
			pj.Version = *nested.Version
		}
	} else if err := json.Unmarshal(entry, &pj); err != nil {
		return nil, err
	}

	return pj.ToParams()
}

func (pj *ParamsJSON) ToParams() (*types.VersionedStakingParams, error) {
	rate, err := sdkmath.LegacyNewDecFromStr(pj.SlashingRate)
	if err != nil {
		return nil, fmt.Errorf("invalid slashing rate %q: %w", pj.SlashingRate, err)
	}

	script, err := decodeScript(pj.SlashingPkScript)
	if err != nil {
		return nil, err
	}

	p := &types.VersionedStakingParams{
		Version:              uint32(pj.Version),
		BtcActivationHeight:  uint32(pj.BtcActivationHeight),
		CovenantNoCoordPks:   pj.CovenantPks,
		CovenantQuorum:       uint32(pj.CovenantQuorum),
		MinStakingAmountSat:  int64(pj.MinStakingValueSat),
		MaxStakingAmountSat:  int64(pj.MaxStakingValueSat),
		MinStakingTimeBlocks: uint32(pj.MinStakingTimeBlock),
		MaxStakingTimeBlocks: uint32(pj.MaxStakingTimeBlock),
		UnbondingTime:        uint32(pj.UnbondingTimeBlocks),
		UnbondingFeeSat:      int64(pj.UnbondingFeeSat),
		Slashing: &types.SlashingParams{
			SlashingPkScriptHex: hex.EncodeToString(script),
			SlashingRate:        rate,
			MinSlashingTxFeeSat: int64(pj.MinSlashingTxFeeSat),
		},
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// FromParams renders params back into the Babylon JSON shape.
func FromParams(p *types.VersionedStakingParams) *ParamsJSON {
	return &ParamsJSON{
		Version:             jsonInt(p.Version),
		BtcActivationHeight: jsonInt(p.BtcActivationHeight),
		CovenantPks:         p.CovenantNoCoordPks,
		CovenantQuorum:      jsonInt(p.CovenantQuorum),
		MinStakingValueSat:  jsonInt(p.MinStakingAmountSat),
		MaxStakingValueSat:  jsonInt(p.MaxStakingAmountSat),
		MinStakingTimeBlock: jsonInt(p.MinStakingTimeBlocks),
		MaxStakingTimeBlock: jsonInt(p.MaxStakingTimeBlocks),
		SlashingPkScript:    p.Slashing.SlashingPkScriptHex,
		MinSlashingTxFeeSat: jsonInt(p.Slashing.MinSlashingTxFeeSat),
		SlashingRate:        p.Slashing.SlashingRate.String(),
		UnbondingTimeBlocks: jsonInt(p.UnbondingTime),
		UnbondingFeeSat:     jsonInt(p.UnbondingFeeSat),
	}
}

// decodeScript accepts hex, which is what wallets use, and falls back to
// base64, which is what the chain REST API returns.
func decodeScript(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("empty slashing pk script")
	}
	if bz, err := hex.DecodeString(s); err == nil {
		return bz, nil
	}
	bz, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("slashing pk script is neither hex nor base64: %s", s)
	}
	return bz, nil
}
