package params

import (
	"sort"

	"github.com/babylonchain/btc-staking-manager/types"
)

// Registry holds the versioned staking parameters ordered by version. It is
// read-only after construction and safe for concurrent use.
type Registry struct {
	params []*types.VersionedStakingParams
}

// NewRegistry validates the given parameters and builds a registry. Activation
// heights must not decrease as versions increase; a list violating this is
// rejected rather than reordered.
func NewRegistry(params []*types.VersionedStakingParams) (*Registry, error) {
	if len(params) == 0 {
		return nil, types.ErrNoParameters
	}

	sorted := make([]*types.VersionedStakingParams, 0, len(params))
	for _, p := range params {
		if p == nil {
			return nil, types.ErrInvalidParams.Wrap("nil params entry")
		}
		sorted = append(sorted, p)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})

	for i, p := range sorted {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if prev.Version == p.Version {
			return nil, types.ErrInvalidParams.Wrapf("duplicate params version %d", p.Version)
		}
		if p.BtcActivationHeight < prev.BtcActivationHeight {
			return nil, types.ErrInvalidParams.Wrapf(
				"activation height of version %d (%d) is lower than version %d (%d)",
				p.Version, p.BtcActivationHeight, prev.Version, prev.BtcActivationHeight)
		}
	}

	return &Registry{params: sorted}, nil
}

// ByHeight returns the parameters with the greatest activation height not
// above the given BTC height.
func (r *Registry) ByHeight(height uint64) (*types.VersionedStakingParams, error) {
	if height == 0 {
		return nil, types.ErrParamsNotFound.Wrapf("height %d", height)
	}

	// activation heights are non-decreasing, so the last match wins
	for i := len(r.params) - 1; i >= 0; i-- {
		if uint64(r.params[i].BtcActivationHeight) <= height {
			return r.params[i], nil
		}
	}

	return nil, types.ErrParamsNotFound.Wrapf("height %d", height)
}

// ByVersion returns the parameters with the exact version.
func (r *Registry) ByVersion(version uint32) (*types.VersionedStakingParams, error) {
	i := sort.Search(len(r.params), func(i int) bool {
		return r.params[i].Version >= version
	})
	if i < len(r.params) && r.params[i].Version == version {
		return r.params[i], nil
	}

	return nil, types.ErrParamsNotFound.Wrapf("version %d", version)
}

func (r *Registry) Latest() *types.VersionedStakingParams {
	return r.params[len(r.params)-1]
}

// All returns the parameters ordered by version.
func (r *Registry) All() []*types.VersionedStakingParams {
	res := make([]*types.VersionedStakingParams, len(r.params))
	copy(res, r.params)
	return res
}
