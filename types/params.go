package types

import (
	"encoding/hex"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// VersionedStakingParams is a set of staking parameters that is active from
// BtcActivationHeight until the next version activates.
type VersionedStakingParams struct {
	Version             uint32
	BtcActivationHeight uint32

	// x-only public keys of the covenant committee, hex encoded
	CovenantNoCoordPks []string
	CovenantQuorum     uint32

	MinStakingAmountSat  int64
	MaxStakingAmountSat  int64
	MinStakingTimeBlocks uint32
	MaxStakingTimeBlocks uint32

	UnbondingTime   uint32
	UnbondingFeeSat int64

	Slashing *SlashingParams
}

type SlashingParams struct {
	SlashingPkScriptHex string
	SlashingRate        sdkmath.LegacyDec
	MinSlashingTxFeeSat int64
}

// Validate checks that the parameters are internally consistent.
func (p *VersionedStakingParams) Validate() error {
	if len(p.CovenantNoCoordPks) == 0 {
		return ErrInvalidParams.Wrapf("version %d: no covenant public keys", p.Version)
	}
	if _, err := p.CovenantPks(); err != nil {
		return ErrInvalidParams.Wrapf("version %d: %v", p.Version, err)
	}
	if p.CovenantQuorum == 0 || int(p.CovenantQuorum) > len(p.CovenantNoCoordPks) {
		return ErrInvalidParams.Wrapf("version %d: covenant quorum %d out of range for %d keys",
			p.Version, p.CovenantQuorum, len(p.CovenantNoCoordPks))
	}
	if p.MinStakingAmountSat <= 0 || p.MinStakingAmountSat > p.MaxStakingAmountSat {
		return ErrInvalidParams.Wrapf("version %d: invalid staking amount range [%d, %d]",
			p.Version, p.MinStakingAmountSat, p.MaxStakingAmountSat)
	}
	if p.MinStakingTimeBlocks == 0 || p.MinStakingTimeBlocks > p.MaxStakingTimeBlocks {
		return ErrInvalidParams.Wrapf("version %d: invalid staking time range [%d, %d]",
			p.Version, p.MinStakingTimeBlocks, p.MaxStakingTimeBlocks)
	}
	if p.UnbondingTime == 0 {
		return ErrInvalidParams.Wrapf("version %d: unbonding time must be positive", p.Version)
	}
	if p.UnbondingFeeSat <= 0 {
		return ErrInvalidParams.Wrapf("version %d: unbonding fee must be positive", p.Version)
	}
	if p.Slashing == nil {
		return ErrInvalidParams.Wrapf("version %d: missing slashing params", p.Version)
	}

	return p.Slashing.Validate()
}

func (s *SlashingParams) Validate() error {
	if s.SlashingRate.IsNil() || !s.SlashingRate.IsPositive() || s.SlashingRate.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("slashing rate must be in (0, 1)")
	}
	if s.MinSlashingTxFeeSat <= 0 {
		return ErrInvalidParams.Wrap("min slashing tx fee must be positive")
	}
	if _, err := s.SlashingPkScript(); err != nil {
		return ErrInvalidParams.Wrapf("invalid slashing pk script: %v", err)
	}

	return nil
}

func (s *SlashingParams) SlashingPkScript() ([]byte, error) {
	bz, err := hex.DecodeString(s.SlashingPkScriptHex)
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return bz, nil
}

// CovenantPks parses the covenant committee keys in the order they were given.
func (p *VersionedStakingParams) CovenantPks() ([]*btcec.PublicKey, error) {
	pks := make([]*btcec.PublicKey, 0, len(p.CovenantNoCoordPks))
	for _, pkHex := range p.CovenantNoCoordPks {
		pk, err := ParseNoCoordPk(pkHex)
		if err != nil {
			return nil, fmt.Errorf("invalid covenant public key %s: %w", pkHex, err)
		}
		pks = append(pks, pk)
	}
	return pks, nil
}

// ParseNoCoordPk parses a hex encoded 32-byte x-only public key.
func ParseNoCoordPk(pkHex string) (*btcec.PublicKey, error) {
	bz, err := hex.DecodeString(pkHex)
	if err != nil {
		return nil, err
	}
	if len(bz) != schnorr.PubKeyBytesLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", schnorr.PubKeyBytesLen, len(bz))
	}
	return schnorr.ParsePubKey(bz)
}
