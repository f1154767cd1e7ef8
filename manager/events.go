package manager

import (
	"github.com/babylonchain/btc-staking-manager/types"
)

func (m *Manager) emit(channel types.EventChannel, ev *types.ManagerEvent) {
	if m.events == nil {
		return
	}
	m.events.OnEvent(channel, ev)
}

func stakingEvent(
	evType types.EventType,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
) *types.ManagerEvent {
	return &types.ManagerEvent{
		Type:                evType,
		StakerPkNoCoordHex:  stakerInfo.PublicKeyNoCoordHex,
		FinalityProviders:   inputs.FinalityProviderPksNoCoordHex,
		CovenantPks:         p.CovenantNoCoordPks,
		CovenantThreshold:   p.CovenantQuorum,
		StakingDuration:     inputs.StakingTimelock,
		UnbondingTimeBlocks: p.UnbondingTime,
	}
}

// slashingEvent describes the slashing PSBT signed at registration. The
// unbonding output slashing carries the unbonding fee instead of the staking
// duration.
func slashingEvent(
	evType types.EventType,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
) *types.ManagerEvent {
	ev := stakingEvent(evType, stakerInfo, inputs, p)
	if evType == types.EventTypeUnbondingSlashing {
		ev.StakingDuration = 0
		ev.UnbondingFeeSat = p.UnbondingFeeSat
	}
	if p.Slashing != nil {
		ev.SlashingFeeSat = p.Slashing.MinSlashingTxFeeSat
		ev.SlashingPkScriptHex = p.Slashing.SlashingPkScriptHex
	}
	return ev
}

func withdrawEvent(
	step types.SigningStep,
	stakerInfo *types.StakerInfo,
	inputs *types.StakingInputs,
	p *types.VersionedStakingParams,
) *types.ManagerEvent {
	ev := &types.ManagerEvent{
		StakerPkNoCoordHex: stakerInfo.PublicKeyNoCoordHex,
		TimelockBlocks:     p.UnbondingTime,
	}
	switch step {
	case types.SigningStepWithdrawStakingExpired:
		ev.Type = types.EventTypeWithdrawStakingExpired
		ev.TimelockBlocks = inputs.StakingTimelock
	case types.SigningStepWithdrawEarlyUnbonded:
		ev.Type = types.EventTypeWithdrawEarlyUnbonded
	default:
		ev.Type = types.EventTypeWithdrawSlashing
	}
	return ev
}
