package types

// EventChannel groups the events of one delegation flow.
type EventChannel string

const (
	EventChannelCreate   EventChannel = "delegation:create"
	EventChannelRegister EventChannel = "delegation:register"
	EventChannelStake    EventChannel = "delegation:stake"
	EventChannelUnbond   EventChannel = "delegation:unbond"
	EventChannelWithdraw EventChannel = "delegation:withdraw"
)

type EventType string

const (
	EventTypeStakingSlashing        EventType = "staking-slashing"
	EventTypeUnbondingSlashing      EventType = "unbonding-slashing"
	EventTypeProofOfPossession      EventType = "proof-of-possession"
	EventTypeCreateBtcDelegationMsg EventType = "create-btc-delegation-msg"
	EventTypeStaking                EventType = "staking"
	EventTypeUnbonding              EventType = "unbonding"
	EventTypeWithdrawEarlyUnbonded  EventType = "early-unbonded"
	EventTypeWithdrawStakingExpired EventType = "staking-expired"
	EventTypeWithdrawSlashing       EventType = "slashing"
)

// ManagerEvent describes the request the manager is about to make, so that
// a wallet can show the staker what is being signed. Only the fields
// relevant to Type are set.
type ManagerEvent struct {
	Type EventType `json:"type"`

	StakerPkNoCoordHex  string   `json:"stakerPk,omitempty"`
	FinalityProviders   []string `json:"finalityProviders,omitempty"`
	CovenantPks         []string `json:"covenantPks,omitempty"`
	CovenantThreshold   uint32   `json:"covenantThreshold,omitempty"`
	StakingDuration     uint32   `json:"stakingDuration,omitempty"`
	UnbondingTimeBlocks uint32   `json:"unbondingTimeBlocks,omitempty"`
	UnbondingFeeSat     int64    `json:"unbondingFeeSat,omitempty"`
	SlashingFeeSat      int64    `json:"slashingFeeSat,omitempty"`
	SlashingPkScriptHex string   `json:"slashingPkScriptHex,omitempty"`
	TimelockBlocks      uint32   `json:"timelockBlocks,omitempty"`
	Bech32Address       string   `json:"bech32Address,omitempty"`
}
