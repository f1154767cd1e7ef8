package types

// SigningStep tells a signer which phase of the protocol a request belongs to.
// It does not change what gets signed.
type SigningStep string

const (
	SigningStepStakingSlashing        SigningStep = "staking-slashing"
	SigningStepUnbondingSlashing      SigningStep = "unbonding-slashing"
	SigningStepProofOfPossession      SigningStep = "proof-of-possession"
	SigningStepCreateBtcDelegationMsg SigningStep = "create-btc-delegation-msg"
	SigningStepStaking                SigningStep = "staking"
	SigningStepUnbonding              SigningStep = "unbonding"
	SigningStepWithdrawStakingExpired SigningStep = "withdraw-staking-expired"
	SigningStepWithdrawEarlyUnbonded  SigningStep = "withdraw-early-unbonded"
	SigningStepWithdrawSlashing       SigningStep = "withdraw-slashing"
)

// AllSigningSteps lists every step in protocol order.
var AllSigningSteps = []SigningStep{
	SigningStepStakingSlashing,
	SigningStepUnbondingSlashing,
	SigningStepProofOfPossession,
	SigningStepCreateBtcDelegationMsg,
	SigningStepStaking,
	SigningStepUnbonding,
	SigningStepWithdrawStakingExpired,
	SigningStepWithdrawEarlyUnbonded,
	SigningStepWithdrawSlashing,
}

func (s SigningStep) String() string {
	return string(s)
}

// MessageSigType is the message signing scheme requested from the BTC signer.
type MessageSigType string

const (
	MessageSigTypeECDSA        MessageSigType = "ecdsa"
	MessageSigTypeBIP322Simple MessageSigType = "bip322-simple"
)

// BTCSigType mirrors the settlement chain enum of proof-of-possession signatures.
type BTCSigType int32

const (
	BTCSigTypeBIP340 BTCSigType = 0
	BTCSigTypeBIP322 BTCSigType = 1
	BTCSigTypeECDSA  BTCSigType = 2
)

func (t BTCSigType) String() string {
	switch t {
	case BTCSigTypeBIP340:
		return "BIP340"
	case BTCSigTypeBIP322:
		return "BIP322"
	case BTCSigTypeECDSA:
		return "ECDSA"
	default:
		return "UNKNOWN"
	}
}
