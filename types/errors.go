package types

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleCodespace = "stakingmanager"

var (
	ErrNoParameters          = errorsmod.Register(ModuleCodespace, 2, "no staking parameters provided")
	ErrParamsNotFound        = errorsmod.Register(ModuleCodespace, 3, "babylon params not found")
	ErrInvalidParams         = errorsmod.Register(ModuleCodespace, 4, "invalid staking parameters")
	ErrInvalidTipHeight      = errorsmod.Register(ModuleCodespace, 5, "babylon BTC tip height cannot be 0")
	ErrNoInputs              = errorsmod.Register(ModuleCodespace, 6, "no input UTXOs provided")
	ErrInvalidBabylonAddress = errorsmod.Register(ModuleCodespace, 7, "invalid babylon address")
	ErrInvalidStakingInput   = errorsmod.Register(ModuleCodespace, 8, "invalid staking input")
	ErrInvalidFeeRate        = errorsmod.Register(ModuleCodespace, 9, "invalid fee rate")
	ErrInsufficientFunds     = errorsmod.Register(ModuleCodespace, 10, "insufficient funds")
	ErrInvalidTransaction    = errorsmod.Register(ModuleCodespace, 11, "invalid transaction")
	ErrInvalidSignature      = errorsmod.Register(ModuleCodespace, 12, "invalid signature")

	// the errors below indicate a desync between the caller state and the protocol state
	ErrStakingOutputNotFound             = errorsmod.Register(ModuleCodespace, 20, "staking output not found in the staking transaction")
	ErrUnbondingTxMismatch               = errorsmod.Register(ModuleCodespace, 21, "unbonding transaction hash does not match the computed hash")
	ErrMissingSlashingSignature          = errorsmod.Register(ModuleCodespace, 22, "no signature found in the staking output slashing PSBT")
	ErrMissingUnbondingSlashingSignature = errorsmod.Register(ModuleCodespace, 23, "no signature found in the unbonding output slashing PSBT")

	ErrInvalidCovenantSignature       = errorsmod.Register(ModuleCodespace, 30, "invalid covenant signature")
	ErrUnknownCovenantMember          = errorsmod.Register(ModuleCodespace, 31, "covenant signature from a key that is not in the covenant committee")
	ErrInsufficientCovenantSignatures = errorsmod.Register(ModuleCodespace, 32, "not enough covenant signatures to reach the quorum")

	ErrInvalidInclusionProof = errorsmod.Register(ModuleCodespace, 40, "invalid inclusion proof")
	ErrUnsupportedAddress    = errorsmod.Register(ModuleCodespace, 41, "unsupported address type")
)
