package manager

//go:generate mockgen -source=providers.go -package mocks -destination ../testutil/mocks/providers.go

import (
	"context"

	"github.com/babylonchain/btc-staking-manager/types"
)

// BtcProvider signs on behalf of the staker on the Bitcoin side. The step
// tells the signer which part of the protocol the request belongs to.
type BtcProvider interface {
	// SignPsbt returns the hex encoded PSBT with the staker signatures added.
	// The PSBT may be returned finalized or not.
	SignPsbt(ctx context.Context, step types.SigningStep, psbtHex string) (string, error)
	// SignMessage returns the base64 encoded signature of the message.
	SignMessage(ctx context.Context, step types.SigningStep, message string, sigType types.MessageSigType) (string, error)
}

// BabylonProvider signs transactions for the Babylon chain.
type BabylonProvider interface {
	SignTransaction(ctx context.Context, step types.SigningStep, msg *types.EncodeObject) ([]byte, error)
}

// ChainInfoProvider may be implemented by a BabylonProvider. It is required
// for the context-prefixed proof of possession format.
type ChainInfoProvider interface {
	GetChainID(ctx context.Context) (string, error)
	GetCurrentHeight(ctx context.Context) (uint64, error)
}

// EventListener is notified before each request sent to the providers.
// Handlers are called synchronously and must not block.
type EventListener interface {
	OnEvent(channel types.EventChannel, ev *types.ManagerEvent)
}
