package testutil

import (
	"context"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/mock/gomock"

	"github.com/babylonchain/btc-staking-manager/testutil/mocks"
	"github.com/babylonchain/btc-staking-manager/types"
)

// PrepareMockedBtcProvider returns a BTC provider answering the signing
// requests of a registration with the signatures of the fixture. The requests
// are expected in protocol order.
func PrepareMockedBtcProvider(t *testing.T, fixture *RegistrationFixture) *mocks.MockBtcProvider {
	ctl := gomock.NewController(t)
	mockBtcProvider := mocks.NewMockBtcProvider(ctl)

	gomock.InOrder(
		mockBtcProvider.EXPECT().
			SignPsbt(gomock.Any(), types.SigningStepStakingSlashing, fixture.SlashingPsbtHex).
			Return(fixture.SignedSlashingPsbtHex, nil),
		mockBtcProvider.EXPECT().
			SignPsbt(gomock.Any(), types.SigningStepUnbondingSlashing, fixture.UnbondingSlashingPsbtHex).
			Return(fixture.SignedUnbondingSlashingPsbtHex, nil),
		mockBtcProvider.EXPECT().
			SignMessage(gomock.Any(), types.SigningStepProofOfPossession, RegistrationBabylonAddress, fixture.SignType).
			Return(fixture.SignedBabylonAddress, nil),
	)

	return mockBtcProvider
}

// PrepareMockedBabylonProvider returns a Babylon provider that hands every
// delegation message to capture and answers with signedTx.
func PrepareMockedBabylonProvider(t *testing.T, signedTx []byte, capture func(*types.EncodeObject)) *mocks.MockBabylonProvider {
	ctl := gomock.NewController(t)
	mockBabylonProvider := mocks.NewMockBabylonProvider(ctl)

	mockBabylonProvider.EXPECT().
		SignTransaction(gomock.Any(), types.SigningStepCreateBtcDelegationMsg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ types.SigningStep, msg *types.EncodeObject) ([]byte, error) {
			if capture != nil {
				capture(msg)
			}
			return signedTx, nil
		}).
		Times(1)

	return mockBabylonProvider
}

// TxHashWithoutScriptSigs is the txid of tx with every scriptSig cleared.
// Legacy inputs sign in the scriptSig, which is part of the txid, so only
// this hash survives their signing.
func TxHashWithoutScriptSigs(tx *wire.MsgTx) chainhash.Hash {
	stripped := tx.Copy()
	for _, in := range stripped.TxIn {
		in.SignatureScript = nil
	}
	return stripped.TxHash()
}
