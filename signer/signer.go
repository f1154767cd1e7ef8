// Package signer implements a BTC signer backed by a single private key held
// in memory. It serves the command line tools and tests, wallets provide their
// own implementation.
package signer

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/types"
)

type AddressType string

const (
	AddressTypeTaproot      AddressType = "taproot"
	AddressTypeNativeSegwit AddressType = "native-segwit"
	AddressTypeLegacy       AddressType = "legacy"
)

const (
	defaultTaprootSigHash    = txscript.SigHashDefault
	defaultSegwitSigHashType = txscript.SigHashAll
)

// LocalSigner signs PSBTs and messages with one key. The key is used as the
// staker key in scripts and as the key of the staker address.
type LocalSigner struct {
	privKey *btcec.PrivateKey
	net     *chaincfg.Params
	address btcutil.Address
	logger  *zap.Logger
}

func NewLocalSigner(privKey *btcec.PrivateKey, addressType AddressType, net *chaincfg.Params, logger *zap.Logger) (*LocalSigner, error) {
	address, err := deriveAddress(privKey.PubKey(), addressType, net)
	if err != nil {
		return nil, err
	}

	return &LocalSigner{
		privKey: privKey,
		net:     net,
		address: address,
		logger:  logger,
	}, nil
}

// NewLocalSignerFromWIF loads the key from its wallet import format.
func NewLocalSignerFromWIF(wif string, addressType AddressType, net *chaincfg.Params, logger *zap.Logger) (*LocalSigner, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return nil, fmt.Errorf("invalid WIF: %w", err)
	}
	if !decoded.IsForNet(net) {
		return nil, fmt.Errorf("the WIF key does not belong to %s", net.Name)
	}
	return NewLocalSigner(decoded.PrivKey, addressType, net, logger)
}

func deriveAddress(pk *btcec.PublicKey, addressType AddressType, net *chaincfg.Params) (btcutil.Address, error) {
	switch addressType {
	case AddressTypeTaproot:
		outputKey := txscript.ComputeTaprootKeyNoScript(pk)
		return btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), net)
	case AddressTypeNativeSegwit:
		return btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pk.SerializeCompressed()), net)
	case AddressTypeLegacy:
		return btcutil.NewAddressPubKeyHash(btcutil.Hash160(pk.SerializeCompressed()), net)
	default:
		return nil, errorsmod.Wrapf(types.ErrUnsupportedAddress, "unknown address type %q", addressType)
	}
}

func (s *LocalSigner) Address() string {
	return s.address.EncodeAddress()
}

func (s *LocalSigner) PublicKey() *btcec.PublicKey {
	return s.privKey.PubKey()
}

func (s *LocalSigner) PublicKeyNoCoordHex() string {
	return hex.EncodeToString(schnorr.SerializePubKey(s.privKey.PubKey()))
}

func (s *LocalSigner) StakerInfo() *types.StakerInfo {
	return &types.StakerInfo{
		PublicKeyNoCoordHex: s.PublicKeyNoCoordHex(),
		Address:             s.Address(),
	}
}

// SignPsbt adds a signature to every input the key can spend. Inputs with a
// taproot leaf script are signed on that leaf, other inputs are signed as
// spends of the signer address. The packet is returned unfinalized.
func (s *LocalSigner) SignPsbt(ctx context.Context, step types.SigningStep, psbtHex string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	packet, err := decodePsbt(psbtHex)
	if err != nil {
		return "", err
	}

	tx := packet.UnsignedTx
	prevOuts := make(map[wire.OutPoint]*wire.TxOut, len(tx.TxIn))
	for i, in := range tx.TxIn {
		prevOut, err := inputPrevOut(&packet.Inputs[i], in)
		if err != nil {
			return "", fmt.Errorf("input %d: %w", i, err)
		}
		prevOuts[in.PreviousOutPoint] = prevOut
	}
	fetcher := txscript.NewMultiPrevOutFetcher(prevOuts)
	sigHashes := txscript.NewTxSigHashes(tx, fetcher)

	var signed int
	for i, in := range tx.TxIn {
		ok, err := s.signInput(packet, i, prevOuts[in.PreviousOutPoint], sigHashes)
		if err != nil {
			return "", fmt.Errorf("failed to sign input %d: %w", i, err)
		}
		if ok {
			signed++
		}
	}

	s.logger.Debug("signed psbt",
		zap.String("step", step.String()),
		zap.String("txid", tx.TxHash().String()),
		zap.Int("signed_inputs", signed),
	)

	var buf bytes.Buffer
	if err := packet.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func (s *LocalSigner) signInput(packet *psbt.Packet, idx int, prevOut *wire.TxOut, sigHashes *txscript.TxSigHashes) (bool, error) {
	tx := packet.UnsignedTx
	pInput := &packet.Inputs[idx]
	pk := s.privKey.PubKey()

	if len(pInput.TaprootLeafScript) > 0 {
		leafScript := pInput.TaprootLeafScript[0]
		xOnly := schnorr.SerializePubKey(pk)
		if !bytes.Contains(leafScript.Script, xOnly) {
			return false, nil
		}
		leaf := txscript.NewTapLeaf(leafScript.LeafVersion, leafScript.Script)
		sig, err := txscript.RawTxInTapscriptSignature(
			tx, sigHashes, idx, prevOut.Value, prevOut.PkScript, leaf, defaultTaprootSigHash, s.privKey,
		)
		if err != nil {
			return false, err
		}
		leafHash := leaf.TapHash()
		pInput.TaprootScriptSpendSig = append(pInput.TaprootScriptSpendSig, &psbt.TaprootScriptSpendSig{
			XOnlyPubKey: xOnly,
			LeafHash:    leafHash[:],
			Signature:   sig,
			SigHash:     defaultTaprootSigHash,
		})
		return true, nil
	}

	ownScript, err := txscript.PayToAddrScript(s.address)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(ownScript, prevOut.PkScript) {
		return false, nil
	}

	switch txscript.GetScriptClass(prevOut.PkScript) {
	case txscript.WitnessV1TaprootTy:
		sig, err := txscript.RawTxInTaprootSignature(
			tx, sigHashes, idx, prevOut.Value, prevOut.PkScript, nil, defaultTaprootSigHash, s.privKey,
		)
		if err != nil {
			return false, err
		}
		pInput.TaprootKeySpendSig = sig
	case txscript.WitnessV0PubKeyHashTy:
		sig, err := txscript.RawTxInWitnessSignature(
			tx, sigHashes, idx, prevOut.Value, prevOut.PkScript, defaultSegwitSigHashType, s.privKey,
		)
		if err != nil {
			return false, err
		}
		pInput.PartialSigs = append(pInput.PartialSigs, &psbt.PartialSig{
			PubKey:    pk.SerializeCompressed(),
			Signature: sig,
		})
	case txscript.PubKeyHashTy:
		sig, err := txscript.RawTxInSignature(tx, idx, prevOut.PkScript, defaultSegwitSigHashType, s.privKey)
		if err != nil {
			return false, err
		}
		pInput.PartialSigs = append(pInput.PartialSigs, &psbt.PartialSig{
			PubKey:    pk.SerializeCompressed(),
			Signature: sig,
		})
	default:
		return false, nil
	}

	return true, nil
}

// SignMessage signs the message with the Bitcoin signed message scheme
// (ecdsa) or BIP322 simple, and returns the signature in base64.
func (s *LocalSigner) SignMessage(ctx context.Context, step types.SigningStep, message string, sigType types.MessageSigType) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.logger.Debug("signing message",
		zap.String("step", step.String()),
		zap.String("sig_type", string(sigType)),
	)

	switch sigType {
	case types.MessageSigTypeECDSA:
		return SignECDSAMessage(s.privKey, message), nil
	case types.MessageSigTypeBIP322Simple:
		return SignBIP322Simple(s.privKey, s.address, message)
	default:
		return "", errorsmod.Wrapf(types.ErrInvalidSignature, "unknown message signature type %q", sigType)
	}
}

func decodePsbt(psbtHex string) (*psbt.Packet, error) {
	bz, err := hex.DecodeString(psbtHex)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "invalid psbt hex: %v", err)
	}
	packet, err := psbt.NewFromRawBytes(bytes.NewReader(bz), false)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidTransaction, "invalid psbt: %v", err)
	}
	return packet, nil
}

func inputPrevOut(pInput *psbt.PInput, in *wire.TxIn) (*wire.TxOut, error) {
	if pInput.WitnessUtxo != nil {
		return pInput.WitnessUtxo, nil
	}
	if pInput.NonWitnessUtxo != nil {
		idx := in.PreviousOutPoint.Index
		if int(idx) >= len(pInput.NonWitnessUtxo.TxOut) {
			return nil, fmt.Errorf("previous output index %d out of range", idx)
		}
		return pInput.NonWitnessUtxo.TxOut[idx], nil
	}
	return nil, fmt.Errorf("missing previous output")
}
