package signer

import (
	"bytes"
	"encoding/base64"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/babylonchain/btc-staking-manager/types"
)

const (
	signedMessagePrefix = "Bitcoin Signed Message:\n"
	bip322Tag           = "BIP0322-signed-message"
	maxWitnessItemSize  = 520
)

func signedMessageHash(message string) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = wire.WriteVarString(&buf, 0, signedMessagePrefix)
	_ = wire.WriteVarString(&buf, 0, message)
	return chainhash.DoubleHashB(buf.Bytes())
}

// SignECDSAMessage returns the base64 compact signature of the message in the
// Bitcoin signed message format, for a compressed key.
func SignECDSAMessage(privKey *btcec.PrivateKey, message string) string {
	sig := ecdsa.SignCompact(privKey, signedMessageHash(message), true)
	return base64.StdEncoding.EncodeToString(sig)
}

// VerifyECDSAMessage checks a compact signature against the expected key.
func VerifyECDSAMessage(pk *btcec.PublicKey, message string, sigBase64 string) error {
	sig, err := base64.StdEncoding.DecodeString(sigBase64)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "invalid base64: %v", err)
	}
	recovered, _, err := ecdsa.RecoverCompact(sig, signedMessageHash(message))
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "cannot recover key: %v", err)
	}
	if !recovered.IsEqual(pk) {
		return errorsmod.Wrap(types.ErrInvalidSignature, "signature does not match the public key")
	}
	return nil
}

func bip322ToSpend(message string, pkScript []byte) (*wire.MsgTx, error) {
	msgHash := chainhash.TaggedHash([]byte(bip322Tag), []byte(message))
	sigScript, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(msgHash[:]).
		Script()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(0)
	in := wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), sigScript, nil)
	in.Sequence = 0
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(0, pkScript))
	return tx, nil
}

func bip322ToSign(toSpend *wire.MsgTx) *wire.MsgTx {
	toSpendHash := toSpend.TxHash()
	tx := wire.NewMsgTx(0)
	in := wire.NewTxIn(wire.NewOutPoint(&toSpendHash, 0), nil, nil)
	in.Sequence = 0
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(0, []byte{txscript.OP_RETURN}))
	return tx
}

// SignBIP322Simple signs the message for a taproot (key path) or native
// segwit address and returns the base64 serialized witness.
func SignBIP322Simple(privKey *btcec.PrivateKey, address btcutil.Address, message string) (string, error) {
	pkScript, err := txscript.PayToAddrScript(address)
	if err != nil {
		return "", err
	}
	toSpend, err := bip322ToSpend(message, pkScript)
	if err != nil {
		return "", err
	}
	toSign := bip322ToSign(toSpend)
	fetcher := txscript.NewCannedPrevOutputFetcher(pkScript, 0)
	sigHashes := txscript.NewTxSigHashes(toSign, fetcher)

	var witness wire.TxWitness
	switch address.(type) {
	case *btcutil.AddressTaproot:
		sig, err := txscript.RawTxInTaprootSignature(toSign, sigHashes, 0, 0, pkScript, nil, txscript.SigHashDefault, privKey)
		if err != nil {
			return "", err
		}
		witness = wire.TxWitness{sig}
	case *btcutil.AddressWitnessPubKeyHash:
		sig, err := txscript.RawTxInWitnessSignature(toSign, sigHashes, 0, 0, pkScript, txscript.SigHashAll, privKey)
		if err != nil {
			return "", err
		}
		witness = wire.TxWitness{sig, privKey.PubKey().SerializeCompressed()}
	default:
		return "", errorsmod.Wrapf(types.ErrUnsupportedAddress, "bip322 simple signatures need a segwit address, got %s", address)
	}

	var buf bytes.Buffer
	if err := writeWitness(&buf, witness); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// VerifyBIP322Simple runs the signed virtual transaction through the script
// engine.
func VerifyBIP322Simple(address string, message string, sigBase64 string, net *chaincfg.Params) error {
	addr, err := btcutil.DecodeAddress(address, net)
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnsupportedAddress, "cannot decode %s: %v", address, err)
	}
	pkScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return err
	}

	bz, err := base64.StdEncoding.DecodeString(sigBase64)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "invalid base64: %v", err)
	}
	witness, err := readWitness(bytes.NewReader(bz))
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "invalid witness: %v", err)
	}

	toSpend, err := bip322ToSpend(message, pkScript)
	if err != nil {
		return err
	}
	toSign := bip322ToSign(toSpend)
	toSign.TxIn[0].Witness = witness

	fetcher := txscript.NewCannedPrevOutputFetcher(pkScript, 0)
	engine, err := txscript.NewEngine(
		pkScript, toSign, 0, txscript.StandardVerifyFlags, nil,
		txscript.NewTxSigHashes(toSign, fetcher), 0, fetcher,
	)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "%v", err)
	}
	if err := engine.Execute(); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "%v", err)
	}
	return nil
}

func writeWitness(buf *bytes.Buffer, witness wire.TxWitness) error {
	if err := wire.WriteVarInt(buf, 0, uint64(len(witness))); err != nil {
		return err
	}
	for _, item := range witness {
		if err := wire.WriteVarBytes(buf, 0, item); err != nil {
			return err
		}
	}
	return nil
}

func readWitness(r *bytes.Reader) (wire.TxWitness, error) {
	count, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, err
	}
	if count > uint64(r.Len()) {
		return nil, fmt.Errorf("witness claims %d items", count)
	}
	witness := make(wire.TxWitness, 0, count)
	for i := uint64(0); i < count; i++ {
		item, err := wire.ReadVarBytes(r, 0, maxWitnessItemSize, "witness item")
		if err != nil {
			return nil, err
		}
		witness = append(witness, item)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes", r.Len())
	}
	return witness, nil
}
