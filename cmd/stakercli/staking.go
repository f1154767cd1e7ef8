package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/wire"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-manager/btcsig"
	"github.com/babylonchain/btc-staking-manager/config"
	"github.com/babylonchain/btc-staking-manager/manager"
	"github.com/babylonchain/btc-staking-manager/merkle"
	"github.com/babylonchain/btc-staking-manager/signer"
	"github.com/babylonchain/btc-staking-manager/staking"
	"github.com/babylonchain/btc-staking-manager/types"
)

var stakingCommands = []cli.Command{
	{
		Name:      "staking",
		ShortName: "st",
		Usage:     "Build and inspect staking transactions and delegation messages.",
		Category:  "Staking",
		Subcommands: []cli.Command{
			estimateFeeCmd,
			createDelegationCmd,
			inclusionProofCmd,
			covenantWitnessCmd,
		},
	},
}

var stakingInputFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:     fpPkFlag,
		Usage:    "x-only public key of a finality provider in hex, can be repeated",
		Required: true,
	},
	cli.Int64Flag{
		Name:     amountFlag,
		Usage:    "The staking amount in satoshis",
		Required: true,
	},
	cli.Uint64Flag{
		Name:     timelockFlag,
		Usage:    "The staking timelock in BTC blocks",
		Required: true,
	},
	cli.StringFlag{
		Name:     utxosFileFlag,
		Usage:    "Path to a JSON file with the UTXOs funding the staking transaction",
		Required: true,
	},
	cli.Int64Flag{
		Name:  feeRateFlag,
		Usage: "The fee rate in sat/vB",
		Value: defaultFeeRate,
	},
	cli.Uint64Flag{
		Name:     tipHeightFlag,
		Usage:    "The BTC tip height known to Babylon, selects the params version",
		Required: true,
	},
}

func stakingInputs(ctx *cli.Context) *types.StakingInputs {
	return &types.StakingInputs{
		FinalityProviderPksNoCoordHex: ctx.StringSlice(fpPkFlag),
		StakingAmountSat:              ctx.Int64(amountFlag),
		StakingTimelock:               uint32(ctx.Uint64(timelockFlag)),
	}
}

// newOfflineManager builds a manager for operations that do not involve
// signing Babylon transactions.
func newOfflineManager(cfg *config.Config, logger *zap.Logger, btc manager.BtcProvider) (*manager.Manager, error) {
	registry, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}

	opts := []manager.Option{manager.WithEventListener(&eventLogger{logger: logger})}
	if upgrade := cfg.BabylonConfig.PopUpgrade(); upgrade != nil {
		opts = append(opts, manager.WithPopUpgrade(*upgrade))
	}

	return manager.NewManager(&cfg.BTCNetParams, registry.All(), btc, unsignedBabylonTx{}, logger, opts...)
}

// eventLogger logs what the staker is asked to sign.
type eventLogger struct {
	logger *zap.Logger
}

func (l *eventLogger) OnEvent(channel types.EventChannel, ev *types.ManagerEvent) {
	l.logger.Info("signing request",
		zap.String("channel", string(channel)),
		zap.String("type", string(ev.Type)),
		zap.Any("event", ev),
	)
}

// unsignedBabylonTx returns the protobuf encoding of the delegation message
// instead of a signed Babylon transaction.
type unsignedBabylonTx struct{}

func (unsignedBabylonTx) SignTransaction(_ context.Context, _ types.SigningStep, msg *types.EncodeObject) ([]byte, error) {
	return msg.Value.Marshal()
}

type estimateFeeResponse struct {
	StakingFeeSat int64 `json:"staking_fee_sat"`
}

var estimateFeeCmd = cli.Command{
	Name:      "estimate-fee",
	ShortName: "ef",
	Usage:     "Estimate the fee of a staking transaction.",
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:     stakerPkFlag,
			Usage:    "x-only public key of the staker in hex",
			Required: true,
		},
		cli.StringFlag{
			Name:     stakerAddressFlag,
			Usage:    "BTC address of the staker receiving the change",
			Required: true,
		},
	}, stakingInputFlags...),
	Action: estimateFee,
}

func estimateFee(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	m, err := newOfflineManager(cfg, logger, nil)
	if err != nil {
		return err
	}
	utxos, err := readUTXOs(ctx.String(utxosFileFlag))
	if err != nil {
		return err
	}

	stakerInfo := &types.StakerInfo{
		PublicKeyNoCoordHex: ctx.String(stakerPkFlag),
		Address:             ctx.String(stakerAddressFlag),
	}
	fee, err := m.EstimateBtcStakingFee(stakerInfo, ctx.Uint64(tipHeightFlag), stakingInputs(ctx), utxos, ctx.Int64(feeRateFlag))
	if err != nil {
		return err
	}

	printRespJSON(&estimateFeeResponse{StakingFeeSat: fee})
	return nil
}

type createDelegationResponse struct {
	StakingTxHex     string `json:"staking_tx_hex"`
	DelegationMsgHex string `json:"delegation_msg_hex"`
}

var createDelegationCmd = cli.Command{
	Name:      "create-delegation",
	ShortName: "cd",
	Usage:     "Build the staking transaction and the pre-staking delegation message with a local key.",
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:     wifFlag,
			Usage:    "The staker private key in WIF",
			Required: true,
		},
		cli.StringFlag{
			Name:  addressTypeFlag,
			Usage: "Address type of the staker: taproot, native-segwit or legacy",
			Value: string(signer.AddressTypeTaproot),
		},
		cli.StringFlag{
			Name:     babylonAddressFlag,
			Usage:    "The bech32 Babylon address of the staker",
			Required: true,
		},
	}, stakingInputFlags...),
	Action: createDelegation,
}

func createDelegation(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	localSigner, err := signer.NewLocalSignerFromWIF(ctx.String(wifFlag), signer.AddressType(ctx.String(addressTypeFlag)), &cfg.BTCNetParams, logger)
	if err != nil {
		return err
	}
	m, err := newOfflineManager(cfg, logger, localSigner)
	if err != nil {
		return err
	}
	utxos, err := readUTXOs(ctx.String(utxosFileFlag))
	if err != nil {
		return err
	}

	res, err := m.PreStakeRegistrationBabylonTransaction(
		context.Background(),
		localSigner.StakerInfo(),
		stakingInputs(ctx),
		ctx.Uint64(tipHeightFlag),
		utxos,
		ctx.Int64(feeRateFlag),
		ctx.String(babylonAddressFlag),
	)
	if err != nil {
		return err
	}

	stakingTxHex, err := txToHex(res.StakingTx)
	if err != nil {
		return err
	}
	printRespJSON(&createDelegationResponse{
		StakingTxHex:     stakingTxHex,
		DelegationMsgHex: hex.EncodeToString(res.SignedBabylonTx),
	})
	return nil
}

type inclusionProofResponse struct {
	Index        uint32 `json:"index"`
	BlockHashHex string `json:"block_hash_hex"`
	ProofHex     string `json:"proof_hex"`
}

var inclusionProofCmd = cli.Command{
	Name:      "inclusion-proof",
	ShortName: "ip",
	Usage:     "Convert an Electrum-style merkle proof to the Babylon inclusion proof.",
	Flags: []cli.Flag{
		cli.UintFlag{
			Name:     posFlag,
			Usage:    "Position of the transaction in the block",
			Required: true,
		},
		cli.StringFlag{
			Name:     blockHashFlag,
			Usage:    "Block hash in the usual big-endian hex",
			Required: true,
		},
		cli.StringSliceFlag{
			Name:  merkleFlag,
			Usage: "Sibling hash in big-endian hex, deepest first, can be repeated",
		},
	},
	Action: inclusionProof,
}

func inclusionProof(ctx *cli.Context) error {
	proof, err := merkle.BuildInclusionProof(types.InclusionProof{
		Pos:          uint32(ctx.Uint(posFlag)),
		BlockHashHex: ctx.String(blockHashFlag),
		Merkle:       ctx.StringSlice(merkleFlag),
	})
	if err != nil {
		return err
	}

	printRespJSON(&inclusionProofResponse{
		Index:        proof.Key.Index,
		BlockHashHex: hex.EncodeToString(proof.Key.Hash),
		ProofHex:     hex.EncodeToString(proof.Proof),
	})
	return nil
}

type covenantWitnessResponse struct {
	SignedTxHex string `json:"signed_tx_hex"`
}

var covenantWitnessCmd = cli.Command{
	Name:      "covenant-witness",
	ShortName: "cw",
	Usage:     "Add the covenant signatures to a staker-signed unbonding transaction.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:     txFlag,
			Usage:    "The staker-signed unbonding transaction in hex",
			Required: true,
		},
		cli.StringFlag{
			Name:     covenantSigsFileFlag,
			Usage:    "Path to a JSON file with the covenant signatures",
			Required: true,
		},
		cli.UintFlag{
			Name:     paramsVersionFlag,
			Usage:    "The params version of the delegation",
			Required: true,
		},
	},
	Action: covenantWitness,
}

func covenantWitness(ctx *cli.Context) error {
	cfg, _, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	p, err := registry.ByVersion(uint32(ctx.Uint(paramsVersionFlag)))
	if err != nil {
		return err
	}

	tx, err := txFromHex(ctx.String(txFlag))
	if err != nil {
		return err
	}
	if len(tx.TxIn) != 1 {
		return fmt.Errorf("unbonding transaction must have exactly one input, got %d", len(tx.TxIn))
	}

	bz, err := os.ReadFile(ctx.String(covenantSigsFileFlag))
	if err != nil {
		return err
	}
	var sigs []*types.CovenantSignature
	if err := json.Unmarshal(bz, &sigs); err != nil {
		return fmt.Errorf("invalid covenant signatures file: %w", err)
	}

	covenantPks, err := p.CovenantPks()
	if err != nil {
		return err
	}
	covenantKeys, err := staking.SortKeys(covenantPks)
	if err != nil {
		return err
	}

	witness, err := btcsig.CreateCovenantWitness(tx.TxIn[0].Witness, covenantKeys, sigs, p.CovenantQuorum)
	if err != nil {
		return err
	}
	tx.TxIn[0].Witness = witness

	signedTxHex, err := txToHex(tx)
	if err != nil {
		return err
	}
	printRespJSON(&covenantWitnessResponse{SignedTxHex: signedTxHex})
	return nil
}

func txFromHex(txHex string) (*wire.MsgTx, error) {
	bz, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, types.ErrInvalidTransaction.Wrapf("not hex: %v", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(bz)); err != nil {
		return nil, types.ErrInvalidTransaction.Wrap(err.Error())
	}
	return tx, nil
}

func txToHex(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}
