package main

const (
	homeFlag  = "home"
	forceFlag = "force"

	fileFlag    = "file"
	versionFlag = "version"
	heightFlag  = "height"

	stakerPkFlag      = "staker-pk"
	stakerAddressFlag = "staker-address"
	fpPkFlag          = "fp-pk"
	amountFlag        = "amount"
	timelockFlag      = "timelock"
	utxosFileFlag     = "utxos-file"
	feeRateFlag       = "fee-rate"
	tipHeightFlag     = "tip-height"

	wifFlag            = "wif"
	addressTypeFlag    = "address-type"
	babylonAddressFlag = "babylon-address"

	chainIDFlag       = "chain-id"
	upgradeHeightFlag = "upgrade-height"

	posFlag       = "pos"
	blockHashFlag = "block-hash"
	merkleFlag    = "merkle"

	txFlag               = "tx"
	covenantSigsFileFlag = "covenant-sigs-file"
	paramsVersionFlag    = "params-version"

	defaultFeeRate = 2
)
