package contract

import (
	"strconv"

	"edition_sale/sdk"
)

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx.id changes we refresh sdk.GetEnv() so subsequent helper calls (sender,
// intents, payments) always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// contractAddress is the account this contract holds funds under.
func contractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// attachedPayment scans the intents for a native-currency transfer.allow and
// returns its limit as the deposit the caller attached. Nothing is drawn yet;
// callers validate first and pull the funds only once the operation is
// committed to succeed.
func attachedPayment() (Amount, bool) {
	for _, intent := range currentIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		if sdk.Asset(intent.Args["token"]) != sdk.AssetHive {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			sdk.Abort("invalid intent limit")
		}
		return FloatToAmount(limit), true
	}
	return 0, false
}
