package contract

import (
	"math"

	"edition_sale/sdk"
)

// AmountScale defines the precision multiplier between display units and the
// ledger's smallest unit.
const AmountScale = 1000

// Amount is a currency or quantity value in the ledger's smallest unit.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for the transfer host functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ContractConfig is the init-time singleton. The owner recorded here gates
// every administrative endpoint and receives sale proceeds.
type ContractConfig struct {
	Owner sdk.Address
}

// PriceTag is the persisted sale record of one minted edition. Created once
// by create_token, read-only afterwards; absence of a tag means the edition
// does not exist.
type PriceTag struct {
	DisplayName   string `json:"display_name"`
	Nonce         uint64 `json:"nonce"`
	Price         Amount `json:"price"`
	MaxPerAddress Amount `json:"max_per_address"`
}

type IssueTokenArgs struct {
	Name   string
	Ticker string
}

type CreateTokenArgs struct {
	Name          string
	Price         Amount
	MetadataCid   string
	MetadataFile  string
	Amount        int64
	MaxPerAddress Amount
	Royalties     uint64
	Tags          string
	Uris          []string
}

type BuyArgs struct {
	Amount int64
	Nonce  uint64
}

// IssueResult is the decoded callback payload from the asset registry:
// either the freshly allocated identifier or the returned value on failure.
type IssueResult struct {
	Ok             bool
	CollectionId   string
	ReturnedAsset  sdk.Asset
	ReturnedAmount Amount
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
