package sdk

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RevertError is what the non-wasm host raises for revert/abort so native
// tests can catch and inspect the symbol. On chain the host terminates the
// invocation instead and this type is never observed.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello editions")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("bad payload")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Does not return.
// Example payload: sdk.Revert("token not issued", "not_initialized")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("coll:id", "EDT-1a2b3c")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("coll:id")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("coll:id")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	return parseEnv(*getEnv(nil))
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

// CollectionProperties is the capability profile requested from the asset
// registry when a new collection is issued.
type CollectionProperties struct {
	CanFreeze             bool `json:"can_freeze"`
	CanWipe               bool `json:"can_wipe"`
	CanPause              bool `json:"can_pause"`
	CanTransferCreateRole bool `json:"can_transfer_create_role"`
	CanChangeOwner        bool `json:"can_change_owner"`
	CanUpgrade            bool `json:"can_upgrade"`
	CanAddSpecialRoles    bool `json:"can_add_special_roles"`
}

// RegistryIssueCollection asks the asset registry to allocate a new collection
// identifier. The call is asynchronous: the registry consumes the attached fee
// and later invokes the contract's issue_callback action exactly once with the
// outcome. The current invocation only records the request.
// Example payload: sdk.RegistryIssueCollection("Editions", "EDT", props, 50000)
func RegistryIssueCollection(name string, ticker string, props CollectionProperties, fee int64) {
	propsBytes, err := json.Marshal(&props)
	if err != nil {
		Revert("could not serialize collection properties", "sdk_error")
	}
	propsStr := string(propsBytes)
	feeStr := strconv.FormatInt(fee, 10)
	registryIssueCollection(&name, &ticker, &propsStr, &feeStr)
}

// RegistrySetCollectionRoles asks the registry to grant the contract the given
// roles over its own collection. Fire-and-forget: no callback is delivered and
// a failed grant only surfaces later as failed mints.
// Example payload: sdk.RegistrySetCollectionRoles("EDT-1a2b3c", []string{"nft_create"})
func RegistrySetCollectionRoles(collection string, roles []string) {
	rolesStr := strings.Join(roles, ",")
	registrySetCollectionRoles(&collection, &rolesStr)
}

// NftCreateRequest carries everything the mint primitive needs for a new
// instance inside an existing collection.
type NftCreateRequest struct {
	Collection     string   `json:"collection"`
	Amount         int64    `json:"amount"`
	Name           string   `json:"name"`
	RoyaltyBps     uint64   `json:"royalty_bps"`
	AttributesHash string   `json:"attributes_hash"`
	Attributes     string   `json:"attributes"`
	Uris           []string `json:"uris"`
}

// NftCreate mints a fresh instance and returns its registry-allocated nonce.
// The host traps the whole invocation when the mint is rejected, so a
// returned nonce always means the instances exist.
// Example payload: sdk.NftCreate(sdk.NftCreateRequest{Collection: "EDT-1a2b3c", Amount: 100})
func NftCreate(req NftCreateRequest) uint64 {
	reqBytes, err := json.Marshal(&req)
	if err != nil {
		Revert("could not serialize mint request", "sdk_error")
	}
	reqStr := string(reqBytes)
	nonceStr := *nftCreate(&reqStr)
	nonce, err := strconv.ParseUint(nonceStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return nonce
}

// NftTransfer moves instances of a collection nonce from the contract to an address.
// Example payload: sdk.NftTransfer(sdk.Address("hive:foo"), "EDT-1a2b3c", 7, 5)
func NftTransfer(to Address, collection string, nonce uint64, amount int64) {
	toaddr := to.String()
	nonceStr := strconv.FormatUint(nonce, 10)
	amt := strconv.FormatInt(amount, 10)
	nftTransfer(&toaddr, &collection, &nonceStr, &amt)
}
