package contract

import (
	"strings"

	"edition_sale/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// getContractOwner returns the contract owner address, or nil if not initialized.
func getContractOwner() *sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	owner := getContractOwner()
	return owner != nil && *owner == addr
}

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String()
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 1 || parts[0] == "" {
		return nil
	}
	return &ContractConfig{
		Owner: AddressFromString(parts[0]),
	}
}

// -----------------------------------------------------------------------------
// Collection State
// -----------------------------------------------------------------------------

// collectionId returns the registry-allocated identifier, empty while the
// issuance is absent or still pending. Emptiness doubles as the persisted
// "not yet committed" marker of the issue state machine.
func collectionId() string {
	ptr := sdk.StateGetObject(CollectionIdKey)
	if ptr == nil {
		return ""
	}
	return *ptr
}

// setCollectionId persists the identifier exactly once. A second write is
// ignored: the id is immutable for the contract's whole lifetime.
func setCollectionId(id string) {
	if existing := collectionId(); existing != "" {
		sdk.Log("collection id already set, keeping " + existing)
		return
	}
	sdk.StateSetObject(CollectionIdKey, id)
}

// setCollectionName stores the display name before the issue call suspends.
func setCollectionName(name string) {
	sdk.StateSetObject(CollectionNameKey, name)
}
