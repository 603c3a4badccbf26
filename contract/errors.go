package contract

import "edition_sale/sdk"

// Revert symbols, one per caller-visible abort condition.
const (
	ErrAlreadyInitialized = "already_initialized"
	ErrNotInitialized     = "not_initialized"
	ErrUnknownEdition     = "unknown_edition"
	ErrQuantityTooLow     = "quantity_too_low"
	ErrQuantityExceedsCap = "quantity_exceeds_cap"
	ErrPaymentMismatch    = "payment_mismatch"
	ErrRoyaltyOutOfRange  = "royalty_out_of_range"
	ErrNegativePrice      = "negative_price"
	ErrUnauthorized       = "unauthorized"
)

// requireOwner reverts unless the sender is the configured contract owner.
// Returns the sender for convenience.
func requireOwner() sdk.Address {
	sender := getSenderAddress()
	if !isContractOwner(sender) {
		sdk.Revert("only the contract owner may call this", ErrUnauthorized)
	}
	return sender
}

// requireUserAccount reverts when the sender is a contract or system account.
// Purchases are restricted to externally-controlled accounts.
func requireUserAccount() sdk.Address {
	sender := getSenderAddress()
	if sender.Domain() != sdk.AddressDomainUser {
		sdk.Revert("only user accounts may call this", ErrUnauthorized)
	}
	return sender
}

// requireSystemAccount guards callback endpoints the environment invokes.
func requireSystemAccount() {
	if getSenderAddress().Domain() != sdk.AddressDomainSystem {
		sdk.Revert("callback may only be invoked by the system", ErrUnauthorized)
	}
}

// requireIssued reverts until the issue callback has persisted the collection
// identifier, and returns it.
func requireIssued() string {
	id := collectionId()
	if id == "" {
		sdk.Revert("collection token not issued", ErrNotInitialized)
	}
	return id
}

// requirePriceTag reverts when no edition exists under the nonce.
func requirePriceTag(nonce uint64) *PriceTag {
	tag := loadPriceTag(nonce)
	if tag == nil {
		sdk.Revert("edition with such id doesn't exist", ErrUnknownEdition)
	}
	return tag
}
