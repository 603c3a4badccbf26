package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"edition_sale/sdk"
)

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as owner.
// Must be called before any other function.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	cfg := ContractConfig{
		Owner: getSenderAddress(),
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String())
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Collection Issuance
// -----------------------------------------------------------------------------

// IssueToken requests a new semi-fungible collection from the asset registry.
// Owner-only, payable: the attached native deposit is the registry's issuance
// fee. The registry call is asynchronous, so this invocation ends at the
// request; the outcome arrives later through issue_callback.
// Payload: name|ticker
func IssueToken(payload *string) *string {
	requireOwner()
	args := decodeIssueTokenArgs(payload)

	if collectionId() != "" {
		sdk.Revert("token already issued", ErrAlreadyInitialized)
	}

	fee, ok := attachedPayment()
	if !ok || fee <= 0 {
		sdk.Revert("issuance fee payment required", ErrPaymentMismatch)
	}

	setCollectionName(args.Name)
	sdk.HiveDraw(AmountToInt64(fee), sdk.AssetHive)

	sdk.RegistryIssueCollection(args.Name, args.Ticker, sdk.CollectionProperties{
		CanFreeze:             false,
		CanWipe:               false,
		CanPause:              false,
		CanTransferCreateRole: false,
		CanChangeOwner:        false,
		CanUpgrade:            false,
		CanAddSpecialRoles:    true,
	}, AmountToInt64(fee))

	emitIssueRequested(args.Name, args.Ticker, fee)
	return strptr("collection issuance requested")
}

// IssueCallback reconciles the registry's asynchronous answer. On success the
// allocated identifier is persisted (write-once). On failure any returned
// native value is refunded in full to the contract owner; non-native returns
// stay with the contract.
// Payload: ok|<collectionId>  or  err|<asset>|<amount>
func IssueCallback(payload *string) *string {
	requireSystemAccount()
	result := decodeIssueResult(payload)

	if result.Ok {
		setCollectionId(result.CollectionId)
		emitIssueSucceeded(result.CollectionId)
		return strptr("collection id stored")
	}

	refunded := false
	if result.ReturnedAsset == sdk.AssetHive && result.ReturnedAmount > 0 {
		if owner := getContractOwner(); owner != nil {
			sdk.HiveTransfer(*owner, AmountToInt64(result.ReturnedAmount), sdk.AssetHive)
			refunded = true
		}
	}
	emitIssueFailed(result.ReturnedAsset.String(), result.ReturnedAmount, refunded)
	return strptr("collection issuance failed")
}

// GrantLocalRoles asks the registry for mint/add-quantity/burn rights over the
// contract's own collection. Fire-and-forget: no callback exists, a failed
// grant only shows up later as failed mints.
func GrantLocalRoles(payload *string) *string {
	requireOwner()
	collection := requireIssued()

	sdk.RegistrySetCollectionRoles(collection, localRoles)

	emitRolesRequested(collection)
	return strptr("role grant requested")
}

// -----------------------------------------------------------------------------
// Edition Minting
// -----------------------------------------------------------------------------

// CreateToken mints a new priced edition of the collection and records its
// price tag under the nonce the mint primitive returns. Owner-only. A failed
// mint aborts the whole call, so no tag is ever written without instances.
// Payload: name|price|metadataCid|metadataFile|amount|maxPerAddress|royalties|tags|uri1,uri2,...
func CreateToken(payload *string) *string {
	requireOwner()
	args := decodeCreateTokenArgs(payload)

	if args.Royalties > RoyaltiesMax {
		sdk.Revert("royalties cannot exceed 100%", ErrRoyaltyOutOfRange)
	}
	if args.Amount < 1 {
		sdk.Revert("amount of tokens should be at least 1", ErrQuantityTooLow)
	}
	if args.Price < 0 {
		sdk.Revert("selling price can not be less than 0", ErrNegativePrice)
	}
	collection := requireIssued()

	attributes := tagsKeyName + args.Tags + attrSeparator +
		metadataKeyName + args.MetadataCid + uriSlash + args.MetadataFile
	attributesHash := sha256.Sum256([]byte(attributes))

	nonce := sdk.NftCreate(sdk.NftCreateRequest{
		Collection:     collection,
		Amount:         args.Amount,
		Name:           args.Name,
		RoyaltyBps:     args.Royalties,
		AttributesHash: hex.EncodeToString(attributesHash[:]),
		Attributes:     attributes,
		Uris:           args.Uris,
	})

	savePriceTag(&PriceTag{
		DisplayName:   args.Name,
		Nonce:         nonce,
		Price:         args.Price,
		MaxPerAddress: args.MaxPerAddress,
	})

	emitTokenCreated(nonce, args.Name, args.Price, args.MaxPerAddress)
	return strptr(strconv.FormatUint(nonce, 10))
}
