package contract

import (
	"strconv"

	"edition_sale/sdk"
)

// -----------------------------------------------------------------------------
// Purchases
// -----------------------------------------------------------------------------

// Buy sells editions against an exact native payment. Restricted to user
// accounts. The deposit divided by the quantity must equal the unit price;
// the division is integer division and a remainder is silently ignored by
// the check, while the full deposit is still forwarded to the owner.
// Editions move to the caller and the deposit moves to the current owner in
// the same invocation, so either both happen or neither does.
// Payload: amount|nonce
func Buy(payload *string) *string {
	buyer := requireUserAccount()
	args := decodeBuyArgs(payload)

	collection := requireIssued()
	tag := requirePriceTag(args.Nonce)
	if args.Amount < 1 {
		sdk.Revert("the number of tokens provided can't be less than 1", ErrQuantityTooLow)
	}
	if Amount(args.Amount) > tag.MaxPerAddress {
		sdk.Revert("the number of tokens has to be less than or equal the maximum per address", ErrQuantityExceedsCap)
	}

	deposit, ok := attachedPayment()
	if !ok || deposit <= 0 {
		sdk.Revert("native payment required", ErrPaymentMismatch)
	}
	singlePayment := deposit / Amount(args.Amount)
	if singlePayment != tag.Price {
		sdk.Revert("invalid amount as payment, check payment per one token and amount of tokens you want to buy", ErrPaymentMismatch)
	}

	sdk.HiveDraw(AmountToInt64(deposit), sdk.AssetHive)
	sdk.NftTransfer(buyer, collection, args.Nonce, args.Amount)

	owner := getContractOwner()
	sdk.HiveTransfer(*owner, AmountToInt64(deposit), sdk.AssetHive)

	emitBought(args.Nonce, args.Amount, deposit, buyer.String())
	return strptr("bought " + strconv.FormatInt(args.Amount, 10) + " editions")
}

// BuyCommunity hands the owner the fixed community allocation of an edition.
// No payment involved.
// Payload: nonce
func BuyCommunity(payload *string) *string {
	caller := requireOwner()
	nonce := decodeNonceArg(payload)

	collection := requireIssued()
	requirePriceTag(nonce)

	sdk.NftTransfer(caller, collection, nonce, CommunityTreasure)

	emitCommunityClaim(nonce, caller.String())
	return strptr("community allocation transferred")
}

// -----------------------------------------------------------------------------
// Funds
// -----------------------------------------------------------------------------

// ClaimScFunds sweeps the contract's whole native balance to the caller.
// A zero balance is a no-op, not an error.
func ClaimScFunds(payload *string) *string {
	caller := requireOwner()

	balance := Amount(sdk.GetBalance(contractAddress(), sdk.AssetHive))
	if balance > 0 {
		sdk.HiveTransfer(caller, AmountToInt64(balance), sdk.AssetHive)
	}

	emitFundsClaimed(balance, caller.String())
	return strptr("claimed " + strconv.FormatInt(AmountToInt64(balance), 10))
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetPrice returns an edition's unit price in the smallest currency unit.
// Payload: nonce
func GetPrice(payload *string) *string {
	tag := requirePriceTag(decodeNonceArg(payload))
	return strptr(strconv.FormatInt(AmountToInt64(tag.Price), 10))
}

// GetTokenDisplayName returns an edition's display name.
// Payload: nonce
func GetTokenDisplayName(payload *string) *string {
	tag := requirePriceTag(decodeNonceArg(payload))
	return strptr(tag.DisplayName)
}

// GetMaxAmountPerAddress returns the per-purchase cap of an edition.
// Payload: nonce
func GetMaxAmountPerAddress(payload *string) *string {
	tag := requirePriceTag(decodeNonceArg(payload))
	return strptr(strconv.FormatInt(AmountToInt64(tag.MaxPerAddress), 10))
}
