package contract_test

import (
	"testing"

	"edition_sale/contract"
	"edition_sale/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saleSetup initializes, issues and mints edition 1 with the given price/cap.
func saleSetup(t *testing.T, price int64, maxPerAddress int64) *sdk.MockHost {
	t.Helper()
	m := setupContract(t)
	issueCollection(t, m)
	mintEdition(t, price, maxPerAddress)
	return m
}

func TestBuyHappyPath(t *testing.T) {
	m := saleSetup(t, 100, 5)
	m.SetBalance(buyerAddress, sdk.AssetHive, 1000)

	callAs(buyerAddress, paymentIntent("0.500"))
	contract.Buy(strptr("5|1"))

	// five instances of edition 1 to the buyer
	require.Len(t, m.NftTransfers, 1)
	nft := m.NftTransfers[0]
	assert.Equal(t, sdk.Address(buyerAddress), nft.To)
	assert.Equal(t, collectionIdent, nft.Collection)
	assert.Equal(t, uint64(1), nft.Nonce)
	assert.Equal(t, int64(5), nft.Amount)

	// the whole deposit to the owner, nothing stuck on the contract
	assert.Equal(t, int64(500), m.Balance(ownerAddress, sdk.AssetHive))
	assert.Equal(t, int64(500), m.Balance(buyerAddress, sdk.AssetHive))
	assert.Equal(t, int64(0), m.Balance(m.ContractAddress(), sdk.AssetHive))
}

func TestBuyNotInitialized(t *testing.T) {
	setupContract(t)
	callAs(buyerAddress, paymentIntent("0.500"))
	expectRevert(t, contract.ErrNotInitialized, func() {
		contract.Buy(strptr("5|1"))
	})
}

func TestBuyUnknownEdition(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(buyerAddress, paymentIntent("0.500"))
	expectRevert(t, contract.ErrUnknownEdition, func() {
		contract.Buy(strptr("5|7"))
	})
}

func TestBuyQuantityTooLow(t *testing.T) {
	saleSetup(t, 100, 5)
	callAs(buyerAddress, paymentIntent("0.500"))
	expectRevert(t, contract.ErrQuantityTooLow, func() {
		contract.Buy(strptr("0|1"))
	})
}

func TestBuyQuantityExceedsCap(t *testing.T) {
	saleSetup(t, 100, 5)
	callAs(buyerAddress, paymentIntent("0.600"))
	expectRevert(t, contract.ErrQuantityExceedsCap, func() {
		contract.Buy(strptr("6|1"))
	})
}

func TestBuyPaymentMismatch(t *testing.T) {
	m := saleSetup(t, 100, 5)
	m.SetBalance(buyerAddress, sdk.AssetHive, 1000)

	// 400 / 5 = 80, not the unit price of 100
	callAs(buyerAddress, paymentIntent("0.400"))
	expectRevert(t, contract.ErrPaymentMismatch, func() {
		contract.Buy(strptr("5|1"))
	})

	// nothing moved
	assert.Empty(t, m.NftTransfers)
	assert.Empty(t, m.Draws)
	assert.Equal(t, int64(1000), m.Balance(buyerAddress, sdk.AssetHive))
}

func TestBuyWithoutPayment(t *testing.T) {
	saleSetup(t, 100, 5)
	callAs(buyerAddress)
	expectRevert(t, contract.ErrPaymentMismatch, func() {
		contract.Buy(strptr("5|1"))
	})
}

// A deposit of 301 for 3 editions at 100 each: the integer division truncates
// to the exact unit price and the remainder is silently ignored by the check.
// The full 301 still lands with the owner. Kept intentionally.
func TestBuyRemainderForwardedToOwner(t *testing.T) {
	m := saleSetup(t, 100, 5)
	m.SetBalance(buyerAddress, sdk.AssetHive, 301)

	callAs(buyerAddress, paymentIntent("0.301"))
	contract.Buy(strptr("3|1"))

	require.Len(t, m.NftTransfers, 1)
	assert.Equal(t, int64(3), m.NftTransfers[0].Amount)
	assert.Equal(t, int64(301), m.Balance(ownerAddress, sdk.AssetHive))
	assert.Equal(t, int64(0), m.Balance(buyerAddress, sdk.AssetHive))
}

func TestBuyRejectsContractAccounts(t *testing.T) {
	saleSetup(t, 100, 5)
	callAs("contract:reseller", paymentIntent("0.500"))
	expectRevert(t, contract.ErrUnauthorized, func() {
		contract.Buy(strptr("5|1"))
	})
}
