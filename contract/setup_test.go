package contract_test

import (
	"testing"

	"edition_sale/contract"
	"edition_sale/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Initialization Tests
// =============================================================================

func TestContractInitStoresOwner(t *testing.T) {
	m := setupContract(t)
	assert.Equal(t, ownerAddress, m.State["cfg"])
	require.NotEmpty(t, m.Logs)
	assert.Contains(t, m.Logs[0], ownerAddress)
}

func TestContractInitTwiceAborts(t *testing.T) {
	setupContract(t)
	callAs(ownerAddress)
	expectRevert(t, "abort", func() {
		contract.ContractInit(nil)
	})
}

// =============================================================================
// Issuance Tests
// =============================================================================

func TestIssueTokenRequiresOwner(t *testing.T) {
	setupContract(t)
	callAs(buyerAddress, paymentIntent("50.000"))
	expectRevert(t, contract.ErrUnauthorized, func() {
		contract.IssueToken(strptr("Editions|EDT"))
	})
}

func TestIssueTokenRequiresPayment(t *testing.T) {
	setupContract(t)
	callAs(ownerAddress)
	expectRevert(t, contract.ErrPaymentMismatch, func() {
		contract.IssueToken(strptr("Editions|EDT"))
	})
}

func TestIssueTokenRecordsRegistryRequest(t *testing.T) {
	m := setupContract(t)
	m.SetBalance(ownerAddress, sdk.AssetHive, issueFee)

	callAs(ownerAddress, paymentIntent("50.000"))
	contract.IssueToken(strptr("Editions|EDT"))

	require.Len(t, m.IssueRequests, 1)
	req := m.IssueRequests[0]
	assert.Equal(t, "Editions", req.Name)
	assert.Equal(t, "EDT", req.Ticker)
	assert.Equal(t, issueFee, req.Fee)
	assert.True(t, req.Props.CanAddSpecialRoles)
	assert.False(t, req.Props.CanFreeze)
	assert.False(t, req.Props.CanPause)
	assert.False(t, req.Props.CanUpgrade)

	// fee drawn from the owner and consumed by the registry
	assert.Equal(t, int64(0), m.Balance(ownerAddress, sdk.AssetHive))
	assert.Equal(t, int64(0), m.Balance(m.ContractAddress(), sdk.AssetHive))
	assert.Equal(t, issueFee, m.Balance(m.RegistryAddress, sdk.AssetHive))

	// name persisted before the call suspended, id still pending
	assert.Equal(t, "Editions", m.State["coll:name"])
	assert.Empty(t, m.State["coll:id"])
}

func TestIssueTokenTwiceRejected(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	m.SetBalance(ownerAddress, sdk.AssetHive, issueFee)
	callAs(ownerAddress, paymentIntent("50.000"))
	expectRevert(t, contract.ErrAlreadyInitialized, func() {
		contract.IssueToken(strptr("Editions|EDT"))
	})
}

// =============================================================================
// Issue Callback Tests
// =============================================================================

func TestIssueCallbackStoresCollectionId(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)
	assert.Equal(t, collectionIdent, m.State["coll:id"])
}

func TestIssueCallbackWriteOnce(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(systemAddress)
	contract.IssueCallback(strptr("ok|EDT-other"))
	assert.Equal(t, collectionIdent, m.State["coll:id"])
}

func TestIssueCallbackOnlySystem(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(buyerAddress)
	expectRevert(t, contract.ErrUnauthorized, func() {
		contract.IssueCallback(strptr("ok|EDT-forged"))
	})
}

func TestIssueCallbackFailureRefundsOwner(t *testing.T) {
	m := setupContract(t)
	m.SetBalance(ownerAddress, sdk.AssetHive, issueFee)

	callAs(ownerAddress, paymentIntent("50.000"))
	contract.IssueToken(strptr("Editions|EDT"))
	require.Equal(t, int64(0), m.Balance(ownerAddress, sdk.AssetHive))

	// the registry hands the fee back to the contract alongside the callback
	m.SetBalance(m.ContractAddress(), sdk.AssetHive, issueFee)
	callAs(systemAddress)
	contract.IssueCallback(strptr("err|hive|50000"))

	// net zero across the two calls
	assert.Equal(t, issueFee, m.Balance(ownerAddress, sdk.AssetHive))
	assert.Equal(t, int64(0), m.Balance(m.ContractAddress(), sdk.AssetHive))
	require.Len(t, m.Transfers, 1)
	assert.Equal(t, sdk.Address(ownerAddress), m.Transfers[0].To)

	// still not initialized, a retry stays possible
	assert.Empty(t, m.State["coll:id"])
}

func TestIssueCallbackFailureNonNativeKeepsFunds(t *testing.T) {
	m := setupContract(t)
	m.SetBalance(ownerAddress, sdk.AssetHive, issueFee)

	callAs(ownerAddress, paymentIntent("50.000"))
	contract.IssueToken(strptr("Editions|EDT"))

	callAs(systemAddress)
	contract.IssueCallback(strptr("err|hbd|50000"))

	assert.Empty(t, m.Transfers)
	assert.Equal(t, int64(0), m.Balance(ownerAddress, sdk.AssetHive))
}

// =============================================================================
// Role Grant Tests
// =============================================================================

func TestGrantLocalRolesRecordsRequest(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(ownerAddress)
	contract.GrantLocalRoles(nil)

	require.Len(t, m.RoleGrants, 1)
	assert.Equal(t, collectionIdent, m.RoleGrants[0].Collection)
	assert.Equal(t, []string{"nft_create", "nft_add_quantity", "nft_burn"}, m.RoleGrants[0].Roles)
}

func TestGrantLocalRolesBeforeIssueRejected(t *testing.T) {
	setupContract(t)
	callAs(ownerAddress)
	expectRevert(t, contract.ErrNotInitialized, func() {
		contract.GrantLocalRoles(nil)
	})
}

func TestGrantLocalRolesRequiresOwner(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(buyerAddress)
	expectRevert(t, contract.ErrUnauthorized, func() {
		contract.GrantLocalRoles(nil)
	})
}
