package contract_test

import (
	"fmt"
	"testing"

	"edition_sale/contract"
	"edition_sale/sdk"

	"github.com/stretchr/testify/require"
)

const (
	ownerAddress  = "hive:editions-owner"
	buyerAddress  = "hive:collector"
	systemAddress = "system:asset_registry"

	collectionIdent = "EDT-1a2b3c"
	issueFee        = int64(50_000)
)

var txCounter int

// callAs points the mock env at a fresh transaction from the given sender.
// A new tx.id per call keeps the contract's env cache honest.
func callAs(sender string, intents ...sdk.Intent) {
	txCounter++
	m := sdk.Mock()
	m.Env.TxId = fmt.Sprintf("tx-%d", txCounter)
	m.Env.BlockId = "block-1"
	m.Env.Timestamp = "2026-01-01T00:00:00"
	m.Env.Sender = sdk.Sender{
		Address:       sdk.Address(sender),
		RequiredAuths: []sdk.Address{sdk.Address(sender)},
	}
	m.Env.Caller = sdk.Caller{Address: sdk.Address(sender)}
	m.Env.Payer = sdk.Address(sender)
	m.Env.Intents = intents
}

// paymentIntent builds a native transfer.allow with the given display limit,
// e.g. "0.500" for 500 smallest units.
func paymentIntent(limit string) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": "hive"},
	}
}

// setupContract resets the host and initializes the contract with ownerAddress.
func setupContract(t *testing.T) *sdk.MockHost {
	t.Helper()
	m := sdk.Mock()
	m.Reset()
	callAs(ownerAddress)
	contract.ContractInit(nil)
	return m
}

// issueCollection walks the full two-phase issuance so tests start from a live
// collection. The owner is granted exactly the issuance fee upfront, which the
// registry consumes, so balances are back to their prior values afterwards.
func issueCollection(t *testing.T, m *sdk.MockHost) {
	t.Helper()
	m.SetBalance(ownerAddress, sdk.AssetHive, m.Balance(ownerAddress, sdk.AssetHive)+issueFee)
	callAs(ownerAddress, paymentIntent("50.000"))
	contract.IssueToken(strptr("Editions|EDT"))
	callAs(systemAddress)
	contract.IssueCallback(strptr("ok|" + collectionIdent))
}

// mintEdition creates a priced edition and returns its nonce string.
func mintEdition(t *testing.T, price int64, maxPerAddress int64) string {
	t.Helper()
	callAs(ownerAddress)
	payload := fmt.Sprintf(
		"Edition One|%d|QmTestCid|meta.json|1000|%d|500|art,rare|https://cdn.test/1.png,https://cdn.test/2.png",
		price, maxPerAddress,
	)
	return *contract.CreateToken(strptr(payload))
}

func strptr(s string) *string { return &s }

// expectRevert asserts fn reverts with the given symbol and nothing else.
func expectRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q, got none", symbol)
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok, "expected RevertError, got %v", r)
		require.Equal(t, symbol, revertErr.Symbol, "unexpected revert: %s", revertErr.Msg)
	}()
	fn()
}
