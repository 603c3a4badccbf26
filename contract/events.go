package contract

import (
	"fmt"
	"strconv"

	"edition_sale/sdk"
)

// emitInitEvent writes a tiny "in" log so watchers know the contract went live.
func emitInitEvent(owner string) {
	sdk.Log(fmt.Sprintf(
		"in|own:%s",
		owner,
	))
}

// emitIssueRequested marks the suspend point of the collection issuance.
func emitIssueRequested(name string, ticker string, fee Amount) {
	sdk.Log(fmt.Sprintf(
		"ti|n:%s|t:%s|fee:%d",
		name,
		ticker,
		fee,
	))
}

// emitIssueSucceeded logs the identifier the registry allocated.
func emitIssueSucceeded(collection string) {
	sdk.Log(fmt.Sprintf(
		"ic|ok|%s",
		collection,
	))
}

// emitIssueFailed notes the failure and whether value went back to the owner.
func emitIssueFailed(asset string, amount Amount, refunded bool) {
	sdk.Log(fmt.Sprintf(
		"ic|err|as:%s|am:%d|r:%s",
		asset,
		amount,
		strconv.FormatBool(refunded),
	))
}

// emitRolesRequested logs the fire-and-forget role grant.
func emitRolesRequested(collection string) {
	sdk.Log(fmt.Sprintf(
		"rg|%s",
		collection,
	))
}

// emitTokenCreated gives explorers a neat ping for every freshly minted edition.
func emitTokenCreated(nonce uint64, name string, price Amount, maxPerAddress Amount) {
	sdk.Log(fmt.Sprintf(
		"tc|id:%d|n:%s|p:%d|max:%d",
		nonce,
		name,
		price,
		maxPerAddress,
	))
}

// emitBought includes quantity and the forwarded deposit so sales can be replayed from logs only.
func emitBought(nonce uint64, amount int64, deposit Amount, buyer string) {
	sdk.Log(fmt.Sprintf(
		"by|id:%d|am:%d|dep:%d|to:%s",
		nonce,
		amount,
		deposit,
		buyer,
	))
}

// emitCommunityClaim traces the reserved-distribution transfers.
func emitCommunityClaim(nonce uint64, to string) {
	sdk.Log(fmt.Sprintf(
		"bc|id:%d|to:%s",
		nonce,
		to,
	))
}

// emitFundsClaimed logs sweeps, including the zero-balance no-ops.
func emitFundsClaimed(amount Amount, to string) {
	sdk.Log(fmt.Sprintf(
		"cf|am:%d|to:%s",
		amount,
		to,
	))
}
