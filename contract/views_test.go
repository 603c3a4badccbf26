package contract_test

import (
	"testing"

	"edition_sale/contract"
)

func TestViewsUnknownEdition(t *testing.T) {
	m := setupContract(t)
	issueCollection(t, m)

	callAs(buyerAddress)
	expectRevert(t, contract.ErrUnknownEdition, func() {
		contract.GetPrice(strptr("42"))
	})
	expectRevert(t, contract.ErrUnknownEdition, func() {
		contract.GetTokenDisplayName(strptr("42"))
	})
	expectRevert(t, contract.ErrUnknownEdition, func() {
		contract.GetMaxAmountPerAddress(strptr("42"))
	})
}
