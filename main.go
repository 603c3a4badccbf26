////////////////////////////////////////////////////////////////////////////////
// Edition Sale: a single-collection edition mint and sale contract
////////////////////////////////////////////////////////////////////////////////

//go:build wasm

package main

import "edition_sale/contract"

// main is left empty on purpose
func main() {

}

//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	return contract.ContractInit(payload)
}

//go:wasmexport issue_token
func IssueToken(payload *string) *string {
	return contract.IssueToken(payload)
}

//go:wasmexport issue_callback
func IssueCallback(payload *string) *string {
	return contract.IssueCallback(payload)
}

//go:wasmexport grant_local_roles
func GrantLocalRoles(payload *string) *string {
	return contract.GrantLocalRoles(payload)
}

//go:wasmexport create_token
func CreateToken(payload *string) *string {
	return contract.CreateToken(payload)
}

//go:wasmexport buy
func Buy(payload *string) *string {
	return contract.Buy(payload)
}

//go:wasmexport buy_community
func BuyCommunity(payload *string) *string {
	return contract.BuyCommunity(payload)
}

//go:wasmexport claim_sc_funds
func ClaimScFunds(payload *string) *string {
	return contract.ClaimScFunds(payload)
}

//go:wasmexport get_price
func GetPrice(payload *string) *string {
	return contract.GetPrice(payload)
}

//go:wasmexport get_token_display_name
func GetTokenDisplayName(payload *string) *string {
	return contract.GetTokenDisplayName(payload)
}

//go:wasmexport get_max_amount_per_address
func GetMaxAmountPerAddress(payload *string) *string {
	return contract.GetMaxAmountPerAddress(payload)
}
