//go:build !wasm

package sdk

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The non-wasm build swaps the host imports for an in-memory ledger so the
// contract package runs under plain `go test`. The mock keeps real balances
// and records every outbound call, which is what the assertions work against.

type TransferRecord struct {
	From   Address
	To     Address
	Amount int64
	Asset  Asset
}

type NftTransferRecord struct {
	To         Address
	Collection string
	Nonce      uint64
	Amount     int64
}

type IssueCollectionRecord struct {
	Name   string
	Ticker string
	Props  CollectionProperties
	Fee    int64
}

type RoleGrantRecord struct {
	Collection string
	Roles      []string
}

type NftCreateRecord struct {
	Request NftCreateRequest
	Nonce   uint64
}

type MockHost struct {
	State    map[string]string
	Balances map[Address]map[Asset]int64
	Env      Env
	Logs     []string

	Draws         []TransferRecord
	Transfers     []TransferRecord
	NftTransfers  []NftTransferRecord
	IssueRequests []IssueCollectionRecord
	RoleGrants    []RoleGrantRecord
	Created       []NftCreateRecord

	// NextNonce is handed out by the next nft.create call.
	NextNonce uint64
	// FailNftCreate makes the next nft.create trap like a host-side rejection.
	FailNftCreate bool
	// RegistryAddress collects issuance fees drawn out of the contract.
	RegistryAddress Address
}

var mockHost = newMockHost()

// Mock exposes the host fake so tests can seed balances and inspect calls.
func Mock() *MockHost {
	return mockHost
}

func newMockHost() *MockHost {
	m := &MockHost{}
	m.Reset()
	return m
}

// Reset drops all state, records and balances between test cases.
func (m *MockHost) Reset() {
	m.State = map[string]string{}
	m.Balances = map[Address]map[Asset]int64{}
	m.Env = Env{ContractId: "contract:editions"}
	m.Logs = nil
	m.Draws = nil
	m.Transfers = nil
	m.NftTransfers = nil
	m.IssueRequests = nil
	m.RoleGrants = nil
	m.Created = nil
	m.NextNonce = 1
	m.FailNftCreate = false
	m.RegistryAddress = "system:asset_registry"
}

// ContractAddress is the account the contract itself holds funds under.
func (m *MockHost) ContractAddress() Address {
	return Address(m.Env.ContractId)
}

// SetBalance seeds a ledger balance for an account.
func (m *MockHost) SetBalance(addr Address, asset Asset, amount int64) {
	if m.Balances[addr] == nil {
		m.Balances[addr] = map[Asset]int64{}
	}
	m.Balances[addr][asset] = amount
}

// Balance reads a ledger balance, defaulting to zero.
func (m *MockHost) Balance(addr Address, asset Asset) int64 {
	return m.Balances[addr][asset]
}

func (m *MockHost) move(from, to Address, asset Asset, amount int64) {
	m.SetBalance(from, asset, m.Balance(from, asset)-amount)
	m.SetBalance(to, asset, m.Balance(to, asset)+amount)
}

func (m *MockHost) envJSON() string {
	auths := make([]string, 0, len(m.Env.Sender.RequiredAuths))
	for _, a := range m.Env.Sender.RequiredAuths {
		auths = append(auths, a.String())
	}
	postingAuths := make([]string, 0, len(m.Env.Sender.RequiredPostingAuths))
	for _, a := range m.Env.Sender.RequiredPostingAuths {
		postingAuths = append(postingAuths, a.String())
	}
	wire := envWire{
		ContractId:           m.Env.ContractId,
		TxId:                 m.Env.TxId,
		Index:                m.Env.Index,
		OpIndex:              m.Env.OpIndex,
		BlockId:              m.Env.BlockId,
		BlockHeight:          m.Env.BlockHeight,
		Timestamp:            m.Env.Timestamp,
		Sender:               m.Env.Sender.Address.String(),
		Caller:               m.Env.Caller.Address.String(),
		Payer:                m.Env.Payer.String(),
		RequiredAuths:        auths,
		RequiredPostingAuths: postingAuths,
		Intents:              m.Env.Intents,
	}
	b, err := json.Marshal(&wire)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// --- host import stand-ins ---

func log(s *string) *string {
	mockHost.Logs = append(mockHost.Logs, *s)
	return s
}

func abort(msg, file *string, line, column *int32) {
	panic(&RevertError{Msg: *msg, Symbol: "abort"})
}

func revert(msg, symbol *string) {
	panic(&RevertError{Msg: *msg, Symbol: *symbol})
}

func stateSetObject(key *string, value *string) *string {
	mockHost.State[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := mockHost.State[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(mockHost.State, *key)
	return nil
}

func getEnv(arg *string) *string {
	blob := mockHost.envJSON()
	return &blob
}

func getEnvKey(arg *string) *string {
	var val string
	switch *arg {
	case "contract.id":
		val = mockHost.Env.ContractId
	case "tx.id":
		val = mockHost.Env.TxId
	case "block.id":
		val = mockHost.Env.BlockId
	case "block.timestamp":
		val = mockHost.Env.Timestamp
	default:
		return nil
	}
	return &val
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := strconv.FormatInt(mockHost.Balance(Address(*arg1), Asset(*arg2)), 10)
	return &bal
}

func hiveDraw(arg1 *string, arg2 *string) *string {
	amount, err := strconv.ParseInt(*arg1, 10, 64)
	if err != nil {
		panic(&RevertError{Msg: "invalid draw amount", Symbol: "abort"})
	}
	payer := mockHost.Env.Payer
	if payer == "" {
		payer = mockHost.Env.Sender.Address
	}
	mockHost.move(payer, mockHost.ContractAddress(), Asset(*arg2), amount)
	mockHost.Draws = append(mockHost.Draws, TransferRecord{
		From:   payer,
		To:     mockHost.ContractAddress(),
		Amount: amount,
		Asset:  Asset(*arg2),
	})
	return nil
}

func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	amount, err := strconv.ParseInt(*arg2, 10, 64)
	if err != nil {
		panic(&RevertError{Msg: "invalid transfer amount", Symbol: "abort"})
	}
	mockHost.move(mockHost.ContractAddress(), Address(*arg1), Asset(*arg3), amount)
	mockHost.Transfers = append(mockHost.Transfers, TransferRecord{
		From:   mockHost.ContractAddress(),
		To:     Address(*arg1),
		Amount: amount,
		Asset:  Asset(*arg3),
	})
	return nil
}

func registryIssueCollection(name *string, ticker *string, props *string, fee *string) *string {
	var parsedProps CollectionProperties
	json.Unmarshal([]byte(*props), &parsedProps)
	feeAmount, _ := strconv.ParseInt(*fee, 10, 64)
	// the registry takes custody of the issuance fee right away
	mockHost.move(mockHost.ContractAddress(), mockHost.RegistryAddress, AssetHive, feeAmount)
	mockHost.IssueRequests = append(mockHost.IssueRequests, IssueCollectionRecord{
		Name:   *name,
		Ticker: *ticker,
		Props:  parsedProps,
		Fee:    feeAmount,
	})
	return nil
}

func registrySetCollectionRoles(collection *string, roles *string) *string {
	mockHost.RoleGrants = append(mockHost.RoleGrants, RoleGrantRecord{
		Collection: *collection,
		Roles:      strings.Split(*roles, ","),
	})
	return nil
}

func nftCreate(req *string) *string {
	if mockHost.FailNftCreate {
		panic(&RevertError{Msg: "nft create rejected by host", Symbol: "abort"})
	}
	var parsed NftCreateRequest
	if err := json.Unmarshal([]byte(*req), &parsed); err != nil {
		panic(&RevertError{Msg: "invalid mint request", Symbol: "abort"})
	}
	nonce := mockHost.NextNonce
	mockHost.NextNonce++
	mockHost.Created = append(mockHost.Created, NftCreateRecord{
		Request: parsed,
		Nonce:   nonce,
	})
	res := strconv.FormatUint(nonce, 10)
	return &res
}

func nftTransfer(to *string, collection *string, nonce *string, amount *string) *string {
	parsedNonce, _ := strconv.ParseUint(*nonce, 10, 64)
	parsedAmount, _ := strconv.ParseInt(*amount, 10, 64)
	mockHost.NftTransfers = append(mockHost.NftTransfers, NftTransferRecord{
		To:         Address(*to),
		Collection: *collection,
		Nonce:      parsedNonce,
		Amount:     parsedAmount,
	})
	return nil
}
