package sdk

import "encoding/json"

// Intent is a caller-signed permission attached to the transaction, most
// importantly transfer.allow which caps what the contract may draw.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-invocation execution context handed over by the host.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       Address
	Intents     []Intent
}

// envWire mirrors the flat dotted-key JSON blob the host emits for get_env.
type envWire struct {
	ContractId           string   `json:"contract.id"`
	TxId                 string   `json:"tx.id"`
	Index                int64    `json:"tx.index"`
	OpIndex              int64    `json:"tx.op_index"`
	BlockId              string   `json:"block.id"`
	BlockHeight          uint64   `json:"block.height"`
	Timestamp            string   `json:"block.timestamp"`
	Sender               string   `json:"msg.sender"`
	Caller               string   `json:"msg.caller"`
	Payer                string   `json:"msg.payer"`
	RequiredAuths        []string `json:"msg.required_auths"`
	RequiredPostingAuths []string `json:"msg.required_posting_auths"`
	Intents              []Intent `json:"intents"`
}

// parseEnv maps the host blob into the Env struct used everywhere else.
func parseEnv(raw string) Env {
	var wire envWire
	json.Unmarshal([]byte(raw), &wire)

	requiredAuths := make([]Address, 0, len(wire.RequiredAuths))
	for _, auth := range wire.RequiredAuths {
		requiredAuths = append(requiredAuths, Address(auth))
	}
	requiredPostingAuths := make([]Address, 0, len(wire.RequiredPostingAuths))
	for _, auth := range wire.RequiredPostingAuths {
		requiredPostingAuths = append(requiredPostingAuths, Address(auth))
	}

	return Env{
		ContractId:  wire.ContractId,
		TxId:        wire.TxId,
		Index:       wire.Index,
		OpIndex:     wire.OpIndex,
		BlockId:     wire.BlockId,
		BlockHeight: wire.BlockHeight,
		Timestamp:   wire.Timestamp,
		Sender: Sender{
			Address:              Address(wire.Sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		},
		Caller:  Caller{Address: Address(wire.Caller)},
		Payer:   Address(wire.Payer),
		Intents: wire.Intents,
	}
}
