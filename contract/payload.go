package contract

import (
	"fmt"
	"strconv"
	"strings"

	"edition_sale/sdk"
)

// decodeIssueTokenArgs unpacks the `name|ticker` payload of issue_token.
func decodeIssueTokenArgs(payload *string) *IssueTokenArgs {
	raw := unwrapPayload(payload, "issue payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("issue payload requires name|ticker")
	}
	name := strings.TrimSpace(parts[0])
	ticker := strings.TrimSpace(parts[1])
	if name == "" || ticker == "" {
		sdk.Abort("issue payload requires name|ticker")
	}
	return &IssueTokenArgs{Name: name, Ticker: ticker}
}

// decodeIssueResult parses the system callback payload.
// Success: `ok|<collectionId>`  Failure: `err|<asset>|<amount>`
func decodeIssueResult(payload *string) *IssueResult {
	raw := unwrapPayload(payload, "callback payload missing")
	parts := strings.Split(raw, "|")
	switch strings.TrimSpace(parts[0]) {
	case "ok":
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			sdk.Abort("callback success requires a collection id")
		}
		return &IssueResult{Ok: true, CollectionId: strings.TrimSpace(parts[1])}
	case "err":
		res := &IssueResult{Ok: false}
		if len(parts) >= 3 {
			res.ReturnedAsset = sdk.Asset(strings.TrimSpace(parts[1]))
			res.ReturnedAmount = Amount(parseIntField(parts[2], "returned amount"))
		}
		return res
	default:
		sdk.Abort("callback payload requires ok|... or err|...")
		return nil
	}
}

// decodeCreateTokenArgs unpacks the pipe-delimited payload used for create_token calls.
// Format: name|price|metadataCid|metadataFile|amount|maxPerAddress|royalties|tags|uri1,uri2,...
func decodeCreateTokenArgs(payload *string) *CreateTokenArgs {
	raw := unwrapPayload(payload, "create token payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	name := strings.TrimSpace(get(0))
	if name == "" {
		sdk.Abort("token name cannot be empty")
	}
	return &CreateTokenArgs{
		Name:          name,
		Price:         Amount(parseIntField(get(1), "price")),
		MetadataCid:   strings.TrimSpace(get(2)),
		MetadataFile:  strings.TrimSpace(get(3)),
		Amount:        parseIntField(get(4), "amount"),
		MaxPerAddress: Amount(parseUintField(get(5), "max per address")),
		Royalties:     parseUintField(get(6), "royalties"),
		Tags:          strings.TrimSpace(get(7)),
		Uris:          parseUriField(get(8)),
	}
}

// decodeBuyArgs expects `amount|nonce`.
func decodeBuyArgs(payload *string) *BuyArgs {
	raw := unwrapPayload(payload, "buy payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("buy payload requires amount|nonce")
	}
	return &BuyArgs{
		Amount: parseIntField(parts[0], "amount"),
		Nonce:  parseUintField(parts[1], "nonce"),
	}
}

// decodeNonceArg parses the single-nonce payload used by views and buy_community.
func decodeNonceArg(payload *string) uint64 {
	raw := unwrapPayload(payload, "nonce payload missing")
	return parseUintField(raw, "nonce")
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				raw = unquoted
			} else {
				raw = raw[1 : len(raw)-1]
			}
			raw = strings.TrimSpace(raw)
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseIntField trims the input and aborts with a friendly field name on errors.
// Signed on purpose: range checks belong to the endpoints.
func parseIntField(val string, field string) int64 {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseUintField is the unsigned variant used for ids and caps.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseUriField splits the comma-separated content reference list.
func parseUriField(val string) []string {
	val = strings.TrimSpace(val)
	if val == "" {
		return []string{}
	}
	raw := strings.Split(val, ",")
	uris := make([]string, 0, len(raw))
	for _, uri := range raw {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		uris = append(uris, uri)
	}
	return uris
}

// Convenience helper
func strptr(s string) *string { return &s }
