package contract

import (
	"encoding/json"
	"fmt"

	"edition_sale/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Price Tag Persistence
////////////////////////////////////////////////////////////////////////////////

func savePriceTag(tag *PriceTag) {
	key := priceTagKey(tag.Nonce)
	b, err := json.Marshal(tag)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal price tag %d: %v", tag.Nonce, err))
	}
	sdk.StateSetObject(key, string(b))
}

// loadPriceTag returns nil when no edition was minted under the nonce.
func loadPriceTag(nonce uint64) *PriceTag {
	key := priceTagKey(nonce)
	ptr := sdk.StateGetObject(key)
	if ptr == nil {
		return nil
	}
	var tag PriceTag
	if err := json.Unmarshal([]byte(*ptr), &tag); err != nil {
		sdk.Abort(fmt.Sprintf("failed to unmarshal price tag %d: %v", nonce, err))
	}
	return &tag
}
