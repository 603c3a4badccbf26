package contract

// -----------------------------------------------------------------------------
// Economic Limits
// -----------------------------------------------------------------------------

const (
	// RoyaltiesMax caps royalty basis points at 100%.
	RoyaltiesMax = 10_000
	// CommunityTreasure is the fixed edition quantity handed out per buy_community call.
	CommunityTreasure = 250
)

// -----------------------------------------------------------------------------
// Attribute Buffer Layout
// -----------------------------------------------------------------------------

// The attribute blob is "tags:<tags>;metadata:<cid>/<file>" and the stored
// hash is the sha256 digest over exactly those bytes. Indexers rely on this
// layout, so the labels and separators are frozen.
const (
	tagsKeyName     = "tags:"
	metadataKeyName = "metadata:"
	attrSeparator   = ";"
	uriSlash        = "/"
)

// -----------------------------------------------------------------------------
// Singleton Storage Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the pipe-encoded ContractConfig singleton.
	ContractConfigKey = "cfg"
	// CollectionIdKey holds the registry-allocated collection identifier, write-once.
	CollectionIdKey = "coll:id"
	// CollectionNameKey keeps the display name stored before the issue call suspends.
	CollectionNameKey = "coll:name"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kPriceTag stores one serialized PriceTag per minted edition nonce.
	kPriceTag byte = 0x01
)

// -----------------------------------------------------------------------------
// Collection Roles
// -----------------------------------------------------------------------------

// localRoles are the capabilities requested over the contract's own
// collection: mint new instances, add quantity to existing ones, burn.
var localRoles = []string{"nft_create", "nft_add_quantity", "nft_burn"}
