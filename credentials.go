package cardpointe

// Credentials identifies a merchant against a CardPointe site.
// The zero-value fields are never mutated after construction, so a
// single Credentials value may back any number of concurrent calls.
type Credentials struct {
	// Site is the CardPointe site subdomain, for example "fts-uat".
	Site string
	// MerchantID is the merchant ID (MID) scoping every gateway request.
	MerchantID string
	Username   string
	Password   string
}
