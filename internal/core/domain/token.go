package domain

// CatalogTokenType is the fixed type tag embedded in public catalog tokens.
// Verification rejects any token carrying a different tag.
const CatalogTokenType = "public_catalog"

// CatalogPayload is the decoded content of a public catalog token. The token
// is a read-only capability over the vehicle list; it never grants mutation.
type CatalogPayload struct {
	GarageID  int
	Timestamp int64
	Random    string
}
