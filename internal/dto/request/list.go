package request

// SyncListRequest carries the product references a guest accumulated
// locally before logging in. Entries that are not valid identifiers or
// do not exist in the catalog are dropped during the merge.
type SyncListRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required"`
}
