package model

// Item is a generic named entity stored in the items table.
// This is a pure domain model with no database-specific dependencies or tags.
// The external id representation is a string; it is assigned by the store on insert
// and never accepted from clients.
type Item struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ItemPatch is a partial update for an Item. A nil field means "leave the stored
// value untouched"; only non-nil fields are written.
type ItemPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// Empty reports whether the patch carries no fields to write.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil
}
