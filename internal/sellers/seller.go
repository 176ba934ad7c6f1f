// Package sellers provides seller records: validated creation, partial
// update, identity lookup, and filtered paginated listing.
package sellers

// Seller represents a stored seller row.
type Seller struct {
	ID            string `json:"seller_id"`
	ZipCodePrefix string `json:"seller_zip_code_prefix"`
	City          string `json:"seller_city"`
	State         string `json:"seller_state"`
}

// CreateCommand contains the data needed to create a new seller.
type CreateCommand struct {
	ID            string `json:"seller_id" validate:"required"`
	ZipCodePrefix string `json:"seller_zip_code_prefix" validate:"required,min=5,max=10"`
	City          string `json:"seller_city" validate:"required"`
	State         string `json:"seller_state" validate:"required,len=2"`
}

// UpdateCommand contains the patch applied to an existing seller. Only
// supplied fields overwrite stored values; nil fields retain prior values.
type UpdateCommand struct {
	ZipCodePrefix *string `json:"seller_zip_code_prefix,omitempty" validate:"omitempty,min=5,max=10"`
	City          *string `json:"seller_city,omitempty" validate:"omitempty,min=1"`
	State         *string `json:"seller_state,omitempty" validate:"omitempty,len=2"`
}

// Empty reports whether the patch carries no settable fields.
func (c UpdateCommand) Empty() bool {
	return c.ZipCodePrefix == nil && c.City == nil && c.State == nil
}
