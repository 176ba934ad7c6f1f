// Package customers provides customer records: validated creation, partial
// update, identity lookup, and filtered paginated listing.
package customers

import "time"

// Customer represents a stored customer row. The identity is assigned at
// creation and never altered by update.
type Customer struct {
	ID            string     `json:"customer_id"`
	UniqueID      string     `json:"customer_unique_id"`
	ZipCodePrefix string     `json:"customer_zip_code_prefix"`
	City          string     `json:"customer_city"`
	State         string     `json:"customer_state"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// CreateCommand contains the data needed to create a new customer.
type CreateCommand struct {
	ID            string `json:"customer_id" validate:"required"`
	UniqueID      string `json:"customer_unique_id" validate:"required"`
	ZipCodePrefix string `json:"customer_zip_code_prefix" validate:"required,min=5,max=10"`
	City          string `json:"customer_city" validate:"required"`
	State         string `json:"customer_state" validate:"required,len=2"`
}

// UpdateCommand contains the patch applied to an existing customer. Only
// supplied fields overwrite stored values; nil fields retain prior values.
type UpdateCommand struct {
	UniqueID      *string `json:"customer_unique_id,omitempty" validate:"omitempty,min=1"`
	ZipCodePrefix *string `json:"customer_zip_code_prefix,omitempty" validate:"omitempty,min=5,max=10"`
	City          *string `json:"customer_city,omitempty" validate:"omitempty,min=1"`
	State         *string `json:"customer_state,omitempty" validate:"omitempty,len=2"`
}

// Empty reports whether the patch carries no settable fields.
func (c UpdateCommand) Empty() bool {
	return c.UniqueID == nil && c.ZipCodePrefix == nil && c.City == nil && c.State == nil
}
