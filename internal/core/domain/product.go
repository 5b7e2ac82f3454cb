package domain

import "time"

// Category classifies a product.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryFood, CategoryBooks, CategoryOther:
		return true
	}
	return false
}

// ProductStatus is the lifecycle state of a product listing.
type ProductStatus string

const (
	StatusActive       ProductStatus = "active"
	StatusInactive     ProductStatus = "inactive"
	StatusDiscontinued ProductStatus = "discontinued"
)

// Valid reports whether s is one of the known statuses.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDiscontinued:
		return true
	}
	return false
}

// Product is a marketplace listing. CreatedBy is a non-owning reference to the
// creating user; deleting that user does not cascade to their products.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	Category    Category      `json:"category"`
	Status      ProductStatus `json:"status"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProductPatch is a partial update. A nil field is left untouched; a non-nil
// field is applied even when it holds a zero value, so setting quantity to 0
// behaves the same as setting it to any other number.
type ProductPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	Quantity    *int           `json:"quantity,omitempty"`
	Category    *Category      `json:"category,omitempty"`
	Status      *ProductStatus `json:"status,omitempty"`
}

// CanMutate implements the ownership-or-admin rule: a product may be changed
// by its creator or by any admin.
func (p *Product) CanMutate(callerID string, callerRole Role) bool {
	return p.CreatedBy == callerID || callerRole == RoleAdmin
}
