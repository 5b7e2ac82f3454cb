package handler

import "github.com/sellhub/marketplace-api/internal/core/domain"

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
	Category    string   `json:"category"    validate:"omitempty,oneof=electronics clothing food books other"`
}

// updateProductRequest is a partial update: every field is optional, and a
// field present in the JSON body is applied even when it holds a zero value
// (e.g. setting quantity to 0 works the same as setting it to 5).
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=electronics clothing food books other"`
	Status      *string  `json:"status"      validate:"omitempty,oneof=active inactive discontinued"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

// toProductPatch maps the HTTP request onto the domain patch structure.
func toProductPatch(req updateProductRequest) domain.ProductPatch {
	patch := domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if req.Category != nil {
		cat := domain.Category(*req.Category)
		patch.Category = &cat
	}
	if req.Status != nil {
		st := domain.ProductStatus(*req.Status)
		patch.Status = &st
	}
	return patch
}
