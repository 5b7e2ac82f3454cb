package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellhub/marketplace-api/internal/api/metrics"
	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations. Read routes
// are open; mutations run behind the Auth middleware.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    domain.Category(req.Category),
		CallerID:    userID,
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(product.Category)).Inc()
	return c.JSON(http.StatusCreated, productResponse{Product: product})
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productsResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// ListByCategory handles GET /products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200       {object}  productsResponse
// @Failure      400       {object}  map[string]string
// @Router       /products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), domain.Category(c.Param("category")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Search handles GET /products/search?query=.
//
// @Summary      Search products by name or description
// @Tags         products
// @Produce      json
// @Param        query  query     string  true  "Search text"
// @Success      200    {object}  productsResponse
// @Failure      400    {object}  map[string]string
// @Router       /products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Update handles PUT /products/:id.
//
// @Summary      Update a product (owner or admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), toProductPatch(req), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("ownership").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product (owner or admin)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("ownership").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
