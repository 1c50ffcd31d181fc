package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type addCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type updateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Section     string  `json:"section"`
	Variant     string  `json:"variant"`
	Color       string  `json:"color"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// AddProduct handles the admin catalog-entry creation request. Product fields
// arrive as multipart form values with the images under "images".
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	input := usecase.AddProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Brand:       c.FormValue("brand"),
		Category:    c.FormValue("category"),
		Section:     c.FormValue("section"),
		Variant:     c.FormValue("variant"),
		Color:       c.FormValue("color"),
	}
	input.Price, _ = strconv.ParseFloat(c.FormValue("price"), 64)
	input.Stock, _ = strconv.Atoi(c.FormValue("stock"))

	if form, err := c.MultipartForm(); err == nil {
		for _, fileHeader := range form.File["images"] {
			upload, err := readUpload(fileHeader)
			if err != nil {
				return errors.WithStack(err)
			}
			input.Images = append(input.Images, *upload)
		}
	}

	product, err := h.uc.AddProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added successfully")
}

// UpdateProduct handles the admin catalog-entry edit request.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, usecase.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		Brand:       req.Brand,
		Category:    req.Category,
		Section:     req.Section,
		Variant:     req.Variant,
		Color:       req.Color,
		Stock:       req.Stock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// ListProducts handles the paginated catalog listing request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Brand:    c.QueryParam("brand"),
		Category: c.QueryParam("category"),
		Section:  c.QueryParam("section"),
		Page:     intQueryParam(c, "page"),
		Limit:    intQueryParam(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// GetProduct handles the single product read.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// LatestProducts handles the home-page newest products request.
func (h *CatalogHandler) LatestProducts(c echo.Context) error {
	products, err := h.uc.LatestProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Latest products retrieved successfully")
}

// TopBySection handles the featured-products-per-section request.
func (h *CatalogHandler) TopBySection(c echo.Context) error {
	products, err := h.uc.TopBySection(c.Request().Context(), c.Param("section"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Section products retrieved successfully")
}

// AddComment handles the shopper comment request on a product.
func (h *CatalogHandler) AddComment(c echo.Context) error {
	productID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddComment(c.Request().Context(), usecase.AddCommentInput{
		ProductID: productID,
		UserID:    userID,
		Comment:   req.Comment,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Comment added successfully")
}
