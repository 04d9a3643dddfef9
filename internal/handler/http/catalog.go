package http

import (
	"encoding/json"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/catalog"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	// Categories
	CreateCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)

	// Products
	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)

	// Variants and inventory
	CreateVariant(w http.ResponseWriter, r *http.Request)
	ListVariants(w http.ResponseWriter, r *http.Request)
	ListInventory(w http.ResponseWriter, r *http.Request)
	UpdateVariant(w http.ResponseWriter, r *http.Request)
	UpdateStock(w http.ResponseWriter, r *http.Request)
	DeleteVariant(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{catalogService: catalogService}
}

// ========== CATEGORIES ==========

func (h *catalogHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created successfully", result)
}

func (h *catalogHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PRODUCTS ==========

func (h *catalogHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.catalogService.CreateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", result)
}

func (h *catalogHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateProduct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted successfully", nil)
}

// ========== VARIANTS AND INVENTORY ==========

func (h *catalogHandlerImpl) CreateVariant(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProductID = chi.URLParam(r, "id")

	result, err := h.catalogService.CreateVariant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product variant created successfully", result)
}

func (h *catalogHandlerImpl) ListVariants(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListVariantsByProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) ListInventory(w http.ResponseWriter, r *http.Request) {
	lowStockOnly := r.URL.Query().Get("low_stock") == "true"

	result, err := h.catalogService.ListInventory(r.Context(), lowStockOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.VariantID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateVariant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.VariantID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateStock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *catalogHandlerImpl) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteVariant(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product variant deleted successfully", nil)
}
