package rest

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/filecommerce/internal/service"
	"github.com/abgdnv/filecommerce/pkg/web"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	service service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new instance of CartHandler with the provided service.
func NewCartHandler(service service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With("component", "rest_carts"),
	}
}

// RegisterRoutes registers the HTTP routes for carts.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/carts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{id}", h.FindItems)
		r.Post("/{id}/product/{pid}", h.AddProduct)
	})
}

// Create creates an empty cart.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, h.logger, "Error creating cart", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Cart created successfully", "ID", cart.ID)
	web.RespondJSON(w, h.logger, http.StatusCreated, cart)
}

// FindItems returns the line items of a cart.
func (h *CartHandler) FindItems(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.logger.DebugContext(r.Context(), "Received request to find cart items", "ID", id)

	items, err := h.service.FindItems(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.logger, "Error retrieving cart", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, items)
}

// AddProduct adds the requested quantity of a product to a cart.
// A missing body is treated as a missing quantity.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("id")
	productID := r.PathValue("pid")

	var addProductDto service.AddProductDto
	if err := web.DecodeJSON(w, r, &addProductDto); err != nil {
		respondInvalidBody(w, r, h.logger, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to add product to cart",
		"cartID", cartID, "productID", productID, "quantity", addProductDto.Quantity)

	cart, err := h.service.AddProduct(r.Context(), cartID, productID, addProductDto)
	if err != nil {
		respondServiceError(w, r, h.logger, "Error adding product to cart", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product added to cart", "cartID", cart.ID, "productID", productID)
	web.RespondJSON(w, h.logger, http.StatusOK, cart)
}
