package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"gleamgallery/internal/middleware"
	"gleamgallery/internal/models"
	"gleamgallery/internal/services"
)

type CartHandler struct {
	cart     *services.CartService
	products *services.ProductService
	logger   zerolog.Logger
}

func NewCartHandler(cart *services.CartService, products *services.ProductService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{cart: cart, products: products, logger: logger}
}

// subject resolves the cart owner: the authenticated user id, or the
// guest bucket when nobody is logged in.
func subject(r *http.Request) string {
	if userID, ok := middleware.GetUserID(r); ok && userID != "" {
		return userID
	}
	return services.GuestSubject
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart.Get(subject(r))
	respondWithJSON(w, http.StatusOK, models.CartResponse{Cart: cart})
}

// AddItem snapshots the product into the cart. The line item keeps the
// product data as of now; later catalog edits do not touch it.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	product, ok := h.products.Get(req.ProductID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "not_found", "Product not found")
		return
	}

	cart, message := h.cart.AddItem(subject(r), product, req.Quantity)
	respondWithJSON(w, http.StatusOK, models.CartResponse{Message: message, Cart: cart})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	productID := mux.Vars(r)["productId"]
	cart := h.cart.UpdateQuantity(subject(r), productID, req.Quantity)
	respondWithJSON(w, http.StatusOK, models.CartResponse{Cart: cart})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	cart, message := h.cart.RemoveItem(subject(r), productID)
	respondWithJSON(w, http.StatusOK, models.CartResponse{Message: message, Cart: cart})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart.Clear(subject(r))
	respondWithJSON(w, http.StatusOK, models.CartResponse{Cart: cart})
}
