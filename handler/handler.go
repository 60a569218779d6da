package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
	"github.com/swastikaa0/GroceryWebDevelopment-sub001/service"
	"github.com/swastikaa0/GroceryWebDevelopment-sub001/store"
)

// loginPath is where the page navigates after a successful registration.
const loginPath = "/login.html"

// Handler is the HTTP layer that talks to service.Service
type Handler struct {
	svc service.ServiceInterface
}

// NewHandler returns a Handler instance
func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{svc: s}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Products
	r.HandleFunc("/products/list", h.ListProducts).Methods("GET")
	r.HandleFunc("/products/search", h.SearchProducts).Methods("GET")
	r.HandleFunc("/products/category/{category}", h.ProductsByCategory).Methods("GET")
	r.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")

	// Cart
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	r.HandleFunc("/cart/quantity", h.SetCartQuantity).Methods("POST")
	r.HandleFunc("/cart/summary", h.CartSummary).Methods("GET")

	// Registration
	r.HandleFunc("/register", h.Register).Methods("POST")
}

// --- request / response shapes ---
type cartItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"` // optional for add (defaults to 1) and remove
}

// --- helpers ---
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeCartErr maps cart errors onto HTTP codes.
func writeCartErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidQuantity):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

// --- Handler ---

// ListProducts handles GET /products/list
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListProducts())
}

// SearchProducts handles GET /products/search?q=...
// An empty or missing q returns the full catalog.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.svc.SearchProducts(q))
}

// ProductsByCategory handles GET /products/category/{category}
func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	writeJSON(w, http.StatusOK, h.svc.ProductsByCategory(category))
}

// GetProduct handles GET /products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := h.svc.GetProduct(id)
	if err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// AddToCart handles POST /cart/add
// body: { "product_id": "p1", "quantity": 2 } — quantity defaults to 1
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if err := h.svc.AddToCart(req.ProductID, qty); err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

// RemoveFromCart handles POST /cart/remove
// body: { "product_id": "p1" } — removing an absent product still succeeds
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	h.svc.RemoveFromCart(req.ProductID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// SetCartQuantity handles POST /cart/quantity
// body: { "product_id": "p1", "quantity": 3 } — quantity 0 clears the line
func (h *Handler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if err := h.svc.SetCartQuantity(req.ProductID, req.Quantity); err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// CartSummary handles GET /cart/summary
func (h *Handler) CartSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.CartSummary()
	if err != nil {
		writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// Register handles POST /register
// On success the response carries the path the page should navigate to.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var form models.RegistrationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if _, err := h.svc.Register(form); err != nil {
		var fe *service.FieldError
		if errors.As(err, &fe) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "field": fe.Field})
			return
		}
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "registered", "redirect": loginPath})
}
