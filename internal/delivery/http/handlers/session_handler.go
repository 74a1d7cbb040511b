package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/middleware"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/response"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

// SessionHandler lets the storefront issue a session when a customer
// signs in, and destroy it on logout.
type SessionHandler struct {
	Store domain.SessionStore
}

func NewSessionHandler(store domain.SessionStore) *SessionHandler {
	return &SessionHandler{Store: store}
}

type createSessionRequest struct {
	CustomerID string `json:"customer_id"`
}

type createSessionResponse struct {
	Token string `json:"token"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID == "" {
		response.Error(w, http.StatusBadRequest, "bad_request", "customer_id is required")
		return
	}

	token, err := h.Store.Create(r.Context(), req.CustomerID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal", "failed to create session")
		return
	}

	response.JSON(w, http.StatusCreated, createSessionResponse{Token: token})
}

func (h *SessionHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFrom(r.Context())
	if err := h.Store.Destroy(r.Context(), token); err != nil {
		response.Error(w, http.StatusInternalServerError, "internal", "failed to destroy session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"destroyed": true})
}
