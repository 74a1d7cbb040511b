package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zencommerce/trexle-payment-service/internal/card"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/middleware"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/response"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/usecase"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

type CardHandler struct {
	Usecase usecase.PaymentUsecase
}

func NewCardHandler(uc usecase.PaymentUsecase) *CardHandler {
	return &CardHandler{Usecase: uc}
}

type storeCardRequest struct {
	Email string      `json:"email"`
	Card  cardRequest `json:"card"`
}

type storedCardResponse struct {
	Token       string    `json:"token"`
	Scheme      string    `json:"scheme"`
	LastFour    string    `json:"last_four"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	AddedAt     time.Time `json:"added_at"`
}

func (h *CardHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req storeCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	customerID := middleware.CustomerIDFrom(r.Context())
	output, err := h.Usecase.StoreCard(r.Context(), &paymentdto.StoreCardInput{
		CustomerID: customerID,
		SessionID:  middleware.SessionTokenFrom(r.Context()),
		Email:      req.Email,
		Card:       *toCardInput(&req.Card),
	})
	if err != nil {
		var validationErr *card.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusUnprocessableEntity, "card_invalid", validationErr.Error())
			return
		}
		response.Error(w, http.StatusBadGateway, "gateway_error", err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, toStoredCardResponse(output))
}

func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID := middleware.CustomerIDFrom(r.Context())
	cards, err := h.Usecase.ListStoredCards(r.Context(), customerID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal", "failed to list stored cards")
		return
	}

	resp := make([]*storedCardResponse, len(cards))
	for i, stored := range cards {
		resp[i] = toStoredCardResponse(stored)
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	h.delete(w, r, token)
}

// LegacyDelete keeps the storefront's original AJAX contract: a form
// POST with delTrexleTokenAct=del and the token to remove.
func (h *CardHandler) LegacyDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	if r.PostFormValue("delTrexleTokenAct") != "del" {
		response.Error(w, http.StatusBadRequest, "bad_request", "unknown action")
		return
	}
	h.delete(w, r, r.PostFormValue("token"))
}

func (h *CardHandler) delete(w http.ResponseWriter, r *http.Request, token string) {
	if token == "" {
		response.Error(w, http.StatusBadRequest, "bad_request", "token is required")
		return
	}

	customerID := middleware.CustomerIDFrom(r.Context())
	if err := h.Usecase.DeleteStoredCard(r.Context(), customerID, token); err != nil {
		if errors.Is(err, domain.ErrStoredCardNotFound) {
			response.Error(w, http.StatusNotFound, "stored_card_not_found", "stored card not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "internal", "failed to delete stored card")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"deleted": token})
}

func toStoredCardResponse(output *paymentdto.StoredCardOutput) *storedCardResponse {
	return &storedCardResponse{
		Token:       output.Token,
		Scheme:      output.Scheme,
		LastFour:    output.LastFour,
		ExpiryMonth: output.ExpiryMonth,
		ExpiryYear:  output.ExpiryYear,
		AddedAt:     output.AddedAt,
	}
}
