package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zencommerce/trexle-payment-service/internal/card"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/response"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/usecase"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

type PaymentHandler struct {
	Usecase usecase.PaymentUsecase
}

func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{Usecase: uc}
}

type cardRequest struct {
	Number          string `json:"number"`
	Name            string `json:"name"`
	CVC             string `json:"cvc"`
	ExpiryMonth     int    `json:"expiry_month"`
	ExpiryYear      int    `json:"expiry_year"`
	AddressLine1    string `json:"address_line1"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressPostcode string `json:"address_postcode"`
	AddressCountry  string `json:"address_country"`
}

type purchaseRequest struct {
	OrderID         string       `json:"order_id"`
	CustomerID      string       `json:"customer_id"`
	SessionID       string       `json:"session_id"`
	Email           string       `json:"email"`
	IPAddress       string       `json:"ip_address"`
	Amount          string       `json:"amount"`
	Currency        string       `json:"currency"`
	Description     string       `json:"description"`
	Card            *cardRequest `json:"card"`
	StoredCardToken string       `json:"stored_card_token"`
	SaveCard        bool         `json:"save_card"`
}

type purchaseResponse struct {
	Success     bool                `json:"success"`
	Reference   string              `json:"reference"`
	ChargeToken string              `json:"charge_token,omitempty"`
	Message     string              `json:"message,omitempty"`
	Code        string              `json:"code,omitempty"`
	StoredCard  *storedCardResponse `json:"stored_card,omitempty"`
}

type refundRequest struct {
	OrderID   string `json:"order_id"`
	SessionID string `json:"session_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

type refundResponse struct {
	Success     bool   `json:"success"`
	Reference   string `json:"reference"`
	RefundToken string `json:"refund_token,omitempty"`
	Message     string `json:"message,omitempty"`
	Code        string `json:"code,omitempty"`
}

type transactionResponse struct {
	Reference    string    `json:"reference"`
	OrderID      string    `json:"order_id"`
	Action       string    `json:"action"`
	Success      bool      `json:"success"`
	ResponseCode string    `json:"response_code"`
	ResponseText string    `json:"response_text"`
	GatewayTxnID string    `json:"gateway_txn_id"`
	AuthType     string    `json:"auth_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (h *PaymentHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.OrderID == "" || req.Amount == "" {
		response.Error(w, http.StatusBadRequest, "bad_request", "order_id and amount are required")
		return
	}

	input := &paymentdto.PurchaseInput{
		OrderID:         req.OrderID,
		CustomerID:      req.CustomerID,
		SessionID:       req.SessionID,
		Email:           req.Email,
		IPAddress:       req.IPAddress,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		StoredCardToken: req.StoredCardToken,
		SaveCard:        req.SaveCard,
	}
	if req.Card != nil {
		input.Card = toCardInput(req.Card)
	}

	output, err := h.Usecase.Purchase(r.Context(), input)
	if err != nil {
		writePaymentError(w, err)
		return
	}

	resp := purchaseResponse{
		Success:     output.Success,
		Reference:   output.Reference,
		ChargeToken: output.ChargeToken,
		Message:     output.Message,
		Code:        output.Code,
	}
	if output.StoredCard != nil {
		resp.StoredCard = toStoredCardResponse(output.StoredCard)
	}

	// declines are a payload, not an HTTP error
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.OrderID == "" || req.Amount == "" {
		response.Error(w, http.StatusBadRequest, "bad_request", "order_id and amount are required")
		return
	}

	output, err := h.Usecase.Refund(r.Context(), &paymentdto.RefundInput{
		OrderID:   req.OrderID,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		Currency:  req.Currency,
	})
	if err != nil {
		writePaymentError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, refundResponse{
		Success:     output.Success,
		Reference:   output.Reference,
		RefundToken: output.RefundToken,
		Message:     output.Message,
		Code:        output.Code,
	})
}

func (h *PaymentHandler) OrderTransactions(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	txns, err := h.Usecase.GetTransactionsByOrder(orderID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal", "failed to load transactions")
		return
	}

	resp := make([]transactionResponse, len(txns))
	for i, txn := range txns {
		resp[i] = transactionResponse{
			Reference:    txn.Reference,
			OrderID:      txn.OrderID,
			Action:       string(txn.Action),
			Success:      txn.Success,
			ResponseCode: txn.ResponseCode,
			ResponseText: txn.ResponseText,
			GatewayTxnID: txn.GatewayTxnID,
			AuthType:     txn.AuthType,
			CreatedAt:    txn.CreatedAt,
		}
	}

	response.JSON(w, http.StatusOK, resp)
}

func toCardInput(req *cardRequest) *paymentdto.CardInput {
	return &paymentdto.CardInput{
		Number:          req.Number,
		Name:            req.Name,
		CVC:             req.CVC,
		ExpiryMonth:     req.ExpiryMonth,
		ExpiryYear:      req.ExpiryYear,
		AddressLine1:    req.AddressLine1,
		AddressCity:     req.AddressCity,
		AddressState:    req.AddressState,
		AddressPostcode: req.AddressPostcode,
		AddressCountry:  req.AddressCountry,
	}
}

func writePaymentError(w http.ResponseWriter, err error) {
	var validationErr *card.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusUnprocessableEntity, "card_invalid", validationErr.Error())
	case errors.Is(err, usecase.ErrInvalidAmount):
		response.Error(w, http.StatusBadRequest, "amount_invalid", err.Error())
	case errors.Is(err, domain.ErrOrderTokenNotFound):
		response.Error(w, http.StatusNotFound, "order_not_found", "no charge token recorded for order")
	case errors.Is(err, domain.ErrStoredCardNotFound):
		response.Error(w, http.StatusNotFound, "stored_card_not_found", "stored card not found")
	case errors.Is(err, domain.ErrGatewayDeclined):
		response.Error(w, http.StatusBadGateway, "gateway_declined", "gateway declined the request")
	default:
		response.Error(w, http.StatusBadGateway, "gateway_error", err.Error())
	}
}
