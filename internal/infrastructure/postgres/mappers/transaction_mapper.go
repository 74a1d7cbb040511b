package mappers

import (
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:           model.ID,
		Reference:    model.Reference,
		CustomerID:   model.CustomerID,
		OrderID:      model.OrderID,
		Action:       model.Action,
		Success:      model.Success,
		ResponseCode: model.ResponseCode,
		ResponseText: model.ResponseText,
		GatewayTxnID: model.GatewayTxnID,
		AuthType:     model.AuthType,
		SentData:     model.SentData,
		ReceivedData: model.ReceivedData,
		SessionID:    model.SessionID,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:           txn.ID,
		Reference:    txn.Reference,
		CustomerID:   txn.CustomerID,
		OrderID:      txn.OrderID,
		Action:       txn.Action,
		Success:      txn.Success,
		ResponseCode: txn.ResponseCode,
		ResponseText: txn.ResponseText,
		GatewayTxnID: txn.GatewayTxnID,
		AuthType:     txn.AuthType,
		SentData:     txn.SentData,
		ReceivedData: txn.ReceivedData,
		SessionID:    txn.SessionID,
		CreatedAt:    txn.CreatedAt,
	}
}
