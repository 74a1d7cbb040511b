package usecase

import "github.com/zencommerce/trexle-payment-service/internal/domain"

func (uc *DefaultPaymentUsecase) GetTransactionsByOrder(orderID string) ([]*domain.Transaction, error) {
	return uc.TxnRepo.GetByOrderID(orderID)
}

func (uc *DefaultPaymentUsecase) GetTransactionsByCustomer(customerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.TxnRepo.GetByCustomerID(customerID, page, limit)
}
