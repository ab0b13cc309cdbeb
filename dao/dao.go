package dao

import "github.com/returnslabs/returns-analytics-api/models"

// DAO is an interface for accessing payment return event data from a backend store
type DAO interface {
	CreatePaymentReturn(paymentReturn *models.PaymentReturnDB) error
	GetPaymentReturns() ([]models.PaymentReturnDB, error)
	Ping() error
	Shutdown()
}
