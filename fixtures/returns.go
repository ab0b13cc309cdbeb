package fixtures

import (
	"time"

	"github.com/returnslabs/returns-analytics-api/models"
)

// IntPtr returns a pointer to the given int for optional document fields
func IntPtr(i int) *int {
	return &i
}

// GetPaymentReturn returns a fully populated payment return event document
func GetPaymentReturn(amount float64, reason string, occurredAt time.Time) models.PaymentReturnDB {
	return models.PaymentReturnDB{
		TransactionID:   "txn_1700000000_0",
		CustomerID:      "cust_4242",
		Amount:          amount,
		Currency:        "USD",
		Reason:          reason,
		Status:          "returned",
		PaymentMethod:   "card",
		Region:          "US",
		CustomerSegment: "consumer",
		OccurredAt:      occurredAt,
		DaysToReturn:    IntPtr(3),
	}
}

// GetPaymentReturns returns a small known dataset relative to now: two recent
// events on the same day, one recent event the day before, and one old event
// outside any 30 day window. The old event has no optional fields set.
func GetPaymentReturns(now time.Time) []models.PaymentReturnDB {
	recent1 := GetPaymentReturn(100.10, "disputed", now.AddDate(0, 0, -1))

	recent2 := GetPaymentReturn(50.25, "fraud_suspected", now.AddDate(0, 0, -1))
	recent2.Status = "chargeback"
	recent2.PaymentMethod = "ach"
	recent2.Region = "EU"
	recent2.CustomerSegment = "smb"

	recent3 := GetPaymentReturn(25.00, "disputed", now.AddDate(0, 0, -2))

	old := models.PaymentReturnDB{
		TransactionID: "txn_1600000000_0",
		Amount:        200.00,
		Currency:      "USD",
		Status:        "refunded",
		OccurredAt:    now.AddDate(0, 0, -60),
	}

	return []models.PaymentReturnDB{recent1, recent2, recent3, old}
}
