package models

import "time"

// PaymentReturnCollection is the storage collection holding PaymentReturnDB
// documents. The mapping from record type to collection is declared here once
// rather than derived from type names.
const PaymentReturnCollection = "paymentreturn"

// CollectionNames lists every collection this service stores documents in.
func CollectionNames() []string {
	return []string{PaymentReturnCollection}
}

// PaymentReturnDB contains all payment return event details to be stored in the DB
type PaymentReturnDB struct {
	TransactionID   string    `bson:"transaction_id"             validate:"required"`
	CustomerID      string    `bson:"customer_id,omitempty"`
	Amount          float64   `bson:"amount"                     validate:"gte=0"`
	Currency        string    `bson:"currency"                   validate:"required"`
	Reason          string    `bson:"reason"                     validate:"required,oneof=insufficient_funds card_expired fraud_suspected disputed technical_error account_closed other"`
	Status          string    `bson:"status"                     validate:"required,oneof=pending returned refunded reversed chargeback resolved"`
	PaymentMethod   string    `bson:"payment_method"             validate:"required,oneof=card ach wire wallet"`
	Region          string    `bson:"region,omitempty"`
	CustomerSegment string    `bson:"customer_segment,omitempty"`
	OccurredAt      time.Time `bson:"occurred_at"`
	DaysToReturn    *int      `bson:"days_to_return,omitempty"   validate:"omitempty,gte=0"`
}
