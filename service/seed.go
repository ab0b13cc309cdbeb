package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/returnslabs/returns-analytics-api/models"
	"github.com/shopspring/decimal"
)

// Fixed value sets used when generating synthetic payment return events.
var (
	seedReasons = []string{
		"insufficient_funds",
		"card_expired",
		"fraud_suspected",
		"disputed",
		"technical_error",
		"account_closed",
		"other",
	}
	seedMethods  = []string{"card", "ach", "wire", "wallet"}
	seedRegions  = []string{"US", "EU", "APAC", "LATAM", "MEA"}
	seedSegments = []string{"consumer", "smb", "enterprise"}

	// pending is deliberately excluded from seeded data
	seedStatuses = []string{"returned", "refunded", "reversed", "chargeback", "resolved"}
)

// SeedReturns generates the requested number of synthetic payment return
// events and persists each one, returning the number inserted. A storage
// failure aborts the run.
func (service *ReturnsService) SeedReturns(seedRequest models.SeedRequest) (*models.SeedResponse, ResponseType, error) {
	if service.DAO == nil {
		return nil, Unavailable, ErrDatabaseNotConfigured
	}

	validate := validator.New()
	if err := validate.Struct(seedRequest); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid seed request: [%v]", err)
	}

	rng := service.rng()
	now := service.now()

	inserted := 0
	for i := 0; i < seedRequest.Count; i++ {
		amount := decimal.NewFromFloat(5 + rng.Float64()*1995).Round(2).InexactFloat64()
		occurredAt := now.Add(-time.Duration(rng.Intn(91))*24*time.Hour - time.Duration(rng.Intn(24))*time.Hour)
		daysToReturn := rng.Intn(15)

		paymentReturn := models.PaymentReturnDB{
			TransactionID:   fmt.Sprintf("txn_%d_%d", now.Unix(), i),
			Amount:          amount,
			Currency:        "USD",
			Reason:          seedReasons[rng.Intn(len(seedReasons))],
			Status:          seedStatuses[rng.Intn(len(seedStatuses))],
			PaymentMethod:   seedMethods[rng.Intn(len(seedMethods))],
			Region:          seedRegions[rng.Intn(len(seedRegions))],
			CustomerSegment: seedSegments[rng.Intn(len(seedSegments))],
			OccurredAt:      occurredAt,
			DaysToReturn:    &daysToReturn,
		}

		// customer_id is absent or a synthetic identifier with equal probability
		if rng.Intn(2) == 1 {
			paymentReturn.CustomerID = fmt.Sprintf("cust_%d", 1000+rng.Intn(9000))
		}

		if err := validate.Struct(paymentReturn); err != nil {
			return nil, Error, fmt.Errorf("invalid seeded payment return: [%v]", err)
		}

		if err := service.DAO.CreatePaymentReturn(&paymentReturn); err != nil {
			return nil, Error, fmt.Errorf("error writing to MongoDB: [%v]", err)
		}
		inserted++
	}

	return &models.SeedResponse{Inserted: inserted}, Success, nil
}
