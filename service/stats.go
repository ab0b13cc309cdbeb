package service

import (
	"fmt"
	"sort"

	"github.com/returnslabs/returns-analytics-api/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Summary computes the high-level KPIs over the full stored record set:
// total count and amount, count and amount within a trailing 30 day window,
// and a reason to count mapping.
func (service *ReturnsService) Summary() (*models.SummaryResponse, ResponseType, error) {
	if service.DAO == nil {
		return nil, Unavailable, ErrDatabaseNotConfigured
	}

	docs, err := service.DAO.GetPaymentReturns()
	if err != nil {
		return nil, Error, fmt.Errorf("error reading from MongoDB: [%v]", err)
	}

	cutoff := service.now().AddDate(0, 0, -30)

	totalAmount := decimal.Zero
	last30Amount := decimal.Zero
	last30Count := 0
	byReason := make(map[string]int)

	for _, doc := range docs {
		amount := decimal.NewFromFloat(doc.Amount)
		totalAmount = totalAmount.Add(amount)

		if !doc.OccurredAt.Before(cutoff) {
			last30Count++
			last30Amount = last30Amount.Add(amount)
		}

		reason := doc.Reason
		if reason == "" {
			reason = "other"
		}
		byReason[reason]++
	}

	return &models.SummaryResponse{
		TotalReturns: len(docs),
		TotalAmount:  totalAmount.Round(2).InexactFloat64(),
		Last30Count:  last30Count,
		Last30Amount: last30Amount.Round(2).InexactFloat64(),
		ByReason:     byReason,
	}, Success, nil
}

// TimeSeries buckets records within the trailing days window by calendar date,
// accumulating a count and summed amount per bucket. Dates with no records are
// omitted and the series is ordered by ascending date.
func (service *ReturnsService) TimeSeries(days int) (*models.TimeSeriesResponse, ResponseType, error) {
	if service.DAO == nil {
		return nil, Unavailable, ErrDatabaseNotConfigured
	}

	docs, err := service.DAO.GetPaymentReturns()
	if err != nil {
		return nil, Error, fmt.Errorf("error reading from MongoDB: [%v]", err)
	}

	cutoff := service.now().AddDate(0, 0, -days)

	counts := make(map[string]int)
	amounts := make(map[string]decimal.Decimal)

	for _, doc := range docs {
		if doc.OccurredAt.Before(cutoff) {
			continue
		}
		// bucket on the record's own timestamp
		key := doc.OccurredAt.Format(dateLayout)
		counts[key]++
		amounts[key] = amounts[key].Add(decimal.NewFromFloat(doc.Amount))
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]models.TimeSeriesPoint, 0, len(dates))
	for _, date := range dates {
		series = append(series, models.TimeSeriesPoint{
			Date:   date,
			Count:  counts[date],
			Amount: amounts[date].Round(2).InexactFloat64(),
		})
	}

	return &models.TimeSeriesResponse{Series: series}, Success, nil
}

// Breakdown produces four independent group-by-count mappings over the
// categorical fields. Missing values are bucketed under "unknown".
func (service *ReturnsService) Breakdown() (*models.BreakdownResponse, ResponseType, error) {
	if service.DAO == nil {
		return nil, Unavailable, ErrDatabaseNotConfigured
	}

	docs, err := service.DAO.GetPaymentReturns()
	if err != nil {
		return nil, Error, fmt.Errorf("error reading from MongoDB: [%v]", err)
	}

	countBy := func(field func(models.PaymentReturnDB) string) map[string]int {
		out := make(map[string]int)
		for _, doc := range docs {
			key := field(doc)
			if key == "" {
				key = "unknown"
			}
			out[key]++
		}
		return out
	}

	return &models.BreakdownResponse{
		ByMethod:  countBy(func(d models.PaymentReturnDB) string { return d.PaymentMethod }),
		ByRegion:  countBy(func(d models.PaymentReturnDB) string { return d.Region }),
		ByStatus:  countBy(func(d models.PaymentReturnDB) string { return d.Status }),
		BySegment: countBy(func(d models.PaymentReturnDB) string { return d.CustomerSegment }),
	}, Success, nil
}
