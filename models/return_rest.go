package models

// SeedRequest is the data received in the body of the incoming seed request
type SeedRequest struct {
	Count int `json:"count" validate:"gte=0"`
}

// SeedResponse reports how many synthetic records were persisted
type SeedResponse struct {
	Inserted int `json:"inserted"`
}

// SummaryResponse contains the high-level KPIs for the dashboard
type SummaryResponse struct {
	TotalReturns int            `json:"total_returns"`
	TotalAmount  float64        `json:"total_amount"`
	Last30Count  int            `json:"last30_count"`
	Last30Amount float64        `json:"last30_amount"`
	ByReason     map[string]int `json:"by_reason"`
}

// TimeSeriesPoint is one calendar-day bucket of the time series
type TimeSeriesPoint struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// TimeSeriesResponse is the ascending-date-ordered daily rollup
type TimeSeriesResponse struct {
	Series []TimeSeriesPoint `json:"series"`
}

// BreakdownResponse contains group-by-count mappings over the categorical fields
type BreakdownResponse struct {
	ByMethod  map[string]int `json:"by_method"`
	ByRegion  map[string]int `json:"by_region"`
	ByStatus  map[string]int `json:"by_status"`
	BySegment map[string]int `json:"by_segment"`
}

// SchemaResponse lists the collection names for viewer tools
type SchemaResponse struct {
	Collections []string `json:"collections"`
}

// StatusResponse reports backend and database availability for the test endpoint
type StatusResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
}
