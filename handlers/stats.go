package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/returnslabs/returns-analytics-api/utils"
)

const defaultLookbackDays = 30

// HandleGetSummary returns the high-level KPIs over the full record set
func HandleGetSummary(w http.ResponseWriter, req *http.Request) {
	summary, responseType, err := returnsService.Summary()
	if err != nil {
		handleServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, summary, http.StatusOK)
}

// HandleGetTimeSeries returns the daily rollup within the lookback window
// given by the days query parameter
func HandleGetTimeSeries(w http.ResponseWriter, req *http.Request) {
	days := defaultLookbackDays
	if param := req.URL.Query().Get("days"); param != "" {
		var err error
		days, err = strconv.Atoi(param)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("invalid days query parameter: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	timeSeries, responseType, err := returnsService.TimeSeries(days)
	if err != nil {
		handleServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, timeSeries, http.StatusOK)
}

// HandleGetBreakdown returns the group-by-count mappings over the categorical fields
func HandleGetBreakdown(w http.ResponseWriter, req *http.Request) {
	breakdown, responseType, err := returnsService.Breakdown()
	if err != nil {
		handleServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, breakdown, http.StatusOK)
}
