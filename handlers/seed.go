package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/returnslabs/returns-analytics-api/models"
	"github.com/returnslabs/returns-analytics-api/service"
	"github.com/returnslabs/returns-analytics-api/utils"
)

const defaultSeedCount = 50

// HandleSeedReturns seeds the database with synthetic payment return events
// for demo purposes and reports the number inserted
func HandleSeedReturns(w http.ResponseWriter, req *http.Request) {
	seedRequest := models.SeedRequest{Count: defaultSeedCount}

	if req.Body != nil {
		err := json.NewDecoder(req.Body).Decode(&seedRequest)
		if err != nil && err != io.EOF {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	seedResponse, responseType, err := returnsService.SeedReturns(seedRequest)
	if err != nil {
		handleServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, seedResponse, http.StatusOK)

	log.InfoR(req, "Successful POST request to seed payment returns", log.Data{"inserted": seedResponse.Inserted})
}

// handleServiceError translates a service response type into an HTTP status.
// An unconfigured database is surfaced with a fixed message on every data path.
func handleServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.ErrorR(req, err)

	switch responseType {
	case service.InvalidData:
		w.WriteHeader(http.StatusBadRequest)
	case service.Unavailable:
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("database not configured"), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
