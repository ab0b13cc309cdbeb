package handlers

import (
	"net/http"

	"github.com/returnslabs/returns-analytics-api/models"
	"github.com/returnslabs/returns-analytics-api/utils"
)

// HandleRoot returns the service liveness message
func HandleRoot(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("Payments Returns Analytics API"), http.StatusOK)
}

// HandleGetSchema exposes the collection names for viewer tools
func HandleGetSchema(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, models.SchemaResponse{Collections: models.CollectionNames()}, http.StatusOK)
}

// HandleTestConnection reports backend and database availability
func HandleTestConnection(w http.ResponseWriter, req *http.Request) {
	database := "connected"
	if returnsService.DAO == nil || returnsService.DAO.Ping() != nil {
		database = "not available"
	}

	utils.WriteJSONWithStatus(w, req, models.StatusResponse{
		Backend:  "running",
		Database: database,
	}, http.StatusOK)
}
