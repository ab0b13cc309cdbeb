package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/returnslabs/returns-analytics-api/config"
	"github.com/returnslabs/returns-analytics-api/dao"
	"github.com/returnslabs/returns-analytics-api/service"
	"github.com/rs/cors"
)

var returnsService *service.ReturnsService

// Register defines the route mappings for the main router. The storage DAO is
// constructed by the caller so its lifecycle stays with the process; a nil DAO
// means storage is unconfigured and every data-touching endpoint fails fast.
func Register(mainRouter *mux.Router, cfg config.Config, storage dao.DAO) {
	returnsService = &service.ReturnsService{
		DAO:    storage,
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.HandleFunc("/", HandleRoot).Methods("GET").Name("get-root")
	mainRouter.HandleFunc("/schema", HandleGetSchema).Methods("GET").Name("get-schema")
	mainRouter.HandleFunc("/seed", HandleSeedReturns).Methods("POST").Name("seed-returns")
	mainRouter.HandleFunc("/test", HandleTestConnection).Methods("GET").Name("get-test")

	statsRouter := mainRouter.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/summary", HandleGetSummary).Methods("GET").Name("get-stats-summary")
	statsRouter.HandleFunc("/timeseries", HandleGetTimeSeries).Methods("GET").Name("get-stats-timeseries")
	statsRouter.HandleFunc("/breakdown", HandleGetBreakdown).Methods("GET").Name("get-stats-breakdown")

	mainRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// CORS wraps the handler with a fully open policy: all origins, methods and
// headers are allowed.
func CORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(h)
}
