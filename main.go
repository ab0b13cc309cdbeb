package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/returnslabs/returns-analytics-api/config"
	"github.com/returnslabs/returns-analytics-api/dao"
	"github.com/returnslabs/returns-analytics-api/handlers"
)

func main() {
	log.Namespace = "returns-analytics-api"

	if err := godotenv.Load(); err != nil {
		log.Trace("no .env file found")
	}

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		os.Exit(1)
	}

	// Storage is opened here and closed at shutdown; a missing URL leaves the
	// DAO nil and every data-touching endpoint reports it as unconfigured.
	var storage dao.DAO
	if cfg.MongoDBURL != "" {
		storage = dao.NewDAO(cfg)
	} else {
		log.Info("MONGODB_URL not set, data endpoints will report the database as unconfigured")
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg, storage)

	server := &http.Server{
		Addr:         cfg.BindAddr,
		Handler:      handlers.CORS(mainRouter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting returns-analytics-api service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error(err)
	}

	if storage != nil {
		storage.Shutdown()
	}

	log.Trace("Exiting returns-analytics-api service")
}
