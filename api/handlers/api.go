package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-check-api/api"
	"github.com/linesmerrill/vehicle-check-api/audit"
	"github.com/linesmerrill/vehicle-check-api/checks"
	"github.com/linesmerrill/vehicle-check-api/config"
	"github.com/linesmerrill/vehicle-check-api/databases"
	"github.com/linesmerrill/vehicle-check-api/models"
	"github.com/linesmerrill/vehicle-check-api/sources"
)

// App stores the router, config and audit wiring, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Checker  *checks.Checker
	AuditLog *audit.FileLogger

	auditor audit.Logger
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	check := Check{Checker: a.Checker}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Handle("/check", api.Middleware(http.HandlerFunc(check.CheckHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to wire the audit sinks and the upstream
// source clients, and to create a router
func (a *App) Initialize() error {
	a.AuditLog = audit.NewFileLogger(a.Config.AuditLogPath)
	a.auditor = audit.Logger(a.AuditLog)

	// The audit trail optionally mirrors into mongo when a database is
	// configured. The file log always stays the primary sink.
	if a.Config.DatabaseURL != "" {
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			zap.S().With(err).Error("failed to create new client")
			return err
		}
		if err := client.Connect(); err != nil {
			zap.S().With(err).Error("failed to connect to database")
			return err
		}
		db := databases.NewDatabase(&a.Config, client)
		a.auditor = audit.Multi{a.AuditLog, audit.NewMongoLogger(databases.NewAuditDatabase(db))}
		zap.S().Info("vehicle-check-api has connected to the database")
	}

	a.Checker = &checks.Checker{
		Traffic:   sources.NewTrafficClient(a.Config.TrafficURL, a.auditor),
		Parking:   sources.NewParkingClient(a.Config.ParkingURL, a.auditor),
		Insurance: sources.NewInsuranceClient(a.Config.InsuranceURL, a.Config.InsuranceSkipTLSVerify, a.auditor),
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
