package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-check-api/api/handlers"
	"github.com/linesmerrill/vehicle-check-api/api/scheduler"
	"github.com/linesmerrill/vehicle-check-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	s := scheduler.NewScheduler(a.AuditLog)
	s.Start()

	zap.S().Infow("vehicle-check-api is up and running",
		"port", a.Config.Port,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
