package config

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	Port                   string
	TrafficURL             string
	ParkingURL             string
	InsuranceURL           string
	InsuranceSkipTLSVerify bool
	AuditLogPath           string
	DatabaseURL            string
	DatabaseName           string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:       getenv("PORT", "8080"),
		TrafficURL: getenv("TRAFFIC_API_URL", "https://tms.tpf.go.tz/api/OffenceCheck"),
		ParkingURL: getenv("PARKING_API_URL", "https://app.gepg.go.tz/api/v3/internal-assessment"),
		// The insurance portal serves a certificate that fails verification.
		// Skipping verification is intentional and can only be disabled here.
		InsuranceURL:           getenv("INSURANCE_API_URL", "https://tiramis.tira.go.tz/covernote/api/public/portal/verify"),
		InsuranceSkipTLSVerify: getenv("INSURANCE_SKIP_TLS_VERIFY", "true") == "true",
		AuditLogPath:           getenv("AUDIT_LOG_PATH", "log.txt"),
		DatabaseURL:            os.Getenv("DB_URI"),
		DatabaseName:           os.Getenv("DB_NAME"),
	}

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
