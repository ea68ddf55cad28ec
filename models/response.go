package models

// HealthCheckResponse reports whether the service is up
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
