// Package sources holds the clients for the three government verification
// services a compliance check fans out to. Each client normalizes its
// upstream payload into a typed result and never lets an upstream failure
// escape as anything other than an error return.
package sources

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/linesmerrill/vehicle-check-api/models"
)

// Per-call timeouts for the upstream services. The parking gateway is
// noticeably slower than the other two.
const (
	TrafficTimeout   = 7 * time.Second
	ParkingTimeout   = 10 * time.Second
	InsuranceTimeout = 7 * time.Second
)

// go generate: mockery --name TrafficSource

// TrafficSource looks up pending traffic penalties for a plate
type TrafficSource interface {
	Fetch(ctx context.Context, plate string) (models.PenaltyResult, error)
}

// go generate: mockery --name ParkingSource

// ParkingSource looks up unpaid parking assessments for a plate
type ParkingSource interface {
	Fetch(ctx context.Context, plate string) (models.ParkingResult, error)
}

// go generate: mockery --name InsuranceSource

// InsuranceSource derives the insurance coverage state for a plate
type InsuranceSource interface {
	Fetch(ctx context.Context, plate string) (models.InsuranceResult, error)
}

// groupDigits renders n with thousands separators, matching the audit line
// format used by the upstream consumer apps.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}
