package checks_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/vehicle-check-api/checks"
	"github.com/linesmerrill/vehicle-check-api/models"
	"github.com/linesmerrill/vehicle-check-api/sources/mocks"
)

func intPtr(n int) *int { return &n }

func newChecker(t *testing.T, traffic models.PenaltyResult, trafficErr error,
	parking models.ParkingResult, parkingErr error,
	insurance models.InsuranceResult, insuranceErr error) *checks.Checker {
	t.Helper()

	trafficMock := mocks.NewTrafficSource(t)
	trafficMock.On("Fetch", mock.Anything, mock.Anything).Return(traffic, trafficErr)
	parkingMock := mocks.NewParkingSource(t)
	parkingMock.On("Fetch", mock.Anything, mock.Anything).Return(parking, parkingErr)
	insuranceMock := mocks.NewInsuranceSource(t)
	insuranceMock.On("Fetch", mock.Anything, mock.Anything).Return(insurance, insuranceErr)

	return &checks.Checker{Traffic: trafficMock, Parking: parkingMock, Insurance: insuranceMock}
}

func TestChecker_CheckFullReport(t *testing.T) {
	c := newChecker(t,
		models.PenaltyResult{Found: true, Total: 20}, nil,
		models.ParkingResult{Found: true, Total: 1500}, nil,
		models.InsuranceResult{Status: models.InsuranceActive, ValidTill: "2025-05-15", RemainingDays: intPtr(5)}, nil,
	)

	report := c.Check(context.Background(), "T123ABC", "en", "full")

	assert.Equal(t, "T123ABC", report.Plate)
	if assert.NotNil(t, report.TrafficPenalties) {
		assert.True(t, report.TrafficPenalties.Found)
	}
	if assert.NotNil(t, report.ParkingFees) {
		assert.Equal(t, 1500, report.ParkingFees.Total)
	}
	if assert.NotNil(t, report.Insurance) {
		assert.Equal(t, models.InsuranceActive, report.Insurance.Status)
	}

	// fixed evaluation order: traffic, parking, insurance expiring soon
	if assert.Len(t, report.Notifications, 3) {
		assert.Equal(t, models.NotificationTrafficViolation, report.Notifications[0].Code)
		assert.Equal(t, "🔴 Traffic Violation", report.Notifications[0].Message)
		assert.Equal(t, models.NotificationUnpaidParking, report.Notifications[1].Code)
		assert.Equal(t, models.NotificationInsuranceExpiring, report.Notifications[2].Code)
		assert.Equal(t, "⏳ Insurance expiring soon (5 days left)", report.Notifications[2].Message)
	}
}

func TestChecker_CheckSourceFailureIsIsolated(t *testing.T) {
	c := newChecker(t,
		models.PenaltyResult{Found: true, Total: 20}, nil,
		models.ParkingResult{}, assert.AnError,
		models.InsuranceResult{Status: models.InsuranceExpired, ExpiredDays: intPtr(30)}, nil,
	)

	report := c.Check(context.Background(), "T123ABC", "en", "full")

	// the failed parking call surfaces as an embedded error-result and the
	// other two results are untouched
	if assert.NotNil(t, report.ParkingFees) {
		assert.Equal(t, assert.AnError.Error(), report.ParkingFees.Error)
		assert.False(t, report.ParkingFees.Found)
	}
	assert.True(t, report.TrafficPenalties.Found)
	assert.Equal(t, models.InsuranceExpired, report.Insurance.Status)

	if assert.Len(t, report.Notifications, 2) {
		assert.Equal(t, models.NotificationTrafficViolation, report.Notifications[0].Code)
		assert.Equal(t, models.NotificationInsuranceExpired, report.Notifications[1].Code)
	}
}

func TestChecker_CheckSummaryShape(t *testing.T) {
	c := newChecker(t,
		models.PenaltyResult{}, assert.AnError,
		models.ParkingResult{}, assert.AnError,
		models.InsuranceResult{}, assert.AnError,
	)

	report := c.Check(context.Background(), "T123ABC", "en", checks.DetailSummary)

	b, err := json.Marshal(report)
	assert.NoError(t, err)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &payload))
	// summary mode always reduces to exactly plate and notifications
	assert.Len(t, payload, 2)
	assert.Contains(t, payload, "plate")
	assert.Contains(t, payload, "notifications")
}

func TestChecker_CheckSwahiliFallback(t *testing.T) {
	for _, lang := range []string{"sw", "fr", "de", ""} {
		c := newChecker(t,
			models.PenaltyResult{Found: true}, nil,
			models.ParkingResult{Found: true}, nil,
			models.InsuranceResult{Status: models.InsuranceExpired}, nil,
		)

		report := c.Check(context.Background(), "T123ABC", lang, "full")

		if assert.Len(t, report.Notifications, 3, "lang %q", lang) {
			assert.Equal(t, "🔴 Kuna makosa ya barabarani", report.Notifications[0].Message)
			assert.Equal(t, "🅿️ Kuna maegesho hayajalipwa", report.Notifications[1].Message)
			assert.Equal(t, "⚠️ Bima imekwisha muda wake", report.Notifications[2].Message)
		}
	}
}

func TestChecker_CheckExpiringSoonThreshold(t *testing.T) {
	cases := []struct {
		days   int
		expect bool
	}{
		{days: 5, expect: true},
		{days: 10, expect: true},
		{days: 11, expect: false},
		{days: 20, expect: false},
	}
	for _, tc := range cases {
		c := newChecker(t,
			models.PenaltyResult{}, nil,
			models.ParkingResult{}, nil,
			models.InsuranceResult{Status: models.InsuranceActive, RemainingDays: intPtr(tc.days)}, nil,
		)

		report := c.Check(context.Background(), "T123ABC", "en", "full")

		if tc.expect {
			if assert.Len(t, report.Notifications, 1, "days %d", tc.days) {
				assert.Equal(t, models.NotificationInsuranceExpiring, report.Notifications[0].Code)
			}
		} else {
			assert.Empty(t, report.Notifications, "days %d", tc.days)
		}
	}
}

func TestChecker_CheckNoRecordYieldsNoInsuranceNotification(t *testing.T) {
	c := newChecker(t,
		models.PenaltyResult{}, nil,
		models.ParkingResult{}, nil,
		models.InsuranceResult{Status: models.InsuranceNoRecord}, nil,
	)

	report := c.Check(context.Background(), "T123ABC", "en", "full")

	assert.Empty(t, report.Notifications)
	assert.Equal(t, models.InsuranceNoRecord, report.Insurance.Status)
}
