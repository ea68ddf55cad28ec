// Package checks builds the compliance report for a plate by fanning out to
// the three verification sources and reconciling their outcomes.
package checks

import (
	"context"
	"fmt"
	"sync"

	"github.com/linesmerrill/vehicle-check-api/models"
	"github.com/linesmerrill/vehicle-check-api/sources"
)

// DetailSummary reduces the report to plate and notifications only
const DetailSummary = "summary"

// A cover note within this many remaining days triggers the expiring-soon
// notification.
const expiringSoonDays = 10

// Checker fans a plate check out to the three verification sources
type Checker struct {
	Traffic   sources.TrafficSource
	Parking   sources.ParkingSource
	Insurance sources.InsuranceSource
}

// Check runs the three lookups concurrently and folds their outcomes into a
// single report. The calls are bulkhead-isolated: each source carries its own
// timeout and a failure or timeout in one never cancels the others. All three
// are awaited; there is no early return and no retry.
func (c *Checker) Check(ctx context.Context, plate, lang, detail string) models.CheckReport {
	var (
		wg sync.WaitGroup

		traffic    models.PenaltyResult
		parking    models.ParkingResult
		insurance  models.InsuranceResult
		trafficErr error
		parkingErr error
		insurErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		traffic, trafficErr = c.Traffic.Fetch(ctx, plate)
	}()
	go func() {
		defer wg.Done()
		parking, parkingErr = c.Parking.Fetch(ctx, plate)
	}()
	go func() {
		defer wg.Done()
		insurance, insurErr = c.Insurance.Fetch(ctx, plate)
	}()
	wg.Wait()

	// A failed source becomes an embedded error-result. The report never
	// distinguishes error kinds, only carries the message through.
	if trafficErr != nil {
		traffic = models.PenaltyResult{Error: trafficErr.Error()}
	}
	if parkingErr != nil {
		parking = models.ParkingResult{Error: parkingErr.Error()}
	}
	if insurErr != nil {
		insurance = models.InsuranceResult{Error: insurErr.Error()}
	}

	report := models.CheckReport{
		Plate:         plate,
		Notifications: buildNotifications(traffic, parking, insurance, lang),
	}
	if detail == DetailSummary {
		return report
	}

	report.TrafficPenalties = &traffic
	report.ParkingFees = &parking
	report.Insurance = &insurance
	return report
}

// buildNotifications derives the owner-facing alerts in a fixed order. Each
// trigger is gated on its source having succeeded; an error-result counts as
// nothing found.
func buildNotifications(traffic models.PenaltyResult, parking models.ParkingResult, insurance models.InsuranceResult, lang string) []models.Notification {
	msgs := messagesFor(lang)
	notifications := []models.Notification{}

	if traffic.Error == "" && traffic.Found {
		notifications = append(notifications, models.Notification{
			Code:    models.NotificationTrafficViolation,
			Message: msgs.trafficViolation,
		})
	}
	if parking.Error == "" && parking.Found {
		notifications = append(notifications, models.Notification{
			Code:    models.NotificationUnpaidParking,
			Message: msgs.unpaidParking,
		})
	}
	if insurance.Error == "" && insurance.Status == models.InsuranceExpired {
		notifications = append(notifications, models.Notification{
			Code:    models.NotificationInsuranceExpired,
			Message: msgs.insuranceExpired,
		})
	}
	if insurance.Error == "" && insurance.Status == models.InsuranceActive &&
		insurance.RemainingDays != nil && *insurance.RemainingDays <= expiringSoonDays {
		notifications = append(notifications, models.Notification{
			Code:    models.NotificationInsuranceExpiring,
			Message: fmt.Sprintf(msgs.insuranceExpiring, *insurance.RemainingDays),
		})
	}
	return notifications
}
