package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/linesmerrill/vehicle-check-api/audit"
	"github.com/linesmerrill/vehicle-check-api/models"
)

// Fixed identifiers for the municipal parking assessment lookup. The gateway
// only answers plate assessments for this service provider and assess type.
const (
	parkingSPCode     = "SP99860"
	parkingAssessType = "ASSESS-E"
	parkingUserAgent  = "Dart/3.2"
)

// ParkingClient queries the government e-payment gateway for parking
// assessments
type ParkingClient struct {
	URL   string
	HTTP  *http.Client
	Audit audit.Logger
}

// NewParkingClient returns a parking-fee client with the bounded per-call
// timeout already applied
func NewParkingClient(url string, auditor audit.Logger) *ParkingClient {
	return &ParkingClient{
		URL:   url,
		HTTP:  &http.Client{Timeout: ParkingTimeout},
		Audit: auditor,
	}
}

type parkingRequest struct {
	SPCode          string `json:"spCode"`
	AssessType      string `json:"assessType"`
	AssessTypeValue string `json:"assessTypeValue"`
}

type parkingAssessment struct {
	BillDetails []models.Bill `json:"billDetails"`
}

// Fetch looks up unpaid parking assessments for the plate
func (c *ParkingClient) Fetch(ctx context.Context, plate string) (models.ParkingResult, error) {
	body, err := json.Marshal(parkingRequest{
		SPCode:          parkingSPCode,
		AssessType:      parkingAssessType,
		AssessTypeValue: strings.ToUpper(plate),
	})
	if err != nil {
		return models.ParkingResult{}, &ParseError{Op: "parking lookup", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return models.ParkingResult{}, &TransportError{Op: "parking lookup", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", parkingUserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.ParkingResult{}, &TransportError{Op: "parking lookup", Err: err}
	}
	defer resp.Body.Close()

	// The gateway reports failures in the response body rather than the
	// status code, so the body is parsed regardless of status.
	var assessments []parkingAssessment
	if err := json.NewDecoder(resp.Body).Decode(&assessments); err != nil {
		return models.ParkingResult{}, &ParseError{Op: "parking lookup", Err: err}
	}
	if len(assessments) == 0 {
		return models.ParkingResult{}, &ParseError{Op: "parking lookup", Err: errors.New("empty assessment response")}
	}

	bills := assessments[0].BillDetails
	if len(bills) == 0 {
		return models.ParkingResult{Found: false}, nil
	}

	// Unlike traffic penalties, the bill total is truncated once at the end.
	var sum float64
	for _, b := range bills {
		sum += b.BillAmount
	}
	total := int(sum)

	c.Audit.Alert(fmt.Sprintf("💸 Parking fee found for %s – Total: %s TZS", plate, groupDigits(total)))

	return models.ParkingResult{
		Found: true,
		Bills: bills,
		Total: total,
	}, nil
}
