package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/linesmerrill/vehicle-check-api/audit"
	"github.com/linesmerrill/vehicle-check-api/models"
)

// TrafficClient queries the traffic management system for pending offences
type TrafficClient struct {
	URL   string
	HTTP  *http.Client
	Audit audit.Logger
}

// NewTrafficClient returns a traffic-penalty client with the bounded
// per-call timeout already applied
func NewTrafficClient(url string, auditor audit.Logger) *TrafficClient {
	return &TrafficClient{
		URL:   url,
		HTTP:  &http.Client{Timeout: TrafficTimeout},
		Audit: auditor,
	}
}

type trafficResponse struct {
	Status              string                 `json:"status"`
	PendingTransactions []models.PenaltyTicket `json:"pending_transactions"`
}

// Fetch looks up pending traffic penalties for the plate
func (c *TrafficClient) Fetch(ctx context.Context, plate string) (models.PenaltyResult, error) {
	body, err := json.Marshal(map[string]string{"vehicle": plate})
	if err != nil {
		return models.PenaltyResult{}, &ParseError{Op: "traffic lookup", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return models.PenaltyResult{}, &TransportError{Op: "traffic lookup", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.PenaltyResult{}, &TransportError{Op: "traffic lookup", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.PenaltyResult{}, &TransportError{Op: "traffic lookup", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload trafficResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.PenaltyResult{}, &ParseError{Op: "traffic lookup", Err: err}
	}

	if payload.Status != "success" || len(payload.PendingTransactions) == 0 {
		return models.PenaltyResult{Found: false}, nil
	}

	// Each ticket is truncated to whole units before the sums are added.
	// Summing first and truncating once would give a different total.
	total := 0
	for _, t := range payload.PendingTransactions {
		total += int(t.Charge + t.Penalty)
	}

	c.Audit.Alert(fmt.Sprintf("📛 Violation found for %s – Total: %s TZS", plate, groupDigits(total)))

	return models.PenaltyResult{
		Found:   true,
		Tickets: payload.PendingTransactions,
		Total:   total,
	}, nil
}
