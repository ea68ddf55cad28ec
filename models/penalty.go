package models

import (
	"encoding/json"
	"fmt"
)

// PenaltyResult holds the normalized outcome of a traffic-penalty lookup.
// Error is set when the upstream call failed; Found and Tickets are only
// meaningful when Error is empty.
type PenaltyResult struct {
	Found   bool            `json:"found"`
	Tickets []PenaltyTicket `json:"tickets,omitempty"`
	Total   int             `json:"total,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// PenaltyTicket is a single pending transaction from the traffic-penalty
// service. Charge and Penalty are extracted for the total computation; all
// upstream fields are carried through unchanged in the raw payload.
type PenaltyTicket struct {
	Charge  float64
	Penalty float64

	raw map[string]interface{}
}

// UnmarshalJSON extracts charge and penalty while keeping the full upstream
// object for pass-through. The service sends amounts as numbers or numeric
// strings depending on the ticket age, so both are accepted.
func (t *PenaltyTicket) UnmarshalJSON(b []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	charge, err := coerceAmount(raw["charge"])
	if err != nil {
		return fmt.Errorf("ticket charge: %w", err)
	}
	penalty, err := coerceAmount(raw["penalty"])
	if err != nil {
		return fmt.Errorf("ticket penalty: %w", err)
	}

	t.Charge = charge
	t.Penalty = penalty
	t.raw = raw
	return nil
}

// MarshalJSON writes the upstream object back out unchanged when one was
// captured, so opaque ticket fields survive the round trip.
func (t PenaltyTicket) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return json.Marshal(t.raw)
	}
	return json.Marshal(map[string]float64{"charge": t.Charge, "penalty": t.Penalty})
}
