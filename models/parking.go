package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ParkingResult holds the normalized outcome of a parking-fee assessment
// lookup. Error is set when the upstream call failed.
type ParkingResult struct {
	Found bool   `json:"found"`
	Bills []Bill `json:"bills,omitempty"`
	Total int    `json:"total,omitempty"`
	Error string `json:"error,omitempty"`
}

// Bill is a single parking assessment bill. BillAmount is extracted for the
// total computation; all upstream fields are carried through unchanged.
type Bill struct {
	BillAmount float64

	raw map[string]interface{}
}

// UnmarshalJSON requires billAmount to be present and numeric; everything
// else on the bill is opaque and kept for pass-through.
func (b *Bill) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v, ok := raw["billAmount"]
	if !ok {
		return errors.New("bill is missing billAmount")
	}
	amount, err := coerceAmount(v)
	if err != nil {
		return fmt.Errorf("billAmount: %w", err)
	}

	b.BillAmount = amount
	b.raw = raw
	return nil
}

// MarshalJSON writes the upstream bill back out unchanged when one was
// captured.
func (b Bill) MarshalJSON() ([]byte, error) {
	if b.raw != nil {
		return json.Marshal(b.raw)
	}
	return json.Marshal(map[string]float64{"billAmount": b.BillAmount})
}

// coerceAmount converts an upstream money field to a float. The government
// services are inconsistent about numbers vs numeric strings, and absent
// fields count as zero.
func coerceAmount(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric amount %q", n)
		}
		return f, nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}
