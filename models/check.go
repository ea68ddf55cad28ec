package models

// CheckRequest holds the structure for the inbound compliance check request
type CheckRequest struct {
	Plate string `json:"plate"`
	Lang  string `json:"lang"`
	Type  string `json:"type"`
}

// CheckReport holds the structure for the compliance check response. In
// summary mode the three sub-results are left nil so the payload reduces to
// plate and notifications only.
type CheckReport struct {
	Plate            string           `json:"plate"`
	TrafficPenalties *PenaltyResult   `json:"trafficPenalties,omitempty"`
	ParkingFees      *ParkingResult   `json:"parkingFees,omitempty"`
	Insurance        *InsuranceResult `json:"insurance,omitempty"`
	Notifications    []Notification   `json:"notifications"`
}
