package model

import "time"

// AdoptionInterest records that a user wants to adopt a reported animal.
// It is a parallel list next to the report lifecycle: registering interest
// never changes the report's status. Duplicates are allowed.
type AdoptionInterest struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	UserID    int64     `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AdoptionStatusInterested is the initial (and currently only) interest status.
const AdoptionStatusInterested = "interested"
