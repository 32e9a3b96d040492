package model

import "time"

// Report is a citizen's report of a distressed street animal. Status is
// the only field that changes after creation.
type Report struct {
	ID          int64     `json:"id"`
	ReporterID  int64     `json:"reporter_id"`
	AnimalType  string    `json:"animal_type"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImageMime   string    `json:"image_mime,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// ReporterName is filled in by list queries that join users.
	ReporterName string `json:"reporter_name,omitempty"`
}

// NewReport carries the fields a client supplies when filing a report.
type NewReport struct {
	ReporterID  int64    `json:"reporter_id"`
	AnimalType  string   `json:"animal_type"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Report statuses, in lifecycle order.
const (
	StatusPending     = "pending"
	StatusInTreatment = "in-treatment"
	StatusRescued     = "rescued"
	StatusAdopted     = "adopted"
)

// statusRank orders the lifecycle; transitions only move forward.
var statusRank = map[string]int{
	StatusPending:     0,
	StatusInTreatment: 1,
	StatusRescued:     2,
	StatusAdopted:     3,
}

// ValidStatus reports whether status is one of the known report statuses.
func ValidStatus(status string) bool {
	_, ok := statusRank[status]
	return ok
}

// CanTransition reports whether a report may move from one status to
// another. The lifecycle is monotonic: pending → in-treatment → rescued →
// adopted, with skips forward allowed and moves backward (or to the same
// status) rejected.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}
