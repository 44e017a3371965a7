package domain

import (
	"time"

	"github.com/google/uuid"
)

type PickupStatus string

const (
	PickupStatusRequested PickupStatus = "REQUESTED"
	PickupStatusFailed    PickupStatus = "FAILED"
)

// PickupRequest is a batch of parcels the courier is asked to collect.
type PickupRequest struct {
	ID                   uuid.UUID    `json:"id"`
	Provider             string       `json:"provider"`
	Location             string       `json:"location"`
	PickupDate           time.Time    `json:"pickup_date"`
	PickupTime           string       `json:"pickup_time"`
	ExpectedPackageCount int          `json:"expected_package_count"`
	ExternalPickupID     *string      `json:"external_pickup_id,omitempty"`
	Status               PickupStatus `json:"status"`
	ErrorMessage         *string      `json:"error_message,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
}
