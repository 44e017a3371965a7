package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited admin action.
type AuditAction string

const (
	AuditActionCreateShipment AuditAction = "CREATE_SHIPMENT"
	AuditActionCancelShipment AuditAction = "CANCEL_SHIPMENT"
	AuditActionEditShipment   AuditAction = "EDIT_SHIPMENT"
	AuditActionSchedulePickup AuditAction = "SCHEDULE_PICKUP"
	AuditActionPickupBatch    AuditAction = "RUN_PICKUP_BATCH"
	AuditActionRefund         AuditAction = "REFUND_PAYMENT"
)

// AuditLog records a single manual action taken by an operator.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
