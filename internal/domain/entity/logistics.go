// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogisticsStatus represents the shipment progress of a paid transaction.
// Statuses only ever move forward; a shipment never regresses.
type LogisticsStatus string

const (
	// LogisticsStatusBooked is the initial state once a carrier is booked.
	LogisticsStatusBooked LogisticsStatus = "booked"
	// LogisticsStatusInTransit means the carrier picked up the shipment.
	LogisticsStatusInTransit LogisticsStatus = "in_transit"
	// LogisticsStatusDelivered means the shipment arrived. Terminal.
	LogisticsStatusDelivered LogisticsStatus = "delivered"
)

// logisticsStatusRank orders statuses for the monotonic-progression check.
var logisticsStatusRank = map[LogisticsStatus]int{
	LogisticsStatusBooked:    0,
	LogisticsStatusInTransit: 1,
	LogisticsStatusDelivered: 2,
}

// String returns the string representation of the LogisticsStatus.
func (s LogisticsStatus) String() string {
	return string(s)
}

// IsValid checks if the LogisticsStatus is a valid value.
func (s LogisticsStatus) IsValid() bool {
	_, ok := logisticsStatusRank[s]

	return ok
}

// CanTransitionTo reports whether moving from s to next is a strictly forward
// progression in the booked → in_transit → delivered chain.
func (s LogisticsStatus) CanTransitionTo(next LogisticsStatus) bool {
	from, okFrom := logisticsStatusRank[s]
	to, okTo := logisticsStatusRank[next]

	return okFrom && okTo && to > from
}

// Logistics is the shipment tracking record tied 1:1 to a paid transaction.
type Logistics struct {
	ID                uuid.UUID       // The unique identifier for the logistics record.
	TransactionID     uuid.UUID       // Links the record to its Transaction. Unique: at most one per transaction.
	Status            LogisticsStatus // Current shipment status.
	Carrier           string          // The carrier handling the shipment, e.g. "DHL".
	TrackingNumber    string          // The carrier's tracking number.
	EstimatedDelivery time.Time       // The carrier's estimated delivery date.
	CreatedAt         time.Time       // Timestamp of when the shipment was booked.
	UpdatedAt         time.Time       // Timestamp of the last status update.
}
