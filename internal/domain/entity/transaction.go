// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a marketplace transaction.
type TransactionStatus string

const (
	// TransactionStatusPending is the initial state after a buyer commits funds.
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusConfirmed means the seller accepted the transaction.
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	// TransactionStatusPaid means payment settled. Terminal; the only state that permits logistics.
	TransactionStatusPaid TransactionStatus = "paid"
	// TransactionStatusFailed means settlement failed after confirmation. Terminal.
	TransactionStatusFailed TransactionStatus = "failed"
	// TransactionStatusCancelled means either party withdrew before payment. Terminal.
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// String returns the string representation of the TransactionStatus.
func (s TransactionStatus) String() string {
	return string(s)
}

// IsValid checks if the TransactionStatus is a valid value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed, TransactionStatusPaid,
		TransactionStatusFailed, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusPaid, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the transaction still counts against the listing's
// economic bound: pending, confirmed and paid amounts all reserve listing value.
func (s TransactionStatus) IsActive() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirmed, TransactionStatusPaid:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle transition: pending → confirmed → paid, pending|confirmed →
// cancelled, confirmed → failed.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionStatusPending:
		return next == TransactionStatusConfirmed || next == TransactionStatusCancelled
	case TransactionStatusConfirmed:
		return next == TransactionStatusPaid || next == TransactionStatusFailed ||
			next == TransactionStatusCancelled
	default:
		return false
	}
}

// Transaction represents a buyer's commitment of funds against a listing.
type Transaction struct {
	ID        uuid.UUID         // The unique identifier for the transaction.
	ListingID uuid.UUID         // Links the transaction to the Listing it is placed against.
	BuyerID   uuid.UUID         // Links the transaction to the User who placed it.
	Amount    float64           // The committed amount in the listing's currency. Must be positive.
	Status    TransactionStatus // Current lifecycle state of the transaction.
	CreatedAt time.Time         // Timestamp of when the transaction was placed.
	UpdatedAt time.Time         // Timestamp of the last modification to the transaction.
}
