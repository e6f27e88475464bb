// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus represents the lifecycle state of a marketplace listing.
type ListingStatus string

const (
	// ListingStatusDraft is the initial state; the listing is not yet visible to buyers.
	ListingStatusDraft ListingStatus = "draft"
	// ListingStatusOpen means the listing accepts new transactions.
	ListingStatusOpen ListingStatus = "open"
	// ListingStatusClosed means the listing's value is fully covered by paid transactions. Terminal.
	ListingStatusClosed ListingStatus = "closed"
	// ListingStatusCancelled means the seller withdrew the listing. Terminal.
	ListingStatusCancelled ListingStatus = "cancelled"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusOpen, ListingStatusClosed, ListingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle transition: draft → open → {closed, cancelled}, draft → cancelled.
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	switch s {
	case ListingStatusDraft:
		return next == ListingStatusOpen || next == ListingStatusCancelled
	case ListingStatusOpen:
		return next == ListingStatusClosed || next == ListingStatusCancelled
	default:
		return false
	}
}

// Listing represents a seller's offer of a quantity of a coffee product at a price.
type Listing struct {
	ID          uuid.UUID     // The unique identifier for the listing.
	SellerID    uuid.UUID     // Links the listing to the User who posted it.
	ProductType string        // The product being offered, e.g. "arabica green beans".
	QuantityKg  float64       // Quantity offered in kilograms. Must be positive.
	PricePerKg  float64       // Asking price per kilogram. Must be positive.
	Description string        // Free-form description of the offer.
	Status      ListingStatus // Current lifecycle state of the listing.
	CreatedAt   time.Time     // Timestamp of when the listing was created.
	UpdatedAt   time.Time     // Timestamp of the last modification to the listing.
}

// Value returns the listing's total economic value (quantity × price).
// The sum of active transaction amounts against the listing never exceeds it.
func (l *Listing) Value() float64 {
	return l.QuantityKg * l.PricePerKg
}
