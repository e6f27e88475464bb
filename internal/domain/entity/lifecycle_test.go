package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    ListingStatus
		to      ListingStatus
		allowed bool
	}{
		{"draft to open", ListingStatusDraft, ListingStatusOpen, true},
		{"draft to cancelled", ListingStatusDraft, ListingStatusCancelled, true},
		{"draft to closed", ListingStatusDraft, ListingStatusClosed, false},
		{"open to closed", ListingStatusOpen, ListingStatusClosed, true},
		{"open to cancelled", ListingStatusOpen, ListingStatusCancelled, true},
		{"open back to draft", ListingStatusOpen, ListingStatusDraft, false},
		{"closed is terminal", ListingStatusClosed, ListingStatusOpen, false},
		{"cancelled is terminal", ListingStatusCancelled, ListingStatusOpen, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{"pending to confirmed", TransactionStatusPending, TransactionStatusConfirmed, true},
		{"pending to cancelled", TransactionStatusPending, TransactionStatusCancelled, true},
		{"pending straight to paid", TransactionStatusPending, TransactionStatusPaid, false},
		{"pending to failed", TransactionStatusPending, TransactionStatusFailed, false},
		{"confirmed to paid", TransactionStatusConfirmed, TransactionStatusPaid, true},
		{"confirmed to failed", TransactionStatusConfirmed, TransactionStatusFailed, true},
		{"confirmed to cancelled", TransactionStatusConfirmed, TransactionStatusCancelled, true},
		{"paid is terminal", TransactionStatusPaid, TransactionStatusConfirmed, false},
		{"failed is terminal", TransactionStatusFailed, TransactionStatusPending, false},
		{"cancelled is terminal", TransactionStatusCancelled, TransactionStatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTransactionStatus_IsActive(t *testing.T) {
	assert.True(t, TransactionStatusPending.IsActive())
	assert.True(t, TransactionStatusConfirmed.IsActive())
	assert.True(t, TransactionStatusPaid.IsActive())
	assert.False(t, TransactionStatusFailed.IsActive())
	assert.False(t, TransactionStatusCancelled.IsActive())
}

func TestLogisticsStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    LogisticsStatus
		to      LogisticsStatus
		allowed bool
	}{
		{"booked to in_transit", LogisticsStatusBooked, LogisticsStatusInTransit, true},
		{"booked to delivered", LogisticsStatusBooked, LogisticsStatusDelivered, true},
		{"in_transit to delivered", LogisticsStatusInTransit, LogisticsStatusDelivered, true},
		{"in_transit back to booked", LogisticsStatusInTransit, LogisticsStatusBooked, false},
		{"delivered is terminal", LogisticsStatusDelivered, LogisticsStatusInTransit, false},
		{"same status", LogisticsStatusBooked, LogisticsStatusBooked, false},
		{"unknown status", LogisticsStatusBooked, LogisticsStatus("lost"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestListing_Value(t *testing.T) {
	listing := &Listing{QuantityKg: 100, PricePerKg: 5.5}

	assert.InDelta(t, 550.0, listing.Value(), 0.0001)
}
