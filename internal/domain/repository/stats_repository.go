package repository

import (
	"context"

	"github.com/google/uuid"
)

// DashboardCounts is the aggregate read model backing the user dashboard.
type DashboardCounts struct {
	Farms              int64 `json:"farms"`               // Farms owned by the user.
	OpenListings       int64 `json:"openListings"`        // The user's listings currently open.
	ActiveTransactions int64 `json:"activeTransactions"`  // Pending/confirmed transactions the user placed.
	UnreadMessages     int64 `json:"unreadMessages"`      // Unread messages addressed to the user.
}

// StatsRepository provides aggregate counts for the presentation layer.
type StatsRepository interface {
	// Dashboard computes the dashboard counts for a user.
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardCounts, error)
}
