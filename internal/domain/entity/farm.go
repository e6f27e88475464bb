// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm represents a coffee farm owned by exactly one user.
type Farm struct {
	ID            uuid.UUID   // The unique identifier for the farm.
	OwnerID       uuid.UUID   // Links the farm to the User who owns it.
	Name          string      // The farm's display name.
	Location      string      // Free-form location description (region, country).
	SizeHectares  float64     // The farm's cultivated area in hectares. Must be positive.
	CoffeeType    string      // The primary coffee variety grown, e.g. "arabica", "robusta".
	Certification string      // Optional certification label, e.g. "organic", "fair-trade". Empty when uncertified.
	Inventory     []*Inventory // The inventory lots currently held by this farm.
	CreatedAt     time.Time   // Timestamp of when the farm was registered.
	UpdatedAt     time.Time   // Timestamp of the last modification to the farm's data.
}

// Inventory represents a dated, graded lot of coffee held by a farm.
type Inventory struct {
	ID           uuid.UUID // The unique identifier for the inventory lot.
	FarmID       uuid.UUID // Links the lot to the Farm that holds it.
	QuantityKg   float64   // Quantity on hand in kilograms. Never negative.
	QualityGrade string    // Cupping/quality grade of the lot, e.g. "AA", "specialty".
	HarvestDate  time.Time // The date the lot was harvested. Never in the future.
	CreatedAt    time.Time // Timestamp of when the lot was recorded.
	UpdatedAt    time.Time // Timestamp of the last modification to the lot.
}
