// Package model holds the flat records the CMS stores, one per table.
//
// Optional columns are pointers so a field missing from a JSON payload is
// written as NULL. Lookup-backed fields come in pairs: the xxx_id column is
// written, the xxx_name value is resolved by the repository at read time.
package model

import (
	"slices"
	"time"
)

// Base carries the identity and audit columns every table shares.
// A row is live while DeletedAt is nil.
type Base struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Meta exposes the embedded Base to generic code.
func (b *Base) Meta() *Base {
	return b
}

// Entity is implemented by pointers to every stored record.
type Entity interface {
	Meta() *Base
	Validate() error
	// Label is the record's required display field (name or title).
	Label() string
}

// LookupItem is a row of a categorical lookup table.
type LookupItem struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// Lookup table names.
const (
	LookupIndustries = "industries"
	LookupLocations  = "locations"
	LookupCapacities = "capacities"
	LookupAmenities  = "amenities"
	LookupCategories = "categories"
)

// LookupTables lists every lookup table the API exposes.
var LookupTables = []string{
	LookupIndustries,
	LookupLocations,
	LookupCapacities,
	LookupAmenities,
	LookupCategories,
}

// IsLookupTable reports whether name is an exposed lookup table.
func IsLookupTable(name string) bool {
	return slices.Contains(LookupTables, name)
}
