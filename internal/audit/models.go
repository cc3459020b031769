// Package audit records and queries the before/after history of admin
// mutations. Entries are written inside the mutation's transaction so an
// entry exists exactly when its mutation committed.
package audit

import (
	"encoding/json"
	"time"
)

// ChangeType is the persisted label of a kind of mutation. The strings are
// stored as audit_types rows and must not change.
type ChangeType string

const (
	ChangeUpdateCourtDetails          ChangeType = "Update court details"
	ChangeCreateCourt                 ChangeType = "Create new court"
	ChangeDeleteCourt                 ChangeType = "Delete existing court"
	ChangeUpdateAddresses             ChangeType = "Update court addresses and coordinates"
	ChangeUpdateCourtAreasOfLaw       ChangeType = "Update court areas of law"
	ChangeUpdateCourtLocalAuthorities ChangeType = "Update court local authorities"
	ChangeCreateAreaOfLaw             ChangeType = "Create area of law"
	ChangeUpdateAreaOfLaw             ChangeType = "Update area of law"
	ChangeDeleteAreaOfLaw             ChangeType = "Delete area of law"
)

// ChangeTypes lists every label in audit type id order.
var ChangeTypes = []ChangeType{
	ChangeUpdateCourtDetails,
	ChangeCreateCourt,
	ChangeDeleteCourt,
	ChangeUpdateAddresses,
	ChangeUpdateCourtAreasOfLaw,
	ChangeUpdateCourtLocalAuthorities,
	ChangeCreateAreaOfLaw,
	ChangeUpdateAreaOfLaw,
	ChangeDeleteAreaOfLaw,
}

// Type is a persisted audit type row.
type Type struct {
	ID   int
	Name ChangeType
}

// Entry is one recorded mutation. Before is null on create and After is
// null on delete.
type Entry struct {
	ID         int64           `json:"id"`
	UserEmail  string          `json:"user_email"`
	ChangeType ChangeType      `json:"audit_type"`
	Before     json.RawMessage `json:"data_before"`
	After      json.RawMessage `json:"data_after"`
	Location   string          `json:"location"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Query filters and pages the audit history. Zero values disable a filter.
type Query struct {
	Page     int
	Size     int
	Location string
	Email    string
	From     *time.Time
	To       *time.Time
}

// Page is one page of entries, newest first.
type Page struct {
	Entries []Entry `json:"entries"`
	Page    int     `json:"page"`
	Size    int     `json:"size"`
	Total   int     `json:"total"`
}
