package domain

import "time"

// SnapshotVersion is the current save-file format version
const SnapshotVersion = 1

// PlayerSnapshot is a portable copy of one player's local state
type PlayerSnapshot struct {
	Version      int                 `json:"version"`
	ExportedAt   time.Time           `json:"exported_at"`
	Player       Player              `json:"player"`
	Holdings     []ItemHolding       `json:"holdings"`
	Autoclickers []PlayerAutoclicker `json:"autoclickers"`
	Listings     []Listing           `json:"listings"`
}
