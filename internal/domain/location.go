package domain

import "errors"

var (
	// ErrUnknownLocation is returned when a key does not resolve in the registry.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrDuplicateLocation is returned when two records canonicalize to the same key.
	ErrDuplicateLocation = errors.New("duplicate location key")
)

type Role string

const (
	RoleDepot  Role = "depot"
	RoleClient Role = "client"
)

// Represents a single addressable point of the routing problem.
// Depots and clients share one key space; Demand is only meaningful for clients.
type Location struct {
	Key    string
	Coords Coordinates
	Role   Role
	Demand int
}

// Source records as read from the tabular inputs.
type DepotRecord struct {
	DepotID int `validate:"gte=0"`
	Coords  Coordinates
}

type ClientRecord struct {
	ClientID int `validate:"gte=0"`
	Demand   int `validate:"gte=0"`
	Coords   Coordinates
}
