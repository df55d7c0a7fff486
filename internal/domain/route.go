package domain

// Represents one row of a candidate solution: the stops a single vehicle visits.
//
// Sequence holds location keys in visiting order; the first and last entries are
// expected to be the depot. Demands is aligned positionally with the client stops
// of Sequence (depot stops are skipped by the alignment). Routes are read-only
// inputs to validation.
type Route struct {
	VehicleLabel  string
	VehicleID     int
	DepotID       string
	InitialLoad   int
	Sequence      []string
	ClientsServed int
	Demands       []int
}

// Everything the validator needs, already parsed from the tabular inputs.
type Dataset struct {
	Vehicles []VehicleSpec
	Depots   []DepotRecord
	Clients  []ClientRecord
	Routes   []Route
}
