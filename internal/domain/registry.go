package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// depotAliases maps numeric depot IDs to the alphanumeric codes routes use for them.
var depotAliases = map[int]string{
	1: "CDA",
}

// Reserved depot codes share the "C" prefix with clients and must never be read as one.
var reservedDepotCodes = map[string]struct{}{
	"CDA": {},
	"CDB": {},
	"CDC": {},
}

// DepotKey is the canonical key of a depot's numeric ID.
func DepotKey(id int) string {
	return strconv.Itoa(id)
}

// ClientKey is the canonical key of a client: "C" plus the ID zero-padded to three digits.
func ClientKey(id int) string {
	return fmt.Sprintf("C%03d", id)
}

// IsClientKey reports whether a stop key denotes a client by naming convention.
func IsClientKey(key string) bool {
	if !strings.HasPrefix(key, "C") {
		return false
	}
	_, reserved := reservedDepotCodes[key]
	return !reserved
}

// Registry resolves location keys to coordinates and roles.
// It is built once from source records and is read-only afterwards.
type Registry struct {
	locations     map[string]Location
	clientDemands map[string]int
}

// NewRegistry merges depot and client records into one key space.
// Each depot yields its numeric key plus any alias from the alias table;
// each client yields its padded "Cnnn" key. Colliding keys are rejected.
func NewRegistry(depots []DepotRecord, clients []ClientRecord) (*Registry, error) {
	r := &Registry{
		locations:     make(map[string]Location, len(depots)+len(clients)),
		clientDemands: make(map[string]int, len(clients)),
	}

	for _, d := range depots {
		keys := []string{DepotKey(d.DepotID)}
		if alias, ok := depotAliases[d.DepotID]; ok {
			keys = append(keys, alias)
		}

		for _, k := range keys {
			if err := r.add(Location{Key: k, Coords: d.Coords, Role: RoleDepot}); err != nil {
				return nil, fmt.Errorf("build registry: depot %d: %w", d.DepotID, err)
			}
		}
	}

	for _, c := range clients {
		k := ClientKey(c.ClientID)
		loc := Location{Key: k, Coords: c.Coords, Role: RoleClient, Demand: c.Demand}
		if err := r.add(loc); err != nil {
			return nil, fmt.Errorf("build registry: client %d: %w", c.ClientID, err)
		}
		r.clientDemands[k] = c.Demand
	}

	return r, nil
}

func (r *Registry) add(loc Location) error {
	if _, ok := r.locations[loc.Key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Key)
	}
	r.locations[loc.Key] = loc
	return nil
}

func (r *Registry) Lookup(key string) (Location, bool) {
	loc, ok := r.locations[key]
	return loc, ok
}

func (r *Registry) Len() int { return len(r.locations) }

// ClientDemand returns the required demand of a client, zero when unknown.
func (r *Registry) ClientDemand(key string) int {
	return r.clientDemands[key]
}

// ClientDemands returns a copy of the client key -> required demand mapping.
func (r *Registry) ClientDemands() map[string]int {
	out := make(map[string]int, len(r.clientDemands))
	for k, v := range r.clientDemands {
		out[k] = v
	}
	return out
}

// ClientKeys returns every known client key in sorted order.
func (r *Registry) ClientKeys() []string {
	keys := make([]string, 0, len(r.clientDemands))
	for k := range r.clientDemands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
