package services

import (
	"route-validator/internal/domain"
)

func (p *validationPass) checkRoute(rt domain.Route) {
	spec, known := p.v.vehicles[rt.VehicleID]
	if !known {
		p.addf("Route %s references unknown vehicle %d", rt.VehicleLabel, rt.VehicleID)
	}

	p.checkDepotClosure(rt)
	if known {
		p.checkCapacity(rt, spec)
	}

	total := p.routeDistance(rt)
	if known && total > spec.Range {
		p.addf("Route %s exceeds range: %.1f > %g", rt.VehicleLabel, total, spec.Range)
	}

	p.checkDemands(rt)
	p.checkClientCounts(rt)
}

func (p *validationPass) checkDepotClosure(rt domain.Route) {
	seq := rt.Sequence
	if len(seq) == 0 || seq[0] != rt.DepotID || seq[len(seq)-1] != rt.DepotID {
		p.addf("Route %s does not start and end at depot %s", rt.VehicleLabel, rt.DepotID)
	}
}

func (p *validationPass) checkCapacity(rt domain.Route, spec domain.VehicleSpec) {
	if rt.InitialLoad > spec.Capacity {
		p.addf("Route %s exceeds capacity: %d > %d", rt.VehicleLabel, rt.InitialLoad, spec.Capacity)
	}
}

// routeDistance sums the legs of the route. Legs touching an unknown location or
// failing to compute are reported and contribute nothing to the total.
func (p *validationPass) routeDistance(rt domain.Route) float64 {
	var total float64

	for i := 0; i+1 < len(rt.Sequence); i++ {
		from, to := rt.Sequence[i], rt.Sequence[i+1]

		if _, ok := p.v.registry.Lookup(from); !ok {
			p.addf("Route %s has invalid location: %s", rt.VehicleLabel, from)
			continue
		}
		if _, ok := p.v.registry.Lookup(to); !ok {
			p.addf("Route %s has invalid location: %s", rt.VehicleLabel, to)
			continue
		}

		km, err := p.v.provider.Distance(p.ctx, from, to)
		if err != nil {
			p.addf("Route %s distance calculation error: %v", rt.VehicleLabel, err)
			continue
		}
		total += km
	}

	return total
}

// checkDemands pairs client stops with the declared demands in order.
// Extra declared demands are ignored.
func (p *validationPass) checkDemands(rt domain.Route) {
	next := 0
	for _, stop := range rt.Sequence {
		if !domain.IsClientKey(stop) {
			continue
		}

		if next >= len(rt.Demands) {
			p.addf("Route %s has missing demand value for client %s", rt.VehicleLabel, stop)
			continue
		}

		p.visited[stop] = struct{}{}

		declared := rt.Demands[next]
		if want := p.v.registry.ClientDemand(stop); declared != want {
			p.addf("Route %s has incorrect demand for %s: %d != %d", rt.VehicleLabel, stop, declared, want)
		}
		next++
	}
}

func (p *validationPass) checkClientCounts(rt domain.Route) {
	seen := make(map[string]struct{})
	occurrences := 0
	duplicated := false

	for _, stop := range rt.Sequence {
		if !domain.IsClientKey(stop) {
			continue
		}
		occurrences++
		if _, ok := seen[stop]; ok {
			duplicated = true
		}
		seen[stop] = struct{}{}
	}

	if duplicated {
		p.addf("Route %s has duplicate client visits", rt.VehicleLabel)
	}
	if occurrences != rt.ClientsServed {
		p.addf("Route %s clients_served mismatch: %d != %d", rt.VehicleLabel, occurrences, rt.ClientsServed)
	}
}

func (p *validationPass) checkCoverage() {
	for _, key := range p.v.registry.ClientKeys() {
		if _, ok := p.visited[key]; !ok {
			p.addf("Client %s was not visited", key)
		}
	}
}
