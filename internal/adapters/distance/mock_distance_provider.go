package distance

import (
	"context"
	"fmt"
)

type MockPair struct {
	From, To string
	Km       float64
}

// MockDistanceProvider answers from a fixed table and counts Persist calls.
type MockDistanceProvider struct {
	m        map[string]float64
	failures map[string]error
	Persists int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
	}
	return &MockDistanceProvider{m: m, failures: map[string]error{}}
}

// FailOn makes Distance return err for the given pair.
func (p *MockDistanceProvider) FailOn(from, to string, err error) {
	p.failures[from+"|"+to] = err
}

func (p *MockDistanceProvider) Distance(ctx context.Context, origin, destination string) (float64, error) {
	if err, ok := p.failures[origin+"|"+destination]; ok {
		return 0, err
	}

	km, ok := p.m[origin+"|"+destination]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return km, nil
}

func (p *MockDistanceProvider) Persist(ctx context.Context) error {
	p.Persists++
	return nil
}
