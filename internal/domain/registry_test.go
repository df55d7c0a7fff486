package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	depots := []DepotRecord{
		{DepotID: 1, Coords: Coordinates{Lat: 4.6, Lon: -74.1}},
		{DepotID: 2, Coords: Coordinates{Lat: 6.2, Lon: -75.5}},
	}
	clients := []ClientRecord{
		{ClientID: 7, Demand: 12, Coords: Coordinates{Lat: 4.7, Lon: -74.0}},
		{ClientID: 120, Demand: 3, Coords: Coordinates{Lat: 4.8, Lon: -74.2}},
	}

	r, err := NewRegistry(depots, clients)
	require.NoError(t, err)

	t.Run("primary depot has numeric key and alias", func(t *testing.T) {
		numeric, ok := r.Lookup("1")
		require.True(t, ok)
		alias, ok := r.Lookup("CDA")
		require.True(t, ok)

		assert.Equal(t, RoleDepot, alias.Role)
		assert.Equal(t, numeric.Coords, alias.Coords)
	})

	t.Run("other depots only get numeric keys", func(t *testing.T) {
		_, ok := r.Lookup("2")
		assert.True(t, ok)
		_, ok = r.Lookup("CDB")
		assert.False(t, ok)
	})

	t.Run("clients are zero padded", func(t *testing.T) {
		c, ok := r.Lookup("C007")
		require.True(t, ok)
		assert.Equal(t, RoleClient, c.Role)
		assert.Equal(t, 12, c.Demand)

		_, ok = r.Lookup("C120")
		assert.True(t, ok)
	})

	assert.Equal(t, 5, r.Len())
	assert.Equal(t, []string{"C007", "C120"}, r.ClientKeys())
	assert.Equal(t, map[string]int{"C007": 12, "C120": 3}, r.ClientDemands())
	assert.Equal(t, 0, r.ClientDemand("C999"))
}

func TestNewRegistryRejectsCollisions(t *testing.T) {
	t.Run("duplicate client", func(t *testing.T) {
		_, err := NewRegistry(nil, []ClientRecord{{ClientID: 1}, {ClientID: 1}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateLocation))
	})

	t.Run("duplicate depot", func(t *testing.T) {
		_, err := NewRegistry([]DepotRecord{{DepotID: 1}, {DepotID: 1}}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateLocation))
	})
}

func TestClientKeyConvention(t *testing.T) {
	assert.Equal(t, "C007", ClientKey(7))
	assert.Equal(t, "C1234", ClientKey(1234))
	assert.Equal(t, "3", DepotKey(3))

	assert.True(t, IsClientKey("C001"))
	assert.True(t, IsClientKey("C999"))
	assert.False(t, IsClientKey("CDA"))
	assert.False(t, IsClientKey("CDB"))
	assert.False(t, IsClientKey("CDC"))
	assert.False(t, IsClientKey("1"))
	assert.False(t, IsClientKey(""))
}
