package distance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	for _, method := range Methods() {
		s, err := NewStrategy(method, Options{})
		require.NoError(t, err, method)
		assert.Equal(t, method, s.Name())
	}

	s, err := NewStrategy(" OSRM ", Options{})
	require.NoError(t, err)
	assert.IsType(t, &OSRMStrategy{}, s)

	s, err = NewStrategy("geopy", Options{})
	require.NoError(t, err)
	assert.Equal(t, MethodGeodesic, s.Name())

	_, err = NewStrategy("manhattan", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMethod))
}
