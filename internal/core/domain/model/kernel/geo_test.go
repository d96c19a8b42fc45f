package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid point", 12.9716, 77.5946, false},
		{"equator and meridian", 0, 0, false},
		{"latitude at north bound", 90, 10, false},
		{"latitude at south bound", -90, 10, false},
		{"longitude at east bound", 10, 180, false},
		{"longitude at west bound", 10, -180, false},
		{"latitude above bound", 90.01, 10, true},
		{"latitude below bound", -90.01, 10, true},
		{"longitude above bound", 10, 180.01, true},
		{"longitude below bound", 10, -180.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.Equal(t, tt.latitude, point.Latitude())
			assert.Equal(t, tt.longitude, point.Longitude())
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint
	assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, point.Validate())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(1.5, 2.5)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(1.5, 2.5)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(1.5, 3.5)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
