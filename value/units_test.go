package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUnits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, &Units{Altimeter: "inHg", Altitude: "ft", Temperature: "C", Visibility: "sm", WindSpeed: "kt"}, NAUnits())
	assert.Equal(t, &Units{Altimeter: "hPa", Altitude: "ft", Temperature: "C", Visibility: "m", WindSpeed: "kt"}, INUnits())
	assert.NotSame(t, NAUnits(), NAUnits())
}

func TestConvertAltimeter(t *testing.T) {
	t.Parallel()
	hpa, err := ConvertAltimeter(29.92, UnitInHg, UnitHPa)
	require.NoError(t, err)
	assert.InDelta(t, 1013.2, hpa, 0.1)

	inhg, err := ConvertAltimeter(1013, UnitHPa, UnitInHg)
	require.NoError(t, err)
	assert.InDelta(t, 29.91, inhg, 0.01)

	_, err = ConvertAltimeter(1013, "bar", UnitInHg)
	assert.True(t, errors.Is(err, ErrUnresolvedAltimeterUnit))
}

func TestConvertAltitude(t *testing.T) {
	t.Parallel()
	m, err := ConvertAltitude(1000, UnitFeet, UnitM)
	require.NoError(t, err)
	assert.InDelta(t, 304.8, m, 0.001)

	_, err = ConvertAltitude(1000, "furlong", UnitM)
	assert.True(t, errors.Is(err, ErrUnresolvedAltimeterUnit))

	u := NAUnits()
	ft, err := u.CloudBaseFeet(50)
	require.NoError(t, err)
	assert.InDelta(t, 5000, ft, 0.001)

	u.Altitude = "nm"
	_, err = u.CloudBaseFeet(50)
	assert.ErrorIs(t, err, ErrUnresolvedAltimeterUnit)
}
