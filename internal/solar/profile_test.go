package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIrradiance_LengthMismatch(t *testing.T) {
	_, err := ConvertIrradiance(make([]float64, 100), DefaultDerate)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ConvertIrradiance(make([]float64, HoursPerYear+24), DefaultDerate)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestConvertIrradiance_InvalidDerate(t *testing.T) {
	irr := make([]float64, HoursPerYear)
	_, err := ConvertIrradiance(irr, 0)
	assert.Error(t, err)
	_, err = ConvertIrradiance(irr, 1.5)
	assert.Error(t, err)
}

func TestConvertIrradiance_Scaling(t *testing.T) {
	irr := make([]float64, HoursPerYear)
	irr[0] = 1000 // exactly reference: full rated output before derate
	irr[1] = 500
	irr[2] = -25 // sensor glitch, must clamp to zero

	out, err := ConvertIrradiance(irr, 0.8)
	require.NoError(t, err)
	require.Equal(t, HoursPerYear, len(out))

	assert.InDelta(t, 0.8, out[0], 1e-12)
	assert.InDelta(t, 0.4, out[1], 1e-12)
	assert.Equal(t, 0.0, out[2])
	assert.Equal(t, 0.0, out[3])
}

func TestProfile_PerKW(t *testing.T) {
	p := Synthesize(37.77, -122.42, 2021)
	out, err := p.PerKW(DefaultDerate)
	require.NoError(t, err)
	require.Equal(t, HoursPerYear, len(out))
	for h, v := range out {
		require.GreaterOrEqual(t, v, 0.0, "hour %d negative", h)
	}
}
