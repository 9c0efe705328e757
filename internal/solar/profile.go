package solar

import (
	"errors"
	"fmt"
)

// HoursPerYear is the fixed study horizon. Leap days are dropped so every
// site-year lines up column for column.
const HoursPerYear = 8760

// ReferenceIrradianceWM2 is the standard-test-condition irradiance that
// defines one nameplate kW of PV. Per-kW yield is irradiance scaled against
// this reference.
const ReferenceIrradianceWM2 = 1000.0

// DefaultDerate folds wiring, inverter, soiling and temperature losses into a
// single system factor.
const DefaultDerate = 0.8

// ErrLengthMismatch is returned when an hourly sequence is not exactly one
// study year long.
var ErrLengthMismatch = errors.New("hourly sequence length mismatch")

// Profile is one site-year of hourly irradiance (W/m², hourly-average, so
// numerically Wh/m² per hour).
type Profile struct {
	Latitude   float64
	Longitude  float64
	Year       int
	Irradiance []float64
	// Source records where the values came from ("nasa", "cache",
	// "synthetic"). Informational only; nothing downstream branches on it.
	Source string
}

// ConvertIrradiance maps hourly irradiance to PV output per installed kW
// (kWh/kW for each hour): irradiance * derate / reference. Outputs are
// clamped to be non-negative.
func ConvertIrradiance(irradiance []float64, derate float64) ([]float64, error) {
	if len(irradiance) != HoursPerYear {
		return nil, fmt.Errorf("%w: got %d hours, want %d", ErrLengthMismatch, len(irradiance), HoursPerYear)
	}
	if derate <= 0 || derate > 1 {
		return nil, fmt.Errorf("derate must be in (0, 1], got %v", derate)
	}
	out := make([]float64, HoursPerYear)
	for h, irr := range irradiance {
		v := irr * derate / ReferenceIrradianceWM2
		if v < 0 {
			v = 0
		}
		out[h] = v
	}
	return out, nil
}

// PerKW converts the profile to per-kW PV output using derate.
func (p *Profile) PerKW(derate float64) ([]float64, error) {
	return ConvertIrradiance(p.Irradiance, derate)
}
