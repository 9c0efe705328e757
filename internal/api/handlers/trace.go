package handlers

import (
	"fmt"

	"baseload-study/internal/api/models"
	"baseload-study/internal/solar"
)

// defaultYear matches the study default for synthetic profiles.
const defaultYear = 2021

// errMissingSource means the request named no PV trace and no site.
var errMissingSource = fmt.Errorf("either pv_per_kw or site is required")

// resolveTrace produces the per-kW PV trace for a request: an inline trace is
// used as-is, otherwise the deterministic synthetic model runs at the given
// site. Returns the trace plus its source label.
func resolveTrace(pvPerKW []float64, site *models.SitePayload, year int, derate float64) ([]float64, string, error) {
	if len(pvPerKW) > 0 {
		if len(pvPerKW) != solar.HoursPerYear {
			return nil, "", fmt.Errorf("%w: pv_per_kw has %d hours, want %d",
				solar.ErrLengthMismatch, len(pvPerKW), solar.HoursPerYear)
		}
		return pvPerKW, "inline", nil
	}
	if site == nil {
		return nil, "", errMissingSource
	}
	if year == 0 {
		year = defaultYear
	}
	if derate == 0 {
		derate = solar.DefaultDerate
	}
	profile := solar.Synthesize(site.Latitude, site.Longitude, year)
	perKW, err := profile.PerKW(derate)
	if err != nil {
		return nil, "", err
	}
	return perKW, "synthetic", nil
}
