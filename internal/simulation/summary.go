package simulation

import "baseload-study/internal/solar"

// AnnualSummary reduces one configuration's 8,760-hour trace to the numbers
// the cross-site comparison needs.
type AnnualSummary struct {
	PVCapacityGW        float64 `json:"pv_capacity_gw"`
	BatteryCapacityGWh  float64 `json:"battery_capacity_gwh"`
	LoadGW              float64 `json:"load_gw"`
	AnnualLoadGWh       float64 `json:"annual_load_gwh"`
	EnergyServedGWh     float64 `json:"energy_served_gwh"`
	UnmetLoadGWh        float64 `json:"unmet_load_gwh"`
	OverproductionGWh   float64 `json:"overproduction_gwh"`
	EnergyChargedGWh    float64 `json:"energy_charged_gwh"`
	EnergyDischargedGWh float64 `json:"energy_discharged_gwh"`
	UnmetHours          int     `json:"unmet_hours"`
	// CapacityFactor is energy served divided by the theoretical maximum
	// (load x 8,760 hours).
	CapacityFactor float64 `json:"capacity_factor"`
}

// Summarize reduces a dispatch trace. All reductions are plain sums over the
// records; no ordering beyond the trace itself matters.
func Summarize(records []HourlyRecord, cfg DispatchConfig) AnnualSummary {
	s := AnnualSummary{
		PVCapacityGW:       cfg.PVCapacityGW,
		BatteryCapacityGWh: cfg.BatteryCapacityGWh,
		LoadGW:             cfg.LoadGW,
		AnnualLoadGWh:      cfg.LoadGW * solar.HoursPerYear,
	}
	for _, r := range records {
		s.UnmetLoadGWh += r.UnmetLoad
		s.OverproductionGWh += r.Overproduction
		s.EnergyChargedGWh += r.BatteryCharge
		s.EnergyDischargedGWh += r.BatteryDischarge
		s.EnergyServedGWh += cfg.LoadGW - r.UnmetLoad
		if r.UnmetLoad > 0 {
			s.UnmetHours++
		}
	}
	if s.AnnualLoadGWh > 0 {
		s.CapacityFactor = s.EnergyServedGWh / s.AnnualLoadGWh
	}
	return s
}
