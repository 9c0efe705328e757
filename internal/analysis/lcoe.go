package analysis

import (
	"math"

	"baseload-study/internal/simulation"
)

// CostAssumptions is the flat cost model behind the back-of-the-envelope
// LCOE. These are study constants, not a financial optimization.
type CostAssumptions struct {
	PVCapexPerKW           float64 `yaml:"pv_capex_per_kw" json:"pv_capex_per_kw"`
	BatteryCapexPerKWh     float64 `yaml:"battery_capex_per_kwh" json:"battery_capex_per_kwh"`
	PVFixedOMFraction      float64 `yaml:"pv_fixed_om_fraction" json:"pv_fixed_om_fraction"`
	BatteryFixedOMFraction float64 `yaml:"battery_fixed_om_fraction" json:"battery_fixed_om_fraction"`
	DiscountRate           float64 `yaml:"discount_rate" json:"discount_rate"`
	LifetimeYears          int     `yaml:"lifetime_years" json:"lifetime_years"`
}

// DefaultCostAssumptions returns the study's baseline cost constants.
func DefaultCostAssumptions() CostAssumptions {
	return CostAssumptions{
		PVCapexPerKW:           700.0,
		BatteryCapexPerKWh:     150.0,
		PVFixedOMFraction:      0.02,
		BatteryFixedOMFraction: 0.015,
		DiscountRate:           0.07,
		LifetimeYears:          25,
	}
}

// AnnuityFactor converts an upfront capex into an equivalent annual payment
// over the asset lifetime at the discount rate.
func (c CostAssumptions) AnnuityFactor() float64 {
	r := c.DiscountRate
	n := float64(c.LifetimeYears)
	if n == 0 {
		return 0
	}
	if r == 0 {
		return 1 / n
	}
	denominator := math.Pow(1+r, n) - 1
	if denominator == 0 {
		return 0
	}
	return r * math.Pow(1+r, n) / denominator
}

// AnnualFixedOM is the yearly operations and maintenance spend for a given
// capex split.
func (c CostAssumptions) AnnualFixedOM(pvCapex, batteryCapex float64) float64 {
	return pvCapex*c.PVFixedOMFraction + batteryCapex*c.BatteryFixedOMFraction
}

// EstimateLCOE returns the levelized cost of energy served ($/MWh) for one
// configuration summary. ok is false when the configuration served no energy,
// in which case LCOE is undefined.
func EstimateLCOE(s simulation.AnnualSummary, costs CostAssumptions) (float64, bool) {
	servedMWh := s.EnergyServedGWh * 1000.0
	if servedMWh <= 0 {
		return 0, false
	}
	pvCapex := s.PVCapacityGW * 1_000_000 * costs.PVCapexPerKW
	batteryCapex := s.BatteryCapacityGWh * 1_000 * costs.BatteryCapexPerKWh
	annualized := costs.AnnuityFactor() * (pvCapex + batteryCapex)
	totalAnnualCost := annualized + costs.AnnualFixedOM(pvCapex, batteryCapex)
	return totalAnnualCost / servedMWh, true
}
