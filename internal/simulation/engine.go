package simulation

import (
	"errors"
	"fmt"
	"math"

	"baseload-study/internal/solar"
)

// ErrInvalidConfig is returned when dispatch parameters are malformed. There
// is nothing transient about it: it always means the caller passed bad data.
var ErrInvalidConfig = errors.New("invalid dispatch config")

// DefaultInitialSOCFraction starts batteries half full.
const DefaultInitialSOCFraction = 0.5

// DefaultRoundTripEfficiency is the study's round-trip storage efficiency.
const DefaultRoundTripEfficiency = 0.9

// DispatchConfig is one build-out to simulate against the baseload target.
// Units: GW for power, GWh for energy. Hourly steps make the two numerically
// interchangeable.
type DispatchConfig struct {
	PVCapacityGW        float64
	BatteryCapacityGWh  float64
	LoadGW              float64
	RoundTripEfficiency float64
	InitialSOCFraction  float64
}

// Validate rejects malformed configurations before any simulation work.
func (c DispatchConfig) Validate() error {
	if c.PVCapacityGW <= 0 {
		return fmt.Errorf("%w: PVCapacityGW must be > 0, got %v", ErrInvalidConfig, c.PVCapacityGW)
	}
	if c.BatteryCapacityGWh < 0 {
		return fmt.Errorf("%w: BatteryCapacityGWh must be >= 0, got %v", ErrInvalidConfig, c.BatteryCapacityGWh)
	}
	if c.LoadGW <= 0 {
		return fmt.Errorf("%w: LoadGW must be > 0, got %v", ErrInvalidConfig, c.LoadGW)
	}
	if c.RoundTripEfficiency <= 0 || c.RoundTripEfficiency > 1 {
		return fmt.Errorf("%w: RoundTripEfficiency must be in (0, 1], got %v", ErrInvalidConfig, c.RoundTripEfficiency)
	}
	if c.InitialSOCFraction < 0 || c.InitialSOCFraction > 1 {
		return fmt.Errorf("%w: InitialSOCFraction must be in [0, 1], got %v", ErrInvalidConfig, c.InitialSOCFraction)
	}
	return nil
}

// legEfficiency splits round-trip losses evenly: each of the charge and
// discharge legs is sqrt(round-trip), e.g. 0.90 round-trip gives ~0.9487 per
// leg.
func (c DispatchConfig) legEfficiency() float64 {
	return math.Sqrt(c.RoundTripEfficiency)
}

// HourlyRecord is one row of the dispatch trace: what the hour generated,
// what the battery did, and how the balance against the load target closed.
type HourlyRecord struct {
	Hour             int     `json:"hour"`
	SolarOutput      float64 `json:"solar_output_gw"`
	BatteryCharge    float64 `json:"battery_charge_gwh"`
	BatteryDischarge float64 `json:"battery_discharge_gwh"`
	BatterySOC       float64 `json:"battery_soc_gwh"`
	UnmetLoad        float64 `json:"unmet_load_gw"`
	Overproduction   float64 `json:"overproduction_gw"`
}

// dispatchState is the single owned mutable during one 8,760-hour pass.
type dispatchState struct {
	soc float64
}

// Simulate runs the hour-by-hour dispatch recurrence for one configuration.
// The loop is inherently sequential: each hour's state of charge depends on
// the previous hour's. The returned trace is owned by the caller; calling
// Simulate twice with identical arguments yields identical traces.
func Simulate(perKW []float64, cfg DispatchConfig) ([]HourlyRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(perKW) != solar.HoursPerYear {
		return nil, fmt.Errorf("%w: pv trace has %d hours, want %d",
			solar.ErrLengthMismatch, len(perKW), solar.HoursPerYear)
	}

	eff := cfg.legEfficiency()
	capacity := cfg.BatteryCapacityGWh
	state := dispatchState{soc: capacity * cfg.InitialSOCFraction}

	records := make([]HourlyRecord, 0, solar.HoursPerYear)
	for h := 0; h < solar.HoursPerYear; h++ {
		records = append(records, stepHour(h, perKW[h], cfg, eff, capacity, &state))
	}
	return records, nil
}

// stepHour advances the recurrence by one hour.
//
// Surplus hours route solar through the charge leg until the battery is full;
// whatever cannot be absorbed (including the conversion loss on the rejected
// portion) is overproduction. Deficit hours draw the battery down through the
// discharge leg; whatever the battery cannot cover is unmet load.
func stepHour(h int, perKW float64, cfg DispatchConfig, eff, capacity float64, state *dispatchState) HourlyRecord {
	solarGW := perKW * cfg.PVCapacityGW
	net := solarGW - cfg.LoadGW

	rec := HourlyRecord{
		Hour:        h,
		SolarOutput: solarGW,
	}

	if net >= 0 {
		charge := 0.0
		if capacity > 0 {
			charge = math.Min(net*eff, capacity-state.soc)
			state.soc += charge
		}
		used := 0.0
		if charge > 0 {
			used = charge / eff
		}
		rec.BatteryCharge = charge
		rec.Overproduction = math.Max(0, net-used)
	} else {
		deficit := -net
		discharge := 0.0
		if capacity > 0 {
			discharge = math.Min(deficit/eff, state.soc)
			state.soc -= discharge
		}
		delivered := discharge * eff
		rec.BatteryDischarge = discharge
		rec.UnmetLoad = math.Max(0, deficit-delivered)
	}

	// Clamp floating-point drift so SoC never leaves [0, capacity].
	if state.soc < 0 {
		state.soc = 0
	}
	if state.soc > capacity {
		state.soc = capacity
	}
	rec.BatterySOC = state.soc
	return rec
}
