package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseload-study/internal/solar"
)

func constantTrace(v float64) []float64 {
	out := make([]float64, solar.HoursPerYear)
	for i := range out {
		out[i] = v
	}
	return out
}

func syntheticTrace(t *testing.T) []float64 {
	t.Helper()
	perKW, err := solar.Synthesize(19.4326, -99.1332, 2021).PerKW(solar.DefaultDerate)
	require.NoError(t, err)
	return perKW
}

func TestDispatchConfig_Validate(t *testing.T) {
	valid := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  10,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*DispatchConfig)
	}{
		{"zero pv", func(c *DispatchConfig) { c.PVCapacityGW = 0 }},
		{"negative pv", func(c *DispatchConfig) { c.PVCapacityGW = -1 }},
		{"negative battery", func(c *DispatchConfig) { c.BatteryCapacityGWh = -0.1 }},
		{"zero load", func(c *DispatchConfig) { c.LoadGW = 0 }},
		{"zero efficiency", func(c *DispatchConfig) { c.RoundTripEfficiency = 0 }},
		{"efficiency above one", func(c *DispatchConfig) { c.RoundTripEfficiency = 1.1 }},
		{"soc fraction below zero", func(c *DispatchConfig) { c.InitialSOCFraction = -0.1 }},
		{"soc fraction above one", func(c *DispatchConfig) { c.InitialSOCFraction = 1.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	// Zero battery capacity is a legal (inert) configuration.
	cfg := valid
	cfg.BatteryCapacityGWh = 0
	assert.NoError(t, cfg.Validate())
}

func TestSimulate_TraceLengthChecked(t *testing.T) {
	cfg := DispatchConfig{PVCapacityGW: 1, LoadGW: 1, RoundTripEfficiency: 0.9}
	_, err := Simulate(make([]float64, 24), cfg)
	assert.ErrorIs(t, err, solar.ErrLengthMismatch)
}

// Energy conservation: every hour, solar minus what went into the battery
// (grid side) plus what came out (load side) minus overproduction plus unmet
// load must equal the load target.
func TestSimulate_EnergyBalance(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  10,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(syntheticTrace(t), cfg)
	require.NoError(t, err)
	require.Equal(t, solar.HoursPerYear, len(records))

	eff := math.Sqrt(cfg.RoundTripEfficiency)
	for _, r := range records {
		absorbed := 0.0
		if r.BatteryCharge > 0 {
			absorbed = r.BatteryCharge / eff
		}
		delivered := r.BatteryDischarge * eff
		balance := r.SolarOutput - absorbed + delivered + r.UnmetLoad - r.Overproduction
		require.InDelta(t, cfg.LoadGW, balance, 1e-6, "hour %d", r.Hour)
	}
}

func TestSimulate_SOCBounds(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        8,
		BatteryCapacityGWh:  4,
		LoadGW:              1,
		RoundTripEfficiency: 0.85,
		InitialSOCFraction:  1.0,
	}
	records, err := Simulate(syntheticTrace(t), cfg)
	require.NoError(t, err)
	for _, r := range records {
		require.GreaterOrEqual(t, r.BatterySOC, 0.0, "hour %d", r.Hour)
		require.LessOrEqual(t, r.BatterySOC, cfg.BatteryCapacityGWh, "hour %d", r.Hour)
	}
}

func TestSimulate_ZeroBatteryIsInert(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  0,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(syntheticTrace(t), cfg)
	require.NoError(t, err)

	for _, r := range records {
		require.Equal(t, 0.0, r.BatterySOC, "hour %d", r.Hour)
		require.Equal(t, 0.0, r.BatteryCharge, "hour %d", r.Hour)
		require.Equal(t, 0.0, r.BatteryDischarge, "hour %d", r.Hour)
		net := r.SolarOutput - cfg.LoadGW
		if net >= 0 {
			require.InDelta(t, net, r.Overproduction, 1e-9, "hour %d", r.Hour)
			require.Equal(t, 0.0, r.UnmetLoad, "hour %d", r.Hour)
		} else {
			require.InDelta(t, -net, r.UnmetLoad, 1e-9, "hour %d", r.Hour)
			require.Equal(t, 0.0, r.Overproduction, "hour %d", r.Hour)
		}
	}
}

func TestSimulate_Pure(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        3,
		BatteryCapacityGWh:  6,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	trace := syntheticTrace(t)
	a, err := Simulate(trace, cfg)
	require.NoError(t, err)
	b, err := Simulate(trace, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Constant 0.2 kWh/kW at 5 GW installed is exactly 1 GW of output: the load
// is met every hour with nothing left over and nothing missing.
func TestSimulate_ExactBalanceScenario(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  0,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(constantTrace(0.2), cfg)
	require.NoError(t, err)

	for _, r := range records {
		require.InDelta(t, 1.0, r.SolarOutput, 1e-12, "hour %d", r.Hour)
		require.Equal(t, 0.0, r.UnmetLoad, "hour %d", r.Hour)
		require.Equal(t, 0.0, r.Overproduction, "hour %d", r.Hour)
	}
}

// With no sun at all, a half-full 10 GWh battery carries a 1 GW load for a
// few hours through the discharge leg, then every later hour goes unmet.
func TestSimulate_DarkDrainScenario(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  10,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(constantTrace(0), cfg)
	require.NoError(t, err)

	eff := math.Sqrt(cfg.RoundTripEfficiency)
	// 5 GWh at ~0.9487 discharge efficiency fully covers floor(5*eff) = 4
	// hours before running dry.
	fullHours := int(5 * eff)
	for h := 0; h < fullHours; h++ {
		require.Equal(t, 0.0, records[h].UnmetLoad, "hour %d", h)
	}
	assert.Greater(t, records[fullHours].UnmetLoad, 0.0)
	for h := fullHours + 1; h < solar.HoursPerYear; h++ {
		require.InDelta(t, cfg.LoadGW, records[h].UnmetLoad, 1e-9, "hour %d", h)
		require.Equal(t, 0.0, records[h].BatterySOC, "hour %d", h)
	}
}

func TestSummarize(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  10,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(syntheticTrace(t), cfg)
	require.NoError(t, err)

	s := Summarize(records, cfg)
	assert.Equal(t, cfg.PVCapacityGW, s.PVCapacityGW)
	assert.Equal(t, cfg.BatteryCapacityGWh, s.BatteryCapacityGWh)
	assert.InDelta(t, float64(solar.HoursPerYear), s.AnnualLoadGWh, 1e-9)
	assert.InDelta(t, s.AnnualLoadGWh-s.UnmetLoadGWh, s.EnergyServedGWh, 1e-6)
	assert.InDelta(t, s.EnergyServedGWh/s.AnnualLoadGWh, s.CapacityFactor, 1e-9)
	assert.GreaterOrEqual(t, s.CapacityFactor, 0.0)
	assert.LessOrEqual(t, s.CapacityFactor, 1.0)

	unmetHours := 0
	for _, r := range records {
		if r.UnmetLoad > 0 {
			unmetHours++
		}
	}
	assert.Equal(t, unmetHours, s.UnmetHours)
}

func TestSummarize_PerfectServeScenario(t *testing.T) {
	cfg := DispatchConfig{
		PVCapacityGW:        5,
		BatteryCapacityGWh:  0,
		LoadGW:              1,
		RoundTripEfficiency: 0.9,
		InitialSOCFraction:  0.5,
	}
	records, err := Simulate(constantTrace(0.2), cfg)
	require.NoError(t, err)

	s := Summarize(records, cfg)
	assert.InDelta(t, 1.0, s.CapacityFactor, 1e-9)
	assert.Equal(t, 0, s.UnmetHours)
	assert.InDelta(t, 0.0, s.UnmetLoadGWh, 1e-9)
	assert.InDelta(t, 0.0, s.OverproductionGWh, 1e-9)
}
