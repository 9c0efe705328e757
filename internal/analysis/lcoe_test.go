package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseload-study/internal/simulation"
)

func TestAnnuityFactor(t *testing.T) {
	costs := DefaultCostAssumptions()
	// r=0.07, n=25 -> 0.07*1.07^25/(1.07^25-1)
	assert.InDelta(t, 0.08581, costs.AnnuityFactor(), 1e-4)

	zeroRate := costs
	zeroRate.DiscountRate = 0
	assert.InDelta(t, 1.0/25.0, zeroRate.AnnuityFactor(), 1e-12)

	zeroLife := costs
	zeroLife.LifetimeYears = 0
	assert.Equal(t, 0.0, zeroLife.AnnuityFactor())
}

func TestAnnualFixedOM(t *testing.T) {
	costs := DefaultCostAssumptions()
	om := costs.AnnualFixedOM(1000, 2000)
	assert.InDelta(t, 1000*0.02+2000*0.015, om, 1e-9)
}

func TestEstimateLCOE(t *testing.T) {
	costs := DefaultCostAssumptions()
	s := simulation.AnnualSummary{
		PVCapacityGW:       2,
		BatteryCapacityGWh: 5,
		EnergyServedGWh:    8000,
	}
	lcoe, ok := EstimateLCOE(s, costs)
	require.True(t, ok)
	assert.Greater(t, lcoe, 0.0)

	// More energy served from the same build-out must be cheaper per MWh.
	cheaper := s
	cheaper.EnergyServedGWh = 8760
	lcoe2, ok := EstimateLCOE(cheaper, costs)
	require.True(t, ok)
	assert.Less(t, lcoe2, lcoe)
}

func TestEstimateLCOE_NothingServed(t *testing.T) {
	_, ok := EstimateLCOE(simulation.AnnualSummary{PVCapacityGW: 2}, DefaultCostAssumptions())
	assert.False(t, ok)
}

func TestRankByLCOE(t *testing.T) {
	costs := DefaultCostAssumptions()
	bySite := []SiteSummaries{
		{
			Site: "site_1_A",
			Summaries: []simulation.AnnualSummary{
				{PVCapacityGW: 8, BatteryCapacityGWh: 15, EnergyServedGWh: 8000},
				{PVCapacityGW: 1, BatteryCapacityGWh: 1, EnergyServedGWh: 4000},
			},
		},
		{
			Site: "site_2_B",
			Summaries: []simulation.AnnualSummary{
				{PVCapacityGW: 3, BatteryCapacityGWh: 0, EnergyServedGWh: 0}, // unservable
				{PVCapacityGW: 2, BatteryCapacityGWh: 4, EnergyServedGWh: 8500},
			},
		},
	}

	ranked := RankByLCOE(bySite, costs)
	require.Equal(t, 4, len(ranked))

	// Ascending LCOE among servable configs, unservable last.
	for i := 0; i < len(ranked)-1; i++ {
		if ranked[i].Servable && ranked[i+1].Servable {
			assert.LessOrEqual(t, ranked[i].LCOE, ranked[i+1].LCOE)
		}
	}
	assert.False(t, ranked[len(ranked)-1].Servable)
	assert.Equal(t, "site_2_B", ranked[len(ranked)-1].Site)
}
