package analysis

import (
	"sort"

	"baseload-study/internal/simulation"
)

// RankedConfig is one configuration scored by the cost model.
type RankedConfig struct {
	Site    string
	Summary simulation.AnnualSummary
	// LCOE is $/MWh served; valid only when Servable.
	LCOE     float64
	Servable bool
}

// SiteSummaries groups one site's sweep output for ranking.
type SiteSummaries struct {
	Site      string
	Summaries []simulation.AnnualSummary
}

// RankByLCOE scores every configuration across sites and sorts ascending by
// LCOE. Configurations that served no energy rank last, ordered by site name
// for stability.
func RankByLCOE(bySite []SiteSummaries, costs CostAssumptions) []RankedConfig {
	out := make([]RankedConfig, 0)
	for _, site := range bySite {
		for _, s := range site.Summaries {
			lcoe, ok := EstimateLCOE(s, costs)
			out = append(out, RankedConfig{
				Site:     site.Site,
				Summary:  s,
				LCOE:     lcoe,
				Servable: ok,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Servable != out[j].Servable {
			return out[i].Servable
		}
		if !out[i].Servable {
			return out[i].Site < out[j].Site
		}
		return out[i].LCOE < out[j].LCOE
	})
	return out
}
