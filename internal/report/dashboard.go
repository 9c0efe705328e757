package report

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"baseload-study/internal/analysis"
)

// DashboardRow is one row of the flat dataset consumed by the external
// dashboard. Energy columns are MWh to match its schema. WindGW is a
// placeholder slot: the study has no wind build-outs, so rows are duplicated
// per configured wind level (default just 0).
type DashboardRow struct {
	Location             string
	SiteName             string
	Latitude             float64
	Longitude            float64
	SolarGW              float64
	WindGW               float64
	BatteryGWh           float64
	SystemCapacityFactor float64
	LCOEPerMWh           float64
	LCOEValid            bool
	AnnualLoadMWh        float64
	EnergyServedMWh      float64
	UnmetLoadMWh         float64
	OverproductionMWh    float64
}

// BuildDashboardRows scores every summary with the cost model and expands it
// across the configured wind levels.
func BuildDashboardRows(rows []SiteSummaryRow, windLevels []float64, costs analysis.CostAssumptions) []DashboardRow {
	if len(windLevels) == 0 {
		windLevels = []float64{0}
	}
	out := make([]DashboardRow, 0, len(rows)*len(windLevels))
	for _, row := range rows {
		s := row.Summary
		lcoe, ok := analysis.EstimateLCOE(s, costs)
		location := fmt.Sprintf("Lat%.2f_Lon%.2f", row.Site.Latitude, row.Site.Longitude)
		for _, wind := range windLevels {
			out = append(out, DashboardRow{
				Location:             location,
				SiteName:             row.Site.Name,
				Latitude:             row.Site.Latitude,
				Longitude:            row.Site.Longitude,
				SolarGW:              s.PVCapacityGW,
				WindGW:               wind,
				BatteryGWh:           s.BatteryCapacityGWh,
				SystemCapacityFactor: s.CapacityFactor,
				LCOEPerMWh:           lcoe,
				LCOEValid:            ok,
				AnnualLoadMWh:        s.AnnualLoadGWh * 1000,
				EnergyServedMWh:      s.EnergyServedGWh * 1000,
				UnmetLoadMWh:         s.UnmetLoadGWh * 1000,
				OverproductionMWh:    s.OverproductionGWh * 1000,
			})
		}
	}
	return out
}

// WriteDashboardCSV writes the dashboard dataset. An invalid LCOE (nothing
// served) is written as an empty cell.
func WriteDashboardCSV(path string, rows []DashboardRow) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"Location",
		"Site_Name",
		"Latitude",
		"Longitude",
		"Solar_GW",
		"Wind_GW",
		"Battery_GWh",
		"System_Capacity_Factor",
		"LCOE_USD_per_MWh",
		"Annual_Load_MWh",
		"Energy_Served_MWh",
		"Unmet_Load_MWh",
		"Overproduction_MWh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		lcoe := ""
		if r.LCOEValid {
			lcoe = strconv.FormatFloat(r.LCOEPerMWh, 'f', 2, 64)
		}
		rec := []string{
			r.Location,
			r.SiteName,
			fmtCoord(r.Latitude),
			fmtCoord(r.Longitude),
			fmtShort(r.SolarGW),
			fmtShort(r.WindGW),
			fmtShort(r.BatteryGWh),
			strconv.FormatFloat(r.SystemCapacityFactor, 'f', 4, 64),
			lcoe,
			fmtShort(r.AnnualLoadMWh),
			fmtShort(r.EnergyServedMWh),
			fmtShort(r.UnmetLoadMWh),
			fmtShort(r.OverproductionMWh),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}
