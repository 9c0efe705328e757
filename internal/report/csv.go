package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"baseload-study/internal/simulation"
	"baseload-study/internal/sites"
)

// SiteSummaryRow ties one configuration summary back to the site it was
// simulated for.
type SiteSummaryRow struct {
	Site    sites.Site
	Summary simulation.AnnualSummary
}

// WriteSitesCSV writes the selected-sites table.
func WriteSitesCSV(path string, list []sites.Site) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "latitude", "longitude"}); err != nil {
		return err
	}
	for _, s := range list {
		row := []string{
			s.Name,
			fmtCoord(s.Latitude),
			fmtCoord(s.Longitude),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteHourlyCSV writes one site's full dispatch traces, every configuration
// appended into a single file with the build-out as leading columns.
func WriteHourlyCSV(path string, site sites.Site, results []simulation.ConfigResult) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"site",
		"latitude",
		"longitude",
		"pv_gw",
		"battery_gwh",
		"hour",
		"solar_generation_gw",
		"load_gw",
		"battery_charge_gwh",
		"battery_discharge_gwh",
		"battery_soc_gwh",
		"unmet_load_gw",
		"overproduction_gw",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, res := range results {
		for _, r := range res.Records {
			row := []string{
				site.Name,
				fmtCoord(site.Latitude),
				fmtCoord(site.Longitude),
				fmtShort(res.Config.PVCapacityGW),
				fmtShort(res.Config.BatteryCapacityGWh),
				strconv.Itoa(r.Hour),
				fmtFloat(r.SolarOutput),
				fmtShort(res.Config.LoadGW),
				fmtFloat(r.BatteryCharge),
				fmtFloat(r.BatteryDischarge),
				fmtFloat(r.BatterySOC),
				fmtFloat(r.UnmetLoad),
				fmtFloat(r.Overproduction),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

var summaryHeader = []string{
	"site",
	"latitude",
	"longitude",
	"pv_gw",
	"battery_gwh",
	"annual_load_gwh",
	"energy_served_gwh",
	"unmet_load_gwh",
	"overproduction_gwh",
	"unmet_hours",
	"capacity_factor",
}

// WriteSummaryCSV writes the cross-site annual summary table.
func WriteSummaryCSV(path string, rows []SiteSummaryRow) error {
	f, err := createWithDir(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(summaryHeader); err != nil {
		return err
	}
	for _, row := range rows {
		s := row.Summary
		rec := []string{
			row.Site.Name,
			fmtCoord(row.Site.Latitude),
			fmtCoord(row.Site.Longitude),
			fmtShort(s.PVCapacityGW),
			fmtShort(s.BatteryCapacityGWh),
			fmtFloat(s.AnnualLoadGWh),
			fmtFloat(s.EnergyServedGWh),
			fmtFloat(s.UnmetLoadGWh),
			fmtFloat(s.OverproductionGWh),
			strconv.Itoa(s.UnmetHours),
			strconv.FormatFloat(s.CapacityFactor, 'f', 4, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// LoadSummaryCSV reads a summary table previously written by WriteSummaryCSV.
func LoadSummaryCSV(path string) ([]SiteSummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("summary csv %s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range summaryHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("summary csv %s missing column %q", path, name)
		}
	}

	rows := make([]SiteSummaryRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		get := func(name string) string { return rec[col[name]] }
		parse := func(name string) (float64, error) {
			return strconv.ParseFloat(get(name), 64)
		}
		lat, err := parse("latitude")
		if err != nil {
			return nil, fmt.Errorf("summary csv %s row %d latitude: %w", path, i+1, err)
		}
		lon, err := parse("longitude")
		if err != nil {
			return nil, fmt.Errorf("summary csv %s row %d longitude: %w", path, i+1, err)
		}
		row := SiteSummaryRow{
			Site: sites.Site{Name: get("site"), Latitude: lat, Longitude: lon},
		}
		s := &row.Summary
		fields := []struct {
			name string
			dst  *float64
		}{
			{"pv_gw", &s.PVCapacityGW},
			{"battery_gwh", &s.BatteryCapacityGWh},
			{"annual_load_gwh", &s.AnnualLoadGWh},
			{"energy_served_gwh", &s.EnergyServedGWh},
			{"unmet_load_gwh", &s.UnmetLoadGWh},
			{"overproduction_gwh", &s.OverproductionGWh},
			{"capacity_factor", &s.CapacityFactor},
		}
		for _, fl := range fields {
			v, err := parse(fl.name)
			if err != nil {
				return nil, fmt.Errorf("summary csv %s row %d %s: %w", path, i+1, fl.name, err)
			}
			*fl.dst = v
		}
		hours, err := strconv.Atoi(get("unmet_hours"))
		if err != nil {
			return nil, fmt.Errorf("summary csv %s row %d unmet_hours: %w", path, i+1, err)
		}
		s.UnmetHours = hours
		rows = append(rows, row)
	}
	return rows, nil
}

func createWithDir(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func fmtShort(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func fmtCoord(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}
