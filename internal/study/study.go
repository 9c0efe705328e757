// Package study orchestrates a full baseload run: site selection, solar
// profile resolution, the capacity sweep per site, and CSV export.
package study

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"baseload-study/internal/config"
	"baseload-study/internal/report"
	"baseload-study/internal/simulation"
	"baseload-study/internal/sites"
	"baseload-study/internal/solar"
)

// Result reports where the run's artifacts landed.
type Result struct {
	Sites       []sites.Site
	SitesCSV    string
	SummaryCSV  string
	HourlyDir   string
	SummaryRows []report.SiteSummaryRow
}

// Run executes the whole study described by cfg. Site selection runs first
// and to completion; each selected site is then resolved to a profile,
// swept across the capacity cross-product, and written out.
func Run(cfg *config.Config, provider *solar.Provider, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	selected, err := sites.Generate(cfg.Study.Sites, cfg.Study.Seed)
	if err != nil {
		return nil, fmt.Errorf("site selection: %w", err)
	}
	logger.Info("sites selected",
		zap.Int("count", len(selected)),
		zap.Int64("seed", cfg.Study.Seed),
	)

	res := &Result{
		Sites:      selected,
		SitesCSV:   filepath.Join(cfg.Study.OutputDir, "selected_sites.csv"),
		SummaryCSV: filepath.Join(cfg.Study.OutputDir, "annual_capacity_factors.csv"),
		HourlyDir:  filepath.Join(cfg.Study.OutputDir, "hourly_profiles"),
	}
	if err := report.WriteSitesCSV(res.SitesCSV, selected); err != nil {
		return nil, fmt.Errorf("write sites csv: %w", err)
	}

	sweepCfg := cfg.SweepConfig()
	for _, site := range selected {
		logger.Info("processing site",
			zap.String("site", site.Name),
			zap.Float64("latitude", site.Latitude),
			zap.Float64("longitude", site.Longitude),
		)

		profile, err := provider.Profile(site.Latitude, site.Longitude, cfg.Study.Year)
		if err != nil {
			return nil, fmt.Errorf("solar profile for %s: %w", site.Name, err)
		}
		perKW, err := profile.PerKW(cfg.Simulation.Derate)
		if err != nil {
			return nil, fmt.Errorf("convert profile for %s: %w", site.Name, err)
		}

		sweep, err := simulation.Sweep(perKW, sweepCfg)
		if err != nil {
			return nil, fmt.Errorf("sweep for %s: %w", site.Name, err)
		}
		logger.Info("sweep completed",
			zap.String("site", site.Name),
			zap.String("run_id", sweep.RunID),
			zap.Int("configurations", len(sweep.Results)),
		)

		hourlyPath := filepath.Join(res.HourlyDir, site.Name, site.Name+"_hourly_profiles.csv")
		if err := report.WriteHourlyCSV(hourlyPath, site, sweep.Results); err != nil {
			return nil, fmt.Errorf("write hourly csv for %s: %w", site.Name, err)
		}

		for _, summary := range sweep.Summaries() {
			res.SummaryRows = append(res.SummaryRows, report.SiteSummaryRow{
				Site:    site,
				Summary: summary,
			})
		}
	}

	if err := report.WriteSummaryCSV(res.SummaryCSV, res.SummaryRows); err != nil {
		return nil, fmt.Errorf("write summary csv: %w", err)
	}
	return res, nil
}
