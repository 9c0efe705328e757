package study

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baseload-study/internal/config"
	"baseload-study/internal/report"
	"baseload-study/internal/solar"
)

func offlineConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Study.Sites = 2
	cfg.Study.OutputDir = t.TempDir()
	cfg.Study.CacheDir = t.TempDir()
	cfg.Simulation.PVCapacitiesGW = []float64{2, 4}
	cfg.Simulation.BatteryCapacitiesGWh = []float64{0, 5}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRun_OfflineEndToEnd(t *testing.T) {
	cfg := offlineConfig(t)
	provider := solar.NewProvider(solar.NewDiskCache(cfg.Study.CacheDir), nil, nil)
	provider.Offline = true

	res, err := Run(cfg, provider, nil)
	require.NoError(t, err)

	require.Equal(t, 2, len(res.Sites))
	// 2 sites x 2 PV levels x 2 battery levels.
	assert.Equal(t, 8, len(res.SummaryRows))

	for _, path := range []string{res.SitesCSV, res.SummaryCSV} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
	for _, site := range res.Sites {
		hourly := filepath.Join(res.HourlyDir, site.Name, site.Name+"_hourly_profiles.csv")
		_, err := os.Stat(hourly)
		assert.NoError(t, err, hourly)
	}

	loaded, err := report.LoadSummaryCSV(res.SummaryCSV)
	require.NoError(t, err)
	require.Equal(t, len(res.SummaryRows), len(loaded))
	assert.Equal(t, res.SummaryRows[0].Site.Name, loaded[0].Site.Name)
	assert.InDelta(t, res.SummaryRows[0].Summary.CapacityFactor, loaded[0].Summary.CapacityFactor, 1e-6)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := offlineConfig(t)
	provider := solar.NewProvider(nil, nil, nil)
	provider.Offline = true

	first, err := Run(cfg, provider, nil)
	require.NoError(t, err)

	cfg.Study.OutputDir = t.TempDir()
	second, err := Run(cfg, provider, nil)
	require.NoError(t, err)

	require.Equal(t, len(first.SummaryRows), len(second.SummaryRows))
	for i := range first.SummaryRows {
		assert.Equal(t, first.SummaryRows[i].Site.Name, second.SummaryRows[i].Site.Name)
		assert.Equal(t, first.SummaryRows[i].Summary, second.SummaryRows[i].Summary)
	}
}
