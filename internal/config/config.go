package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"baseload-study/internal/analysis"
	"baseload-study/internal/simulation"
	"baseload-study/internal/sites"
	"baseload-study/internal/solar"
)

// Config is the on-disk study configuration (YAML).
type Config struct {
	Study      StudyConfig              `yaml:"study"`
	Simulation SimulationConfig         `yaml:"simulation"`
	Costs      analysis.CostAssumptions `yaml:"costs"`
	Logging    LoggingConfig            `yaml:"logging"`
}

// StudyConfig picks the sites and the data year.
type StudyConfig struct {
	Sites     int    `yaml:"sites"`
	Seed      int64  `yaml:"seed"`
	Year      int    `yaml:"year"`
	OutputDir string `yaml:"output_dir"`
	CacheDir  string `yaml:"cache_dir"`
}

// SimulationConfig carries the dispatch constants and the sweep ranges.
// Everything the engine treats as a tunable lives here, never as package
// state.
type SimulationConfig struct {
	LoadGW               float64   `yaml:"load_gw"`
	Derate               float64   `yaml:"derate"`
	RoundTripEfficiency  float64   `yaml:"round_trip_efficiency"`
	InitialSOCFraction   *float64  `yaml:"initial_soc_fraction"`
	PVCapacitiesGW       []float64 `yaml:"pv_capacities_gw"`
	BatteryCapacitiesGWh []float64 `yaml:"battery_capacities_gwh"`
	Workers              int       `yaml:"workers"`
}

// LoggingConfig mirrors the zap setup knobs.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads, defaults, and validates a study config.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config without defaulting or validation. Useful for
// debugging partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the study configuration with every knob at its baseline.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields with the study baselines.
func (c *Config) ApplyDefaults() {
	if c.Study.Sites == 0 {
		c.Study.Sites = 10
	}
	if c.Study.Seed == 0 {
		c.Study.Seed = 42
	}
	if c.Study.Year == 0 {
		c.Study.Year = 2021
	}
	if c.Study.OutputDir == "" {
		c.Study.OutputDir = "outputs"
	}
	if c.Study.CacheDir == "" {
		c.Study.CacheDir = "data/solar"
	}
	if c.Simulation.LoadGW == 0 {
		c.Simulation.LoadGW = 1.0
	}
	if c.Simulation.Derate == 0 {
		c.Simulation.Derate = solar.DefaultDerate
	}
	if c.Simulation.RoundTripEfficiency == 0 {
		c.Simulation.RoundTripEfficiency = simulation.DefaultRoundTripEfficiency
	}
	if c.Simulation.InitialSOCFraction == nil {
		frac := simulation.DefaultInitialSOCFraction
		c.Simulation.InitialSOCFraction = &frac
	}
	if len(c.Simulation.PVCapacitiesGW) == 0 {
		c.Simulation.PVCapacitiesGW = sequence(1, 8)
	}
	if len(c.Simulation.BatteryCapacitiesGWh) == 0 {
		c.Simulation.BatteryCapacitiesGWh = sequence(1, 15)
	}
	if c.Costs == (analysis.CostAssumptions{}) {
		c.Costs = analysis.DefaultCostAssumptions()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate rejects configs the study cannot run.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Study.Sites < 1 || c.Study.Sites > sites.PoolSize() {
		return fmt.Errorf("study.sites must be in [1, %d], got %d", sites.PoolSize(), c.Study.Sites)
	}
	if c.Study.Year < 1984 {
		return fmt.Errorf("study.year must be >= 1984 (NASA POWER coverage), got %d", c.Study.Year)
	}
	if c.Simulation.Derate <= 0 || c.Simulation.Derate > 1 {
		return fmt.Errorf("simulation.derate must be in (0, 1], got %v", c.Simulation.Derate)
	}
	if err := c.SweepConfig().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

// SweepConfig assembles the runner configuration from the YAML fields.
func (c *Config) SweepConfig() simulation.SweepConfig {
	frac := simulation.DefaultInitialSOCFraction
	if c.Simulation.InitialSOCFraction != nil {
		frac = *c.Simulation.InitialSOCFraction
	}
	return simulation.SweepConfig{
		PVCapacitiesGW:       c.Simulation.PVCapacitiesGW,
		BatteryCapacitiesGWh: c.Simulation.BatteryCapacitiesGWh,
		LoadGW:               c.Simulation.LoadGW,
		RoundTripEfficiency:  c.Simulation.RoundTripEfficiency,
		InitialSOCFraction:   frac,
		Workers:              c.Simulation.Workers,
	}
}

func sequence(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, float64(v))
	}
	return out
}
