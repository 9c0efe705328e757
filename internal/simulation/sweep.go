package simulation

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// SweepConfig describes the cross-product of build-outs to evaluate against
// one PV trace.
type SweepConfig struct {
	PVCapacitiesGW       []float64
	BatteryCapacitiesGWh []float64
	LoadGW               float64
	RoundTripEfficiency  float64
	InitialSOCFraction   float64
	// Workers bounds the parallelism across configurations; 0 means NumCPU.
	// Hours within one configuration are never parallelized.
	Workers int
}

// Validate checks the sweep ranges and the per-configuration parameters they
// expand into.
func (c SweepConfig) Validate() error {
	if len(c.PVCapacitiesGW) == 0 {
		return fmt.Errorf("%w: no PV capacities", ErrInvalidConfig)
	}
	if len(c.BatteryCapacitiesGWh) == 0 {
		return fmt.Errorf("%w: no battery capacities", ErrInvalidConfig)
	}
	for _, pv := range c.PVCapacitiesGW {
		for _, batt := range c.BatteryCapacitiesGWh {
			if err := c.dispatchConfig(pv, batt).Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c SweepConfig) dispatchConfig(pvGW, battGWh float64) DispatchConfig {
	return DispatchConfig{
		PVCapacityGW:        pvGW,
		BatteryCapacityGWh:  battGWh,
		LoadGW:              c.LoadGW,
		RoundTripEfficiency: c.RoundTripEfficiency,
		InitialSOCFraction:  c.InitialSOCFraction,
	}
}

// ConfigResult pairs one configuration with its summary and full trace.
type ConfigResult struct {
	Config  DispatchConfig
	Summary AnnualSummary
	Records []HourlyRecord
}

// SweepResult is the outcome of one full cross-product run.
type SweepResult struct {
	RunID   string
	Results []ConfigResult
}

// Summaries flattens the per-configuration summaries in sweep order.
func (r *SweepResult) Summaries() []AnnualSummary {
	out := make([]AnnualSummary, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Summary
	}
	return out
}

// Sweep simulates every (pv, battery) pair against perKW on a bounded worker
// pool. Configurations are independent: each worker owns its dispatch state
// and reduces its own trace before handing the result back, so no shared
// mutable aggregation exists. Results come back ordered pv-major, battery-
// minor regardless of which worker finished first.
func Sweep(perKW []float64, cfg SweepConfig) (*SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configs := make([]DispatchConfig, 0, len(cfg.PVCapacitiesGW)*len(cfg.BatteryCapacitiesGWh))
	for _, pv := range cfg.PVCapacitiesGW {
		for _, batt := range cfg.BatteryCapacitiesGWh {
			configs = append(configs, cfg.dispatchConfig(pv, batt))
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(configs) {
		workers = len(configs)
	}

	type job struct {
		index  int
		config DispatchConfig
	}
	jobs := make(chan job)
	results := make([]ConfigResult, len(configs))
	errs := make([]error, len(configs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				records, err := Simulate(perKW, j.config)
				if err != nil {
					errs[j.index] = err
					continue
				}
				results[j.index] = ConfigResult{
					Config:  j.config,
					Summary: Summarize(records, j.config),
					Records: records,
				}
			}
		}()
	}
	for i, c := range configs {
		jobs <- job{index: i, config: c}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &SweepResult{
		RunID:   uuid.NewString(),
		Results: results,
	}, nil
}
