package models

// SelectSitesRequest asks for a spread-out subset of the candidate pool.
type SelectSitesRequest struct {
	Count int `json:"count" binding:"required"`
	// Seed shuffles the candidate pool before selection; nil uses the study
	// default, a negative value keeps curated order.
	Seed *int64 `json:"seed,omitempty"`
}

// SitePayload is a coordinate to simulate at.
type SitePayload struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DispatchPayload is one build-out configuration.
type DispatchPayload struct {
	PVCapacityGW        float64  `json:"pv_capacity_gw" binding:"required"`
	BatteryCapacityGWh  float64  `json:"battery_capacity_gwh"`
	LoadGW              float64  `json:"load_gw" binding:"required"`
	RoundTripEfficiency float64  `json:"round_trip_efficiency,omitempty"`
	InitialSOCFraction  *float64 `json:"initial_soc_fraction,omitempty"`
}

// SimulateRequest runs one configuration. The PV trace comes either inline
// (pv_per_kw, 8,760 hourly values) or from the deterministic synthetic model
// at the given site and year.
type SimulateRequest struct {
	PVPerKW      []float64       `json:"pv_per_kw,omitempty"`
	Site         *SitePayload    `json:"site,omitempty"`
	Year         int             `json:"year,omitempty"`
	Derate       float64         `json:"derate,omitempty"`
	Config       DispatchPayload `json:"config" binding:"required"`
	IncludeTrace bool            `json:"include_trace,omitempty"`
}

// SweepRequest runs the full capacity cross-product for one trace source.
type SweepRequest struct {
	PVPerKW              []float64    `json:"pv_per_kw,omitempty"`
	Site                 *SitePayload `json:"site,omitempty"`
	Year                 int          `json:"year,omitempty"`
	Derate               float64      `json:"derate,omitempty"`
	PVCapacitiesGW       []float64    `json:"pv_capacities_gw" binding:"required"`
	BatteryCapacitiesGWh []float64    `json:"battery_capacities_gwh" binding:"required"`
	LoadGW               float64      `json:"load_gw" binding:"required"`
	RoundTripEfficiency  float64      `json:"round_trip_efficiency,omitempty"`
	InitialSOCFraction   *float64     `json:"initial_soc_fraction,omitempty"`
	Workers              int          `json:"workers,omitempty"`
}
