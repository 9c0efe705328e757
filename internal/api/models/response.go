package models

import (
	"baseload-study/internal/simulation"
	"baseload-study/internal/sites"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SitesResponse returns the selected sites in selection order.
type SitesResponse struct {
	Count int          `json:"count"`
	Seed  int64        `json:"seed"`
	Sites []sites.Site `json:"sites"`
}

// SimulateResponse returns one configuration's summary and, on request, the
// full hourly trace.
type SimulateResponse struct {
	Status  string                    `json:"status"`
	Source  string                    `json:"source"`
	Summary simulation.AnnualSummary  `json:"summary"`
	Trace   []simulation.HourlyRecord `json:"trace,omitempty"`
}

// SweepResponse returns the per-configuration summaries of one sweep run.
type SweepResponse struct {
	RunID     string                     `json:"run_id"`
	Status    string                     `json:"status"`
	Source    string                     `json:"source"`
	Summaries []simulation.AnnualSummary `json:"summaries"`
}
