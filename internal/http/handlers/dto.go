package handlers

import (
	"github.com/waffyhq/waffy-dashboard/internal/engine"
)

type DashboardResponse struct {
	Metrics         engine.Summary `json:"metrics"`
	CustomerOptions []string       `json:"customer_options"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type RecordsSearchResult struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}
