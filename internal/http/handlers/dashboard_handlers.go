package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/engine"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

// loadSnapshot returns the user's record snapshot, from cache when possible.
func loadSnapshot(ctx context.Context, userKey string) source.Snapshot {
	if snap, ok := snapshotCache.Get(ctx, userKey); ok {
		return snap
	}
	snap := source.FetchSnapshot(ctx, recordSource, userKey)
	snapshotCache.Set(ctx, userKey, snap)
	return snap
}

// GetDashboardHandler godoc
// @Summary Dashboard metrics and filter options
// @Description Computes the aggregate summary for the active customer/date filters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer identifier filter"
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {string} string "Invalid filter"
// @Router /api/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := loadSnapshot(r.Context(), auth.UserKeyFromContext(r.Context()))

	filteredOrders := engine.FilterOrders(snap.Orders, filter)
	filteredIssues := engine.FilterIssues(snap.Issues, filter)

	resp := DashboardResponse{
		Metrics: engine.ComputeMetrics(
			snap.Orders, snap.Customers, snap.Enquiries, snap.Issues, snap.ResponseMetrics,
			filteredOrders, filteredIssues),
		CustomerOptions: engine.CustomerOptions(snap.Orders, snap.Customers, snap.Enquiries, snap.Issues),
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("failed to write dashboard response: %v", err)
	}
}
