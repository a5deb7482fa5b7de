package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/engine"
)

// GetRecordsHandler godoc
// @Summary List records of one kind
// @Description Returns filtered, paginated records for orders, customers, enquiries or issues
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Record kind" Enums(orders, customers, enquiries, issues)
// @Param customer_id query string false "Customer identifier filter"
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {object} RecordsSearchResult
// @Failure 400 {string} string "Unknown kind or invalid filter"
// @Router /api/records/{kind} [get]
func GetRecordsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	offset := parseIntPtr(q.Get("offset"))
	limit := parseIntPtr(q.Get("limit"))

	snap := loadSnapshot(r.Context(), auth.UserKeyFromContext(r.Context()))

	var result RecordsSearchResult
	switch chi.URLParam(r, "kind") {
	case "orders":
		recs := engine.FilterOrders(snap.Orders, filter)
		result = RecordsSearchResult{Data: engine.Page(recs, offset, limit), Meta: Meta{TotalCount: len(recs)}}
	case "customers":
		recs := engine.FilterCustomers(snap.Customers, filter)
		result = RecordsSearchResult{Data: engine.Page(recs, offset, limit), Meta: Meta{TotalCount: len(recs)}}
	case "enquiries":
		recs := engine.FilterEnquiries(snap.Enquiries, filter)
		result = RecordsSearchResult{Data: engine.Page(recs, offset, limit), Meta: Meta{TotalCount: len(recs)}}
	case "issues":
		recs := engine.FilterIssues(snap.Issues, filter)
		result = RecordsSearchResult{Data: engine.Page(recs, offset, limit), Meta: Meta{TotalCount: len(recs)}}
	default:
		http.Error(w, "unknown record kind", http.StatusBadRequest)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to write records response: %v", err)
	}
}
