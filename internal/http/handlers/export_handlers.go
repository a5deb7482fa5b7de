package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/engine"
	"github.com/waffyhq/waffy-dashboard/internal/export"
)

// ExportRecordsHandler godoc
// @Summary Download records as a spreadsheet
// @Description Exports the filtered collection as CSV or XLSX
// @Tags records
// @Produce application/octet-stream
// @Security BearerAuth
// @Param kind path string true "Record kind" Enums(orders, customers, enquiries, issues)
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Param customer_id query string false "Customer identifier filter"
// @Param date query string false "Day filter (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {string} string "Unknown kind, format or filter"
// @Router /api/records/{kind}/export [get]
func ExportRecordsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := loadSnapshot(r.Context(), auth.UserKeyFromContext(r.Context()))

	var table export.Table
	kind := chi.URLParam(r, "kind")
	switch kind {
	case "orders":
		table = export.OrdersTable(engine.FilterOrders(snap.Orders, filter))
	case "customers":
		table = export.CustomersTable(engine.FilterCustomers(snap.Customers, filter))
	case "enquiries":
		table = export.EnquiriesTable(engine.FilterEnquiries(snap.Enquiries, filter))
	case "issues":
		table = export.IssuesTable(engine.FilterIssues(snap.Issues, filter))
	default:
		http.Error(w, "unknown record kind", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var body []byte
	var contentType string
	switch strings.ToLower(format) {
	case "csv":
		body, err = table.CSV()
		contentType = "text/csv"
	case "xlsx":
		body, err = table.XLSX()
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("failed to encode %s export: %v", kind, err)
		http.Error(w, "failed to encode export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", kind, strings.ToLower(format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("failed to write export response: %v", err)
	}
}
