package engine

import (
	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// Keyed is any record that can be matched against a Filter. CustomerKey
// resolves the customer identifier across both upstream naming conventions;
// FilterDate returns the raw date candidate for day matching.
type Keyed interface {
	CustomerKey() string
	FilterDate() string
}

// Filter is a pair of optional equality predicates. An empty field means the
// predicate is inactive and matches every record.
type Filter struct {
	CustomerID string
	Date       string // YYYY-MM-DD
}

// Matches reports whether rec satisfies both predicates. A nil record never
// matches. A record whose date is missing or unparsable fails only when the
// date predicate is active.
func (f Filter) Matches(rec Keyed) bool {
	if rec == nil {
		return false
	}
	if f.CustomerID != "" && rec.CustomerKey() != f.CustomerID {
		return false
	}
	if f.Date != "" {
		day, ok := NormalizeDate(rec.FilterDate())
		if !ok || day != f.Date {
			return false
		}
	}
	return true
}

func filterSlice[T Keyed](recs []T, f Filter) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func FilterOrders(orders []models.Order, f Filter) []models.Order {
	return filterSlice(orders, f)
}

func FilterCustomers(customers []models.Customer, f Filter) []models.Customer {
	return filterSlice(customers, f)
}

func FilterEnquiries(enquiries []models.Enquiry, f Filter) []models.Enquiry {
	return filterSlice(enquiries, f)
}

func FilterIssues(issues []models.Issue, f Filter) []models.Issue {
	return filterSlice(issues, f)
}

// Page applies offset/limit pagination to an already filtered slice.
func Page[T any](recs []T, offset, limit *int) []T {
	if offset != nil && *offset > len(recs) {
		return []T{}
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(recs))
	}

	end := len(recs)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(recs))
	}

	return recs[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
