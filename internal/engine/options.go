package engine

import (
	"sort"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// CustomerOptions collects every customer identifier seen across the four
// collections, under either naming convention, de-duplicated and sorted.
// Only empty identifiers are dropped: "0" is a legitimate key.
func CustomerOptions(
	orders []models.Order,
	customers []models.Customer,
	enquiries []models.Enquiry,
	issues []models.Issue,
) []string {
	seen := map[string]bool{}
	add := func(key string) {
		if key != "" {
			seen[key] = true
		}
	}

	for _, o := range orders {
		add(o.CustomerKey())
	}
	for _, c := range customers {
		add(c.CustomerKey())
	}
	for _, e := range enquiries {
		add(e.CustomerKey())
	}
	for _, i := range issues {
		add(i.CustomerKey())
	}

	options := make([]string, 0, len(seen))
	for key := range seen {
		options = append(options, key)
	}
	sort.Strings(options)
	return options
}
