package source

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// Snapshot is one dashboard load's worth of records, held in memory for the
// duration of the view.
type Snapshot struct {
	Orders          []models.Order          `json:"orders"`
	Customers       []models.Customer       `json:"customers"`
	Enquiries       []models.Enquiry        `json:"enquiries"`
	Issues          []models.Issue          `json:"issues"`
	ResponseMetrics []models.ResponseMetric `json:"response_metrics"`
}

// FetchSnapshot loads all five collections concurrently. Each fetch is
// best-effort: a failed collection is logged and replaced by an empty slice,
// so the engine downstream never sees an error.
func FetchSnapshot(ctx context.Context, src Source, userKey string) Snapshot {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := src.Orders(ctx, userKey)
		snap.Orders = collect(recs, err, "orders")
		return nil
	})
	g.Go(func() error {
		recs, err := src.Customers(ctx, userKey)
		snap.Customers = collect(recs, err, "customers")
		return nil
	})
	g.Go(func() error {
		recs, err := src.Enquiries(ctx, userKey)
		snap.Enquiries = collect(recs, err, "enquiries")
		return nil
	})
	g.Go(func() error {
		recs, err := src.Issues(ctx, userKey)
		snap.Issues = collect(recs, err, "issues")
		return nil
	})
	g.Go(func() error {
		recs, err := src.ResponseMetrics(ctx, userKey)
		snap.ResponseMetrics = collect(recs, err, "response_metrics")
		return nil
	})
	g.Wait()

	return snap
}

// collect maps a fetch failure to an empty collection.
func collect[T any](recs []T, err error, kind string) []T {
	if err != nil {
		log.Printf("fetch %s failed, substituting empty collection: %v", kind, err)
		return []T{}
	}
	if recs == nil {
		return []T{}
	}
	return recs
}
