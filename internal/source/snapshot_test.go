package source

import (
	"context"
	"errors"
	"testing"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// flakySource fails selected collections to exercise the best-effort fetch.
type flakySource struct {
	failCustomers bool
	failIssues    bool
}

func (s flakySource) Orders(context.Context, string) ([]models.Order, error) {
	return []models.Order{{ID: 1}}, nil
}

func (s flakySource) Customers(context.Context, string) ([]models.Customer, error) {
	if s.failCustomers {
		return nil, errors.New("upstream down")
	}
	return []models.Customer{{CustomerID: "7"}}, nil
}

func (s flakySource) Enquiries(context.Context, string) ([]models.Enquiry, error) {
	return nil, nil
}

func (s flakySource) Issues(context.Context, string) ([]models.Issue, error) {
	if s.failIssues {
		return nil, errors.New("upstream down")
	}
	return []models.Issue{{ID: 1}}, nil
}

func (s flakySource) ResponseMetrics(context.Context, string) ([]models.ResponseMetric, error) {
	return []models.ResponseMetric{{ResponseType: "auto"}}, nil
}

func (s flakySource) SetOrderStatus(context.Context, string, int, string) (models.Order, error) {
	return models.Order{}, ErrOrderNotFound
}

func TestFetchSnapshotSubstitutesEmptyCollections(t *testing.T) {
	snap := FetchSnapshot(context.Background(), flakySource{failCustomers: true, failIssues: true}, "user_123")

	if len(snap.Orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(snap.Orders))
	}
	if snap.Customers == nil || len(snap.Customers) != 0 {
		t.Errorf("expected empty customers on failure, got %v", snap.Customers)
	}
	if snap.Issues == nil || len(snap.Issues) != 0 {
		t.Errorf("expected empty issues on failure, got %v", snap.Issues)
	}
	if len(snap.ResponseMetrics) != 1 {
		t.Errorf("expected 1 response metric, got %d", len(snap.ResponseMetrics))
	}
}

func TestFetchSnapshotNeverReturnsNilSlices(t *testing.T) {
	// Enquiries succeed with a nil slice; the snapshot still carries an empty
	// collection so the engine and the JSON cache see [] rather than null.
	snap := FetchSnapshot(context.Background(), flakySource{}, "user_123")
	if snap.Enquiries == nil {
		t.Error("expected an empty enquiries slice, got nil")
	}
}

func TestValidStatus(t *testing.T) {
	for _, valid := range []string{StatusPending, StatusCompleted} {
		if !ValidStatus(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "Pending", "shipped", "COMPLETED"} {
		if ValidStatus(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
