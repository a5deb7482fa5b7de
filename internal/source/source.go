package source

import (
	"context"
	"errors"

	"github.com/waffyhq/waffy-dashboard/internal/models"
)

// Order statuses accepted by the status toggle.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

var (
	// ErrOrderNotFound is returned when a status update targets an unknown order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for statuses outside {pending, completed}.
	ErrInvalidStatus = errors.New("invalid order status")
)

// Source provides the five record collections for one dashboard user, plus
// the single write the dashboard performs. Collections are scoped upstream by
// the opaque user key from the identity provider.
type Source interface {
	Orders(ctx context.Context, userKey string) ([]models.Order, error)
	Customers(ctx context.Context, userKey string) ([]models.Customer, error)
	Enquiries(ctx context.Context, userKey string) ([]models.Enquiry, error)
	Issues(ctx context.Context, userKey string) ([]models.Issue, error)
	ResponseMetrics(ctx context.Context, userKey string) ([]models.ResponseMetric, error)

	// SetOrderStatus flips an order to pending or completed and returns the
	// updated record. Unlike reads, failures here surface to the caller.
	SetOrderStatus(ctx context.Context, userKey string, orderID int, status string) (models.Order, error)
}

// ValidStatus reports whether s is one of the two accepted order statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}
