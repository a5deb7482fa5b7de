// Package memory holds records in process memory. It backs the handler tests
// and local runs without an upstream API or database.
package memory

import (
	"context"
	"time"

	"github.com/waffyhq/waffy-dashboard/internal/models"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

type Source struct {
	orders          []models.Order
	customers       []models.Customer
	enquiries       []models.Enquiry
	issues          []models.Issue
	responseMetrics []models.ResponseMetric
}

func New() *Source {
	return &Source{}
}

func (s *Source) SeedOrders(orders ...models.Order) {
	s.orders = append(s.orders, orders...)
}

func (s *Source) SeedCustomers(customers ...models.Customer) {
	s.customers = append(s.customers, customers...)
}

func (s *Source) SeedEnquiries(enquiries ...models.Enquiry) {
	s.enquiries = append(s.enquiries, enquiries...)
}

func (s *Source) SeedIssues(issues ...models.Issue) {
	s.issues = append(s.issues, issues...)
}

func (s *Source) SeedResponseMetrics(metrics ...models.ResponseMetric) {
	s.responseMetrics = append(s.responseMetrics, metrics...)
}

func (s *Source) Clear() {
	s.orders = nil
	s.customers = nil
	s.enquiries = nil
	s.issues = nil
	s.responseMetrics = nil
}

func (s *Source) Orders(_ context.Context, _ string) ([]models.Order, error) {
	return s.orders, nil
}

func (s *Source) Customers(_ context.Context, _ string) ([]models.Customer, error) {
	return s.customers, nil
}

func (s *Source) Enquiries(_ context.Context, _ string) ([]models.Enquiry, error) {
	return s.enquiries, nil
}

func (s *Source) Issues(_ context.Context, _ string) ([]models.Issue, error) {
	return s.issues, nil
}

func (s *Source) ResponseMetrics(_ context.Context, _ string) ([]models.ResponseMetric, error) {
	return s.responseMetrics, nil
}

func (s *Source) SetOrderStatus(_ context.Context, _ string, orderID int, status string) (models.Order, error) {
	if !source.ValidStatus(status) {
		return models.Order{}, source.ErrInvalidStatus
	}
	for i, o := range s.orders {
		if o.ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return s.orders[i], nil
		}
	}
	return models.Order{}, source.ErrOrderNotFound
}
