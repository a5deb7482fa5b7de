// Package postgres reads records straight from the shared database the
// upstream API writes to. Deployments that co-locate the dashboard with the
// database use this source instead of the HTTP client.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/waffyhq/waffy-dashboard/internal/models"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

const queryTimeout = 3 * time.Second

type Source struct {
	db *sql.DB
}

func New(db *sql.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Orders(ctx context.Context, userKey string) ([]models.Order, error) {
	query := `SELECT o.order_id, o.customer_id, o.order_number, o.item, o.quantity,
		o.notes, o.order_status, o.total_amount, o.created_at, o.updated_at
		FROM orders o JOIN users u ON u.id = o.user_id
		WHERE u.clerk_id = $1 ORDER BY o.order_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var customerID, notes, amount sql.NullString
		var created, updated sql.NullTime
		if err := rows.Scan(&o.ID, &customerID, &o.OrderNumber, &o.Item, &o.Quantity,
			&notes, &o.Status, &amount, &created, &updated); err != nil {
			return nil, err
		}
		o.CustomerID = models.FlexID(customerID.String)
		o.Notes = notes.String
		o.TotalAmount = amount.String
		o.CreatedAt = formatTime(created)
		o.UpdatedAt = formatTime(updated)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Source) Customers(ctx context.Context, userKey string) ([]models.Customer, error) {
	query := `SELECT c.customer_id, c.customer_name, c.email, c.created_at, c.updated_at
		FROM customer c JOIN users u ON u.id = c.user_id
		WHERE u.clerk_id = $1 ORDER BY c.customer_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		var id, name, email sql.NullString
		var created, updated sql.NullTime
		if err := rows.Scan(&id, &name, &email, &created, &updated); err != nil {
			return nil, err
		}
		c.CustomerID = models.FlexID(id.String)
		c.Name = name.String
		c.Email = email.String
		c.CreatedAt = formatTime(created)
		c.UpdatedAt = formatTime(updated)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *Source) Enquiries(ctx context.Context, userKey string) ([]models.Enquiry, error) {
	query := `SELECT e.enquiry_id, e.customer_id, e.description, e.category, e.priority,
		e.status, e.follow_up_date, e.created_at, e.updated_at
		FROM enquiries e JOIN users u ON u.id = e.user_id
		WHERE u.clerk_id = $1 ORDER BY e.enquiry_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []models.Enquiry
	for rows.Next() {
		var e models.Enquiry
		var id, desc, category, priority, status sql.NullString
		var followUp, created, updated sql.NullTime
		if err := rows.Scan(&e.ID, &id, &desc, &category, &priority,
			&status, &followUp, &created, &updated); err != nil {
			return nil, err
		}
		e.CustomerID = models.FlexID(id.String)
		e.Description = desc.String
		e.Category = category.String
		e.Priority = priority.String
		e.Status = status.String
		e.FollowUpDate = formatTime(followUp)
		e.CreatedAt = formatTime(created)
		e.UpdatedAt = formatTime(updated)
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

func (s *Source) Issues(ctx context.Context, userKey string) ([]models.Issue, error) {
	query := `SELECT i.issue_id, i.customer_id, COALESCE(i.order_id, 0), i.issue_type,
		i.description, i.priority, i.status, i.resolution_notes, i.created_at, i.updated_at
		FROM issues i JOIN users u ON u.id = i.user_id
		WHERE u.clerk_id = $1 ORDER BY i.issue_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		var i models.Issue
		var id, issueType, desc, priority, status, notes sql.NullString
		var created, updated sql.NullTime
		if err := rows.Scan(&i.ID, &id, &i.OrderID, &issueType,
			&desc, &priority, &status, &notes, &created, &updated); err != nil {
			return nil, err
		}
		i.CustomerID = models.FlexID(id.String)
		i.IssueType = issueType.String
		i.Description = desc.String
		i.Priority = priority.String
		i.Status = status.String
		i.ResolutionNotes = notes.String
		i.CreatedAt = formatTime(created)
		i.UpdatedAt = formatTime(updated)
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (s *Source) ResponseMetrics(ctx context.Context, userKey string) ([]models.ResponseMetric, error) {
	query := `SELECT m.metric_id, m.customer_id, m.message_id, m.message_type,
		m.response_type, COALESCE(m.response_time_seconds, 0), m.created_at
		FROM response_metrics m JOIN users u ON u.id = m.user_id
		WHERE u.clerk_id = $1 ORDER BY m.metric_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []models.ResponseMetric
	for rows.Next() {
		var m models.ResponseMetric
		var id, messageID, messageType, responseType sql.NullString
		var created sql.NullTime
		if err := rows.Scan(&m.ID, &id, &messageID, &messageType,
			&responseType, &m.ResponseTimeSeconds, &created); err != nil {
			return nil, err
		}
		m.CustomerID = models.FlexID(id.String)
		m.MessageID = messageID.String
		m.MessageType = messageType.String
		m.ResponseType = responseType.String
		m.CreatedAt = formatTime(created)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func (s *Source) SetOrderStatus(ctx context.Context, userKey string, orderID int, status string) (models.Order, error) {
	if !source.ValidStatus(status) {
		return models.Order{}, source.ErrInvalidStatus
	}

	query := `UPDATE orders o SET order_status = $1, updated_at = now()
		FROM users u
		WHERE u.id = o.user_id AND u.clerk_id = $2 AND o.order_id = $3
		RETURNING o.order_id, o.customer_id, o.order_number, o.item, o.quantity,
			o.notes, o.order_status, o.total_amount, o.created_at, o.updated_at`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o models.Order
	var customerID, notes, amount sql.NullString
	var created, updated sql.NullTime
	err := s.db.QueryRowContext(ctx, query, status, userKey, orderID).Scan(
		&o.ID, &customerID, &o.OrderNumber, &o.Item, &o.Quantity,
		&notes, &o.Status, &amount, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, source.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	o.CustomerID = models.FlexID(customerID.String)
	o.Notes = notes.String
	o.TotalAmount = amount.String
	o.CreatedAt = formatTime(created)
	o.UpdatedAt = formatTime(updated)
	return o, nil
}

func formatTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}
