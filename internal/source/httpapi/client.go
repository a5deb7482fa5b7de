// Package httpapi reads records from the upstream REST API that owns them.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/waffyhq/waffy-dashboard/internal/models"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the upstream API. Each call gets a single attempt
// bounded by timeout; retries are deliberately absent.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Orders(ctx context.Context, userKey string) ([]models.Order, error) {
	var orders []models.Order
	err := c.getJSON(ctx, "/api/orders", userKey, &orders)
	return orders, err
}

func (c *Client) Customers(ctx context.Context, userKey string) ([]models.Customer, error) {
	var customers []models.Customer
	err := c.getJSON(ctx, "/api/customers", userKey, &customers)
	return customers, err
}

func (c *Client) Enquiries(ctx context.Context, userKey string) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := c.getJSON(ctx, "/api/enquiries", userKey, &enquiries)
	return enquiries, err
}

func (c *Client) Issues(ctx context.Context, userKey string) ([]models.Issue, error) {
	var issues []models.Issue
	err := c.getJSON(ctx, "/api/issues", userKey, &issues)
	return issues, err
}

func (c *Client) ResponseMetrics(ctx context.Context, userKey string) ([]models.ResponseMetric, error) {
	var metrics []models.ResponseMetric
	err := c.getJSON(ctx, "/api/response-metrics", userKey, &metrics)
	return metrics, err
}

func (c *Client) SetOrderStatus(ctx context.Context, userKey string, orderID int, status string) (models.Order, error) {
	if !source.ValidStatus(status) {
		return models.Order{}, source.ErrInvalidStatus
	}

	body, _ := json.Marshal(map[string]string{"status": status})
	endpoint := fmt.Sprintf("%s/api/orders/%d/status?user_id=%s", c.baseURL, orderID, url.QueryEscape(userKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return models.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Order{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return models.Order{}, source.ErrOrderNotFound
	default:
		return models.Order{}, fmt.Errorf("status update failed: %s", resp.Status)
	}

	var updated models.Order
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return models.Order{}, fmt.Errorf("decode updated order: %w", err)
	}
	return updated, nil
}

func (c *Client) getJSON(ctx context.Context, path, userKey string, out any) error {
	endpoint := c.baseURL + path
	if userKey != "" {
		endpoint += "?user_id=" + url.QueryEscape(userKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
