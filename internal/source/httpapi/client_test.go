package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/waffyhq/waffy-dashboard/internal/source"
)

func TestClientFetchesOrders(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotUser = r.URL.Query().Get("user_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"order_id": 1, "CustomerId": 42, "order_status": "pending", "total_amount": "10"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	orders, err := c.Orders(context.Background(), "user_123")
	if err != nil {
		t.Fatalf("error fetching orders: %v", err)
	}
	if gotUser != "user_123" {
		t.Errorf("expected user_id 'user_123', got %q", gotUser)
	}
	if len(orders) != 1 || orders[0].ID != 1 || orders[0].CustomerKey() != "42" {
		t.Errorf("unexpected orders %+v", orders)
	}
}

func TestClientSurfacesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	if _, err := c.Customers(context.Background(), "user_123"); err == nil {
		t.Error("expected an error for a 500 response")
	}
}

func TestClientFailureBecomesEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/customers" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	snap := source.FetchSnapshot(context.Background(), c, "user_123")
	if snap.Customers == nil || len(snap.Customers) != 0 {
		t.Errorf("expected empty customers, got %v", snap.Customers)
	}
	if snap.Orders == nil {
		t.Error("expected an empty orders slice, got nil")
	}
}

func TestClientSetOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders/1/status":
			if r.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", r.Method)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("error decoding body: %v", err)
			}
			if body["status"] != "completed" {
				t.Errorf("expected status 'completed', got %q", body["status"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"order_id": 1, "order_status": "completed", "total_amount": "10"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)

	updated, err := c.SetOrderStatus(context.Background(), "user_123", 1, "completed")
	if err != nil {
		t.Fatalf("error updating order: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("expected status 'completed', got %q", updated.Status)
	}

	if _, err := c.SetOrderStatus(context.Background(), "user_123", 999, "completed"); !errors.Is(err, source.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}

	if _, err := c.SetOrderStatus(context.Background(), "user_123", 1, "shipped"); !errors.Is(err, source.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
