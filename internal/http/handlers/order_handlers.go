package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

// UpdateOrderStatusHandler godoc
// @Summary Toggle an order's status
// @Description Sets the order to pending or completed and invalidates the cached snapshot
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order identifier"
// @Param request body StatusUpdateRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ValidationError
// @Failure 404 {string} string "Order not found"
// @Router /api/orders/{id}/status [put]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req StatusUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !source.ValidStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, ValidationError{
			Field:       "status",
			Description: "status must be pending or completed",
		})
		return
	}

	userKey := auth.UserKeyFromContext(r.Context())

	updated, err := recordSource.SetOrderStatus(r.Context(), userKey, orderID, req.Status)
	if err != nil {
		if errors.Is(err, source.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		log.Printf("failed to update order %d: %v", orderID, err)
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}

	// The cached snapshot still holds the old status.
	snapshotCache.Invalidate(r.Context(), userKey)

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write order response: %v", err)
	}
}
