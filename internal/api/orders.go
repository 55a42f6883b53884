package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/auth"
	"skyward/aerodrome/internal/models/dtos"
)

// BookingOperations is the booking service surface the handlers need.
type BookingOperations interface {
	CreateOrder(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error)
	UpdateOrder(ctx context.Context, userID, orderID string, req dtos.OrderRequest) (*dtos.OrderResponse, error)
	DeleteOrder(ctx context.Context, userID, orderID string) error
	GetOrder(ctx context.Context, userID, orderID string) (any, error)
	ListOrders(ctx context.Context, userID string) (any, error)
	GetTicket(ctx context.Context, userID, ticketID string) (any, error)
	ListTickets(ctx context.Context, userID string) (any, error)
}

// CreateOrderHandler handles POST /api/v1/orders
func CreateOrderHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.OrderRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}

		order, err := svc.CreateOrder(r.Context(), claims.UserID(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Order created", order)
	}
}

// ListOrdersHandler handles GET /api/v1/orders
func ListOrdersHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := svc.ListOrders(r.Context(), claims.UserID())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Orders fetched", orders)
	}
}

// GetOrderHandler handles GET /api/v1/orders/{order_id}
func GetOrderHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "order_id")
		order, err := svc.GetOrder(r.Context(), claims.UserID(), orderID)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Order fetched", order)
	}
}

// UpdateOrderHandler handles PUT /api/v1/orders/{order_id}. The new
// ticket set fully replaces the old one.
func UpdateOrderHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.OrderRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}

		orderID := chi.URLParam(r, "order_id")
		order, err := svc.UpdateOrder(r.Context(), claims.UserID(), orderID, req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Order updated", order)
	}
}

// DeleteOrderHandler handles DELETE /api/v1/orders/{order_id}
func DeleteOrderHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "order_id")
		if err := svc.DeleteOrder(r.Context(), claims.UserID(), orderID); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Order deleted", nil)
	}
}
