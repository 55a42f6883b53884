package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/auth"
	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/models/dtos"
)

// mockBookingOps is a hand-written BookingOperations for handler tests.
type mockBookingOps struct {
	createFunc func(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error)
	updateFunc func(ctx context.Context, userID, orderID string, req dtos.OrderRequest) (*dtos.OrderResponse, error)
	deleteFunc func(ctx context.Context, userID, orderID string) error
	getFunc    func(ctx context.Context, userID, orderID string) (any, error)
	listFunc   func(ctx context.Context, userID string) (any, error)
}

func (m *mockBookingOps) CreateOrder(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
	return m.createFunc(ctx, userID, req)
}

func (m *mockBookingOps) UpdateOrder(ctx context.Context, userID, orderID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
	return m.updateFunc(ctx, userID, orderID, req)
}

func (m *mockBookingOps) DeleteOrder(ctx context.Context, userID, orderID string) error {
	return m.deleteFunc(ctx, userID, orderID)
}

func (m *mockBookingOps) GetOrder(ctx context.Context, userID, orderID string) (any, error) {
	return m.getFunc(ctx, userID, orderID)
}

func (m *mockBookingOps) ListOrders(ctx context.Context, userID string) (any, error) {
	return m.listFunc(ctx, userID)
}

func (m *mockBookingOps) GetTicket(ctx context.Context, userID, ticketID string) (any, error) {
	return nil, nil
}

func (m *mockBookingOps) ListTickets(ctx context.Context, userID string) (any, error) {
	return nil, nil
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	claims := &auth.JWTClaims{UserUUID: "user-1", RoleValue: constants.RolePassenger}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	t.Helper()
	var resp dtos.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateOrderHandler_MissingClaims(t *testing.T) {
	handler := CreateOrderHandler(&mockBookingOps{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"tickets":[]}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestCreateOrderHandler_Success(t *testing.T) {
	var gotUser string
	svc := &mockBookingOps{
		createFunc: func(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
			gotUser = userID
			return &dtos.OrderResponse{ID: "o1", Tickets: []dtos.TicketResponse{{ID: "t1", Row: 7, Seat: 5}}}, nil
		},
	}
	handler := CreateOrderHandler(svc)

	req := authedRequest(http.MethodPost, "/api/v1/orders", `{"tickets":[{"row":7,"seat":5,"flight":"f1"}]}`)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUser != "user-1" {
		t.Errorf("user from claims not forwarded, got %q", gotUser)
	}
	resp := decodeAPIResponse(t, rec)
	if resp.Status != string(constants.APIStatusOk) {
		t.Errorf("unexpected status %q", resp.Status)
	}
}

func TestCreateOrderHandler_ValidationErrorIs400(t *testing.T) {
	svc := &mockBookingOps{
		createFunc: func(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
			return nil, common.NewValidationError().Add("tickets", "order must contain at least one ticket")
		},
	}
	handler := CreateOrderHandler(svc)

	req := authedRequest(http.MethodPost, "/api/v1/orders", `{"tickets":[]}`)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if len(resp.Errors["tickets"]) != 1 {
		t.Errorf("field errors must be in the response: %+v", resp.Errors)
	}
}

func TestCreateOrderHandler_ConflictIs409(t *testing.T) {
	svc := &mockBookingOps{
		createFunc: func(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
			return nil, &common.ConflictError{Row: 7, Seat: 5, FlightID: "f1"}
		},
	}
	handler := CreateOrderHandler(svc)

	req := authedRequest(http.MethodPost, "/api/v1/orders", `{"tickets":[{"row":7,"seat":5,"flight":"f1"}]}`)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	resp := decodeAPIResponse(t, rec)
	if !strings.Contains(resp.Message, "already taken") {
		t.Errorf("message should say the seat is taken: %q", resp.Message)
	}
}

func TestCreateOrderHandler_MalformedBody(t *testing.T) {
	handler := CreateOrderHandler(&mockBookingOps{})

	req := authedRequest(http.MethodPost, "/api/v1/orders", `{not json`)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestGetOrderHandler_NotFoundIs404(t *testing.T) {
	svc := &mockBookingOps{
		getFunc: func(ctx context.Context, userID, orderID string) (any, error) {
			return nil, &common.NotFoundError{Resource: "order", ID: orderID}
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/orders/{order_id}", GetOrderHandler(svc))

	req := authedRequest(http.MethodGet, "/api/v1/orders/o-ghost", "")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateOrderHandler_ForwardsOrderID(t *testing.T) {
	var gotOrder string
	svc := &mockBookingOps{
		updateFunc: func(ctx context.Context, userID, orderID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
			gotOrder = orderID
			return &dtos.OrderResponse{ID: orderID}, nil
		},
	}

	r := chi.NewRouter()
	r.Put("/api/v1/orders/{order_id}", UpdateOrderHandler(svc))

	req := authedRequest(http.MethodPut, "/api/v1/orders/o1", `{"tickets":[{"row":1,"seat":1,"flight":"f1"}]}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOrder != "o1" {
		t.Errorf("order id not forwarded, got %q", gotOrder)
	}
}

func TestDeleteOrderHandler_Success(t *testing.T) {
	deleted := false
	svc := &mockBookingOps{
		deleteFunc: func(ctx context.Context, userID, orderID string) error {
			deleted = true
			return nil
		},
	}

	r := chi.NewRouter()
	r.Delete("/api/v1/orders/{order_id}", DeleteOrderHandler(svc))

	req := authedRequest(http.MethodDelete, "/api/v1/orders/o1", "")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !deleted {
		t.Error("delete not forwarded to the service")
	}
}
