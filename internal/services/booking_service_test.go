package services

import (
	"context"
	"testing"
	"time"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/models/dtos"
	"skyward/aerodrome/internal/models/entities"
)

// mockBookingStore is a hand-written BookingStore for service tests.
type mockBookingStore struct {
	seatings map[string]*entities.FlightSeating

	createFunc  func(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error)
	replaceFunc func(ctx context.Context, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error)
	getFunc     func(ctx context.Context, orderID, userID string) (*entities.Order, error)
	listFunc    func(ctx context.Context, userID string) ([]entities.Order, error)
	deleteFunc  func(ctx context.Context, orderID string) error

	createCalls  int
	replaceCalls int
	deleteCalls  int
}

func (m *mockBookingStore) GetFlightSeating(ctx context.Context, flightID string) (*entities.FlightSeating, error) {
	return m.seatings[flightID], nil
}

func (m *mockBookingStore) CreateOrderWithTickets(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error) {
	m.createCalls++
	return m.createFunc(ctx, userID, specs)
}

func (m *mockBookingStore) ReplaceOrderTickets(ctx context.Context, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error) {
	m.replaceCalls++
	return m.replaceFunc(ctx, orderID, specs)
}

func (m *mockBookingStore) GetOrderForUser(ctx context.Context, orderID, userID string) (*entities.Order, error) {
	if m.getFunc == nil {
		return nil, nil
	}
	return m.getFunc(ctx, orderID, userID)
}

func (m *mockBookingStore) GetOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(ctx, userID)
}

func (m *mockBookingStore) DeleteOrder(ctx context.Context, orderID string) error {
	m.deleteCalls++
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, orderID)
}

type mockTicketReader struct {
	details []entities.TicketDetail
}

func (m *mockTicketReader) GetByOrders(ctx context.Context, orderIDs []string) ([]entities.TicketDetail, error) {
	return m.details, nil
}

func (m *mockTicketReader) GetForUser(ctx context.Context, ticketID, userID string) (*entities.TicketDetail, error) {
	for _, d := range m.details {
		if d.ID == ticketID {
			return &d, nil
		}
	}
	return nil, nil
}

func (m *mockTicketReader) ListByUser(ctx context.Context, userID string) ([]entities.TicketDetail, error) {
	return m.details, nil
}

// recordingBus records every published mutation event.
type recordingBus struct {
	events []constants.EntityKind
}

func (b *recordingBus) OnMutated(kind constants.EntityKind, entityID string) {
	b.events = append(b.events, kind)
}

func (b *recordingBus) has(kind constants.EntityKind) bool {
	for _, k := range b.events {
		if k == kind {
			return true
		}
	}
	return false
}

func newTestBooking(store *mockBookingStore, tickets *mockTicketReader, bus *recordingBus) *BookingService {
	return NewBookingService(store, tickets, nil, bus, nil)
}

func seatings15x10(flightID string) map[string]*entities.FlightSeating {
	return map[string]*entities.FlightSeating{
		flightID: {FlightID: flightID, Rows: 15, SeatsInRow: 10},
	}
}

func TestCreateOrder_EmptyTickets(t *testing.T) {
	store := &mockBookingStore{}
	svc := newTestBooking(store, &mockTicketReader{}, &recordingBus{})

	_, err := svc.CreateOrder(context.Background(), "user-1", dtos.OrderRequest{})
	ve, ok := common.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["tickets"]; !ok {
		t.Errorf("error should be keyed on tickets: %v", ve.Fields)
	}
	if store.createCalls != 0 {
		t.Error("storage must not be touched for an empty order")
	}
}

func TestCreateOrder_UnknownFlight(t *testing.T) {
	store := &mockBookingStore{seatings: map[string]*entities.FlightSeating{}}
	svc := newTestBooking(store, &mockTicketReader{}, &recordingBus{})

	_, err := svc.CreateOrder(context.Background(), "user-1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 1, Seat: 1, Flight: "missing"}},
	})
	nf, ok := common.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not found error, got %v", err)
	}
	if nf.Resource != "flight" || nf.ID != "missing" {
		t.Errorf("error should name the flight: %+v", nf)
	}
}

func TestCreateOrder_OutOfRangeSeatRejectsWholeOrder(t *testing.T) {
	store := &mockBookingStore{seatings: seatings15x10("f1")}
	bus := &recordingBus{}
	svc := newTestBooking(store, &mockTicketReader{}, bus)

	_, err := svc.CreateOrder(context.Background(), "user-1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{
			{Row: 7, Seat: 5, Flight: "f1"},  // valid
			{Row: 16, Seat: 5, Flight: "f1"}, // row out of range
			{Row: 7, Seat: 11, Flight: "f1"}, // seat out of range
		},
	})
	ve, ok := common.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["tickets.1.row"]; !ok {
		t.Errorf("second ticket's row error missing: %v", ve.Fields)
	}
	if _, ok := ve.Fields["tickets.2.seat"]; !ok {
		t.Errorf("third ticket's seat error missing: %v", ve.Fields)
	}
	if store.createCalls != 0 {
		t.Error("no ticket may be persisted when any fails validation")
	}
	if len(bus.events) != 0 {
		t.Error("no mutation events on a rejected order")
	}
}

func TestCreateOrder_Success(t *testing.T) {
	now := time.Now()
	store := &mockBookingStore{
		seatings: seatings15x10("f1"),
		createFunc: func(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error) {
			return &entities.Order{ID: "o1", UserID: userID, CreatedAt: now},
				[]entities.Ticket{{ID: "t1", SeatRow: 7, SeatNum: 5, FlightID: "f1", OrderID: "o1"}},
				nil
		},
	}
	tickets := &mockTicketReader{details: []entities.TicketDetail{
		{ID: "t1", OrderID: "o1", SeatRow: 7, SeatNum: 5, FlightID: "f1", CityFrom: "Kyiv", CityTo: "Lviv"},
	}}
	bus := &recordingBus{}
	svc := newTestBooking(store, tickets, bus)

	resp, err := svc.CreateOrder(context.Background(), "user-1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 7, Seat: 5, Flight: "f1"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "o1" || len(resp.Tickets) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Tickets[0].Flight.CityFrom != "Kyiv" {
		t.Errorf("ticket view should embed route cities: %+v", resp.Tickets[0])
	}
	if !bus.has(constants.KindOrder) || !bus.has(constants.KindTicket) {
		t.Errorf("order and ticket mutations must be published, got %v", bus.events)
	}
}

func TestCreateOrder_ConflictPassesThrough(t *testing.T) {
	conflict := &common.ConflictError{Row: 7, Seat: 5, FlightID: "f1"}
	store := &mockBookingStore{
		seatings: seatings15x10("f1"),
		createFunc: func(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error) {
			return nil, nil, conflict
		},
	}
	bus := &recordingBus{}
	svc := newTestBooking(store, &mockTicketReader{}, bus)

	_, err := svc.CreateOrder(context.Background(), "user-1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 7, Seat: 5, Flight: "f1"}},
	})
	ce, ok := common.AsConflictError(err)
	if !ok {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if ce.Row != 7 || ce.Seat != 5 || ce.FlightID != "f1" {
		t.Errorf("conflict should name the losing seat: %+v", ce)
	}
	if len(bus.events) != 0 {
		t.Error("no mutation events when the transaction rolled back")
	}
}

func TestUpdateOrder_NotOwnedIsNotFound(t *testing.T) {
	store := &mockBookingStore{
		seatings: seatings15x10("f1"),
		getFunc: func(ctx context.Context, orderID, userID string) (*entities.Order, error) {
			return nil, nil // scoped query: other users' orders are invisible
		},
	}
	svc := newTestBooking(store, &mockTicketReader{}, &recordingBus{})

	_, err := svc.UpdateOrder(context.Background(), "user-2", "o1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 1, Seat: 1, Flight: "f1"}},
	})
	if _, ok := common.AsNotFoundError(err); !ok {
		t.Fatalf("expected not found for someone else's order, got %v", err)
	}
	if store.replaceCalls != 0 {
		t.Error("tickets must not be replaced")
	}
}

func TestUpdateOrder_ValidatesLikeCreate(t *testing.T) {
	store := &mockBookingStore{
		seatings: seatings15x10("f1"),
		getFunc: func(ctx context.Context, orderID, userID string) (*entities.Order, error) {
			return &entities.Order{ID: orderID, UserID: userID}, nil
		},
	}
	svc := newTestBooking(store, &mockTicketReader{}, &recordingBus{})

	_, err := svc.UpdateOrder(context.Background(), "user-1", "o1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 99, Seat: 1, Flight: "f1"}},
	})
	if _, ok := common.AsValidationError(err); !ok {
		t.Fatalf("update must run the same seat validation as create, got %v", err)
	}
	if store.replaceCalls != 0 {
		t.Error("invalid replacement must not reach storage")
	}
}

func TestUpdateOrder_ReplacesTicketSet(t *testing.T) {
	var replacedWith []dtos.TicketSpec
	store := &mockBookingStore{
		seatings: seatings15x10("f1"),
		getFunc: func(ctx context.Context, orderID, userID string) (*entities.Order, error) {
			return &entities.Order{ID: orderID, UserID: userID}, nil
		},
		replaceFunc: func(ctx context.Context, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error) {
			replacedWith = specs
			return []entities.Ticket{{ID: "t2", SeatRow: 2, SeatNum: 2, FlightID: "f1", OrderID: orderID}}, nil
		},
	}
	bus := &recordingBus{}
	svc := newTestBooking(store, &mockTicketReader{}, bus)

	_, err := svc.UpdateOrder(context.Background(), "user-1", "o1", dtos.OrderRequest{
		Tickets: []dtos.TicketSpec{{Row: 2, Seat: 2, Flight: "f1"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replacedWith) != 1 || replacedWith[0].Row != 2 {
		t.Errorf("replacement set not forwarded: %+v", replacedWith)
	}
	if !bus.has(constants.KindOrder) || !bus.has(constants.KindTicket) {
		t.Errorf("order and ticket mutations must be published, got %v", bus.events)
	}
}

func TestDeleteOrder_PublishesEvents(t *testing.T) {
	store := &mockBookingStore{
		getFunc: func(ctx context.Context, orderID, userID string) (*entities.Order, error) {
			return &entities.Order{ID: orderID, UserID: userID}, nil
		},
	}
	bus := &recordingBus{}
	svc := newTestBooking(store, &mockTicketReader{}, bus)

	if err := svc.DeleteOrder(context.Background(), "user-1", "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.deleteCalls != 1 {
		t.Errorf("delete not forwarded, calls=%d", store.deleteCalls)
	}
	if !bus.has(constants.KindOrder) || !bus.has(constants.KindTicket) {
		t.Errorf("order and ticket mutations must be published, got %v", bus.events)
	}
}

func TestListOrders_GroupsTicketsByOrder(t *testing.T) {
	store := &mockBookingStore{
		listFunc: func(ctx context.Context, userID string) ([]entities.Order, error) {
			return []entities.Order{{ID: "o1"}, {ID: "o2"}}, nil
		},
	}
	tickets := &mockTicketReader{details: []entities.TicketDetail{
		{ID: "t1", OrderID: "o1", SeatRow: 1, SeatNum: 1, FlightID: "f1"},
		{ID: "t2", OrderID: "o1", SeatRow: 1, SeatNum: 2, FlightID: "f1"},
		{ID: "t3", OrderID: "o2", SeatRow: 3, SeatNum: 3, FlightID: "f2"},
	}}
	svc := newTestBooking(store, tickets, &recordingBus{})

	got, err := svc.ListOrders(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orders, ok := got.([]dtos.OrderResponse)
	if !ok {
		t.Fatalf("unexpected response type %T", got)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if len(orders[0].Tickets) != 2 || len(orders[1].Tickets) != 1 {
		t.Errorf("tickets grouped wrong: %+v", orders)
	}
}
