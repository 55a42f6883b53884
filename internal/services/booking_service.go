package services

import (
	"context"
	"fmt"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/metrics"
	"skyward/aerodrome/internal/models/dtos"
	"skyward/aerodrome/internal/models/entities"
)

// BookingStore is the slice of OrderRepository the booking service
// needs. Defined here so tests can substitute it.
type BookingStore interface {
	GetFlightSeating(ctx context.Context, flightID string) (*entities.FlightSeating, error)
	CreateOrderWithTickets(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error)
	ReplaceOrderTickets(ctx context.Context, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error)
	GetOrderForUser(ctx context.Context, orderID, userID string) (*entities.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

// TicketReader serves the joined ticket views.
type TicketReader interface {
	GetByOrders(ctx context.Context, orderIDs []string) ([]entities.TicketDetail, error)
	GetForUser(ctx context.Context, ticketID, userID string) (*entities.TicketDetail, error)
	ListByUser(ctx context.Context, userID string) ([]entities.TicketDetail, error)
}

// MutationPublisher receives post-commit mutation events.
type MutationPublisher interface {
	OnMutated(kind constants.EntityKind, entityID string)
}

// BookingService implements the booking operations: atomic order
// create/replace/delete plus the caller-scoped order and ticket reads.
type BookingService struct {
	orders  BookingStore
	tickets TicketReader
	cache   common.CacheStore
	bus     MutationPublisher
	metrics *metrics.MetricsRegistry
}

func NewBookingService(
	orders BookingStore,
	tickets TicketReader,
	cache common.CacheStore,
	bus MutationPublisher,
	metricsReg *metrics.MetricsRegistry,
) *BookingService {
	return &BookingService{
		orders:  orders,
		tickets: tickets,
		cache:   cache,
		bus:     bus,
		metrics: metricsReg,
	}
}

// CreateOrder books every requested seat or nothing at all. Structural
// validation runs first so the caller gets field-level messages; the
// unique index decides races at commit time.
func (s *BookingService) CreateOrder(ctx context.Context, userID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
	if err := s.validateSpecs(ctx, req.Tickets); err != nil {
		return nil, err
	}

	order, tickets, err := s.orders.CreateOrderWithTickets(ctx, userID, req.Tickets)
	if err != nil {
		return nil, s.observeBookingErr(err)
	}

	if s.metrics != nil {
		s.metrics.OrdersCreatedTotal.Inc()
		s.metrics.TicketsBookedTotal.Add(float64(len(tickets)))
	}
	s.bus.OnMutated(constants.KindOrder, order.ID)
	s.bus.OnMutated(constants.KindTicket, order.ID)

	return s.assembleOrder(ctx, order)
}

// UpdateOrder replaces the order's whole ticket set. Validation is
// identical to CreateOrder; seat bounds hold no matter which path a
// ticket was created through.
func (s *BookingService) UpdateOrder(ctx context.Context, userID, orderID string, req dtos.OrderRequest) (*dtos.OrderResponse, error) {
	order, err := s.orders.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &common.NotFoundError{Resource: "order", ID: orderID}
	}

	if err := s.validateSpecs(ctx, req.Tickets); err != nil {
		return nil, err
	}

	tickets, err := s.orders.ReplaceOrderTickets(ctx, order.ID, req.Tickets)
	if err != nil {
		return nil, s.observeBookingErr(err)
	}

	if s.metrics != nil {
		s.metrics.OrdersUpdatedTotal.Inc()
		s.metrics.TicketsBookedTotal.Add(float64(len(tickets)))
	}
	s.bus.OnMutated(constants.KindOrder, order.ID)
	s.bus.OnMutated(constants.KindTicket, order.ID)

	return s.assembleOrder(ctx, order)
}

// DeleteOrder removes the order and cascades its tickets, freeing the
// seats for rebooking.
func (s *BookingService) DeleteOrder(ctx context.Context, userID, orderID string) error {
	order, err := s.orders.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if order == nil {
		return &common.NotFoundError{Resource: "order", ID: orderID}
	}

	if err := s.orders.DeleteOrder(ctx, order.ID); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.OrdersDeletedTotal.Inc()
	}
	s.bus.OnMutated(constants.KindOrder, order.ID)
	s.bus.OnMutated(constants.KindTicket, order.ID)
	return nil
}

// GetOrder returns the caller's order with tickets, served from the
// order_view cache when warm.
func (s *BookingService) GetOrder(ctx context.Context, userID, orderID string) (any, error) {
	key := fmt.Sprintf("%s:user:%s:detail:%s", constants.KindOrder.ViewKeyPrefix(), userID, orderID)
	return s.cached(key, constants.KindOrder, func() (any, error) {
		order, err := s.orders.GetOrderForUser(ctx, orderID, userID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, &common.NotFoundError{Resource: "order", ID: orderID}
		}
		return s.assembleOrder(ctx, order)
	})
}

// ListOrders returns every order of the caller, newest first.
func (s *BookingService) ListOrders(ctx context.Context, userID string) (any, error) {
	key := fmt.Sprintf("%s:user:%s:list", constants.KindOrder.ViewKeyPrefix(), userID)
	return s.cached(key, constants.KindOrder, func() (any, error) {
		orders, err := s.orders.GetOrdersByUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		orderIDs := make([]string, 0, len(orders))
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID)
		}
		details, err := s.tickets.GetByOrders(ctx, orderIDs)
		if err != nil {
			return nil, err
		}

		byOrder := make(map[string][]dtos.TicketResponse, len(orders))
		for _, d := range details {
			byOrder[d.OrderID] = append(byOrder[d.OrderID], ticketResponse(d))
		}

		resp := make([]dtos.OrderResponse, 0, len(orders))
		for _, o := range orders {
			tickets := byOrder[o.ID]
			if tickets == nil {
				tickets = []dtos.TicketResponse{}
			}
			resp = append(resp, dtos.OrderResponse{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets})
		}
		return resp, nil
	})
}

// GetTicket returns one ticket when the caller owns its order.
func (s *BookingService) GetTicket(ctx context.Context, userID, ticketID string) (any, error) {
	key := fmt.Sprintf("%s:user:%s:detail:%s", constants.KindTicket.ViewKeyPrefix(), userID, ticketID)
	return s.cached(key, constants.KindTicket, func() (any, error) {
		detail, err := s.tickets.GetForUser(ctx, ticketID, userID)
		if err != nil {
			return nil, err
		}
		if detail == nil {
			return nil, &common.NotFoundError{Resource: "ticket", ID: ticketID}
		}
		resp := ticketResponse(*detail)
		return resp, nil
	})
}

// ListTickets returns every ticket across the caller's orders.
func (s *BookingService) ListTickets(ctx context.Context, userID string) (any, error) {
	key := fmt.Sprintf("%s:user:%s:list", constants.KindTicket.ViewKeyPrefix(), userID)
	return s.cached(key, constants.KindTicket, func() (any, error) {
		details, err := s.tickets.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.TicketResponse, 0, len(details))
		for _, d := range details {
			resp = append(resp, ticketResponse(d))
		}
		return resp, nil
	})
}

// validateSpecs runs the structural pre-filter: non-empty list, known
// flights, in-bounds seat coordinates. All per-ticket failures are
// accumulated so one response lists every problem.
func (s *BookingService) validateSpecs(ctx context.Context, specs []dtos.TicketSpec) error {
	if len(specs) == 0 {
		return common.NewValidationError().Add("tickets", "order must contain at least one ticket")
	}

	seatings := make(map[string]*entities.FlightSeating)
	for _, spec := range specs {
		if _, seen := seatings[spec.Flight]; seen {
			continue
		}
		seating, err := s.orders.GetFlightSeating(ctx, spec.Flight)
		if err != nil {
			return err
		}
		if seating == nil {
			return &common.NotFoundError{Resource: "flight", ID: spec.Flight}
		}
		seatings[spec.Flight] = seating
	}

	verr := common.NewValidationError()
	for i, spec := range specs {
		seating := seatings[spec.Flight]
		if specErr := ValidateSeat(spec.Row, spec.Seat, seating.Rows, seating.SeatsInRow); specErr != nil {
			verr.Merge(fmt.Sprintf("tickets.%d", i), specErr)
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// observeBookingErr counts seat conflicts before handing the error back.
func (s *BookingService) observeBookingErr(err error) error {
	if _, ok := common.AsConflictError(err); ok && s.metrics != nil {
		s.metrics.SeatConflictsTotal.Inc()
	}
	return err
}

// assembleOrder builds the response view for one order.
func (s *BookingService) assembleOrder(ctx context.Context, order *entities.Order) (*dtos.OrderResponse, error) {
	details, err := s.tickets.GetByOrders(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	tickets := make([]dtos.TicketResponse, 0, len(details))
	for _, d := range details {
		tickets = append(tickets, ticketResponse(d))
	}
	return &dtos.OrderResponse{ID: order.ID, CreatedAt: order.CreatedAt, Tickets: tickets}, nil
}

func (s *BookingService) cached(key string, kind constants.EntityKind, loader func() (any, error)) (any, error) {
	return cachedView(s.cache, s.metrics, key, kind, loader)
}

func ticketResponse(d entities.TicketDetail) dtos.TicketResponse {
	return dtos.TicketResponse{
		ID:   d.ID,
		Row:  d.SeatRow,
		Seat: d.SeatNum,
		Flight: dtos.FlightSummary{
			ID:            d.FlightID,
			CityFrom:      d.CityFrom,
			CityTo:        d.CityTo,
			DepartureTime: d.DepartureTime,
			ArrivalTime:   d.ArrivalTime,
		},
	}
}

var _ MutationPublisher = (*CacheInvalidator)(nil)
