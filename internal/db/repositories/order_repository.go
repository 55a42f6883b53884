package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/models/dtos"
	"skyward/aerodrome/internal/models/entities"
)

// OrderRepository owns the booking write path. Every create/replace runs
// in a single transaction; the uniq_ticket_seat index is the final
// arbiter of seat conflicts, and its violation is translated here so no
// raw storage error escapes the repository.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db}
}

// GetFlightSeating returns the airplane dimensions of a flight, or
// (nil, nil) when the flight does not exist.
func (r *OrderRepository) GetFlightSeating(ctx context.Context, flightID string) (*entities.FlightSeating, error) {
	var seating entities.FlightSeating
	err := r.db.QueryRowxContext(ctx, constants.GetFlightSeating, flightID).StructScan(&seating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get flight seating: %w", err)
	}
	return &seating, nil
}

// CreateOrderWithTickets inserts the order row and all ticket rows in
// one transaction. A unique violation on any ticket aborts the whole
// transaction and surfaces as a ConflictError naming the losing seat.
func (r *OrderRepository) CreateOrderWithTickets(ctx context.Context, userID string, specs []dtos.TicketSpec) (*entities.Order, []entities.Ticket, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var order entities.Order
	if err := tx.QueryRowxContext(ctx, constants.InsertOrder, uuid.NewString(), userID).StructScan(&order); err != nil {
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	tickets, err := insertTickets(ctx, tx, order.ID, specs)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit order: %w", err)
	}
	return &order, tickets, nil
}

// ReplaceOrderTickets deletes the order's tickets and inserts the new
// set in one transaction. Replacement tickets get fresh identities even
// when their seat coordinates match a previous ticket.
func (r *OrderRepository) ReplaceOrderTickets(ctx context.Context, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, constants.DeleteTicketsByOrder, orderID); err != nil {
		return nil, fmt.Errorf("delete order tickets: %w", err)
	}

	tickets, err := insertTickets(ctx, tx, orderID, specs)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ticket replacement: %w", err)
	}
	return tickets, nil
}

// insertTickets inserts specs one by one so a unique violation can be
// attributed to the exact seat that lost the race.
func insertTickets(ctx context.Context, tx *sqlx.Tx, orderID string, specs []dtos.TicketSpec) ([]entities.Ticket, error) {
	tickets := make([]entities.Ticket, 0, len(specs))
	for _, spec := range specs {
		var ticket entities.Ticket
		err := tx.QueryRowxContext(ctx, constants.InsertTicket,
			uuid.NewString(),
			spec.Row,
			spec.Seat,
			spec.Flight,
			orderID,
		).StructScan(&ticket)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, &common.ConflictError{Row: spec.Row, Seat: spec.Seat, FlightID: spec.Flight}
			}
			return nil, fmt.Errorf("insert ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

// GetOrderForUser returns the order only when it belongs to the user;
// (nil, nil) when no such order exists for them.
func (r *OrderRepository) GetOrderForUser(ctx context.Context, orderID, userID string) (*entities.Order, error) {
	var order entities.Order
	err := r.db.QueryRowxContext(ctx, constants.GetOrderForUser, orderID, userID).StructScan(&order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// GetOrdersByUser lists the user's orders, newest first.
func (r *OrderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	var orders []entities.Order
	if err := r.db.SelectContext(ctx, &orders, constants.GetOrdersByUser, userID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// DeleteOrder removes the order; ticket rows go with it via the FK
// cascade, freeing the seats.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	res, err := r.db.ExecContext(ctx, constants.DeleteOrderByID, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete order rows affected: %w", err)
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "order", ID: orderID}
	}
	return nil
}

// isUniqueViolation reports whether err is Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
