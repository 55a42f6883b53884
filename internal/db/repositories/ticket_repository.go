package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/models/entities"
)

// TicketRepository serves the caller-scoped ticket read views. Writes
// never happen here; tickets only come into existence through
// OrderRepository's transactions.
type TicketRepository struct {
	db *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db}
}

// GetByOrders returns ticket details for a set of orders, oldest first.
func (r *TicketRepository) GetByOrders(ctx context.Context, orderIDs []string) ([]entities.TicketDetail, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var tickets []entities.TicketDetail
	if err := r.db.SelectContext(ctx, &tickets, constants.GetTicketsByOrders, pq.Array(orderIDs)); err != nil {
		return nil, fmt.Errorf("tickets by orders: %w", err)
	}
	return tickets, nil
}

// GetForUser returns a single ticket only when the owning order belongs
// to the user; (nil, nil) otherwise.
func (r *TicketRepository) GetForUser(ctx context.Context, ticketID, userID string) (*entities.TicketDetail, error) {
	var ticket entities.TicketDetail
	err := r.db.QueryRowxContext(ctx, constants.GetTicketForUser, ticketID, userID).StructScan(&ticket)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// ListByUser returns every ticket across the user's orders, newest first.
func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]entities.TicketDetail, error) {
	var tickets []entities.TicketDetail
	if err := r.db.SelectContext(ctx, &tickets, constants.GetTicketsByUser, userID); err != nil {
		return nil, fmt.Errorf("tickets by user: %w", err)
	}
	return tickets, nil
}
