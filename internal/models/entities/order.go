package entities

import "time"

// Order is the sqlx row for the orders table.
type Order struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Ticket is the sqlx row for the tickets table.
type Ticket struct {
	ID        string    `db:"id"`
	SeatRow   int       `db:"seat_row"`
	SeatNum   int       `db:"seat_num"`
	FlightID  string    `db:"flight_id"`
	OrderID   string    `db:"order_id"`
	CreatedAt time.Time `db:"created_at"`
}

// TicketDetail is a ticket joined with its flight summary, used by the
// caller-scoped read views.
type TicketDetail struct {
	ID            string    `db:"id"`
	SeatRow       int       `db:"seat_row"`
	SeatNum       int       `db:"seat_num"`
	FlightID      string    `db:"flight_id"`
	OrderID       string    `db:"order_id"`
	CreatedAt     time.Time `db:"created_at"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
	CityFrom      string    `db:"city_from"`
	CityTo        string    `db:"city_to"`
}

// FlightSeating carries the airplane dimensions of a flight, everything
// seat validation needs.
type FlightSeating struct {
	FlightID   string `db:"flight_id"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is rows x seats per row.
func (s FlightSeating) Capacity() int {
	return s.Rows * s.SeatsInRow
}
