package gorm

import "time"

// Order groups the tickets a user booked in one transaction. The model
// exists so AutoMigrate creates the table and cascade; the booking write
// path goes through sqlx, not GORM.
type Order struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()" json:"created_at"`

	Tickets []Ticket `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// Ticket occupies one seat coordinate on one flight. The composite
// unique index on (flight_id, seat_row, seat_num) is the arbiter of
// double bookings: concurrent inserts for the same seat race at commit
// and exactly one wins.
type Ticket struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SeatRow   int       `gorm:"column:seat_row;not null;check:seat_row >= 1;uniqueIndex:uniq_ticket_seat" json:"row"`
	SeatNum   int       `gorm:"column:seat_num;not null;check:seat_num >= 1;uniqueIndex:uniq_ticket_seat" json:"seat"`
	FlightID  string    `gorm:"column:flight_id;type:uuid;not null;uniqueIndex:uniq_ticket_seat" json:"flight_id"`
	OrderID   string    `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()" json:"-"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}
