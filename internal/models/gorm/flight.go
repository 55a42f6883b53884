package gorm

import "time"

// Flight schedules an airplane on a route with an assigned crew. Its
// tickets are owned rows: deleting the flight cascades to them.
type Flight struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RouteID       string    `gorm:"column:route_id;type:uuid;not null" json:"route_id"`
	AirplaneID    string    `gorm:"column:airplane_id;type:uuid;not null" json:"airplane_id"`
	DepartureTime time.Time `gorm:"column:departure_time;not null" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null" json:"arrival_time"`
	CreatedAt     time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;default:now()" json:"-"`

	Route    *Route    `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE" json:"route,omitempty"`
	Airplane *Airplane `gorm:"foreignKey:AirplaneID;constraint:OnDelete:CASCADE" json:"airplane,omitempty"`
	Crew     []Crew    `gorm:"many2many:flight_crews;constraint:OnDelete:CASCADE" json:"crew,omitempty"`
	Tickets  []Ticket  `gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
