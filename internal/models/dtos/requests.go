package dtos

import "time"

// TicketSpec is one requested seat: a (row, seat) coordinate on a flight.
type TicketSpec struct {
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
	Flight string `json:"flight"`
}

// OrderRequest is the body of order create and order update. Update has
// full-replace semantics: the new ticket set substitutes the old one.
type OrderRequest struct {
	Tickets []TicketSpec `json:"tickets"`
}

type AirportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type RouteRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type AirplaneTypeRequest struct {
	Name string `json:"name"`
}

type AirplaneRequest struct {
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
}

type CrewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FlightRequest struct {
	Route         string    `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []string  `json:"crew"`
}
