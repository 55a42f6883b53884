package dtos

import "time"

type APIResponse struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	ResponseTime string              `json:"response_time"`
	Data         any                 `json:"data,omitempty"`
	Errors       map[string][]string `json:"errors,omitempty"`
}

// FlightSummary is the compact flight block embedded in ticket views.
type FlightSummary struct {
	ID            string    `json:"id"`
	CityFrom      string    `json:"city_from"`
	CityTo        string    `json:"city_to"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type TicketResponse struct {
	ID     string        `json:"id"`
	Row    int           `json:"row"`
	Seat   int           `json:"seat"`
	Flight FlightSummary `json:"flight"`
}

type OrderResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

type CrewResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type AirportResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type RouteResponse struct {
	ID          string          `json:"id"`
	Source      AirportResponse `json:"source"`
	Destination AirportResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

type AirplaneTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AirplaneResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	Capacity     int    `json:"capacity"`
	AirplaneType string `json:"airplane_type"`
}

// SeatRef is a purchased seat on the flight detail view.
type SeatRef struct {
	ID   string `json:"id"`
	Row  int    `json:"row"`
	Seat int    `json:"seat"`
}

// FlightListItem is the flight list view: route endpoints by city,
// airplane and crew by name, plus remaining seats.
type FlightListItem struct {
	ID                  string    `json:"id"`
	CityFrom            string    `json:"city_from"`
	CityTo              string    `json:"city_to"`
	Airplane            string    `json:"airplane"`
	DepartureTime       time.Time `json:"departure_time"`
	ArrivalTime         time.Time `json:"arrival_time"`
	CountAvailableSeats int       `json:"count_available_seats"`
	Crew                []string  `json:"crew"`
}

// FlightDetail is the flight detail view with embedded reference data
// and the purchased seat map.
type FlightDetail struct {
	ID                  string           `json:"id"`
	Route               RouteResponse    `json:"route"`
	Airplane            AirplaneResponse `json:"airplane"`
	CountAvailableSeats int              `json:"count_available_seats"`
	DepartureTime       time.Time        `json:"departure_time"`
	ArrivalTime         time.Time        `json:"arrival_time"`
	Crew                []CrewResponse   `json:"crew"`
	PurchasedTickets    []SeatRef        `json:"purchased_tickets"`
}
