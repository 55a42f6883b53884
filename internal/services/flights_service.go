package services

import (
	"context"
	"fmt"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/metrics"
	"skyward/aerodrome/internal/models/dtos"
	models "skyward/aerodrome/internal/models/gorm"
)

// FlightStore is the flight repository surface the service consumes.
type FlightStore interface {
	List(ctx context.Context) ([]models.Flight, error)
	FindByID(ctx context.Context, id string) (*models.Flight, error)
	Create(ctx context.Context, flight *models.Flight) error
	Update(ctx context.Context, flight *models.Flight) error
	Delete(ctx context.Context, id string) (int64, error)
}

// RouteFinder resolves route ids during flight validation.
type RouteFinder interface {
	FindByID(ctx context.Context, id string) (*models.Route, error)
}

// AirplaneFinder resolves airplane ids during flight validation.
type AirplaneFinder interface {
	FindByID(ctx context.Context, id string) (*models.Airplane, error)
}

// CrewFinder resolves crew id sets during flight validation.
type CrewFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Crew, error)
}

// FlightService serves the cached flight list and detail views and the
// admin-only flight mutations.
type FlightService struct {
	flights   FlightStore
	routes    RouteFinder
	airplanes AirplaneFinder
	crews     CrewFinder
	cache     common.CacheStore
	bus       MutationPublisher
	metrics   *metrics.MetricsRegistry
}

func NewFlightService(
	flights FlightStore,
	routes RouteFinder,
	airplanes AirplaneFinder,
	crews CrewFinder,
	cache common.CacheStore,
	bus MutationPublisher,
	metricsReg *metrics.MetricsRegistry,
) *FlightService {
	return &FlightService{
		flights:   flights,
		routes:    routes,
		airplanes: airplanes,
		crews:     crews,
		cache:     cache,
		bus:       bus,
		metrics:   metricsReg,
	}
}

// ListFlights returns the flight list view. The remaining-seat count is
// display data computed at read time; booking never consults it.
func (s *FlightService) ListFlights(ctx context.Context) (any, error) {
	key := constants.KindFlight.ViewKeyPrefix() + ":list"
	return s.cached(key, constants.KindFlight, func() (any, error) {
		flights, err := s.flights.List(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]dtos.FlightListItem, 0, len(flights))
		for _, f := range flights {
			items = append(items, flightListItem(f))
		}
		return items, nil
	})
}

// GetFlight returns the flight detail view with the purchased seat map.
func (s *FlightService) GetFlight(ctx context.Context, id string) (any, error) {
	key := fmt.Sprintf("%s:detail:%s", constants.KindFlight.ViewKeyPrefix(), id)
	return s.cached(key, constants.KindFlight, func() (any, error) {
		flight, err := s.flights.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if flight == nil {
			return nil, &common.NotFoundError{Resource: "flight", ID: id}
		}
		detail := flightDetail(*flight)
		return detail, nil
	})
}

// CreateFlight validates referenced ids and schedule ordering, then
// persists the flight with its crew assignment.
func (s *FlightService) CreateFlight(ctx context.Context, req dtos.FlightRequest) (*dtos.FlightDetail, error) {
	flight, err := s.buildFlight(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindFlight, flight.ID)
	return s.reload(ctx, flight.ID)
}

// UpdateFlight replaces the flight's fields and crew assignment.
func (s *FlightService) UpdateFlight(ctx context.Context, id string, req dtos.FlightRequest) (*dtos.FlightDetail, error) {
	existing, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &common.NotFoundError{Resource: "flight", ID: id}
	}

	flight, err := s.buildFlight(ctx, req)
	if err != nil {
		return nil, err
	}
	flight.ID = existing.ID
	flight.CreatedAt = existing.CreatedAt
	if err := s.flights.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindFlight, flight.ID)
	return s.reload(ctx, flight.ID)
}

// DeleteFlight removes the flight; its tickets cascade away.
func (s *FlightService) DeleteFlight(ctx context.Context, id string) error {
	affected, err := s.flights.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "flight", ID: id}
	}
	s.bus.OnMutated(constants.KindFlight, id)
	return nil
}

// buildFlight turns the request into a model, accumulating every field
// failure before returning.
func (s *FlightService) buildFlight(ctx context.Context, req dtos.FlightRequest) (*models.Flight, error) {
	verr := common.NewValidationError()

	route, err := s.routes.FindByID(ctx, req.Route)
	if err != nil {
		return nil, err
	}
	if route == nil {
		verr.Add("route", fmt.Sprintf("route %q does not exist", req.Route))
	}

	airplane, err := s.airplanes.FindByID(ctx, req.Airplane)
	if err != nil {
		return nil, err
	}
	if airplane == nil {
		verr.Add("airplane", fmt.Sprintf("airplane %q does not exist", req.Airplane))
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		verr.Add("arrival_time", "arrival time must be after departure time")
	}

	crew, err := s.crews.FindByIDs(ctx, req.Crew)
	if err != nil {
		return nil, err
	}
	if len(crew) != len(req.Crew) {
		found := make(map[string]bool, len(crew))
		for _, c := range crew {
			found[c.ID] = true
		}
		for _, id := range req.Crew {
			if !found[id] {
				verr.Add("crew", fmt.Sprintf("crew member %q does not exist", id))
			}
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return &models.Flight{
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Crew:          crew,
	}, nil
}

// reload fetches the stored flight with associations for the response.
func (s *FlightService) reload(ctx context.Context, id string) (*dtos.FlightDetail, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, &common.NotFoundError{Resource: "flight", ID: id}
	}
	detail := flightDetail(*flight)
	return &detail, nil
}

func (s *FlightService) cached(key string, kind constants.EntityKind, loader func() (any, error)) (any, error) {
	return cachedView(s.cache, s.metrics, key, kind, loader)
}

func flightListItem(f models.Flight) dtos.FlightListItem {
	item := dtos.FlightListItem{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          []string{},
	}
	if f.Route != nil {
		if f.Route.Source != nil {
			item.CityFrom = f.Route.Source.ClosestBigCity
		}
		if f.Route.Destination != nil {
			item.CityTo = f.Route.Destination.ClosestBigCity
		}
	}
	if f.Airplane != nil {
		item.Airplane = f.Airplane.Name
		item.CountAvailableSeats = AvailableSeats(f.Airplane.Capacity(), len(f.Tickets))
	}
	for _, c := range f.Crew {
		item.Crew = append(item.Crew, c.FullName())
	}
	return item
}

func flightDetail(f models.Flight) dtos.FlightDetail {
	detail := dtos.FlightDetail{
		ID:               f.ID,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Crew:             []dtos.CrewResponse{},
		PurchasedTickets: []dtos.SeatRef{},
	}
	if f.Route != nil {
		detail.Route = routeResponse(*f.Route)
	}
	if f.Airplane != nil {
		detail.Airplane = airplaneResponse(*f.Airplane)
		detail.CountAvailableSeats = AvailableSeats(f.Airplane.Capacity(), len(f.Tickets))
	}
	for _, c := range f.Crew {
		detail.Crew = append(detail.Crew, crewResponse(c))
	}
	for _, t := range f.Tickets {
		detail.PurchasedTickets = append(detail.PurchasedTickets, dtos.SeatRef{ID: t.ID, Row: t.SeatRow, Seat: t.SeatNum})
	}
	return detail
}

func airportResponse(a models.Airport) dtos.AirportResponse {
	return dtos.AirportResponse{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func routeResponse(r models.Route) dtos.RouteResponse {
	resp := dtos.RouteResponse{ID: r.ID, Distance: r.Distance}
	if r.Source != nil {
		resp.Source = airportResponse(*r.Source)
	}
	if r.Destination != nil {
		resp.Destination = airportResponse(*r.Destination)
	}
	return resp
}

func airplaneResponse(a models.Airplane) dtos.AirplaneResponse {
	resp := dtos.AirplaneResponse{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
	if a.AirplaneType != nil {
		resp.AirplaneType = a.AirplaneType.Name
	}
	return resp
}

func crewResponse(c models.Crew) dtos.CrewResponse {
	return dtos.CrewResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, FullName: c.FullName()}
}
