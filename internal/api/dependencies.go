package api

import (
	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/db"
	"skyward/aerodrome/internal/db/repositories"
	"skyward/aerodrome/internal/metrics"
	"skyward/aerodrome/internal/services"
)

type Repositories struct {
	Orders        *repositories.OrderRepository
	Tickets       *repositories.TicketRepository
	Airports      *repositories.AirportRepository
	Routes        *repositories.RouteRepository
	Airplanes     *repositories.AirplaneRepository
	AirplaneTypes *repositories.AirplaneTypeRepository
	Crews         *repositories.CrewRepository
	Flights       *repositories.FlightRepository
}

type Services struct {
	Invalidator *services.CacheInvalidator
	Booking     *services.BookingService
	Flights     *services.FlightService
	Reference   *services.ReferenceService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Cache    common.CacheStore
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services. Both database
// handles must be initialized before this runs.
func InitDependencies(cache common.CacheStore, metricsReg *metrics.MetricsRegistry) *Dependencies {
	repos := &Repositories{
		Orders:        repositories.NewOrderRepository(db.DB),
		Tickets:       repositories.NewTicketRepository(db.DB),
		Airports:      repositories.NewAirportRepository(db.PgDB),
		Routes:        repositories.NewRouteRepository(db.PgDB),
		Airplanes:     repositories.NewAirplaneRepository(db.PgDB),
		AirplaneTypes: repositories.NewAirplaneTypeRepository(db.PgDB),
		Crews:         repositories.NewCrewRepository(db.PgDB),
		Flights:       repositories.NewFlightRepository(db.PgDB),
	}

	invalidator := services.NewCacheInvalidator(cache, metricsReg)

	svcs := &Services{
		Invalidator: invalidator,
		Booking: services.NewBookingService(
			repos.Orders, repos.Tickets, cache, invalidator, metricsReg,
		),
		Flights: services.NewFlightService(
			repos.Flights, repos.Routes, repos.Airplanes, repos.Crews, cache, invalidator, metricsReg,
		),
		Reference: services.NewReferenceService(
			repos.Airports, repos.Routes, repos.Airplanes, repos.AirplaneTypes, repos.Crews, cache, invalidator, metricsReg,
		),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Cache:    cache,
		Metrics:  metricsReg,
	}
}
