package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/api"
	"skyward/aerodrome/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes. Every route requires a
// valid bearer token; reference-data and flight mutations additionally
// require the admin role.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, jwtSecret string) {
	booking := deps.Services.Booking
	flights := deps.Services.Flights
	reference := deps.Services.Reference

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(jwtSecret))

		// Orders and tickets are scoped to the authenticated caller.
		v1.Post("/orders", api.CreateOrderHandler(booking))
		v1.Get("/orders", api.ListOrdersHandler(booking))
		v1.Get("/orders/{order_id}", api.GetOrderHandler(booking))
		v1.Put("/orders/{order_id}", api.UpdateOrderHandler(booking))
		v1.Delete("/orders/{order_id}", api.DeleteOrderHandler(booking))

		v1.Get("/tickets", api.ListTicketsHandler(booking))
		v1.Get("/tickets/{ticket_id}", api.GetTicketHandler(booking))

		// Catalog reads are open to any authenticated user.
		v1.Get("/flights", api.ListFlightsHandler(flights))
		v1.Get("/flights/{flight_id}", api.GetFlightHandler(flights))
		v1.Get("/airports", api.ListAirportsHandler(reference))
		v1.Get("/airports/{airport_id}", api.GetAirportHandler(reference))
		v1.Get("/routes", api.ListRoutesHandler(reference))
		v1.Get("/routes/{route_id}", api.GetRouteHandler(reference))
		v1.Get("/airplanes", api.ListAirplanesHandler(reference))
		v1.Get("/airplanes/{airplane_id}", api.GetAirplaneHandler(reference))
		v1.Get("/airplane-types", api.ListAirplaneTypesHandler(reference))
		v1.Get("/airplane-types/{type_id}", api.GetAirplaneTypeHandler(reference))
		v1.Get("/crews", api.ListCrewHandler(reference))
		v1.Get("/crews/{crew_id}", api.GetCrewHandler(reference))

		// Admin-only group: catalog and schedule mutations.
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())

			admin.Post("/flights", api.CreateFlightHandler(flights))
			admin.Put("/flights/{flight_id}", api.UpdateFlightHandler(flights))
			admin.Delete("/flights/{flight_id}", api.DeleteFlightHandler(flights))

			admin.Post("/airports", api.CreateAirportHandler(reference))
			admin.Put("/airports/{airport_id}", api.UpdateAirportHandler(reference))
			admin.Delete("/airports/{airport_id}", api.DeleteAirportHandler(reference))

			admin.Post("/routes", api.CreateRouteHandler(reference))
			admin.Put("/routes/{route_id}", api.UpdateRouteHandler(reference))
			admin.Delete("/routes/{route_id}", api.DeleteRouteHandler(reference))

			admin.Post("/airplanes", api.CreateAirplaneHandler(reference))
			admin.Put("/airplanes/{airplane_id}", api.UpdateAirplaneHandler(reference))
			admin.Delete("/airplanes/{airplane_id}", api.DeleteAirplaneHandler(reference))

			admin.Post("/airplane-types", api.CreateAirplaneTypeHandler(reference))
			admin.Put("/airplane-types/{type_id}", api.UpdateAirplaneTypeHandler(reference))
			admin.Delete("/airplane-types/{type_id}", api.DeleteAirplaneTypeHandler(reference))

			admin.Post("/crews", api.CreateCrewHandler(reference))
		})
	})
}
