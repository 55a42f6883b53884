package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/models/dtos"
)

// FlightOperations is the flight service surface the handlers need.
type FlightOperations interface {
	ListFlights(ctx context.Context) (any, error)
	GetFlight(ctx context.Context, id string) (any, error)
	CreateFlight(ctx context.Context, req dtos.FlightRequest) (*dtos.FlightDetail, error)
	UpdateFlight(ctx context.Context, id string, req dtos.FlightRequest) (*dtos.FlightDetail, error)
	DeleteFlight(ctx context.Context, id string) error
}

// ListFlightsHandler handles GET /api/v1/flights
func ListFlightsHandler(svc FlightOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flights, err := svc.ListFlights(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Flights fetched", flights)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{flight_id}
func GetFlightHandler(svc FlightOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")
		flight, err := svc.GetFlight(r.Context(), flightID)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Flight fetched", flight)
	}
}

// CreateFlightHandler handles POST /api/v1/flights (admin only)
func CreateFlightHandler(svc FlightOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}

		flight, err := svc.CreateFlight(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Flight created", flight)
	}
}

// UpdateFlightHandler handles PUT /api/v1/flights/{flight_id} (admin only)
func UpdateFlightHandler(svc FlightOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}

		flightID := chi.URLParam(r, "flight_id")
		flight, err := svc.UpdateFlight(r.Context(), flightID, req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Flight updated", flight)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{flight_id} (admin only)
func DeleteFlightHandler(svc FlightOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")
		if err := svc.DeleteFlight(r.Context(), flightID); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Flight deleted", nil)
	}
}
