package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/models/dtos"
)

// ReferenceOperations is the reference-data service surface the
// catalog handlers need.
type ReferenceOperations interface {
	ListAirports(ctx context.Context) (any, error)
	GetAirport(ctx context.Context, id string) (any, error)
	CreateAirport(ctx context.Context, req dtos.AirportRequest) (*dtos.AirportResponse, error)
	UpdateAirport(ctx context.Context, id string, req dtos.AirportRequest) (*dtos.AirportResponse, error)
	DeleteAirport(ctx context.Context, id string) error

	ListRoutes(ctx context.Context) (any, error)
	GetRoute(ctx context.Context, id string) (any, error)
	CreateRoute(ctx context.Context, req dtos.RouteRequest) (*dtos.RouteResponse, error)
	UpdateRoute(ctx context.Context, id string, req dtos.RouteRequest) (*dtos.RouteResponse, error)
	DeleteRoute(ctx context.Context, id string) error

	ListAirplaneTypes(ctx context.Context) (any, error)
	GetAirplaneType(ctx context.Context, id string) (any, error)
	CreateAirplaneType(ctx context.Context, req dtos.AirplaneTypeRequest) (*dtos.AirplaneTypeResponse, error)
	UpdateAirplaneType(ctx context.Context, id string, req dtos.AirplaneTypeRequest) (*dtos.AirplaneTypeResponse, error)
	DeleteAirplaneType(ctx context.Context, id string) error

	ListAirplanes(ctx context.Context) (any, error)
	GetAirplane(ctx context.Context, id string) (any, error)
	CreateAirplane(ctx context.Context, req dtos.AirplaneRequest) (*dtos.AirplaneResponse, error)
	UpdateAirplane(ctx context.Context, id string, req dtos.AirplaneRequest) (*dtos.AirplaneResponse, error)
	DeleteAirplane(ctx context.Context, id string) error

	ListCrew(ctx context.Context) (any, error)
	GetCrew(ctx context.Context, id string) (any, error)
	CreateCrew(ctx context.Context, req dtos.CrewRequest) (*dtos.CrewResponse, error)
}

// ListAirportsHandler handles GET /api/v1/airports
func ListAirportsHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := svc.ListAirports(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airports fetched", airports)
	}
}

// GetAirportHandler handles GET /api/v1/airports/{airport_id}
func GetAirportHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airport, err := svc.GetAirport(r.Context(), chi.URLParam(r, "airport_id"))
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airport fetched", airport)
	}
}

// CreateAirportHandler handles POST /api/v1/airports (admin only)
func CreateAirportHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		airport, err := svc.CreateAirport(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Airport created", airport)
	}
}

// UpdateAirportHandler handles PUT /api/v1/airports/{airport_id} (admin only)
func UpdateAirportHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		airport, err := svc.UpdateAirport(r.Context(), chi.URLParam(r, "airport_id"), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airport updated", airport)
	}
}

// DeleteAirportHandler handles DELETE /api/v1/airports/{airport_id} (admin only)
func DeleteAirportHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeleteAirport(r.Context(), chi.URLParam(r, "airport_id")); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airport deleted", nil)
	}
}
