package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/models/dtos"
)

// ListRoutesHandler handles GET /api/v1/routes
func ListRoutesHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		routes, err := svc.ListRoutes(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Routes fetched", routes)
	}
}

// GetRouteHandler handles GET /api/v1/routes/{route_id}
func GetRouteHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		route, err := svc.GetRoute(r.Context(), chi.URLParam(r, "route_id"))
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Route fetched", route)
	}
}

// CreateRouteHandler handles POST /api/v1/routes (admin only)
func CreateRouteHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RouteRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		route, err := svc.CreateRoute(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Route created", route)
	}
}

// UpdateRouteHandler handles PUT /api/v1/routes/{route_id} (admin only)
func UpdateRouteHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RouteRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		route, err := svc.UpdateRoute(r.Context(), chi.URLParam(r, "route_id"), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Route updated", route)
	}
}

// DeleteRouteHandler handles DELETE /api/v1/routes/{route_id} (admin only)
func DeleteRouteHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeleteRoute(r.Context(), chi.URLParam(r, "route_id")); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Route deleted", nil)
	}
}
