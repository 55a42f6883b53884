package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/models/dtos"
)

// ListAirplanesHandler handles GET /api/v1/airplanes
func ListAirplanesHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airplanes, err := svc.ListAirplanes(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplanes fetched", airplanes)
	}
}

// GetAirplaneHandler handles GET /api/v1/airplanes/{airplane_id}
func GetAirplaneHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airplane, err := svc.GetAirplane(r.Context(), chi.URLParam(r, "airplane_id"))
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane fetched", airplane)
	}
}

// CreateAirplaneHandler handles POST /api/v1/airplanes (admin only)
func CreateAirplaneHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		airplane, err := svc.CreateAirplane(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Airplane created", airplane)
	}
}

// UpdateAirplaneHandler handles PUT /api/v1/airplanes/{airplane_id} (admin only)
func UpdateAirplaneHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		airplane, err := svc.UpdateAirplane(r.Context(), chi.URLParam(r, "airplane_id"), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane updated", airplane)
	}
}

// DeleteAirplaneHandler handles DELETE /api/v1/airplanes/{airplane_id} (admin only)
func DeleteAirplaneHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeleteAirplane(r.Context(), chi.URLParam(r, "airplane_id")); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane deleted", nil)
	}
}

// ListAirplaneTypesHandler handles GET /api/v1/airplane-types
func ListAirplaneTypesHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		types, err := svc.ListAirplaneTypes(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane types fetched", types)
	}
}

// GetAirplaneTypeHandler handles GET /api/v1/airplane-types/{type_id}
func GetAirplaneTypeHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		t, err := svc.GetAirplaneType(r.Context(), chi.URLParam(r, "type_id"))
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane type fetched", t)
	}
}

// CreateAirplaneTypeHandler handles POST /api/v1/airplane-types (admin only)
func CreateAirplaneTypeHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneTypeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		t, err := svc.CreateAirplaneType(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Airplane type created", t)
	}
}

// UpdateAirplaneTypeHandler handles PUT /api/v1/airplane-types/{type_id} (admin only)
func UpdateAirplaneTypeHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneTypeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		t, err := svc.UpdateAirplaneType(r.Context(), chi.URLParam(r, "type_id"), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane type updated", t)
	}
}

// DeleteAirplaneTypeHandler handles DELETE /api/v1/airplane-types/{type_id} (admin only)
func DeleteAirplaneTypeHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeleteAirplaneType(r.Context(), chi.URLParam(r, "type_id")); err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Airplane type deleted", nil)
	}
}
