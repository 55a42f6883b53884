package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/models/dtos"
)

// ListCrewHandler handles GET /api/v1/crews
func ListCrewHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crews, err := svc.ListCrew(r.Context())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Crew fetched", crews)
	}
}

// GetCrewHandler handles GET /api/v1/crews/{crew_id}
func GetCrewHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crew, err := svc.GetCrew(r.Context(), chi.URLParam(r, "crew_id"))
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Crew member fetched", crew)
	}
}

// CreateCrewHandler handles POST /api/v1/crews (admin only)
func CreateCrewHandler(svc ReferenceOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, initTime, err)
			return
		}
		crew, err := svc.CreateCrew(r.Context(), req)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusCreated, initTime, "Crew member created", crew)
	}
}
