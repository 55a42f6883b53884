package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/aerodrome/internal/auth"
)

// ListTicketsHandler handles GET /api/v1/tickets, scoped to the
// caller's own orders.
func ListTicketsHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		tickets, err := svc.ListTickets(r.Context(), claims.UserID())
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Tickets fetched", tickets)
	}
}

// GetTicketHandler handles GET /api/v1/tickets/{ticket_id}
func GetTicketHandler(svc BookingOperations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ticketID := chi.URLParam(r, "ticket_id")
		ticket, err := svc.GetTicket(r.Context(), claims.UserID(), ticketID)
		if err != nil {
			respondError(w, initTime, err)
			return
		}
		respondSuccess(w, http.StatusOK, initTime, "Ticket fetched", ticket)
	}
}
