package http

import (
	"net/http"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookRequest struct {
	CarID      int32  `json:"car_id"`
	StartDate  string `json:"start_date"`
	RentalDays int32  `json:"rental_days"`
}

type decisionRequest struct {
	Decision string `json:"decision"` // "approve" or "reject"
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeBody(w, r, &req) {
		return
	}

	claims := ClaimsFromContext(r.Context())
	booking, err := h.bookingSvc.Book(r.Context(), req.CarID, claims.Username, req.StartDate, req.RentalDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// Decide approves or rejects a pending booking. Anything other than "approve"
// rejects, matching the original console behavior.
func (h *BookingHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req decisionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	decision := domain.BookingStatusRejected
	if strings.EqualFold(strings.TrimSpace(req.Decision), "approve") {
		decision = domain.BookingStatusApproved
	}

	if err := h.bookingSvc.Decide(r.Context(), id, decision); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(decision)})
}

func (h *BookingHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListHistory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
