package http

import (
	"net/http"

	"car-rental-backend/internal/service"
	"car-rental-backend/internal/utils"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	CarID      int32 `json:"car_id"`
	RentalDays int32 `json:"rental_days"`
}

type rentalResponse struct {
	ID         int32  `json:"id"`
	CarID      int32  `json:"car_id"`
	UserName   string `json:"user_name"`
	RentalDays int32  `json:"rental_days"`
	TotalCost  string `json:"total_cost"`
	RentDate   string `json:"rent_date"`
}

// Rent checks the car out for the logged-in user immediately, no approval
// step involved.
func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	claims := ClaimsFromContext(r.Context())
	rental, err := h.rentalSvc.Rent(r.Context(), req.CarID, claims.Username, req.RentalDays)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rentalResponse{
		ID:         rental.ID,
		CarID:      rental.CarID,
		UserName:   rental.UserName,
		RentalDays: rental.RentalDays,
		TotalCost:  utils.FormatAmount(rental.TotalCost),
		RentDate:   rental.RentDate,
	})
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	carID, ok := pathID(w, r, "carID")
	if !ok {
		return
	}

	rental, err := h.rentalSvc.Return(r.Context(), carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rentalResponse{
		ID:         rental.ID,
		CarID:      rental.CarID,
		UserName:   rental.UserName,
		RentalDays: rental.RentalDays,
		TotalCost:  utils.FormatAmount(rental.TotalCost),
		RentDate:   rental.RentDate,
	})
}

// ListOrders is the admin order-history view.
func (h *RentalHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
