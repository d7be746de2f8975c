package http

import (
	"net/http"
	"strconv"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type FleetHandler struct {
	fleetSvc service.FleetService
}

func NewFleetHandler(fleetSvc service.FleetService) *FleetHandler {
	return &FleetHandler{fleetSvc: fleetSvc}
}

type carRequest struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int32   `json:"year"`
	Mileage     int32   `json:"mileage"`
	PricePerDay float64 `json:"price_per_day"`
}

func (h *FleetHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if !decodeBody(w, r, &req) {
		return
	}

	car := &domain.Car{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		PricePerDay: req.PricePerDay,
	}
	if err := h.fleetSvc.AddCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *FleetHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req carRequest
	if !decodeBody(w, r, &req) {
		return
	}

	car := &domain.Car{
		ID:          id,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		PricePerDay: req.PricePerDay,
	}
	if err := h.fleetSvc.UpdateCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *FleetHandler) RemoveCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.fleetSvc.RemoveCar(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FleetHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	car, err := h.fleetSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *FleetHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.fleetSvc.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *FleetHandler) ListAvailableCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.fleetSvc.ListAvailableCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return int32(id), true
}
