package http

import (
	"net/http"

	"car-rental-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires all handlers onto a mux router. Admin routes are nested
// under the RequireAdmin middleware; everything except auth requires a valid
// token.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	fleetHandler *FleetHandler,
	bookingHandler *BookingHandler,
	rentalHandler *RentalHandler,
) *mux.Router {
	auth := NewAuthenticator(tokens)

	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Authenticated (customer or admin)
	user := api.NewRoute().Subrouter()
	user.Use(auth.Authenticate)
	user.HandleFunc("/cars/available", fleetHandler.ListAvailableCars).Methods(http.MethodGet)
	user.HandleFunc("/rentals", rentalHandler.Rent).Methods(http.MethodPost)
	user.HandleFunc("/rentals/{carID:[0-9]+}", rentalHandler.Return).Methods(http.MethodDelete)
	user.HandleFunc("/bookings", bookingHandler.Book).Methods(http.MethodPost)

	// Admin only
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.Authenticate, RequireAdmin)
	admin.HandleFunc("/cars", fleetHandler.ListCars).Methods(http.MethodGet)
	admin.HandleFunc("/cars", fleetHandler.AddCar).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}", fleetHandler.GetCar).Methods(http.MethodGet)
	admin.HandleFunc("/cars/{id:[0-9]+}", fleetHandler.UpdateCar).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{id:[0-9]+}", fleetHandler.RemoveCar).Methods(http.MethodDelete)
	admin.HandleFunc("/rentals", rentalHandler.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", bookingHandler.ListHistory).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/pending", bookingHandler.ListPending).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}/decision", bookingHandler.Decide).Methods(http.MethodPost)

	return r
}
