package service

import (
	"context"

	"car-rental-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (token string, role string, err error)
}

type FleetService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	UpdateCar(ctx context.Context, car *domain.Car) error
	RemoveCar(ctx context.Context, id int32) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
}

type BookingService interface {
	Book(ctx context.Context, carID int32, userName, startDate string, rentalDays int32) (*domain.Booking, error)
	Decide(ctx context.Context, bookingID int32, decision domain.BookingStatus) error
	ListPending(ctx context.Context) ([]domain.Booking, error)
	ListHistory(ctx context.Context) ([]domain.Booking, error)
}

type RentalService interface {
	Rent(ctx context.Context, carID int32, userName string, rentalDays int32) (*domain.Rental, error)
	Return(ctx context.Context, carID int32) (*domain.Rental, error)
	ListOrders(ctx context.Context) ([]domain.Rental, error)
}
