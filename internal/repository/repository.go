package repository

import (
	"context"

	"car-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Car, error)
	ListAvailable(ctx context.Context) ([]domain.Car, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	ListPending(ctx context.Context) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type RentalRepository interface {
	// CreateActive inserts the rental row and flips the car's availability to
	// false in a single transaction. Returns domain.ErrCarUnavailable when the
	// car is missing or already rented.
	CreateActive(ctx context.Context, rental *domain.Rental) error
	FindByCar(ctx context.Context, carID int32) (*domain.Rental, error)
	// CompleteReturn deletes the rental row and restores availability in a
	// single transaction. Returns domain.ErrNoActiveRental when no rental row
	// exists for the car.
	CompleteReturn(ctx context.Context, carID int32) error
	List(ctx context.Context) ([]domain.Rental, error)
}
