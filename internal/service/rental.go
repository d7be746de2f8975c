package service

import (
	"context"
	"errors"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
	}
}

// Rent performs an immediate checkout: quote the cost from the car's current
// daily price, then flip availability and insert the rental row in one
// transaction. The availability check is done twice: here for a typed error,
// and again inside the transaction's guarded UPDATE, which is authoritative.
func (s *rentalService) Rent(ctx context.Context, carID int32, userName string, rentalDays int32) (*domain.Rental, error) {
	if rentalDays <= 0 {
		return nil, fmt.Errorf("%w: rental days must be positive", domain.ErrInvalidInput)
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: user name is required", domain.ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrCarUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable {
		return nil, domain.ErrCarUnavailable
	}

	rental := &domain.Rental{
		CarID:      carID,
		UserName:   userName,
		RentalDays: rentalDays,
		TotalCost:  utils.Quote(car.PricePerDay, rentalDays),
		RentDate:   utils.Today(),
	}

	if err := s.rentalRepo.CreateActive(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("car rented",
		"car_id", carID,
		"user_name", userName,
		"rental_days", rentalDays,
		"total_cost", utils.FormatAmount(rental.TotalCost))
	return rental, nil
}

// Return closes the active rental for the car. The rental row delete and the
// availability restore commit together or not at all.
func (s *rentalService) Return(ctx context.Context, carID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.CompleteReturn(ctx, carID); err != nil {
		return nil, err
	}

	logger.Info("car returned", "car_id", carID, "user_name", rental.UserName)
	return rental, nil
}

func (s *rentalService) ListOrders(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}
