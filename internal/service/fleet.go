package service

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type fleetService struct {
	carRepo repository.CarRepository
}

func NewFleetService(carRepo repository.CarRepository) FleetService {
	return &fleetService{carRepo: carRepo}
}

func (s *fleetService) AddCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}
	logger.Info("car added", "car_id", car.ID, "make", car.Make, "model", car.Model)
	return nil
}

// UpdateCar is a full-record replace of the descriptive fields; partial
// updates are not supported.
func (s *fleetService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.carRepo.Update(ctx, car); err != nil {
		return err
	}
	logger.Info("car updated", "car_id", car.ID)
	return nil
}

// RemoveCar deletes the car without checking for bookings or rentals that
// reference it.
func (s *fleetService) RemoveCar(ctx context.Context, id int32) error {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("car removed", "car_id", id)
	return nil
}

func (s *fleetService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *fleetService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *fleetService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListAvailable(ctx)
}

func validateCar(car *domain.Car) error {
	if car.Make == "" || car.Model == "" {
		return fmt.Errorf("%w: make and model are required", domain.ErrInvalidInput)
	}
	if car.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", domain.ErrInvalidInput)
	}
	if car.Mileage < 0 {
		return fmt.Errorf("%w: mileage cannot be negative", domain.ErrInvalidInput)
	}
	if car.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidInput)
	}
	return nil
}
