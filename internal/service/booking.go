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

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
	}
}

// Book records a reservation intent awaiting admin decision. The car must be
// available at decision time, but booking does not flip availability: a
// booking is not a possession change.
func (s *bookingService) Book(ctx context.Context, carID int32, userName, startDate string, rentalDays int32) (*domain.Booking, error) {
	if rentalDays <= 0 {
		return nil, fmt.Errorf("%w: rental days must be positive", domain.ErrInvalidInput)
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: user name is required", domain.ErrInvalidInput)
	}
	if err := utils.ValidateDate(startDate); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
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

	booking := &domain.Booking{
		CarID:      carID,
		UserName:   userName,
		StartDate:  startDate,
		RentalDays: rentalDays,
		TotalCost:  utils.Quote(car.PricePerDay, rentalDays),
		Status:     domain.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		"booking_id", booking.ID,
		"car_id", carID,
		"user_name", userName,
		"total_cost", utils.FormatAmount(booking.TotalCost))
	return booking, nil
}

// Decide records the admin's approval or rejection. The decision is advisory
// record-keeping only: it never creates a rental or touches car availability,
// and an already decided booking may be re-decided.
func (s *bookingService) Decide(ctx context.Context, bookingID int32, decision domain.BookingStatus) error {
	if decision != domain.BookingStatusApproved && decision != domain.BookingStatusRejected {
		return fmt.Errorf("%w: decision must be Approved or Rejected", domain.ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, decision); err != nil {
		return err
	}

	logger.Info("booking decided", "booking_id", bookingID, "status", decision)
	return nil
}

func (s *bookingService) ListPending(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListPending(ctx)
}

func (s *bookingService) ListHistory(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}
