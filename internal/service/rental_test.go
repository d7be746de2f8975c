package service

import (
	"context"
	"testing"

	"car-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRentalService_Rent(t *testing.T) {
	ctx := context.Background()

	t.Run("Available car is rented with surcharged total", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		carRepo.On("GetByID", ctx, int32(1)).Return(&domain.Car{ID: 1, PricePerDay: 200, IsAvailable: true}, nil)
		rentalRepo.On("CreateActive", ctx, mock.AnythingOfType("*domain.Rental")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rental).ID = 1
		}).Return(nil)

		rental, err := svc.Rent(ctx, 1, "alice", 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.ID)
		assert.InDelta(t, 690.00, rental.TotalCost, 1e-9)
		assert.Equal(t, "alice", rental.UserName)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("Unavailable car fails without touching the ledger", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		carRepo.On("GetByID", ctx, int32(1)).Return(&domain.Car{ID: 1, PricePerDay: 200, IsAvailable: false}, nil)

		_, err := svc.Rent(ctx, 1, "bob", 1)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
		rentalRepo.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything)
	})

	t.Run("Unknown car fails as unavailable", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		carRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.Rent(ctx, 99, "alice", 3)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
	})

	t.Run("Non-positive day count is rejected before quoting", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		_, err := svc.Rent(ctx, 1, "alice", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		carRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Missing user name is rejected", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		_, err := svc.Rent(ctx, 1, "", 3)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestRentalService_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("Active rental is closed", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("FindByCar", ctx, int32(1)).Return(&domain.Rental{ID: 5, CarID: 1, UserName: "alice"}, nil)
		rentalRepo.On("CompleteReturn", ctx, int32(1)).Return(nil)

		rental, err := svc.Return(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rental.ID)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("No active rental leaves fleet untouched", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("FindByCar", ctx, int32(1)).Return(nil, domain.ErrNoActiveRental)

		_, err := svc.Return(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrNoActiveRental)
		rentalRepo.AssertNotCalled(t, "CompleteReturn", mock.Anything, mock.Anything)
	})
}

// Walks the full lifecycle: rent, double-rent rejected, return, double-return
// rejected.
func TestRentalService_RentReturnCycle(t *testing.T) {
	ctx := context.Background()
	carRepo := new(MockCarRepo)
	rentalRepo := new(MockRentalRepo)
	svc := NewRentalService(rentalRepo, carRepo)

	car := &domain.Car{ID: 1, PricePerDay: 200, IsAvailable: true}

	// Rent(1, "alice", 3) succeeds at 690.00 and flips availability.
	carRepo.On("GetByID", ctx, int32(1)).Return(car, nil).Once()
	rentalRepo.On("CreateActive", ctx, mock.AnythingOfType("*domain.Rental")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Rental).ID = 1
		car.IsAvailable = false
	}).Return(nil).Once()

	rental, err := svc.Rent(ctx, 1, "alice", 3)
	assert.NoError(t, err)
	assert.InDelta(t, 690.00, rental.TotalCost, 1e-9)
	assert.False(t, car.IsAvailable)

	// Rent(1, "bob", 1) now fails CarUnavailable.
	carRepo.On("GetByID", ctx, int32(1)).Return(car, nil).Once()
	_, err = svc.Rent(ctx, 1, "bob", 1)
	assert.ErrorIs(t, err, domain.ErrCarUnavailable)

	// Return(1) succeeds and restores availability.
	rentalRepo.On("FindByCar", ctx, int32(1)).Return(rental, nil).Once()
	rentalRepo.On("CompleteReturn", ctx, int32(1)).Run(func(mock.Arguments) {
		car.IsAvailable = true
	}).Return(nil).Once()

	_, err = svc.Return(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, car.IsAvailable)

	// Return(1) again fails NoActiveRental.
	rentalRepo.On("FindByCar", ctx, int32(1)).Return(nil, domain.ErrNoActiveRental).Once()
	_, err = svc.Return(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNoActiveRental)

	rentalRepo.AssertExpectations(t)
	carRepo.AssertExpectations(t)
}
