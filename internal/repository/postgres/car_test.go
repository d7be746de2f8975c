package postgres

import (
	"context"
	"testing"

	"car-rental-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("New car defaults to available", func(t *testing.T) {
		car := &domain.Car{Make: "Honda", Model: "Civic", Year: 2019, Mileage: 60000, PricePerDay: 200}

		mock.ExpectQuery("INSERT INTO cars_info").
			WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.PricePerDay).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, car)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), car.ID)
		assert.True(t, car.IsAvailable)
	})
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "make", "model", "year", "mileage", "price_per_day", "is_available"}).
			AddRow(1, "Honda", "Civic", 2019, 60000, 200.0, true)
		mock.ExpectQuery("SELECT (.+) FROM cars_info WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Civic", car.Model)
		assert.True(t, car.IsAvailable)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars_info WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "make", "model", "year", "mileage", "price_per_day", "is_available"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCarRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{ID: 1, Make: "Honda", Model: "Accord", Year: 2015, Mileage: 121258, PricePerDay: 154.2}

	t.Run("Row matched", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars_info SET").
			WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.PricePerDay, car.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, car))
	})

	t.Run("No row matched", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars_info SET").
			WithArgs(car.Make, car.Model, car.Year, car.Mileage, car.PricePerDay, car.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, car), domain.ErrNotFound)
	})
}

func TestCarRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("Row deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars_info WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("No row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars_info WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
	})
}

func TestCarRepository_ListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "make", "model", "year", "mileage", "price_per_day", "is_available"}).
		AddRow(1, "Honda", "Civic", 2019, 60000, 200.0, true).
		AddRow(4, "Ford", "Focus", 2021, 40001, 300.0, true)
	mock.ExpectQuery("SELECT (.+) FROM cars_info WHERE is_available = true").
		WillReturnRows(rows)

	cars, err := repo.ListAvailable(ctx)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, "Focus", cars[1].Model)
}
