package postgres

import (
	"context"
	"database/sql"
	"errors"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars_info (make, model, year, mileage, price_per_day, is_available)
	          VALUES ($1, $2, $3, $4, $5, true) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, c.Make, c.Model, c.Year, c.Mileage, c.PricePerDay).Scan(&c.ID); err != nil {
		return err
	}
	c.IsAvailable = true
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, make, model, year, mileage, price_per_day, is_available FROM cars_info WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Mileage, &c.PricePerDay, &c.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the full descriptive record. The availability flag is owned
// by the rental transactions and is deliberately left out of the SET list.
func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars_info SET make=$1, model=$2, year=$3, mileage=$4, price_per_day=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Make, c.Model, c.Year, c.Mileage, c.PricePerDay, c.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the car row. Open bookings or rentals referencing the car are
// not checked; dangling references are accepted behavior.
func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars_info WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, make, model, year, mileage, price_per_day, is_available FROM cars_info ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, make, model, year, mileage, price_per_day, is_available FROM cars_info WHERE is_available = true ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) queryCars(ctx context.Context, query string) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Mileage, &c.PricePerDay, &c.IsAvailable); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
