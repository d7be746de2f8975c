package postgres

import (
	"context"
	"database/sql"
	"errors"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateActive pairs the rental insert with the availability flip in one
// transaction. The guarded UPDATE re-checks availability at commit time, so
// two concurrent rent attempts on the same car cannot both succeed.
func (r *rentalRepository) CreateActive(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE cars_info SET is_available = false WHERE id = $1 AND is_available = true`, rt.CarID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCarUnavailable
	}

	query := `INSERT INTO car_rental (car_id, user_name, rental_days, total_cost, rent_date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, rt.CarID, rt.UserName, rt.RentalDays, rt.TotalCost, rt.RentDate).Scan(&rt.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) FindByCar(ctx context.Context, carID int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, car_id, user_name, rental_days, total_cost, rent_date FROM car_rental WHERE car_id = $1`
	err := r.db.QueryRowContext(ctx, query, carID).Scan(&rt.ID, &rt.CarID, &rt.UserName, &rt.RentalDays, &rt.TotalCost, &rt.RentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActiveRental
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// CompleteReturn deletes the rental row and restores the availability flag as
// a unit. Either both mutations commit or neither does.
func (r *rentalRepository) CompleteReturn(ctx context.Context, carID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM car_rental WHERE car_id = $1`, carID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoActiveRental
	}

	if _, err := tx.ExecContext(ctx, `UPDATE cars_info SET is_available = true WHERE id = $1`, carID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT id, car_id, user_name, rental_days, total_cost, rent_date FROM car_rental ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.UserName, &rt.RentalDays, &rt.TotalCost, &rt.RentDate); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
