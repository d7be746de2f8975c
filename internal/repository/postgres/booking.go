package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (car_id, user_name, booking_start_date, rental_days, total_cost, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.CarID, b.UserName, b.StartDate, b.RentalDays, b.TotalCost, b.Status).Scan(&b.ID)
}

// UpdateStatus overwrites the status unconditionally. There is no Pending-only
// guard: re-deciding an already decided booking is permitted.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
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

func (r *bookingRepository) ListPending(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, car_id, user_name, booking_start_date, rental_days, total_cost, status
	          FROM bookings WHERE status = $1 ORDER BY id`
	return r.queryBookings(ctx, query, domain.BookingStatusPending)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, car_id, user_name, booking_start_date, rental_days, total_cost, status
	          FROM bookings ORDER BY id`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CarID, &b.UserName, &b.StartDate, &b.RentalDays, &b.TotalCost, &b.Status); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
