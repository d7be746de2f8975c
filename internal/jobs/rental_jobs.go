package jobs

import (
	"context"

	"car-rental-backend/internal/logger"
)

// ReportOverdueRentals logs every active rental whose agreed duration has
// elapsed. car_rental has no status column, so the job observes and reports;
// it never mutates the ledger.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.car_id, r.user_name, r.rent_date, r.rental_days, c.make, c.model
			FROM car_rental r
			JOIN cars_info c ON c.id = r.car_id
			WHERE to_date(r.rent_date, 'YYYY-MM-DD') + r.rental_days < CURRENT_DATE
			ORDER BY r.rent_date
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, carID, rentalDays int32
				userName, rentDate    string
				make, model           string
			)
			if err := rows.Scan(&id, &carID, &userName, &rentDate, &rentalDays, &make, &model); err != nil {
				logger.Error("failed to scan overdue rental", "error", err)
				continue
			}
			count++
			logger.Warn("rental overdue",
				"rental_id", id,
				"car_id", carID,
				"car", make+" "+model,
				"user_name", userName,
				"rent_date", rentDate,
				"rental_days", rentalDays)
		}
		if err := rows.Err(); err != nil {
			logger.Error("error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("overdue rental report complete", "overdue_count", count)
	})
}
