package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS cars_info (
		id SERIAL PRIMARY KEY,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		mileage INTEGER NOT NULL,
		price_per_day DOUBLE PRECISION NOT NULL,
		is_available BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		car_id INTEGER NOT NULL REFERENCES cars_info (id),
		user_name TEXT NOT NULL,
		booking_start_date TEXT NOT NULL,
		rental_days INTEGER NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending'
	)`,
	`CREATE TABLE IF NOT EXISTS car_rental (
		id SERIAL PRIMARY KEY,
		car_id INTEGER NOT NULL REFERENCES cars_info (id),
		user_name TEXT NOT NULL,
		rental_days INTEGER NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		rent_date TEXT NOT NULL
	)`,
}

// Migrate creates the four tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}
	return nil
}

type seedCar struct {
	make        string
	model       string
	year        int32
	mileage     int32
	pricePerDay float64
}

var sampleFleet = []seedCar{
	{"Honda", "Civic", 2019, 60000, 200},
	{"Honda", "Accord", 2015, 121258, 154.2},
	{"Honda", "CR-V", 2022, 8000, 249.2},
	{"Ford", "Focus", 2021, 40001, 300},
	{"Ford", "Fusion", 2019, 25000, 246.5},
	{"Ford", "Escape", 2018, 40000, 214.3},
	{"Tesla", "Model 3", 2010, 101245, 189},
	{"Tesla", "Model S", 2020, 35480, 463.2},
	{"Tesla", "Model X", 2019, 41350, 294.3},
	{"Chevrolet", "Malibu", 2013, 89246, 219},
	{"Chevrolet", "Impala", 2020, 65000, 158.5},
	{"Chevrolet", "Equinox", 2021, 54000, 196.4},
	{"Toyota", "Corolla", 2020, 15000, 245.0},
	{"Toyota", "Camry", 2018, 30000, 350.0},
	{"Toyota", "RAV4", 2021, 12000, 255.0},
	{"Nissan", "Altima", 2018, 30000, 246.00},
	{"Nissan", "Sentra", 2021, 12000, 240.00},
	{"Nissan", "Rogue", 2020, 22000, 250.00},
	{"BMW", "3 Series", 2019, 20000, 295.00},
	{"BMW", "5 Series", 2018, 35000, 320.00},
	{"BMW", "X5", 2021, 15000, 330.00},
	{"Mercedes-Benz", "C-Class", 2020, 18000, 300.00},
	{"Mercedes-Benz", "E-Class", 2019, 25000, 425.00},
	{"Mercedes-Benz", "GLC", 2022, 12000, 500.00},
	{"Audi", "A4", 2019, 24000, 190.00},
	{"Audi", "Q5", 2020, 20000, 210.00},
	{"Audi", "A6", 2018, 40000, 321.00},
	{"Volkswagen", "Jetta", 2019, 22000, 250.00},
	{"Volkswagen", "Passat", 2020, 18000, 255.00},
	{"Volkswagen", "Tiguan", 2021, 12000, 260.00},
}

// Seed inserts the sample fleet (only when cars_info is empty) and ensures the
// default admin account exists.
func Seed(ctx context.Context, db *sql.DB, adminUsername, adminPassword string) error {
	var count int32
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM cars_info`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count cars: %w", err)
	}

	if count == 0 {
		for _, c := range sampleFleet {
			_, err := db.ExecContext(ctx,
				`INSERT INTO cars_info (make, model, year, mileage, price_per_day, is_available) VALUES ($1, $2, $3, $4, $5, true)`,
				c.make, c.model, c.year, c.mileage, c.pricePerDay)
			if err != nil {
				return fmt.Errorf("failed to seed car %s %s: %w", c.make, c.model, err)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (username, password, is_admin) VALUES ($1, $2, true) ON CONFLICT (username) DO NOTHING`,
		adminUsername, string(hash))
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
