package domain

// Rental is an active, immediate checkout. At most one rental row exists per
// car at a time; while the row exists the car's is_available flag is false.
type Rental struct {
	ID         int32   `json:"id"`
	CarID      int32   `json:"car_id"`
	UserName   string  `json:"user_name"`
	RentalDays int32   `json:"rental_days"`
	TotalCost  float64 `json:"total_cost"`
	RentDate   string  `json:"rent_date"`
}
