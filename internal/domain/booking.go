package domain

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

// Booking is an advance reservation awaiting an admin decision. Creating or
// deciding a booking never changes the referenced car's availability; only an
// immediate rental does that.
type Booking struct {
	ID         int32         `json:"id"`
	CarID      int32         `json:"car_id"`
	UserName   string        `json:"user_name"`
	StartDate  string        `json:"booking_start_date"`
	RentalDays int32         `json:"rental_days"`
	TotalCost  float64       `json:"total_cost"`
	Status     BookingStatus `json:"status"`
}
