package domain

type Car struct {
	ID          int32   `json:"id"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int32   `json:"year"`
	Mileage     int32   `json:"mileage"`
	PricePerDay float64 `json:"price_per_day"`
	IsAvailable bool    `json:"is_available"`
}
