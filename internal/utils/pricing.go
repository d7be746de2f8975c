package utils

import (
	"fmt"
	"time"
)

// SurchargeRate is the fixed multiplier applied to price_per_day * rental_days
// when quoting a rental or booking (15% GST-style surcharge).
const SurchargeRate = 1.15

const dateLayout = "2006-01-02"

// Quote computes the total cost for a rental of rentalDays days. The result is
// stored unrounded; rounding to two decimal places happens only at display
// time via FormatAmount. Callers must reject rentalDays <= 0 before quoting.
func Quote(pricePerDay float64, rentalDays int32) float64 {
	return pricePerDay * float64(rentalDays) * SurchargeRate
}

// FormatAmount renders a monetary amount rounded to two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ValidateDate checks that dateStr is a real calendar date in yyyy-mm-dd form.
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return nil
}

// Today returns the current date in yyyy-mm-dd form.
func Today() string {
	return time.Now().Format(dateLayout)
}
