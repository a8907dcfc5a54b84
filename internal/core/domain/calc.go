package domain

import "time"

// DiscountedPrice returns price reduced by discountPercent (0-100).
func DiscountedPrice(price, discountPercent float64) float64 {
	return price - price*(discountPercent/100)
}

// Age returns the number of whole years between birthDate and today.
// The year only counts once the month/day anniversary has been reached, so a
// 29 February birthday rolls over on 1 March in non-leap years.
func Age(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}
