package services

import "math"

// MemberDiscountRate is the discount applied to product prices for
// authenticated users.
const MemberDiscountRate = 0.10

// DiscountedPrice returns the price after the member discount, rounded to
// cents.
func DiscountedPrice(price float64) float64 {
	return math.Round(price*(1-MemberDiscountRate)*100) / 100
}
