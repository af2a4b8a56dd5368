package services

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Nights rounds a partial day up, so checking out at noon counts the whole night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
}

func TotalPrice(nights int, pricePerNight float64) float64 {
	return float64(nights) * pricePerNight
}

// AverageRating is the arithmetic mean, 0 when there are no ratings.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return float64(total) / float64(len(ratings))
}

// InPriceRange reports whether price lies in [min, max]. Nil bounds default to 0 and +Inf.
func InPriceRange(price float64, min, max *float64) bool {
	lo, hi := 0.0, math.Inf(1)
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return price >= lo && price <= hi
}
