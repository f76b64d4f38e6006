package estimator

import (
	"fmt"
	"math"
)

// FormatTravelTime - подпись для движка маршрутизации: "H saat M dakika" или "M dakika"
func FormatTravelTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%d saat %d dakika", hours, minutes)
	}
	return fmt.Sprintf("%d dakika", minutes)
}

// FormatApproxDuration - подпись локальной оценки: "H sa M dk" при постоянной скорости
func FormatApproxDuration(distanceKm, speedKmh float64) string {
	if speedKmh <= 0 || distanceKm <= 0 {
		return "0 sa 0 dk"
	}
	hours := distanceKm / speedKmh
	h := math.Floor(hours)
	m := math.Round((hours - h) * 60)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d sa %d dk", int64(h), int64(m))
}
