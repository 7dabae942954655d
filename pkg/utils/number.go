package utils

import "math"

// RoundRate arredonda uma taxa percentual para duas casas decimais
func RoundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
