// Package scales converts metric ingredient weights to imperial display
// form for the cooking-scales feature.
package scales

import (
	"fmt"
	"math"
)

const gramsPerPound = 453.59237

// PoundsOunces splits a gram weight into whole pounds and the remaining
// ounces (a pound is 16 ounces).
func PoundsOunces(grams float64) (pounds int64, ounces float64) {
	p := grams / gramsPerPound
	whole := math.Floor(p)
	return int64(whole), (p - whole) * 16
}

// Convert formats a gram weight as "<pounds>lb <ounces>oz", ounces to one
// decimal place, e.g. Convert(500) == "1lb 1.6oz".
func Convert(grams float64) string {
	pounds, ounces := PoundsOunces(grams)
	return fmt.Sprintf("%dlb %.1foz", pounds, ounces)
}
