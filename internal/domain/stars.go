package domain

import "math"

// Stars is the display decomposition of an average rating into star glyphs.
type Stars struct {
	Full  int  `json:"full"`
	Half  bool `json:"half"`
	Empty int  `json:"empty"`
}

// RoundAverage reduces a list of rating values to their arithmetic mean,
// rounded to one decimal place. It returns 0 when no ratings exist.
func RoundAverage(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	return math.Round(avg*10) / 10
}

// StarsFor decomposes an average rating into full/half/empty stars for
// rendering. A half star appears when the fractional part reaches 0.5; the
// remainder out of five is empty. The function is pure and independent of
// how the average was computed.
func StarsFor(average float64) Stars {
	full := int(math.Floor(average))
	half := average-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	return Stars{Full: full, Half: half, Empty: empty}
}
