package domutil

// Clamp pins n into [min, max]. A zero min reads as "no lower bound": the
// lower check only runs when min is non-zero, so Clamp(-3, 0, 10) returns
// -3, not 0.
func Clamp(n, min, max float64) float64 {
	if min != 0 && n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
