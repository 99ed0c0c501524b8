package matcher

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, ErrDimensionMismatch
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, ErrNonFiniteVector
		}
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}
