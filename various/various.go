// Package various contains small math helpers shared across the generator.
package various

import "math"

// Dist2 returns the eucledian distance between two points.
func Dist2(a, b [2]float64) float64 {
	xDiff := a[0] - b[0]
	yDiff := a[1] - b[1]
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Len2 returns the length of the given vector.
func Len2(a [2]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1])
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{
		a[0] - b[0],
		a[1] - b[1],
	}
}

// Normalize2 returns the normalized vector of the given vector.
func Normalize2(a [2]float64) [2]float64 {
	l := Len2(a)
	if l == 0 {
		return a
	}
	return [2]float64{
		a[0] / l,
		a[1] / l,
	}
}

// Clamp limits the given value to the range [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// InitIntSlice returns a slice of the given size, filled with -1.
func InitIntSlice(size int) []int {
	res := make([]int, size)
	for i := range res {
		res[i] = -1
	}
	return res
}
