package math32

import m "github.com/chewxy/math32"

// Pi is math.Pi as a float32.
const Pi = m.Pi

// Min returns the minimum of two values.
func Min[T float32 | int32](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max[T float32 | int32](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a float32.
func Abs(a float32) float32 {
	return m.Abs(a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sqrt returns the square root of a float32.
func Sqrt(a float32) float32 {
	return m.Sqrt(a)
}

// Sin returns the sine of a in radians.
func Sin(a float32) float32 {
	return m.Sin(a)
}

// Cos returns the cosine of a in radians.
func Cos(a float32) float32 {
	return m.Cos(a)
}

// Atan2 returns the arc tangent of y/x using the signs of both to pick the quadrant.
func Atan2(y, x float32) float32 {
	return m.Atan2(y, x)
}

// Mod returns the floating-point remainder of a/b.
func Mod(a, b float32) float32 {
	return m.Mod(a, b)
}
