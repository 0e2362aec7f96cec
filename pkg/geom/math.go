// pkg/geom/math.go
package geom

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpVec interpolates two points component-wise.
func LerpVec(from, to Vec, t float64) Vec {
	return Vec{Lerp(from.X, to.X, t), Lerp(from.Y, to.Y, t)}
}

// Clamp01 clamps x to [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
