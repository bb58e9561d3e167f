package anim

// Easing specifies how an animated value moves from start to end.
type Easing string

const (
	EaseLinear   Easing = "linear"
	EaseInCubic  Easing = "easeInCubic"
	EaseOutCubic Easing = "easeOutCubic"
)

// Apply maps progress t in [0,1] through the easing curve. t is clamped.
func (e Easing) Apply(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch e {
	case EaseInCubic:
		// t^3: slow start
		return t * t * t
	case EaseOutCubic:
		// 1 - (1-t)^3: slow end
		inv := 1 - t
		return 1 - inv*inv*inv
	default:
		// linear
		return t
	}
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
