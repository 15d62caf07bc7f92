// Package gamemath holds pure helpers shared by systems and factories.
package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WorldToScreen converts y-up world coordinates centered on the arena to
// y-down screen pixels for a screen of the given size.
func WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 + x, float64(screenH)/2 - y
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(sx, sy float64, screenW, screenH int) (float64, float64) {
	return sx - float64(screenW)/2, float64(screenH)/2 - sy
}
