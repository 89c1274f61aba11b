package render

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RgbBackground = RGB{26, 27, 38}
	RgbBody       = RGB{245, 222, 179}
	RgbBodyHeld   = RGB{255, 200, 200}
	RgbFace       = RGB{40, 30, 30}
	RgbShockwave  = RGB{255, 230, 120}
	RgbStatusFg   = RGB{169, 177, 214}
	RgbStatusBg   = RGB{36, 40, 59}
)

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Scale multiplies each channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp interpolates from a to b, t clamped to [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	t = max(0, min(1, t))
	return RGB{
		R: clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// FromUnit converts a [0, 1] float triple such as a glow color
func FromUnit(c [3]float64) RGB {
	return RGB{clamp(c[0] * 255), clamp(c[1] * 255), clamp(c[2] * 255)}
}
