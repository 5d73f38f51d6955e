package gunfeel

import "math"

// ReticleParams describes the viewer the reticle is projected for. The engine
// needs these to turn ballistic degrees into on-screen pixels.
type ReticleParams struct {
	FOVDegrees   float64 // vertical field of view
	ScreenHeight float64 // render-surface pixel height
	BaseSize     float64 // reticle size at zero spread, pixels
	MaxSizeMul   float64 // reticle never exceeds BaseSize * MaxSizeMul
}

// DefaultReticleParams is a 1080p 60° vertical FOV viewer.
var DefaultReticleParams = ReticleParams{
	FOVDegrees:   60,
	ScreenHeight: 1080,
	BaseSize:     14,
	MaxSizeMul:   6,
}

// SpreadDegreesToPixels projects a spread half-angle onto the screen as a
// pixel radius for the given viewer.
func SpreadDegreesToPixels(spreadDegrees, fovDegrees, screenHeight float64) float64 {
	if spreadDegrees <= 0 || fovDegrees <= 0 || screenHeight <= 0 {
		return 0
	}
	halfFOV := fovDegrees / 2 * math.Pi / 180
	return math.Tan(spreadDegrees*math.Pi/180) * (screenHeight / 2) / math.Tan(halfFOV)
}

// ReticleSize returns the displayed reticle size given both spread channels:
// the cosmetic per-shot pixel kick and the true ballistic angle projected to
// pixels. The reticle reflects whichever channel is currently larger so it
// never under-represents actual dispersion.
func ReticleSize(p ReticleParams, crosshairSpreadPixels, ballisticSpreadDegrees float64) float64 {
	ballisticPx := SpreadDegreesToPixels(ballisticSpreadDegrees, p.FOVDegrees, p.ScreenHeight)
	grow := math.Max(crosshairSpreadPixels, ballisticPx*2)
	return clamp(p.BaseSize+grow, p.BaseSize, p.BaseSize*p.MaxSizeMul)
}

// ReticleState is what the reticle UI consumes each tick: the recoil offset
// it should draw at, and the size it should draw.
type ReticleState struct {
	OffsetPitch float64 // degrees, absolute applied recoil
	OffsetYaw   float64
	SizePixels  float64
}
