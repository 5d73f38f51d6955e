package gunfeel

import (
	"math"
	"math/rand"
)

// spreadEpsilon is the cone half-angle below which sampling is skipped and the
// base direction returned as-is, avoiding rotation noise at zero spread.
const spreadEpsilon = 1e-6

// SampleDirection draws one fire direction from the spread cone of half-angle
// spreadAngleDegrees around baseDirection.
//
// The draw is uniform per unit solid angle across the cone's projected disk:
// θ uniform on the full circle, radius √U·angle. The square root matters — a
// radius drawn uniformly in [0, angle] would pile shots into the cone's
// center, because the area of an annulus grows with its radius.
//
// Pure function over the supplied rng: no hidden state, safe to call once per
// pellet for multi-projectile weapons within the same tick.
func SampleDirection(rng *rand.Rand, baseDirection Vec3, spreadAngleDegrees float64) Vec3 {
	base := baseDirection.Normalize()
	if spreadAngleDegrees <= spreadEpsilon {
		return base
	}

	theta := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64()) * spreadAngleDegrees

	pitchOff := r * math.Cos(theta) * math.Pi / 180
	yawOff := r * math.Sin(theta) * math.Pi / 180

	// Orthonormal frame around the base direction. World up breaks the frame
	// when aiming straight up/down, so fall back to world X there.
	up := Vec3{Y: 1}
	if math.Abs(base.Dot(up)) > 0.999 {
		up = Vec3{X: 1}
	}
	right := up.Cross(base).Normalize()
	localUp := base.Cross(right)

	// Spherical offset: yaw about localUp, pitch about right.
	dir := base.Scale(math.Cos(pitchOff) * math.Cos(yawOff)).
		Add(right.Scale(math.Cos(pitchOff) * math.Sin(yawOff))).
		Add(localUp.Scale(math.Sin(pitchOff)))
	return dir.Normalize()
}

// SamplePellets draws n independent directions from the same cone, one per
// pellet of a multi-projectile shot.
func SamplePellets(rng *rand.Rand, baseDirection Vec3, spreadAngleDegrees float64, n int) []Vec3 {
	if n < 1 {
		n = 1
	}
	out := make([]Vec3, n)
	for i := range out {
		out[i] = SampleDirection(rng, baseDirection, spreadAngleDegrees)
	}
	return out
}
