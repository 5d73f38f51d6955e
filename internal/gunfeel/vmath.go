package gunfeel

import "math"

// lerp interpolates a toward b by t, with t clamped to [0,1] so that large
// frame times can never overshoot the target and oscillate.
func lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// validTick reports whether dt is usable for an Advance step. Zero, negative,
// NaN and Inf frame times are skipped entirely so they can never poison the
// accumulators.
func validTick(dt float64) bool {
	return dt > 0 && !math.IsNaN(dt) && !math.IsInf(dt, 0)
}

// finiteOr replaces NaN/Inf with fallback.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Vec3 is a direction or offset in world space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return v
	}
	return v.Scale(1 / l)
}

// AngleBetweenDegrees returns the angle between two directions in degrees.
func AngleBetweenDegrees(a, b Vec3) float64 {
	d := clamp(a.Normalize().Dot(b.Normalize()), -1, 1)
	return math.Acos(d) * 180 / math.Pi
}
