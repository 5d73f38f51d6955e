package gunfeel

import (
	"math"
	"math/rand"
)

// MovementContext is the per-tick snapshot of the owning character's movement
// state, supplied by the player controller. It modulates ballistic spread but
// is never stored beyond the tick it describes.
type MovementContext struct {
	IsAiming                bool
	IsMoving                bool
	MovementSpeedNormalized float64 // 0 = standing, 1 = full sprint
	IsAirborne              bool
	IsCrouching             bool
}

// sanitized returns a copy with NaN/Inf fields degraded to their zero values
// and the speed clamped to [0,1].
func (mc MovementContext) sanitized() MovementContext {
	mc.MovementSpeedNormalized = clamp01(finiteOr(mc.MovementSpeedNormalized, 0))
	return mc
}

// SpreadState is the mutable spread triple owned by one SpreadAccumulator.
type SpreadState struct {
	CrosshairSpreadPixels float64
	BulletSpreadDegrees   float64 // accumulated on top of the profile's base spread
	ShakeTimeRemaining    float64
	ShakeMagnitude        float64
}

// SpreadAccumulator owns reticle-pixel spread, ballistic-angle spread, and the
// screen-shake timer for one weapon instance. The two spread channels are
// independent: crosshair pixels are cosmetic per-shot feedback, bullet degrees
// are the true dispersion the sampler fires through.
type SpreadAccumulator struct {
	state SpreadState

	// Current shake offset pushed to the camera, and whether a terminating
	// zero still needs to be emitted after the timer runs out.
	shakeX, shakeY float64
	shakeSettling  bool

	rng *rand.Rand
}

// NewSpreadAccumulator creates an accumulator with its own seeded RNG for the
// per-tick shake offset.
func NewSpreadAccumulator(seed int64) *SpreadAccumulator {
	return &SpreadAccumulator{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- feel jitter, not crypto
	}
}

// OnFire applies one shot's spread kick and restarts the shake timer.
func (sa *SpreadAccumulator) OnFire(p *WeaponProfile, isAiming bool) {
	mul := 1.0
	if isAiming {
		mul = p.ADSRecoilMultiplier
	}

	sa.state.CrosshairSpreadPixels = clamp(
		sa.state.CrosshairSpreadPixels+p.CrosshairSpreadPerShot*mul,
		0, p.MaxCrosshairSpread)
	sa.state.BulletSpreadDegrees = clamp(
		sa.state.BulletSpreadDegrees+p.BulletSpreadPerShot*mul,
		0, p.MaxBulletSpread-p.BaseBulletSpread)

	if p.ScreenShakeIntensity > 0 {
		sa.state.ShakeMagnitude = p.ScreenShakeIntensity * mul
		sa.state.ShakeTimeRemaining = p.ScreenShakeDuration
		sa.shakeSettling = true
	}
}

// Advance runs one tick of decay. Degenerate dt leaves all state untouched.
func (sa *SpreadAccumulator) Advance(p *WeaponProfile, dt float64) {
	if !validTick(dt) {
		return
	}

	sa.state.CrosshairSpreadPixels = lerp(sa.state.CrosshairSpreadPixels, 0, dt*p.CrosshairRecoverySpeed)
	sa.state.BulletSpreadDegrees = lerp(sa.state.BulletSpreadDegrees, 0, dt*p.BulletSpreadRecoverySpeed)

	sa.state.ShakeTimeRemaining = math.Max(0, sa.state.ShakeTimeRemaining-dt)
	if sa.state.ShakeTimeRemaining > 0 {
		// Fresh random offset each tick at the current magnitude.
		angle := sa.rng.Float64() * 2 * math.Pi
		sa.shakeX = math.Cos(angle) * sa.state.ShakeMagnitude
		sa.shakeY = math.Sin(angle) * sa.state.ShakeMagnitude
	} else if sa.shakeSettling {
		// Timer just expired: emit a single reset so the camera snaps home.
		sa.shakeX = 0
		sa.shakeY = 0
		sa.state.ShakeMagnitude = 0
		sa.shakeSettling = false
	}
}

// State returns a copy of the current spread state.
func (sa *SpreadAccumulator) State() SpreadState {
	return sa.state
}

// ShakeOffset returns the camera-shake offset for the current tick.
func (sa *SpreadAccumulator) ShakeOffset() (x, y float64) {
	return sa.shakeX, sa.shakeY
}

// TotalBulletSpreadDegrees is the full half-angle of the spread cone right
// now: base plus accumulated, scaled by the movement state and ADS.
//
// The state priority airborne > moving > crouching is a deliberate tie-break:
// airborne is the least accurate state and must win even while the character
// is also nominally "moving" in mid-air.
func (sa *SpreadAccumulator) TotalBulletSpreadDegrees(p *WeaponProfile, ctx MovementContext) float64 {
	ctx = ctx.sanitized()

	stateMul := 1.0
	switch {
	case ctx.IsAirborne:
		stateMul = p.AirborneSpreadMultiplier
	case ctx.IsMoving:
		stateMul = lerp(1, p.MovementSpreadMultiplier, ctx.MovementSpeedNormalized)
	case ctx.IsCrouching:
		stateMul = p.CrouchSpreadMultiplier
	}
	if ctx.IsAiming {
		stateMul *= p.ADSSpreadMultiplier
	}

	total := (p.BaseBulletSpread + sa.state.BulletSpreadDegrees) * stateMul
	return clamp(total, 0, p.MaxBulletSpread)
}

// Reset zeroes all spread state and cancels any in-flight shake.
func (sa *SpreadAccumulator) Reset() {
	sa.state = SpreadState{}
	sa.shakeX = 0
	sa.shakeY = 0
	sa.shakeSettling = false
}
