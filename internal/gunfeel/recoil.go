package gunfeel

import "math/rand"

// RecoilState is the aim-deflection pair driven by the accumulator. Pitch is
// negative-up: firing pushes pitch toward -maxVerticalRecoil, never below rest
// (0). Yaw wanders inside ±maxHorizontalRecoil.
type RecoilState struct {
	Pitch float64
	Yaw   float64
}

// RecoilAccumulator owns one weapon instance's aim-deflection dynamics.
//
// It is a two-stage system: OnFire jumps the target instantly, then every tick
// the applied (current) value chases the target at recoilSnappiness while the
// target itself settles back to rest at recoilRecoverySpeed. A single
// exponential decay would produce the same pixels but a mushier camera feel —
// the instant target jump plus smoothed catch-up is what reads as "snappy".
type RecoilAccumulator struct {
	current RecoilState
	target  RecoilState

	// Additive delta produced by the last Advance, consumed by the camera.
	deltaPitch float64
	deltaYaw   float64

	rng *rand.Rand
}

// NewRecoilAccumulator creates an accumulator with its own seeded RNG for the
// horizontal kick draw.
func NewRecoilAccumulator(seed int64) *RecoilAccumulator {
	return &RecoilAccumulator{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- feel jitter, not crypto
	}
}

// OnFire applies one shot's instantaneous kick to the target deflection.
func (ra *RecoilAccumulator) OnFire(p *WeaponProfile, isAiming bool) {
	mul := 1.0
	if isAiming {
		mul = p.ADSRecoilMultiplier
	}
	verticalKick := p.VerticalRecoil * mul
	horizontalKick := (ra.rng.Float64()*2 - 1) * p.HorizontalRecoil * mul

	ra.target.Pitch = clamp(ra.target.Pitch-verticalKick, -p.MaxVerticalRecoil, 0)
	ra.target.Yaw = clamp(ra.target.Yaw+horizontalKick, -p.MaxHorizontalRecoil, p.MaxHorizontalRecoil)
}

// Advance runs one tick of the chase/settle dynamics. Runs every tick whether
// or not a shot fired. Degenerate dt leaves all state untouched.
func (ra *RecoilAccumulator) Advance(p *WeaponProfile, dt float64) {
	if !validTick(dt) {
		ra.deltaPitch = 0
		ra.deltaYaw = 0
		return
	}

	prev := ra.current
	ra.current.Pitch = lerp(ra.current.Pitch, ra.target.Pitch, dt*p.RecoilSnappiness)
	ra.current.Yaw = lerp(ra.current.Yaw, ra.target.Yaw, dt*p.RecoilSnappiness)
	ra.target.Pitch = lerp(ra.target.Pitch, 0, dt*p.RecoilRecoverySpeed)
	ra.target.Yaw = lerp(ra.target.Yaw, 0, dt*p.RecoilRecoverySpeed)

	ra.deltaPitch = ra.current.Pitch - prev.Pitch
	ra.deltaYaw = ra.current.Yaw - prev.Yaw
}

// Current returns the applied deflection, forwarded to the reticle as an
// absolute visual offset.
func (ra *RecoilAccumulator) Current() RecoilState {
	return ra.current
}

// Target returns the deflection the applied value is chasing.
func (ra *RecoilAccumulator) Target() RecoilState {
	return ra.target
}

// Delta returns the change in applied deflection from the last Advance. The
// camera adds this on top of player look input, so the engine never fights
// the player for absolute aim.
func (ra *RecoilAccumulator) Delta() (pitch, yaw float64) {
	return ra.deltaPitch, ra.deltaYaw
}

// Reset zeroes all recoil state, e.g. on weapon switch.
func (ra *RecoilAccumulator) Reset() {
	ra.current = RecoilState{}
	ra.target = RecoilState{}
	ra.deltaPitch = 0
	ra.deltaYaw = 0
}
