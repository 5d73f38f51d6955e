package gunfeel

import "fmt"

// RangeSim is a headless firing-range harness used by tests and the report
// CLI. It owns an Engine with a single equipped weapon, drives the trigger
// from scripted hold windows, and records everything to a FeedLog.
type RangeSim struct {
	Engine *Engine
	Log    *FeedLog

	Weapon   WeaponID
	TickRate float64 // ticks per second
	Tick     int

	profile  WeaponProfile
	mode     FireMode
	movement MovementContext
	seed     int64
	verbose  bool
	holds    [][2]float64 // [from, to) seconds the trigger is held

	// Sink capture: cumulative camera recoil and last-seen channel values,
	// exercising the push path alongside the polling accessors.
	CameraPitch, CameraYaw float64
	ShakeX, ShakeY         float64
	Reticle                ReticleState
	Kick                   KickState
}

// RangeOption configures a RangeSim during construction.
type RangeOption func(*RangeSim)

// WithSeed sets the RNG seed for deterministic sessions.
func WithSeed(seed int64) RangeOption {
	return func(rs *RangeSim) { rs.seed = seed }
}

// WithTickRate sets the simulation tick rate in Hz (default 60).
func WithTickRate(hz float64) RangeOption {
	return func(rs *RangeSim) { rs.TickRate = hz }
}

// WithWeapon equips the given profile (default: the stock rifle).
func WithWeapon(p WeaponProfile) RangeOption {
	return func(rs *RangeSim) { rs.profile = p }
}

// WithFireMode selects the starting fire mode (default semi).
func WithFireMode(mode FireMode) RangeOption {
	return func(rs *RangeSim) { rs.mode = mode }
}

// WithMovement sets the movement context held for the whole session.
func WithMovement(ctx MovementContext) RangeOption {
	return func(rs *RangeSim) { rs.movement = ctx }
}

// WithVerbose records per-tick channel values, not just discrete events.
func WithVerbose(v bool) RangeOption {
	return func(rs *RangeSim) { rs.verbose = v }
}

// WithTriggerPull schedules the trigger to be held for [from, to) seconds.
// Windows may be passed in any order and may not overlap.
func WithTriggerPull(from, to float64) RangeOption {
	return func(rs *RangeSim) { rs.holds = append(rs.holds, [2]float64{from, to}) }
}

// NewRangeSim builds a harness with one equipped weapon. Panics only on an
// invalid built-in profile, which is a programming error in the harness user.
func NewRangeSim(opts ...RangeOption) *RangeSim {
	rifle, _ := ArsenalProfile("rifle")
	rs := &RangeSim{
		Weapon:   WeaponID(1),
		TickRate: 60,
		profile:  rifle,
		mode:     FireModeSemi,
		seed:     1,
	}
	for _, o := range opts {
		o(rs)
	}
	rs.Log = NewFeedLog(rs.verbose)
	rs.Engine = NewEngine(rs.seed)
	if err := rs.Engine.Equip(rs.Weapon, rs.profile); err != nil {
		panic(fmt.Sprintf("range sim: %v", err))
	}
	rs.Engine.SetFireMode(rs.Weapon, rs.mode)
	rs.Engine.SetMovementContext(rs.Weapon, rs.movement)
	rs.Engine.SetCameraSink(rs)
	rs.Engine.SetReticleSink(rs)
	rs.Engine.SetWeaponModelSink(rs)
	return rs
}

// AddRecoilDelta implements CameraSink.
func (rs *RangeSim) AddRecoilDelta(pitch, yaw float64) {
	rs.CameraPitch += pitch
	rs.CameraYaw += yaw
}

// SetShakeOffset implements CameraSink.
func (rs *RangeSim) SetShakeOffset(x, y float64) {
	rs.ShakeX, rs.ShakeY = x, y
}

// SetReticle implements ReticleSink.
func (rs *RangeSim) SetReticle(state ReticleState) {
	rs.Reticle = state
}

// SetKick implements WeaponModelSink.
func (rs *RangeSim) SetKick(state KickState) {
	rs.Kick = state
}

// triggerHeldAt reports whether the script holds the trigger at time t.
func (rs *RangeSim) triggerHeldAt(t float64) bool {
	for _, w := range rs.holds {
		if t >= w[0] && t < w[1] {
			return true
		}
	}
	return false
}

// RunTicks advances the session n ticks, firing per the trigger script.
func (rs *RangeSim) RunTicks(n int) {
	dt := 1.0 / rs.TickRate
	for i := 0; i < n; i++ {
		rs.Tick++
		now := rs.Engine.Clock(rs.Weapon)

		rs.Engine.SetTriggerHeld(rs.Weapon, rs.triggerHeldAt(now))
		if ev, fired := rs.Engine.TryFire(rs.Weapon); fired {
			rs.Log.Add(rs.Tick, rs.profile.Name, "fire", "shot",
				fmt.Sprintf("%s idx=%d t=%.3f", ev.Mode, ev.BurstIndex, ev.Time), ev.Time)
		}
		rs.Engine.Advance(rs.Weapon, dt)

		ret := rs.Engine.GetReticleState(rs.Weapon)
		rs.Log.AddVerbose(rs.Tick, rs.profile.Name, "recoil", "pitch",
			fmt.Sprintf("%.4f", ret.OffsetPitch), ret.OffsetPitch)
		rs.Log.AddVerbose(rs.Tick, rs.profile.Name, "recoil", "yaw",
			fmt.Sprintf("%.4f", ret.OffsetYaw), ret.OffsetYaw)
		rs.Log.AddVerbose(rs.Tick, rs.profile.Name, "spread", "degrees",
			fmt.Sprintf("%.4f", rs.Engine.TotalSpreadDegrees(rs.Weapon)),
			rs.Engine.TotalSpreadDegrees(rs.Weapon))
		rs.Log.AddVerbose(rs.Tick, rs.profile.Name, "spread", "reticle_px",
			fmt.Sprintf("%.2f", ret.SizePixels), ret.SizePixels)
		sx, sy := rs.Engine.ScreenShake(rs.Weapon)
		if sx != 0 || sy != 0 {
			rs.Log.AddVerbose(rs.Tick, rs.profile.Name, "shake", "offset",
				fmt.Sprintf("(%.2f,%.2f)", sx, sy), 0)
		}
	}
}

// RunSeconds advances the session for the given duration at the tick rate.
func (rs *RangeSim) RunSeconds(s float64) {
	rs.RunTicks(int(s*rs.TickRate + 0.5))
}

// ShotTimes returns the fire times recorded so far, in order.
func (rs *RangeSim) ShotTimes() []float64 {
	var out []float64
	for _, e := range rs.Log.Filter("fire", "shot") {
		out = append(out, e.NumVal)
	}
	return out
}
