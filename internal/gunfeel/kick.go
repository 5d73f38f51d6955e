package gunfeel

// KickState is the weapon-model displacement pair: how far the model is pushed
// back along its own forward axis and how many degrees its muzzle is rotated
// up, both purely visual.
type KickState struct {
	PositionOffset float64 // world units backward
	RotationOffset float64 // degrees muzzle-up
}

// KickAccumulator drives the weapon model's kickback-and-return spring. Each
// shot slams the model to the profile's kick pose; Advance eases it back to
// rest. Re-firing before the model has returned re-slams it, which is exactly
// the rhythmic pump sustained fire should show.
type KickAccumulator struct {
	state KickState
}

// OnFire applies one shot's kickback.
func (ka *KickAccumulator) OnFire(p *WeaponProfile, isAiming bool) {
	mul := 1.0
	if isAiming {
		mul = p.ADSRecoilMultiplier
	}
	ka.state.PositionOffset = p.GunKickbackDistance * mul
	ka.state.RotationOffset = p.GunKickbackRotation * mul
}

// Advance eases the model back toward rest. Degenerate dt is skipped.
func (ka *KickAccumulator) Advance(p *WeaponProfile, dt float64) {
	if !validTick(dt) {
		return
	}
	ka.state.PositionOffset = lerp(ka.state.PositionOffset, 0, dt*p.GunKickRecoverySpeed)
	ka.state.RotationOffset = lerp(ka.state.RotationOffset, 0, dt*p.GunKickRecoverySpeed)
}

// State returns the current kick pose.
func (ka *KickAccumulator) State() KickState {
	return ka.state
}

// Reset snaps the model back to rest.
func (ka *KickAccumulator) Reset() {
	ka.state = KickState{}
}
