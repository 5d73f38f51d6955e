package gunfeel

// The sinks are the outward faces of the feel engine: narrow interfaces the
// presentation layer implements. The simulation never knows what a camera or
// a reticle actually is, and an absent sink is a silent no-op, never a failed
// tick.

// CameraSink receives aim-affecting output. Recoil arrives as an additive
// delta so the camera can stack it on player look input; shake arrives as an
// absolute offset applied after recoil.
type CameraSink interface {
	AddRecoilDelta(pitch, yaw float64)
	SetShakeOffset(x, y float64)
}

// ReticleSink receives the reticle's visual offset and displayed size.
type ReticleSink interface {
	SetReticle(state ReticleState)
}

// WeaponModelSink receives the weapon model's kickback pose.
type WeaponModelSink interface {
	SetKick(state KickState)
}

// broadcaster fans one weapon's per-tick output to whatever sinks are wired.
type broadcaster struct {
	camera  CameraSink
	reticle ReticleSink
	model   WeaponModelSink
}

func (b *broadcaster) publishRecoilDelta(pitch, yaw float64) {
	if b.camera != nil && (pitch != 0 || yaw != 0) {
		b.camera.AddRecoilDelta(pitch, yaw)
	}
}

func (b *broadcaster) publishShake(x, y float64) {
	if b.camera != nil {
		b.camera.SetShakeOffset(x, y)
	}
}

func (b *broadcaster) publishReticle(state ReticleState) {
	if b.reticle != nil {
		b.reticle.SetReticle(state)
	}
}

func (b *broadcaster) publishKick(state KickState) {
	if b.model != nil {
		b.model.SetKick(state)
	}
}
