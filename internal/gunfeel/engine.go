package gunfeel

import (
	"fmt"
	"math/rand"
)

// WeaponID identifies one equipped weapon instance inside an Engine.
type WeaponID int

// weaponState is the per-instance triple (plus kick) of mutable feel state.
// Exactly one exists per equipped weapon; nothing is shared between instances.
type weaponState struct {
	profile WeaponProfile
	fire    *FireControl
	recoil  *RecoilAccumulator
	spread  *SpreadAccumulator
	kick    *KickAccumulator
	ctx     MovementContext
	clock   float64 // seconds of Advance this instance has seen
	shotRng *rand.Rand
}

// Engine owns the feel state for any number of weapon instances and is the
// single surface collaborators talk to. It is an explicit context object —
// one per player or bot — not a scene-global; every operation is keyed by
// WeaponID so independent shooters never share state.
//
// Single-threaded by contract: the host advances it once per simulation tick
// on the main update thread. Nothing here blocks or spawns work.
type Engine struct {
	weapons       map[WeaponID]*weaponState
	sinks         broadcaster
	reticleParams ReticleParams
	seedRng       *rand.Rand
}

// NewEngine creates an engine. seed drives every per-instance RNG, so a fixed
// seed gives a fully deterministic feel trace.
func NewEngine(seed int64) *Engine {
	return &Engine{
		weapons:       make(map[WeaponID]*weaponState),
		reticleParams: DefaultReticleParams,
		seedRng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- feel jitter, not crypto
	}
}

// SetCameraSink wires the camera consumer. A nil sink is a no-op.
func (e *Engine) SetCameraSink(s CameraSink) { e.sinks.camera = s }

// SetReticleSink wires the reticle UI consumer. A nil sink is a no-op.
func (e *Engine) SetReticleSink(s ReticleSink) { e.sinks.reticle = s }

// SetWeaponModelSink wires the weapon-sway consumer. A nil sink is a no-op.
func (e *Engine) SetWeaponModelSink(s WeaponModelSink) { e.sinks.model = s }

// SetReticleParams replaces the viewer projection used for reticle sizing.
func (e *Engine) SetReticleParams(p ReticleParams) { e.reticleParams = p }

// Equip creates (or replaces) the state triple for id, reset to zero, in one
// call — a switched-to weapon never inherits a previous weapon's state.
func (e *Engine) Equip(id WeaponID, profile WeaponProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("equip weapon %d: %w", id, err)
	}
	e.weapons[id] = &weaponState{
		profile: profile,
		fire:    NewFireControl(FireModeSemi),
		recoil:  NewRecoilAccumulator(e.seedRng.Int63()),
		spread:  NewSpreadAccumulator(e.seedRng.Int63()),
		kick:    &KickAccumulator{},
		shotRng: rand.New(rand.NewSource(e.seedRng.Int63())), // #nosec G404
	}
	return nil
}

// Unequip zeroes and discards id's state, cancelling any in-flight shake.
func (e *Engine) Unequip(id WeaponID) {
	if ws, ok := e.weapons[id]; ok {
		ws.recoil.Reset()
		ws.spread.Reset()
		ws.kick.Reset()
		ws.fire.Reset()
		delete(e.weapons, id)
	}
}

// Profile returns the equipped profile for id.
func (e *Engine) Profile(id WeaponID) (WeaponProfile, bool) {
	ws, ok := e.weapons[id]
	if !ok {
		return WeaponProfile{}, false
	}
	return ws.profile, true
}

// Equipped reports whether id currently has a state triple.
func (e *Engine) Equipped(id WeaponID) bool {
	_, ok := e.weapons[id]
	return ok
}

// Reset zeroes id's state in place without unequipping.
func (e *Engine) Reset(id WeaponID) {
	if ws, ok := e.weapons[id]; ok {
		ws.recoil.Reset()
		ws.spread.Reset()
		ws.kick.Reset()
		ws.fire.Reset()
	}
}

// SetMovementContext records the owning character's movement state for id,
// used by spread scaling and by TryFire's ADS decision.
func (e *Engine) SetMovementContext(id WeaponID, ctx MovementContext) {
	if ws, ok := e.weapons[id]; ok {
		ws.ctx = ctx.sanitized()
	}
}

// SetFireMode selects id's fire mode directly.
func (e *Engine) SetFireMode(id WeaponID, mode FireMode) {
	if ws, ok := e.weapons[id]; ok {
		ws.fire.SetMode(mode)
	}
}

// CycleFireMode steps id through semi → burst → auto.
func (e *Engine) CycleFireMode(id WeaponID) FireMode {
	if ws, ok := e.weapons[id]; ok {
		return ws.fire.CycleMode()
	}
	return FireModeSemi
}

// FireMode returns id's selected mode.
func (e *Engine) FireMode(id WeaponID) FireMode {
	if ws, ok := e.weapons[id]; ok {
		return ws.fire.Mode()
	}
	return FireModeSemi
}

// SetTriggerHeld feeds raw trigger state to id's fire control.
func (e *Engine) SetTriggerHeld(id WeaponID, held bool) {
	if ws, ok := e.weapons[id]; ok {
		ws.fire.SetTriggerHeld(held)
	}
}

// TryFire asks id's fire control for a shot at the instance's current clock.
// On success the shot's feel kicks are applied immediately. Ammo and reload
// gating belong to the caller, before this is invoked.
func (e *Engine) TryFire(id WeaponID) (FireEvent, bool) {
	ws, ok := e.weapons[id]
	if !ok {
		return FireEvent{}, false
	}
	ev, fired := ws.fire.TryFire(&ws.profile, ws.clock)
	if fired {
		e.applyFire(ws)
	}
	return ev, fired
}

// ApplyFire applies one shot's feel kicks for callers that run their own fire
// control (the weapon-firing collaborator invokes it once per actual shot).
func (e *Engine) ApplyFire(id WeaponID, isAiming bool) {
	if ws, ok := e.weapons[id]; ok {
		ctx := ws.ctx
		ctx.IsAiming = isAiming
		ws.ctx = ctx
		e.applyFire(ws)
	}
}

func (e *Engine) applyFire(ws *weaponState) {
	ws.recoil.OnFire(&ws.profile, ws.ctx.IsAiming)
	ws.spread.OnFire(&ws.profile, ws.ctx.IsAiming)
	ws.kick.OnFire(&ws.profile, ws.ctx.IsAiming)
}

// Advance runs one tick of decay for id and pushes the updated channels to
// the wired sinks. Must run exactly once per tick, fire or no fire; a
// degenerate dt advances nothing.
func (e *Engine) Advance(id WeaponID, dt float64) {
	ws, ok := e.weapons[id]
	if !ok || !validTick(dt) {
		return
	}
	ws.clock += dt

	ws.recoil.Advance(&ws.profile, dt)
	ws.spread.Advance(&ws.profile, dt)
	ws.kick.Advance(&ws.profile, dt)

	pitch, yaw := ws.recoil.Delta()
	e.sinks.publishRecoilDelta(pitch, yaw)
	e.sinks.publishShake(ws.spread.ShakeOffset())
	e.sinks.publishReticle(e.reticleState(ws))
	e.sinks.publishKick(ws.kick.State())
}

// AdvanceAll advances every equipped instance by dt.
func (e *Engine) AdvanceAll(dt float64) {
	for id := range e.weapons {
		e.Advance(id, dt)
	}
}

// Clock returns id's accumulated simulation time.
func (e *Engine) Clock(id WeaponID) float64 {
	if ws, ok := e.weapons[id]; ok {
		return ws.clock
	}
	return 0
}

// CameraRecoilDelta returns the additive aim delta from id's last Advance.
func (e *Engine) CameraRecoilDelta(id WeaponID) (pitch, yaw float64) {
	if ws, ok := e.weapons[id]; ok {
		return ws.recoil.Delta()
	}
	return 0, 0
}

// GetReticleState returns id's current reticle offset and displayed size.
func (e *Engine) GetReticleState(id WeaponID) ReticleState {
	ws, ok := e.weapons[id]
	if !ok {
		return ReticleState{SizePixels: e.reticleParams.BaseSize}
	}
	return e.reticleState(ws)
}

func (e *Engine) reticleState(ws *weaponState) ReticleState {
	cur := ws.recoil.Current()
	return ReticleState{
		OffsetPitch: cur.Pitch,
		OffsetYaw:   cur.Yaw,
		SizePixels: ReticleSize(e.reticleParams,
			ws.spread.State().CrosshairSpreadPixels,
			ws.spread.TotalBulletSpreadDegrees(&ws.profile, ws.ctx)),
	}
}

// WeaponKickOffset returns id's current weapon-model kick pose.
func (e *Engine) WeaponKickOffset(id WeaponID) KickState {
	if ws, ok := e.weapons[id]; ok {
		return ws.kick.State()
	}
	return KickState{}
}

// ScreenShake returns id's camera-shake offset for the current tick.
func (e *Engine) ScreenShake(id WeaponID) (x, y float64) {
	if ws, ok := e.weapons[id]; ok {
		return ws.spread.ShakeOffset()
	}
	return 0, 0
}

// TotalSpreadDegrees returns id's current full spread cone half-angle.
func (e *Engine) TotalSpreadDegrees(id WeaponID) float64 {
	if ws, ok := e.weapons[id]; ok {
		return ws.spread.TotalBulletSpreadDegrees(&ws.profile, ws.ctx)
	}
	return 0
}

// SampleFireDirection draws one direction through id's current spread cone.
// The ballistics collaborator calls it immediately before creating each
// shot's ray or projectile.
func (e *Engine) SampleFireDirection(id WeaponID, base Vec3) Vec3 {
	ws, ok := e.weapons[id]
	if !ok {
		return base.Normalize()
	}
	return SampleDirection(ws.shotRng, base, ws.spread.TotalBulletSpreadDegrees(&ws.profile, ws.ctx))
}

// SamplePelletDirections draws the profile's full pellet count through the
// cone, one independent draw per pellet.
func (e *Engine) SamplePelletDirections(id WeaponID, base Vec3) []Vec3 {
	ws, ok := e.weapons[id]
	if !ok {
		return []Vec3{base.Normalize()}
	}
	spread := ws.spread.TotalBulletSpreadDegrees(&ws.profile, ws.ctx)
	return SamplePellets(ws.shotRng, base, spread, ws.profile.Pellets)
}
