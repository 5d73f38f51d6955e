package gunfeel

// FireEvent is one discrete shot emitted by the fire-control state machine.
// It is purely a timing/mode artifact: ammo, reloads and hit resolution are
// owned by the caller.
type FireEvent struct {
	Time       float64  // simulation time the shot fired
	Mode       FireMode // mode active when it fired
	BurstIndex int      // 0-based index within the burst (always 0 outside burst mode)
}

// FireControl turns raw trigger input plus the selected fire mode into a
// sequence of discrete fire events. It never touches recoil or spread state;
// the engine applies those when an event is actually emitted.
type FireControl struct {
	mode                  FireMode
	triggerHeld           bool
	firedSinceTriggerDown bool
	burstRemaining        int // shots left in the burst currently in flight
	nextAllowedFireTime   float64
}

// NewFireControl returns a fire control in the given starting mode.
func NewFireControl(mode FireMode) *FireControl {
	return &FireControl{mode: mode}
}

// Mode returns the currently selected fire mode.
func (fc *FireControl) Mode() FireMode {
	return fc.mode
}

// TriggerHeld reports the last trigger state fed in.
func (fc *FireControl) TriggerHeld() bool {
	return fc.triggerHeld
}

// SetMode selects a fire mode. Switching resets the per-press latch and any
// pending burst, but deliberately leaves the fire-time gate alone so mode
// cycling cannot be used to skip a cooldown.
func (fc *FireControl) SetMode(mode FireMode) {
	if mode == fc.mode {
		return
	}
	fc.mode = mode
	fc.firedSinceTriggerDown = false
	fc.burstRemaining = 0
}

// CycleMode advances semi → burst → auto → semi.
func (fc *FireControl) CycleMode() FireMode {
	fc.SetMode(fc.mode.Next())
	return fc.mode
}

// SetTriggerHeld feeds the raw trigger state. Releasing clears the per-press
// latch; a burst already in flight is NOT interrupted — release only prevents
// the next burst from starting.
func (fc *FireControl) SetTriggerHeld(held bool) {
	if fc.triggerHeld && !held {
		fc.firedSinceTriggerDown = false
	}
	fc.triggerHeld = held
}

// TryFire emits at most one fire event for the current tick. now is the
// caller's simulation clock in seconds and must be monotonic.
func (fc *FireControl) TryFire(p *WeaponProfile, now float64) (FireEvent, bool) {
	if now < fc.nextAllowedFireTime {
		return FireEvent{}, false
	}

	switch fc.mode {
	case FireModeSemi:
		if !fc.triggerHeld || fc.firedSinceTriggerDown {
			return FireEvent{}, false
		}
		fc.firedSinceTriggerDown = true
		fc.nextAllowedFireTime = now + p.FireInterval()
		return FireEvent{Time: now, Mode: fc.mode}, true

	case FireModeBurst:
		if fc.burstRemaining == 0 {
			// Starting a new burst needs a held trigger; continuing one does not.
			if !fc.triggerHeld {
				return FireEvent{}, false
			}
			fc.burstRemaining = p.BurstShotCount
			fc.firedSinceTriggerDown = true
		}
		idx := p.BurstShotCount - fc.burstRemaining
		fc.burstRemaining--
		if fc.burstRemaining == 0 {
			// Last round of the burst: the next burst waits out the normal
			// interval plus the dedicated burst cooldown.
			fc.nextAllowedFireTime = now + p.FireInterval() + p.BurstCooldownSeconds
		} else {
			fc.nextAllowedFireTime = now + p.FireInterval()
		}
		return FireEvent{Time: now, Mode: fc.mode, BurstIndex: idx}, true

	case FireModeAuto:
		if !fc.triggerHeld {
			return FireEvent{}, false
		}
		fc.nextAllowedFireTime = now + p.FireInterval()
		return FireEvent{Time: now, Mode: fc.mode}, true
	}
	return FireEvent{}, false
}

// Reset returns the state machine to its zero state in the current mode.
func (fc *FireControl) Reset() {
	fc.triggerHeld = false
	fc.firedSinceTriggerDown = false
	fc.burstRemaining = 0
	fc.nextAllowedFireTime = 0
}
