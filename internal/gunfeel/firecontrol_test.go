package gunfeel

import "testing"

func testProfile() WeaponProfile {
	p, ok := ArsenalProfile("rifle")
	if !ok {
		panic("rifle profile missing from arsenal")
	}
	return p
}

func TestSemi_OneShotPerPress(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeSemi)

	fc.SetTriggerHeld(true)
	if _, fired := fc.TryFire(&p, 0); !fired {
		t.Fatal("fresh press should fire")
	}
	// Held trigger: no more shots, no matter how much time passes.
	for i := 1; i <= 50; i++ {
		if _, fired := fc.TryFire(&p, float64(i)); fired {
			t.Fatalf("semi fired again at t=%d without a release", i)
		}
	}
	fc.SetTriggerHeld(false)
	fc.SetTriggerHeld(true)
	if _, fired := fc.TryFire(&p, 60); !fired {
		t.Fatal("re-press after release should fire")
	}
}

func TestSemi_RespectsFireInterval(t *testing.T) {
	p := testProfile() // 10 rps
	fc := NewFireControl(FireModeSemi)

	fc.SetTriggerHeld(true)
	fc.TryFire(&p, 0)
	fc.SetTriggerHeld(false)
	fc.SetTriggerHeld(true)
	if _, fired := fc.TryFire(&p, 0.05); fired {
		t.Fatal("second press inside the fire interval should not fire")
	}
	if _, fired := fc.TryFire(&p, 0.2); !fired {
		t.Fatal("second press past the fire interval should fire")
	}
}

func TestAuto_PacedByFireRate(t *testing.T) {
	p := testProfile() // interval 0.1s
	fc := NewFireControl(FireModeAuto)
	fc.SetTriggerHeld(true)

	var times []float64
	dt := 1.0 / 240
	for i := 0; i < 240; i++ { // 1 second
		now := float64(i) * dt
		if ev, fired := fc.TryFire(&p, now); fired {
			times = append(times, ev.Time)
		}
	}
	if len(times) < 9 || len(times) > 11 {
		t.Fatalf("expected ~10 shots in 1s of auto at 10rps, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if gap := times[i] - times[i-1]; gap < p.FireInterval()-1e-9 {
			t.Fatalf("auto shots %d,%d only %.4fs apart", i-1, i, gap)
		}
	}
}

func TestAuto_StopsOnRelease(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeAuto)
	fc.SetTriggerHeld(true)
	fc.TryFire(&p, 0)
	fc.SetTriggerHeld(false)
	if _, fired := fc.TryFire(&p, 10); fired {
		t.Fatal("auto must not fire with the trigger released")
	}
}

func TestBurst_ThreeShotsThenCooldown(t *testing.T) {
	p := testProfile() // burst 3, interval 0.1, cooldown 0.2
	fc := NewFireControl(FireModeBurst)
	fc.SetTriggerHeld(true)

	var times []float64
	var idxs []int
	dt := 1.0 / 240
	for i := 0; i < 240; i++ { // 1 second
		now := float64(i) * dt
		if ev, fired := fc.TryFire(&p, now); fired {
			times = append(times, ev.Time)
			idxs = append(idxs, ev.BurstIndex)
		}
	}
	if len(times) != 6 {
		t.Fatalf("expected 6 shots (two bursts) in 1s, got %d at %v", len(times), times)
	}
	want := []int{0, 1, 2, 0, 1, 2}
	for i, idx := range idxs {
		if idx != want[i] {
			t.Fatalf("burst index sequence %v, want %v", idxs, want)
		}
	}
	// Inter-burst gap must include the cooldown on top of the fire interval.
	gap := times[3] - times[2]
	if gap < p.FireInterval()+p.BurstCooldownSeconds-1e-9 {
		t.Fatalf("inter-burst gap %.4fs, want >= %.4fs", gap, p.FireInterval()+p.BurstCooldownSeconds)
	}
	// Never more than 3 shots inside any window shorter than the cooldown.
	for i := 0; i+3 < len(times); i++ {
		if times[i+3]-times[i] < p.BurstCooldownSeconds {
			t.Fatalf("4 shots within %.4fs window", times[i+3]-times[i])
		}
	}
}

func TestBurst_CompletesAfterRelease(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeBurst)
	fc.SetTriggerHeld(true)
	if _, fired := fc.TryFire(&p, 0); !fired {
		t.Fatal("burst should start on press")
	}
	// Release mid-burst: the started burst still runs to completion.
	fc.SetTriggerHeld(false)
	if _, fired := fc.TryFire(&p, 0.11); !fired {
		t.Fatal("shot 2 of a started burst should fire after release")
	}
	if _, fired := fc.TryFire(&p, 0.22); !fired {
		t.Fatal("shot 3 of a started burst should fire after release")
	}
	// But no new burst starts while released.
	if _, fired := fc.TryFire(&p, 5); fired {
		t.Fatal("new burst must not start with the trigger released")
	}
}

func TestBurst_NoNewBurstDuringCooldown(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeBurst)
	fc.SetTriggerHeld(true)
	fc.TryFire(&p, 0)
	fc.TryFire(&p, 0.11)
	fc.TryFire(&p, 0.22) // burst done; next allowed at 0.22+0.1+0.2
	if _, fired := fc.TryFire(&p, 0.4); fired {
		t.Fatal("held trigger must not start a burst inside the cooldown")
	}
	if _, fired := fc.TryFire(&p, 0.6); !fired {
		t.Fatal("held trigger should start a new burst after the cooldown")
	}
}

func TestModeSwitch_ResetsPressAndBurstOnly(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeSemi)
	fc.SetTriggerHeld(true)
	fc.TryFire(&p, 0)

	fc.SetMode(FireModeAuto)
	if fc.Mode() != FireModeAuto {
		t.Fatal("mode should switch")
	}
	// The fire-time gate survives the switch: no cooldown skipping.
	if _, fired := fc.TryFire(&p, 0.05); fired {
		t.Fatal("mode switch must not bypass the fire interval")
	}
	if _, fired := fc.TryFire(&p, 0.2); !fired {
		t.Fatal("auto should fire once the interval has elapsed")
	}
}

func TestCycleMode_Order(t *testing.T) {
	fc := NewFireControl(FireModeSemi)
	if fc.CycleMode() != FireModeBurst {
		t.Fatal("semi should cycle to burst")
	}
	if fc.CycleMode() != FireModeAuto {
		t.Fatal("burst should cycle to auto")
	}
	if fc.CycleMode() != FireModeSemi {
		t.Fatal("auto should cycle back to semi")
	}
}

func TestFireControl_Reset(t *testing.T) {
	p := testProfile()
	fc := NewFireControl(FireModeAuto)
	fc.SetTriggerHeld(true)
	fc.TryFire(&p, 0)
	fc.Reset()
	if fc.TriggerHeld() {
		t.Fatal("reset should release the trigger")
	}
	fc.SetTriggerHeld(true)
	if _, fired := fc.TryFire(&p, 0); !fired {
		t.Fatal("reset should clear the fire-time gate")
	}
}
