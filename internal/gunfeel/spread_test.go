package gunfeel

import (
	"math"
	"testing"
)

func TestSpread_BoundsHoldUnderArbitraryFire(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(21)
	maxAccum := p.MaxBulletSpread - p.BaseBulletSpread
	for i := 0; i < 500; i++ {
		sa.OnFire(&p, i%4 == 0)
		if i%5 == 0 {
			sa.Advance(&p, 1.0/60)
		}
		st := sa.State()
		if st.CrosshairSpreadPixels < 0 || st.CrosshairSpreadPixels > p.MaxCrosshairSpread {
			t.Fatalf("shot %d: crosshair px %.4f escaped [0, %.1f]", i, st.CrosshairSpreadPixels, p.MaxCrosshairSpread)
		}
		if st.BulletSpreadDegrees < 0 || st.BulletSpreadDegrees > maxAccum {
			t.Fatalf("shot %d: bullet spread %.4f escaped [0, %.2f]", i, st.BulletSpreadDegrees, maxAccum)
		}
	}
}

func TestSpread_DecaysToRest(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(22)
	for i := 0; i < 10; i++ {
		sa.OnFire(&p, false)
	}
	dt := 1.0 / 60
	prev := sa.State()
	for i := 0; i < 600; i++ {
		sa.Advance(&p, dt)
		st := sa.State()
		if st.CrosshairSpreadPixels > prev.CrosshairSpreadPixels+1e-12 {
			t.Fatalf("tick %d: crosshair spread grew with no fire", i)
		}
		if st.BulletSpreadDegrees > prev.BulletSpreadDegrees+1e-12 {
			t.Fatalf("tick %d: bullet spread grew with no fire", i)
		}
		prev = st
	}
	if prev.CrosshairSpreadPixels > 1e-6 || prev.BulletSpreadDegrees > 1e-6 {
		t.Fatalf("spread not settled after 10s: %+v", prev)
	}
}

func TestSpread_ShakeLifecycle(t *testing.T) {
	p := testProfile() // intensity 2.2, duration 0.12
	sa := NewSpreadAccumulator(23)
	sa.OnFire(&p, false)

	dt := 1.0 / 60
	sawOffset := false
	for i := 0; i < 6; i++ { // 0.1s, still inside the shake window
		sa.Advance(&p, dt)
		x, y := sa.ShakeOffset()
		mag := math.Hypot(x, y)
		if mag > 0 {
			sawOffset = true
			if math.Abs(mag-p.ScreenShakeIntensity) > 1e-9 {
				t.Fatalf("tick %d: shake magnitude %.4f, want %.4f", i, mag, p.ScreenShakeIntensity)
			}
		}
	}
	if !sawOffset {
		t.Fatal("no shake offset emitted inside the shake window")
	}

	// Run past the timer: the offset must settle to exactly zero and stay there.
	for i := 0; i < 30; i++ {
		sa.Advance(&p, dt)
	}
	if x, y := sa.ShakeOffset(); x != 0 || y != 0 {
		t.Fatalf("shake did not reset after expiry: (%.4f, %.4f)", x, y)
	}
	if sa.State().ShakeTimeRemaining != 0 || sa.State().ShakeMagnitude != 0 {
		t.Fatalf("shake state not cleared: %+v", sa.State())
	}
}

func TestSpread_NoShakeForShakelessWeapon(t *testing.T) {
	p, _ := ArsenalProfile("pistol") // intensity 0
	sa := NewSpreadAccumulator(24)
	sa.OnFire(&p, false)
	for i := 0; i < 10; i++ {
		sa.Advance(&p, 1.0/60)
		if x, y := sa.ShakeOffset(); x != 0 || y != 0 {
			t.Fatal("weapon with zero shake intensity emitted a shake offset")
		}
	}
}

func TestTotalSpread_StatePriority(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(25)

	base := sa.TotalBulletSpreadDegrees(&p, MovementContext{})
	if math.Abs(base-p.BaseBulletSpread) > 1e-9 {
		t.Fatalf("rest spread = %.4f, want base %.4f", base, p.BaseBulletSpread)
	}

	// Airborne dominates moving and crouching.
	airborne := sa.TotalBulletSpreadDegrees(&p, MovementContext{
		IsAirborne: true, IsMoving: true, MovementSpeedNormalized: 1, IsCrouching: true,
	})
	if math.Abs(airborne-p.BaseBulletSpread*p.AirborneSpreadMultiplier) > 1e-9 {
		t.Fatalf("airborne spread = %.4f, want %.4f", airborne, p.BaseBulletSpread*p.AirborneSpreadMultiplier)
	}

	// Moving lerps between 1 and the movement multiplier by normalized speed.
	half := sa.TotalBulletSpreadDegrees(&p, MovementContext{IsMoving: true, MovementSpeedNormalized: 0.5})
	wantMul := 1 + (p.MovementSpreadMultiplier-1)*0.5
	if math.Abs(half-p.BaseBulletSpread*wantMul) > 1e-9 {
		t.Fatalf("half-speed spread = %.4f, want %.4f", half, p.BaseBulletSpread*wantMul)
	}

	// Moving beats crouching.
	movingCrouch := sa.TotalBulletSpreadDegrees(&p, MovementContext{
		IsMoving: true, MovementSpeedNormalized: 1, IsCrouching: true,
	})
	if math.Abs(movingCrouch-p.BaseBulletSpread*p.MovementSpreadMultiplier) > 1e-9 {
		t.Fatalf("moving+crouch spread = %.4f, want moving %.4f", movingCrouch, p.BaseBulletSpread*p.MovementSpreadMultiplier)
	}

	// Crouching alone tightens the cone.
	crouch := sa.TotalBulletSpreadDegrees(&p, MovementContext{IsCrouching: true})
	if crouch >= base {
		t.Fatalf("crouch spread %.4f should be tighter than standing %.4f", crouch, base)
	}
}

func TestTotalSpread_ADSStacksWithState(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(26)
	moving := MovementContext{IsMoving: true, MovementSpeedNormalized: 1}
	adsMoving := moving
	adsMoving.IsAiming = true

	plain := sa.TotalBulletSpreadDegrees(&p, moving)
	ads := sa.TotalBulletSpreadDegrees(&p, adsMoving)
	if math.Abs(ads-plain*p.ADSSpreadMultiplier) > 1e-9 {
		t.Fatalf("ADS while moving = %.4f, want %.4f", ads, plain*p.ADSSpreadMultiplier)
	}
}

func TestTotalSpread_ClampedToMax(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(27)
	for i := 0; i < 100; i++ {
		sa.OnFire(&p, false)
	}
	got := sa.TotalBulletSpreadDegrees(&p, MovementContext{IsAirborne: true})
	if got > p.MaxBulletSpread {
		t.Fatalf("airborne max-accumulated spread %.4f exceeds maxBulletSpread %.4f", got, p.MaxBulletSpread)
	}
}

func TestTotalSpread_NaNContextDegrades(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(28)
	got := sa.TotalBulletSpreadDegrees(&p, MovementContext{
		IsMoving:                true,
		MovementSpeedNormalized: math.NaN(),
	})
	if math.IsNaN(got) {
		t.Fatal("NaN movement speed propagated into the spread value")
	}
	if math.Abs(got-p.BaseBulletSpread) > 1e-9 {
		t.Fatalf("NaN speed should degrade to standing spread, got %.4f", got)
	}
}

func TestSpread_DegenerateDtIsSkipped(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(29)
	sa.OnFire(&p, false)
	before := sa.State()
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		sa.Advance(&p, dt)
		if sa.State() != before {
			t.Fatalf("dt=%v mutated spread state", dt)
		}
	}
}

func TestSpread_ResetIdempotent(t *testing.T) {
	p := testProfile()
	sa := NewSpreadAccumulator(30)
	for i := 0; i < 20; i++ {
		sa.OnFire(&p, false)
	}
	sa.Reset()
	for i := 0; i < 100; i++ {
		sa.Advance(&p, 1.0/60)
	}
	if sa.State() != (SpreadState{}) {
		t.Fatalf("state drifted after reset: %+v", sa.State())
	}
	if x, y := sa.ShakeOffset(); x != 0 || y != 0 {
		t.Fatal("shake offset survived reset")
	}
}
