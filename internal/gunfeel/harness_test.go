package gunfeel

import (
	"math"
	"testing"
)

func TestRangeSim_BurstScenario(t *testing.T) {
	// fireRate=10, burst of 3, 0.2s cooldown: a full-second hold produces two
	// complete bursts with a cooldown-sized gap between them.
	rs := NewRangeSim(
		WithSeed(42),
		WithTickRate(240),
		WithFireMode(FireModeBurst),
		WithTriggerPull(0, 1.0),
	)
	rs.RunSeconds(1.0)

	times := rs.ShotTimes()
	if len(times) != 6 {
		t.Fatalf("expected 6 shots in a 1s burst hold, got %d at %v", len(times), times)
	}
	// First burst lands inside the first quarter second.
	if times[2] > 0.25 {
		t.Fatalf("first burst finished at %.3fs, want <= 0.25s", times[2])
	}
	// The inter-burst gap covers interval + cooldown.
	if gap := times[3] - times[2]; gap < 0.3-1e-6 {
		t.Fatalf("inter-burst gap %.3fs, want >= 0.3s", gap)
	}
	// Never more than 3 shots in any cooldown-sized window.
	for i := 0; i+3 < len(times); i++ {
		if times[i+3]-times[i] < 0.2 {
			t.Fatalf("4 shots inside a %.3fs window", times[i+3]-times[i])
		}
	}
}

func TestRangeSim_AutoHoldRate(t *testing.T) {
	rs := NewRangeSim(
		WithSeed(1),
		WithFireMode(FireModeAuto),
		WithTriggerPull(0, 2.0),
	)
	rs.RunSeconds(2.0)
	shots := len(rs.ShotTimes())
	// 10 rps for 2 seconds, with tick quantization slack.
	if shots < 18 || shots > 21 {
		t.Fatalf("expected ~20 auto shots in 2s, got %d", shots)
	}
}

func TestRangeSim_SemiNeedsRepresses(t *testing.T) {
	rs := NewRangeSim(
		WithSeed(1),
		WithFireMode(FireModeSemi),
		WithTriggerPull(0, 0.5),
		WithTriggerPull(0.6, 0.7),
		WithTriggerPull(0.8, 0.9),
	)
	rs.RunSeconds(1.0)
	if shots := len(rs.ShotTimes()); shots != 3 {
		t.Fatalf("3 presses should give 3 semi shots, got %d", shots)
	}
}

func TestRangeSim_Deterministic(t *testing.T) {
	build := func() *RangeSim {
		rs := NewRangeSim(
			WithSeed(99),
			WithFireMode(FireModeAuto),
			WithTriggerPull(0.1, 0.9),
			WithVerbose(true),
		)
		rs.RunSeconds(1.5)
		return rs
	}
	a, b := build(), build()

	at, bt := a.ShotTimes(), b.ShotTimes()
	if len(at) != len(bt) {
		t.Fatalf("shot counts differ: %d vs %d", len(at), len(bt))
	}
	for i := range at {
		if at[i] != bt[i] {
			t.Fatalf("shot %d at %.6f vs %.6f across identical seeds", i, at[i], bt[i])
		}
	}
	if a.CameraPitch != b.CameraPitch || a.CameraYaw != b.CameraYaw {
		t.Fatal("camera recoil accumulation differs across identical seeds")
	}
	if a.Reticle != b.Reticle {
		t.Fatal("final reticle state differs across identical seeds")
	}
}

func TestRangeSim_CameraSettlesAfterFire(t *testing.T) {
	rs := NewRangeSim(
		WithSeed(5),
		WithFireMode(FireModeAuto),
		WithTriggerPull(0, 0.5),
	)
	rs.RunSeconds(0.5)
	if rs.CameraPitch >= 0 {
		t.Fatalf("camera pitch %.4f after sustained fire, want upward (< 0)", rs.CameraPitch)
	}
	// Long settle: the per-tick deltas must walk the camera back near rest,
	// because the applied recoil itself returns to rest.
	rs.RunSeconds(10)
	if math.Abs(rs.CameraPitch) > 1e-3 {
		t.Fatalf("camera pitch %.6f after 10s settle, want ~0", rs.CameraPitch)
	}
	if rs.ShakeX != 0 || rs.ShakeY != 0 {
		t.Fatal("shake offset not reset after settling")
	}
	if rs.Kick.PositionOffset > 1e-6 {
		t.Fatalf("weapon kick %.6f not settled", rs.Kick.PositionOffset)
	}
}

func TestRangeSim_MovementWidensReticle(t *testing.T) {
	still := NewRangeSim(WithSeed(2))
	moving := NewRangeSim(WithSeed(2), WithMovement(MovementContext{
		IsMoving:                true,
		MovementSpeedNormalized: 1,
	}))
	still.RunTicks(1)
	moving.RunTicks(1)
	if moving.Reticle.SizePixels <= still.Reticle.SizePixels {
		t.Fatalf("moving reticle %.2fpx should exceed standing %.2fpx",
			moving.Reticle.SizePixels, still.Reticle.SizePixels)
	}
}
