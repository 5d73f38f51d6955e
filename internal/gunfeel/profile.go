package gunfeel

import "fmt"

// FireMode selects how the trigger maps to shots.
type FireMode int

const (
	FireModeSemi  FireMode = iota // one shot per trigger press
	FireModeBurst                 // fixed-length burst per press, then cooldown
	FireModeAuto                  // continuous fire while held
)

func (m FireMode) String() string {
	switch m {
	case FireModeSemi:
		return "semi"
	case FireModeBurst:
		return "burst"
	case FireModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Next returns the next mode in the cycling order semi → burst → auto → semi.
func (m FireMode) Next() FireMode {
	switch m {
	case FireModeSemi:
		return FireModeBurst
	case FireModeBurst:
		return FireModeAuto
	default:
		return FireModeSemi
	}
}

// WeaponProfile is the immutable per-weapon tuning block. One profile is shared
// read-only by every system that references the weapon; all mutable feel state
// lives in the accumulators.
//
// Angles are degrees, distances are world units, reticle values are pixels,
// recovery speeds are lerp rates per second.
type WeaponProfile struct {
	Name     string
	FireRate float64 // rounds per second
	Pellets  int     // projectiles per shot (1 for everything but shotguns)

	// Aim-point recoil.
	VerticalRecoil      float64 // degrees of upward kick per shot
	HorizontalRecoil    float64 // max degrees of sideways kick per shot (drawn ±)
	MaxVerticalRecoil   float64
	MaxHorizontalRecoil float64
	RecoilSnappiness    float64 // rate the applied recoil chases its target
	RecoilRecoverySpeed float64 // rate the target settles back to rest

	// Reticle (cosmetic) spread.
	CrosshairSpreadPerShot float64
	MaxCrosshairSpread     float64
	CrosshairRecoverySpeed float64

	// Weapon model kickback.
	GunKickbackDistance  float64
	GunKickbackRotation  float64 // degrees
	GunKickRecoverySpeed float64

	// Screen shake.
	ScreenShakeIntensity float64 // pixels; 0 disables shake for this weapon
	ScreenShakeDuration  float64 // seconds

	// Ballistic spread cone.
	BaseBulletSpread          float64 // degrees at rest
	BulletSpreadPerShot       float64
	MaxBulletSpread           float64
	BulletSpreadRecoverySpeed float64

	// Movement-state spread multipliers.
	MovementSpreadMultiplier float64
	AirborneSpreadMultiplier float64
	CrouchSpreadMultiplier   float64
	ADSSpreadMultiplier      float64
	ADSRecoilMultiplier      float64

	// Burst mode.
	BurstShotCount       int
	BurstCooldownSeconds float64
}

// FireInterval returns the seconds between consecutive shots.
func (p *WeaponProfile) FireInterval() float64 {
	return 1.0 / p.FireRate
}

// Validate rejects profiles whose constants would let the accumulators escape
// their documented bounds. The weapon loader calls this once at load time; the
// accumulators themselves assume a valid profile.
func (p *WeaponProfile) Validate() error {
	if p.FireRate <= 0 {
		return fmt.Errorf("profile %q: fire rate must be > 0, got %.3f", p.Name, p.FireRate)
	}
	if p.Pellets < 1 {
		return fmt.Errorf("profile %q: pellets must be >= 1, got %d", p.Name, p.Pellets)
	}
	if p.MaxVerticalRecoil < p.VerticalRecoil {
		return fmt.Errorf("profile %q: maxVerticalRecoil %.3f < verticalRecoil %.3f",
			p.Name, p.MaxVerticalRecoil, p.VerticalRecoil)
	}
	if p.MaxHorizontalRecoil < p.HorizontalRecoil {
		return fmt.Errorf("profile %q: maxHorizontalRecoil %.3f < horizontalRecoil %.3f",
			p.Name, p.MaxHorizontalRecoil, p.HorizontalRecoil)
	}
	if p.MaxCrosshairSpread < p.CrosshairSpreadPerShot {
		return fmt.Errorf("profile %q: maxCrosshairSpread %.3f < crosshairSpreadPerShot %.3f",
			p.Name, p.MaxCrosshairSpread, p.CrosshairSpreadPerShot)
	}
	if p.MaxBulletSpread < p.BaseBulletSpread {
		return fmt.Errorf("profile %q: maxBulletSpread %.3f < baseBulletSpread %.3f",
			p.Name, p.MaxBulletSpread, p.BaseBulletSpread)
	}
	if p.MaxBulletSpread < p.BulletSpreadPerShot {
		return fmt.Errorf("profile %q: maxBulletSpread %.3f < bulletSpreadPerShot %.3f",
			p.Name, p.MaxBulletSpread, p.BulletSpreadPerShot)
	}
	for _, m := range []struct {
		name string
		val  float64
	}{
		{"movementSpreadMultiplier", p.MovementSpreadMultiplier},
		{"airborneSpreadMultiplier", p.AirborneSpreadMultiplier},
		{"crouchSpreadMultiplier", p.CrouchSpreadMultiplier},
		{"adsSpreadMultiplier", p.ADSSpreadMultiplier},
		{"adsRecoilMultiplier", p.ADSRecoilMultiplier},
	} {
		if m.val <= 0 {
			return fmt.Errorf("profile %q: %s must be > 0, got %.3f", p.Name, m.name, m.val)
		}
	}
	if p.BurstShotCount < 1 {
		return fmt.Errorf("profile %q: burstShotCount must be >= 1, got %d", p.Name, p.BurstShotCount)
	}
	if p.BurstCooldownSeconds < 0 {
		return fmt.Errorf("profile %q: burstCooldownSeconds must be >= 0, got %.3f",
			p.Name, p.BurstCooldownSeconds)
	}
	if p.RecoilSnappiness <= 0 || p.RecoilRecoverySpeed <= 0 ||
		p.CrosshairRecoverySpeed <= 0 || p.BulletSpreadRecoverySpeed <= 0 ||
		p.GunKickRecoverySpeed <= 0 {
		return fmt.Errorf("profile %q: recovery/snappiness rates must be > 0", p.Name)
	}
	if p.ScreenShakeIntensity > 0 && p.ScreenShakeDuration <= 0 {
		return fmt.Errorf("profile %q: screenShakeDuration must be > 0 when intensity > 0", p.Name)
	}
	return nil
}

// --- Built-in arsenal ---

// Arsenal returns the stock weapon profiles, keyed by name. Config files can
// override any field of these or define new weapons on top of them.
func Arsenal() map[string]WeaponProfile {
	out := make(map[string]WeaponProfile, len(arsenal))
	for _, p := range arsenal {
		out[p.Name] = p
	}
	return out
}

// ArsenalProfile returns a stock profile by name.
func ArsenalProfile(name string) (WeaponProfile, bool) {
	for _, p := range arsenal {
		if p.Name == name {
			return p, true
		}
	}
	return WeaponProfile{}, false
}

// ArsenalNames returns the stock weapon names in display order.
func ArsenalNames() []string {
	names := make([]string, len(arsenal))
	for i, p := range arsenal {
		names[i] = p.Name
	}
	return names
}

var arsenal = []WeaponProfile{
	{
		Name: "rifle", FireRate: 10, Pellets: 1,
		VerticalRecoil: 1.5, HorizontalRecoil: 0.6,
		MaxVerticalRecoil: 12, MaxHorizontalRecoil: 4,
		RecoilSnappiness: 18, RecoilRecoverySpeed: 7,
		CrosshairSpreadPerShot: 9, MaxCrosshairSpread: 60, CrosshairRecoverySpeed: 8,
		GunKickbackDistance: 0.07, GunKickbackRotation: 2.5, GunKickRecoverySpeed: 12,
		ScreenShakeIntensity: 2.2, ScreenShakeDuration: 0.12,
		BaseBulletSpread: 0.4, BulletSpreadPerShot: 0.35, MaxBulletSpread: 4.5,
		BulletSpreadRecoverySpeed: 6,
		MovementSpreadMultiplier: 1.8, AirborneSpreadMultiplier: 3.0,
		CrouchSpreadMultiplier: 0.7, ADSSpreadMultiplier: 0.35, ADSRecoilMultiplier: 0.6,
		BurstShotCount: 3, BurstCooldownSeconds: 0.2,
	},
	{
		Name: "carbine", FireRate: 12, Pellets: 1,
		VerticalRecoil: 1.1, HorizontalRecoil: 0.8,
		MaxVerticalRecoil: 9, MaxHorizontalRecoil: 5,
		RecoilSnappiness: 20, RecoilRecoverySpeed: 8,
		CrosshairSpreadPerShot: 8, MaxCrosshairSpread: 55, CrosshairRecoverySpeed: 9,
		GunKickbackDistance: 0.06, GunKickbackRotation: 2.0, GunKickRecoverySpeed: 13,
		ScreenShakeIntensity: 1.8, ScreenShakeDuration: 0.10,
		BaseBulletSpread: 0.5, BulletSpreadPerShot: 0.40, MaxBulletSpread: 5.0,
		BulletSpreadRecoverySpeed: 7,
		MovementSpreadMultiplier: 1.6, AirborneSpreadMultiplier: 2.6,
		CrouchSpreadMultiplier: 0.75, ADSSpreadMultiplier: 0.40, ADSRecoilMultiplier: 0.65,
		BurstShotCount: 2, BurstCooldownSeconds: 0.15,
	},
	{
		Name: "smg", FireRate: 16, Pellets: 1,
		VerticalRecoil: 0.7, HorizontalRecoil: 1.0,
		MaxVerticalRecoil: 7, MaxHorizontalRecoil: 6,
		RecoilSnappiness: 24, RecoilRecoverySpeed: 10,
		CrosshairSpreadPerShot: 6, MaxCrosshairSpread: 70, CrosshairRecoverySpeed: 10,
		GunKickbackDistance: 0.045, GunKickbackRotation: 1.5, GunKickRecoverySpeed: 16,
		ScreenShakeIntensity: 1.2, ScreenShakeDuration: 0.08,
		BaseBulletSpread: 0.8, BulletSpreadPerShot: 0.45, MaxBulletSpread: 6.5,
		BulletSpreadRecoverySpeed: 9,
		MovementSpreadMultiplier: 1.3, AirborneSpreadMultiplier: 2.2,
		CrouchSpreadMultiplier: 0.8, ADSSpreadMultiplier: 0.55, ADSRecoilMultiplier: 0.75,
		BurstShotCount: 3, BurstCooldownSeconds: 0.12,
	},
	{
		Name: "dmr", FireRate: 4, Pellets: 1,
		VerticalRecoil: 3.2, HorizontalRecoil: 0.4,
		MaxVerticalRecoil: 14, MaxHorizontalRecoil: 3,
		RecoilSnappiness: 14, RecoilRecoverySpeed: 5,
		CrosshairSpreadPerShot: 16, MaxCrosshairSpread: 80, CrosshairRecoverySpeed: 6,
		GunKickbackDistance: 0.11, GunKickbackRotation: 4.0, GunKickRecoverySpeed: 9,
		ScreenShakeIntensity: 3.5, ScreenShakeDuration: 0.18,
		BaseBulletSpread: 0.15, BulletSpreadPerShot: 0.6, MaxBulletSpread: 3.0,
		BulletSpreadRecoverySpeed: 4,
		MovementSpreadMultiplier: 2.4, AirborneSpreadMultiplier: 4.0,
		CrouchSpreadMultiplier: 0.6, ADSSpreadMultiplier: 0.20, ADSRecoilMultiplier: 0.55,
		BurstShotCount: 2, BurstCooldownSeconds: 0.35,
	},
	{
		Name: "shotgun", FireRate: 1.6, Pellets: 8,
		VerticalRecoil: 4.5, HorizontalRecoil: 1.2,
		MaxVerticalRecoil: 10, MaxHorizontalRecoil: 4,
		RecoilSnappiness: 12, RecoilRecoverySpeed: 4,
		CrosshairSpreadPerShot: 24, MaxCrosshairSpread: 90, CrosshairRecoverySpeed: 5,
		GunKickbackDistance: 0.16, GunKickbackRotation: 6.0, GunKickRecoverySpeed: 7,
		ScreenShakeIntensity: 5.0, ScreenShakeDuration: 0.22,
		BaseBulletSpread: 3.5, BulletSpreadPerShot: 0.8, MaxBulletSpread: 7.0,
		BulletSpreadRecoverySpeed: 3,
		MovementSpreadMultiplier: 1.4, AirborneSpreadMultiplier: 2.0,
		CrouchSpreadMultiplier: 0.85, ADSSpreadMultiplier: 0.75, ADSRecoilMultiplier: 0.8,
		BurstShotCount: 1, BurstCooldownSeconds: 0,
	},
	{
		Name: "pistol", FireRate: 7, Pellets: 1,
		VerticalRecoil: 1.2, HorizontalRecoil: 0.5,
		MaxVerticalRecoil: 8, MaxHorizontalRecoil: 3,
		RecoilSnappiness: 22, RecoilRecoverySpeed: 9,
		CrosshairSpreadPerShot: 10, MaxCrosshairSpread: 50, CrosshairRecoverySpeed: 9,
		GunKickbackDistance: 0.05, GunKickbackRotation: 3.0, GunKickRecoverySpeed: 15,
		ScreenShakeIntensity: 0, ScreenShakeDuration: 0,
		BaseBulletSpread: 0.6, BulletSpreadPerShot: 0.3, MaxBulletSpread: 4.0,
		BulletSpreadRecoverySpeed: 8,
		MovementSpreadMultiplier: 1.5, AirborneSpreadMultiplier: 2.4,
		CrouchSpreadMultiplier: 0.8, ADSSpreadMultiplier: 0.5, ADSRecoilMultiplier: 0.7,
		BurstShotCount: 2, BurstCooldownSeconds: 0.18,
	},
}
