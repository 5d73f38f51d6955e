// Package rangeview is the interactive firing-range shell around the feel
// engine. It owns every screen-facing concern — the engine only ever sees the
// sink interfaces this package implements.
package rangeview

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Gunfeel/internal/gunfeel"
)

const (
	screenW = 1280
	screenH = 720
	tps     = 60

	fovDegrees     = 60.0
	impactLifetime = 240 // ticks an impact mark persists
	noticeLifetime = 120 // ticks the HUD notice persists

	// The weapon always points at the board center; recoil moves the board
	// under a fixed crosshair, which reads better for watching the climb.
	boardRadius = 190.0

	activeWeapon gunfeel.WeaponID = 1
)

// impact is one pellet's mark on the target board, in board-local pixels so
// the marks ride along when recoil and shake move the board.
type impact struct {
	dx, dy float64
	age    int
}

// Range is the ebiten game: a single shooter on a firing range.
type Range struct {
	engine   *gunfeel.Engine
	profiles map[string]gunfeel.WeaponProfile
	order    []string
	current  int

	focal float64 // pixels per unit tan(angle), from the vertical FOV

	// View state fed by the engine through the sink interfaces.
	camPitch, camYaw float64 // accumulated recoil view offset, degrees
	shakeX, shakeY   float64
	reticle          gunfeel.ReticleState
	kick             gunfeel.KickState

	impacts    []impact
	shotsFired int
	started    time.Time

	prevKeys map[ebiten.Key]bool
	notice   string
	noticeAge int
}

// New builds the range with the given profile set. Stock weapons come first
// in arsenal order; config-defined extras follow alphabetically.
func New(profiles map[string]gunfeel.WeaponProfile, seed int64) (*Range, error) {
	order := gunfeel.ArsenalNames()
	stock := make(map[string]bool, len(order))
	for _, n := range order {
		stock[n] = true
	}
	var extras []string
	for n := range profiles {
		if !stock[n] {
			extras = append(extras, n)
		}
	}
	sort.Strings(extras)
	order = append(order, extras...)

	r := &Range{
		engine:   gunfeel.NewEngine(seed),
		profiles: profiles,
		order:    order,
		focal:    (screenH / 2) / math.Tan(fovDegrees/2*math.Pi/180),
		started:  time.Now(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	r.engine.SetReticleParams(gunfeel.ReticleParams{
		FOVDegrees:   fovDegrees,
		ScreenHeight: screenH,
		BaseSize:     12,
		MaxSizeMul:   7,
	})
	r.engine.SetCameraSink(r)
	r.engine.SetReticleSink(r)
	r.engine.SetWeaponModelSink(r)
	if err := r.equipCurrent(); err != nil {
		return nil, err
	}
	return r, nil
}

// AddRecoilDelta implements gunfeel.CameraSink.
func (r *Range) AddRecoilDelta(pitch, yaw float64) {
	r.camPitch += pitch
	r.camYaw += yaw
}

// SetShakeOffset implements gunfeel.CameraSink.
func (r *Range) SetShakeOffset(x, y float64) {
	r.shakeX, r.shakeY = x, y
}

// SetReticle implements gunfeel.ReticleSink.
func (r *Range) SetReticle(s gunfeel.ReticleState) {
	r.reticle = s
}

// SetKick implements gunfeel.WeaponModelSink.
func (r *Range) SetKick(s gunfeel.KickState) {
	r.kick = s
}

func (r *Range) profile() gunfeel.WeaponProfile {
	return r.profiles[r.order[r.current]]
}

// equipCurrent swaps in the selected weapon with a fully reset state triple.
func (r *Range) equipCurrent() error {
	if err := r.engine.Equip(activeWeapon, r.profile()); err != nil {
		return err
	}
	r.camPitch, r.camYaw = 0, 0
	return nil
}

// keyPressed is an edge-triggered key check.
func (r *Range) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := r.prevKeys[k]
	r.prevKeys[k] = down
	return down && !was
}

// Update runs one simulation tick.
func (r *Range) Update() error {
	const dt = 1.0 / tps

	if r.keyPressed(ebiten.KeyTab) {
		r.current = (r.current + 1) % len(r.order)
		if err := r.equipCurrent(); err != nil {
			return err
		}
		r.setNotice("equipped " + r.profile().Name)
	}
	if r.keyPressed(ebiten.KeyF) {
		mode := r.engine.CycleFireMode(activeWeapon)
		r.setNotice("fire mode: " + mode.String())
	}
	if r.keyPressed(ebiten.KeyR) {
		r.engine.Reset(activeWeapon)
		r.impacts = r.impacts[:0]
		r.shotsFired = 0
		r.camPitch, r.camYaw = 0, 0
		r.setNotice("range reset")
	}
	if r.keyPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(r.report()); err != nil {
			r.setNotice("clipboard: " + err.Error())
		} else {
			r.setNotice("session report copied")
		}
	}

	r.engine.SetMovementContext(activeWeapon, r.movementContext())
	r.engine.SetTriggerHeld(activeWeapon, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if _, fired := r.engine.TryFire(activeWeapon); fired {
		r.recordShot()
	}
	r.engine.Advance(activeWeapon, dt)

	// Age transient visuals.
	alive := r.impacts[:0]
	for _, im := range r.impacts {
		im.age++
		if im.age < impactLifetime {
			alive = append(alive, im)
		}
	}
	r.impacts = alive
	if r.noticeAge > 0 {
		r.noticeAge--
	}
	return nil
}

// movementContext builds the tick's movement state from the keyboard.
func (r *Range) movementContext() gunfeel.MovementContext {
	moving := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyA) ||
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyD)
	speed := 0.0
	if moving {
		speed = 1.0
		if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
			speed = 0.5 // walk
		}
	}
	return gunfeel.MovementContext{
		IsAiming:                ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		IsMoving:                moving,
		MovementSpeedNormalized: speed,
		IsAirborne:              ebiten.IsKeyPressed(ebiten.KeySpace),
		IsCrouching:             ebiten.IsKeyPressed(ebiten.KeyControlLeft),
	}
}

// recordShot samples the full pellet fan through the current cone and marks
// the board where each pellet lands.
func (r *Range) recordShot() {
	r.shotsFired++
	for _, dir := range r.engine.SamplePelletDirections(activeWeapon, gunfeel.Vec3{Z: 1}) {
		if dir.Z <= 0 {
			continue
		}
		r.impacts = append(r.impacts, impact{
			dx: dir.X / dir.Z * r.focal,
			dy: -dir.Y / dir.Z * r.focal,
		})
	}
}

// boardCenter is where the cone axis meets the board: screen center shifted
// by the accumulated recoil view offset and the current shake.
func (r *Range) boardCenter() (float64, float64) {
	degToPx := r.focal * math.Pi / 180
	// Aim kicked up (negative pitch) pushes the world down the screen.
	x := screenW/2 - r.camYaw*degToPx + r.shakeX
	y := screenH/2 - r.camPitch*degToPx + r.shakeY
	return x, y
}

func (r *Range) setNotice(s string) {
	r.notice = s
	r.noticeAge = noticeLifetime
}

// report builds the clipboard session summary.
func (r *Range) report() string {
	var b strings.Builder
	p := r.profile()
	fmt.Fprintf(&b, "=== Gunfeel Range Session ===\n")
	fmt.Fprintf(&b, "weapon=%s mode=%s shots=%d elapsed=%s\n",
		p.Name, r.engine.FireMode(activeWeapon), r.shotsFired,
		time.Since(r.started).Round(time.Second))
	fmt.Fprintf(&b, "spread=%.3fdeg reticle=%.1fpx recoil_offset=(%.3f,%.3f)deg\n",
		r.engine.TotalSpreadDegrees(activeWeapon), r.reticle.SizePixels,
		r.reticle.OffsetPitch, r.reticle.OffsetYaw)
	fmt.Fprintf(&b, "impacts_on_board=%d\n", len(r.impacts))
	return b.String()
}

// Draw renders the range.
func (r *Range) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 26, G: 30, B: 34, A: 255})
	cx, cy := r.boardCenter()

	// Target board: concentric rings.
	board := color.RGBA{R: 52, G: 58, B: 64, A: 255}
	vector.FillCircle(screen, float32(cx), float32(cy), boardRadius, board, true)
	ring := color.RGBA{R: 110, G: 118, B: 126, A: 255}
	for _, rad := range []float32{boardRadius, boardRadius * 0.66, boardRadius * 0.33, 8} {
		vector.StrokeCircle(screen, float32(cx), float32(cy), rad, 1.5, ring, true)
	}

	// Impact marks, fading with age.
	for _, im := range r.impacts {
		fade := 1.0 - float64(im.age)/impactLifetime
		a := uint8(220 * fade)
		vector.FillCircle(screen, float32(cx+im.dx), float32(cy+im.dy), 2.2,
			color.RGBA{R: 255, G: 200, B: 90, A: a}, true)
	}

	r.drawReticle(screen)
	r.drawWeaponModel(screen)
	r.drawHUD(screen)
}

// drawReticle renders the four-tick crosshair at screen center, gapped by the
// engine's reticle size and nudged by the recoil offset.
func (r *Range) drawReticle(screen *ebiten.Image) {
	degToPx := r.focal * math.Pi / 180
	x := float32(screenW/2 + r.reticle.OffsetYaw*degToPx)
	y := float32(screenH/2 + r.reticle.OffsetPitch*degToPx)
	gap := float32(r.reticle.SizePixels / 2)
	const tick = 9.0
	c := color.RGBA{R: 240, G: 240, B: 240, A: 230}

	vector.StrokeLine(screen, x, y-gap-tick, x, y-gap, 1.5, c, true)
	vector.StrokeLine(screen, x, y+gap, x, y+gap+tick, 1.5, c, true)
	vector.StrokeLine(screen, x-gap-tick, y, x-gap, y, 1.5, c, true)
	vector.StrokeLine(screen, x+gap, y, x+gap+tick, y, 1.5, c, true)
	vector.FillCircle(screen, x, y, 1.2, c, true)
}

// drawWeaponModel renders a proxy weapon silhouette in the lower right,
// pushed back and rotated by the kick state.
func (r *Range) drawWeaponModel(screen *ebiten.Image) {
	// Kick distance is world units; scale up so the pump reads on screen.
	back := float32(r.kick.PositionOffset * 600)
	rot := r.kick.RotationOffset * math.Pi / 180

	bx := float32(screenW-260) + back
	by := float32(screenH - 130)
	length := 200.0
	tipX := bx + float32(math.Cos(math.Pi+0.25+rot)*length)
	tipY := by + float32(math.Sin(math.Pi+0.25+rot)*length)

	barrel := color.RGBA{R: 160, G: 168, B: 176, A: 255}
	vector.StrokeLine(screen, bx, by, tipX, tipY, 10, barrel, true)
	vector.FillCircle(screen, bx, by, 14, color.RGBA{R: 120, G: 126, B: 132, A: 255}, true)
}

// drawHUD renders the status lines and key help.
func (r *Range) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	white := color.RGBA{R: 235, G: 235, B: 235, A: 255}
	dim := color.RGBA{R: 150, G: 155, B: 160, A: 255}

	p := r.profile()
	text.Draw(screen, fmt.Sprintf("%s  [%s]  shots: %d", p.Name,
		r.engine.FireMode(activeWeapon), r.shotsFired), face, 16, 24, white)
	text.Draw(screen, fmt.Sprintf("spread %.2f deg   reticle %.0f px   kick %.3f",
		r.engine.TotalSpreadDegrees(activeWeapon), r.reticle.SizePixels,
		r.kick.PositionOffset), face, 16, 42, white)
	text.Draw(screen,
		"LMB fire  RMB ads  WASD move  SPACE air  CTRL crouch  TAB weapon  F mode  R reset  C copy report",
		face, 16, screenH-16, dim)

	if r.noticeAge > 0 {
		text.Draw(screen, r.notice, face, 16, 62, color.RGBA{R: 255, G: 210, B: 120, A: 255})
	}
}

// Layout implements ebiten.Game.
func (r *Range) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
