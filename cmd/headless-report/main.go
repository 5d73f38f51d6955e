package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Gunfeel/internal/gunfeel"
	"github.com/Garsondee/Gunfeel/internal/profiles"
)

func main() {
	var (
		weapon     string
		mode       string
		runs       int
		seconds    float64
		tickRate   float64
		seedBase   int64
		seedStep   int64
		holdFor    float64
		pauseFor   float64
		configPath string
		samples    int
	)
	flag.StringVar(&weapon, "weapon", "rifle", "weapon profile name")
	flag.StringVar(&mode, "mode", "auto", "fire mode: semi, burst, auto")
	flag.IntVar(&runs, "runs", 1, "number of headless sessions")
	flag.Float64Var(&seconds, "seconds", 3.0, "session length in seconds")
	flag.Float64Var(&tickRate, "tick-rate", 60, "simulation ticks per second")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&holdFor, "hold", 0.8, "seconds the trigger is held per cycle")
	flag.Float64Var(&pauseFor, "pause", 0.4, "seconds the trigger is released per cycle")
	flag.StringVar(&configPath, "config", "", "weapon profile config file")
	flag.IntVar(&samples, "samples", 10000, "cone samples for the distribution check")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ps, err := profiles.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load weapon profiles")
	}
	profile, ok := ps[weapon]
	if !ok {
		log.Fatal().Str("weapon", weapon).Msg("unknown weapon profile")
	}
	fireMode, err := parseMode(mode)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -mode")
	}
	if runs <= 0 || seconds <= 0 || tickRate <= 0 || holdFor <= 0 || pauseFor < 0 {
		log.Fatal().Msg("-runs, -seconds, -tick-rate and -hold must be > 0, -pause >= 0")
	}

	fmt.Printf("=== Gunfeel Headless Report ===\n")
	fmt.Printf("weapon=%s mode=%s runs=%d seconds=%.2f tick_rate=%.0f seed_base=%d hold=%.2f pause=%.2f\n\n",
		profile.Name, fireMode, runs, seconds, tickRate, seedBase, holdFor, pauseFor)

	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		opts := []gunfeel.RangeOption{
			gunfeel.WithSeed(seed),
			gunfeel.WithTickRate(tickRate),
			gunfeel.WithWeapon(profile),
			gunfeel.WithFireMode(fireMode),
			gunfeel.WithVerbose(true),
		}
		for t := 0.0; t < seconds; t += holdFor + pauseFor {
			opts = append(opts, gunfeel.WithTriggerPull(t, t+holdFor))
		}
		rs := gunfeel.NewRangeSim(opts...)
		rs.RunSeconds(seconds)

		fmt.Printf("--- Run %d (seed %d) ---\n", i+1, seed)
		printShotTable(rs)
		printRecoilTrace(rs)
		printSpreadEnvelope(rs, &profile)
	}

	printConeCheck(&profile, seedBase, samples)
}

func parseMode(s string) (gunfeel.FireMode, error) {
	switch strings.ToLower(s) {
	case "semi":
		return gunfeel.FireModeSemi, nil
	case "burst":
		return gunfeel.FireModeBurst, nil
	case "auto":
		return gunfeel.FireModeAuto, nil
	default:
		return 0, fmt.Errorf("unknown fire mode %q", s)
	}
}

func printShotTable(rs *gunfeel.RangeSim) {
	times := rs.ShotTimes()
	fmt.Printf("--- Fire events (%d) ---\n", len(times))
	for i, t := range times {
		gap := 0.0
		if i > 0 {
			gap = t - times[i-1]
		}
		fmt.Printf("  shot %2d  t=%.3fs  gap=%.3fs\n", i+1, t, gap)
	}
	fmt.Println()
}

func printRecoilTrace(rs *gunfeel.RangeSim) {
	peak := 0.0
	for _, e := range rs.Log.Filter("recoil", "pitch") {
		if -e.NumVal > peak {
			peak = -e.NumVal
		}
	}
	fmt.Printf("--- Recoil ---\n")
	fmt.Printf("  peak climb      %.3f deg\n", peak)
	fmt.Printf("  final offset    (%.4f, %.4f) deg\n", rs.Reticle.OffsetPitch, rs.Reticle.OffsetYaw)
	fmt.Printf("  camera residual (%.4f, %.4f) deg\n\n", rs.CameraPitch, rs.CameraYaw)
}

func printSpreadEnvelope(rs *gunfeel.RangeSim, p *gunfeel.WeaponProfile) {
	peakDeg, peakPx := 0.0, 0.0
	for _, e := range rs.Log.Filter("spread", "degrees") {
		if e.NumVal > peakDeg {
			peakDeg = e.NumVal
		}
	}
	for _, e := range rs.Log.Filter("spread", "reticle_px") {
		if e.NumVal > peakPx {
			peakPx = e.NumVal
		}
	}
	fmt.Printf("--- Spread envelope ---\n")
	fmt.Printf("  base cone     %.3f deg\n", p.BaseBulletSpread)
	fmt.Printf("  peak cone     %.3f deg (cap %.3f)\n", peakDeg, p.MaxBulletSpread)
	fmt.Printf("  peak reticle  %.1f px\n", peakPx)
	fmt.Printf("  final cone    %.3f deg\n\n", rs.Engine.TotalSpreadDegrees(rs.Weapon))
}

// printConeCheck draws through the weapon's max cone and bins the deflections
// into equal-area annuli; a healthy sampler fills them evenly.
func printConeCheck(p *gunfeel.WeaponProfile, seed int64, samples int) {
	const bins = 8
	angle := p.MaxBulletSpread
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- report tool
	base := gunfeel.Vec3{Z: 1}

	counts := make([]int, bins)
	for i := 0; i < samples; i++ {
		dev := gunfeel.AngleBetweenDegrees(base, gunfeel.SampleDirection(rng, base, angle))
		idx := int(float64(bins) * (dev / angle) * (dev / angle))
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	expected := float64(samples) / bins
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	fmt.Printf("--- Cone distribution (%d samples, %.2f deg, %d equal-area bins) ---\n",
		samples, angle, bins)
	for i, c := range counts {
		fmt.Printf("  bin %d  %5d  %s\n", i, c, strings.Repeat("#", c*60/samples))
	}
	fmt.Printf("  chi-square %.1f (expected ~%d for uniform)\n", chi2, bins-1)
}
