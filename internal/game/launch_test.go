package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbfall/internal/config"
)

func testLaunch() config.Launch {
	return config.Launch{
		MinAngleDeg:      -80,
		MaxAngleDeg:      -20,
		MinPower:         300,
		MaxPower:         1100,
		GestureThreshold: 0.05,
		ShotsPerRound:    8,
	}
}

func TestLaunchVelocityMapping(t *testing.T) {
	l := testLaunch()

	v, ok := LaunchVelocity(l, -45, 0.5)
	if !ok {
		t.Fatal("Valid input should be accepted")
	}

	// power01=0.5 maps to the middle of the power range.
	wantPower := 300 + 0.5*(1100-300)
	if !almostEqual(v.Length(), wantPower) {
		t.Errorf("Launch speed: got %v, want %v", v.Length(), wantPower)
	}

	// Negative angle points upward.
	if v.Y >= 0 {
		t.Errorf("Upward launch should have negative Y velocity, got %v", v.Y)
	}
	if v.X <= 0 {
		t.Errorf("Launch should carry the orb rightward, got %v", v.X)
	}
	if !almostEqual(v.X, wantPower*math.Cos(-45*math.Pi/180)) {
		t.Errorf("X component off: got %v", v.X)
	}
}

func TestLaunchVelocityRejectsWeakGesture(t *testing.T) {
	l := testLaunch()

	if _, ok := LaunchVelocity(l, -45, 0); ok {
		t.Error("Zero power should be rejected")
	}
	if _, ok := LaunchVelocity(l, -45, 0.04); ok {
		t.Error("Power below the gesture threshold should be rejected")
	}
	if _, ok := LaunchVelocity(l, -45, 0.05); !ok {
		t.Error("Power at the gesture threshold should be accepted")
	}
}

func TestLaunchVelocityRejectsBadAngle(t *testing.T) {
	l := testLaunch()

	if _, ok := LaunchVelocity(l, -81, 0.5); ok {
		t.Error("Angle above the allowed range should be rejected")
	}
	if _, ok := LaunchVelocity(l, -19, 0.5); ok {
		t.Error("Angle below the allowed range should be rejected")
	}
	if _, ok := LaunchVelocity(l, -80, 0.5); !ok {
		t.Error("Boundary angle should be accepted")
	}
	if _, ok := LaunchVelocity(l, -20, 0.5); !ok {
		t.Error("Boundary angle should be accepted")
	}
}

func TestLaunchVelocityClampsPower(t *testing.T) {
	l := testLaunch()

	v, ok := LaunchVelocity(l, -45, 2.5)
	if !ok {
		t.Fatal("Over-strong gesture should still launch")
	}
	if !almostEqual(v.Length(), l.MaxPower) {
		t.Errorf("Over-strong gesture should clamp to max power, got %v", v.Length())
	}
}
