package game

import (
	"math"

	"github.com/vovakirdan/orbfall/internal/config"
)

// LaunchVelocity maps aim input to a launch velocity. angleDeg must
// lie inside the configured range (negative angles point upward);
// power01 is a normalized input magnitude mapped linearly into the
// configured power range. Returns ok=false for input that should be
// silently ignored: an angle outside the range or a gesture below the
// threshold.
func LaunchVelocity(l config.Launch, angleDeg, power01 float64) (Vec2, bool) {
	if power01 < l.GestureThreshold || power01 <= 0 {
		return Vec2{}, false
	}
	if angleDeg < l.MinAngleDeg || angleDeg > l.MaxAngleDeg {
		return Vec2{}, false
	}

	if power01 > 1 {
		power01 = 1
	}
	power := l.MinPower + power01*(l.MaxPower-l.MinPower)

	return FromAngle(angleDeg*math.Pi/180, power), true
}
