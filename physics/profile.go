package physics

// WallProfile defines wall and ceiling bounce parameters
type WallProfile struct {
	Restitution float64 // Velocity retention on bounce, applied with sign flip
}

// FlipperImpulse defines the tuned flipper bounce response
// vy' = -|vy|*Amplify - MinImpulse; vx' = vx + (x - pivot.x)*LateralGain
type FlipperImpulse struct {
	Amplify     float64 // Incoming vertical speed multiplier
	MinImpulse  float64 // Fixed upward kick added on every contact
	LateralGain float64 // Horizontal deflection per unit offset from pivot
}

// Profiles are package variables so call sites share one instance
var (
	DefaultWallProfile = WallProfile{
		Restitution: 0.9,
	}

	DefaultFlipperImpulse = FlipperImpulse{
		Amplify:     1.1,
		MinImpulse:  3,
		LateralGain: 0.1,
	}
)
