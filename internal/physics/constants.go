package physics

const (
	// Capsule defaults match a stock engine character controller.
	DefaultCapsuleRadius = 0.5
	DefaultCapsuleHeight = 2.0

	CollisionAxisTolerance = 1e-9
	GroundProbeDistance    = 0.001
	SkinWidth              = 1e-4
	maxSlideIterations     = 3
)
