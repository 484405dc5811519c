package bodysim

const (
	DefaultRadius     = 34
	DefaultHalfHeight = 88

	// DefaultWalkableFloorZ is the cosine of the steepest slope a body can stand on (~44.8°).
	DefaultWalkableFloorZ  = 0.71
	DefaultMaxAcceleration = 2048
	DefaultAirControl      = 0.05
	DefaultMass            = 100
	DefaultGroundFriction  = 8

	DefaultFrictionFactor      = 2
	DefaultDecelerationWalking = 2048

	// FloorProbeDistance is how far below the body the floor is searched for.
	FloorProbeDistance = 5
	// SkinWidth is the gap kept between the body and any surface it is moved against.
	SkinWidth = 0.1

	maxSlides = 3
)
