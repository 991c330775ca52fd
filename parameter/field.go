package parameter

// Field Defaults
const (
	// DefaultNodeCount is the number of network nodes per field
	DefaultNodeCount = 40

	// DefaultParticleCount is the number of background motes per field
	DefaultParticleCount = 600

	// DefaultConnectionDistance is the max logical distance at which two nodes link
	DefaultConnectionDistance = 200.0

	// Hard limits applied during config validation, O(n²) connection scan keeps node counts small
	MaxNodeCount          = 400
	MaxParticleCount      = 20000
	MinConnectionDistance = 10.0
	MaxConnectionDistance = 2000.0
)

// Node Motion
const (
	// NodeEdgeMargin keeps nodes this far from the field edges
	NodeEdgeMargin = 20.0

	// NodeVelocityLerp is the per-frame fraction of the gap between velocity and target velocity closed
	NodeVelocityLerp = 0.05

	// NodeBounceDamping is applied to the target velocity axis on edge contact (sign inverts)
	NodeBounceDamping = -0.95

	// NodeBounceJitter is the span of the random perturbation added after a bounce
	NodeBounceJitter = 0.05

	// NodeTargetDamping is the per-frame settling factor of target velocity
	NodeTargetDamping = 0.998

	// NodeMaxTargetSpeed caps target velocity after pointer attraction (units/frame)
	NodeMaxTargetSpeed = 2.0

	// NodeRadiusMin, NodeRadiusSpan, NodeRadiusDepth define radius = min + rand*span + depth*depthGain
	NodeRadiusMin   = 1.0
	NodeRadiusSpan  = 1.5
	NodeRadiusDepth = 1.5

	// NodeGlowSpeedMin and NodeGlowSpeedSpan define the glow phase advance per frame
	NodeGlowSpeedMin  = 0.01
	NodeGlowSpeedSpan = 0.02
)

// Pointer Interaction
const (
	// PointerRadius is the capture radius of the pointer attraction
	PointerRadius = 200.0

	// PointerForceGain scales the quadratic falloff force
	PointerForceGain = 0.15

	// PointerDepthGain makes nearer nodes respond more strongly
	PointerDepthGain = 0.5
)

// Particles
const (
	ParticleLifeMin       = 100.0
	ParticleLifeSpan      = 100.0
	ParticleAlphaMin      = 0.1
	ParticleAlphaSpan     = 0.3
	ParticleVelocitySpan  = 0.3
	ParticleSizeMin       = 0.5
	ParticleSizeDepthGain = 1.5

	// ParticleFlowX and ParticleFlowY drift motes up and to the right, scaled by depth
	ParticleFlowX = 0.05
	ParticleFlowY = -0.03

	// VisibilityThreshold is the alpha at or below which nothing is drawn
	VisibilityThreshold = 0.01
)

// Exclusion Zones
const (
	// ZoneFeather is the distance over which entities fade in near a zone boundary
	ZoneFeather = 50.0

	// ZoneRepulsion is the per-frame push applied to nodes inside a zone, times zone strength
	ZoneRepulsion = 0.2

	// ZoneDefaultStrength applies when a zone leaves strength unset
	ZoneDefaultStrength = 1.0
)

// Data Pulses
const (
	// PulseTrailLength is the max retained trail points, oldest evicted first
	PulseTrailLength = 8

	PulseSpeedMin  = 0.01
	PulseSpeedSpan = 0.015
)
