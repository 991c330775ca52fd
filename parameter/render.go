package parameter

// Frame Composition
const (
	// TrailFadeAlpha is the black fill opacity per animated frame, leaves short ghost trails
	TrailFadeAlpha = 0.08

	// DepthSortInterval is how many frames pass between node depth sorts
	DepthSortInterval = 60
)

// Connections
const (
	ConnectionAlpha       = 0.12
	ConnectionStaticAlpha = 0.08
	ConnectionDepthBase   = 0.6
	ConnectionDepthGain   = 0.4
	ConnectionEndBase     = 0.7
	ConnectionEndGain     = 0.3
	ConnectionWidthBase   = 0.3
	ConnectionWidthGain   = 0.8
)

// Nodes
const (
	NodeDepthBase     = 0.6 // Node alpha = (base + depth*gain) * alpha multiplier
	NodeDepthGain     = 0.4
	NodeGlowBase      = 3.0 // Glow radius = radius * (base + depth*gain)
	NodeGlowDepthGain = 2.0
	NodeGlowInner     = 0.35
	NodeGlowMid       = 0.15
	NodeHighlight     = 0.5
	NodeRingDepth     = 0.5 // Outer ring drawn above this depth
	NodeRingScale     = 1.3
	NodeRingAlpha     = 0.3
)

// Pulses
const (
	PulseGlowRadius  = 10.0
	PulseCoreRadius  = 1.5
	PulseTrailAlpha  = 0.4
	PulseTrailSize   = 4.0
	PulseTrailGrowth = 6.0
	PulseBaseAlpha   = 0.8
)

// Node core tint gain, particles use ParticleTintGain
const (
	NodeCoreTintGain = 60.0
	ParticleTintGain = 80.0
)

// Reduced-motion frame
const (
	ConnectionStaticWidthGain = 0.5
	StaticDepthBase           = 0.5
	StaticDepthGain           = 0.3
	StaticGlowScale           = 2.0
	StaticGlowAlpha           = 0.2
	StaticCoreAlpha           = 0.6
	StaticHighlightAlpha      = 0.3
	StaticHighlightScale      = 0.4
)

// Debug overlay
const (
	ZoneDebugStrokeAlpha = 0.5
	ZoneDebugFillAlpha   = 0.1
)
