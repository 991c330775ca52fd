package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityParticles RenderPriority = iota
	PriorityConnections
	PriorityPulses
	PriorityNodes
	PriorityDebug
)
