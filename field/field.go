// Package field simulates the animated neural network: drifting nodes linked by proximity,
// background motes, and data pulses traveling along links.
// A Field is owned by a single goroutine; nothing in it is safe for concurrent use.
package field

import (
	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/physics"
	"github.com/lixenwraith/neural-field/vmath"
)

// Config holds the tunables of one field
type Config struct {
	NodeCount          int
	ParticleCount      int
	ConnectionDistance float64
	Interactive        bool
	Intensity          parameter.Intensity
	Zones              []component.ExclusionZone
	Seed               uint64
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		NodeCount:          parameter.DefaultNodeCount,
		ParticleCount:      parameter.DefaultParticleCount,
		ConnectionDistance: parameter.DefaultConnectionDistance,
		Interactive:        true,
		Intensity:          parameter.IntensityMedium,
	}
}

// Pointer is the last known pointer state in logical units
type Pointer struct {
	X, Y   float64
	Active bool
}

// Segment is one connection between two nodes computed this frame
type Segment struct {
	A, B int     // Node indices, A < B
	Dist float64 // Logical distance
}

// Sprite is a particle that survived visibility culling this frame
type Sprite struct {
	X, Y  float64
	Size  float64
	Depth float64
	Alpha float64
}

// Field is the simulation state of one animated surface
type Field struct {
	cfg     Config
	profile parameter.IntensityProfile
	rng     *vmath.FastRand

	width, height float64

	nodes     []component.Node
	particles []component.Particle
	pulses    []component.DataPulse

	// Per-frame derived state, reused across frames
	segments []Segment
	sprites  []Sprite

	pointer Pointer
	bounce  physics.BounceProfile
	attract physics.AttractProfile

	frame uint64

	// Bumped whenever the entity sets are replaced
	generation uint64
}

// New creates an empty field, entities are created on the first valid Resize
func New(cfg Config) *Field {
	if cfg.ConnectionDistance <= 0 {
		cfg.ConnectionDistance = parameter.DefaultConnectionDistance
	}
	if cfg.NodeCount < 0 {
		cfg.NodeCount = 0
	}
	if cfg.ParticleCount < 0 {
		cfg.ParticleCount = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}

	return &Field{
		cfg:     cfg,
		profile: cfg.Intensity.Profile(),
		rng:     vmath.NewFastRand(seed),
		bounce: physics.BounceProfile{
			Margin:  parameter.NodeEdgeMargin,
			Damping: parameter.NodeBounceDamping,
			Jitter:  parameter.NodeBounceJitter,
		},
		attract: physics.AttractProfile{
			Radius:    parameter.PointerRadius,
			Gain:      parameter.PointerForceGain,
			DepthGain: parameter.PointerDepthGain,
			MaxSpeed:  parameter.NodeMaxTargetSpeed,
		},
	}
}

// Resize updates the logical dimensions
// Entities are (re)created on the first valid size or when the first node falls outside the new bounds
// A zero dimension discards entities and defers initialization until a valid size returns
// Returns true if entities were (re)initialized
func (f *Field) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		f.width, f.height = 0, 0
		f.discard()
		return false
	}
	f.width, f.height = width, height

	if f.needsReinit() {
		f.Reset()
		return true
	}
	return false
}

// needsReinit reports whether existing positions are invalid for the current size
func (f *Field) needsReinit() bool {
	if len(f.nodes) == 0 {
		return f.cfg.NodeCount > 0 || (len(f.particles) == 0 && f.cfg.ParticleCount > 0)
	}
	first := &f.nodes[0]
	return abs(first.X) > f.width || abs(first.Y) > f.height
}

// Reset discards all entities and creates fresh batches for the current size
func (f *Field) Reset() {
	if !f.Ready() {
		return
	}

	f.nodes = make([]component.Node, f.cfg.NodeCount)
	for i := range f.nodes {
		f.nodes[i] = NewNode(f.rng, f.width, f.height, f.profile)
	}

	f.particles = make([]component.Particle, f.cfg.ParticleCount)
	for i := range f.particles {
		f.particles[i] = NewParticle(f.rng, f.width, f.height)
	}

	f.pulses = f.pulses[:0]
	f.segments = f.segments[:0]
	f.sprites = f.sprites[:0]
	f.generation++
}

// discard drops all entities, the next valid Resize recreates them
func (f *Field) discard() {
	f.nodes = nil
	f.particles = nil
	f.pulses = f.pulses[:0]
	f.segments = f.segments[:0]
	f.sprites = f.sprites[:0]
	f.generation++
}

// Ready reports whether a valid size has been observed
func (f *Field) Ready() bool {
	return f.width > 0 && f.height > 0
}

// Size returns the logical dimensions
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// SetZones replaces the exclusion zones
func (f *Field) SetZones(zones []component.ExclusionZone) {
	f.cfg.Zones = append([]component.ExclusionZone(nil), zones...)
}

// Zones returns the active exclusion zones, callers must not modify the result
func (f *Field) Zones() []component.ExclusionZone {
	return f.cfg.Zones
}

// SetIntensity switches the intensity profile, existing velocities keep their values
func (f *Field) SetIntensity(i parameter.Intensity) {
	f.cfg.Intensity = i
	f.profile = i.Profile()
}

// Intensity returns the active intensity
func (f *Field) Intensity() parameter.Intensity {
	return f.cfg.Intensity
}

// Profile returns the active intensity profile
func (f *Field) Profile() parameter.IntensityProfile {
	return f.profile
}

// ConnectionDistance returns the link threshold in logical units
func (f *Field) ConnectionDistance() float64 {
	return f.cfg.ConnectionDistance
}

// SetPointer records an active pointer position, ignored unless interactive
func (f *Field) SetPointer(x, y float64) {
	if !f.cfg.Interactive {
		return
	}
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

// ClearPointer marks the pointer as gone
func (f *Field) ClearPointer() {
	f.pointer.Active = false
}

// Pointer returns the current pointer state
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Nodes returns the node slice, callers must not modify it
func (f *Field) Nodes() []component.Node { return f.nodes }

// Particles returns the particle slice, callers must not modify it
func (f *Field) Particles() []component.Particle { return f.particles }

// Pulses returns the active pulses, callers must not modify them
func (f *Field) Pulses() []component.DataPulse { return f.pulses }

// Segments returns the connections found by the last Step or Connect
func (f *Field) Segments() []Segment { return f.segments }

// Sprites returns the particles visible after the last Step
func (f *Field) Sprites() []Sprite { return f.sprites }

// Frame returns the number of steps taken
func (f *Field) Frame() uint64 { return f.frame }

// Generation changes every time Reset or a discarding Resize replaces the entities
func (f *Field) Generation() uint64 { return f.generation }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
