package field

import (
	"math"

	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/physics"
	"github.com/lixenwraith/neural-field/vmath"
)

// StepStats summarizes one simulation step
type StepStats struct {
	VisibleParticles int
	RebornParticles  int
	Connections      int
	Bounces          int
	PulsesSpawned    int
	PulsesCompleted  int
}

// Step advances the field by one frame
// Fixed logical step per call, frame rate variance changes apparent speed
// No-op until a valid size has been observed
func (f *Field) Step() StepStats {
	var stats StepStats
	if !f.Ready() {
		return stats
	}

	f.stepParticles(&stats)
	f.stepNodes(&stats)
	stats.Connections = f.Connect()
	f.stepPulses(&stats)
	if f.spawnPulse() {
		stats.PulsesSpawned++
	}

	f.frame++
	return stats
}

// stepParticles advances, wraps, and rebirths motes, collecting the visible ones as sprites
func (f *Field) stepParticles(stats *StepStats) {
	f.sprites = f.sprites[:0]
	hasZones := len(f.cfg.Zones) > 0
	alphaScale := f.profile.ParticleAlpha

	for i := len(f.particles) - 1; i >= 0; i-- {
		p := &f.particles[i]

		physics.Integrate(&p.X, &p.Y, p.VX, p.VY)
		p.Life--

		physics.WrapAxis(&p.X, f.width)
		physics.WrapAxis(&p.Y, f.height)

		if p.Life <= 0 {
			f.particles[i] = NewParticle(f.rng, f.width, f.height)
			stats.RebornParticles++
			continue
		}

		alpha := p.Alpha * p.LifeRatio() * alphaScale * (0.5 + p.Depth*0.5)
		if alpha <= parameter.VisibilityThreshold {
			continue
		}

		if hasZones {
			fade := ZoneFade(p.X, p.Y, f.cfg.Zones)
			if fade == 0 {
				continue
			}
			alpha *= fade
			if alpha <= parameter.VisibilityThreshold {
				continue
			}
		}

		f.sprites = append(f.sprites, Sprite{X: p.X, Y: p.Y, Size: p.Size, Depth: p.Depth, Alpha: alpha})
	}
	stats.VisibleParticles = len(f.sprites)
}

// stepNodes applies zone repulsion, velocity smoothing, soft bounce, pointer attraction, and damping
func (f *Field) stepNodes(stats *StepStats) {
	hasZones := len(f.cfg.Zones) > 0
	pointerActive := f.cfg.Interactive && f.pointer.Active

	loX, hiX := physics.AxisBounds(f.width, f.bounce.Margin)
	loY, hiY := physics.AxisBounds(f.height, f.bounce.Margin)

	for i := range f.nodes {
		n := &f.nodes[i]

		if hasZones {
			rep := ZoneRepulsion(n.X, n.Y, f.cfg.Zones)
			n.TargetVX += rep.X
			n.TargetVY += rep.Y
			n.AlphaMultiplier = rep.Alpha
		} else {
			n.AlphaMultiplier = 1
		}

		physics.ApproachVelocity(&n.VX, &n.VY, n.TargetVX, n.TargetVY, parameter.NodeVelocityLerp)
		physics.Integrate(&n.X, &n.Y, n.VX, n.VY)

		if physics.SoftBounceAxis(&n.X, &n.TargetVX, loX, hiX, &f.bounce, f.rng) {
			stats.Bounces++
		}
		if physics.SoftBounceAxis(&n.Y, &n.TargetVY, loY, hiY, &f.bounce, f.rng) {
			stats.Bounces++
		}

		if pointerActive {
			physics.ApplyAttraction(&n.TargetVX, &n.TargetVY, n.X, n.Y, f.pointer.X, f.pointer.Y, n.Depth, &f.attract)
		}

		physics.Damp(&n.TargetVX, &n.TargetVY, parameter.NodeTargetDamping)

		n.PulsePhase += n.PulseSpeed
		if n.PulsePhase > 2*math.Pi {
			n.PulsePhase -= 2 * math.Pi
		}
	}
}

// Connect rebuilds node connections and link segments at current positions
// Full O(n²) scan on squared distances, connections are symmetric by construction
// Returns the number of links
func (f *Field) Connect() int {
	for i := range f.nodes {
		f.nodes[i].Connections = f.nodes[i].Connections[:0]
	}
	f.segments = f.segments[:0]

	maxSq := f.cfg.ConnectionDistance * f.cfg.ConnectionDistance
	for i := 0; i < len(f.nodes); i++ {
		a := &f.nodes[i]
		for j := i + 1; j < len(f.nodes); j++ {
			b := &f.nodes[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			distSq := dx*dx + dy*dy
			if distSq >= maxSq {
				continue
			}
			a.Connections = append(a.Connections, j)
			b.Connections = append(b.Connections, i)
			f.segments = append(f.segments, Segment{A: i, B: j, Dist: math.Sqrt(distSq)})
		}
	}
	return len(f.segments)
}

// stepPulses advances pulses, drops finished or orphaned ones, and records trail positions
func (f *Field) stepPulses(stats *StepStats) {
	kept := f.pulses[:0]
	for i := range f.pulses {
		p := f.pulses[i]
		p.Progress += p.Speed

		if p.Progress >= 1 {
			stats.PulsesCompleted++
			continue
		}
		if p.From >= len(f.nodes) || p.To >= len(f.nodes) {
			continue
		}

		from := &f.nodes[p.From]
		to := &f.nodes[p.To]
		x, y := vmath.LerpPoint(from.X, from.Y, to.X, to.Y, p.Progress)
		p.Trail.Push(x, y)

		kept = append(kept, p)
	}
	f.pulses = kept
}

// spawnPulse makes at most one spawn attempt, gated by the intensity pulse frequency
// Returns true if a pulse was created
func (f *Field) spawnPulse() bool {
	if len(f.nodes) == 0 {
		return false
	}
	if f.rng.Float64() > f.profile.PulseFrequency {
		return false
	}

	from := f.rng.Intn(len(f.nodes))
	conns := f.nodes[from].Connections
	if len(conns) == 0 {
		return false
	}
	to := conns[f.rng.Intn(len(conns))]

	f.pulses = append(f.pulses, NewPulse(f.rng, from, to))
	return true
}

// PulsePosition returns the current interpolated position of a pulse
func (f *Field) PulsePosition(p *component.DataPulse) (x, y float64, ok bool) {
	if p.From >= len(f.nodes) || p.To >= len(f.nodes) {
		return 0, 0, false
	}
	from := &f.nodes[p.From]
	to := &f.nodes[p.To]
	x, y = vmath.LerpPoint(from.X, from.Y, to.X, to.Y, p.Progress)
	return x, y, true
}
