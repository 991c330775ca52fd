package field

import (
	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/physics"
	"github.com/lixenwraith/neural-field/vmath"
)

// NewNode creates a node at a random position inside the edge margins
// Nearer nodes (higher depth) get larger radius and slower drift for parallax
func NewNode(rng *vmath.FastRand, width, height float64, profile parameter.IntensityProfile) component.Node {
	depth := rng.Float64()
	speedMul := 0.5 + depth*0.5
	targetVX := rng.Centered(profile.NodeSpeed * speedMul)
	targetVY := rng.Centered(profile.NodeSpeed * speedMul)

	loX, hiX := physics.AxisBounds(width, parameter.NodeEdgeMargin)
	loY, hiY := physics.AxisBounds(height, parameter.NodeEdgeMargin)

	return component.Node{
		X:               rng.Range(loX, hiX-loX),
		Y:               rng.Range(loY, hiY-loY),
		VX:              targetVX,
		VY:              targetVY,
		TargetVX:        targetVX,
		TargetVY:        targetVY,
		Radius:          rng.Range(parameter.NodeRadiusMin, parameter.NodeRadiusSpan) + depth*parameter.NodeRadiusDepth,
		Depth:           depth,
		PulsePhase:      rng.Float64() * vmath.TwoPi,
		PulseSpeed:      rng.Range(parameter.NodeGlowSpeedMin, parameter.NodeGlowSpeedSpan),
		AlphaMultiplier: 1,
	}
}

// NewParticle creates a mote anywhere on the field with a full life counter
func NewParticle(rng *vmath.FastRand, width, height float64) component.Particle {
	maxLife := rng.Range(parameter.ParticleLifeMin, parameter.ParticleLifeSpan)
	depth := rng.Float64()

	return component.Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		VX:      rng.Centered(parameter.ParticleVelocitySpan) + parameter.ParticleFlowX*depth,
		VY:      rng.Centered(parameter.ParticleVelocitySpan) + parameter.ParticleFlowY*depth,
		Life:    maxLife,
		MaxLife: maxLife,
		Alpha:   rng.Range(parameter.ParticleAlphaMin, parameter.ParticleAlphaSpan),
		Depth:   depth,
		Size:    parameter.ParticleSizeMin + depth*parameter.ParticleSizeDepthGain,
	}
}

// NewPulse creates a pulse leaving from toward to with random speed and palette color
func NewPulse(rng *vmath.FastRand, from, to int) component.DataPulse {
	return component.DataPulse{
		From:  from,
		To:    to,
		Speed: rng.Range(parameter.PulseSpeedMin, parameter.PulseSpeedSpan),
		Color: rng.Intn(len(visual.PulsePalette)),
	}
}
