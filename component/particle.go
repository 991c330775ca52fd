package component

// Particle is a drifting background mote, independent of the node graph
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Frames left, counts down to 0
	MaxLife float64
	Alpha   float64 // Base opacity before life/intensity/depth scaling
	Depth   float64 // [0,1)
	Size    float64 // Logical diameter
}

// LifeRatio returns remaining life as a fraction of MaxLife
func (p *Particle) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}
