package component

// Node is a point of the simulated network graph
// Depth and Radius are fixed at creation, everything else changes per frame
type Node struct {
	X, Y            float64 // Logical position
	VX, VY          float64 // Actual velocity, chases target velocity
	TargetVX        float64
	TargetVY        float64
	Radius          float64
	Depth           float64 // [0,1), higher is nearer to the viewer
	PulsePhase      float64 // Glow sine phase (radians)
	PulseSpeed      float64 // Phase advance per frame
	Connections     []int   // Neighbor indices, rebuilt every frame
	AlphaMultiplier float64 // [0,1], zone visibility
}

// Connected reports whether j is among the node's current neighbors
func (n *Node) Connected(j int) bool {
	for _, c := range n.Connections {
		if c == j {
			return true
		}
	}
	return false
}
