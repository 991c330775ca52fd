package component

// TrailCapacity is the max number of points retained by a pulse trail
const TrailCapacity = 8

// TrailPoint is one recorded pulse position
type TrailPoint struct {
	X, Y float64
}

// Trail is a fixed-capacity FIFO of recent pulse positions
// Push beyond capacity evicts the oldest point
type Trail struct {
	points [TrailCapacity]TrailPoint
	head   int // Index of the oldest point
	count  int
}

// Push appends a point, evicting the oldest when full
func (t *Trail) Push(x, y float64) {
	if t.count < TrailCapacity {
		t.points[(t.head+t.count)%TrailCapacity] = TrailPoint{X: x, Y: y}
		t.count++
		return
	}
	t.points[t.head] = TrailPoint{X: x, Y: y}
	t.head = (t.head + 1) % TrailCapacity
}

// Len returns the number of retained points
func (t *Trail) Len() int {
	return t.count
}

// At returns the i-th point, 0 is the oldest
func (t *Trail) At(i int) TrailPoint {
	return t.points[(t.head+i)%TrailCapacity]
}

// Points copies the trail oldest first
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// DataPulse is a signal traveling along a connection from one node to another
type DataPulse struct {
	From, To int     // Node indices
	Progress float64 // [0,1), removed once it reaches 1
	Speed    float64 // Progress per frame
	Color    int     // Index into the pulse palette
	Trail    Trail
}
