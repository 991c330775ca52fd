package parameter

import "time"

// Frame Loop & Host
const (
	// DefaultFrameRate is the animation callback rate (~60 FPS, display refresh analogue)
	DefaultFrameRate = 60

	// MinFrameRate and MaxFrameRate bound the configurable frame rate
	MinFrameRate = 5
	MaxFrameRate = 240

	// EventChannelSize is the buffer between the terminal poller goroutine and the controller loop
	EventChannelSize = 100

	// DefaultPixelRatio is surface pixels per logical unit (device pixel ratio analogue)
	// A half-block pixel is 8x8 logical units, a terminal cell 8x16
	DefaultPixelRatio = 0.125

	// MinPixelRatio and MaxPixelRatio bound the configurable ratio
	MinPixelRatio = 0.02
	MaxPixelRatio = 1.0

	// StatusLogInterval is how often the controller emits a frame statistics log line
	StatusLogInterval = 10 * time.Second
)

// FrameInterval converts a frame rate to the ticker period
func FrameInterval(rate int) time.Duration {
	if rate < MinFrameRate {
		rate = MinFrameRate
	}
	if rate > MaxFrameRate {
		rate = MaxFrameRate
	}
	return time.Second / time.Duration(rate)
}
