package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeStreamerShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 200 * time.Millisecond

	s, err := NewChimeStreamer(rate, 660, duration, 1)
	require.NoError(t, err)

	total := 0
	peak := 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			assert.Equal(t, buf[i][0], buf[i][1], "mono voice")
		}
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, rate.N(duration), total, "voice is finite")
	assert.Greater(t, peak, 0.1)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestChimeStreamerStartsSilent(t *testing.T) {
	s, err := NewChimeStreamer(beep.SampleRate(44100), 660, 50*time.Millisecond, 1)
	require.NoError(t, err)

	buf := make([][2]float64, 1)
	_, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Zero(t, buf[0][0], "attack begins at zero")
}

func TestChimeStreamerRejectsNyquist(t *testing.T) {
	_, err := NewChimeStreamer(beep.SampleRate(8000), 5000, time.Millisecond, 1)
	assert.Error(t, err)
}

func TestChimerSilentUntilInitialized(t *testing.T) {
	c := NewChimer(0.5, time.Millisecond)
	assert.False(t, c.Chime())
	assert.Zero(t, c.Played())
	c.Cleanup()
}

func TestChimerRateLimit(t *testing.T) {
	c := NewChimer(0.5, 250*time.Millisecond)
	now := time.Now()

	assert.True(t, c.allow(now))
	assert.False(t, c.allow(now.Add(100*time.Millisecond)))
	assert.True(t, c.allow(now.Add(300*time.Millisecond)))
}

func TestEnvelopeDecays(t *testing.T) {
	e := &envelope{attack: 10, release: 100, gain: 1}
	assert.InDelta(t, 0.5, e.level(5), 1e-9)
	assert.InDelta(t, 1.0, e.level(10), 1e-9)
	assert.Less(t, e.level(500), e.level(50))
}
