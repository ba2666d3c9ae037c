package player

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Events addressing element 0 must serialize with their index fields; a
// consumer matching frames against element attributes sees no difference
// between index 0 and index 3.
func TestEventJSONKeepsZeroIndices(t *testing.T) {
	clk := newFakeClock()
	delay := 1500
	cfg := &Config{
		AutoPlay: true,
		Loop:     true,
		Slides: []Slide{{
			Duration: 4000,
			BackgroundVideos: []BackgroundVideo{
				{VideoURL: "a.mp4", Duration: 1000, SortOrder: 0},
				{VideoURL: "b.mp4", Duration: 1000, SortOrder: 1},
			},
			Objects: []Object{{
				Type:                ObjectText,
				AnimationInDelay:    100,
				AnimationInDuration: 100,
				AnimationOut:        "fadeOut",
				AnimationOutDelay:   &delay,
			}},
		}},
	}
	c, rec := newTestController(cfg, clk, Options{})
	c.Start()
	defer c.Stop()

	// 2000ms covers the first object's visible transition and the rotation
	// wrapping a -> b -> a, i.e. back to background index 0.
	clk.Advance(2000 * time.Millisecond)

	phases := rec.byType(EventObjectPhase)
	require.NotEmpty(t, phases)
	for _, ev := range phases {
		data, err := json.Marshal(ev)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"objectIndex":0`)
	}

	backgrounds := rec.byType(EventBackgroundChanged)
	require.Len(t, backgrounds, 2)
	assert.Equal(t, 0, backgrounds[1].BackgroundIndex, "rotation must wrap back to entry 0")

	data, err := json.Marshal(backgrounds[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backgroundIndex":0`)

	// progress frames always carry their value, including the initial zero
	progress := rec.byType(EventProgress)
	require.NotEmpty(t, progress)
	data, err = json.Marshal(progress[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"progress":0`)
}
