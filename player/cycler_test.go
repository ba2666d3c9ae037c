package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotationSlide() Slide {
	return Slide{
		Duration: 60000,
		BackgroundVideos: []BackgroundVideo{
			{VideoURL: "a.mp4", Duration: 1000, SortOrder: 0},
			{VideoURL: "b.mp4", Duration: 2000, SortOrder: 1},
			{VideoURL: "c.mp4", Duration: 3000, SortOrder: 2},
		},
	}
}

func TestBackgroundCyclingHonorsPerEntryDurations(t *testing.T) {
	clk := newFakeClock()
	cfg := &Config{AutoPlay: true, Slides: []Slide{rotationSlide()}}
	c, rec := newTestController(cfg, clk, Options{})
	c.Start()
	defer c.Stop()

	type hop struct {
		at    time.Duration
		index int
	}
	// Chained single-shot timers: each hop waits the NEW entry's duration.
	expected := []hop{
		{1000 * time.Millisecond, 1}, // a ran 1000
		{3000 * time.Millisecond, 2}, // b ran 2000
		{6000 * time.Millisecond, 0}, // c ran 3000, wrap
		{7000 * time.Millisecond, 1}, // a again
	}

	last := time.Duration(0)
	for _, h := range expected {
		rec.events = nil
		clk.Advance(h.at - last)
		last = h.at
		hops := rec.byType(EventBackgroundChanged)
		require.Len(t, hops, 1, "at %v", h.at)
		assert.Equal(t, h.index, hops[0].BackgroundIndex, "at %v", h.at)
	}
}

func TestNoCyclingForSingleVideo(t *testing.T) {
	clk := newFakeClock()
	cfg := &Config{AutoPlay: true, Slides: []Slide{{
		Duration:         30000,
		BackgroundVideos: []BackgroundVideo{{VideoURL: "only.mp4", Duration: 1000}},
	}}}
	c, rec := newTestController(cfg, clk, Options{})
	c.Start()
	defer c.Stop()

	clk.Advance(10 * time.Second)
	assert.Empty(t, rec.byType(EventBackgroundChanged))
}

func TestNoCyclingForStaticBackground(t *testing.T) {
	clk := newFakeClock()
	cfg := &Config{AutoPlay: true, Slides: []Slide{{
		Duration:        30000,
		BackgroundType:  BackgroundColor,
		BackgroundColor: "#112233",
		BackgroundVideos: []BackgroundVideo{
			{VideoURL: "a.mp4", Duration: 500},
			{VideoURL: "b.mp4", Duration: 500},
		},
	}}}
	c, rec := newTestController(cfg, clk, Options{})
	c.Start()
	defer c.Stop()

	clk.Advance(10 * time.Second)
	assert.Empty(t, rec.byType(EventBackgroundChanged))
}

func TestBackgroundIndexResetsOnSlideChange(t *testing.T) {
	clk := newFakeClock()
	slide := rotationSlide()
	slide.Duration = 2500
	cfg := &Config{AutoPlay: true, Slides: []Slide{slide, {Duration: 1000}}}
	c, _ := newTestController(cfg, clk, Options{})
	c.Start()
	defer c.Stop()

	clk.Advance(1000 * time.Millisecond)
	require.Equal(t, 1, c.Snapshot().BackgroundIndex)

	// Slide expiry cancels the pending hop and resets the rotation.
	clk.Advance(1500 * time.Millisecond)
	snap := c.Snapshot()
	require.Equal(t, 1, snap.SlideIndex)
	require.Equal(t, 0, snap.BackgroundIndex)
}

func TestRotationOrderFollowsSortOrder(t *testing.T) {
	s := Slide{BackgroundVideos: []BackgroundVideo{
		{VideoURL: "third.mp4", SortOrder: 30},
		{VideoURL: "first.mp4", SortOrder: 10},
		{VideoURL: "second.mp4", SortOrder: 20},
	}}
	sorted := s.SortedBackgroundVideos()
	require.Len(t, sorted, 3)
	assert.Equal(t, "first.mp4", sorted[0].VideoURL)
	assert.Equal(t, "second.mp4", sorted[1].VideoURL)
	assert.Equal(t, "third.mp4", sorted[2].VideoURL)
}
