package player

import "time"

// BackgroundVideoRef resolves the raw video reference for a heroVideos
// slide at a given rotation position. Resolution order, first match wins:
// explicit background-video list, shared pool (deterministic slide-index
// modulo selection), legacy single videoUrl, then none.
func BackgroundVideoRef(s Slide, cycleIndex, slideIndex int, pool []string) (string, bool) {
	if s.EffectiveBackgroundType() != BackgroundHeroVideos {
		return "", false
	}
	if list := s.SortedBackgroundVideos(); len(list) > 0 {
		entry := list[cycleIndex%len(list)]
		if ref := entry.URLRef(); ref != "" {
			return ref, true
		}
		return "", false
	}
	if s.UseSharedVideos && len(pool) > 0 {
		return pool[slideIndex%len(pool)], true
	}
	if s.VideoURL != "" {
		return s.VideoURL, true
	}
	return "", false
}

// cycler rotates through a slide's background videos on chained single-shot
// timers, one per entry so each position honors its own duration. It is
// owned by the controller and shares its epoch discipline.
type cycler struct {
	videos []BackgroundVideo
	index  int
	timer  TimerHandle
}

// start resets the rotation for a freshly activated slide. Cycling only
// runs when the resolved list has more than one entry; schedule must bind
// the callback to the caller's current epoch.
func (c *cycler) start(s Slide, schedule func(d time.Duration, f func()) TimerHandle, advanced func(newIndex int)) {
	c.stop()
	c.index = 0
	c.videos = nil
	if s.EffectiveBackgroundType() != BackgroundHeroVideos {
		return
	}
	c.videos = s.SortedBackgroundVideos()
	if len(c.videos) < 2 {
		return
	}
	c.scheduleNext(schedule, advanced)
}

func (c *cycler) scheduleNext(schedule func(d time.Duration, f func()) TimerHandle, advanced func(newIndex int)) {
	current := c.videos[c.index]
	c.timer = schedule(current.EffectiveDuration(), func() {
		c.index = (c.index + 1) % len(c.videos)
		advanced(c.index)
		// Chained single-shot, not an interval: the next hop uses the
		// new entry's own duration.
		c.scheduleNext(schedule, advanced)
	})
}

func (c *cycler) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
