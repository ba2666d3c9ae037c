package player

import (
	"sync"
	"time"
)

// ProgressInterval is how often the slide progress percentage is sampled.
const ProgressInterval = 50 * time.Millisecond

// PreloadFunc is invoked with the index of the upcoming slide whenever the
// current index changes and more slides remain. Best effort; the engine
// neither waits for nor observes the outcome.
type PreloadFunc func(nextIndex int)

// Options configure a Controller. Zero values select the system clock, an
// identity asset resolver and no callbacks.
type Options struct {
	Clock      Clock
	Assets     AssetResolver
	SharedPool []string
	OnComplete func()
	OnSkip     func()
	Preload    PreloadFunc
}

// State is a read-only snapshot of playback, safe for cross-component reads.
type State struct {
	SlideIndex      int     `json:"slideIndex"`
	Playing         bool    `json:"playing"`
	Progress        float64 `json:"progress"`
	BackgroundIndex int     `json:"backgroundIndex"`
	ObjectPhases    []Phase `json:"objectPhases,omitempty"`
	Completed       bool    `json:"completed"`
}

// Controller is the slideshow timeline driver. It owns the current slide
// index, play state and progress, advances slides on expiry timers, and
// drives the background cycler and per-object animators for the active
// slide. All mutable state lives behind one mutex; every activation cancels
// the previous timer set before scheduling a new one, and an epoch counter
// discards fires from timers that lost the race with cancellation.
type Controller struct {
	cfg        *Config
	clock      Clock
	assets     AssetResolver
	pool       []string
	onComplete func()
	onSkip     func()
	preload    PreloadFunc

	mu        sync.Mutex
	listeners []Listener
	epoch     uint64
	index     int
	playing   bool
	progress  float64
	completed bool
	stopped   bool

	slideStart    time.Time
	expiryTimer   TimerHandle
	progressTimer TimerHandle
	bg            cycler
	animators     []*animator

	// Deferred until the lock is released so subscribers never run inside it.
	pendingEvents []Event
	pendingCalls  []func()
}

// NewController builds a controller for an immutable configuration. Call
// Start to begin playback and Stop to tear down.
func NewController(cfg *Config, opts Options) *Controller {
	clk := opts.Clock
	if clk == nil {
		clk = SystemClock
	}
	assets := opts.Assets
	if assets == nil {
		assets = IdentityResolver
	}
	return &Controller{
		cfg:        cfg,
		clock:      clk,
		assets:     assets,
		pool:       opts.SharedPool,
		onComplete: opts.OnComplete,
		onSkip:     opts.OnSkip,
		preload:    opts.Preload,
	}
}

// Subscribe registers a listener for playback events. Register before Start;
// events are not replayed.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// Start enters playback. The first slide activates immediately when the
// configuration asks for autoplay; otherwise the controller idles until
// Play is called.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.index = 0
	c.playing = c.cfg.AutoPlay && len(c.cfg.Slides) > 0
	c.emitLocked(Event{Type: EventPlayState, SlideIndex: c.index, Playing: c.playing})
	if c.playing {
		c.activateLocked()
	}
	c.unlockAndDispatch()
}

// Play resumes a paused controller. The current slide re-activates from
// zero: progress, background rotation and object animations all reset, the
// same as any other slide activation.
func (c *Controller) Play() {
	c.mu.Lock()
	if c.stopped || c.playing || c.completed || len(c.cfg.Slides) == 0 {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.emitLocked(Event{Type: EventPlayState, SlideIndex: c.index, Playing: true})
	c.activateLocked()
	c.unlockAndDispatch()
}

// Pause halts playback, cancelling every timer for the active slide.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.stopped || !c.playing {
		c.mu.Unlock()
		return
	}
	c.epoch++
	c.cancelTimersLocked()
	c.playing = false
	c.emitLocked(Event{Type: EventPlayState, SlideIndex: c.index, Playing: false})
	c.unlockAndDispatch()
}

// Skip terminates the session: timers are cancelled, playback stops, and
// onSkip then onComplete fire in that order. No further advancement happens
// unless Replay is called.
func (c *Controller) Skip() {
	c.mu.Lock()
	if c.stopped || c.completed {
		c.mu.Unlock()
		return
	}
	c.epoch++
	c.cancelTimersLocked()
	c.playing = false
	c.completed = true
	c.emitLocked(Event{Type: EventSkipped, SlideIndex: c.index})
	c.emitLocked(Event{Type: EventCompleted, SlideIndex: c.index})
	if c.onSkip != nil {
		c.pendingCalls = append(c.pendingCalls, c.onSkip)
	}
	if c.onComplete != nil {
		c.pendingCalls = append(c.pendingCalls, c.onComplete)
	}
	c.unlockAndDispatch()
}

// Replay restarts the sequence from the first slide.
func (c *Controller) Replay() {
	c.mu.Lock()
	if c.stopped || len(c.cfg.Slides) == 0 {
		c.mu.Unlock()
		return
	}
	c.index = 0
	c.completed = false
	c.playing = true
	c.emitLocked(Event{Type: EventPlayState, SlideIndex: 0, Playing: true})
	c.activateLocked()
	c.unlockAndDispatch()
}

// Stop tears the controller down, cancelling every owned timer. A stopped
// controller ignores all further calls; a timer left running after Stop is
// a correctness bug, not a cleanup nicety.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.epoch++
	c.cancelTimersLocked()
	c.playing = false
	c.stopped = true
	c.mu.Unlock()
}

// Snapshot returns the current playback state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	phases := make([]Phase, len(c.animators))
	for i, a := range c.animators {
		phases[i] = a.phase
	}
	return State{
		SlideIndex:      c.index,
		Playing:         c.playing,
		Progress:        c.progress,
		BackgroundIndex: c.bg.index,
		ObjectPhases:    phases,
		Completed:       c.completed,
	}
}

// Config returns the immutable configuration driving this controller.
func (c *Controller) Config() *Config { return c.cfg }

// activateLocked starts the active slide: it invalidates and cancels any
// previously scheduled timers, then arms the expiry timer, the progress
// sampler, the background cycler and the object animators, all anchored at
// the same instant. Caller holds the lock.
func (c *Controller) activateLocked() {
	c.epoch++
	c.cancelTimersLocked()
	if !c.playing || c.index >= len(c.cfg.Slides) {
		return
	}

	slide := c.cfg.Slides[c.index]
	c.progress = 0
	c.slideStart = c.clock.Now()

	c.emitLocked(Event{Type: EventSlideChanged, SlideIndex: c.index, Playing: true})
	c.emitLocked(Event{Type: EventProgress, SlideIndex: c.index, Playing: true})

	epoch := c.epoch
	duration := slide.EffectiveDuration()
	c.expiryTimer = c.clock.AfterFunc(duration, func() { c.onExpiry(epoch) })
	c.progressTimer = c.clock.AfterFunc(ProgressInterval, func() { c.onProgressTick(epoch) })

	slideIndex := c.index
	c.bg.start(slide, c.scheduleLocked(epoch), func(newIndex int) {
		c.emitLocked(Event{Type: EventBackgroundChanged, SlideIndex: slideIndex, BackgroundIndex: newIndex, Playing: true})
	})

	c.animators = startAnimators(slide.SortedObjects(), c.scheduleLocked(epoch), func(objectIndex int, p Phase) {
		a := c.animators[objectIndex]
		if a.apply(p) {
			c.emitLocked(Event{Type: EventObjectPhase, SlideIndex: slideIndex, ObjectIndex: objectIndex, Phase: p, Playing: true})
		}
	})

	if c.preload != nil && c.index+1 < len(c.cfg.Slides) {
		next := c.index + 1
		preload := c.preload
		c.pendingCalls = append(c.pendingCalls, func() { preload(next) })
	}
}

// scheduleLocked returns a scheduler whose callbacks re-enter the controller
// under the lock and are dropped when their epoch has been superseded.
func (c *Controller) scheduleLocked(epoch uint64) func(d time.Duration, f func()) TimerHandle {
	return func(d time.Duration, f func()) TimerHandle {
		return c.clock.AfterFunc(d, func() {
			c.mu.Lock()
			if epoch != c.epoch || !c.playing {
				c.mu.Unlock()
				return
			}
			f()
			c.unlockAndDispatch()
		})
	}
}

func (c *Controller) onExpiry(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || !c.playing {
		c.mu.Unlock()
		return
	}
	// Progress lands on exactly 100 at expiry regardless of sampling jitter.
	c.progress = 100
	c.emitLocked(Event{Type: EventProgress, SlideIndex: c.index, Progress: 100, Playing: true})

	switch {
	case c.index < len(c.cfg.Slides)-1:
		c.index++
		c.activateLocked()
	case c.cfg.Loop:
		c.index = 0
		c.activateLocked()
	default:
		c.epoch++
		c.cancelTimersLocked()
		c.playing = false
		c.completed = true
		c.emitLocked(Event{Type: EventPlayState, SlideIndex: c.index, Playing: false})
		c.emitLocked(Event{Type: EventCompleted, SlideIndex: c.index})
		if c.onComplete != nil {
			c.pendingCalls = append(c.pendingCalls, c.onComplete)
		}
	}
	c.unlockAndDispatch()
}

func (c *Controller) onProgressTick(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || !c.playing {
		c.mu.Unlock()
		return
	}
	slide := c.cfg.Slides[c.index]
	elapsed := c.clock.Now().Sub(c.slideStart)
	pct := float64(elapsed) / float64(slide.EffectiveDuration()) * 100
	if pct > 100 {
		pct = 100
	}
	c.progress = pct
	c.emitLocked(Event{Type: EventProgress, SlideIndex: c.index, Progress: pct, Playing: true})
	if pct < 100 {
		c.progressTimer = c.clock.AfterFunc(ProgressInterval, func() { c.onProgressTick(epoch) })
	}
	c.unlockAndDispatch()
}

func (c *Controller) cancelTimersLocked() {
	if c.expiryTimer != nil {
		c.expiryTimer.Stop()
		c.expiryTimer = nil
	}
	if c.progressTimer != nil {
		c.progressTimer.Stop()
		c.progressTimer = nil
	}
	c.bg.stop()
	for _, a := range c.animators {
		a.stop()
	}
}

func (c *Controller) emitLocked(ev Event) {
	c.pendingEvents = append(c.pendingEvents, ev)
}

// unlockAndDispatch releases the lock and then delivers queued events and
// callbacks in order. Keeping subscribers outside the lock means a listener
// may call back into the controller without deadlocking.
func (c *Controller) unlockAndDispatch() {
	events := c.pendingEvents
	calls := c.pendingCalls
	c.pendingEvents = nil
	c.pendingCalls = nil
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			l(ev)
		}
	}
	for _, call := range calls {
		call()
	}
}
