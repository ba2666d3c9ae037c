package player

// EventType tags a playback state-change notification.
type EventType string

const (
	// EventSlideChanged fires on every slide activation, including replays.
	EventSlideChanged EventType = "slideChanged"
	// EventProgress publishes the sampled progress percentage. Display
	// only; advancement is driven by the expiry timer.
	EventProgress EventType = "progress"
	// EventBackgroundChanged fires when the background rotation advances.
	EventBackgroundChanged EventType = "backgroundChanged"
	// EventObjectPhase fires on every object animation phase transition.
	EventObjectPhase EventType = "objectPhase"
	// EventPlayState fires when playback starts, pauses or resumes.
	EventPlayState EventType = "playState"
	// EventSkipped fires once when the viewer skips the slideshow.
	EventSkipped EventType = "skipped"
	// EventCompleted fires once when playback reaches its terminal state.
	EventCompleted EventType = "completed"
)

// Event is one state-change notification published to subscribers. The
// rendering layer consumes these; the engine itself never reacts to them.
// Index fields serialize even at zero: element 0 is addressed as often as
// any other and consumers match on the field being present.
type Event struct {
	Type            EventType `json:"type"`
	SlideIndex      int       `json:"slideIndex"`
	Progress        float64   `json:"progress"`
	BackgroundIndex int       `json:"backgroundIndex"`
	ObjectIndex     int       `json:"objectIndex"`
	Phase           Phase     `json:"phase,omitempty"`
	Playing         bool      `json:"playing"`
}

// Listener receives playback events. Listeners are invoked synchronously
// after the triggering mutation completes, outside the engine lock, in
// emission order.
type Listener func(Event)
