// Package player implements the slideshow playback engine: the timeline
// controller that advances slides on expiry, the background video cycler,
// per-object animation state machines, media resolution and the preloader.
package player

import (
	"encoding/json"
	"log/slog"
	"sort"
	"time"
)

// DefaultSlideDuration is used when a slide declares no duration.
const DefaultSlideDuration = 5000 * time.Millisecond

// BackgroundType selects how a slide fills its backdrop.
type BackgroundType string

const (
	BackgroundHeroVideos BackgroundType = "heroVideos"
	BackgroundColor      BackgroundType = "color"
	BackgroundImage      BackgroundType = "image"
	BackgroundNone       BackgroundType = "none"
)

// ObjectType is the closed set of slide object kinds.
type ObjectType string

const (
	ObjectText  ObjectType = "text"
	ObjectImage ObjectType = "image"
	ObjectVideo ObjectType = "video"
)

// HAlign and VAlign position an object inside the slide viewport.
type HAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

type VAlign string

const (
	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// Config is the immutable slideshow configuration loaded once per playback
// session. The engine never mutates it.
type Config struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`

	AutoPlay     bool `json:"autoPlay"`
	Loop         bool `json:"loop"`
	ShowProgress bool `json:"showProgress"`
	AllowSkip    bool `json:"allowSkip"`

	// Cosmetic transition hints, not used for timing decisions.
	TransitionType     string `json:"transitionType,omitempty"`
	TransitionDuration int    `json:"transitionDuration,omitempty"`

	Slides []Slide `json:"slides"`
}

// MediaRef is a linked media record carrying only its URL.
type MediaRef struct {
	URL string `json:"url"`
}

// BackgroundVideo is one entry of a slide's background video rotation.
type BackgroundVideo struct {
	Video     *MediaRef `json:"video,omitempty"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	Duration  int       `json:"duration,omitempty"` // ms, default 5000
	SortOrder int       `json:"sortOrder"`
}

// URLRef returns the entry's video reference, preferring the linked media
// record over the direct URL field.
func (b BackgroundVideo) URLRef() string {
	if b.Video != nil && b.Video.URL != "" {
		return b.Video.URL
	}
	return b.VideoURL
}

// EffectiveDuration returns the entry's cycle duration, defaulting when absent.
func (b BackgroundVideo) EffectiveDuration() time.Duration {
	if b.Duration <= 0 {
		return DefaultSlideDuration
	}
	return time.Duration(b.Duration) * time.Millisecond
}

// LegacyText carries the old single title/subtitle fields with their
// per-field animation settings. Rendered only when a slide has no objects.
type LegacyText struct {
	Text              string  `json:"text"`
	Size              SizeTag `json:"size,omitempty"`
	Color             string  `json:"color,omitempty"`
	Animation         string  `json:"animation,omitempty"`
	AnimationDelay    int     `json:"animationDelay,omitempty"`
	AnimationDuration int     `json:"animationDuration,omitempty"`
}

// Slide is one timed unit of the sequence.
type Slide struct {
	ID       int64 `json:"id"`
	Duration int   `json:"duration,omitempty"` // ms, default 5000

	BackgroundType   BackgroundType    `json:"backgroundType,omitempty"`
	BackgroundColor  string            `json:"backgroundColor,omitempty"`
	BackgroundImage  string            `json:"backgroundImage,omitempty"`
	BackgroundVideos []BackgroundVideo `json:"backgroundVideos,omitempty"`
	// Legacy single video reference, superseded by BackgroundVideos.
	VideoURL string `json:"videoUrl,omitempty"`
	// Fall back to the shared media pool when no explicit videos are set.
	// Selection is deterministic (slide index modulo pool size) despite the
	// historical "random" naming; the preloader depends on predictability.
	UseSharedVideos bool `json:"useRandomHeroVideos,omitempty"`

	Layout         LayoutType  `json:"layout,omitempty"`
	OverlayType    OverlayType `json:"overlayType,omitempty"`
	OverlayOpacity int         `json:"overlayOpacity,omitempty"` // 0-100
	OverlayColor   string      `json:"overlayColor,omitempty"`

	Objects []Object `json:"objects,omitempty"`

	Title    LegacyText `json:"title,omitempty"`
	Subtitle LegacyText `json:"subtitle,omitempty"`
}

// EffectiveDuration returns how long the slide stays active.
func (s Slide) EffectiveDuration() time.Duration {
	if s.Duration <= 0 {
		return DefaultSlideDuration
	}
	return time.Duration(s.Duration) * time.Millisecond
}

// EffectiveBackgroundType returns the slide's background type, defaulting
// to heroVideos when unset.
func (s Slide) EffectiveBackgroundType() BackgroundType {
	if s.BackgroundType == "" {
		return BackgroundHeroVideos
	}
	return s.BackgroundType
}

// SortedBackgroundVideos returns the rotation entries ordered by sort order.
// The sort is stable so equal orders keep insertion order.
func (s Slide) SortedBackgroundVideos() []BackgroundVideo {
	if len(s.BackgroundVideos) == 0 {
		return nil
	}
	out := make([]BackgroundVideo, len(s.BackgroundVideos))
	copy(out, s.BackgroundVideos)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// SortedObjects returns the slide's objects in render order.
func (s Slide) SortedObjects() []Object {
	if len(s.Objects) == 0 {
		return nil
	}
	out := make([]Object, len(s.Objects))
	copy(out, s.Objects)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// UsesLegacyText reports whether the old title/subtitle fields should render.
// Objects take precedence whenever the list is non-empty.
func (s Slide) UsesLegacyText() bool {
	return len(s.Objects) == 0
}

// Object is a positioned, independently animated content element.
type Object struct {
	ID   int64      `json:"id"`
	Type ObjectType `json:"objectType"`

	HorizontalAlign HAlign `json:"horizontalAlign,omitempty"`
	VerticalAlign   VAlign `json:"verticalAlign,omitempty"`
	OffsetX         int    `json:"offsetX,omitempty"`
	OffsetY         int    `json:"offsetY,omitempty"`

	AnimationIn         string `json:"animationIn,omitempty"`
	AnimationInDelay    int    `json:"animationInDelay,omitempty"`    // ms from slide start
	AnimationInDuration int    `json:"animationInDuration,omitempty"` // ms

	// AnimationOutDelay is measured from slide start, not from the end of
	// the in-animation. Absent means the object never exits.
	AnimationOut         string `json:"animationOut,omitempty"`
	AnimationOutDelay    *int   `json:"animationOutDelay,omitempty"`
	AnimationOutDuration int    `json:"animationOutDuration,omitempty"`
	StayOnScreen         bool   `json:"stayOnScreen,omitempty"`

	// Properties is the serialized type-specific attribute bag.
	Properties string `json:"properties,omitempty"`

	SortOrder int `json:"sortOrder"`
}

// HasExit reports whether an exit animation is scheduled for the object.
func (o Object) HasExit() bool {
	return o.AnimationOut != "" && o.AnimationOutDelay != nil
}

// TextProperties is the attribute bag for text objects.
type TextProperties struct {
	Text   string  `json:"text"`
	Size   SizeTag `json:"size,omitempty"`
	Weight string  `json:"weight,omitempty"`
	Color  string  `json:"color,omitempty"`
	Align  string  `json:"align,omitempty"`
}

// ImageProperties is the attribute bag for image objects.
type ImageProperties struct {
	URL     string  `json:"url"`
	Size    SizeTag `json:"size,omitempty"`
	Border  string  `json:"border,omitempty"`
	Opacity int     `json:"opacity,omitempty"`
}

// VideoProperties is the attribute bag for video objects.
type VideoProperties struct {
	URL      string  `json:"url"`
	Size     SizeTag `json:"size,omitempty"`
	Autoplay bool    `json:"autoplay,omitempty"`
	Muted    bool    `json:"muted,omitempty"`
	Loop     bool    `json:"loop,omitempty"`
	Controls bool    `json:"controls,omitempty"`
}

// TextProperties decodes the object's attribute bag as text attributes.
// A malformed payload degrades to zero values rather than failing; the
// object then renders with type defaults.
func (o Object) TextProperties() TextProperties {
	var p TextProperties
	decodeProperties(o, &p)
	return p
}

// ImageProperties decodes the object's attribute bag as image attributes.
func (o Object) ImageProperties() ImageProperties {
	var p ImageProperties
	decodeProperties(o, &p)
	return p
}

// VideoProperties decodes the object's attribute bag as video attributes.
func (o Object) VideoProperties() VideoProperties {
	var p VideoProperties
	decodeProperties(o, &p)
	return p
}

func decodeProperties(o Object, dst any) {
	if o.Properties == "" {
		return
	}
	if err := json.Unmarshal([]byte(o.Properties), dst); err != nil {
		slog.Debug("malformed object properties, using type defaults", "object", o.ID, "type", o.Type, "error", err)
	}
}
