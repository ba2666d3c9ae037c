package player

import "fmt"

// LayoutType positions a slide's legacy text block.
type LayoutType string

const (
	LayoutCentered    LayoutType = "centered"
	LayoutLeft        LayoutType = "left"
	LayoutRight       LayoutType = "right"
	LayoutBottomLeft  LayoutType = "bottomLeft"
	LayoutBottomRight LayoutType = "bottomRight"
)

// OverlayType tints the background behind slide content.
type OverlayType string

const (
	OverlayNone         OverlayType = "none"
	OverlayDarken       OverlayType = "darken"
	OverlayLighten      OverlayType = "lighten"
	OverlayGradientUp   OverlayType = "gradientUp"
	OverlayGradientDown OverlayType = "gradientDown"
	OverlayColor        OverlayType = "color"
)

// SizeTag is a declarative size class for slide content.
type SizeTag string

const (
	SizeSmall  SizeTag = "small"
	SizeMedium SizeTag = "medium"
	SizeLarge  SizeTag = "large"
	SizeXLarge SizeTag = "xlarge"
	SizeFull   SizeTag = "full"
)

// Alignment is the concrete placement derived from a layout.
type Alignment struct {
	Horizontal HAlign `json:"horizontal"`
	Vertical   VAlign `json:"vertical"`
	TextAlign  string `json:"textAlign"`
}

// AlignmentFor maps a layout to its placement. Unknown layouts center.
func AlignmentFor(l LayoutType) Alignment {
	switch l {
	case LayoutLeft:
		return Alignment{Horizontal: AlignLeft, Vertical: AlignMiddle, TextAlign: "left"}
	case LayoutRight:
		return Alignment{Horizontal: AlignRight, Vertical: AlignMiddle, TextAlign: "right"}
	case LayoutBottomLeft:
		return Alignment{Horizontal: AlignLeft, Vertical: AlignBottom, TextAlign: "left"}
	case LayoutBottomRight:
		return Alignment{Horizontal: AlignRight, Vertical: AlignBottom, TextAlign: "right"}
	case LayoutCentered:
		fallthrough
	default:
		return Alignment{Horizontal: AlignCenter, Vertical: AlignMiddle, TextAlign: "center"}
	}
}

// OverlayStyle is a renderable overlay descriptor.
type OverlayStyle struct {
	// Background is a CSS background value, empty for no overlay.
	Background string `json:"background"`
}

// OverlayStyleFor maps an overlay type plus opacity (0-100) and custom color
// to a concrete descriptor. Unknown types render no overlay.
func OverlayStyleFor(t OverlayType, opacity int, color string) OverlayStyle {
	alpha := clampOpacity(opacity)
	switch t {
	case OverlayDarken:
		return OverlayStyle{Background: fmt.Sprintf("rgba(0,0,0,%.2f)", alpha)}
	case OverlayLighten:
		return OverlayStyle{Background: fmt.Sprintf("rgba(255,255,255,%.2f)", alpha)}
	case OverlayGradientUp:
		return OverlayStyle{Background: fmt.Sprintf("linear-gradient(to top, rgba(0,0,0,%.2f), rgba(0,0,0,0))", alpha)}
	case OverlayGradientDown:
		return OverlayStyle{Background: fmt.Sprintf("linear-gradient(to bottom, rgba(0,0,0,%.2f), rgba(0,0,0,0))", alpha)}
	case OverlayColor:
		if color == "" {
			return OverlayStyle{}
		}
		return OverlayStyle{Background: color}
	case OverlayNone:
		fallthrough
	default:
		return OverlayStyle{}
	}
}

func clampOpacity(opacity int) float64 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	return float64(opacity) / 100
}

// Dimension is a concrete size in pixels. Zero fields mean unconstrained.
type Dimension struct {
	FontSizePx int `json:"fontSizePx,omitempty"`
	WidthPx    int `json:"widthPx,omitempty"`
	HeightPx   int `json:"heightPx,omitempty"`
}

// TextSizeFor maps a size tag to a font size. Unknown tags get medium.
func TextSizeFor(tag SizeTag) Dimension {
	switch tag {
	case SizeSmall:
		return Dimension{FontSizePx: 18}
	case SizeLarge:
		return Dimension{FontSizePx: 48}
	case SizeXLarge:
		return Dimension{FontSizePx: 72}
	case SizeFull:
		return Dimension{FontSizePx: 96}
	case SizeMedium:
		fallthrough
	default:
		return Dimension{FontSizePx: 28}
	}
}

// ImageSizeFor maps a size tag to image bounds. Unknown tags get medium.
func ImageSizeFor(tag SizeTag) Dimension {
	switch tag {
	case SizeSmall:
		return Dimension{WidthPx: 200, HeightPx: 150}
	case SizeLarge:
		return Dimension{WidthPx: 800, HeightPx: 600}
	case SizeXLarge:
		return Dimension{WidthPx: 1200, HeightPx: 900}
	case SizeFull:
		return Dimension{}
	case SizeMedium:
		fallthrough
	default:
		return Dimension{WidthPx: 400, HeightPx: 300}
	}
}

// VideoSizeFor maps a size tag to video bounds. Unknown tags get medium.
func VideoSizeFor(tag SizeTag) Dimension {
	switch tag {
	case SizeSmall:
		return Dimension{WidthPx: 320, HeightPx: 180}
	case SizeLarge:
		return Dimension{WidthPx: 960, HeightPx: 540}
	case SizeXLarge:
		return Dimension{WidthPx: 1280, HeightPx: 720}
	case SizeFull:
		return Dimension{}
	case SizeMedium:
		fallthrough
	default:
		return Dimension{WidthPx: 640, HeightPx: 360}
	}
}

// BackgroundStyle is the renderable descriptor for a slide backdrop when it
// is not a video rotation.
type BackgroundStyle struct {
	Kind     BackgroundType `json:"kind"`
	Color    string         `json:"color,omitempty"`
	ImageURL string         `json:"imageUrl,omitempty"`
}

// BackgroundStyleFor maps a slide's static background declaration to a
// descriptor. heroVideos slides resolve their media through the cycler
// instead; this covers the color/image/none cases and the video fallback.
func BackgroundStyleFor(s Slide, assets AssetResolver) BackgroundStyle {
	switch s.EffectiveBackgroundType() {
	case BackgroundColor:
		color := s.BackgroundColor
		if color == "" {
			color = "#000000"
		}
		return BackgroundStyle{Kind: BackgroundColor, Color: color}
	case BackgroundImage:
		if s.BackgroundImage == "" {
			return BackgroundStyle{Kind: BackgroundNone}
		}
		return BackgroundStyle{Kind: BackgroundImage, ImageURL: ResolveSource(s.BackgroundImage, assets).URL}
	case BackgroundNone:
		return BackgroundStyle{Kind: BackgroundNone}
	case BackgroundHeroVideos:
		fallthrough
	default:
		return BackgroundStyle{Kind: BackgroundHeroVideos}
	}
}
