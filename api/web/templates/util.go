package templates

import (
	"fmt"
	"net/url"

	"github.com/LegalDragon/slidecast/player"
	"github.com/LegalDragon/slidecast/store"
)

func playerURL(show store.Slideshow) string {
	return fmt.Sprintf("/play/%s", url.PathEscape(show.Code))
}

func qrURL(show store.Slideshow) string {
	return fmt.Sprintf("/slideshows/%s/qr", url.PathEscape(show.Code))
}

func socketURL(cfg *player.Config) string {
	return fmt.Sprintf("/ws/play/%s", url.PathEscape(cfg.Code))
}

func embedURL(src player.PlayableSource) string {
	if src.EmbedID == "" {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=1&loop=1&playlist=%s", src.EmbedID, src.EmbedID)
}

// slideStyle builds the inline style for a slide's static backdrop.
func slideStyle(s player.Slide, assets player.AssetResolver) string {
	bg := player.BackgroundStyleFor(s, assets)
	switch bg.Kind {
	case player.BackgroundColor:
		return fmt.Sprintf("background-color:%s", bg.Color)
	case player.BackgroundImage:
		return fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center", bg.ImageURL)
	default:
		return "background-color:#000"
	}
}

func overlayStyle(s player.Slide) string {
	style := player.OverlayStyleFor(s.OverlayType, s.OverlayOpacity, s.OverlayColor)
	if style.Background == "" {
		return ""
	}
	return fmt.Sprintf("background:%s", style.Background)
}

func contentStyle(s player.Slide) string {
	a := player.AlignmentFor(s.Layout)
	justify := map[player.HAlign]string{
		player.AlignLeft:   "flex-start",
		player.AlignCenter: "center",
		player.AlignRight:  "flex-end",
	}[a.Horizontal]
	align := map[player.VAlign]string{
		player.AlignTop:    "flex-start",
		player.AlignMiddle: "center",
		player.AlignBottom: "flex-end",
	}[a.Vertical]
	return fmt.Sprintf("display:flex;justify-content:%s;align-items:%s;text-align:%s", justify, align, a.TextAlign)
}

func textStyle(p player.TextProperties) string {
	dim := player.TextSizeFor(p.Size)
	style := fmt.Sprintf("font-size:%dpx", dim.FontSizePx)
	if p.Color != "" {
		style += fmt.Sprintf(";color:%s", p.Color)
	}
	if p.Weight != "" {
		style += fmt.Sprintf(";font-weight:%s", p.Weight)
	}
	return style
}

func imageStyle(p player.ImageProperties) string {
	dim := player.ImageSizeFor(p.Size)
	if dim.WidthPx == 0 {
		return "width:100%;height:100%;object-fit:contain"
	}
	return fmt.Sprintf("max-width:%dpx;max-height:%dpx", dim.WidthPx, dim.HeightPx)
}

func videoDims(p player.VideoProperties) (int, int) {
	dim := player.VideoSizeFor(p.Size)
	if dim.WidthPx == 0 {
		return 1280, 720
	}
	return dim.WidthPx, dim.HeightPx
}
