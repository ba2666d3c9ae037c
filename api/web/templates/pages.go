// Package templates renders the server-side pages for the viewer.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/LegalDragon/slidecast/player"
	"github.com/LegalDragon/slidecast/store"
)

// IndexPage lists every slideshow with its player link and QR code.
func IndexPage(shows []store.Slideshow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Slidecast</title>
<style>
body { font-family: sans-serif; background: #111; color: #eee; margin: 2rem; }
a { color: #6cf; }
.show { display: flex; align-items: center; gap: 1rem; padding: 0.5rem 0; border-bottom: 1px solid #333; }
.show img { width: 96px; height: 96px; }
</style>
</head>
<body>
<h1>Slidecast</h1>
`); err != nil {
			return err
		}
		if len(shows) == 0 {
			if _, err := io.WriteString(w, "<p>No slideshows yet.</p>\n"); err != nil {
				return err
			}
		}
		for _, show := range shows {
			title := show.Title
			if title == "" {
				title = show.Code
			}
			_, err := fmt.Fprintf(w,
				"<div class=\"show\"><img src=\"%s\" alt=\"QR\"><div><a href=\"%s\">%s</a><div>code: %s</div></div></div>\n",
				templ.EscapeString(qrURL(show)),
				templ.EscapeString(playerURL(show)),
				templ.EscapeString(title),
				templ.EscapeString(show.Code),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// PlayerPage renders the viewer for one slideshow. All slides are present in
// the markup; the inline script connects to the playback websocket and shows
// whichever slide, background and object phases the server reports.
func PlayerPage(cfg *player.Config, pool []string, assets player.AssetResolver) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writePlayerHead(w, cfg); err != nil {
			return err
		}
		for i, slide := range cfg.Slides {
			if err := writeSlide(w, slide, i, pool, assets); err != nil {
				return err
			}
		}
		return writePlayerTail(w, cfg)
	})
}

func writePlayerHead(w io.Writer, cfg *player.Config) error {
	title := cfg.Title
	if title == "" {
		title = cfg.Code
	}
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
html, body { margin: 0; height: 100%%; background: #000; color: #fff; font-family: sans-serif; overflow: hidden; }
.slide { position: absolute; inset: 0; display: none; }
.slide.active { display: block; }
.backdrop { position: absolute; inset: 0; }
.backdrop video, .backdrop iframe { width: 100%%; height: 100%%; object-fit: cover; border: 0; }
.bg-entry { display: none; position: absolute; inset: 0; }
.bg-entry.active { display: block; }
.overlay { position: absolute; inset: 0; pointer-events: none; }
.content { position: absolute; inset: 0; padding: 4rem; }
.object { opacity: 0; transition: opacity 0.3s; }
.object.phase-in, .object.phase-visible, .object.phase-out { opacity: 1; }
.object.phase-hidden { opacity: 0; }
.progress { position: fixed; left: 0; bottom: 0; height: 4px; background: #6cf; width: 0; z-index: 10; }
</style>
</head>
<body>
`, templ.EscapeString(title))
	return err
}

func writeSlide(w io.Writer, slide player.Slide, index int, pool []string, assets player.AssetResolver) error {
	if _, err := fmt.Fprintf(w, "<div class=\"slide\" data-slide=\"%d\">\n", index); err != nil {
		return err
	}

	if err := writeBackdrop(w, slide, index, pool, assets); err != nil {
		return err
	}

	if style := overlayStyle(slide); style != "" {
		if _, err := fmt.Fprintf(w, "  <div class=\"overlay\" style=\"%s\"></div>\n", templ.EscapeString(style)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "  <div class=\"content\" style=\"%s\">\n", templ.EscapeString(contentStyle(slide))); err != nil {
		return err
	}

	if slide.UsesLegacyText() {
		if err := writeLegacyText(w, slide); err != nil {
			return err
		}
	} else {
		for objIndex, obj := range slide.SortedObjects() {
			if err := writeObject(w, obj, objIndex, assets); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "  </div>\n</div>\n")
	return err
}

func writeBackdrop(w io.Writer, slide player.Slide, index int, pool []string, assets player.AssetResolver) error {
	if slide.EffectiveBackgroundType() != player.BackgroundHeroVideos {
		_, err := fmt.Fprintf(w, "  <div class=\"backdrop\" style=\"%s\"></div>\n", templ.EscapeString(slideStyle(slide, assets)))
		return err
	}

	if _, err := io.WriteString(w, "  <div class=\"backdrop\" style=\"background-color:#000\">\n"); err != nil {
		return err
	}

	// Every rotation entry is present; the script toggles them as the
	// server reports background changes.
	rotation := slide.SortedBackgroundVideos()
	entries := len(rotation)
	if entries == 0 {
		entries = 1
	}
	for cycleIndex := 0; cycleIndex < entries; cycleIndex++ {
		ref, ok := player.BackgroundVideoRef(slide, cycleIndex, index, pool)
		if !ok {
			continue
		}
		active := ""
		if cycleIndex == 0 {
			active = " active"
		}
		src := player.ResolveSource(ref, assets)
		if src.Kind == player.SourceEmbed {
			embed := embedURL(src)
			if embed == "" {
				continue
			}
			if _, err := fmt.Fprintf(w,
				"    <div class=\"bg-entry%s\" data-bg=\"%d\"><iframe src=\"%s\" allow=\"autoplay\"></iframe></div>\n",
				active, cycleIndex, templ.EscapeString(embed)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w,
			"    <div class=\"bg-entry%s\" data-bg=\"%d\"><video src=\"%s\" autoplay muted loop playsinline></video></div>\n",
			active, cycleIndex, templ.EscapeString(src.URL)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "  </div>\n")
	return err
}

func writeLegacyText(w io.Writer, slide player.Slide) error {
	if slide.Title.Text == "" && slide.Subtitle.Text == "" {
		return nil
	}
	if _, err := io.WriteString(w, "    <div>\n"); err != nil {
		return err
	}
	if slide.Title.Text != "" {
		dim := player.TextSizeFor(slide.Title.Size)
		style := fmt.Sprintf("font-size:%dpx", dim.FontSizePx)
		if slide.Title.Color != "" {
			style += fmt.Sprintf(";color:%s", slide.Title.Color)
		}
		if _, err := fmt.Fprintf(w, "      <h1 style=\"%s\">%s</h1>\n",
			templ.EscapeString(style), templ.EscapeString(slide.Title.Text)); err != nil {
			return err
		}
	}
	if slide.Subtitle.Text != "" {
		dim := player.TextSizeFor(slide.Subtitle.Size)
		style := fmt.Sprintf("font-size:%dpx", dim.FontSizePx)
		if slide.Subtitle.Color != "" {
			style += fmt.Sprintf(";color:%s", slide.Subtitle.Color)
		}
		if _, err := fmt.Fprintf(w, "      <h2 style=\"%s\">%s</h2>\n",
			templ.EscapeString(style), templ.EscapeString(slide.Subtitle.Text)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "    </div>\n")
	return err
}

func writeObject(w io.Writer, obj player.Object, objIndex int, assets player.AssetResolver) error {
	if _, err := fmt.Fprintf(w, "    <div class=\"object\" data-object=\"%d\">\n", objIndex); err != nil {
		return err
	}

	switch obj.Type {
	case player.ObjectText:
		props := obj.TextProperties()
		if _, err := fmt.Fprintf(w, "      <div style=\"%s\">%s</div>\n",
			templ.EscapeString(textStyle(props)), templ.EscapeString(props.Text)); err != nil {
			return err
		}
	case player.ObjectImage:
		props := obj.ImageProperties()
		if props.URL != "" {
			src := player.ResolveSource(props.URL, assets)
			if _, err := fmt.Fprintf(w, "      <img src=\"%s\" style=\"%s\">\n",
				templ.EscapeString(src.URL), templ.EscapeString(imageStyle(props))); err != nil {
				return err
			}
		}
	case player.ObjectVideo:
		props := obj.VideoProperties()
		if props.URL != "" {
			width, height := videoDims(props)
			src := player.ResolveSource(props.URL, assets)
			if src.Kind == player.SourceEmbed {
				if embed := embedURL(src); embed != "" {
					if _, err := fmt.Fprintf(w, "      <iframe src=\"%s\" width=\"%d\" height=\"%d\" allow=\"autoplay\"></iframe>\n",
						templ.EscapeString(embed), width, height); err != nil {
						return err
					}
				}
			} else {
				attrs := ""
				if props.Autoplay {
					attrs += " autoplay"
				}
				if props.Muted {
					attrs += " muted"
				}
				if props.Loop {
					attrs += " loop"
				}
				if props.Controls {
					attrs += " controls"
				}
				if _, err := fmt.Fprintf(w, "      <video src=\"%s\" width=\"%d\" height=\"%d\"%s playsinline></video>\n",
					templ.EscapeString(src.URL), width, height, attrs); err != nil {
					return err
				}
			}
		}
	}

	_, err := io.WriteString(w, "    </div>\n")
	return err
}

func writePlayerTail(w io.Writer, cfg *player.Config) error {
	progress := ""
	if cfg.ShowProgress {
		progress = "<div class=\"progress\" id=\"progress\"></div>\n"
	}
	_, err := fmt.Fprintf(w, `%s<script>
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "%s");
  var allowSkip = %t;

  function activate(selector, attr, value) {
    document.querySelectorAll(selector).forEach(function(el) {
      el.classList.toggle("active", el.getAttribute(attr) === String(value));
    });
  }

  sock.onmessage = function(raw) {
    var msg = JSON.parse(raw.data);
    var ev = msg.event;
    if (!ev) { return; }
    if (ev.type === "slideChanged") {
      activate(".slide", "data-slide", ev.slideIndex);
      document.querySelectorAll(".object").forEach(function(el) {
        el.className = "object";
      });
    } else if (ev.type === "progress") {
      var bar = document.getElementById("progress");
      if (bar) { bar.style.width = (ev.progress || 0) + "%%"; }
    } else if (ev.type === "backgroundChanged") {
      var slide = document.querySelector('.slide[data-slide="' + ev.slideIndex + '"]');
      if (slide) {
        slide.querySelectorAll(".bg-entry").forEach(function(el) {
          el.classList.toggle("active", el.getAttribute("data-bg") === String(ev.backgroundIndex));
        });
      }
    } else if (ev.type === "objectPhase") {
      var active = document.querySelector('.slide[data-slide="' + ev.slideIndex + '"]');
      if (active) {
        var obj = active.querySelector('.object[data-object="' + ev.objectIndex + '"]');
        if (obj) { obj.className = "object phase-" + ev.phase; }
      }
    }
  };

  document.addEventListener("keydown", function(e) {
    if (e.key === " ") {
      sock.send(JSON.stringify({action: "pause"}));
    } else if (e.key === "ArrowRight" && allowSkip) {
      sock.send(JSON.stringify({action: "skip"}));
    } else if (e.key === "r") {
      sock.send(JSON.stringify({action: "replay"}));
    } else if (e.key === "p") {
      sock.send(JSON.stringify({action: "play"}));
    }
  });
})();
</script>
</body>
</html>
`, progress, socketURL(cfg), cfg.AllowSkip)
	return err
}
