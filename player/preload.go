package player

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// PreloadTarget is one asset worth warming ahead of display.
type PreloadTarget struct {
	URL  string `json:"url"`
	Kind string `json:"kind"` // "video" or "image"
}

// PreloadTargets computes the assets of slides[index] that should be warmed
// before it becomes active. Only local assets qualify; embeds are never
// preloaded. Pure function of the configuration.
func PreloadTargets(cfg *Config, index int, assets AssetResolver, pool []string) []PreloadTarget {
	if cfg == nil || index < 0 || index >= len(cfg.Slides) {
		return nil
	}
	slide := cfg.Slides[index]
	var targets []PreloadTarget

	switch slide.EffectiveBackgroundType() {
	case BackgroundHeroVideos:
		// Warm the first rotation entry; later entries resolve the same way
		// once cycling begins.
		if ref, ok := BackgroundVideoRef(slide, 0, index, pool); ok {
			if src := ResolveSource(ref, assets); src.Kind == SourceLocal {
				targets = append(targets, PreloadTarget{URL: src.URL, Kind: "video"})
			}
		}
	case BackgroundImage:
		if slide.BackgroundImage != "" {
			if src := ResolveSource(slide.BackgroundImage, assets); src.Kind == SourceLocal {
				targets = append(targets, PreloadTarget{URL: src.URL, Kind: "image"})
			}
		}
	}

	for _, obj := range slide.SortedObjects() {
		if obj.Type != ObjectImage {
			continue
		}
		props := obj.ImageProperties()
		if props.URL == "" {
			continue
		}
		if src := ResolveSource(props.URL, assets); src.Kind == SourceLocal {
			targets = append(targets, PreloadTarget{URL: src.URL, Kind: "image"})
		}
	}
	return targets
}

const (
	preloadTimeout     = 10 * time.Second
	preloadConcurrency = 4
)

// Preloader warms upcoming slide assets into the HTTP cache path. Entirely
// best effort: failures are logged at debug level and never surface to the
// playback timeline.
type Preloader struct {
	client *http.Client
	assets AssetResolver
	pool   []string
}

// NewPreloader builds a preloader. A nil client gets a timeout-bounded default.
func NewPreloader(client *http.Client, assets AssetResolver, pool []string) *Preloader {
	if client == nil {
		client = &http.Client{Timeout: preloadTimeout}
	}
	return &Preloader{client: client, assets: assets, pool: pool}
}

// Warm fetches every preloadable asset of slides[index] concurrently.
func (p *Preloader) Warm(ctx context.Context, cfg *Config, index int) {
	targets := PreloadTargets(cfg, index, p.assets, p.pool)
	if len(targets) == 0 {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, target := range targets {
		g.Go(func() error {
			if err := p.fetch(ctx, target.URL); err != nil {
				slog.Debug("preload fetch failed", "url", target.URL, "kind", target.Kind, "error", err)
			}
			// Never propagate: one failed warm must not cancel the rest.
			return nil
		})
	}
	g.Wait()
}

func (p *Preloader) fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
