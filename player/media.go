package player

import (
	"regexp"
	"strings"
)

// SourceKind classifies a resolved media reference.
type SourceKind string

const (
	// SourceLocal is a media file served from our own asset base.
	SourceLocal SourceKind = "local"
	// SourceEmbed is an externally hosted video rendered via the
	// platform's embed frame. Embeds are never preloaded.
	SourceEmbed SourceKind = "embed"
)

// PlayableSource is the result of resolving a raw media reference.
type PlayableSource struct {
	Kind SourceKind `json:"kind"`
	URL  string     `json:"url"`
	// EmbedID is the platform video identifier for embeds. Empty means the
	// identifier could not be derived and the embed cannot render.
	EmbedID string `json:"embedId,omitempty"`
}

// AssetResolver maps a relative asset path to an absolute URL. It is
// injected rather than read from ambient state so tests stay deterministic.
type AssetResolver func(path string) string

// IdentityResolver returns asset paths unchanged.
func IdentityResolver(path string) string { return path }

var embedHosts = []string{"youtube.com", "youtu.be"}

// Ordered identifier extraction attempts: short-link path segment, the v
// query parameter, then an embed path segment. First match wins.
var embedIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`/embed/([A-Za-z0-9_-]+)`),
}

// ResolveSource resolves a raw media reference to a playable source.
// References containing a known video-host domain become embeds; everything
// else is a local asset resolved against the injected base. Pure and
// idempotent.
func ResolveSource(ref string, assets AssetResolver) PlayableSource {
	if isEmbedRef(ref) {
		return PlayableSource{
			Kind:    SourceEmbed,
			URL:     ref,
			EmbedID: extractEmbedID(ref),
		}
	}
	if assets == nil {
		assets = IdentityResolver
	}
	url := ref
	if !hasScheme(ref) {
		url = assets(ref)
	}
	return PlayableSource{Kind: SourceLocal, URL: url}
}

func isEmbedRef(ref string) bool {
	for _, host := range embedHosts {
		if strings.Contains(ref, host) {
			return true
		}
	}
	return false
}

func hasScheme(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func extractEmbedID(ref string) string {
	for _, pat := range embedIDPatterns {
		if m := pat.FindStringSubmatch(ref); m != nil {
			return m[1]
		}
	}
	return ""
}
