package player

import "testing"

func testAssets(path string) string {
	return "https://cdn.example.com/assets/" + path
}

func TestResolveSourceEmbeds(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		embedID string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?t=10&v=dQw4w9WgXcQ&list=x", "dQw4w9WgXcQ"},
		{"embed path", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"unrecognized shape", "https://www.youtube.com/channel/somebody", ""},
	}

	for _, test := range tests {
		src := ResolveSource(test.ref, testAssets)
		if src.Kind != SourceEmbed {
			t.Errorf("%s: expected embed, got %s", test.name, src.Kind)
		}
		if src.URL != test.ref {
			t.Errorf("%s: embed must carry the raw url, got %s", test.name, src.URL)
		}
		if src.EmbedID != test.embedID {
			t.Errorf("%s: expected embed id %q, got %q", test.name, test.embedID, src.EmbedID)
		}
	}
}

func TestResolveSourceLocalAssets(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		url  string
	}{
		{"relative path", "videos/intro.mp4", "https://cdn.example.com/assets/videos/intro.mp4"},
		{"already absolute", "https://media.example.net/clip.mp4", "https://media.example.net/clip.mp4"},
	}

	for _, test := range tests {
		src := ResolveSource(test.ref, testAssets)
		if src.Kind != SourceLocal {
			t.Errorf("%s: expected local, got %s", test.name, src.Kind)
		}
		if src.URL != test.url {
			t.Errorf("%s: expected %s, got %s", test.name, test.url, src.URL)
		}
		if src.EmbedID != "" {
			t.Errorf("%s: local assets carry no embed id", test.name)
		}
	}
}

func TestResolveSourceIdempotent(t *testing.T) {
	ref := "videos/intro.mp4"
	first := ResolveSource(ref, testAssets)
	second := ResolveSource(ref, testAssets)
	if first != second {
		t.Errorf("resolution must be referentially transparent: %v != %v", first, second)
	}
}

func TestResolveSourceNilResolver(t *testing.T) {
	src := ResolveSource("clip.mp4", nil)
	if src.Kind != SourceLocal || src.URL != "clip.mp4" {
		t.Errorf("nil resolver should pass path through, got %+v", src)
	}
}
