package player

import (
	"testing"
	"time"
)

func TestEffectiveDurations(t *testing.T) {
	tests := []struct {
		duration int
		want     time.Duration
	}{
		{0, 5 * time.Second},
		{-100, 5 * time.Second},
		{1500, 1500 * time.Millisecond},
	}
	for _, test := range tests {
		s := Slide{Duration: test.duration}
		if got := s.EffectiveDuration(); got != test.want {
			t.Errorf("slide duration %d: got %v, want %v", test.duration, got, test.want)
		}
		b := BackgroundVideo{Duration: test.duration}
		if got := b.EffectiveDuration(); got != test.want {
			t.Errorf("background duration %d: got %v, want %v", test.duration, got, test.want)
		}
	}
}

func TestPropertiesDecodeFallsBackOnMalformedPayload(t *testing.T) {
	obj := Object{Type: ObjectText, Properties: `{not json at all`}
	if p := obj.TextProperties(); p != (TextProperties{}) {
		t.Errorf("malformed bag must decode to zero values, got %+v", p)
	}

	obj = Object{Type: ObjectImage, Properties: ""}
	if p := obj.ImageProperties(); p != (ImageProperties{}) {
		t.Errorf("empty bag must decode to zero values, got %+v", p)
	}

	obj = Object{Type: ObjectVideo, Properties: `{"url":"v.mp4","muted":true,"loop":true}`}
	p := obj.VideoProperties()
	if p.URL != "v.mp4" || !p.Muted || !p.Loop || p.Autoplay {
		t.Errorf("unexpected decode: %+v", p)
	}
}

func TestObjectsTakePrecedenceOverLegacyText(t *testing.T) {
	withObjects := Slide{
		Title:   LegacyText{Text: "old title"},
		Objects: []Object{{Type: ObjectText}},
	}
	if withObjects.UsesLegacyText() {
		t.Error("a slide with objects must not render legacy fields")
	}

	legacy := Slide{Title: LegacyText{Text: "old title"}}
	if !legacy.UsesLegacyText() {
		t.Error("a slide without objects renders legacy fields")
	}
}

func TestSortedObjectsStable(t *testing.T) {
	s := Slide{Objects: []Object{
		{ID: 1, SortOrder: 2},
		{ID: 2, SortOrder: 1},
		{ID: 3, SortOrder: 1},
	}}
	sorted := s.SortedObjects()
	if sorted[0].ID != 2 || sorted[1].ID != 3 || sorted[2].ID != 1 {
		t.Errorf("expected stable ascending sort, got %v", sorted)
	}
}

func TestBackgroundVideoURLRefPrefersLinkedRecord(t *testing.T) {
	b := BackgroundVideo{Video: &MediaRef{URL: "linked.mp4"}, VideoURL: "direct.mp4"}
	if b.URLRef() != "linked.mp4" {
		t.Errorf("linked record must win, got %s", b.URLRef())
	}
	b = BackgroundVideo{VideoURL: "direct.mp4"}
	if b.URLRef() != "direct.mp4" {
		t.Errorf("direct url is the fallback, got %s", b.URLRef())
	}
}
