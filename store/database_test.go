package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegalDragon/slidecast/player"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "slidecast.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSlideshowCRUD(t *testing.T) {
	db := newTestDatabase(t)

	show := &Slideshow{
		Code:     "demo",
		Title:    "Demo Show",
		AutoPlay: true,
		Loop:     true,
	}
	require.NoError(t, db.CreateSlideshow(show))
	require.NotZero(t, show.ID)

	got, err := db.GetSlideshowByCode("demo")
	require.NoError(t, err)
	assert.Equal(t, show.ID, got.ID)
	assert.Equal(t, "Demo Show", got.Title)
	assert.True(t, got.AutoPlay)
	assert.True(t, got.Loop)
	assert.False(t, got.AllowSkip)

	got.Title = "Renamed"
	got.Loop = false
	require.NoError(t, db.UpdateSlideshow(got))

	byID, err := db.GetSlideshowByID(show.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", byID.Title)
	assert.False(t, byID.Loop)

	shows, err := db.ListSlideshows()
	require.NoError(t, err)
	require.Len(t, shows, 1)

	require.NoError(t, db.DeleteSlideshow(show.ID))
	_, err = db.GetSlideshowByID(show.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlideshowNotFound(t *testing.T) {
	db := newTestDatabase(t)

	_, err := db.GetSlideshowByCode("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.UpdateSlideshow(&Slideshow{ID: 42})
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.DeleteSlideshow(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateCodeRejected(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.CreateSlideshow(&Slideshow{Code: "dup"}))
	err := db.CreateSlideshow(&Slideshow{Code: "dup"})
	assert.Error(t, err)
}

func TestSlidesOrderedByPosition(t *testing.T) {
	db := newTestDatabase(t)

	show := &Slideshow{Code: "ordered"}
	require.NoError(t, db.CreateSlideshow(show))

	for i, pos := range []int{2, 0, 1} {
		s := &Slide{SlideshowID: show.ID, Position: pos, Duration: 1000 * (i + 1)}
		require.NoError(t, db.InsertSlide(s))
	}

	slides, err := db.ListSlides(show.ID)
	require.NoError(t, err)
	require.Len(t, slides, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{slides[0].Position, slides[1].Position, slides[2].Position})

	next, err := db.GetMaxSlidePosition(show.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestSlideObjectNullableOutDelay(t *testing.T) {
	db := newTestDatabase(t)

	show := &Slideshow{Code: "objects"}
	require.NoError(t, db.CreateSlideshow(show))
	slide := &Slide{SlideshowID: show.ID}
	require.NoError(t, db.InsertSlide(slide))

	delay := 2500
	withExit := &SlideObject{
		SlideID:           slide.ID,
		ObjectType:        "text",
		AnimationOut:      "fadeOut",
		AnimationOutDelay: &delay,
		SortOrder:         1,
	}
	require.NoError(t, db.InsertSlideObject(withExit))

	noExit := &SlideObject{SlideID: slide.ID, ObjectType: "image"}
	require.NoError(t, db.InsertSlideObject(noExit))

	objects, err := db.ListSlideObjects(slide.ID)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	// sort_order 0 lists first
	assert.Nil(t, objects[0].AnimationOutDelay)
	require.NotNil(t, objects[1].AnimationOutDelay)
	assert.Equal(t, 2500, *objects[1].AnimationOutDelay)
}

func TestSharedVideoPoolFiltersImages(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.InsertSharedMedia(&SharedMedia{Name: "b.mp4", URL: "/assets/b.mp4", Kind: "video", SortOrder: 1}))
	require.NoError(t, db.InsertSharedMedia(&SharedMedia{Name: "a.mp4", URL: "/assets/a.mp4", Kind: "video", SortOrder: 0}))
	require.NoError(t, db.InsertSharedMedia(&SharedMedia{Name: "logo.png", URL: "/assets/logo.png", Kind: "image", SortOrder: 2}))

	pool, err := db.LoadSharedVideoPool()
	require.NoError(t, err)
	assert.Equal(t, []string{"/assets/a.mp4", "/assets/b.mp4"}, pool)

	exists, err := db.SharedMediaExists("logo.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.DeleteSharedMediaByName("logo.png"))
	exists, err = db.SharedMediaExists("logo.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoadConfigurationAssemblesPlayerModel(t *testing.T) {
	db := newTestDatabase(t)

	show := &Slideshow{Code: "full", Title: "Full", AutoPlay: true, Loop: true, AllowSkip: true}
	require.NoError(t, db.CreateSlideshow(show))

	slide := &Slide{
		SlideshowID:    show.ID,
		Position:       0,
		Duration:       8000,
		BackgroundType: "heroVideos",
		Layout:         "center",
		OverlayType:    "darken",
		OverlayOpacity: 40,
		TitleText:      "Welcome",
		TitleSize:      "large",
	}
	require.NoError(t, db.InsertSlide(slide))

	require.NoError(t, db.InsertBackgroundVideo(&BackgroundVideo{SlideID: slide.ID, URL: "/assets/loop2.mp4", Duration: 3000, SortOrder: 1}))
	require.NoError(t, db.InsertBackgroundVideo(&BackgroundVideo{SlideID: slide.ID, URL: "/assets/loop1.mp4", Duration: 2000, SortOrder: 0}))

	delay := 6000
	require.NoError(t, db.InsertSlideObject(&SlideObject{
		SlideID:           slide.ID,
		ObjectType:        "text",
		AnimationIn:       "fadeIn",
		AnimationInDelay:  500,
		AnimationOut:      "fadeOut",
		AnimationOutDelay: &delay,
		Properties:        `{"text":"Hello","size":"large"}`,
	}))

	cfg, err := db.LoadConfiguration("full")
	require.NoError(t, err)
	assert.Equal(t, "full", cfg.Code)
	assert.True(t, cfg.AutoPlay)
	assert.True(t, cfg.Loop)
	assert.True(t, cfg.AllowSkip)
	require.Len(t, cfg.Slides, 1)

	s := cfg.Slides[0]
	assert.Equal(t, 8000, s.Duration)
	assert.Equal(t, player.BackgroundHeroVideos, s.BackgroundType)
	assert.Equal(t, "Welcome", s.Title.Text)

	rotation := s.SortedBackgroundVideos()
	require.Len(t, rotation, 2)
	assert.Equal(t, "/assets/loop1.mp4", rotation[0].URLRef())
	assert.Equal(t, "/assets/loop2.mp4", rotation[1].URLRef())

	require.Len(t, s.Objects, 1)
	obj := s.Objects[0]
	assert.Equal(t, player.ObjectText, obj.Type)
	require.NotNil(t, obj.AnimationOutDelay)
	assert.Equal(t, 6000, *obj.AnimationOutDelay)
	assert.Equal(t, "Hello", obj.TextProperties().Text)

	_, err = db.LoadConfiguration("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlideCascadeDelete(t *testing.T) {
	db := newTestDatabase(t)

	show := &Slideshow{Code: "cascade"}
	require.NoError(t, db.CreateSlideshow(show))
	slide := &Slide{SlideshowID: show.ID}
	require.NoError(t, db.InsertSlide(slide))
	require.NoError(t, db.InsertBackgroundVideo(&BackgroundVideo{SlideID: slide.ID, URL: "/assets/x.mp4"}))

	require.NoError(t, db.DeleteSlide(slide.ID))

	videos, err := db.ListBackgroundVideos(slide.ID)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
