// Package store is the sqlite database for slideshows, slides, slide
// objects, background videos and the shared media pool.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/LegalDragon/slidecast/player"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	// Create directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{db: db}

	if err := database.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return database, nil
}

func (d *Database) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS slideshows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL DEFAULT '',
		auto_play INTEGER NOT NULL DEFAULT 1,
		loop INTEGER NOT NULL DEFAULT 0,
		show_progress INTEGER NOT NULL DEFAULT 1,
		allow_skip INTEGER NOT NULL DEFAULT 1,
		transition_type TEXT NOT NULL DEFAULT '',
		transition_duration INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS slides (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slideshow_id INTEGER NOT NULL REFERENCES slideshows(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		background_type TEXT NOT NULL DEFAULT '',
		background_color TEXT NOT NULL DEFAULT '',
		background_image TEXT NOT NULL DEFAULT '',
		video_url TEXT NOT NULL DEFAULT '',
		use_shared_videos INTEGER NOT NULL DEFAULT 0,
		layout TEXT NOT NULL DEFAULT '',
		overlay_type TEXT NOT NULL DEFAULT '',
		overlay_opacity INTEGER NOT NULL DEFAULT 0,
		overlay_color TEXT NOT NULL DEFAULT '',
		title_text TEXT NOT NULL DEFAULT '',
		title_size TEXT NOT NULL DEFAULT '',
		title_color TEXT NOT NULL DEFAULT '',
		title_animation TEXT NOT NULL DEFAULT '',
		subtitle_text TEXT NOT NULL DEFAULT '',
		subtitle_size TEXT NOT NULL DEFAULT '',
		subtitle_color TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_slides_slideshow_position ON slides(slideshow_id, position);
	CREATE TABLE IF NOT EXISTS slide_objects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slide_id INTEGER NOT NULL REFERENCES slides(id) ON DELETE CASCADE,
		object_type TEXT NOT NULL,
		horizontal_align TEXT NOT NULL DEFAULT '',
		vertical_align TEXT NOT NULL DEFAULT '',
		offset_x INTEGER NOT NULL DEFAULT 0,
		offset_y INTEGER NOT NULL DEFAULT 0,
		animation_in TEXT NOT NULL DEFAULT '',
		animation_in_delay INTEGER NOT NULL DEFAULT 0,
		animation_in_duration INTEGER NOT NULL DEFAULT 0,
		animation_out TEXT NOT NULL DEFAULT '',
		animation_out_delay INTEGER,
		animation_out_duration INTEGER NOT NULL DEFAULT 0,
		stay_on_screen INTEGER NOT NULL DEFAULT 0,
		properties TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_slide_objects_slide_order ON slide_objects(slide_id, sort_order);
	CREATE TABLE IF NOT EXISTS background_videos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slide_id INTEGER NOT NULL REFERENCES slides(id) ON DELETE CASCADE,
		url TEXT NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_background_videos_slide_order ON background_videos(slide_id, sort_order);
	CREATE TABLE IF NOT EXISTS shared_media (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		url TEXT NOT NULL,
		kind TEXT NOT NULL DEFAULT 'video',
		sort_order INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := d.db.Exec(query)
	return err
}

func (d *Database) CreateSlideshow(s *Slideshow) error {
	query := `
		INSERT INTO slideshows (code, title, auto_play, loop, show_progress, allow_skip, transition_type, transition_duration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query, s.Code, s.Title,
		boolToInt(s.AutoPlay), boolToInt(s.Loop), boolToInt(s.ShowProgress), boolToInt(s.AllowSkip),
		s.TransitionType, s.TransitionDuration)
	if err != nil {
		return fmt.Errorf("failed to insert slideshow: %w", err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get slideshow id: %w", err)
	}
	return nil
}

func (d *Database) UpdateSlideshow(s *Slideshow) error {
	query := `
		UPDATE slideshows
		SET title = ?, auto_play = ?, loop = ?, show_progress = ?, allow_skip = ?, transition_type = ?, transition_duration = ?
		WHERE id = ?
	`
	res, err := d.db.Exec(query, s.Title,
		boolToInt(s.AutoPlay), boolToInt(s.Loop), boolToInt(s.ShowProgress), boolToInt(s.AllowSkip),
		s.TransitionType, s.TransitionDuration, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update slideshow: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const slideshowColumns = `id, code, title, auto_play, loop, show_progress, allow_skip, transition_type, transition_duration`

func scanSlideshow(row *sql.Row) (*Slideshow, error) {
	var s Slideshow
	var autoPlay, loop, showProgress, allowSkip int
	err := row.Scan(&s.ID, &s.Code, &s.Title, &autoPlay, &loop, &showProgress, &allowSkip, &s.TransitionType, &s.TransitionDuration)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan slideshow: %w", err)
	}
	s.AutoPlay = autoPlay != 0
	s.Loop = loop != 0
	s.ShowProgress = showProgress != 0
	s.AllowSkip = allowSkip != 0
	return &s, nil
}

func (d *Database) GetSlideshowByCode(code string) (*Slideshow, error) {
	query := `SELECT ` + slideshowColumns + ` FROM slideshows WHERE code = ?`
	return scanSlideshow(d.db.QueryRow(query, code))
}

func (d *Database) GetSlideshowByID(id int64) (*Slideshow, error) {
	query := `SELECT ` + slideshowColumns + ` FROM slideshows WHERE id = ?`
	return scanSlideshow(d.db.QueryRow(query, id))
}

func (d *Database) ListSlideshows() ([]Slideshow, error) {
	query := `SELECT ` + slideshowColumns + ` FROM slideshows ORDER BY id ASC`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query slideshows: %w", err)
	}
	defer rows.Close()

	var shows []Slideshow
	for rows.Next() {
		var s Slideshow
		var autoPlay, loop, showProgress, allowSkip int
		if err := rows.Scan(&s.ID, &s.Code, &s.Title, &autoPlay, &loop, &showProgress, &allowSkip, &s.TransitionType, &s.TransitionDuration); err != nil {
			return nil, fmt.Errorf("failed to scan slideshow: %w", err)
		}
		s.AutoPlay = autoPlay != 0
		s.Loop = loop != 0
		s.ShowProgress = showProgress != 0
		s.AllowSkip = allowSkip != 0
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return shows, nil
}

func (d *Database) DeleteSlideshow(id int64) error {
	res, err := d.db.Exec(`DELETE FROM slideshows WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slideshow: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) InsertSlide(s *Slide) error {
	query := `
		INSERT INTO slides (
			slideshow_id, position, duration,
			background_type, background_color, background_image, video_url, use_shared_videos,
			layout, overlay_type, overlay_opacity, overlay_color,
			title_text, title_size, title_color, title_animation,
			subtitle_text, subtitle_size, subtitle_color
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		s.SlideshowID, s.Position, s.Duration,
		s.BackgroundType, s.BackgroundColor, s.BackgroundImage, s.VideoURL, boolToInt(s.UseSharedVideos),
		s.Layout, s.OverlayType, s.OverlayOpacity, s.OverlayColor,
		s.TitleText, s.TitleSize, s.TitleColor, s.TitleAnimation,
		s.SubtitleText, s.SubtitleSize, s.SubtitleColor)
	if err != nil {
		return fmt.Errorf("failed to insert slide: %w", err)
	}
	s.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get slide id: %w", err)
	}
	return nil
}

func (d *Database) ListSlides(slideshowID int64) ([]Slide, error) {
	query := `
		SELECT id, slideshow_id, position, duration,
		       background_type, background_color, background_image, video_url, use_shared_videos,
		       layout, overlay_type, overlay_opacity, overlay_color,
		       title_text, title_size, title_color, title_animation,
		       subtitle_text, subtitle_size, subtitle_color
		FROM slides
		WHERE slideshow_id = ?
		ORDER BY position ASC
	`
	rows, err := d.db.Query(query, slideshowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []Slide
	for rows.Next() {
		var s Slide
		var useShared int
		if err := rows.Scan(&s.ID, &s.SlideshowID, &s.Position, &s.Duration,
			&s.BackgroundType, &s.BackgroundColor, &s.BackgroundImage, &s.VideoURL, &useShared,
			&s.Layout, &s.OverlayType, &s.OverlayOpacity, &s.OverlayColor,
			&s.TitleText, &s.TitleSize, &s.TitleColor, &s.TitleAnimation,
			&s.SubtitleText, &s.SubtitleSize, &s.SubtitleColor); err != nil {
			return nil, fmt.Errorf("failed to scan slide: %w", err)
		}
		s.UseSharedVideos = useShared != 0
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return slides, nil
}

func (d *Database) DeleteSlide(id int64) error {
	res, err := d.db.Exec(`DELETE FROM slides WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) GetMaxSlidePosition(slideshowID int64) (int, error) {
	query := `SELECT COALESCE(MAX(position), -1) FROM slides WHERE slideshow_id = ?`
	var maxPos int
	if err := d.db.QueryRow(query, slideshowID).Scan(&maxPos); err != nil {
		return 0, fmt.Errorf("failed to get max slide position: %w", err)
	}
	return maxPos + 1, nil
}

func (d *Database) InsertSlideObject(o *SlideObject) error {
	query := `
		INSERT INTO slide_objects (
			slide_id, object_type, horizontal_align, vertical_align, offset_x, offset_y,
			animation_in, animation_in_delay, animation_in_duration,
			animation_out, animation_out_delay, animation_out_duration, stay_on_screen,
			properties, sort_order
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		o.SlideID, o.ObjectType, o.HorizontalAlign, o.VerticalAlign, o.OffsetX, o.OffsetY,
		o.AnimationIn, o.AnimationInDelay, o.AnimationInDuration,
		o.AnimationOut, o.AnimationOutDelay, o.AnimationOutDuration, boolToInt(o.StayOnScreen),
		o.Properties, o.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert slide object: %w", err)
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get slide object id: %w", err)
	}
	return nil
}

func (d *Database) ListSlideObjects(slideID int64) ([]SlideObject, error) {
	query := `
		SELECT id, slide_id, object_type, horizontal_align, vertical_align, offset_x, offset_y,
		       animation_in, animation_in_delay, animation_in_duration,
		       animation_out, animation_out_delay, animation_out_duration, stay_on_screen,
		       properties, sort_order
		FROM slide_objects
		WHERE slide_id = ?
		ORDER BY sort_order ASC, id ASC
	`
	rows, err := d.db.Query(query, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slide objects: %w", err)
	}
	defer rows.Close()

	var objects []SlideObject
	for rows.Next() {
		var o SlideObject
		var stay int
		var outDelay sql.NullInt64
		if err := rows.Scan(&o.ID, &o.SlideID, &o.ObjectType, &o.HorizontalAlign, &o.VerticalAlign, &o.OffsetX, &o.OffsetY,
			&o.AnimationIn, &o.AnimationInDelay, &o.AnimationInDuration,
			&o.AnimationOut, &outDelay, &o.AnimationOutDuration, &stay,
			&o.Properties, &o.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan slide object: %w", err)
		}
		o.StayOnScreen = stay != 0
		if outDelay.Valid {
			v := int(outDelay.Int64)
			o.AnimationOutDelay = &v
		}
		objects = append(objects, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return objects, nil
}

func (d *Database) DeleteSlideObject(id int64) error {
	res, err := d.db.Exec(`DELETE FROM slide_objects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slide object: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) InsertBackgroundVideo(v *BackgroundVideo) error {
	query := `INSERT INTO background_videos (slide_id, url, duration, sort_order) VALUES (?, ?, ?, ?)`
	res, err := d.db.Exec(query, v.SlideID, v.URL, v.Duration, v.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert background video: %w", err)
	}
	v.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get background video id: %w", err)
	}
	return nil
}

func (d *Database) ListBackgroundVideos(slideID int64) ([]BackgroundVideo, error) {
	query := `
		SELECT id, slide_id, url, duration, sort_order
		FROM background_videos
		WHERE slide_id = ?
		ORDER BY sort_order ASC, id ASC
	`
	rows, err := d.db.Query(query, slideID)
	if err != nil {
		return nil, fmt.Errorf("failed to query background videos: %w", err)
	}
	defer rows.Close()

	var videos []BackgroundVideo
	for rows.Next() {
		var v BackgroundVideo
		if err := rows.Scan(&v.ID, &v.SlideID, &v.URL, &v.Duration, &v.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan background video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return videos, nil
}

func (d *Database) DeleteBackgroundVideo(id int64) error {
	res, err := d.db.Exec(`DELETE FROM background_videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete background video: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) InsertSharedMedia(m *SharedMedia) error {
	query := `INSERT INTO shared_media (name, url, kind, sort_order) VALUES (?, ?, ?, ?)`
	res, err := d.db.Exec(query, m.Name, m.URL, m.Kind, m.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert shared media: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get shared media id: %w", err)
	}
	return nil
}

func (d *Database) ListSharedMedia() ([]SharedMedia, error) {
	query := `SELECT id, name, url, kind, sort_order FROM shared_media ORDER BY sort_order ASC, id ASC`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shared media: %w", err)
	}
	defer rows.Close()

	var media []SharedMedia
	for rows.Next() {
		var m SharedMedia
		if err := rows.Scan(&m.ID, &m.Name, &m.URL, &m.Kind, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan shared media: %w", err)
		}
		media = append(media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return media, nil
}

func (d *Database) SharedMediaExists(name string) (bool, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM shared_media WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check shared media existence: %w", err)
	}
	return count > 0, nil
}

func (d *Database) DeleteSharedMediaByName(name string) error {
	res, err := d.db.Exec(`DELETE FROM shared_media WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete shared media: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadSharedVideoPool returns the ordered shared video pool as raw URLs,
// the flat fallback list the playback engine indexes into.
func (d *Database) LoadSharedVideoPool() ([]string, error) {
	media, err := d.ListSharedMedia()
	if err != nil {
		return nil, err
	}
	var pool []string
	for _, m := range media {
		if m.Kind != "video" {
			continue
		}
		pool = append(pool, m.URL)
	}
	return pool, nil
}

// LoadConfiguration assembles the immutable playback configuration for one
// slideshow, identified by code. Returns ErrNotFound when no such show exists.
func (d *Database) LoadConfiguration(code string) (*player.Config, error) {
	show, err := d.GetSlideshowByCode(code)
	if err != nil {
		return nil, err
	}
	return d.assembleConfiguration(show)
}

// LoadConfigurationByID is LoadConfiguration keyed by numeric id.
func (d *Database) LoadConfigurationByID(id int64) (*player.Config, error) {
	show, err := d.GetSlideshowByID(id)
	if err != nil {
		return nil, err
	}
	return d.assembleConfiguration(show)
}

func (d *Database) assembleConfiguration(show *Slideshow) (*player.Config, error) {
	slides, err := d.ListSlides(show.ID)
	if err != nil {
		return nil, err
	}

	cfg := &player.Config{
		ID:                 show.ID,
		Code:               show.Code,
		Title:              show.Title,
		AutoPlay:           show.AutoPlay,
		Loop:               show.Loop,
		ShowProgress:       show.ShowProgress,
		AllowSkip:          show.AllowSkip,
		TransitionType:     show.TransitionType,
		TransitionDuration: show.TransitionDuration,
	}

	for _, s := range slides {
		videos, err := d.ListBackgroundVideos(s.ID)
		if err != nil {
			return nil, err
		}
		objects, err := d.ListSlideObjects(s.ID)
		if err != nil {
			return nil, err
		}

		slide := player.Slide{
			ID:              s.ID,
			Duration:        s.Duration,
			BackgroundType:  player.BackgroundType(s.BackgroundType),
			BackgroundColor: s.BackgroundColor,
			BackgroundImage: s.BackgroundImage,
			VideoURL:        s.VideoURL,
			UseSharedVideos: s.UseSharedVideos,
			Layout:          player.LayoutType(s.Layout),
			OverlayType:     player.OverlayType(s.OverlayType),
			OverlayOpacity:  s.OverlayOpacity,
			OverlayColor:    s.OverlayColor,
			Title: player.LegacyText{
				Text:      s.TitleText,
				Size:      player.SizeTag(s.TitleSize),
				Color:     s.TitleColor,
				Animation: s.TitleAnimation,
			},
			Subtitle: player.LegacyText{
				Text:  s.SubtitleText,
				Size:  player.SizeTag(s.SubtitleSize),
				Color: s.SubtitleColor,
			},
		}

		for _, v := range videos {
			slide.BackgroundVideos = append(slide.BackgroundVideos, player.BackgroundVideo{
				Video:     &player.MediaRef{URL: v.URL},
				Duration:  v.Duration,
				SortOrder: v.SortOrder,
			})
		}
		for _, o := range objects {
			slide.Objects = append(slide.Objects, player.Object{
				ID:                   o.ID,
				Type:                 player.ObjectType(o.ObjectType),
				HorizontalAlign:      player.HAlign(o.HorizontalAlign),
				VerticalAlign:        player.VAlign(o.VerticalAlign),
				OffsetX:              o.OffsetX,
				OffsetY:              o.OffsetY,
				AnimationIn:          o.AnimationIn,
				AnimationInDelay:     o.AnimationInDelay,
				AnimationInDuration:  o.AnimationInDuration,
				AnimationOut:         o.AnimationOut,
				AnimationOutDelay:    o.AnimationOutDelay,
				AnimationOutDuration: o.AnimationOutDuration,
				StayOnScreen:         o.StayOnScreen,
				Properties:           o.Properties,
				SortOrder:            o.SortOrder,
			})
		}

		cfg.Slides = append(cfg.Slides, slide)
	}

	return cfg, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (d *Database) Close() error {
	return d.db.Close()
}
