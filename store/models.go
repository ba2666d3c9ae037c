package store

// Slideshow is the authoring record for one sequence.
type Slideshow struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	Title              string `json:"title"`
	AutoPlay           bool   `json:"auto_play"`
	Loop               bool   `json:"loop"`
	ShowProgress       bool   `json:"show_progress"`
	AllowSkip          bool   `json:"allow_skip"`
	TransitionType     string `json:"transition_type"`
	TransitionDuration int    `json:"transition_duration"`
}

// Slide is one authored slide row. Position is the display order.
type Slide struct {
	ID              int64  `json:"id"`
	SlideshowID     int64  `json:"slideshow_id"`
	Position        int    `json:"position"`
	Duration        int    `json:"duration"`
	BackgroundType  string `json:"background_type"`
	BackgroundColor string `json:"background_color"`
	BackgroundImage string `json:"background_image"`
	VideoURL        string `json:"video_url"`
	UseSharedVideos bool   `json:"use_shared_videos"`
	Layout          string `json:"layout"`
	OverlayType     string `json:"overlay_type"`
	OverlayOpacity  int    `json:"overlay_opacity"`
	OverlayColor    string `json:"overlay_color"`
	TitleText       string `json:"title_text"`
	TitleSize       string `json:"title_size"`
	TitleColor      string `json:"title_color"`
	TitleAnimation  string `json:"title_animation"`
	SubtitleText    string `json:"subtitle_text"`
	SubtitleSize    string `json:"subtitle_size"`
	SubtitleColor   string `json:"subtitle_color"`
}

// SlideObject is one positioned content element of a slide. Properties is
// the serialized type-specific attribute bag.
type SlideObject struct {
	ID                   int64  `json:"id"`
	SlideID              int64  `json:"slide_id"`
	ObjectType           string `json:"object_type"`
	HorizontalAlign      string `json:"horizontal_align"`
	VerticalAlign        string `json:"vertical_align"`
	OffsetX              int    `json:"offset_x"`
	OffsetY              int    `json:"offset_y"`
	AnimationIn          string `json:"animation_in"`
	AnimationInDelay     int    `json:"animation_in_delay"`
	AnimationInDuration  int    `json:"animation_in_duration"`
	AnimationOut         string `json:"animation_out"`
	AnimationOutDelay    *int   `json:"animation_out_delay,omitempty"`
	AnimationOutDuration int    `json:"animation_out_duration"`
	StayOnScreen         bool   `json:"stay_on_screen"`
	Properties           string `json:"properties"`
	SortOrder            int    `json:"sort_order"`
}

// BackgroundVideo is one entry of a slide's background rotation.
type BackgroundVideo struct {
	ID        int64  `json:"id"`
	SlideID   int64  `json:"slide_id"`
	URL       string `json:"url"`
	Duration  int    `json:"duration"`
	SortOrder int    `json:"sort_order"`
}

// SharedMedia is one entry of the shared fallback pool.
type SharedMedia struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Kind      string `json:"kind"` // "video" or "image"
	SortOrder int    `json:"sort_order"`
}
