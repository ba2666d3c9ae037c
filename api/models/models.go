// Package models tracks all api models for request and responses
package models

import "github.com/LegalDragon/slidecast/store"

type CreateSlideshowRequest struct {
	Code               string `json:"code"`
	Title              string `json:"title"`
	AutoPlay           bool   `json:"auto_play"`
	Loop               bool   `json:"loop"`
	ShowProgress       bool   `json:"show_progress"`
	AllowSkip          bool   `json:"allow_skip"`
	TransitionType     string `json:"transition_type"`
	TransitionDuration int    `json:"transition_duration"`
}

type SlideshowListResponse struct {
	Slideshows []store.Slideshow `json:"slideshows"`
	Total      int               `json:"total"`
}

type CreateSlideRequest struct {
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

type CreateSlideObjectRequest struct {
	ObjectType           string `json:"object_type"`
	HorizontalAlign      string `json:"horizontal_align"`
	VerticalAlign        string `json:"vertical_align"`
	OffsetX              int    `json:"offset_x"`
	OffsetY              int    `json:"offset_y"`
	AnimationIn          string `json:"animation_in"`
	AnimationInDelay     int    `json:"animation_in_delay"`
	AnimationInDuration  int    `json:"animation_in_duration"`
	AnimationOut         string `json:"animation_out"`
	AnimationOutDelay    *int   `json:"animation_out_delay"`
	AnimationOutDuration int    `json:"animation_out_duration"`
	StayOnScreen         bool   `json:"stay_on_screen"`
	Properties           string `json:"properties"`
	SortOrder            int    `json:"sort_order"`
}

type CreateBackgroundVideoRequest struct {
	URL       string `json:"url"`
	Duration  int    `json:"duration"`
	SortOrder int    `json:"sort_order"`
}

type UploadResponse struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type RegisterMediaRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type RegisterMediaResponse struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type SharedMediaListResponse struct {
	Media []store.SharedMedia `json:"media"`
	Total int                 `json:"total"`
}

// PlayerCommand is an inbound websocket control message.
type PlayerCommand struct {
	Action string `json:"action"` // play, pause, skip, replay
}

type ErrorResponse struct {
	Error string `json:"error"`
}
