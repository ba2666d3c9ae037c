// Package api is the main api web server
package api

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/LegalDragon/slidecast/api/models"
	"github.com/LegalDragon/slidecast/api/web/templates"
	"github.com/LegalDragon/slidecast/config"
	"github.com/LegalDragon/slidecast/player"
	"github.com/LegalDragon/slidecast/store"
	"github.com/LegalDragon/slidecast/util"
)

type WebServer struct {
	router *gin.Engine
	db     *store.Database
	cfg    *config.Config

	Updated chan bool
}

func NewWebServer(db *store.Database, cfg *config.Config) *WebServer {
	router := gin.Default()
	router.Use(cors.Default())

	ws := &WebServer{
		router:  router,
		db:      db,
		cfg:     cfg,
		Updated: make(chan bool),
	}

	ws.setupRoutes()

	return ws
}

func (ws *WebServer) setupRoutes() {
	ws.router.GET("/", ws.handleIndex)
	ws.router.GET("/play/:code", ws.handlePlayerPage)
	ws.router.GET("/ws/play/:code", ws.handlePlaySocket)

	ws.router.GET("/assets/:name", ws.handleAsset)

	// API routes
	ws.router.POST("/slideshows", ws.handleCreateSlideshow)
	ws.router.GET("/slideshows", ws.handleListSlideshows)
	ws.router.GET("/slideshows/:code", ws.handleGetSlideshow)
	ws.router.PUT("/slideshows/:code", ws.handleUpdateSlideshow)
	ws.router.DELETE("/slideshows/:code", ws.handleDeleteSlideshow)
	ws.router.GET("/slideshows/:code/config", ws.handleGetConfiguration)
	ws.router.GET("/slideshows/:code/qr", ws.handleQRCode)

	ws.router.POST("/slideshows/:code/slides", ws.handleCreateSlide)
	ws.router.GET("/slideshows/:code/slides", ws.handleListSlides)
	ws.router.DELETE("/slides/:id", ws.handleDeleteSlide)

	ws.router.POST("/slides/:id/objects", ws.handleCreateSlideObject)
	ws.router.GET("/slides/:id/objects", ws.handleListSlideObjects)
	ws.router.DELETE("/objects/:id", ws.handleDeleteSlideObject)

	ws.router.POST("/slides/:id/videos", ws.handleCreateBackgroundVideo)
	ws.router.GET("/slides/:id/videos", ws.handleListBackgroundVideos)
	ws.router.DELETE("/videos/:id", ws.handleDeleteBackgroundVideo)

	ws.router.POST("/upload", ws.handleUpload)
	ws.router.POST("/media/register", ws.handleRegisterMedia)
	ws.router.GET("/media", ws.handleListMedia)
	ws.router.DELETE("/media/:name", ws.handleDeleteMedia)
}

func (ws *WebServer) Start(addr string) {
	log.Printf("Starting web server on %s", addr)
	if err := ws.router.Run(addr); err != nil {
		log.Fatalf("Failed to start web server: %v", err)
	}
}

// assetResolver maps relative media references onto the serving base URL.
func (ws *WebServer) assetResolver() player.AssetResolver {
	base := ws.cfg.AssetBaseURL
	if base == "" {
		base = "/assets"
	}
	return func(ref string) string {
		return base + "/" + filepath.Base(ref)
	}
}

func (ws *WebServer) assetsDir() string {
	return filepath.Join(ws.cfg.RootPath, "assets")
}

func (ws *WebServer) playerURL(code string) string {
	base := ws.cfg.PublicURL
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/play/%s", base, code)
}

func (ws *WebServer) handleIndex(c *gin.Context) {
	shows, err := ws.db.ListSlideshows()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to list slideshows")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := templates.IndexPage(shows).Render(c.Request.Context(), c.Writer); err != nil {
		slog.Error("failed to render index page", "error", err)
	}
}

func (ws *WebServer) handlePlayerPage(c *gin.Context) {
	code := c.Param("code")
	cfg, err := ws.db.LoadConfiguration(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Slideshow not found")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to load slideshow")
		return
	}

	pool, err := ws.db.LoadSharedVideoPool()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load shared pool")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	page := templates.PlayerPage(cfg, pool, ws.assetResolver())
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		slog.Error("failed to render player page", "code", code, "error", err)
	}
}

func (ws *WebServer) handleAsset(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	filePath := filepath.Join(ws.assetsDir(), name)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Asset not found: %s", name)})
		return
	}
	c.File(filePath)
}

func (ws *WebServer) handleCreateSlideshow(c *gin.Context) {
	var req models.CreateSlideshowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	if req.Code == "" {
		req.Code = uuid.NewString()[:8]
	}

	show := &store.Slideshow{
		Code:               req.Code,
		Title:              req.Title,
		AutoPlay:           req.AutoPlay,
		Loop:               req.Loop,
		ShowProgress:       req.ShowProgress,
		AllowSkip:          req.AllowSkip,
		TransitionType:     req.TransitionType,
		TransitionDuration: req.TransitionDuration,
	}
	if err := ws.db.CreateSlideshow(show); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to create slideshow: %v", err)})
		return
	}

	c.JSON(http.StatusOK, show)
}

func (ws *WebServer) handleListSlideshows(c *gin.Context) {
	shows, err := ws.db.ListSlideshows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, models.SlideshowListResponse{Slideshows: shows, Total: len(shows)})
}

func (ws *WebServer) handleGetSlideshow(c *gin.Context) {
	show, err := ws.db.GetSlideshowByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (ws *WebServer) handleUpdateSlideshow(c *gin.Context) {
	show, err := ws.db.GetSlideshowByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}

	var req models.CreateSlideshowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	show.Title = req.Title
	show.AutoPlay = req.AutoPlay
	show.Loop = req.Loop
	show.ShowProgress = req.ShowProgress
	show.AllowSkip = req.AllowSkip
	show.TransitionType = req.TransitionType
	show.TransitionDuration = req.TransitionDuration

	if err := ws.db.UpdateSlideshow(show); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to update slideshow: %v", err)})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (ws *WebServer) handleDeleteSlideshow(c *gin.Context) {
	show, err := ws.db.GetSlideshowByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	if err := ws.db.DeleteSlideshow(show.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to delete slideshow: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Slideshow '%s' deleted successfully", show.Code)})
}

func (ws *WebServer) handleGetConfiguration(c *gin.Context) {
	cfg, err := ws.db.LoadConfiguration(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (ws *WebServer) handleQRCode(c *gin.Context) {
	code := c.Param("code")
	if _, err := ws.db.GetSlideshowByCode(code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}

	png, err := qrcode.Encode(ws.playerURL(code), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to generate QR code: %v", err)})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (ws *WebServer) handleCreateSlide(c *gin.Context) {
	show, err := ws.db.GetSlideshowByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}

	var req models.CreateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	position, err := ws.db.GetMaxSlidePosition(show.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}

	slide := &store.Slide{
		SlideshowID:     show.ID,
		Position:        position,
		Duration:        req.Duration,
		BackgroundType:  req.BackgroundType,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		VideoURL:        req.VideoURL,
		UseSharedVideos: req.UseSharedVideos,
		Layout:          req.Layout,
		OverlayType:     req.OverlayType,
		OverlayOpacity:  req.OverlayOpacity,
		OverlayColor:    req.OverlayColor,
		TitleText:       req.TitleText,
		TitleSize:       req.TitleSize,
		TitleColor:      req.TitleColor,
		TitleAnimation:  req.TitleAnimation,
		SubtitleText:    req.SubtitleText,
		SubtitleSize:    req.SubtitleSize,
		SubtitleColor:   req.SubtitleColor,
	}
	if err := ws.db.InsertSlide(slide); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to insert slide: %v", err)})
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (ws *WebServer) handleListSlides(c *gin.Context) {
	show, err := ws.db.GetSlideshowByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}

	slides, err := ws.db.ListSlides(show.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (ws *WebServer) handleDeleteSlide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid slide id"})
		return
	}
	if err := ws.db.DeleteSlide(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to delete slide: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted successfully"})
}

func (ws *WebServer) handleCreateSlideObject(c *gin.Context) {
	slideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid slide id"})
		return
	}

	var req models.CreateSlideObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	switch player.ObjectType(req.ObjectType) {
	case player.ObjectText, player.ObjectImage, player.ObjectVideo:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("object_type must be text, image or video, got %q", req.ObjectType)})
		return
	}

	obj := &store.SlideObject{
		SlideID:              slideID,
		ObjectType:           req.ObjectType,
		HorizontalAlign:      req.HorizontalAlign,
		VerticalAlign:        req.VerticalAlign,
		OffsetX:              req.OffsetX,
		OffsetY:              req.OffsetY,
		AnimationIn:          req.AnimationIn,
		AnimationInDelay:     req.AnimationInDelay,
		AnimationInDuration:  req.AnimationInDuration,
		AnimationOut:         req.AnimationOut,
		AnimationOutDelay:    req.AnimationOutDelay,
		AnimationOutDuration: req.AnimationOutDuration,
		StayOnScreen:         req.StayOnScreen,
		Properties:           req.Properties,
		SortOrder:            req.SortOrder,
	}
	if err := ws.db.InsertSlideObject(obj); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to insert slide object: %v", err)})
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (ws *WebServer) handleListSlideObjects(c *gin.Context) {
	slideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid slide id"})
		return
	}
	objects, err := ws.db.ListSlideObjects(slideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, objects)
}

func (ws *WebServer) handleDeleteSlideObject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid object id"})
		return
	}
	if err := ws.db.DeleteSlideObject(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slide object not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to delete slide object: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slide object deleted successfully"})
}

func (ws *WebServer) handleCreateBackgroundVideo(c *gin.Context) {
	slideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid slide id"})
		return
	}

	var req models.CreateBackgroundVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "url is required"})
		return
	}

	video := &store.BackgroundVideo{
		SlideID:   slideID,
		URL:       req.URL,
		Duration:  req.Duration,
		SortOrder: req.SortOrder,
	}
	if err := ws.db.InsertBackgroundVideo(video); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to insert background video: %v", err)})
		return
	}
	c.JSON(http.StatusOK, video)
}

func (ws *WebServer) handleListBackgroundVideos(c *gin.Context) {
	slideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid slide id"})
		return
	}
	videos, err := ws.db.ListBackgroundVideos(slideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (ws *WebServer) handleDeleteBackgroundVideo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid video id"})
		return
	}
	if err := ws.db.DeleteBackgroundVideo(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Background video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to delete background video: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Background video deleted successfully"})
}

func (ws *WebServer) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No file provided"})
		return
	}

	ext := filepath.Ext(file.Filename)
	kind := util.MediaKind(file.Filename)
	if kind == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", ext),
		})
		return
	}

	if err := os.MkdirAll(ws.assetsDir(), 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to create directory: %v", err)})
		return
	}

	// Store under a generated name so uploads never collide.
	name := uuid.NewString() + ext
	filePath := filepath.Join(ws.assetsDir(), name)
	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to save file: %v", err)})
		return
	}

	url := ws.assetResolver()(name)
	if err := ws.db.InsertSharedMedia(&store.SharedMedia{Name: name, URL: url, Kind: kind}); err != nil {
		os.Remove(filePath)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to insert media into database: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Name:    name,
		URL:     url,
		Kind:    kind,
		Message: "Media uploaded successfully",
	})
}

func (ws *WebServer) handleRegisterMedia(c *gin.Context) {
	var req models.RegisterMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = util.MediaKind(req.Name)
	}
	if kind != "video" && kind != "image" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("kind must be video or image, got %q", kind)})
		return
	}

	// The file must already be present in the assets directory.
	filePath := filepath.Join(ws.assetsDir(), filepath.Base(req.Name))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Media file does not exist: %s", req.Name)})
		return
	}

	exists, err := ws.db.SharedMediaExists(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	if exists {
		c.JSON(http.StatusOK, models.RegisterMediaResponse{
			Name:    req.Name,
			Kind:    kind,
			Message: fmt.Sprintf("Media '%s' already exists", req.Name),
		})
		return
	}

	url := ws.assetResolver()(req.Name)
	if err := ws.db.InsertSharedMedia(&store.SharedMedia{Name: req.Name, URL: url, Kind: kind}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to insert media into database: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.RegisterMediaResponse{
		Name:    req.Name,
		URL:     url,
		Kind:    kind,
		Message: "Media registered successfully",
	})
}

func (ws *WebServer) handleListMedia(c *gin.Context) {
	media, err := ws.db.ListSharedMedia()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Database error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, models.SharedMediaListResponse{Media: media, Total: len(media)})
}

func (ws *WebServer) handleDeleteMedia(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	if name == "" || name == "." {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Media name is required"})
		return
	}

	// Deregister before touching the filesystem: a failed row delete must
	// not leave a registered entry pointing at a missing file.
	if err := ws.db.DeleteSharedMediaByName(name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Media '%s' not found", name)})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to delete media from database: %v", err)})
		return
	}

	filePath := filepath.Join(ws.assetsDir(), name)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove media file after deregistration", "name", name, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Media '%s' deleted successfully", name)})
}
