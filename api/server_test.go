package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegalDragon/slidecast/api/models"
	"github.com/LegalDragon/slidecast/config"
	"github.com/LegalDragon/slidecast/player"
	"github.com/LegalDragon/slidecast/store"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rootPath := t.TempDir()
	db, err := store.NewDatabase(filepath.Join(rootPath, "slidecast.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Addr:     "127.0.0.1:0",
		RootPath: rootPath,
	}
	return NewWebServer(db, cfg)
}

func doJSON(t *testing.T, ws *WebServer, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, req)
	return w
}

func TestSlideshowLifecycle(t *testing.T) {
	ws := newTestServer(t)

	w := doJSON(t, ws, http.MethodPost, "/slideshows", models.CreateSlideshowRequest{
		Code:     "demo",
		Title:    "Demo",
		AutoPlay: true,
		Loop:     true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var show store.Slideshow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &show))
	assert.Equal(t, "demo", show.Code)
	assert.NotZero(t, show.ID)

	w = doJSON(t, ws, http.MethodGet, "/slideshows/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodGet, "/slideshows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.SlideshowListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	w = doJSON(t, ws, http.MethodDelete, "/slideshows/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodGet, "/slideshows/demo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratedCodeWhenOmitted(t *testing.T) {
	ws := newTestServer(t)

	w := doJSON(t, ws, http.MethodPost, "/slideshows", models.CreateSlideshowRequest{Title: "No Code"})
	require.Equal(t, http.StatusOK, w.Code)

	var show store.Slideshow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &show))
	assert.Len(t, show.Code, 8)
}

func TestConfigurationAssembly(t *testing.T) {
	ws := newTestServer(t)

	w := doJSON(t, ws, http.MethodPost, "/slideshows", models.CreateSlideshowRequest{
		Code: "conf", AutoPlay: true, AllowSkip: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodPost, "/slideshows/conf/slides", models.CreateSlideRequest{
		Duration:       3000,
		BackgroundType: "heroVideos",
		TitleText:      "First",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var slide store.Slide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slide))

	w = doJSON(t, ws, http.MethodPost, fmt.Sprintf("/slides/%d/videos", slide.ID), models.CreateBackgroundVideoRequest{
		URL: "clip.mp4", Duration: 1500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	delay := 2000
	w = doJSON(t, ws, http.MethodPost, fmt.Sprintf("/slides/%d/objects", slide.ID), models.CreateSlideObjectRequest{
		ObjectType:        "text",
		AnimationIn:       "fadeIn",
		AnimationOut:      "fadeOut",
		AnimationOutDelay: &delay,
		Properties:        `{"text":"Hi"}`,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodGet, "/slideshows/conf/config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg player.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.True(t, cfg.AutoPlay)
	require.Len(t, cfg.Slides, 1)
	assert.Equal(t, 3000, cfg.Slides[0].Duration)
	require.Len(t, cfg.Slides[0].BackgroundVideos, 1)
	require.Len(t, cfg.Slides[0].Objects, 1)
	require.NotNil(t, cfg.Slides[0].Objects[0].AnimationOutDelay)
	assert.Equal(t, 2000, *cfg.Slides[0].Objects[0].AnimationOutDelay)
}

func TestRejectsInvalidObjectType(t *testing.T) {
	ws := newTestServer(t)

	w := doJSON(t, ws, http.MethodPost, "/slides/1/objects", models.CreateSlideObjectRequest{
		ObjectType: "gif",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadRequest(t *testing.T, filename string, contents []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadRoundtrip(t *testing.T) {
	ws := newTestServer(t)

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, uploadRequest(t, "clip.mp4", []byte("not really a video")))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "video", resp.Kind)
	assert.Equal(t, ".mp4", filepath.Ext(resp.Name))

	// stored file is served back
	w = doJSON(t, ws, http.MethodGet, "/assets/"+resp.Name, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// and listed in the pool
	w = doJSON(t, ws, http.MethodGet, "/media", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.SharedMediaListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	ws := newTestServer(t)

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, uploadRequest(t, "malware.exe", []byte("nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMediaRequiresFile(t *testing.T) {
	ws := newTestServer(t)

	w := doJSON(t, ws, http.MethodPost, "/media/register", models.RegisterMediaRequest{Name: "ghost.mp4"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// present on disk, registration succeeds
	require.NoError(t, os.MkdirAll(ws.assetsDir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ws.assetsDir(), "real.mp4"), []byte("x"), 0o644))

	w = doJSON(t, ws, http.MethodPost, "/media/register", models.RegisterMediaRequest{Name: "real.mp4"})
	require.Equal(t, http.StatusOK, w.Code)

	// idempotent
	w = doJSON(t, ws, http.MethodPost, "/media/register", models.RegisterMediaRequest{Name: "real.mp4"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.RegisterMediaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "already exists")
}

func TestDeleteMediaDeregistersBeforeRemovingFile(t *testing.T) {
	ws := newTestServer(t)

	w := httptest.NewRecorder()
	ws.router.ServeHTTP(w, uploadRequest(t, "clip.mp4", []byte("x")))
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(t, ws, http.MethodDelete, "/media/"+resp.Name, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// both the registration and the file are gone
	w = doJSON(t, ws, http.MethodGet, "/media", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.SharedMediaListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)

	_, err := os.Stat(filepath.Join(ws.assetsDir(), resp.Name))
	assert.True(t, os.IsNotExist(err))

	// a registration whose file already vanished can still be cleaned up
	require.NoError(t, ws.db.InsertSharedMedia(&store.SharedMedia{Name: "gone.mp4", URL: "/assets/gone.mp4", Kind: "video"}))
	w = doJSON(t, ws, http.MethodDelete, "/media/gone.mp4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodGet, "/media", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestQRCodeEndpoint(t *testing.T) {
	ws := newTestServer(t)

	doJSON(t, ws, http.MethodPost, "/slideshows", models.CreateSlideshowRequest{Code: "qr"})

	w := doJSON(t, ws, http.MethodGet, "/slideshows/qr/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = doJSON(t, ws, http.MethodGet, "/slideshows/missing/qr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlayerPageRenders(t *testing.T) {
	ws := newTestServer(t)

	doJSON(t, ws, http.MethodPost, "/slideshows", models.CreateSlideshowRequest{Code: "page", Title: "Page", AllowSkip: true})
	w := doJSON(t, ws, http.MethodPost, "/slideshows/page/slides", models.CreateSlideRequest{
		BackgroundType: "color", BackgroundColor: "#123456", TitleText: "Hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ws, http.MethodGet, "/play/page", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "#123456")
	assert.Contains(t, body, "/ws/play/page")

	w = doJSON(t, ws, http.MethodGet, "/play/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
