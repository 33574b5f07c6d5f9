package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	_ "image/jpeg"

	"gallery-api/application/serviceimpl"
	"gallery-api/domain/dto"
	"gallery-api/infrastructure/jsonstore"
	"gallery-api/infrastructure/storage"
	"gallery-api/infrastructure/watermark"
	"gallery-api/interfaces/api/handlers"
	"gallery-api/interfaces/api/middleware"
	"gallery-api/interfaces/api/routes"
	"gallery-api/pkg/config"
)

// newGalleryApp wires the real service stack over the JSON metadata store and
// the local disk provider, as a zero-infrastructure deployment would run.
func newGalleryApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Session.Secret = "integration-secret"
	cfg.Session.CookieName = "gallery_session"
	cfg.Admin.Secret = "letmein"
	cfg.Watermark.Text = "PHOTO GALLERY"
	cfg.Watermark.Caption = "© Photo Gallery"

	store, err := jsonstore.NewStore(filepath.Join(t.TempDir(), "photos.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	photoRepo := jsonstore.NewPhotoRepository(store)
	tagRepo := jsonstore.NewTagRepository(store)
	if err := tagRepo.Seed(context.Background(), []string{"Nature", "Urban"}); err != nil {
		t.Fatalf("seeding tags: %v", err)
	}

	provider, err := storage.NewLocalProvider(config.StorageConfig{
		UploadDir: t.TempDir(),
		PublicDir: "/uploads",
	})
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}

	marker := watermark.New(cfg.Watermark)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handlers.NewHandlers(&handlers.Services{
		AuthService:   serviceimpl.NewAuthService(cfg.Admin, cfg.Session.Secret),
		PhotoService:  serviceimpl.NewPhotoService(photoRepo, tagRepo, provider, marker),
		UploadService: serviceimpl.NewUploadService(provider),
		TagService:    serviceimpl.NewTagService(tagRepo),
	}, cfg, func() error { return nil })
	routes.SetupRoutes(app, h, cfg)

	return app
}

func request(t *testing.T, app *fiber.App, method, target string, body io.Reader, contentType string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

// TestPrivateUploadToPublicDownload walks the whole admin flow: upload a
// private photo, confirm visitors cannot see it, publish it, then fetch the
// watermarked public rendition.
func TestPrivateUploadToPublicDownload(t *testing.T) {
	app := newGalleryApp(t)

	// Admin login.
	resp := request(t, app, http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"code":"letmein"}`), fiber.MIMEApplicationJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "gallery_session" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("login did not set the session cookie")
	}

	// Upload a real PNG.
	var srcBuf bytes.Buffer
	srcImg := image.NewRGBA(image.Rect(0, 0, 200, 150))
	if err := png.Encode(&srcBuf, srcImg); err != nil {
		t.Fatalf("encoding source png: %v", err)
	}
	original := srcBuf.Bytes()

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	if err := mw.WriteField("tag", "nature"); err != nil {
		t.Fatalf("writing tag field: %v", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="shot.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	if _, err := part.Write(original); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	mw.Close()

	resp = request(t, app, http.MethodPost, "/api/upload", &form, mw.FormDataContentType(), session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d", resp.StatusCode)
	}
	var uploaded dto.UploadResponse
	decodeInto(t, resp, &uploaded)
	if uploaded.StorageKey == "" || uploaded.Width != 200 || uploaded.Height != 150 {
		t.Fatalf("unexpected upload response: %+v", uploaded)
	}

	// Register the metadata record, private.
	create := map[string]interface{}{
		"filename":    uploaded.Filename,
		"storage_key": uploaded.StorageKey,
		"storage_url": uploaded.StorageURL,
		"mime_type":   uploaded.MimeType,
		"width":       uploaded.Width,
		"height":      uploaded.Height,
		"size":        uploaded.Size,
		"is_public":   false,
		"tags":        []string{"nature"},
	}
	createBody, _ := json.Marshal(create)
	resp = request(t, app, http.MethodPost, "/api/photos", bytes.NewReader(createBody), fiber.MIMEApplicationJSON, session)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create photo: expected 201, got %d", resp.StatusCode)
	}
	var photo dto.PhotoResponse
	decodeInto(t, resp, &photo)
	if len(photo.Tags) != 1 || photo.Tags[0].Slug != "nature" {
		t.Fatalf("expected nature tag on created photo, got %+v", photo.Tags)
	}

	// Visitors see nothing; the admin sees it with includePrivate.
	resp = request(t, app, http.MethodGet, "/api/photos", nil, "")
	var listing []dto.PhotoResponse
	decodeInto(t, resp, &listing)
	if len(listing) != 0 {
		t.Fatalf("expected empty public listing, got %d photos", len(listing))
	}

	resp = request(t, app, http.MethodGet, "/api/photos?includePrivate=true", nil, "", session)
	decodeInto(t, resp, &listing)
	if len(listing) != 1 {
		t.Fatalf("expected one photo for admin listing, got %d", len(listing))
	}

	// The private photo is indistinguishable from a missing one.
	resp = request(t, app, http.MethodGet, "/api/photos/"+photo.ID.String(), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for anonymous private read, got %d", resp.StatusCode)
	}
	resp = request(t, app, http.MethodGet, "/api/photos/"+photo.ID.String()+"/download", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for anonymous private download, got %d", resp.StatusCode)
	}

	// Publish it.
	resp = request(t, app, http.MethodPatch, "/api/photos/"+photo.ID.String(),
		strings.NewReader(`{"is_public":true}`), fiber.MIMEApplicationJSON, session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d", resp.StatusCode)
	}

	resp = request(t, app, http.MethodGet, "/api/photos", nil, "")
	decodeInto(t, resp, &listing)
	if len(listing) != 1 {
		t.Fatalf("expected published photo in public listing, got %d", len(listing))
	}

	// Public download: watermarked JPEG at the source dimensions, never
	// cacheable.
	resp = request(t, app, http.MethodGet, "/api/photos/"+photo.ID.String()+"/download", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public download: expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderCacheControl); got != "no-store" {
		t.Fatalf("expected Cache-Control no-store, got %q", got)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); got != "image/jpeg" {
		t.Fatalf("expected image/jpeg download, got %q", got)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading download body: %v", err)
	}
	rendered, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding download: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg rendition, got %s", format)
	}
	if b := rendered.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("expected 200x150 rendition, got %dx%d", b.Dx(), b.Dy())
	}

	// Admin download is the untouched original.
	resp = request(t, app, http.MethodGet, "/api/photos/"+photo.ID.String()+"/download", nil, "", session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin download: expected 200, got %d", resp.StatusCode)
	}
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading admin download: %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Fatal("expected admin download to return the original bytes")
	}

	// Tag counts track visibility too.
	resp = request(t, app, http.MethodGet, "/api/tags", nil, "")
	var tags []dto.TagCountResponse
	decodeInto(t, resp, &tags)
	for _, tag := range tags {
		switch tag.Slug {
		case "nature":
			if tag.Count != 1 {
				t.Fatalf("expected nature count 1, got %d", tag.Count)
			}
		case "urban":
			if tag.Count != 0 {
				t.Fatalf("expected urban count 0, got %d", tag.Count)
			}
		}
	}
}

// TestDeleteRemovesMetadataAndFile finishes the lifecycle: after a delete the
// photo is gone from the API and the stored object is unreachable.
func TestDeleteRemovesMetadataAndFile(t *testing.T) {
	app := newGalleryApp(t)

	resp := request(t, app, http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"code":"letmein"}`), fiber.MIMEApplicationJSON)
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "gallery_session" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("login did not set the session cookie")
	}

	var srcBuf bytes.Buffer
	if err := png.Encode(&srcBuf, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="tiny.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	if _, err := part.Write(srcBuf.Bytes()); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	mw.Close()

	resp = request(t, app, http.MethodPost, "/api/upload", &form, mw.FormDataContentType(), session)
	var uploaded dto.UploadResponse
	decodeInto(t, resp, &uploaded)

	createBody, _ := json.Marshal(map[string]interface{}{
		"filename":    uploaded.Filename,
		"storage_key": uploaded.StorageKey,
		"storage_url": uploaded.StorageURL,
		"is_public":   true,
	})
	resp = request(t, app, http.MethodPost, "/api/photos", bytes.NewReader(createBody), fiber.MIMEApplicationJSON, session)
	var photo dto.PhotoResponse
	decodeInto(t, resp, &photo)

	resp = request(t, app, http.MethodDelete, "/api/photos/"+photo.ID.String(), nil, "", session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}

	resp = request(t, app, http.MethodGet, "/api/photos/"+photo.ID.String(), nil, "", session)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp = request(t, app, http.MethodDelete, "/api/photos/"+photo.ID.String(), nil, "", session)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected repeated delete to 404, got %d", resp.StatusCode)
	}
}
