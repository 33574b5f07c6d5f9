package serviceimpl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gallery-api/application/serviceimpl"
	"gallery-api/domain/dto"
	"gallery-api/domain/models"
	"gallery-api/domain/services"
)

func newPhotoService(photoRepo *stubPhotoRepo, tagRepo *stubTagRepo, provider *stubProvider, marker *stubWatermarker) services.PhotoService {
	if tagRepo == nil {
		tagRepo = &stubTagRepo{}
	}
	if provider == nil {
		provider = newStubProvider()
	}
	if marker == nil {
		marker = &stubWatermarker{}
	}
	return serviceimpl.NewPhotoService(photoRepo, tagRepo, provider, marker)
}

func TestGetPhotoPrivateHiddenFromAnonymous(t *testing.T) {
	photo := &models.Photo{IsPublic: false, Filename: "secret.jpg", StorageKey: "secret.jpg"}
	repo := newStubPhotoRepo(photo)
	svc := newPhotoService(repo, nil, nil, nil)
	ctx := context.Background()

	// Anonymous sees not-found, never forbidden.
	if _, err := svc.GetPhoto(ctx, photo.ID, false); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for anonymous, got %v", err)
	}

	got, err := svc.GetPhoto(ctx, photo.ID, true)
	if err != nil {
		t.Fatalf("expected admin to see private photo, got %v", err)
	}
	if got.Filename != "secret.jpg" {
		t.Fatalf("unexpected photo: %+v", got)
	}
}

func TestListPhotosDowngradesIncludePrivate(t *testing.T) {
	repo := newStubPhotoRepo(
		&models.Photo{IsPublic: true, Filename: "pub.jpg", StorageKey: "pub.jpg"},
		&models.Photo{IsPublic: false, Filename: "priv.jpg", StorageKey: "priv.jpg"},
	)
	svc := newPhotoService(repo, nil, nil, nil)
	ctx := context.Background()

	// includePrivate without a session is ignored silently.
	photos, err := svc.ListPhotos(ctx, services.PhotoQuery{IncludePrivate: true, IsAdmin: false})
	if err != nil {
		t.Fatalf("ListPhotos: %v", err)
	}
	if len(photos) != 1 || photos[0].Filename != "pub.jpg" {
		t.Fatalf("expected only the public photo, got %+v", photos)
	}
	if repo.listPublicOnly == nil || !*repo.listPublicOnly {
		t.Fatal("expected repository to be queried public-only")
	}

	photos, err = svc.ListPhotos(ctx, services.PhotoQuery{IncludePrivate: true, IsAdmin: true})
	if err != nil {
		t.Fatalf("ListPhotos(admin): %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected both photos for admin, got %d", len(photos))
	}
}

func TestListPhotosTagFilterMatchesSlugOrName(t *testing.T) {
	nature := models.Tag{ID: uuid.New(), Name: "Nature", Slug: "nature"}
	repo := newStubPhotoRepo(
		&models.Photo{IsPublic: true, Filename: "tagged.jpg", StorageKey: "t.jpg", Tags: []models.Tag{nature}},
		&models.Photo{IsPublic: true, Filename: "plain.jpg", StorageKey: "p.jpg"},
	)
	svc := newPhotoService(repo, nil, nil, nil)
	ctx := context.Background()

	for _, filter := range []string{"nature", "Nature"} {
		photos, err := svc.ListPhotos(ctx, services.PhotoQuery{Tag: filter})
		if err != nil {
			t.Fatalf("ListPhotos(tag=%s): %v", filter, err)
		}
		if len(photos) != 1 || photos[0].Filename != "tagged.jpg" {
			t.Fatalf("tag filter %q: expected only tagged.jpg, got %+v", filter, photos)
		}
	}
}

func TestDeletePhotoSwallowsStorageFailure(t *testing.T) {
	photo := &models.Photo{IsPublic: true, Filename: "a.jpg", StorageKey: "key-a"}
	repo := newStubPhotoRepo(photo)
	provider := newStubProvider()
	provider.deleteErr = errors.New("bucket unreachable")
	svc := newPhotoService(repo, nil, provider, nil)

	if err := svc.DeletePhoto(context.Background(), photo.ID); err != nil {
		t.Fatalf("expected delete to succeed despite storage failure, got %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("expected metadata record to be deleted")
	}
	if len(provider.deleteKeys) != 1 || provider.deleteKeys[0] != "key-a" {
		t.Fatalf("expected storage delete attempt for key-a, got %v", provider.deleteKeys)
	}
}

func TestDeletePhotoMissingLeavesStorageAlone(t *testing.T) {
	repo := newStubPhotoRepo()
	provider := newStubProvider()
	svc := newPhotoService(repo, nil, provider, nil)

	err := svc.DeletePhoto(context.Background(), uuid.New())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(provider.deleteKeys) != 0 {
		t.Fatal("storage must not be touched for a missing photo")
	}
}

func TestDownloadPhotoWatermarksForAnonymous(t *testing.T) {
	provider := newStubProvider()
	provider.files["key-b"] = []byte("rawbytes")
	photo := &models.Photo{IsPublic: true, Filename: "shot.png", MimeType: "image/png", StorageKey: "key-b"}
	repo := newStubPhotoRepo(photo)
	marker := &stubWatermarker{}
	svc := newPhotoService(repo, nil, provider, marker)
	ctx := context.Background()

	result, err := svc.DownloadPhoto(ctx, photo.ID, false)
	if err != nil {
		t.Fatalf("DownloadPhoto: %v", err)
	}
	if !result.Watermarked || marker.applied != 1 {
		t.Fatal("expected watermarked download for anonymous caller")
	}
	if result.MimeType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", result.MimeType)
	}
	if result.Filename != "shot.jpg" {
		t.Fatalf("expected shot.jpg, got %s", result.Filename)
	}

	admin, err := svc.DownloadPhoto(ctx, photo.ID, true)
	if err != nil {
		t.Fatalf("DownloadPhoto(admin): %v", err)
	}
	if admin.Watermarked || string(admin.Data) != "rawbytes" {
		t.Fatal("expected original bytes for admin download")
	}
	if admin.MimeType != "image/png" || admin.Filename != "shot.png" {
		t.Fatalf("unexpected admin download metadata: %+v", admin)
	}
}

func TestDownloadPrivatePhotoAnonymousNotFound(t *testing.T) {
	photo := &models.Photo{IsPublic: false, Filename: "p.jpg", StorageKey: "key-c"}
	repo := newStubPhotoRepo(photo)
	svc := newPhotoService(repo, nil, nil, nil)

	if _, err := svc.DownloadPhoto(context.Background(), photo.ID, false); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePhotoReplacesTags(t *testing.T) {
	nature := models.Tag{ID: uuid.New(), Name: "Nature", Slug: "nature"}
	urban := models.Tag{ID: uuid.New(), Name: "Urban", Slug: "urban"}
	tagRepo := &stubTagRepo{tags: []models.Tag{nature, urban}}

	photo := &models.Photo{IsPublic: true, Filename: "a.jpg", StorageKey: "a", Tags: []models.Tag{nature}}
	repo := newStubPhotoRepo(photo)
	svc := newPhotoService(repo, tagRepo, nil, nil)

	tags := []string{"urban"}
	updated, err := svc.UpdatePhoto(context.Background(), photo.ID, &dto.UpdatePhotoRequest{Tags: &tags})
	if err != nil {
		t.Fatalf("UpdatePhoto: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Slug != "urban" {
		t.Fatalf("expected tags replaced with urban, got %+v", updated.Tags)
	}
}

func TestUpdatePhotoVisibilityFlip(t *testing.T) {
	photo := &models.Photo{IsPublic: false, Filename: "flip.jpg", StorageKey: "flip"}
	repo := newStubPhotoRepo(photo)
	svc := newPhotoService(repo, nil, nil, nil)
	ctx := context.Background()

	isPublic := true
	updated, err := svc.UpdatePhoto(ctx, photo.ID, &dto.UpdatePhotoRequest{IsPublic: &isPublic})
	if err != nil {
		t.Fatalf("UpdatePhoto: %v", err)
	}
	if !updated.IsPublic {
		t.Fatal("expected photo to become public")
	}

	// Now visible anonymously.
	if _, err := svc.GetPhoto(ctx, photo.ID, false); err != nil {
		t.Fatalf("expected flipped photo to be visible, got %v", err)
	}
}
