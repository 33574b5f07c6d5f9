package dto

import (
	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

func ToTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}

func ToTagResponses(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, ToTagResponse(t))
	}
	return out
}

func ToTagCountResponse(tc repositories.TagCount) TagCountResponse {
	return TagCountResponse{
		ID:    tc.Tag.ID,
		Name:  tc.Tag.Name,
		Slug:  tc.Tag.Slug,
		Count: tc.Count,
	}
}

func ToPhotoResponse(photo models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:              photo.ID,
		Title:           photo.Title,
		Description:     photo.Description,
		Filename:        photo.Filename,
		StorageKey:      photo.StorageKey,
		StorageURL:      photo.StorageURL,
		StorageProvider: photo.StorageProvider,
		Width:           photo.Width,
		Height:          photo.Height,
		Size:            photo.Size,
		MimeType:        photo.MimeType,
		IsPublic:        photo.IsPublic,
		UploadedBy:      photo.UploadedBy,
		CreatedAt:       photo.CreatedAt,
		UpdatedAt:       photo.UpdatedAt,
		Tags:            ToTagResponses(photo.Tags),
	}
}

func ToPhotoResponses(photos []models.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, ToPhotoResponse(p))
	}
	return out
}
