package repositories

import (
	"context"

	"gallery-api/domain/models"
)

// TagCount pairs a tag with the number of photos visible to the caller.
type TagCount struct {
	Tag   models.Tag
	Count int64
}

type TagRepository interface {
	// ListWithCounts returns all tags ordered by name with per-tag photo
	// counts. When publicOnly is set, private photos are excluded from the
	// counts.
	ListWithCounts(ctx context.Context, publicOnly bool) ([]TagCount, error)

	// ResolveBySlugOrName resolves the given values against tag slugs and
	// display names. Values that match nothing are dropped silently.
	ResolveBySlugOrName(ctx context.Context, values []string) ([]models.Tag, error)

	// Seed inserts the given tag names if they do not exist yet.
	Seed(ctx context.Context, names []string) error
}
