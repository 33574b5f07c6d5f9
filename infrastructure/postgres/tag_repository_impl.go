package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/pkg/utils"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepositoryImpl{db: db}
}

type tagCountRow struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	Count     int64
}

// ListWithCounts returns every tag with its photo count in one aggregated
// query. The visibility condition lives in the join so tags whose photos are
// all private still show up with a zero count.
func (r *TagRepositoryImpl) ListWithCounts(ctx context.Context, publicOnly bool) ([]repositories.TagCount, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Select("tags.id, tags.name, tags.slug, tags.created_at, COUNT(photos.id) AS count").
		Joins("LEFT JOIN photo_tags ON photo_tags.tag_id = tags.id")

	if publicOnly {
		query = query.Joins("LEFT JOIN photos ON photos.id = photo_tags.photo_id AND photos.is_public = ?", true)
	} else {
		query = query.Joins("LEFT JOIN photos ON photos.id = photo_tags.photo_id")
	}

	var rows []tagCountRow
	err := query.
		Group("tags.id, tags.name, tags.slug, tags.created_at").
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]repositories.TagCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repositories.TagCount{
			Tag: models.Tag{
				ID:        row.ID,
				Name:      row.Name,
				Slug:      row.Slug,
				CreatedAt: row.CreatedAt,
			},
			Count: row.Count,
		})
	}
	return counts, nil
}

func (r *TagRepositoryImpl) ResolveBySlugOrName(ctx context.Context, values []string) ([]models.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}

	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("slug IN ? OR name IN ?", values, values).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}

	// Re-order to match the request; values that matched nothing are
	// dropped without error.
	bySlug := make(map[string]models.Tag, len(tags))
	byName := make(map[string]models.Tag, len(tags))
	for _, t := range tags {
		bySlug[t.Slug] = t
		byName[t.Name] = t
	}

	ordered := make([]models.Tag, 0, len(values))
	seen := make(map[uuid.UUID]bool, len(values))
	for _, v := range values {
		tag, ok := bySlug[v]
		if !ok {
			tag, ok = byName[v]
		}
		if !ok || seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		ordered = append(ordered, tag)
	}
	return ordered, nil
}

func (r *TagRepositoryImpl) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		tag := models.Tag{
			Name: name,
			Slug: utils.Slugify(name),
		}
		err := r.db.WithContext(ctx).
			Where("slug = ?", tag.Slug).
			FirstOrCreate(&tag).Error
		if err != nil {
			return err
		}
	}
	return nil
}
