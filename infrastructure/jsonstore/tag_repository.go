package jsonstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

type TagRepositoryImpl struct {
	store *Store
}

func NewTagRepository(store *Store) repositories.TagRepository {
	return &TagRepositoryImpl{store: store}
}

func (r *TagRepositoryImpl) ListWithCounts(ctx context.Context, publicOnly bool) ([]repositories.TagCount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	countsByID := make(map[uuid.UUID]int64, len(r.store.doc.Tags))
	for _, photo := range r.store.doc.Photos {
		if publicOnly && !photo.IsPublic {
			continue
		}
		for _, tag := range photo.Tags {
			countsByID[tag.ID]++
		}
	}

	counts := make([]repositories.TagCount, 0, len(r.store.doc.Tags))
	for _, tag := range r.store.doc.Tags {
		tag.Photos = nil
		counts = append(counts, repositories.TagCount{
			Tag:   tag,
			Count: countsByID[tag.ID],
		})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Tag.Name < counts[j].Tag.Name
	})
	return counts, nil
}

func (r *TagRepositoryImpl) ResolveBySlugOrName(ctx context.Context, values []string) ([]models.Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	resolved := make([]models.Tag, 0, len(values))
	seen := make(map[uuid.UUID]bool, len(values))
	for _, v := range values {
		for _, tag := range r.store.doc.Tags {
			if tag.Slug != v && tag.Name != v {
				continue
			}
			if !seen[tag.ID] {
				seen[tag.ID] = true
				tag.Photos = nil
				resolved = append(resolved, tag)
			}
			break
		}
	}
	return resolved, nil
}

func (r *TagRepositoryImpl) Seed(ctx context.Context, names []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.seedTags(names) {
		return r.store.persist()
	}
	return nil
}
