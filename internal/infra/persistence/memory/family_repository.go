// Package memory provides an in-process implementation of the
// persistence contracts. It backs unit tests and local development
// without a database; the optimistic version check behaves the same
// way as the PostgreSQL implementation.
package memory

import (
	"context"
	"sort"
	"sync"

	"mirathi/internal/domain/entity"
	"mirathi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds family snapshots keyed by ID. Snapshots are detached
// deep copies, so callers can never mutate stored state through a
// loaded aggregate.
type Store struct {
	mu       sync.Mutex
	families map[uuid.UUID]*entity.FamilySnapshot
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{families: make(map[uuid.UUID]*entity.FamilySnapshot)}
}

// familyRepository implements repository.FamilyRepository over a Store.
type familyRepository struct {
	store *Store
}

// NewFamilyRepository creates a family repository over the given store.
func NewFamilyRepository(store *Store) repository.FamilyRepository {
	return &familyRepository{store: store}
}

// FindByID reconstructs the aggregate from the stored snapshot.
func (repo *familyRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Family, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	snap, ok := repo.store.families[id]
	if !ok {
		return nil, errors.Wrap(repository.ErrFamilyNotFound, id.String())
	}

	return entity.RehydrateFamily(snap), nil
}

// Create stores a freshly created aggregate.
func (repo *familyRepository) Create(_ context.Context, family *entity.Family) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	snap := family.Snapshot()
	if _, ok := repo.store.families[snap.ID]; ok {
		return errors.Errorf("family %s already exists", snap.ID)
	}
	repo.store.families[snap.ID] = snap

	return nil
}

// Update replaces the stored snapshot under the version check.
func (repo *familyRepository) Update(_ context.Context, family *entity.Family) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	snap := family.Snapshot()
	current, ok := repo.store.families[snap.ID]
	if !ok {
		return errors.Wrap(repository.ErrFamilyNotFound, snap.ID.String())
	}
	if current.Version != snap.Version-1 {
		return errors.Wrapf(repository.ErrVersionConflict, "family %s at version %d", snap.ID, current.Version)
	}
	repo.store.families[snap.ID] = snap

	return nil
}

// ListByCounty returns snapshot summaries, most recently updated first.
func (repo *familyRepository) ListByCounty(_ context.Context, county string, limit, offset int) ([]*entity.FamilySnapshot, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	var out []*entity.FamilySnapshot
	for _, snap := range repo.store.families {
		if county == "" || snap.County == county {
			out = append(out, snap.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })

	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
