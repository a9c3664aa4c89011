package postgres

import (
	"context"

	"mirathi/internal/domain/entity"
	"mirathi/internal/domain/repository"
	"mirathi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// familyRepository implements repository.FamilyRepository against
// PostgreSQL. The aggregate is the write unit: reads preload the full
// graph, writes bump the version row first (the optimistic check) and
// then replace the child rows wholesale. Families are small, so
// replace-on-write keeps the mapping honest without diffing.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a family repository bound to the given
// connection or transaction.
func NewFamilyRepository(db *gorm.DB) repository.FamilyRepository {
	return &familyRepository{db: db}
}

// FindByID reconstructs the full aggregate for one family.
func (repo *familyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	var m model.FamilyModel

	err := repo.db.WithContext(ctx).
		Preload("Members").
		Preload("Marriages").
		Preload("Houses").
		Preload("Relationships").
		Preload("Cohabitations").
		Preload("Adoptions").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrFamilyNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to query family")
	}

	return entity.RehydrateFamily(m.ToSnapshot()), nil
}

// Create persists a freshly created aggregate with all child rows.
func (repo *familyRepository) Create(ctx context.Context, family *entity.Family) error {
	m := model.FromFamilySnapshot(family.Snapshot())

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(err, "family %s already exists", m.ID)
		}

		return errors.Wrap(err, "failed to create family")
	}

	return nil
}

// Update replaces the stored aggregate state. The header row is
// updated under a version guard: the row must still hold the version
// the aggregate was loaded at (the committed aggregate carries the
// next version). Zero rows affected means a concurrent writer won.
func (repo *familyRepository) Update(ctx context.Context, family *entity.Family) error {
	snap := family.Snapshot()
	m := model.FromFamilySnapshot(snap)
	loadedVersion := snap.Version - 1

	res := repo.db.WithContext(ctx).
		Model(&model.FamilyModel{}).
		Where("id = ? AND version = ?", m.ID, loadedVersion).
		Updates(map[string]any{
			"name":            m.Name,
			"county":          m.County,
			"status":          m.Status,
			"version":         m.Version,
			"updated_at":      m.UpdatedAt,
			"member_count":    m.MemberCount,
			"living_count":    m.LivingCount,
			"minor_count":     m.MinorCount,
			"dependant_count": m.DependantCount,
			"polygamous":      m.Polygamous,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update family")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrVersionConflict, "family %s at version %d", m.ID, loadedVersion)
	}

	if err := repo.replaceChildren(ctx, m); err != nil {
		return err
	}

	return nil
}

// replaceChildren rewrites every child table for one family. Runs
// inside the caller's transaction, so a failure here rolls back the
// version bump too.
func (repo *familyRepository) replaceChildren(ctx context.Context, m *model.FamilyModel) error {
	db := repo.db.WithContext(ctx)

	for _, target := range []any{
		&model.MemberModel{},
		&model.MarriageModel{},
		&model.HouseModel{},
		&model.RelationshipModel{},
		&model.CohabitationModel{},
		&model.AdoptionModel{},
	} {
		if err := db.Where("family_id = ?", m.ID).Delete(target).Error; err != nil {
			return errors.Wrap(err, "failed to clear family records")
		}
	}

	if len(m.Members) > 0 {
		if err := db.Create(&m.Members).Error; err != nil {
			return errors.Wrap(err, "failed to store family members")
		}
	}
	if len(m.Marriages) > 0 {
		if err := db.Create(&m.Marriages).Error; err != nil {
			return errors.Wrap(err, "failed to store marriages")
		}
	}
	if len(m.Houses) > 0 {
		if err := db.Create(&m.Houses).Error; err != nil {
			return errors.Wrap(err, "failed to store houses")
		}
	}
	if len(m.Relationships) > 0 {
		if err := db.Create(&m.Relationships).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return errors.Wrap(err, "conflicting relationship edge")
			}

			return errors.Wrap(err, "failed to store relationships")
		}
	}
	if len(m.Cohabitations) > 0 {
		if err := db.Create(&m.Cohabitations).Error; err != nil {
			return errors.Wrap(err, "failed to store cohabitation records")
		}
	}
	if len(m.Adoptions) > 0 {
		if err := db.Create(&m.Adoptions).Error; err != nil {
			return errors.Wrap(err, "failed to store adoption records")
		}
	}

	return nil
}

// ListByCounty returns snapshot summaries for one registry county.
// Header rows only; the denormalized counters serve the list view.
func (repo *familyRepository) ListByCounty(ctx context.Context, county string, limit, offset int) ([]*entity.FamilySnapshot, error) {
	query := repo.db.WithContext(ctx).Model(&model.FamilyModel{})
	if county != "" {
		query = query.Where("county = ?", county)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []model.FamilyModel
	if err := query.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list families")
	}

	out := make([]*entity.FamilySnapshot, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToSnapshot())
	}

	return out, nil
}
