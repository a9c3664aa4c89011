package entity

import (
	"time"

	"github.com/google/uuid"
)

// FamilySnapshot is a deep, detached copy of a family's persistent
// state. The persistence layer maps it to and from storage models, and
// the commit path uses it to restore the aggregate when a mutation
// fails validation. Pending facts and advisories are transient and not
// part of the snapshot.
type FamilySnapshot struct {
	ID        uuid.UUID
	Name      string
	County    string
	Status    FamilyStatus
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	Members       []*Member
	Marriages     []*Marriage
	Houses        []*PolygamousHouse
	Relationships []*FamilyRelationship
	Cohabitations []*CohabitationRecord
	Adoptions     []*AdoptionRecord

	MemberCount    int
	LivingCount    int
	MinorCount     int
	DependantCount int
	Polygamous     bool
}

// Snapshot returns a deep copy of the aggregate's persistent state.
// Mutating the returned snapshot does not affect the aggregate.
func (f *Family) Snapshot() *FamilySnapshot {
	snap := &FamilySnapshot{
		ID:             f.id,
		Name:           f.name,
		County:         f.county,
		Status:         f.status,
		Version:        f.version,
		CreatedAt:      f.createdAt,
		UpdatedAt:      f.updatedAt,
		MemberCount:    f.memberCount,
		LivingCount:    f.livingCount,
		MinorCount:     f.minorCount,
		DependantCount: f.dependantCount,
		Polygamous:     f.polygamous,
	}
	for _, m := range f.Members() {
		snap.Members = append(snap.Members, cloneMember(m))
	}
	for _, m := range f.Marriages() {
		snap.Marriages = append(snap.Marriages, cloneMarriage(m))
	}
	for _, h := range f.Houses() {
		snap.Houses = append(snap.Houses, cloneHouse(h))
	}
	for _, r := range f.Relationships() {
		snap.Relationships = append(snap.Relationships, cloneRelationship(r))
	}
	for _, c := range f.Cohabitations() {
		snap.Cohabitations = append(snap.Cohabitations, cloneCohabitation(c))
	}
	for _, a := range f.Adoptions() {
		snap.Adoptions = append(snap.Adoptions, cloneAdoption(a))
	}

	return snap
}

// Clone returns a deep copy of the snapshot. Storage layers that keep
// snapshots around hand out clones so their state stays private.
func (s *FamilySnapshot) Clone() *FamilySnapshot {
	out := *s
	out.Members = nil
	out.Marriages = nil
	out.Houses = nil
	out.Relationships = nil
	out.Cohabitations = nil
	out.Adoptions = nil

	for _, m := range s.Members {
		out.Members = append(out.Members, cloneMember(m))
	}
	for _, m := range s.Marriages {
		out.Marriages = append(out.Marriages, cloneMarriage(m))
	}
	for _, h := range s.Houses {
		out.Houses = append(out.Houses, cloneHouse(h))
	}
	for _, r := range s.Relationships {
		out.Relationships = append(out.Relationships, cloneRelationship(r))
	}
	for _, c := range s.Cohabitations {
		out.Cohabitations = append(out.Cohabitations, cloneCohabitation(c))
	}
	for _, a := range s.Adoptions {
		out.Adoptions = append(out.Adoptions, cloneAdoption(a))
	}

	return &out
}

// RehydrateFamily rebuilds an aggregate from a persisted snapshot. The
// snapshot is assumed to come from trusted storage, so no invariant
// sweep runs here; the rebuilt aggregate re-derives its denormalized
// counters rather than trusting the stored ones.
func RehydrateFamily(snap *FamilySnapshot) *Family {
	f := &Family{
		id:            snap.ID,
		name:          snap.Name,
		county:        snap.County,
		status:        snap.Status,
		version:       snap.Version,
		createdAt:     snap.CreatedAt,
		updatedAt:     snap.UpdatedAt,
		members:       make(map[uuid.UUID]*Member, len(snap.Members)),
		marriages:     make(map[uuid.UUID]*Marriage, len(snap.Marriages)),
		houses:        make(map[uuid.UUID]*PolygamousHouse, len(snap.Houses)),
		relationships: make(map[relationshipKey]*FamilyRelationship, len(snap.Relationships)),
		cohabitations: make(map[uuid.UUID]*CohabitationRecord, len(snap.Cohabitations)),
		adoptions:     make(map[uuid.UUID]*AdoptionRecord, len(snap.Adoptions)),
	}
	f.restore(snap)

	return f
}

// restore replaces the aggregate's persistent state with a deep copy
// of the snapshot and re-derives the denormalized counters.
func (f *Family) restore(snap *FamilySnapshot) {
	f.id = snap.ID
	f.name = snap.Name
	f.county = snap.County
	f.status = snap.Status
	f.version = snap.Version
	f.createdAt = snap.CreatedAt
	f.updatedAt = snap.UpdatedAt

	f.members = make(map[uuid.UUID]*Member, len(snap.Members))
	for _, m := range snap.Members {
		f.members[m.ID] = cloneMember(m)
	}
	f.marriages = make(map[uuid.UUID]*Marriage, len(snap.Marriages))
	for _, m := range snap.Marriages {
		f.marriages[m.ID] = cloneMarriage(m)
	}
	f.houses = make(map[uuid.UUID]*PolygamousHouse, len(snap.Houses))
	for _, h := range snap.Houses {
		f.houses[h.ID] = cloneHouse(h)
	}
	f.relationships = make(map[relationshipKey]*FamilyRelationship, len(snap.Relationships))
	for _, r := range snap.Relationships {
		f.relationships[r.key()] = cloneRelationship(r)
	}
	f.cohabitations = make(map[uuid.UUID]*CohabitationRecord, len(snap.Cohabitations))
	for _, c := range snap.Cohabitations {
		f.cohabitations[c.ID] = cloneCohabitation(c)
	}
	f.adoptions = make(map[uuid.UUID]*AdoptionRecord, len(snap.Adoptions))
	for _, a := range snap.Adoptions {
		f.adoptions[a.ID] = cloneAdoption(a)
	}

	f.recompute()
}

func cloneMember(m *Member) *Member {
	out := *m
	out.BirthDate = cloneTime(m.BirthDate)
	out.DeathDate = cloneTime(m.DeathDate)

	return &out
}

func cloneMarriage(m *Marriage) *Marriage {
	out := *m
	out.EndDate = cloneTime(m.EndDate)

	return &out
}

func cloneHouse(h *PolygamousHouse) *PolygamousHouse {
	out := *h
	out.MemberIDs = append([]uuid.UUID(nil), h.MemberIDs...)

	return &out
}

func cloneRelationship(r *FamilyRelationship) *FamilyRelationship {
	out := *r

	return &out
}

func cloneCohabitation(c *CohabitationRecord) *CohabitationRecord {
	out := *c
	out.EndDate = cloneTime(c.EndDate)
	out.Witnesses = append([]string(nil), c.Witnesses...)
	out.EvidenceRefs = append([]string(nil), c.EvidenceRefs...)

	return &out
}

func cloneAdoption(a *AdoptionRecord) *AdoptionRecord {
	out := *a

	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t

	return &out
}
