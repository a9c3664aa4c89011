package entity

import (
	"sort"
	"time"

	domainerrors "mirathi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FamilyStatus represents the lifecycle state of a family record.
type FamilyStatus uint8

const (
	// FamilyActive represents a family record open for mutation.
	FamilyActive FamilyStatus = iota
	// FamilyArchived represents a soft-terminated family record.
	FamilyArchived
)

// String returns the string representation of FamilyStatus.
func (s FamilyStatus) String() string {
	switch s {
	case FamilyActive:
		return "active"
	case FamilyArchived:
		return "archived"
	default:
		return "unknown"
	}
}

// Family is the aggregate root and single write boundary for one
// household's kinship graph. It owns the member, marriage, house,
// relationship, cohabitation and adoption collections, enforces the
// cross-entity invariants after every mutation, and accumulates domain
// facts describing what changed.
//
// Every mutating operation goes through the same commit path: validate
// preconditions, mutate the owned collections, recompute denormalized
// state, record facts, then run the full invariant sweep. If the sweep
// fails the aggregate is restored to its pre-mutation state, so it is
// never observable in a state that fails its own validation.
//
// The aggregate is a synchronous, single-owner consistency boundary.
// Serializing concurrent mutations of the same family is the
// persistence layer's job, using the Version counter for optimistic
// concurrency detection.
type Family struct {
	id        uuid.UUID
	name      string
	county    string // Jurisdiction (county) code of the probate registry.
	status    FamilyStatus
	version   int
	createdAt time.Time
	updatedAt time.Time

	members       map[uuid.UUID]*Member
	marriages     map[uuid.UUID]*Marriage
	houses        map[uuid.UUID]*PolygamousHouse
	relationships map[relationshipKey]*FamilyRelationship
	cohabitations map[uuid.UUID]*CohabitationRecord
	adoptions     map[uuid.UUID]*AdoptionRecord

	// Denormalized counters, recomputed on every commit.
	memberCount    int
	livingCount    int
	minorCount     int
	dependantCount int
	polygamous     bool

	events     []FamilyEvent
	advisories []string
}

// NewFamily creates a family record, optionally seeded with a founding
// member, and emits the creation fact. The founder, when given, must
// carry this family's ID once assigned; a founder with an unset family
// reference is claimed automatically.
func NewFamily(name, county string, founder *Member) (*Family, error) {
	now := time.Now()
	f := &Family{
		id:            uuid.New(),
		name:          name,
		county:        county,
		status:        FamilyActive,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		members:       make(map[uuid.UUID]*Member),
		marriages:     make(map[uuid.UUID]*Marriage),
		houses:        make(map[uuid.UUID]*PolygamousHouse),
		relationships: make(map[relationshipKey]*FamilyRelationship),
		cohabitations: make(map[uuid.UUID]*CohabitationRecord),
		adoptions:     make(map[uuid.UUID]*AdoptionRecord),
	}
	f.recordEvent(f.id, EventFamilyCreated)

	if founder != nil {
		if founder.FamilyID == uuid.Nil {
			founder.FamilyID = f.id
		}
		if err := f.AddMember(founder); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// --- Identity and denormalized state accessors ---

func (f *Family) ID() uuid.UUID        { return f.id }
func (f *Family) Name() string         { return f.name }
func (f *Family) County() string       { return f.county }
func (f *Family) Status() FamilyStatus { return f.status }
func (f *Family) Version() int         { return f.version }
func (f *Family) CreatedAt() time.Time { return f.createdAt }
func (f *Family) UpdatedAt() time.Time { return f.updatedAt }

func (f *Family) MemberCount() int    { return f.memberCount }
func (f *Family) LivingCount() int    { return f.livingCount }
func (f *Family) MinorCount() int     { return f.minorCount }
func (f *Family) DependantCount() int { return f.dependantCount }

// IsPolygamous derives the polygamy status from the current graph. It
// is recomputed on every call rather than served from the cached
// summary, so reads that bypass the mutation path cannot observe a
// stale value.
func (f *Family) IsPolygamous() bool {
	return f.computePolygamy()
}

// --- Mutating operations ---

// AddMember attaches a member to the family.
//
// Re-adding a member whose identity is already present is an explicit
// idempotent no-op (safe under event replay); a member belonging to a
// different family is rejected.
func (f *Family) AddMember(m *Member) error {
	return f.apply(func() error {
		if m.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrFamilyMismatch, "member %s belongs to family %s", m.ID, m.FamilyID)
		}
		if _, ok := f.members[m.ID]; ok {
			return nil // Idempotent re-add.
		}

		now := time.Now()
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
		f.members[m.ID] = m

		if m.IsAdult() && m.Identity != IdentityVerified {
			f.recordAdvisory("adult member " + m.Name + " has unverified identity documents")
		}
		f.recordEvent(m.ID, EventMemberAdded)

		return nil
	})
}

// MarkMemberDeceased records a member's death and updates the living
// counters. Explicit per-field update; there is no generic patch path.
func (f *Family) MarkMemberDeceased(memberID uuid.UUID, died time.Time) error {
	return f.apply(func() error {
		m, ok := f.members[memberID]
		if !ok {
			return errors.Wrapf(domainerrors.ErrUnknownMember, "member %s", memberID)
		}
		if m.Vital == VitalDeceased {
			return nil // Already recorded.
		}

		m.Vital = VitalDeceased
		m.DeathDate = &died
		m.UpdatedAt = time.Now()
		f.recordEvent(m.ID, EventMemberUpdated)

		return nil
	})
}

// RegisterMarriage registers a union between two members already in
// the family. Statutory preconditions: both spouses known, adults,
// alive, distinct, the marriage date not in the future, and no other
// active marriage between the same pair.
//
// If this registration is the one that first turns the family
// polygamous, a distinct polygamy-detected fact is emitted after the
// marriage-registered fact.
func (f *Family) RegisterMarriage(m *Marriage) error {
	return f.apply(func() error {
		if m.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrFamilyMismatch, "marriage %s belongs to family %s", m.ID, m.FamilyID)
		}
		if m.Spouse1ID == m.Spouse2ID {
			return errors.Wrap(domainerrors.ErrSelfReference, "a member cannot marry themselves")
		}

		for _, spouseID := range []uuid.UUID{m.Spouse1ID, m.Spouse2ID} {
			spouse, ok := f.members[spouseID]
			if !ok {
				return errors.Wrapf(domainerrors.ErrUnknownMember, "spouse %s", spouseID)
			}
			if !spouse.IsAlive() {
				return errors.Wrapf(domainerrors.ErrSpouseDeceased, "spouse %s", spouse.Name)
			}
			if !spouse.IsAdult() {
				return errors.Wrapf(domainerrors.ErrSpouseMinor, "spouse %s", spouse.Name)
			}
		}

		if m.MarriageDate.After(time.Now()) {
			return errors.Wrapf(domainerrors.ErrMarriageDateInFuture, "marriage date %s", m.MarriageDate.Format(time.DateOnly))
		}

		for _, existing := range f.marriages {
			if existing.IsActive() && existing.InvolvesPair(m.Spouse1ID, m.Spouse2ID) {
				return errors.Wrapf(domainerrors.ErrDuplicateActiveMarriage, "members %s and %s", m.Spouse1ID, m.Spouse2ID)
			}
		}

		wasPolygamous := f.computePolygamy()

		now := time.Now()
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
		f.marriages[m.ID] = m

		if m.Type == MarriageCustomary && !m.BridePriceDocumented {
			f.recordAdvisory("customary marriage " + m.ID.String() + " has no bride-price documentation")
		}

		f.recordEvent(m.ID, EventMarriageRegistered)

		if !wasPolygamous && f.computePolygamy() {
			if m.CertificateNumber == "" {
				f.recordAdvisory("polygamous marriage " + m.ID.String() + " has no marriage certificate")
			}
			f.recordEvent(m.ID, EventPolygamyDetected)
		}

		return nil
	})
}

// EndMarriage moves an active marriage to a terminated or separated
// status and re-derives the polygamy summary, which may flip the
// family back to monogamous. The false transition is not separately
// signalled; it is reflected in the recomputed status.
func (f *Family) EndMarriage(marriageID uuid.UUID, status MarriageStatus, endDate time.Time) error {
	return f.apply(func() error {
		m, ok := f.marriages[marriageID]
		if !ok {
			return errors.Wrapf(domainerrors.ErrMarriageNotFound, "marriage %s", marriageID)
		}
		if !m.Status.CanTransitionTo(status) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusChange, "from %s to %s", m.Status, status)
		}

		m.Status = status
		if status.IsTerminated() {
			m.EndDate = &endDate
		}
		m.UpdatedAt = time.Now()
		f.recordEvent(m.ID, EventMarriageEnded)

		return nil
	})
}

// EstablishHouse records a polygamous house. The family must already
// be structurally polygamous, the establishment order must be unused,
// and any house beyond the first requires documented consent evidence
// from the existing wives.
func (f *Family) EstablishHouse(h *PolygamousHouse) error {
	return f.apply(func() error {
		if h.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrFamilyMismatch, "house %s belongs to family %s", h.ID, h.FamilyID)
		}
		if !f.computePolygamy() {
			return errors.Wrap(domainerrors.ErrNotPolygamous, "no member holds more than one active marriage")
		}
		if _, ok := f.members[h.WifeID]; !ok {
			return errors.Wrapf(domainerrors.ErrUnknownMember, "originating wife %s", h.WifeID)
		}
		for _, memberID := range h.MemberIDs {
			if _, ok := f.members[memberID]; !ok {
				return errors.Wrapf(domainerrors.ErrUnknownMember, "house member %s", memberID)
			}
		}
		for _, existing := range f.houses {
			if existing.Order == h.Order {
				return errors.Wrapf(domainerrors.ErrHouseOrderTaken, "house order %d", h.Order)
			}
		}
		if h.Order > 1 && h.ConsentEvidenceRef == "" {
			return errors.Wrapf(domainerrors.ErrConsentRequired, "house order %d", h.Order)
		}

		if h.EstablishedAt.IsZero() {
			h.EstablishedAt = time.Now()
		}
		f.houses[h.ID] = h
		f.recordEvent(h.ID, EventHouseEstablished)

		return nil
	})
}

// DissolveHouse moves an active house to the dissolved status and
// re-derives the polygamy summary. Dissolving the last active house is
// how a caller reconciles the house record before ending the marriage
// that made the family polygamous; the reverse order is rejected by
// the orphan-house invariant.
func (f *Family) DissolveHouse(houseID uuid.UUID) error {
	return f.apply(func() error {
		h, ok := f.houses[houseID]
		if !ok {
			return errors.Wrapf(domainerrors.ErrHouseNotFound, "house %s", houseID)
		}
		if h.Status == HouseDissolved {
			return errors.Wrapf(domainerrors.ErrHouseAlreadyDissolved, "house order %d", h.Order)
		}

		h.Status = HouseDissolved
		f.recordEvent(h.ID, EventHouseDissolved)

		return nil
	})
}

// DefineRelationship adds a directed kinship edge. Both endpoints must
// already be members; PARENT edges are checked for lineage cycles and
// rejected closed when one would result.
//
// Re-defining an identical edge (same from, to, type) is an explicit
// idempotent no-op, safe under event replay.
func (f *Family) DefineRelationship(r *FamilyRelationship) error {
	return f.apply(func() error {
		return f.defineRelationship(r)
	})
}

// defineRelationship is the shared insertion path used by
// DefineRelationship and RecordAdoption. Must run inside apply.
func (f *Family) defineRelationship(r *FamilyRelationship) error {
	if r.FamilyID != f.id {
		return errors.Wrapf(domainerrors.ErrFamilyMismatch, "relationship %s belongs to family %s", r.ID, r.FamilyID)
	}
	if r.FromMemberID == r.ToMemberID {
		return errors.Wrap(domainerrors.ErrSelfReference, "relationship endpoints are the same member")
	}
	if _, ok := f.members[r.FromMemberID]; !ok {
		return errors.Wrapf(domainerrors.ErrUnknownMember, "relationship source %s", r.FromMemberID)
	}
	if _, ok := f.members[r.ToMemberID]; !ok {
		return errors.Wrapf(domainerrors.ErrUnknownMember, "relationship target %s", r.ToMemberID)
	}
	if _, ok := f.relationships[r.key()]; ok {
		return nil // Idempotent re-definition.
	}
	if r.Type == RelationshipParent && f.wouldCreateLineageCycle(r.FromMemberID, r.ToMemberID) {
		return errors.Wrapf(domainerrors.ErrLineageCycle, "parent %s is a descendant of child %s", r.FromMemberID, r.ToMemberID)
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	f.relationships[r.key()] = r
	f.recordEvent(r.ID, EventRelationshipDefined)

	return nil
}

// RecordCohabitation records a durable partnership between two
// distinct members. At least one witness is required at creation; an
// end date, when present, must follow the start date.
func (f *Family) RecordCohabitation(c *CohabitationRecord) error {
	return f.apply(func() error {
		if c.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrFamilyMismatch, "cohabitation %s belongs to family %s", c.ID, c.FamilyID)
		}
		if c.Partner1ID == c.Partner2ID {
			return errors.Wrap(domainerrors.ErrSelfReference, "cohabitation partners are the same member")
		}
		for _, partnerID := range []uuid.UUID{c.Partner1ID, c.Partner2ID} {
			if _, ok := f.members[partnerID]; !ok {
				return errors.Wrapf(domainerrors.ErrUnknownMember, "partner %s", partnerID)
			}
		}
		if len(c.Witnesses) == 0 {
			return errors.Wrap(domainerrors.ErrWitnessRequired, "cohabitation record")
		}
		if c.EndDate != nil && !c.EndDate.After(c.StartDate) {
			return errors.Wrapf(domainerrors.ErrInvalidDateRange, "start %s end %s",
				c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly))
		}

		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		f.cohabitations[c.ID] = c
		f.recordEvent(c.ID, EventCohabitationRecorded)

		return nil
	})
}

// RecordAdoption records an adoption and synthesizes the certified
// PARENT kinship edge from the adoptive parent to the adoptee, reusing
// the lineage-cycle check. The whole operation fails when the
// synthesized edge would.
func (f *Family) RecordAdoption(a *AdoptionRecord) error {
	return f.apply(func() error {
		if a.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrFamilyMismatch, "adoption %s belongs to family %s", a.ID, a.FamilyID)
		}
		if a.AdoptiveParentID == a.AdopteeID {
			return errors.Wrap(domainerrors.ErrSelfReference, "a member cannot adopt themselves")
		}
		for _, memberID := range []uuid.UUID{a.AdoptiveParentID, a.AdopteeID} {
			if _, ok := f.members[memberID]; !ok {
				return errors.Wrapf(domainerrors.ErrUnknownMember, "adoption party %s", memberID)
			}
		}
		if !a.ConsentObtained {
			return errors.Wrapf(domainerrors.ErrConsentNotObtained, "adoption of %s", a.AdopteeID)
		}

		legalBasis := a.LegalBasis
		if a.CourtOrderNumber != "" {
			legalBasis = legalBasis + " (order " + a.CourtOrderNumber + ")"
		}
		edge := &FamilyRelationship{
			ID:           uuid.New(),
			FamilyID:     f.id,
			FromMemberID: a.AdoptiveParentID,
			ToMemberID:   a.AdopteeID,
			Type:         RelationshipParent,
			Verification: VerificationCertified,
			LegalBasis:   legalBasis,
		}
		if err := f.defineRelationship(edge); err != nil {
			return err
		}

		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
		f.adoptions[a.ID] = a
		f.recordEvent(a.ID, EventAdoptionRecorded)

		return nil
	})
}

// Archive soft-terminates the family record. Only allowed once no
// living members remain.
func (f *Family) Archive() error {
	return f.apply(func() error {
		for _, m := range f.members {
			if m.IsAlive() {
				return errors.Wrapf(domainerrors.ErrLivingMembers, "member %s is alive", m.Name)
			}
		}

		f.status = FamilyArchived
		f.recordEvent(f.id, EventFamilyArchived)

		return nil
	})
}

// --- Commit path ---

// apply is the single commit path every mutation goes through:
// mutate, recompute denormalized state, run the full invariant sweep,
// and restore the pre-mutation state when anything fails.
func (f *Family) apply(mutate func() error) error {
	if f.status == FamilyArchived {
		return errors.Wrapf(domainerrors.ErrFamilyArchived, "family %s", f.id)
	}

	snapshot := f.Snapshot()
	eventMark := len(f.events)
	advisoryMark := len(f.advisories)

	rollback := func() {
		f.restore(snapshot)
		f.events = f.events[:eventMark]
		f.advisories = f.advisories[:advisoryMark]
	}

	if err := mutate(); err != nil {
		rollback()

		return err
	}

	// Every state change records at least one fact, so a mutation that
	// recorded none was an idempotent no-op. Replaying one must not
	// churn the version counter.
	if len(f.events) == eventMark {
		return nil
	}

	f.recompute()

	if err := f.Validate(); err != nil {
		rollback()

		return err
	}

	f.version++
	f.updatedAt = time.Now()

	return nil
}

// recompute re-derives the denormalized counters and the cached
// polygamy summary from the owned collections.
func (f *Family) recompute() {
	now := time.Now()
	f.memberCount = len(f.members)
	f.livingCount = 0
	f.minorCount = 0
	f.dependantCount = 0
	for _, m := range f.members {
		if m.IsAlive() {
			f.livingCount++
		}
		if m.IsMinor {
			f.minorCount++
		}
		if m.IsPotentialDependant(now) {
			f.dependantCount++
		}
	}
	f.polygamous = f.computePolygamy()
}

// computePolygamy tallies each member's active marriages. A family is
// structurally polygamous when any member holds more than one active
// marriage, or when at least two active houses already exist.
func (f *Family) computePolygamy() bool {
	tally := make(map[uuid.UUID]int, len(f.marriages)*2)
	for _, m := range f.marriages {
		if !m.IsActive() {
			continue
		}
		tally[m.Spouse1ID]++
		tally[m.Spouse2ID]++
	}
	for _, count := range tally {
		if count > 1 {
			return true
		}
	}

	activeHouses := 0
	for _, h := range f.houses {
		if h.IsActive() {
			activeHouses++
		}
	}

	return activeHouses >= 2
}

// Validate is the aggregate-wide invariant sweep. It runs
// automatically after every mutation and can be called standalone. It
// re-derives the duplicate-detection sets, confirms referential
// closure of every owned record, confirms houses only exist while the
// family is polygamous, and checks counter consistency.
func (f *Family) Validate() error {
	// Duplicate detection, re-derived rather than trusted from the maps.
	edgeKeys := make(map[relationshipKey]struct{}, len(f.relationships))
	for key, r := range f.relationships {
		if key != r.key() {
			return errors.Wrapf(domainerrors.ErrInvariantViolation, "relationship %s stored under foreign key", r.ID)
		}
		if _, dup := edgeKeys[r.key()]; dup {
			return errors.Wrapf(domainerrors.ErrInvariantViolation, "duplicate relationship %s", r.ID)
		}
		edgeKeys[r.key()] = struct{}{}
	}

	houseOrders := make(map[int]struct{}, len(f.houses))
	for _, h := range f.houses {
		if _, dup := houseOrders[h.Order]; dup {
			return errors.Wrapf(domainerrors.ErrInvariantViolation, "duplicate house order %d", h.Order)
		}
		houseOrders[h.Order] = struct{}{}
	}

	// Referential closure: every owned record references only members
	// present in this family.
	for _, m := range f.members {
		if m.FamilyID != f.id {
			return errors.Wrapf(domainerrors.ErrInvariantViolation, "member %s references family %s", m.ID, m.FamilyID)
		}
	}
	for _, m := range f.marriages {
		if err := f.requireMembers(m.Spouse1ID, m.Spouse2ID); err != nil {
			return errors.Wrapf(err, "marriage %s", m.ID)
		}
	}
	for _, r := range f.relationships {
		if err := f.requireMembers(r.FromMemberID, r.ToMemberID); err != nil {
			return errors.Wrapf(err, "relationship %s", r.ID)
		}
	}
	for _, h := range f.houses {
		if err := f.requireMembers(append([]uuid.UUID{h.WifeID}, h.MemberIDs...)...); err != nil {
			return errors.Wrapf(err, "house %d", h.Order)
		}
	}
	for _, c := range f.cohabitations {
		if err := f.requireMembers(c.Partner1ID, c.Partner2ID); err != nil {
			return errors.Wrapf(err, "cohabitation %s", c.ID)
		}
	}
	for _, a := range f.adoptions {
		if err := f.requireMembers(a.AdoptiveParentID, a.AdopteeID); err != nil {
			return errors.Wrapf(err, "adoption %s", a.ID)
		}
	}

	// No orphaned polygamous houses.
	hasActiveHouse := false
	for _, h := range f.houses {
		if h.IsActive() {
			hasActiveHouse = true

			break
		}
	}
	if hasActiveHouse && !f.computePolygamy() {
		return errors.Wrap(domainerrors.ErrInvariantViolation, "active house in a non-polygamous family")
	}

	// The lineage must stay acyclic as a whole, not just per-insertion.
	if cycleMember, ok := f.findLineageCycle(); ok {
		return errors.Wrapf(domainerrors.ErrInvariantViolation, "member %s is their own ancestor", cycleMember)
	}

	// Counter consistency.
	if f.memberCount != len(f.members) {
		return errors.Wrapf(domainerrors.ErrInvariantViolation, "member counter %d does not match member set %d", f.memberCount, len(f.members))
	}

	return nil
}

func (f *Family) requireMembers(ids ...uuid.UUID) error {
	for _, id := range ids {
		if _, ok := f.members[id]; !ok {
			return errors.Wrapf(domainerrors.ErrInvariantViolation, "orphaned reference to member %s", id)
		}
	}

	return nil
}

// --- Read-only queries ---

// Member returns a member by identity.
func (f *Family) Member(id uuid.UUID) (*Member, bool) {
	m, ok := f.members[id]

	return m, ok
}

// Members returns all members, ordered by identity for determinism.
func (f *Family) Members() []*Member {
	out := make([]*Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Marriages returns all marriages, ordered by identity.
func (f *Family) Marriages() []*Marriage {
	out := make([]*Marriage, 0, len(f.marriages))
	for _, m := range f.marriages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Houses returns all polygamous houses, ordered by establishment order.
func (f *Family) Houses() []*PolygamousHouse {
	out := make([]*PolygamousHouse, 0, len(f.houses))
	for _, h := range f.houses {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	return out
}

// Relationships returns all kinship edges, ordered by identity.
func (f *Family) Relationships() []*FamilyRelationship {
	out := make([]*FamilyRelationship, 0, len(f.relationships))
	for _, r := range f.relationships {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Cohabitations returns all cohabitation records, ordered by identity.
func (f *Family) Cohabitations() []*CohabitationRecord {
	out := make([]*CohabitationRecord, 0, len(f.cohabitations))
	for _, c := range f.cohabitations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Adoptions returns all adoption records, ordered by identity.
func (f *Family) Adoptions() []*AdoptionRecord {
	out := make([]*AdoptionRecord, 0, len(f.adoptions))
	for _, a := range f.adoptions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Spouses returns the members currently married to the given member,
// derived from active marriages only.
func (f *Family) Spouses(memberID uuid.UUID) []*Member {
	var out []*Member
	for _, m := range f.marriages {
		if !m.IsActive() {
			continue
		}
		if other, ok := m.OtherSpouse(memberID); ok {
			if spouse, present := f.members[other]; present {
				out = append(out, spouse)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Children returns the members this member is a recorded parent of.
func (f *Family) Children(memberID uuid.UUID) []*Member {
	var out []*Member
	for _, r := range f.relationships {
		if r.Type == RelationshipParent && r.FromMemberID == memberID {
			if child, ok := f.members[r.ToMemberID]; ok {
				out = append(out, child)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Parents returns the recorded parents of this member.
func (f *Family) Parents(memberID uuid.UUID) []*Member {
	var out []*Member
	for _, r := range f.relationships {
		if r.Type == RelationshipParent && r.ToMemberID == memberID {
			if parent, ok := f.members[r.FromMemberID]; ok {
				out = append(out, parent)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// Siblings returns the other children of this member's recorded
// parents, deduplicated.
func (f *Family) Siblings(memberID uuid.UUID) []*Member {
	seen := make(map[uuid.UUID]struct{})
	var out []*Member
	for _, parent := range f.Parents(memberID) {
		for _, child := range f.Children(parent.ID) {
			if child.ID == memberID {
				continue
			}
			if _, dup := seen[child.ID]; dup {
				continue
			}
			seen[child.ID] = struct{}{}
			out = append(out, child)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })

	return out
}

// --- Facts and advisories ---

// PendingEvents returns a copy of the accumulated, not yet drained facts.
func (f *Family) PendingEvents() []FamilyEvent {
	out := make([]FamilyEvent, len(f.events))
	copy(out, f.events)

	return out
}

// DrainEvents returns the accumulated facts in order and clears the list.
func (f *Family) DrainEvents() []FamilyEvent {
	out := f.events
	f.events = nil

	return out
}

// DrainAdvisories returns the accumulated advisory notices and clears
// the list. Advisories describe soft conditions (missing but
// non-blocking documentation); the caller is expected to log them.
func (f *Family) DrainAdvisories() []string {
	out := f.advisories
	f.advisories = nil

	return out
}

func (f *Family) recordEvent(entityID uuid.UUID, name EventName) {
	f.events = append(f.events, newFamilyEvent(f.id, entityID, name, time.Now()))
}

func (f *Family) recordAdvisory(note string) {
	f.advisories = append(f.advisories, note)
}
