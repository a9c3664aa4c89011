package analysis

import (
	"sort"
	"time"

	"mirathi/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultTimelineLimit caps the dashboard timeline when the caller
// does not configure one.
const DefaultTimelineLimit = 20

// TimelineEntry is one recent change in a family record, derived from
// the stored record timestamps rather than from a persisted event log.
type TimelineEntry struct {
	EntityID   uuid.UUID `json:"entityId"`
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Dashboard is the read-only projection served to rendering clients.
// It composes the analysis outputs with headline counts and a recent
// timeline; it is never persisted.
type Dashboard struct {
	FamilyID   uuid.UUID           `json:"familyId"`
	FamilyName string              `json:"familyName"`
	County     string              `json:"county"`
	Status     entity.FamilyStatus `json:"status"`
	Version    int                 `json:"version"`

	MemberCount    int  `json:"memberCount"`
	LivingCount    int  `json:"livingCount"`
	MinorCount     int  `json:"minorCount"`
	DependantCount int  `json:"dependantCount"`
	MarriageCount  int  `json:"marriageCount"`
	HouseCount     int  `json:"houseCount"`
	Polygamous     bool `json:"polygamous"`

	Classification Classification  `json:"classification"`
	Health         Health          `json:"health"`
	Readiness      Readiness       `json:"readiness"`
	Timeline       []TimelineEntry `json:"timeline"`
}

// BuildDashboard composes the full projection for a family snapshot.
// The timeline holds at most timelineLimit entries, newest first; a
// non-positive limit falls back to DefaultTimelineLimit.
func BuildDashboard(snap *entity.FamilySnapshot, timelineLimit int, at time.Time) Dashboard {
	if timelineLimit <= 0 {
		timelineLimit = DefaultTimelineLimit
	}

	return Dashboard{
		FamilyID:       snap.ID,
		FamilyName:     snap.Name,
		County:         snap.County,
		Status:         snap.Status,
		Version:        snap.Version,
		MemberCount:    snap.MemberCount,
		LivingCount:    snap.LivingCount,
		MinorCount:     snap.MinorCount,
		DependantCount: snap.DependantCount,
		MarriageCount:  len(snap.Marriages),
		HouseCount:     len(snap.Houses),
		Polygamous:     snap.Polygamous,
		Classification: Classify(snap),
		Health:         Evaluate(snap),
		Readiness:      AssessReadiness(snap, at),
		Timeline:       buildTimeline(snap, timelineLimit),
	}
}

func buildTimeline(snap *entity.FamilySnapshot, limit int) []TimelineEntry {
	var entries []TimelineEntry

	for _, m := range snap.Members {
		entries = append(entries, TimelineEntry{
			EntityID:   m.ID,
			Kind:       "member",
			Detail:     m.Name + " recorded",
			OccurredAt: m.CreatedAt,
		})
	}
	for _, m := range snap.Marriages {
		entries = append(entries, TimelineEntry{
			EntityID:   m.ID,
			Kind:       "marriage",
			Detail:     m.Type.String() + " marriage registered",
			OccurredAt: m.CreatedAt,
		})
		if m.EndDate != nil {
			entries = append(entries, TimelineEntry{
				EntityID:   m.ID,
				Kind:       "marriage",
				Detail:     "marriage ended (" + m.Status.String() + ")",
				OccurredAt: *m.EndDate,
			})
		}
	}
	for _, h := range snap.Houses {
		entries = append(entries, TimelineEntry{
			EntityID:   h.ID,
			Kind:       "house",
			Detail:     "house established",
			OccurredAt: h.EstablishedAt,
		})
	}
	for _, r := range snap.Relationships {
		entries = append(entries, TimelineEntry{
			EntityID:   r.ID,
			Kind:       "relationship",
			Detail:     string(r.Type) + " relationship defined",
			OccurredAt: r.CreatedAt,
		})
	}
	for _, c := range snap.Cohabitations {
		entries = append(entries, TimelineEntry{
			EntityID:   c.ID,
			Kind:       "cohabitation",
			Detail:     "cohabitation recorded",
			OccurredAt: c.CreatedAt,
		})
	}
	for _, a := range snap.Adoptions {
		entries = append(entries, TimelineEntry{
			EntityID:   a.ID,
			Kind:       "adoption",
			Detail:     "adoption recorded",
			OccurredAt: a.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].OccurredAt.Equal(entries[j].OccurredAt) {
			return entries[i].EntityID.String() < entries[j].EntityID.String()
		}

		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}
